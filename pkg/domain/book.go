package domain

import "time"

// Book represents a title in the catalog. Books are identified by their
// unique code rather than a surrogate ID.
type Book struct {
	// Code is the unique identifier of the book (e.g. "JK-45").
	Code string `json:"code"`
	// Title is the book title.
	Title string `json:"title"`
	// Author is the book author.
	Author string `json:"author"`
	// Stock is the number of copies currently available to lend. Copies out
	// on active loan are not counted. Stock is never negative.
	Stock int `json:"stock"`

	// CreatedAt is the time the book was added to the catalog.
	CreatedAt time.Time `json:"createdAt"`
	// UpdatedAt is the time the book was last modified; zero value means never updated.
	UpdatedAt time.Time `json:"updatedAt"`
}

// BorrowedBookDetail is the read-model row returned when listing the books a
// member currently has on loan.
type BorrowedBookDetail struct {
	// Code is the borrowed book's code.
	Code string `json:"code"`
	// Title is the borrowed book's title.
	Title string `json:"title"`
	// Author is the borrowed book's author.
	Author string `json:"author"`
	// Stock is the book's remaining available stock.
	Stock int `json:"stock"`
	// BorrowedAt is the time the loan was opened.
	BorrowedAt time.Time `json:"borrowedAt"`
}
