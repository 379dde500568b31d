package storage

import "errors"

// Transaction state errors shared by all Storage implementations.
var (
	// ErrAlreadyInTx is returned by Begin when called on a handle that is
	// itself a transaction.
	ErrAlreadyInTx = errors.New("already in tx")
	// ErrNotInTx is returned by Commit and Rollback on a non-transactional
	// handle.
	ErrNotInTx = errors.New("not in tx")
)
