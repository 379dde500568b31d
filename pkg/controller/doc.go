// Package controller holds the HTTP plumbing shared by the API server:
// WithCORS and WithLogger middlewares plus the pprof debug mux. The lending
// handlers themselves live under internal/api.
package controller
