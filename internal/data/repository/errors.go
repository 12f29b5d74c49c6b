// Package repository holds the hand-written SQL for the movie catalog and
// the sentinel errors shared across layers. Services wrap these sentinels
// with context; handlers translate them to HTTP statuses with errors.Is.
package repository

import "errors"

// ErrNotFound is returned when a requested row does not exist. Handlers
// translate it into an HTTP 404 response.
var ErrNotFound = errors.New("not found")

// ErrForbidden is returned when the caller attempts an operation on a
// review they do not own. Handlers translate it into an HTTP 403 response.
var ErrForbidden = errors.New("forbidden")

// ErrAlreadyReviewed is returned when the one-review-per-user-per-movie
// constraint is violated. Handlers translate it into an HTTP 409 response.
var ErrAlreadyReviewed = errors.New("already reviewed")
