// Package repository holds the in-memory entity stores backing the API.
// Every store is safe for concurrent use and returns copies, never references
// into its own state.
package repository

import (
	"errors"
	"time"
)

var (
	ErrNotFound    = errors.New("record not found")
	ErrEmailExists = errors.New("email already exists")
)

type clock func() time.Time

func utcNow() time.Time {
	return time.Now().UTC()
}
