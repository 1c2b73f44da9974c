// Copyright (c) 2026 Shelfmark. All rights reserved.
// Author: long.pham.dev@gmail.com

/*
Package catalog is the outbound boundary to the Book Catalog service.

The Book Catalog is the sole authority on which books exist. Shelfmark never
stores book metadata itself — it only records (user, book, status) triples —
so every Add operation asks the catalog whether the referenced book is real.

Architecture:

  - Client: a single-method interface, injected into the library service so
    tests can substitute a fake.
  - Three outcomes: found (book metadata), [ErrNotFound], or [ErrUnavailable].
    Callers must not treat an unavailable catalog as "book missing".
*/
package catalog

import (
	"context"
	"errors"
)

var (
	// ErrNotFound means the catalog authoritatively reported that the book
	// does not exist (HTTP 404).
	ErrNotFound = errors.New("catalog: book not found")

	// ErrUnavailable means the catalog could not give an authoritative answer:
	// a non-2xx, non-404 response, a connection failure, or a timeout.
	ErrUnavailable = errors.New("catalog: service unavailable")
)

// Book is the catalog's description of a single book.
//
// Metadata fields are informational only; the library domain keys entries by
// the integer id alone.
type Book struct {
	ID     int64  `json:"id"`
	Title  string `json:"title"`
	Author string `json:"author"`
	Genre  string `json:"genre"`
}

// Client looks up a single book by its catalog id.
type Client interface {
	// Lookup returns the book, or ErrNotFound / ErrUnavailable.
	Lookup(ctx context.Context, bookID int64) (*Book, error)
}
