// Copyright (c) 2026 Shelfmark. All rights reserved.
// Author: long.pham.dev@gmail.com

package library

import (
	"context"

	"github.com/longpham/shelfmark/pkg/pagination"
)

// Repository is the persistence boundary for shelf entries.
//
// Implementations report misses as [dberr.ErrNotFound] and unique-constraint
// violations as [dberr.ErrDuplicate].
type Repository interface {
	// ListByUser returns the user's entries ordered by ascending book id,
	// optionally filtered to one status, windowed by offset/limit.
	ListByUser(ctx context.Context, userID int64, statusFilter *Status, window pagination.Window) ([]*Entry, error)

	// GetByUserAndBook fetches the single entry for the exact pair.
	GetByUserAndBook(ctx context.Context, userID, bookID int64) (*Entry, error)

	// Create inserts the entry and fills its ID and CreatedAt.
	Create(ctx context.Context, entry *Entry) error

	// Delete removes the entry for the exact pair.
	Delete(ctx context.Context, userID, bookID int64) error
}
