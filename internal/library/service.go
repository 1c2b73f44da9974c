// Copyright (c) 2026 Shelfmark. All rights reserved.
// Author: long.pham.dev@gmail.com

package library

import (
	"context"
	"errors"
	"log/slog"

	"github.com/longpham/shelfmark/internal/catalog"
	"github.com/longpham/shelfmark/internal/platform/apperr"
	"github.com/longpham/shelfmark/internal/platform/dberr"
	"github.com/longpham/shelfmark/internal/platform/validate"
	"github.com/longpham/shelfmark/pkg/pagination"
)

type Service struct {
	repo    Repository
	catalog catalog.Client
	logger  *slog.Logger
}

func NewService(repo Repository, catalogClient catalog.Client, logger *slog.Logger) *Service {
	return &Service{
		repo:    repo,
		catalog: catalogClient,
		logger:  logger,
	}
}

// List returns the user's entries ordered by ascending book id.
//
// A window past the end of the filtered set yields an empty slice, not an
// error.
func (service *Service) List(ctx context.Context, userID int64, statusFilter *Status, window pagination.Window) ([]*Entry, error) {
	v := &validate.Validator{}
	v.Min("offset", int64(window.Offset), 0)
	v.Custom("limit", window.Limit <= 0, "Must be greater than zero")
	if statusFilter != nil {
		v.Custom("status", !statusFilter.Valid(), "Unknown reading status")
	}
	if err := v.Err(); err != nil {
		return nil, err
	}

	return service.repo.ListByUser(ctx, userID, statusFilter, window)
}

// Add puts a book on the user's shelf.
//
// # Flow
//  1. Validate inputs — before any I/O.
//  2. Uniqueness pre-check against the store (an optimization: the database
//     unique constraint remains the authoritative guard under races).
//  3. Existence check against the Book Catalog. An unavailable catalog aborts
//     the Add; nothing is persisted.
//  4. Insert and return the created entry.
//
// The steps are all-or-nothing by ordering: every check precedes the single
// write, so a failure at any step leaves no row behind.
func (service *Service) Add(ctx context.Context, userID, bookID int64, status Status) (*Entry, error) {
	v := &validate.Validator{}
	v.Positive("book_id", bookID)
	v.OneOf("status", string(status), StatusTokens()...)
	if err := v.Err(); err != nil {
		return nil, err
	}

	// ── Uniqueness pre-check ──────────────────────────────────────────────
	_, err := service.repo.GetByUserAndBook(ctx, userID, bookID)
	switch {
	case err == nil:
		return nil, apperr.Conflict("Book already in your library")
	case !errors.Is(err, dberr.ErrNotFound):
		return nil, err
	}

	// ── Catalog existence check ───────────────────────────────────────────
	book, err := service.catalog.Lookup(ctx, bookID)
	switch {
	case errors.Is(err, catalog.ErrNotFound):
		return nil, apperr.NotFound("Book")
	case err != nil:
		// Includes catalog.ErrUnavailable and anything unexpected: without an
		// authoritative answer the add must not proceed.
		return nil, apperr.Unavailable("Book catalog is unavailable", err)
	}

	// ── Persist ───────────────────────────────────────────────────────────
	entry := &Entry{
		UserID: userID,
		BookID: bookID,
		Status: status,
	}

	if err := service.repo.Create(ctx, entry); err != nil {
		if errors.Is(err, dberr.ErrDuplicate) {
			// Lost the race against a concurrent Add for the same pair.
			return nil, apperr.Conflict("Book already in your library")
		}
		return nil, err
	}

	service.logger.InfoContext(ctx, "library_entry_added",
		slog.Int64("user_id", userID),
		slog.Int64("book_id", bookID),
		slog.String("status", string(status)),
		slog.String("book_title", book.Title),
	)

	return entry, nil
}

// Remove deletes the entry for the exact (user, book) pair.
func (service *Service) Remove(ctx context.Context, userID, bookID int64) error {
	err := service.repo.Delete(ctx, userID, bookID)
	if err != nil {
		if errors.Is(err, dberr.ErrNotFound) {
			return apperr.NotFound("Library entry")
		}
		return err
	}

	service.logger.InfoContext(ctx, "library_entry_removed",
		slog.Int64("user_id", userID),
		slog.Int64("book_id", bookID),
	)

	return nil
}
