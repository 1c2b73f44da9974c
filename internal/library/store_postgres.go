// Copyright (c) 2026 Shelfmark. All rights reserved.
// Author: long.pham.dev@gmail.com

package library

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/longpham/shelfmark/internal/platform/apperr"
	"github.com/longpham/shelfmark/internal/platform/database/schema"
	"github.com/longpham/shelfmark/internal/platform/dberr"
	"github.com/longpham/shelfmark/pkg/pagination"
)

type PostgresRepository struct {
	db *pgxpool.Pool
}

func NewPostgresRepository(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (repository *PostgresRepository) ListByUser(context context.Context, userID int64, statusFilter *Status, window pagination.Window) ([]*Entry, error) {
	query := fmt.Sprintf(`SELECT %s, %s, %s, %s, %s FROM %s WHERE %s = $1`,
		schema.LibraryEntry.ID, schema.LibraryEntry.UserID, schema.LibraryEntry.BookID,
		schema.LibraryEntry.Status, schema.LibraryEntry.CreatedAt,
		schema.LibraryEntry.Table, schema.LibraryEntry.UserID)

	args := []any{userID}

	if statusFilter != nil {
		query += fmt.Sprintf(` AND %s = $2`, schema.LibraryEntry.Status)
		args = append(args, statusFilter.Stored())
	}

	// Ascending book id is the only ordering guarantee of the API.
	query += fmt.Sprintf(` ORDER BY %s ASC OFFSET $%d LIMIT $%d`,
		schema.LibraryEntry.BookID, len(args)+1, len(args)+2)
	args = append(args, window.Offset, window.Limit)

	rows, err := repository.db.Query(context, query, args...)
	if err != nil {
		return nil, dberr.Wrap(err, "list_library_entries")
	}
	defer rows.Close()

	entries := make([]*Entry, 0)

	for rows.Next() {
		entry := &Entry{}
		var stored string
		if err := rows.Scan(&entry.ID, &entry.UserID, &entry.BookID, &stored, &entry.CreatedAt); err != nil {
			return nil, dberr.Wrap(err, "scan_library_entry")
		}

		status, ok := StatusFromStored(stored)
		if !ok {
			return nil, apperr.Internal(fmt.Errorf("library: unknown stored status %q for entry %d", stored, entry.ID))
		}
		entry.Status = status

		entries = append(entries, entry)
	}

	if err := rows.Err(); err != nil {
		return nil, dberr.Wrap(err, "iterate_library_entries")
	}

	return entries, nil
}

func (repository *PostgresRepository) GetByUserAndBook(context context.Context, userID, bookID int64) (*Entry, error) {
	query := fmt.Sprintf(`SELECT %s, %s, %s, %s, %s FROM %s WHERE %s = $1 AND %s = $2`,
		schema.LibraryEntry.ID, schema.LibraryEntry.UserID, schema.LibraryEntry.BookID,
		schema.LibraryEntry.Status, schema.LibraryEntry.CreatedAt,
		schema.LibraryEntry.Table, schema.LibraryEntry.UserID, schema.LibraryEntry.BookID)

	entry := &Entry{}
	var stored string

	err := repository.db.QueryRow(context, query, userID, bookID).Scan(
		&entry.ID, &entry.UserID, &entry.BookID, &stored, &entry.CreatedAt,
	)
	if err != nil {
		return nil, dberr.Wrap(err, "get_library_entry")
	}

	status, ok := StatusFromStored(stored)
	if !ok {
		return nil, apperr.Internal(fmt.Errorf("library: unknown stored status %q for entry %d", stored, entry.ID))
	}
	entry.Status = status

	return entry, nil
}

func (repository *PostgresRepository) Create(context context.Context, entry *Entry) error {
	query := fmt.Sprintf(`INSERT INTO %s (%s, %s, %s) VALUES ($1, $2, $3) RETURNING %s, %s`,
		schema.LibraryEntry.Table,
		schema.LibraryEntry.UserID, schema.LibraryEntry.BookID, schema.LibraryEntry.Status,
		schema.LibraryEntry.ID, schema.LibraryEntry.CreatedAt)

	err := repository.db.QueryRow(context, query, entry.UserID, entry.BookID, entry.Status.Stored()).
		Scan(&entry.ID, &entry.CreatedAt)
	if err != nil {
		// A unique violation here is a lost race against a concurrent Add:
		// dberr maps it to ErrDuplicate for the service to classify.
		return dberr.Wrap(err, "create_library_entry")
	}

	return nil
}

func (repository *PostgresRepository) Delete(context context.Context, userID, bookID int64) error {
	query := fmt.Sprintf(`DELETE FROM %s WHERE %s = $1 AND %s = $2`,
		schema.LibraryEntry.Table, schema.LibraryEntry.UserID, schema.LibraryEntry.BookID)

	tag, err := repository.db.Exec(context, query, userID, bookID)
	if err != nil {
		return dberr.Wrap(err, "delete_library_entry")
	}

	if tag.RowsAffected() == 0 {
		return dberr.ErrNotFound
	}

	return nil
}
