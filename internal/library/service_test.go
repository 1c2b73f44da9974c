// Copyright (c) 2026 Shelfmark. All rights reserved.
// Author: long.pham.dev@gmail.com

package library_test

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/longpham/shelfmark/internal/catalog"
	"github.com/longpham/shelfmark/internal/library"
	"github.com/longpham/shelfmark/internal/platform/apperr"
	"github.com/longpham/shelfmark/internal/platform/dberr"
	"github.com/longpham/shelfmark/pkg/pagination"
)

// # Test Doubles

type pairKey struct {
	userID int64
	bookID int64
}

// fakeRepository is an in-memory Repository honoring the dberr contract.
type fakeRepository struct {
	entries map[pairKey]*library.Entry
	nextID  int64

	// createErr, when set, overrides Create (used to simulate lost races).
	createErr error
}

func newFakeRepository() *fakeRepository {
	return &fakeRepository{entries: make(map[pairKey]*library.Entry), nextID: 1}
}

func (repo *fakeRepository) ListByUser(_ context.Context, userID int64, statusFilter *library.Status, window pagination.Window) ([]*library.Entry, error) {
	matched := make([]*library.Entry, 0)
	for _, entry := range repo.entries {
		if entry.UserID != userID {
			continue
		}
		if statusFilter != nil && entry.Status != *statusFilter {
			continue
		}
		matched = append(matched, entry)
	}

	sort.Slice(matched, func(i, j int) bool { return matched[i].BookID < matched[j].BookID })

	if window.Offset >= len(matched) {
		return []*library.Entry{}, nil
	}
	matched = matched[window.Offset:]
	if len(matched) > window.Limit {
		matched = matched[:window.Limit]
	}
	return matched, nil
}

func (repo *fakeRepository) GetByUserAndBook(_ context.Context, userID, bookID int64) (*library.Entry, error) {
	entry, ok := repo.entries[pairKey{userID, bookID}]
	if !ok {
		return nil, dberr.ErrNotFound
	}
	return entry, nil
}

func (repo *fakeRepository) Create(_ context.Context, entry *library.Entry) error {
	if repo.createErr != nil {
		return repo.createErr
	}
	key := pairKey{entry.UserID, entry.BookID}
	if _, exists := repo.entries[key]; exists {
		return dberr.ErrDuplicate
	}
	entry.ID = repo.nextID
	repo.nextID++
	repo.entries[key] = entry
	return nil
}

func (repo *fakeRepository) Delete(_ context.Context, userID, bookID int64) error {
	key := pairKey{userID, bookID}
	if _, ok := repo.entries[key]; !ok {
		return dberr.ErrNotFound
	}
	delete(repo.entries, key)
	return nil
}

// fakeCatalog is an in-memory catalog.Client.
type fakeCatalog struct {
	books   map[int64]*catalog.Book
	err     error
	lookups int
}

func (fake *fakeCatalog) Lookup(_ context.Context, bookID int64) (*catalog.Book, error) {
	fake.lookups++
	if fake.err != nil {
		return nil, fake.err
	}
	book, ok := fake.books[bookID]
	if !ok {
		return nil, catalog.ErrNotFound
	}
	return book, nil
}

func newService(repo *fakeRepository, cat *fakeCatalog) *library.Service {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return library.NewService(repo, cat, logger)
}

func seedEntry(repo *fakeRepository, userID, bookID int64, status library.Status) {
	repo.entries[pairKey{userID, bookID}] = &library.Entry{
		ID: repo.nextID, UserID: userID, BookID: bookID, Status: status,
	}
	repo.nextID++
}

func defaultWindow() pagination.Window {
	return pagination.Window{Offset: pagination.DefaultOffset, Limit: pagination.DefaultLimit}
}

// # Add

func TestAdd_CreatesEntry(t *testing.T) {
	repo := newFakeRepository()
	cat := &fakeCatalog{books: map[int64]*catalog.Book{42: {ID: 42, Title: "Dune"}}}
	service := newService(repo, cat)

	entry, err := service.Add(context.Background(), 7, 42, library.StatusWantToRead)
	require.NoError(t, err)

	assert.Equal(t, int64(7), entry.UserID)
	assert.Equal(t, int64(42), entry.BookID)
	assert.Equal(t, library.StatusWantToRead, entry.Status)
	assert.Equal(t, "Want to read", entry.Status.Stored())
	assert.NotZero(t, entry.ID)
	assert.Len(t, repo.entries, 1)
}

func TestAdd_Duplicate(t *testing.T) {
	repo := newFakeRepository()
	cat := &fakeCatalog{books: map[int64]*catalog.Book{42: {ID: 42}}}
	service := newService(repo, cat)

	_, err := service.Add(context.Background(), 7, 42, library.StatusRead)
	require.NoError(t, err)

	// Second add for the same pair: one success, one conflict, one row.
	_, err = service.Add(context.Background(), 7, 42, library.StatusWantToRead)
	ae := apperr.As(err)
	require.NotNil(t, ae)
	assert.Equal(t, http.StatusConflict, ae.HTTPStatus)
	assert.Len(t, repo.entries, 1)

	// The pre-check short-circuits before the catalog is consulted again.
	assert.Equal(t, 1, cat.lookups)
}

func TestAdd_BookMissingFromCatalog(t *testing.T) {
	repo := newFakeRepository()
	service := newService(repo, &fakeCatalog{books: map[int64]*catalog.Book{}})

	_, err := service.Add(context.Background(), 7, 42, library.StatusRead)

	ae := apperr.As(err)
	require.NotNil(t, ae)
	assert.Equal(t, http.StatusNotFound, ae.HTTPStatus)
	assert.Empty(t, repo.entries, "nothing may be persisted when the book does not exist")
}

func TestAdd_CatalogUnavailable(t *testing.T) {
	repo := newFakeRepository()
	service := newService(repo, &fakeCatalog{err: catalog.ErrUnavailable})

	_, err := service.Add(context.Background(), 7, 42, library.StatusRead)

	ae := apperr.As(err)
	require.NotNil(t, ae)
	assert.Equal(t, http.StatusServiceUnavailable, ae.HTTPStatus)
	assert.Empty(t, repo.entries, "nothing may be persisted when the catalog cannot answer")
}

func TestAdd_InvalidStatus(t *testing.T) {
	repo := newFakeRepository()
	cat := &fakeCatalog{books: map[int64]*catalog.Book{42: {ID: 42}}}
	service := newService(repo, cat)

	_, err := service.Add(context.Background(), 7, 42, library.Status("Abandoned"))

	ae := apperr.As(err)
	require.NotNil(t, ae)
	assert.Equal(t, http.StatusBadRequest, ae.HTTPStatus)

	// Validation happens before any I/O.
	assert.Zero(t, cat.lookups)
	assert.Empty(t, repo.entries)
}

func TestAdd_InvalidBookID(t *testing.T) {
	repo := newFakeRepository()
	cat := &fakeCatalog{books: map[int64]*catalog.Book{}}
	service := newService(repo, cat)

	_, err := service.Add(context.Background(), 7, 0, library.StatusRead)

	ae := apperr.As(err)
	require.NotNil(t, ae)
	assert.Equal(t, http.StatusBadRequest, ae.HTTPStatus)
	assert.Zero(t, cat.lookups)
}

func TestAdd_LostRace(t *testing.T) {
	// The pre-check passes but the insert trips the unique constraint: a
	// concurrent Add won. The loser must surface a conflict, not a 500.
	repo := newFakeRepository()
	repo.createErr = dberr.ErrDuplicate
	service := newService(repo, &fakeCatalog{books: map[int64]*catalog.Book{42: {ID: 42}}})

	_, err := service.Add(context.Background(), 7, 42, library.StatusRead)

	ae := apperr.As(err)
	require.NotNil(t, ae)
	assert.Equal(t, http.StatusConflict, ae.HTTPStatus)
}

// # List

func TestList_OrderedAndScopedToUser(t *testing.T) {
	repo := newFakeRepository()
	seedEntry(repo, 7, 30, library.StatusRead)
	seedEntry(repo, 7, 10, library.StatusWantToRead)
	seedEntry(repo, 7, 20, library.StatusCurrentlyReading)
	seedEntry(repo, 8, 15, library.StatusRead) // another user's shelf

	service := newService(repo, &fakeCatalog{})

	entries, err := service.List(context.Background(), 7, nil, defaultWindow())
	require.NoError(t, err)

	require.Len(t, entries, 3)
	assert.Equal(t, []int64{10, 20, 30}, []int64{entries[0].BookID, entries[1].BookID, entries[2].BookID})
	for _, entry := range entries {
		assert.Equal(t, int64(7), entry.UserID)
	}
}

func TestList_Window(t *testing.T) {
	repo := newFakeRepository()
	for bookID := int64(1); bookID <= 10; bookID++ {
		seedEntry(repo, 7, bookID, library.StatusRead)
	}
	service := newService(repo, &fakeCatalog{})

	entries, err := service.List(context.Background(), 7, nil, pagination.Window{Offset: 4, Limit: 3})
	require.NoError(t, err)

	require.Len(t, entries, 3)
	assert.Equal(t, int64(5), entries[0].BookID)
	assert.Equal(t, int64(7), entries[2].BookID)
}

func TestList_OffsetPastEnd(t *testing.T) {
	repo := newFakeRepository()
	seedEntry(repo, 7, 1, library.StatusRead)
	service := newService(repo, &fakeCatalog{})

	entries, err := service.List(context.Background(), 7, nil, pagination.Window{Offset: 50, Limit: 5})
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestList_StatusFilter(t *testing.T) {
	repo := newFakeRepository()
	seedEntry(repo, 7, 1, library.StatusRead)
	seedEntry(repo, 7, 2, library.StatusWantToRead)
	seedEntry(repo, 7, 3, library.StatusRead)
	service := newService(repo, &fakeCatalog{})

	filter := library.StatusRead
	entries, err := service.List(context.Background(), 7, &filter, defaultWindow())
	require.NoError(t, err)

	require.Len(t, entries, 2)
	assert.Equal(t, int64(1), entries[0].BookID)
	assert.Equal(t, int64(3), entries[1].BookID)
}

func TestList_InvalidInputs(t *testing.T) {
	service := newService(newFakeRepository(), &fakeCatalog{})

	badStatus := library.Status("Paused")
	tests := []struct {
		name   string
		filter *library.Status
		window pagination.Window
	}{
		{"negative_offset", nil, pagination.Window{Offset: -1, Limit: 5}},
		{"zero_limit", nil, pagination.Window{Offset: 0, Limit: 0}},
		{"unknown_status", &badStatus, pagination.Window{Offset: 0, Limit: 5}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := service.List(context.Background(), 7, tt.filter, tt.window)

			ae := apperr.As(err)
			require.NotNil(t, ae)
			assert.Equal(t, http.StatusBadRequest, ae.HTTPStatus)
		})
	}
}

// # Remove

func TestRemove_Missing(t *testing.T) {
	repo := newFakeRepository()
	seedEntry(repo, 7, 1, library.StatusRead)
	service := newService(repo, &fakeCatalog{})

	err := service.Remove(context.Background(), 7, 99)

	ae := apperr.As(err)
	require.NotNil(t, ae)
	assert.Equal(t, http.StatusNotFound, ae.HTTPStatus)
	assert.Len(t, repo.entries, 1, "a failed remove must leave the store unchanged")
}

func TestRemove_DeletesExactRow(t *testing.T) {
	repo := newFakeRepository()
	seedEntry(repo, 7, 42, library.StatusRead)
	seedEntry(repo, 7, 43, library.StatusRead)
	seedEntry(repo, 8, 42, library.StatusRead) // same book, another user
	service := newService(repo, &fakeCatalog{})

	require.NoError(t, service.Remove(context.Background(), 7, 42))

	assert.Len(t, repo.entries, 2)
	_, stillThere := repo.entries[pairKey{8, 42}]
	assert.True(t, stillThere, "other users' entries must be untouched")
}

// # End-to-End Scenario

func TestShelfLifecycle(t *testing.T) {
	repo := newFakeRepository()
	cat := &fakeCatalog{books: map[int64]*catalog.Book{42: {ID: 42, Title: "Dune"}}}
	service := newService(repo, cat)
	ctx := context.Background()

	// User 7 starts with an empty shelf.
	entries, err := service.List(ctx, 7, nil, defaultWindow())
	require.NoError(t, err)
	assert.Empty(t, entries)

	// Add book 42 as want-to-read.
	created, err := service.Add(ctx, 7, 42, library.StatusWantToRead)
	require.NoError(t, err)
	assert.Equal(t, "Want to read", created.Status.Stored())

	// The shelf now holds exactly that entry.
	entries, err = service.List(ctx, 7, nil, defaultWindow())
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, int64(42), entries[0].BookID)
	assert.Equal(t, library.StatusWantToRead, entries[0].Status)

	// Remove it; the shelf is empty again.
	require.NoError(t, service.Remove(ctx, 7, 42))

	entries, err = service.List(ctx, 7, nil, defaultWindow())
	require.NoError(t, err)
	assert.Empty(t, entries)
}
