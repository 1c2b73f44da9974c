// Copyright (c) 2026 Shelfmark. All rights reserved.
// Author: long.pham.dev@gmail.com

/*
Package library owns the per-user reading shelf: the mapping
(user, book) → reading status.

An entry has no internal lifecycle — it exists fully formed from creation
until deletion. Changing a status is delete-then-add; there is no update
operation.
*/
package library

import "time"

// Status is a reading status. The API uses the enum tokens below; the store
// uses the legacy display strings (see statusToStored). The two mappings live
// in one table so the read and write paths cannot drift.
type Status string

const (
	StatusWantToRead       Status = "WantToRead"
	StatusCurrentlyReading Status = "CurrentlyReading"
	StatusRead             Status = "Read"
)

// statusToStored maps the enum to its persisted string representation.
var statusToStored = map[Status]string{
	StatusWantToRead:       "Want to read",
	StatusCurrentlyReading: "Currently reading",
	StatusRead:             "Read",
}

// storedToStatus is the inverse of statusToStored, built once at init.
var storedToStatus = func() map[string]Status {
	inverse := make(map[string]Status, len(statusToStored))
	for status, stored := range statusToStored {
		inverse[stored] = status
	}
	return inverse
}()

// ParseStatus maps an API token to a [Status]. ok is false for anything
// outside the three enumerated values.
func ParseStatus(raw string) (Status, bool) {
	status := Status(raw)
	_, ok := statusToStored[status]
	return status, ok
}

// Valid reports whether the status is one of the three enumerated values.
func (s Status) Valid() bool {
	_, ok := statusToStored[s]
	return ok
}

// Stored returns the persisted string representation.
func (s Status) Stored() string {
	return statusToStored[s]
}

// StatusFromStored maps a persisted string back to its [Status].
func StatusFromStored(stored string) (Status, bool) {
	status, ok := storedToStatus[stored]
	return status, ok
}

// StatusTokens lists the accepted API tokens, for validation messages.
func StatusTokens() []string {
	return []string{string(StatusWantToRead), string(StatusCurrentlyReading), string(StatusRead)}
}

// Entry is a single shelf record linking one user to one book.
//
// The (UserID, BookID) pair is unique across all entries; the database
// constraint is the authoritative guard.
type Entry struct {
	ID        int64     `json:"id"`
	UserID    int64     `json:"user_id"`
	BookID    int64     `json:"book_id"`
	Status    Status    `json:"status"`
	CreatedAt time.Time `json:"-"`
}
