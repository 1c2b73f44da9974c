// Copyright (c) 2026 Shelfmark. All rights reserved.
// Author: long.pham.dev@gmail.com

// Package pagination provides shared types and helpers for API list endpoints.
//
// # Overview
//
// It standardizes how skip/take windows are requested via query parameters
// and how the resulting metadata is delivered in the API response envelope.
//
// Unlike page-based schemes, the window is expressed directly as an SQL-style
// offset and limit. Out-of-range values are rejected, never clamped: the
// caller is told about the mistake instead of silently receiving a different
// window than requested.
package pagination

import (
	"errors"
	"net/http"
	"strconv"
)

const (
	// DefaultOffset is the starting index if not specified.
	DefaultOffset = 0
	// DefaultLimit is the number of items returned if not specified.
	DefaultLimit = 5
)

var (
	// ErrInvalidOffset flags a non-numeric or negative offset parameter.
	ErrInvalidOffset = errors.New("pagination: offset must be a non-negative integer")
	// ErrInvalidLimit flags a non-numeric, zero, or negative limit parameter.
	ErrInvalidLimit = errors.New("pagination: limit must be a positive integer")
)

// Window holds the parsed offset and limit from a request's query string.
type Window struct {
	Offset int
	Limit  int
}

// Meta is the windowing metadata included in API list responses.
type Meta struct {
	Offset int `json:"offset"`
	Limit  int `json:"limit"`
	Count  int `json:"count"`
}

// NewMeta constructs windowing metadata for a response.
func NewMeta(window Window, count int) Meta {
	return Meta{
		Offset: window.Offset,
		Limit:  window.Limit,
		Count:  count,
	}
}

// FromRequest parses "offset" and "limit" query parameters from an HTTP request.
//
// # Validation
//
// Missing parameters fall back to [DefaultOffset] and [DefaultLimit]. Present
// but malformed parameters (non-integer, offset < 0, limit <= 0) return
// [ErrInvalidOffset] or [ErrInvalidLimit]. Any positive limit is accepted;
// there is no upper bound.
func FromRequest(r *http.Request) (Window, error) {
	offset, err := parseIntParam(r, "offset", DefaultOffset)
	if err != nil || offset < 0 {
		return Window{}, ErrInvalidOffset
	}

	limit, err := parseIntParam(r, "limit", DefaultLimit)
	if err != nil || limit <= 0 {
		return Window{}, ErrInvalidLimit
	}

	return Window{Offset: offset, Limit: limit}, nil
}

// parseIntParam parses a single integer query parameter with a fallback default.
func parseIntParam(r *http.Request, key string, defaultVal int) (int, error) {
	raw := r.URL.Query().Get(key)
	if raw == "" {
		return defaultVal, nil
	}

	return strconv.Atoi(raw)
}
