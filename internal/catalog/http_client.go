// Copyright (c) 2026 Shelfmark. All rights reserved.
// Author: long.pham.dev@gmail.com

package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"github.com/longpham/shelfmark/internal/platform/constants"
)

// HTTPClient is the production [Client] implementation, calling the Book
// Catalog's REST API.
//
// # Failure Semantics
//
// Lookups are single-attempt: no retries, no caching. A misbehaving catalog
// fails the calling operation with [ErrUnavailable] and the caller surfaces
// that to its own client. The per-call budget is
// [constants.CatalogRequestTimeout].
type HTTPClient struct {
	baseURL    string
	httpClient *http.Client
	logger     *slog.Logger
}

// NewHTTPClient creates a catalog client against the given base address.
//
// # Parameters
//   - baseURL: Scheme + host (+ optional path prefix) of the Book Catalog.
//   - logger: Structured logger for lookup failures.
func NewHTTPClient(baseURL string, logger *slog.Logger) *HTTPClient {
	return &HTTPClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{
			Timeout: constants.CatalogRequestTimeout,
		},
		logger: logger,
	}
}

// Lookup fetches a book by id via GET /book/{id}.
//
// Any 2xx response counts as found. The catalog's answer is authoritative
// only for 2xx and 404; every other outcome is classified as unavailable so
// that callers never mistake an outage for a missing book.
func (client *HTTPClient) Lookup(ctx context.Context, bookID int64) (*Book, error) {
	url := fmt.Sprintf("%s/book/%d", client.baseURL, bookID)

	request, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}

	response, err := client.httpClient.Do(request)
	if err != nil {
		client.logger.WarnContext(ctx, "catalog_lookup_transport_failure",
			slog.Int64("book_id", bookID),
			slog.Any("error", err),
		)
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer func() { _ = response.Body.Close() }()

	switch {
	case response.StatusCode == http.StatusNotFound:
		return nil, ErrNotFound

	case response.StatusCode < 200 || response.StatusCode > 299:
		client.logger.WarnContext(ctx, "catalog_lookup_bad_status",
			slog.Int64("book_id", bookID),
			slog.Int("status", response.StatusCode),
		)
		return nil, fmt.Errorf("%w: unexpected status %d", ErrUnavailable, response.StatusCode)
	}

	// Metadata is best-effort: a 2xx with an unreadable body is still "found".
	book := &Book{ID: bookID}
	if err := json.NewDecoder(response.Body).Decode(book); err != nil {
		client.logger.DebugContext(ctx, "catalog_lookup_undecodable_body",
			slog.Int64("book_id", bookID),
			slog.Any("error", err),
		)
		return &Book{ID: bookID}, nil
	}

	if book.ID == 0 {
		book.ID = bookID
	}

	return book, nil
}
