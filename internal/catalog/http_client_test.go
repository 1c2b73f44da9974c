// Copyright (c) 2026 Shelfmark. All rights reserved.
// Author: long.pham.dev@gmail.com

package catalog_test

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/longpham/shelfmark/internal/catalog"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

/*
TestHTTPClient_Lookup_Found verifies decoding of a successful catalog answer.
*/
func TestHTTPClient_Lookup_Found(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		assert.Equal(t, http.MethodGet, request.Method)
		assert.Equal(t, "/book/42", request.URL.Path)

		writer.Header().Set("Content-Type", "application/json")
		_, _ = writer.Write([]byte(`{"id": 42, "title": "Dune", "author": "Frank Herbert", "genre": "Sci-Fi"}`))
	}))
	defer server.Close()

	client := catalog.NewHTTPClient(server.URL, discardLogger())

	book, err := client.Lookup(context.Background(), 42)
	require.NoError(t, err)

	assert.Equal(t, int64(42), book.ID)
	assert.Equal(t, "Dune", book.Title)
	assert.Equal(t, "Frank Herbert", book.Author)
}

/*
TestHTTPClient_Lookup_FoundWithUnreadableBody verifies that a 2xx answer
counts as found even if the body cannot be decoded.
*/
func TestHTTPClient_Lookup_FoundWithUnreadableBody(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		_, _ = writer.Write([]byte(`this is not json`))
	}))
	defer server.Close()

	client := catalog.NewHTTPClient(server.URL, discardLogger())

	book, err := client.Lookup(context.Background(), 7)
	require.NoError(t, err)
	assert.Equal(t, int64(7), book.ID)
}

/*
TestHTTPClient_Lookup_NotFound verifies the authoritative 404 outcome.
*/
func TestHTTPClient_Lookup_NotFound(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		writer.WriteHeader(http.StatusNotFound)
	}))
	defer server.Close()

	client := catalog.NewHTTPClient(server.URL, discardLogger())

	book, err := client.Lookup(context.Background(), 99)
	assert.Nil(t, book)
	assert.ErrorIs(t, err, catalog.ErrNotFound)
}

/*
TestHTTPClient_Lookup_Unavailable verifies that non-404 failures are never
mistaken for a missing book.
*/
func TestHTTPClient_Lookup_Unavailable(t *testing.T) {
	tests := []struct {
		name   string
		status int
	}{
		{"server_error", http.StatusInternalServerError},
		{"bad_gateway", http.StatusBadGateway},
		{"client_error", http.StatusForbidden},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
				writer.WriteHeader(tt.status)
			}))
			defer server.Close()

			client := catalog.NewHTTPClient(server.URL, discardLogger())

			book, err := client.Lookup(context.Background(), 1)
			assert.Nil(t, book)
			assert.ErrorIs(t, err, catalog.ErrUnavailable)
			assert.NotErrorIs(t, err, catalog.ErrNotFound)
		})
	}
}

/*
TestHTTPClient_Lookup_ConnectionRefused verifies the transport failure path.
*/
func TestHTTPClient_Lookup_ConnectionRefused(t *testing.T) {
	// Start and immediately stop a server to get a dead address.
	server := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))
	deadURL := server.URL
	server.Close()

	client := catalog.NewHTTPClient(deadURL, discardLogger())

	book, err := client.Lookup(context.Background(), 1)
	assert.Nil(t, book)
	assert.ErrorIs(t, err, catalog.ErrUnavailable)
}
