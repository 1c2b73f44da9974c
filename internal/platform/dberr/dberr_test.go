// Copyright (c) 2026 Shelfmark. All rights reserved.
// Author: long.pham.dev@gmail.com

package dberr_test

import (
	"errors"
	"net/http"
	"testing"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/longpham/shelfmark/internal/platform/apperr"
	"github.com/longpham/shelfmark/internal/platform/dberr"
)

/*
TestWrap_Classification verifies the mapping from driver errors to AppErrors.
*/
func TestWrap_Classification(t *testing.T) {
	tests := []struct {
		name       string
		input      error
		wantStatus int
		wantCode   string
	}{
		{"no_rows", pgx.ErrNoRows, http.StatusNotFound, "NOT_FOUND"},
		{"unique_violation", &pgconn.PgError{Code: pgerrcode.UniqueViolation}, http.StatusConflict, "CONFLICT"},
		{"unknown_error", errors.New("connection reset"), http.StatusInternalServerError, "INTERNAL_ERROR"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			wrapped := dberr.Wrap(tt.input, "test_action")

			ae := apperr.As(wrapped)
			require.NotNil(t, ae)
			assert.Equal(t, tt.wantStatus, ae.HTTPStatus)
			assert.Equal(t, tt.wantCode, ae.Code)
		})
	}
}

/*
TestWrap_Nil verifies that a nil error passes through untouched.
*/
func TestWrap_Nil(t *testing.T) {
	assert.NoError(t, dberr.Wrap(nil, "noop"))
}

/*
TestWrap_Sentinels verifies that callers can branch on the exported sentinels.
*/
func TestWrap_Sentinels(t *testing.T) {
	assert.ErrorIs(t, dberr.Wrap(pgx.ErrNoRows, "get"), dberr.ErrNotFound)

	dup := dberr.Wrap(&pgconn.PgError{Code: pgerrcode.UniqueViolation}, "insert")
	assert.ErrorIs(t, dup, dberr.ErrDuplicate)
}
