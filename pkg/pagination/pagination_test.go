// Copyright (c) 2026 Shelfmark. All rights reserved.
// Author: long.pham.dev@gmail.com

package pagination_test

import (
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/longpham/shelfmark/pkg/pagination"
)

/*
TestFromRequest_Defaults verifies the fallback window for a bare request.
*/
func TestFromRequest_Defaults(t *testing.T) {
	request := httptest.NewRequest("GET", "/library", nil)

	window, err := pagination.FromRequest(request)
	require.NoError(t, err)

	assert.Equal(t, pagination.DefaultOffset, window.Offset)
	assert.Equal(t, pagination.DefaultLimit, window.Limit)
}

/*
TestFromRequest_Validation exercises accepted and rejected parameter shapes.
*/
func TestFromRequest_Validation(t *testing.T) {
	tests := []struct {
		name    string
		query   string
		wantErr error
		want    pagination.Window
	}{
		{"explicit_window", "offset=10&limit=20", nil, pagination.Window{Offset: 10, Limit: 20}},
		{"zero_offset", "offset=0&limit=1", nil, pagination.Window{Offset: 0, Limit: 1}},
		// Any positive limit is valid; there is no upper bound.
		{"large_limit", "limit=150", nil, pagination.Window{Offset: 0, Limit: 150}},
		{"huge_limit", "limit=100000", nil, pagination.Window{Offset: 0, Limit: 100000}},
		{"negative_offset", "offset=-1", pagination.ErrInvalidOffset, pagination.Window{}},
		{"non_numeric_offset", "offset=abc", pagination.ErrInvalidOffset, pagination.Window{}},
		{"zero_limit", "limit=0", pagination.ErrInvalidLimit, pagination.Window{}},
		{"negative_limit", "limit=-5", pagination.ErrInvalidLimit, pagination.Window{}},
		{"non_numeric_limit", "limit=five", pagination.ErrInvalidLimit, pagination.Window{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			request := httptest.NewRequest("GET", "/library?"+tt.query, nil)

			window, err := pagination.FromRequest(request)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want, window)
		})
	}
}

/*
TestNewMeta verifies the response metadata block.
*/
func TestNewMeta(t *testing.T) {
	meta := pagination.NewMeta(pagination.Window{Offset: 5, Limit: 10}, 3)

	assert.Equal(t, 5, meta.Offset)
	assert.Equal(t, 10, meta.Limit)
	assert.Equal(t, 3, meta.Count)
}
