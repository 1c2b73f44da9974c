// Copyright (c) 2026 Shelfmark. All rights reserved.
// Author: long.pham.dev@gmail.com

package library_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/longpham/shelfmark/internal/library"
)

func TestStatusStoredRoundTrip(t *testing.T) {
	tests := []struct {
		status library.Status
		stored string
	}{
		{library.StatusWantToRead, "Want to read"},
		{library.StatusCurrentlyReading, "Currently reading"},
		{library.StatusRead, "Read"},
	}

	for _, tt := range tests {
		t.Run(string(tt.status), func(t *testing.T) {
			assert.Equal(t, tt.stored, tt.status.Stored())

			back, ok := library.StatusFromStored(tt.stored)
			require.True(t, ok)
			assert.Equal(t, tt.status, back)
		})
	}
}

func TestParseStatus(t *testing.T) {
	for _, token := range library.StatusTokens() {
		status, ok := library.ParseStatus(token)
		require.True(t, ok, token)
		assert.True(t, status.Valid())
	}

	// The stored display strings are not valid API tokens.
	for _, raw := range []string{"Want to read", "Currently reading", "read", "want_to_read", ""} {
		_, ok := library.ParseStatus(raw)
		assert.False(t, ok, raw)
	}
}

func TestStatusFromStored_Unknown(t *testing.T) {
	_, ok := library.StatusFromStored("Abandoned")
	assert.False(t, ok)
}
