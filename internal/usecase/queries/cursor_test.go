//go:build unit

package queries

import (
	"encoding/base64"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCursorRoundTrip(t *testing.T) {
	ts := time.Date(2024, 3, 9, 10, 11, 12, 123456000, time.UTC)

	cases := []struct {
		name string
		id   string
	}{
		{name: "uuid id", id: "0b7f3c2e-8f1a-4c55-9a51-3d7b7f0e3a10"},
		{name: "document style id", id: "b1"},
		{name: "id containing separators", id: "users:42-x"},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			gotTime, gotID, err := DecodeAfterCursor(EncodeAfterCursor(ts, c.id))
			require.NoError(t, err)
			assert.True(t, ts.Equal(gotTime))
			assert.Equal(t, c.id, gotID)
		})
	}
}

func TestCursorTruncatesToMicroseconds(t *testing.T) {
	ts := time.Date(2024, 3, 9, 10, 11, 12, 123456789, time.UTC)

	gotTime, _, err := DecodeAfterCursor(EncodeAfterCursor(ts, "x"))
	require.NoError(t, err)
	assert.Equal(t, ts.Truncate(time.Microsecond), gotTime)
}

func TestDecodeAfterCursorRejectsGarbage(t *testing.T) {
	enc := func(s string) string { return base64.URLEncoding.EncodeToString([]byte(s)) }

	cases := map[string]string{
		"empty":          "",
		"not base64":     "%%%",
		"wrong version":  enc("v0:1700000000000000:b1"),
		"missing id":     enc("v1:1700000000000000:"),
		"missing fields": enc("v1:1700000000000000"),
		"bad timestamp":  enc("v1:yesterday:b1"),
	}

	for name, cursor := range cases {
		t.Run(name, func(t *testing.T) {
			_, _, err := DecodeAfterCursor(cursor)
			assert.Error(t, err)
		})
	}
}

func TestValidateLimit(t *testing.T) {
	assert.Equal(t, DefaultPageSize, ValidateLimit(0))
	assert.Equal(t, DefaultPageSize, ValidateLimit(-3))
	assert.Equal(t, 1, ValidateLimit(1))
	assert.Equal(t, 50, ValidateLimit(50))
	assert.Equal(t, MaxListLimit, ValidateLimit(MaxListLimit+1))
}

func TestCursorIsZero(t *testing.T) {
	var nilCursor *Cursor
	assert.True(t, nilCursor.IsZero())
	assert.True(t, (&Cursor{}).IsZero())
	assert.False(t, CursorAfter(time.Now(), "a").IsZero())
}
