package queries

import (
	"encoding/base64"
	"fmt"
	"strconv"
	"strings"
	"time"
)

const (
	MaxListLimit     = 200
	DefaultPageSize  = 10
	CursorVersionV1  = "v1"
	cursorPrefixV1   = CursorVersionV1 + ":"
	cursorFieldCount = 2
)

// Cursor points just past the last record a page returned. The zero value and nil both mean "from the top".
type Cursor struct {
	After string `json:"after,omitempty"`
}

func (c *Cursor) IsZero() bool {
	return c == nil || c.After == ""
}

// Uses microsecond precision to align with PostgreSQL timestamp precision
func EncodeAfterCursor(t time.Time, id string) string {
	cursorData := fmt.Sprintf("%s%d:%s", cursorPrefixV1, t.UnixMicro(), id)
	return base64.URLEncoding.EncodeToString([]byte(cursorData))
}

func CursorAfter(t time.Time, id string) *Cursor {
	return &Cursor{After: EncodeAfterCursor(t, id)}
}

// Record ids are opaque strings and may contain ':', so only the first separator splits.
func DecodeAfterCursor(cursor string) (time.Time, string, error) {
	if cursor == "" {
		return time.Time{}, "", fmt.Errorf("cursor cannot be empty")
	}

	decoded, err := base64.URLEncoding.DecodeString(cursor)
	if err != nil {
		return time.Time{}, "", fmt.Errorf("invalid cursor encoding: %w", err)
	}

	payload, ok := strings.CutPrefix(string(decoded), cursorPrefixV1)
	if !ok {
		return time.Time{}, "", fmt.Errorf("unsupported cursor version")
	}

	parts := strings.SplitN(payload, ":", cursorFieldCount)
	if len(parts) != cursorFieldCount || parts[1] == "" {
		return time.Time{}, "", fmt.Errorf("invalid cursor format: expected '<micros>:<id>'")
	}

	micros, err := strconv.ParseInt(parts[0], 10, 64)
	if err != nil {
		return time.Time{}, "", fmt.Errorf("invalid timestamp: %w", err)
	}

	return time.UnixMicro(micros).UTC(), parts[1], nil
}

func ValidateLimit(limit int) int {
	if limit <= 0 {
		return DefaultPageSize
	}
	if limit > MaxListLimit {
		return MaxListLimit
	}
	return limit
}
