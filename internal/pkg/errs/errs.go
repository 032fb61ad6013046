// Package errs holds the sentinel errors shared by the read and write sides
// and thin helpers over cockroachdb/errors, whose marks survive wrapping.
package errs

import (
	"fmt"
	"strings"

	cr "github.com/cockroachdb/errors"
)

var (
	ErrFetchFailed   = cr.New("page fetch failed")
	ErrInvalidCursor = cr.New("invalid cursor")

	ErrBookingNotFound = cr.New("booking not found")
	ErrInvalidStatus   = cr.New("invalid booking status")
	ErrStatusTerminal  = cr.New("booking status is terminal")
	ErrUpdateFailed    = cr.New("status update failed")

	ErrIntentPending = cr.New("another status change is awaiting confirmation")
	ErrNoIntent      = cr.New("no status change is awaiting confirmation")

	ErrOperatorNotFound   = cr.New("operator not found")
	ErrOperatorInactive   = cr.New("operator inactive")
	ErrInvalidCredentials = cr.New("invalid credentials")

	ErrViewNotFound    = cr.New("dashboard view not found")
	ErrUnsupportedView = cr.New("unsupported dashboard view")
)

func New(msg string) error {
	return cr.New(msg)
}

// Wrap returns nil for a nil err.
func Wrap(err error, msg string) error {
	if err == nil {
		return nil
	}
	return cr.Wrap(err, msg)
}

// Mark tags err so Is(err, mark) holds; a nil err yields mark itself.
func Mark(err error, mark error) error {
	if err == nil {
		return mark
	}
	return cr.Mark(err, mark)
}

func Is(err, target error) bool {
	return cr.Is(err, target)
}

// ExtractStackLines renders err with its stack and keeps the first maxLines lines.
func ExtractStackLines(err error, maxLines int) []string {
	if err == nil {
		return nil
	}
	lines := strings.Split(fmt.Sprintf("%+v", err), "\n")
	if maxLines > 0 && len(lines) > maxLines {
		return lines[:maxLines]
	}
	return lines
}
