package queries

import (
	"context"
	"time"

	"hotel-admin/internal/pkg/errs"
)

// KeysetReadStore is the storage side of a paginated collection.
type KeysetReadStore[T any] interface {
	FindFirstPage(ctx context.Context, limit int32) ([]T, error)
	FindKeyset(ctx context.Context, lastCreatedAt time.Time, lastID string, limit int32) ([]T, error)
}

type keyed interface {
	RecordID() string
	RecordCreatedAt() time.Time
}

func fetchPage[T keyed](ctx context.Context, store KeysetReadStore[T], cursor *Cursor, pageSize int) (Page[T], error) {
	limit := int32(ValidateLimit(pageSize)) // #nosec G115 -- bounded by MaxListLimit

	var (
		rows []T
		err  error
	)
	if cursor.IsZero() {
		rows, err = store.FindFirstPage(ctx, limit)
	} else {
		lastCreatedAt, lastID, derr := DecodeAfterCursor(cursor.After)
		if derr != nil {
			return Page[T]{}, errs.Mark(derr, errs.ErrInvalidCursor)
		}
		rows, err = store.FindKeyset(ctx, lastCreatedAt, lastID, limit)
	}
	if err != nil {
		return Page[T]{}, errs.Mark(errs.Wrap(err, "fetch page"), errs.ErrFetchFailed)
	}

	page := Page[T]{Records: rows}
	if len(rows) > 0 {
		last := rows[len(rows)-1]
		page.NextCursor = CursorAfter(last.RecordCreatedAt(), last.RecordID())
	}
	return page, nil
}
