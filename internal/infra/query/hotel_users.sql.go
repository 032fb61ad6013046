package query

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
)

const listHotelUsersFirstPage = `-- name: ListHotelUsersFirstPage :many
SELECT id, fullname, email, created_at
FROM hotel_users
ORDER BY created_at DESC, id DESC
LIMIT $1
`

func (q *Queries) ListHotelUsersFirstPage(ctx context.Context, db DBTX, limit int32) ([]HotelUsers, error) {
	rows, err := db.Query(ctx, listHotelUsersFirstPage, limit)
	if err != nil {
		return nil, err
	}
	return collectHotelUsers(rows)
}

const listHotelUsersKeyset = `-- name: ListHotelUsersKeyset :many
SELECT id, fullname, email, created_at
FROM hotel_users
WHERE (created_at, id) < ($1::timestamptz, $2::text)
ORDER BY created_at DESC, id DESC
LIMIT $3
`

type ListHotelUsersKeysetParams struct {
	CreatedAt pgtype.Timestamptz `json:"created_at"`
	ID        string             `json:"id"`
	Limit     int32              `json:"limit"`
}

func (q *Queries) ListHotelUsersKeyset(ctx context.Context, db DBTX, arg ListHotelUsersKeysetParams) ([]HotelUsers, error) {
	rows, err := db.Query(ctx, listHotelUsersKeyset, arg.CreatedAt, arg.ID, arg.Limit)
	if err != nil {
		return nil, err
	}
	return collectHotelUsers(rows)
}

func collectHotelUsers(rows pgx.Rows) ([]HotelUsers, error) {
	defer rows.Close()
	items := []HotelUsers{}
	for rows.Next() {
		var i HotelUsers
		if err := rows.Scan(
			&i.ID,
			&i.Fullname,
			&i.Email,
			&i.CreatedAt,
		); err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}
