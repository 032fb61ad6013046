package readstore

import (
	"context"
	"time"

	"hotel-admin/internal/infra"
	"hotel-admin/internal/infra/query"
	"hotel-admin/internal/pkg/pgconv"
	"hotel-admin/internal/usecase/queries"
)

type HotelUserReadQueries interface {
	ListHotelUsersFirstPage(ctx context.Context, db query.DBTX, limit int32) ([]query.HotelUsers, error)
	ListHotelUsersKeyset(ctx context.Context, db query.DBTX, arg query.ListHotelUsersKeysetParams) ([]query.HotelUsers, error)
}

type HotelUserReadStore struct {
	queries HotelUserReadQueries
	db      query.DBTX
}

func NewHotelUserReadStore(queries HotelUserReadQueries, db query.DBTX) *HotelUserReadStore {
	return &HotelUserReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *HotelUserReadStore) FindFirstPage(ctx context.Context, limit int32) ([]queries.HotelUserView, error) {
	rows, err := r.queries.ListHotelUsersFirstPage(ctx, r.db, limit)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list hotel users", err)
	}
	return toHotelUserViews(rows), nil
}

func (r *HotelUserReadStore) FindKeyset(ctx context.Context, lastCreatedAt time.Time, lastID string, limit int32) ([]queries.HotelUserView, error) {
	rows, err := r.queries.ListHotelUsersKeyset(ctx, r.db, query.ListHotelUsersKeysetParams{
		CreatedAt: pgconv.TimeToPgtype(lastCreatedAt),
		ID:        lastID,
		Limit:     limit,
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list hotel users after cursor", err)
	}
	return toHotelUserViews(rows), nil
}

func toHotelUserViews(rows []query.HotelUsers) []queries.HotelUserView {
	views := make([]queries.HotelUserView, 0, len(rows))
	for _, row := range rows {
		views = append(views, queries.HotelUserView{
			ID:        row.ID,
			Fullname:  pgconv.StringFromPgtype(row.Fullname),
			Email:     pgconv.StringFromPgtype(row.Email),
			CreatedAt: pgconv.TimeFromPgtype(row.CreatedAt),
		})
	}
	return views
}
