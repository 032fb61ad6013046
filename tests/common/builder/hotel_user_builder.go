//go:build unit || e2e

package builder

import (
	"fmt"
	"time"

	"hotel-admin/internal/usecase/queries"
)

type HotelUserBuilder struct {
	ID        string
	Fullname  string
	Email     string
	CreatedAt time.Time
}

func NewHotelUserBuilder() *HotelUserBuilder {
	return &HotelUserBuilder{
		ID:        "u1",
		Fullname:  "Jane Guest",
		Email:     "jane@example.com",
		CreatedAt: bookingEpoch,
	}
}

func (h *HotelUserBuilder) WithID(id string) *HotelUserBuilder {
	h.ID = id
	return h
}

func (h *HotelUserBuilder) WithCreatedAt(t time.Time) *HotelUserBuilder {
	h.CreatedAt = t
	return h
}

func (h *HotelUserBuilder) BuildReadModel() queries.HotelUserView {
	return queries.HotelUserView{
		ID:        h.ID,
		Fullname:  h.Fullname,
		Email:     h.Email,
		CreatedAt: h.CreatedAt,
	}
}

// HotelUserSeries returns n users u01..un, one minute apart, newest last.
func HotelUserSeries(n int) []queries.HotelUserView {
	out := make([]queries.HotelUserView, 0, n)
	for i := 1; i <= n; i++ {
		out = append(out, NewHotelUserBuilder().
			WithID(fmt.Sprintf("u%02d", i)).
			WithCreatedAt(bookingEpoch.Add(time.Duration(i)*time.Minute)).
			BuildReadModel())
	}
	return out
}
