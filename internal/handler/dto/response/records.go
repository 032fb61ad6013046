package response

import (
	"time"

	"hotel-admin/internal/pkg/display"
	"hotel-admin/internal/usecase/queries"

	"github.com/jinzhu/copier"
)

type HotelUserRow struct {
	SrNo      int    `json:"sr_no"`
	ID        string `json:"id"`
	Fullname  string `json:"fullname"`
	Email     string `json:"email"`
	CreatedAt string `json:"created_at"`
}

// BookingRow carries Actions only while the booking can still be decided.
type BookingRow struct {
	SrNo        int      `json:"sr_no"`
	ID          string   `json:"id"`
	RoomType    string   `json:"room_type"`
	CheckIn     string   `json:"check_in"`
	CheckOut    string   `json:"check_out"`
	GuestsCount int32    `json:"guests_count"`
	Status      string   `json:"status"`
	CreatedAt   string   `json:"created_at"`
	Actions     []string `json:"actions"`
}

// copyOptions renders every time.Time field through the display formatter.
func copyOptions(f *display.Formatter) copier.Option {
	return copier.Option{
		Converters: []copier.TypeConverter{{
			SrcType: time.Time{},
			DstType: copier.String,
			Fn: func(src any) (any, error) {
				return f.FormatDate(src), nil
			},
		}},
	}
}

func FromHotelUsers(f *display.Formatter, offset int, views []queries.HotelUserView) ([]HotelUserRow, error) {
	opt := copyOptions(f)
	rows := make([]HotelUserRow, len(views))
	for i := range views {
		if err := copier.CopyWithOption(&rows[i], &views[i], opt); err != nil {
			return nil, err
		}
		rows[i].SrNo = offset + i + 1
	}
	return rows, nil
}

func FromBookings(f *display.Formatter, offset int, views []queries.BookingView) ([]BookingRow, error) {
	opt := copyOptions(f)
	rows := make([]BookingRow, len(views))
	for i, v := range views {
		if err := copier.CopyWithOption(&rows[i], &views[i], opt); err != nil {
			return nil, err
		}
		rows[i].SrNo = offset + i + 1
		rows[i].CheckIn = f.FormatDate(v.CheckIn)
		rows[i].CheckOut = f.FormatDate(v.CheckOut)
		rows[i].Actions = []string{}
		for _, a := range v.Status.Actions() {
			rows[i].Actions = append(rows[i].Actions, a.String())
		}
	}
	return rows, nil
}

type PageResponse[T any] struct {
	Items      []T    `json:"items"`
	NextCursor string `json:"next_cursor,omitempty"`
	Completed  bool   `json:"completed"`
}

func NewPageResponse[V any, T any](page queries.Page[V], items []T) PageResponse[T] {
	resp := PageResponse[T]{Items: items, Completed: page.Empty()}
	if page.NextCursor != nil {
		resp.NextCursor = page.NextCursor.After
	}
	return resp
}
