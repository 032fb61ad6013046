package response

import (
	"hotel-admin/internal/pkg/display"
	"hotel-admin/internal/usecase/dashboard"
	"hotel-admin/internal/usecase/listing"

	"github.com/google/uuid"
)

const EndOfRecordsMessage = "No more records to show"

type IntentResponse struct {
	BookingID string `json:"booking_id"`
	Status    string `json:"status"`
	Title     string `json:"title"`
	Prompt    string `json:"prompt"`
}

func FromIntent(i listing.Intent) *IntentResponse {
	return &IntentResponse{
		BookingID: i.BookingID,
		Status:    i.Status.String(),
		Title:     i.Title(),
		Prompt:    i.Prompt(),
	}
}

// ViewResponse is what the table renders: rows, loader, end-of-data footer
// and, for bookings, the confirmation dialog if one is open.
type ViewResponse struct {
	ID           uuid.UUID       `json:"id"`
	Kind         string          `json:"kind"`
	Title        string          `json:"title"`
	Records      any             `json:"records"`
	Completed    bool            `json:"completed"`
	Loading      bool            `json:"loading"`
	Version      uint64          `json:"version"`
	EmptyMessage string          `json:"empty_message,omitempty"`
	Footer       string          `json:"footer,omitempty"`
	Skipped      bool            `json:"skipped,omitempty"`
	SkipReason   string          `json:"skip_reason,omitempty"`
	Intent       *IntentResponse `json:"intent,omitempty"`
}

func FromView(f *display.Formatter, v *dashboard.View) (*ViewResponse, error) {
	resp := &ViewResponse{
		ID:    v.ID(),
		Kind:  string(v.Kind()),
		Title: v.Title(),
	}

	var count int
	switch v.Kind() {
	case dashboard.KindBookings:
		snap := v.Bookings().Snapshot()
		rows, err := FromBookings(f, 0, snap.Records)
		if err != nil {
			return nil, err
		}
		resp.Records, resp.Completed, resp.Loading, resp.Version = rows, snap.Completed, snap.Loading, snap.Version
		count = len(rows)
		if gate, err := v.Gate(); err == nil {
			if intent, ok := gate.Pending(); ok {
				resp.Intent = FromIntent(intent)
			}
		}
	default:
		snap := v.Users().Snapshot()
		rows, err := FromHotelUsers(f, 0, snap.Records)
		if err != nil {
			return nil, err
		}
		resp.Records, resp.Completed, resp.Loading, resp.Version = rows, snap.Completed, snap.Loading, snap.Version
		count = len(rows)
	}

	switch {
	case count == 0 && !resp.Loading:
		resp.EmptyMessage = v.Kind().EmptyMessage()
	case count > 0 && resp.Completed:
		resp.Footer = EndOfRecordsMessage
	}
	return resp, nil
}

func (r *ViewResponse) WithLoadResult(res listing.LoadResult) *ViewResponse {
	r.Skipped = res.Skipped
	r.SkipReason = string(res.Reason)
	return r
}
