//go:build unit

package display

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestFormatDate(t *testing.T) {
	cases := []struct {
		name string
		in   any
		want string
	}{
		{name: "seconds struct", in: Timestamp{Seconds: 1700000000}, want: "11/14/2023"},
		{name: "seconds struct pointer", in: &Timestamp{Seconds: 1700000000}, want: "11/14/2023"},
		{name: "seconds map", in: map[string]any{"seconds": float64(1700000000)}, want: "11/14/2023"},
		{name: "zero seconds", in: Timestamp{}, want: NotAvail},
		{name: "zero seconds map", in: map[string]any{"seconds": float64(0)}, want: NotAvail},
		{name: "map without seconds", in: map[string]any{"nanos": 1}, want: NotAvail},
		{name: "time", in: time.Date(2024, 2, 29, 23, 0, 0, 0, time.UTC), want: "02/29/2024"},
		{name: "zero time", in: time.Time{}, want: NotAvail},
		{name: "rfc3339 string", in: "2024-07-04T10:00:00Z", want: "07/04/2024"},
		{name: "date only string", in: "2024-12-31", want: "12/31/2024"},
		{name: "already formatted", in: "01/15/2024", want: "01/15/2024"},
		{name: "milliseconds", in: int64(1700000000000), want: "11/14/2023"},
		{name: "milliseconds float", in: float64(1700000000000), want: "11/14/2023"},
		{name: "numeric string", in: "1700000000000", want: NotAvail},
		{name: "json number", in: json.Number("1700000000000"), want: "11/14/2023"},
		{name: "nil", in: nil, want: NotAvail},
		{name: "garbage string", in: "not-a-date", want: NotAvail},
		{name: "empty string", in: "", want: NotAvail},
		{name: "unsupported type", in: []int{1}, want: NotAvail},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			assert.Equal(t, c.want, FormatDate(c.in))
		})
	}
}

func TestFormatterLocation(t *testing.T) {
	tokyo := time.FixedZone("JST", 9*60*60)
	f := NewFormatter(tokyo)

	// 2023-11-14T22:13:20Z is already the 15th in Tokyo.
	assert.Equal(t, "11/15/2023", f.FormatDate(Timestamp{Seconds: 1700000000}))
	assert.Equal(t, "12/31/2024", f.FormatDate("2024-12-31"))
	assert.Equal(t, tokyo, f.Location())
}

func TestNormalizeReportsUnparseable(t *testing.T) {
	_, err := NewFormatter(nil).Normalize("yesterday")
	assert.ErrorIs(t, err, ErrUnparseable)
}
