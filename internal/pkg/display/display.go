package display

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"strings"
	"time"
)

const (
	DateLayout = "01/02/2006"
	NotAvail   = "N/A"
)

var ErrUnparseable = errors.New("unparseable date value")

// Timestamp mirrors the {seconds, nanos} shape document stores hand back for server timestamps.
type Timestamp struct {
	Seconds int64 `json:"seconds"`
	Nanos   int32 `json:"nanos,omitempty"`
}

func (t Timestamp) Time() time.Time {
	return time.Unix(t.Seconds, int64(t.Nanos))
}

var stringLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	time.DateOnly,
	DateLayout,
	time.RFC1123Z,
	time.RFC1123,
}

// Formatter renders dates as MM/DD/YYYY in a fixed location.
type Formatter struct {
	loc *time.Location
}

func NewFormatter(loc *time.Location) *Formatter {
	if loc == nil {
		loc = time.UTC
	}
	return &Formatter{loc: loc}
}

func (f *Formatter) Location() *time.Location {
	return f.loc
}

// FormatDate never fails; anything Normalize rejects renders as N/A.
func (f *Formatter) FormatDate(v any) string {
	t, err := f.Normalize(v)
	if err != nil {
		return NotAvail
	}
	return t.In(f.loc).Format(DateLayout)
}

// Normalize turns the date shapes records carry into a time.Time.
// A Timestamp whose Seconds is zero counts as absent.
func (f *Formatter) Normalize(v any) (time.Time, error) {
	switch val := v.(type) {
	case nil:
		return time.Time{}, ErrUnparseable
	case Timestamp:
		if val.Seconds == 0 {
			return time.Time{}, ErrUnparseable
		}
		return val.Time(), nil
	case *Timestamp:
		if val == nil {
			return time.Time{}, ErrUnparseable
		}
		return f.Normalize(*val)
	case map[string]any:
		return f.normalizeMap(val)
	case time.Time:
		if val.IsZero() {
			return time.Time{}, ErrUnparseable
		}
		return val, nil
	case *time.Time:
		if val == nil {
			return time.Time{}, ErrUnparseable
		}
		return f.Normalize(*val)
	case string:
		return f.parseString(val)
	case json.Number:
		ms, err := val.Float64()
		if err != nil {
			return time.Time{}, fmt.Errorf("%w: %q", ErrUnparseable, val)
		}
		return fromMillis(ms)
	case int:
		return fromMillis(float64(val))
	case int32:
		return fromMillis(float64(val))
	case int64:
		return fromMillis(float64(val))
	case float64:
		return fromMillis(val)
	default:
		return time.Time{}, fmt.Errorf("%w: %T", ErrUnparseable, v)
	}
}

func (f *Formatter) normalizeMap(m map[string]any) (time.Time, error) {
	raw, ok := m["seconds"]
	if !ok {
		return time.Time{}, ErrUnparseable
	}
	var secs float64
	switch s := raw.(type) {
	case float64:
		secs = s
	case int64:
		secs = float64(s)
	case int:
		secs = float64(s)
	case json.Number:
		v, err := s.Float64()
		if err != nil {
			return time.Time{}, ErrUnparseable
		}
		secs = v
	default:
		return time.Time{}, ErrUnparseable
	}
	if secs == 0 || math.IsNaN(secs) || math.IsInf(secs, 0) {
		return time.Time{}, ErrUnparseable
	}
	return time.Unix(int64(secs), 0), nil
}

// Date-only strings are read as midnight in the display location so they never shift a day.
// Numeric strings are not epochs.
func (f *Formatter) parseString(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, ErrUnparseable
	}
	for _, layout := range stringLayouts {
		if t, err := time.ParseInLocation(layout, s, f.loc); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("%w: %q", ErrUnparseable, s)
}

func fromMillis(ms float64) (time.Time, error) {
	if math.IsNaN(ms) || math.IsInf(ms, 0) || math.Abs(ms) > 8.64e15 {
		return time.Time{}, ErrUnparseable
	}
	return time.UnixMilli(int64(ms)), nil
}

var defaultFormatter = NewFormatter(time.UTC)

// FormatDate formats in UTC.
func FormatDate(v any) string {
	return defaultFormatter.FormatDate(v)
}
