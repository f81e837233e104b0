package domain

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/SscSPs/property_backoffice/internal/apperrors"
)

// DateLayout is the calendar-day format used on the wire and in stored records.
const DateLayout = "2006-01-02"

var errEmptyDate = errors.New("empty date")

// acceptedLayouts lists the date forms seen across imports and manual entry.
var acceptedLayouts = []string{
	DateLayout,
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006/01/02",
	"01/02/2006",
}

// Day truncates t to midnight UTC of the calendar day t falls on in its own location.
func Day(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// ParseDay parses a date string in any accepted layout and returns its UTC calendar
// day. Timestamps with an offset are moved to UTC first; layouts without a zone
// already parse as UTC.
func ParseDay(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, errEmptyDate
	}
	for _, layout := range acceptedLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return Day(t.UTC()), nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognised date %q", s)
}

// FormatDay renders t as YYYY-MM-DD.
func FormatDay(t time.Time) string {
	return Day(t).Format(DateLayout)
}

// DaysInMonth returns the number of days in the given month.
func DaysInMonth(year int, month time.Month) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// Window is an inclusive [Start, End] range of calendar days.
type Window struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

// NewWindow normalizes both bounds to day precision and rejects start > end.
func NewWindow(start, end time.Time) (Window, error) {
	s, e := Day(start), Day(end)
	if s.After(e) {
		return Window{}, fmt.Errorf("%w: start %s is after end %s",
			apperrors.ErrInvalidRange, s.Format(DateLayout), e.Format(DateLayout))
	}
	return Window{Start: s, End: e}, nil
}

// ParseWindow builds a Window from two date strings.
func ParseWindow(start, end string) (Window, error) {
	s, err := ParseDay(start)
	if err != nil {
		return Window{}, fmt.Errorf("%w: start: %v", apperrors.ErrValidation, err)
	}
	e, err := ParseDay(end)
	if err != nil {
		return Window{}, fmt.Errorf("%w: end: %v", apperrors.ErrValidation, err)
	}
	return NewWindow(s, e)
}

// Contains reports whether the calendar day of t lies inside the window, bounds included.
func (w Window) Contains(t time.Time) bool {
	d := Day(t)
	return !d.Before(Day(w.Start)) && !d.After(Day(w.End))
}

func (w Window) String() string {
	return FormatDay(w.Start) + ".." + FormatDay(w.End)
}
