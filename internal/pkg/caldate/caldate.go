package caldate

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// ReferenceTimezone is the zone against which "today" and all record dates
// are evaluated, independent of the host's local timezone.
const ReferenceTimezone = "Asia/Manila"

// CalendarDate is a (year, month, day) triple with no time-of-day
// component. Two CalendarDates are equal iff all three fields match.
type CalendarDate struct {
	Year  int
	Month time.Month
	Day   int
}

func (d CalendarDate) String() string {
	return fmt.Sprintf("%04d-%02d-%02d", d.Year, int(d.Month), d.Day)
}

// SlashFormat renders the date as M/D/YYYY, the form used in report titles
// and mail subjects.
func (d CalendarDate) SlashFormat() string {
	return fmt.Sprintf("%d/%d/%d", int(d.Month), d.Day, d.Year)
}

var ErrUnrecognizedDate = errors.New("unrecognized date format")

// The feed carries dates either year-first with dashes or month-first with
// slashes. Month and day may be one or two digits.
var layouts = []string{"2006-1-2", "1/2/2006"}

// ParseDate normalizes a raw feed date into a CalendarDate interpreted in
// loc. Backslash escape artifacts from the upstream encoding are stripped
// first. Malformed input yields ErrUnrecognizedDate, never a panic.
func ParseDate(raw string, loc *time.Location) (CalendarDate, error) {
	cleaned := strings.TrimSpace(strings.ReplaceAll(raw, `\`, ""))
	if cleaned == "" {
		return CalendarDate{}, fmt.Errorf("%w: empty value", ErrUnrecognizedDate)
	}

	for _, layout := range layouts {
		t, err := time.ParseInLocation(layout, cleaned, loc)
		if err == nil {
			return FromTime(t, loc), nil
		}
	}

	return CalendarDate{}, fmt.Errorf("%w: %q", ErrUnrecognizedDate, raw)
}

// FromTime truncates an instant to the calendar date it falls on in loc.
func FromTime(t time.Time, loc *time.Location) CalendarDate {
	y, m, d := t.In(loc).Date()
	return CalendarDate{Year: y, Month: m, Day: d}
}

// Today returns the current calendar date in loc.
func Today(loc *time.Location) CalendarDate {
	return FromTime(time.Now(), loc)
}
