package dateutil

import (
	"fmt"
	"strings"
	"time"
)

// Layout is the canonical YYYY-MM-DD representation of a Date
const Layout = "2006-01-02"

// Date is a calendar date (year, month, day) without time of day or location
type Date struct {
	Year  int
	Month time.Month
	Day   int
}

// NewDate returns the normalized date for the given year, month and day.
// Out-of-range values roll over the way time.Date does (Feb 30 -> Mar 1 or 2).
func NewDate(year int, month time.Month, day int) Date {
	return FromTime(time.Date(year, month, day, 0, 0, 0, 0, time.UTC))
}

// FromTime returns the calendar date of t in t's own location
func FromTime(t time.Time) Date {
	y, m, d := t.Date()
	return Date{Year: y, Month: m, Day: d}
}

// Time returns the date at midnight UTC
func (d Date) Time() time.Time {
	return time.Date(d.Year, d.Month, d.Day, 0, 0, 0, 0, time.UTC)
}

// Weekday returns the day of the week for the date
func (d Date) Weekday() time.Weekday {
	return d.Time().Weekday()
}

// AddDays returns the date n calendar days later (earlier for negative n).
// Month and year boundaries, including leap Februaries, roll over correctly.
func (d Date) AddDays(n int) Date {
	return NewDate(d.Year, d.Month, d.Day+n)
}

// Normalized returns d with out-of-range fields rolled over, see NewDate
func (d Date) Normalized() Date {
	return NewDate(d.Year, d.Month, d.Day)
}

// Compare returns -1 if d is before other, 0 if equal, +1 if after.
// Both dates are normalized first, so Date{2024, 2, 30} equals Date{2024, 3, 1}.
func (d Date) Compare(other Date) int {
	a, b := d.Normalized(), other.Normalized()
	switch {
	case a.Year != b.Year:
		return sign(a.Year - b.Year)
	case a.Month != b.Month:
		return sign(int(a.Month) - int(b.Month))
	default:
		return sign(a.Day - b.Day)
	}
}

// Before reports whether d is strictly earlier than other
func (d Date) Before(other Date) bool {
	return d.Compare(other) < 0
}

// After reports whether d is strictly later than other
func (d Date) After(other Date) bool {
	return d.Compare(other) > 0
}

// Equal reports whether both dates denote the same calendar day
func (d Date) Equal(other Date) bool {
	return d.Compare(other) == 0
}

// String formats the date as YYYY-MM-DD
func (d Date) String() string {
	return fmt.Sprintf("%04d-%02d-%02d", d.Year, d.Month, d.Day)
}

// MarshalText implements encoding.TextMarshaler
func (d Date) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler
func (d *Date) UnmarshalText(text []byte) error {
	parsed, err := ParseDate(string(text))
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

const secondsPerDay = 24 * 60 * 60

// DaysBetween returns the number of calendar days from a to b (negative if b is before a).
// Works on Unix seconds since time.Duration overflows past roughly 292 years.
func DaysBetween(a, b Date) int {
	return int((b.Time().Unix() - a.Time().Unix()) / secondsPerDay)
}

// ParseDate parses date string in various formats.
// Any time-of-day component is discarded; the date is taken as written.
func ParseDate(dateStr string) (Date, error) {
	dateStr = strings.TrimSpace(dateStr)
	if dateStr == "" {
		return Date{}, fmt.Errorf("empty date")
	}

	formats := []string{
		Layout,
		"02.01.2006",
		"2006-01-02T15:04:05",
		"2006-01-02T15:04:05Z",
		"2006-01-02T15:04:05-0700",
		time.RFC3339,
	}

	for _, format := range formats {
		if t, err := time.Parse(format, dateStr); err == nil {
			return FromTime(t), nil
		}
	}

	return Date{}, fmt.Errorf("unrecognized date %q, expected YYYY-MM-DD", dateStr)
}

// Today returns today's date in the local timezone
func Today() Date {
	return FromTime(time.Now())
}

func sign(v int) int {
	switch {
	case v < 0:
		return -1
	case v > 0:
		return 1
	default:
		return 0
	}
}
