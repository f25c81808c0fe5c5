package dayrange

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// ErrUnknownWeekday is returned when a weekday label cannot be recognized
var ErrUnknownWeekday = errors.New("unknown weekday")

// Weekday is one of the seven days of the week
type Weekday int

const (
	Sunday Weekday = iota
	Monday
	Tuesday
	Wednesday
	Thursday
	Friday
	Saturday
)

// AllWeekdays lists every weekday in calendar order, Sunday first
var AllWeekdays = []Weekday{Sunday, Monday, Tuesday, Wednesday, Thursday, Friday, Saturday}

var fromTimeWeekday = map[time.Weekday]Weekday{
	time.Sunday:    Sunday,
	time.Monday:    Monday,
	time.Tuesday:   Tuesday,
	time.Wednesday: Wednesday,
	time.Thursday:  Thursday,
	time.Friday:    Friday,
	time.Saturday:  Saturday,
}

var weekdayNames = map[Weekday]string{
	Sunday:    "Sunday",
	Monday:    "Monday",
	Tuesday:   "Tuesday",
	Wednesday: "Wednesday",
	Thursday:  "Thursday",
	Friday:    "Friday",
	Saturday:  "Saturday",
}

// Short labels as shown on the day-selection buttons
var weekdayLabels = map[Weekday]string{
	Sunday:    "SU",
	Monday:    "M",
	Tuesday:   "T",
	Wednesday: "W",
	Thursday:  "TH",
	Friday:    "F",
	Saturday:  "ST",
}

// weekdayAliases maps every accepted lowercase spelling to its weekday
var weekdayAliases = map[string]Weekday{
	"su": Sunday, "sun": Sunday, "sunday": Sunday,
	"m": Monday, "mo": Monday, "mon": Monday, "monday": Monday,
	"t": Tuesday, "tu": Tuesday, "tue": Tuesday, "tues": Tuesday, "tuesday": Tuesday,
	"w": Wednesday, "we": Wednesday, "wed": Wednesday, "wednesday": Wednesday,
	"th": Thursday, "thu": Thursday, "thur": Thursday, "thurs": Thursday, "thursday": Thursday,
	"f": Friday, "fr": Friday, "fri": Friday, "friday": Friday,
	"st": Saturday, "sa": Saturday, "sat": Saturday, "saturday": Saturday,
}

// WeekdayOf converts a time.Weekday into a Weekday
func WeekdayOf(day time.Weekday) Weekday {
	return fromTimeWeekday[day]
}

// Valid reports whether w is one of the seven weekdays
func (w Weekday) Valid() bool {
	return w >= Sunday && w <= Saturday
}

// String returns the full English name of the weekday
func (w Weekday) String() string {
	if name, ok := weekdayNames[w]; ok {
		return name
	}
	return fmt.Sprintf("Weekday(%d)", int(w))
}

// Label returns the short button label (SU, M, T, W, TH, F, ST)
func (w Weekday) Label() string {
	return weekdayLabels[w]
}

// ParseWeekday recognizes full names, common abbreviations and the short labels, case-insensitively
func ParseWeekday(s string) (Weekday, error) {
	key := strings.ToLower(strings.TrimSpace(s))
	if day, ok := weekdayAliases[key]; ok {
		return day, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownWeekday, s)
}

// ParseWeekdays parses a list of labels, each of which may itself be comma separated.
// Empty items are skipped.
func ParseWeekdays(items ...string) ([]Weekday, error) {
	var days []Weekday
	for _, item := range items {
		for _, part := range strings.Split(item, ",") {
			if strings.TrimSpace(part) == "" {
				continue
			}
			day, err := ParseWeekday(part)
			if err != nil {
				return nil, err
			}
			days = append(days, day)
		}
	}
	return days, nil
}
