package dayrange

import "strings"

// WeekdayFilter records which weekdays are included in a count.
// It always holds a value for all seven days; the zero value includes none.
type WeekdayFilter struct {
	days [7]bool
}

// AllDays returns a filter with every weekday included
func AllDays() WeekdayFilter {
	var f WeekdayFilter
	for i := range f.days {
		f.days[i] = true
	}
	return f
}

// NewWeekdayFilter returns a filter including exactly the given days
func NewWeekdayFilter(days ...Weekday) WeekdayFilter {
	var f WeekdayFilter
	for _, day := range days {
		if day.Valid() {
			f.days[day] = true
		}
	}
	return f
}

// Includes reports whether day is included
func (f WeekdayFilter) Includes(day Weekday) bool {
	return day.Valid() && f.days[day]
}

// Toggle flips the included flag for exactly one weekday
func (f *WeekdayFilter) Toggle(day Weekday) {
	if day.Valid() {
		f.days[day] = !f.days[day]
	}
}

// Set marks a single weekday as included or excluded
func (f *WeekdayFilter) Set(day Weekday, included bool) {
	if day.Valid() {
		f.days[day] = included
	}
}

// IsAll reports whether every weekday is included
func (f WeekdayFilter) IsAll() bool {
	return f == AllDays()
}

// Days returns the included weekdays in calendar order
func (f WeekdayFilter) Days() []Weekday {
	days := make([]Weekday, 0, len(f.days))
	for _, day := range AllWeekdays {
		if f.days[day] {
			days = append(days, day)
		}
	}
	return days
}

// String lists the included day labels, e.g. "SU,ST"
func (f WeekdayFilter) String() string {
	labels := make([]string, 0, len(f.days))
	for _, day := range f.Days() {
		labels = append(labels, day.Label())
	}
	return strings.Join(labels, ",")
}
