package dayrange

import (
	"math/rand"
	"testing"
	"time"

	"github.com/username/day-range-counter/pkg/dateutil"
)

func date(year int, month time.Month, day int) dateutil.Date {
	return dateutil.Date{Year: year, Month: month, Day: day}
}

func TestCount(t *testing.T) {
	weekend := NewWeekdayFilter(Saturday, Sunday)

	tests := []struct {
		name  string
		query Query
		want  int
	}{
		{
			name:  "One week all days",
			query: Query{Start: date(2024, 3, 1), End: date(2024, 3, 8), IncludeAllDays: true},
			want:  7,
		},
		{
			name:  "One week all days with end day",
			query: Query{Start: date(2024, 3, 1), End: date(2024, 3, 8), IncludeAllDays: true, IncludeEndDay: true},
			want:  8,
		},
		{
			name:  "Start after end",
			query: Query{Start: date(2024, 3, 10), End: date(2024, 3, 1), IncludeAllDays: true, IncludeEndDay: true},
			want:  0,
		},
		{
			name:  "Start after end with filter",
			query: Query{Start: date(2024, 3, 10), End: date(2024, 3, 1), Filter: weekend, IncludeEndDay: true},
			want:  0,
		},
		{
			name:  "Same day without end day",
			query: Query{Start: date(2024, 3, 5), End: date(2024, 3, 5), IncludeAllDays: true},
			want:  0,
		},
		{
			name:  "Same day with end day and Tuesday included",
			query: Query{Start: date(2024, 3, 5), End: date(2024, 3, 5), Filter: NewWeekdayFilter(Tuesday), IncludeEndDay: true},
			want:  1,
		},
		{
			name:  "Same day with end day and Tuesday excluded",
			query: Query{Start: date(2024, 3, 5), End: date(2024, 3, 5), Filter: weekend, IncludeEndDay: true},
			want:  0,
		},
		{
			name:  "Monday to Monday weekends only",
			query: Query{Start: date(2024, 3, 4), End: date(2024, 3, 11), Filter: weekend},
			want:  2,
		},
		{
			name:  "Monday to Monday weekdays only with end day",
			query: Query{Start: date(2024, 3, 4), End: date(2024, 3, 11), Filter: NewWeekdayFilter(Monday, Tuesday, Wednesday, Thursday, Friday), IncludeEndDay: true},
			want:  6,
		},
		{
			name:  "Month rollover in leap year",
			query: Query{Start: date(2024, 1, 30), End: date(2024, 2, 2), IncludeAllDays: true},
			want:  3,
		},
		{
			name:  "Leap February end",
			query: Query{Start: date(2024, 2, 28), End: date(2024, 3, 1), IncludeAllDays: true},
			want:  2,
		},
		{
			name:  "Common February end",
			query: Query{Start: date(2023, 2, 28), End: date(2023, 3, 1), IncludeAllDays: true},
			want:  1,
		},
		{
			name:  "Year rollover",
			query: Query{Start: date(2024, 12, 30), End: date(2025, 1, 2), IncludeAllDays: true, IncludeEndDay: true},
			want:  4,
		},
		{
			name:  "Empty filter counts nothing",
			query: Query{Start: date(2024, 3, 1), End: date(2024, 4, 1), IncludeEndDay: true},
			want:  0,
		},
		{
			name:  "All days overrides empty filter",
			query: Query{Start: date(2024, 3, 1), End: date(2024, 4, 1), IncludeAllDays: true},
			want:  31,
		},
		{
			name:  "Whole leap year",
			query: Query{Start: date(2024, 1, 1), End: date(2025, 1, 1), IncludeAllDays: true},
			want:  366,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := Count(tt.query)

			if result != tt.want {
				t.Errorf("Count(%v..%v, filter=%q, all=%v, end=%v) = %d, want %d",
					tt.query.Start, tt.query.End, tt.query.Filter.String(),
					tt.query.IncludeAllDays, tt.query.IncludeEndDay, result, tt.want)
			}
		})
	}
}

func TestTallyOfByWeekday(t *testing.T) {
	// 2024 starts on a Monday and has 366 days: 52 full weeks plus Monday and Tuesday
	tally := TallyOf(Query{Start: date(2024, 1, 1), End: date(2025, 1, 1), IncludeAllDays: true})

	if !tally.Valid {
		t.Fatalf("TallyOf() Valid = false, want true")
	}
	for _, day := range AllWeekdays {
		want := 52
		if day == Monday || day == Tuesday {
			want = 53
		}
		if got := tally.Of(day); got != want {
			t.Errorf("Tally.Of(%v) = %d, want %d", day, got, want)
		}
	}
}

func TestTallyOfInvalidRange(t *testing.T) {
	tally := TallyOf(Query{Start: date(2024, 3, 10), End: date(2024, 3, 1), IncludeAllDays: true})

	if tally.Valid {
		t.Errorf("TallyOf() Valid = true for reversed range")
	}
	if tally.Total != 0 {
		t.Errorf("TallyOf() Total = %d, want 0", tally.Total)
	}
}

func TestCountMatchesDaysBetweenWhenAllIncluded(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	base := date(1, 1, 1)

	for i := 0; i < 200; i++ {
		start := base.AddDays(rng.Intn(3_000_000))
		end := start.AddDays(rng.Intn(600_000))

		result := Count(Query{Start: start, End: end, IncludeAllDays: true})
		want := dateutil.DaysBetween(start, end)

		if result != want {
			t.Fatalf("Count(%v..%v, all) = %d, want %d", start, end, result, want)
		}
	}
}

// walkTally visits every day of the range one at a time
func walkTally(q Query) Tally {
	if !q.Valid() {
		return Tally{}
	}
	tally := Tally{Valid: true}
	filter := q.Effective()
	last := q.End
	if !q.IncludeEndDay {
		last = last.AddDays(-1)
	}
	for d := q.Start; !d.After(last); d = d.AddDays(1) {
		day := WeekdayOf(d.Weekday())
		if filter.Includes(day) {
			tally.Total++
			tally.ByWeekday[day]++
		}
	}
	return tally
}

func TestTallyOfMatchesDayByDayWalk(t *testing.T) {
	rng := rand.New(rand.NewSource(99))
	base := date(1999, 1, 1)

	for i := 0; i < 500; i++ {
		start := base.AddDays(rng.Intn(10000))
		end := start.AddDays(rng.Intn(100) - 5)

		var filter WeekdayFilter
		for _, day := range AllWeekdays {
			filter.Set(day, rng.Intn(2) == 0)
		}
		q := Query{Start: start, End: end, Filter: filter, IncludeEndDay: rng.Intn(2) == 0}

		if got, want := TallyOf(q), walkTally(q); got != want {
			t.Fatalf("TallyOf(%v..%v, filter=%q, end=%v) = %+v, want %+v",
				start, end, filter.String(), q.IncludeEndDay, got, want)
		}
	}
}

func TestCountFullCalendarRange(t *testing.T) {
	q := Query{Start: date(1, 1, 1), End: date(9999, 12, 31), IncludeAllDays: true, IncludeEndDay: true}

	tally := TallyOf(q)

	if tally.Total != 3652059 {
		t.Errorf("TallyOf(0001-01-01..9999-12-31).Total = %d, want 3652059", tally.Total)
	}
	sum := 0
	for _, day := range AllWeekdays {
		n := tally.Of(day)
		// 3652059 = 521722*7 + 5
		if n != 521722 && n != 521723 {
			t.Errorf("Of(%v) = %d, want 521722 or 521723", day, n)
		}
		sum += n
	}
	if sum != tally.Total {
		t.Errorf("per-weekday sum = %d, want %d", sum, tally.Total)
	}
}

func TestCountUnnormalizedDates(t *testing.T) {
	tests := []struct {
		name  string
		query Query
		want  int
	}{
		{
			name:  "Feb 30 is Mar 1 in a leap year",
			query: Query{Start: date(2024, 2, 30), End: date(2024, 3, 1), IncludeAllDays: true},
			want:  0,
		},
		{
			name:  "Feb 30 through Mar 8",
			query: Query{Start: date(2024, 2, 30), End: date(2024, 3, 8), IncludeAllDays: true},
			want:  7,
		},
		{
			name:  "Day zero end with end day",
			query: Query{Start: date(2024, 2, 28), End: date(2024, 3, 0), IncludeAllDays: true, IncludeEndDay: true},
			want:  2,
		},
		{
			name:  "Rolled over start after end",
			query: Query{Start: date(2024, 2, 31), End: date(2024, 3, 1), IncludeAllDays: true, IncludeEndDay: true},
			want:  0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if result := Count(tt.query); result != tt.want {
				t.Errorf("Count(%v..%v) = %d, want %d", tt.query.Start, tt.query.End, result, tt.want)
			}
		})
	}
}

func TestIncludeEndDayAddsAtMostOne(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	base := date(2022, 6, 1)

	for i := 0; i < 300; i++ {
		start := base.AddDays(rng.Intn(1000))
		end := start.AddDays(rng.Intn(60))

		var filter WeekdayFilter
		for _, day := range AllWeekdays {
			filter.Set(day, rng.Intn(2) == 0)
		}

		without := Count(Query{Start: start, End: end, Filter: filter})
		with := Count(Query{Start: start, End: end, Filter: filter, IncludeEndDay: true})

		want := without
		if filter.Includes(WeekdayOf(end.Weekday())) {
			want++
		}
		if with != want {
			t.Fatalf("Count(%v..%v, filter=%q, end) = %d, want %d", start, end, filter.String(), with, want)
		}
		if with < 0 || with-without > 1 {
			t.Fatalf("IncludeEndDay changed count from %d to %d", without, with)
		}
	}
}

func TestQueryEffective(t *testing.T) {
	q := Query{Filter: NewWeekdayFilter(Friday)}
	if got := q.Effective(); got != NewWeekdayFilter(Friday) {
		t.Errorf("Effective() = %q, want F", got.String())
	}

	q.IncludeAllDays = true
	if got := q.Effective(); !got.IsAll() {
		t.Errorf("Effective() with IncludeAllDays = %q, want all days", got.String())
	}
}
