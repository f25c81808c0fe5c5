package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"github.com/username/day-range-counter/internal/dayrange"
	"github.com/username/day-range-counter/pkg/dateutil"
	"go.uber.org/zap"
)

func countCmd() *cobra.Command {
	var startStr string
	var endStr string
	var days []string
	var toggles []string
	var includeAllDays bool
	var includeEndDay bool
	var breakdown bool

	cmd := &cobra.Command{
		Use:   "count",
		Short: "Count days between two dates",
		Long: `Count the days in [start, end). The end day is added only with --include-end-day.
--end defaults to today. A start date after the end date counts as 0.

--days restricts counting to the listed weekdays and turns "all days" off
unless --include-all-days is given explicitly. --toggle flips single days
of the configured selection.`,
		Example: `  day-range-counter count --start 2024-03-01 --end 2024-03-08
  day-range-counter count --start 2024-03-04 --end 2024-03-11 --days sa,su
  day-range-counter count --start 01.01.2024 --end 31.12.2024 --days M,T,W,TH,F --include-end-day --breakdown`,
		RunE: func(cmd *cobra.Command, args []string) error {
			start, err := dateutil.ParseDate(startStr)
			if err != nil {
				return fmt.Errorf("invalid start date: %w", err)
			}
			end := dateutil.Today()
			if cmd.Flags().Changed("end") {
				end, err = dateutil.ParseDate(endStr)
				if err != nil {
					return fmt.Errorf("invalid end date: %w", err)
				}
			}

			counter := appConfig.Counter
			if cmd.Flags().Changed("days") {
				if _, err := dayrange.ParseWeekdays(days...); err != nil {
					return fmt.Errorf("invalid --days: %w", err)
				}
				counter.Weekdays = days
				counter.IncludeAllDays = false
			}
			if cmd.Flags().Changed("include-all-days") {
				counter.IncludeAllDays = includeAllDays
			}
			if cmd.Flags().Changed("include-end-day") {
				counter.IncludeEndDay = includeEndDay
			}

			toggled, err := dayrange.ParseWeekdays(toggles...)
			if err != nil {
				return fmt.Errorf("invalid --toggle: %w", err)
			}

			selection := counter.Selection()
			for _, day := range toggled {
				selection.Toggle(day)
			}

			query := selection.Query(start, end)
			tally := dayrange.TallyOf(query)

			logger.Debug("Days counted",
				zap.Stringer("start", start),
				zap.Stringer("end", end),
				zap.Stringer("weekdays", query.Effective()),
				zap.Bool("include_end_day", query.IncludeEndDay),
				zap.Bool("valid", tally.Valid),
				zap.Int("days", tally.Total))

			printTally(cmd.OutOrStdout(), query, tally, breakdown)
			return nil
		},
	}

	cmd.Flags().StringVar(&startStr, "start", "", "Start date (YYYY-MM-DD or DD.MM.YYYY)")
	cmd.Flags().StringVar(&endStr, "end", "", "End date (YYYY-MM-DD or DD.MM.YYYY), defaults to today")
	cmd.Flags().StringSliceVar(&days, "days", nil, "Weekdays to include, e.g. sa,su or M,T,W,TH,F")
	cmd.Flags().StringSliceVar(&toggles, "toggle", nil, "Weekdays to flip in the configured selection")
	cmd.Flags().BoolVar(&includeAllDays, "include-all-days", true, "Count every weekday regardless of --days")
	cmd.Flags().BoolVar(&includeEndDay, "include-end-day", false, "Also evaluate the end date")
	cmd.Flags().BoolVar(&breakdown, "breakdown", false, "Print per-weekday counts")
	_ = cmd.MarkFlagRequired("start")

	return cmd
}

func printTally(w io.Writer, query dayrange.Query, tally dayrange.Tally, breakdown bool) {
	if !tally.Valid {
		fmt.Fprintf(w, "⚠️  Start date %s is after end date %s\n", query.Start, query.End)
	}
	fmt.Fprintf(w, "Days between: %d\n", tally.Total)

	if !breakdown {
		return
	}

	endLabel := "excluded"
	if query.IncludeEndDay {
		endLabel = "included"
	}
	if query.Start.Equal(query.End) {
		fmt.Fprintf(w, "\n📅 %s (end day %s)\n", query.Start, endLabel)
	} else {
		fmt.Fprintf(w, "\n📅 %s .. %s, %d calendar days (end day %s)\n",
			query.Start, query.End, dateutil.DaysBetween(query.Start, query.End), endLabel)
	}
	fmt.Fprintln(w, "═══════════════════════")
	for _, day := range query.Effective().Days() {
		fmt.Fprintf(w, "  %-10s %5d\n", day.String(), tally.Of(day))
	}
}

func weekdaysCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "weekdays",
		Short: "List weekday labels accepted by --days and --toggle",
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			selection := appConfig.Counter.Selection()
			selected := dayrange.Query{
				Filter:         selection.Filter(),
				IncludeAllDays: selection.IncludeAllDays(),
			}.Effective()
			for _, day := range dayrange.AllWeekdays {
				mark := " "
				if selected.Includes(day) {
					mark = "✓"
				}
				fmt.Fprintf(out, "%s %-3s %s\n", mark, day.Label(), day.String())
			}
			return nil
		},
	}
}
