/*
aggregate.go - Cost aggregation across phases and days

PURPOSE:
  Orchestrates the engine: for each phase of the resolved calendar,
  classify each date, check it against the holiday calendar, price it
  through the rate table, and roll the results into phase totals, a
  grand total, and the fringe breakdown.

FAILURE SEMANTICS:
  There is no partial failure mode. A date string that fails to parse
  is skipped, logged, and excluded from all counts. Duplicate dates
  within a phase are collapsed. Zero-hour days contribute nothing and
  do not count as working days. The design goal is "always produce a
  usable number" - degraded-confidence flags travel in the result,
  never as errors.

CONCURRENCY:
  A Calculator is safe for concurrent use: the rate table is
  read-only and the holiday calendar is a plain lookup by the time it
  reaches the engine.
*/
package award

import (
	"log"
	"sort"
)

// Calculator wires the rate table to a holiday calendar. Construct
// one per holiday range (or reuse with a long-lived calendar) and
// invoke Calculate per request.
type Calculator struct {
	table    *RateTable
	holidays HolidayCalendar

	// logf records skipped input, defaulting to the standard logger.
	logf func(format string, args ...any)
}

// NewCalculator creates a calculator. A nil holidays calendar
// degrades to NoHolidays.
func NewCalculator(table *RateTable, holidays HolidayCalendar) *Calculator {
	if holidays == nil {
		holidays = NoHolidays{}
	}
	return &Calculator{table: table, holidays: holidays, logf: log.Printf}
}

// SetLogf replaces the skip logger (tests use this to silence or
// capture skip messages).
func (c *Calculator) SetLogf(logf func(format string, args ...any)) {
	if logf != nil {
		c.logf = logf
	}
}

// Calculate prices a resolved calendar for one profile and applies
// fringes to the grand total.
func (c *Calculator) Calculate(profile PayProfile, calendar map[Phase]PhaseCalendarConfig, settings FringeSettings) LaborCostResult {
	result := LaborCostResult{
		Phases:    make(map[Phase]*PhaseBreakdown, len(Phases())),
		RateFound: profile.Found,
	}

	for _, phase := range Phases() {
		cfg := calendar[phase]
		pb := &PhaseBreakdown{Phase: phase}

		for _, date := range c.activeDates(phase, cfg.Dates) {
			day := WorkDay{
				Date:    date,
				DayType: ClassifyDay(date),
				Hours:   cfg.DefaultHours,
			}
			if c.holidays.IsHoliday(date) {
				day.IsHoliday = true
				if name, ok := c.holidays.HolidayName(date); ok {
					day.HolidayName = name
				}
			}

			// Zero-hour days contribute no cost and are excluded
			// from the day count.
			if day.Hours <= 0 {
				continue
			}

			breakdown := c.table.DayCost(profile, day)
			pb.Days++
			pb.Cost = pb.Cost.Add(breakdown.Total)
			pb.Details = append(pb.Details, breakdown)
		}

		pb.Cost = pb.Cost.Round(2)
		result.TotalGross = result.TotalGross.Add(pb.Cost)
		result.Phases[phase] = pb
	}

	result.TotalGross = result.TotalGross.Round(2)
	result.Fringes = ComputeFringes(result.TotalGross, profile.IsCasual(), settings)
	return result
}

// activeDates parses, deduplicates and sorts a phase's date strings.
// Malformed entries are skipped and logged, never fatal.
func (c *Calculator) activeDates(phase Phase, raw []string) []Date {
	seen := make(map[string]bool, len(raw))
	dates := make([]Date, 0, len(raw))
	for _, s := range raw {
		date, err := ParseDate(s)
		if err != nil {
			c.logf("award: skipping unparseable %s date %q: %v", phase, s, err)
			continue
		}
		key := date.String()
		if seen[key] {
			continue
		}
		seen[key] = true
		dates = append(dates, date)
	}
	sort.Slice(dates, func(i, j int) bool { return dates[i].Before(dates[j]) })
	return dates
}
