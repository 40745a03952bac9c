package award_test

import (
	"strings"
	"testing"

	"github.com/callsheet/budget-engine/award"
)

// =============================================================================
// TEST INFRASTRUCTURE
// =============================================================================

// fakeHolidays is a fixed-date holiday calendar for tests.
type fakeHolidays map[string]string

func (f fakeHolidays) IsHoliday(d award.Date) bool {
	_, ok := f[d.String()]
	return ok
}

func (f fakeHolidays) HolidayName(d award.Date) (string, bool) {
	name, ok := f[d.String()]
	return name, ok
}

func shootOnly(hours float64, dates ...string) map[award.Phase]award.PhaseCalendarConfig {
	return map[award.Phase]award.PhaseCalendarConfig{
		award.PhaseShoot: {DefaultHours: hours, Dates: dates},
	}
}

// =============================================================================
// AGGREGATION
// =============================================================================

func TestCalculate_SumsPhasesAndAppliesFringes(t *testing.T) {
	// GIVEN: Permanent crew at $50/h, a 3-day shoot week
	//        (Fri 2026-02-06, Sat 07, Sun 08), 8h days
	// THEN: 410 + 605 + 705 = 1720 gross, fringes on the total
	calc := award.NewCalculator(award.NewRateTable(), award.NoHolidays{})
	p := profile(award.CategoryCrew, award.EmploymentPermanent)

	result := calc.Calculate(p, shootOnly(8, "2026-02-06", "2026-02-07", "2026-02-08"), award.DefaultFringeSettings())

	if !result.TotalGross.Equal(money("1720")) {
		t.Fatalf("gross = %s, want 1720", result.TotalGross)
	}
	shoot := result.Phases[award.PhaseShoot]
	if shoot.Days != 3 {
		t.Errorf("shoot days = %d, want 3", shoot.Days)
	}
	if !shoot.Cost.Equal(money("1720")) {
		t.Errorf("shoot cost = %s, want 1720", shoot.Cost)
	}
	if len(shoot.Details) != 3 {
		t.Errorf("details = %d, want 3", len(shoot.Details))
	}

	// Fringes computed once, on the grand total: 11.5% + 4% + 4.85%
	// + 1.5% of 1720 = 197.80 + 68.80 + 83.42 + 25.80.
	if !result.Fringes.Total.Equal(money("375.82")) {
		t.Errorf("fringes total = %s, want 375.82", result.Fringes.Total)
	}
}

func TestCalculate_HolidayOverridesDayTypeInRateOnly(t *testing.T) {
	// A holiday Saturday prices at the holiday rate but keeps
	// SATURDAY as its recorded day type.
	holidays := fakeHolidays{"2026-04-04": "Day after Good Friday"}
	calc := award.NewCalculator(award.NewRateTable(), holidays)
	p := profile(award.CategoryCrew, award.EmploymentPermanent)

	result := calc.Calculate(p, shootOnly(8, "2026-04-04"), award.DefaultFringeSettings())

	detail := result.Phases[award.PhaseShoot].Details[0]
	if detail.DayType != award.Saturday {
		t.Errorf("day type = %s, want SATURDAY", detail.DayType)
	}
	if !detail.IsHoliday || detail.HolidayName != "Day after Good Friday" {
		t.Errorf("holiday flag/name not carried: %+v", detail)
	}
	// 8h x 50 x 2.5 = 1000, not the Saturday 605.
	if !detail.Total.Equal(money("1000")) {
		t.Errorf("holiday Saturday cost = %s, want 1000", detail.Total)
	}
}

func TestCalculate_SkipsMalformedDates(t *testing.T) {
	// GIVEN: A calendar with one bad date string
	// THEN: The bad date is logged and excluded from every count;
	//       the calculation never fails
	calc := award.NewCalculator(award.NewRateTable(), nil)
	var logged []string
	calc.SetLogf(func(format string, args ...any) {
		logged = append(logged, format)
	})
	p := profile(award.CategoryCrew, award.EmploymentPermanent)

	result := calc.Calculate(p, shootOnly(8, "2026-02-02", "not-a-date"), award.DefaultFringeSettings())

	shoot := result.Phases[award.PhaseShoot]
	if shoot.Days != 1 {
		t.Errorf("days = %d, want 1 (malformed date excluded)", shoot.Days)
	}
	if len(logged) != 1 || !strings.Contains(logged[0], "skipping") {
		t.Errorf("expected one skip log line, got %v", logged)
	}
}

func TestCalculate_DeduplicatesAndSortsDates(t *testing.T) {
	calc := award.NewCalculator(award.NewRateTable(), nil)
	p := profile(award.CategoryCrew, award.EmploymentPermanent)

	result := calc.Calculate(p,
		shootOnly(8, "2026-02-03", "2026-02-02", "2026-02-03T00:00:00Z"),
		award.DefaultFringeSettings())

	shoot := result.Phases[award.PhaseShoot]
	if shoot.Days != 2 {
		t.Fatalf("days = %d, want 2 (duplicate collapsed)", shoot.Days)
	}
	if shoot.Details[0].Date.String() != "2026-02-02" {
		t.Errorf("details not sorted: first is %s", shoot.Details[0].Date)
	}
}

func TestCalculate_ZeroHourDaysExcluded(t *testing.T) {
	calc := award.NewCalculator(award.NewRateTable(), nil)
	p := profile(award.CategoryCrew, award.EmploymentPermanent)

	result := calc.Calculate(p, shootOnly(0, "2026-02-02", "2026-02-03"), award.DefaultFringeSettings())

	shoot := result.Phases[award.PhaseShoot]
	if shoot.Days != 0 || !shoot.Cost.IsZero() {
		t.Errorf("zero-hour days must contribute nothing: days=%d cost=%s", shoot.Days, shoot.Cost)
	}
}

func TestCalculate_CasualFringeExclusionFlowsThrough(t *testing.T) {
	calc := award.NewCalculator(award.NewRateTable(), nil)
	p := profile(award.CategoryCrew, award.EmploymentCasual)

	result := calc.Calculate(p, shootOnly(8, "2026-02-02"), award.DefaultFringeSettings())

	if !result.Fringes.HolidayPay.IsZero() {
		t.Errorf("casual profile must produce zero holiday pay, got %s", result.Fringes.HolidayPay)
	}
}

func TestCalculate_FallbackScheduleEndToEnd(t *testing.T) {
	// Resolver fallback + aggregator: 40 weekday dates at default
	// hours must produce a plausible non-zero estimate.
	resolved := award.ResolveCalendar(nil, nil, nil, award.ModeInherit)
	calc := award.NewCalculator(award.NewRateTable(), award.NoHolidays{})
	p := profile(award.CategoryCrew, award.EmploymentPermanent)

	result := calc.Calculate(p, resolved, award.DefaultFringeSettings())

	if result.Phases[award.PhasePreProd].Days != 10 ||
		result.Phases[award.PhaseShoot].Days != 20 ||
		result.Phases[award.PhasePostProd].Days != 10 {
		t.Fatalf("fallback day counts wrong: %d/%d/%d",
			result.Phases[award.PhasePreProd].Days,
			result.Phases[award.PhaseShoot].Days,
			result.Phases[award.PhasePostProd].Days)
	}

	// Pre/post: 10 x 8h weekdays = 10 x 410 = 4100 each.
	// Shoot: 20 x 10h weekdays = 20 x (380 + 150 + 40) = 20 x 570.
	if !result.Phases[award.PhaseShoot].Cost.Equal(money("11400")) {
		t.Errorf("shoot cost = %s, want 11400", result.Phases[award.PhaseShoot].Cost)
	}
	if !result.TotalGross.Equal(money("19600")) {
		t.Errorf("gross = %s, want 19600", result.TotalGross)
	}
}
