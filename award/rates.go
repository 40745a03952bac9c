/*
rates.go - The four-axis award rate table and tiered day-cost walk

PURPOSE:
  Prices a single work day under the award's bracketed
  overtime/penalty schedule. The schedule differs across four
  orthogonal axes: category (Artist/Crew) x employment
  (permanent/casual) x day type (weekday/Saturday/Sunday) x holiday.

BAND STRUCTURE:
  Ordinary hours end at 7.6h and the first overtime bracket at 9.6h.
  Bands partition [0, inf): each band prices the hours between the
  previous boundary and its own, at its multiplier of the base rate.
  Sunday and holiday rule-sets for several combinations collapse to a
  single unbounded band (flat penalty for all hours).

THE ARTIST/CREW ASYMMETRY:
  Artists have no distinct Saturday penalty - Saturday folds into
  their Mon-Sat table. Crew price Saturday (and Sunday) through their
  own penalty brackets. This asymmetry is a fixed business constant
  and is preserved exactly.

MINIMUM CALL:
  Every day is priced at no less than 4 hours, regardless of the
  scheduled hours.

These multipliers are domain-fixed constants from the award pay
guide, not configuration.
*/
package award

import (
	"github.com/shopspring/decimal"
)

// MinimumCallHours is the shortest day a worker can be paid for.
const MinimumCallHours = 4.0

// Band boundaries: ordinary hours end at 7.6h, first overtime
// bracket ends at 9.6h.
var (
	ordinaryCeiling = dec("7.6")
	overtimeCeiling = dec("9.6")
)

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

// =============================================================================
// RATE BANDS
// =============================================================================

// RateBand prices the hours between the previous band's boundary and
// UpTo at Multiplier x base rate. A nil UpTo means unbounded (the
// band absorbs all remaining hours).
type RateBand struct {
	UpTo       *decimal.Decimal
	Multiplier decimal.Decimal
}

func band(upTo decimal.Decimal, multiplier string) RateBand {
	return RateBand{UpTo: &upTo, Multiplier: dec(multiplier)}
}

func openBand(multiplier string) RateBand {
	return RateBand{Multiplier: dec(multiplier)}
}

// daySlot is the rate-lookup day axis. Unlike DayType it folds the
// holiday flag in: holiday status overrides the weekday/weekend slot
// in rate selection (but not in the recorded DayType).
type daySlot int

const (
	slotWeekday daySlot = iota
	slotSaturday
	slotSunday
	slotHoliday
)

func slotFor(dayType DayType, isHoliday bool) daySlot {
	if isHoliday {
		return slotHoliday
	}
	switch dayType {
	case Saturday:
		return slotSaturday
	case Sunday:
		return slotSunday
	default:
		return slotWeekday
	}
}

// ruleKey is the composite lookup key. Using tagged enums here makes
// invalid (category, employment, slot) combinations unrepresentable.
type ruleKey struct {
	category   Category
	employment Employment
	slot       daySlot
}

// =============================================================================
// RATE TABLE
// =============================================================================

// RateTable is the read-only four-axis band lookup. Construct once
// (NewRateTable) and share freely; concurrent reads are safe.
type RateTable struct {
	rules map[ruleKey][]RateBand
}

// NewRateTable builds the fixed award rate table.
func NewRateTable() *RateTable {
	t := &RateTable{rules: make(map[ruleKey][]RateBand)}

	// Artists (Category E), permanent. Mon-Sat shares one table:
	// Artists have no separate Saturday penalty.
	artistPermanent := []RateBand{
		band(ordinaryCeiling, "1.0"),
		band(overtimeCeiling, "1.5"),
		openBand("2.0"),
	}
	t.set(CategoryArtist, EmploymentPermanent, slotWeekday, artistPermanent)
	t.set(CategoryArtist, EmploymentPermanent, slotSaturday, artistPermanent)
	t.set(CategoryArtist, EmploymentPermanent, slotSunday, []RateBand{openBand("2.0")})
	t.set(CategoryArtist, EmploymentPermanent, slotHoliday, []RateBand{openBand("2.5")})

	// Artists, casual: 25% loading on ordinary hours, loaded overtime.
	artistCasual := []RateBand{
		band(ordinaryCeiling, "1.25"),
		band(overtimeCeiling, "1.875"),
		openBand("2.5"),
	}
	t.set(CategoryArtist, EmploymentCasual, slotWeekday, artistCasual)
	t.set(CategoryArtist, EmploymentCasual, slotSaturday, artistCasual)
	t.set(CategoryArtist, EmploymentCasual, slotSunday, []RateBand{openBand("2.0")})
	t.set(CategoryArtist, EmploymentCasual, slotHoliday, []RateBand{openBand("2.5")})

	// Crew, permanent.
	t.set(CategoryCrew, EmploymentPermanent, slotWeekday, []RateBand{
		band(ordinaryCeiling, "1.0"),
		band(overtimeCeiling, "1.5"),
		openBand("2.0"),
	})
	t.set(CategoryCrew, EmploymentPermanent, slotSaturday, []RateBand{
		band(ordinaryCeiling, "1.5"),
		band(overtimeCeiling, "1.75"),
		openBand("2.0"),
	})
	t.set(CategoryCrew, EmploymentPermanent, slotSunday, []RateBand{
		band(ordinaryCeiling, "1.75"),
		openBand("2.0"),
	})
	t.set(CategoryCrew, EmploymentPermanent, slotHoliday, []RateBand{openBand("2.5")})

	// Crew, casual.
	t.set(CategoryCrew, EmploymentCasual, slotWeekday, []RateBand{
		band(ordinaryCeiling, "1.25"),
		band(overtimeCeiling, "1.875"),
		openBand("2.5"),
	})
	t.set(CategoryCrew, EmploymentCasual, slotSaturday, []RateBand{
		band(ordinaryCeiling, "1.75"),
		band(overtimeCeiling, "2.1875"),
		openBand("2.5"),
	})
	t.set(CategoryCrew, EmploymentCasual, slotSunday, []RateBand{
		band(ordinaryCeiling, "2.0"),
		openBand("2.5"),
	})
	t.set(CategoryCrew, EmploymentCasual, slotHoliday, []RateBand{openBand("3.125")})

	return t
}

func (t *RateTable) set(c Category, e Employment, s daySlot, bands []RateBand) {
	t.rules[ruleKey{category: c, employment: e, slot: s}] = bands
}

// Bands returns the band list for a profile/day combination. Exposed
// for inspection; DayCost is the calculation entry point.
func (t *RateTable) Bands(c Category, e Employment, dayType DayType, isHoliday bool) []RateBand {
	return t.rules[ruleKey{category: c, employment: e, slot: slotFor(dayType, isHoliday)}]
}

// =============================================================================
// DAY COST CALCULATION
// =============================================================================

// DayCost prices one work day for a profile. Pure: identical inputs
// always yield the identical breakdown.
//
// The scheduled hours are floored at MinimumCallHours, then walked
// through the ordered band list: each band contributes the hours that
// fall between the previous boundary and its own, at its multiplier
// of the base rate. The final total is rounded to 2dp; individual
// band contributions are kept unrounded for auditability.
func (t *RateTable) DayCost(profile PayProfile, day WorkDay) DayCostBreakdown {
	effective := day.Hours
	if effective < MinimumCallHours {
		effective = MinimumCallHours
	}
	hours := decimal.NewFromFloat(effective)

	breakdown := DayCostBreakdown{
		Date:        day.Date,
		DayType:     day.DayType,
		IsHoliday:   day.IsHoliday,
		HolidayName: day.HolidayName,
		Hours:       effective,
	}

	bands := t.Bands(profile.Category, profile.Employment, day.DayType, day.IsHoliday)
	total := decimal.Zero
	lower := decimal.Zero

	for _, b := range bands {
		upper := hours
		if b.UpTo != nil && b.UpTo.LessThan(hours) {
			upper = *b.UpTo
		}
		portion := upper.Sub(lower)
		if portion.LessThanOrEqual(decimal.Zero) {
			break
		}
		amount := portion.Mul(profile.BaseHourlyRate).Mul(b.Multiplier)
		breakdown.Bands = append(breakdown.Bands, BandContribution{
			Hours:      portion,
			Multiplier: b.Multiplier,
			Amount:     amount,
		})
		total = total.Add(amount)
		if b.UpTo == nil || !b.UpTo.LessThan(hours) {
			break
		}
		lower = *b.UpTo
	}

	breakdown.Total = total.Round(2)
	return breakdown
}
