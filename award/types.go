/*
Package award implements the labor cost calculation engine for film/TV
production budgets under a multi-tier industrial award pay structure.

PURPOSE:
  Given a worker's base hourly rate, classification (Artist vs Crew,
  casual vs permanent) and a production calendar of working days, the
  engine classifies each day, prices it through a bracketed
  overtime/penalty-multiplier schedule, and applies statutory fringe
  percentages to the resulting gross.

KEY CONCEPTS IN THIS FILE (types.go):
  - PayProfile: Who is being paid and on what terms
  - WorkDay: One scheduled day with its classification and hours
  - DayCostBreakdown: Itemized cost of a single day, band by band
  - LaborCostResult: The terminal per-phase + fringe output

DESIGN PRINCIPLES:
  1. Precision: Uses decimal.Decimal for all money math
  2. Purity: Every calculation is a fresh computation; nothing here
     carries identity or mutation across calls
  3. Type Safety: Category/Employment/DayType are tagged enums so
     invalid combinations are unrepresentable in the rate lookup
  4. Degradation over failure: bad inputs produce flagged, usable
     numbers rather than errors

SEE ALSO:
  - rates.go: The four-axis rate band table and day-cost walk
  - calendar.go: Three-layer calendar override resolution
  - fringes.go: Statutory percentage add-ons
  - aggregate.go: Orchestration into a LaborCostResult
*/
package award

import (
	"github.com/shopspring/decimal"
)

// =============================================================================
// CLASSIFICATION ENUMS
// =============================================================================

// Category separates on-screen performers from below-the-line crew.
// The two carry different penalty-rate tables.
type Category string

const (
	CategoryCrew   Category = "CREW"
	CategoryArtist Category = "ARTIST"
)

// Employment distinguishes permanent (full/part-time) from casual hires.
// Casuals carry loaded multipliers in lieu of leave entitlements.
type Employment string

const (
	EmploymentPermanent Employment = "PERMANENT"
	EmploymentCasual    Employment = "CASUAL"
)

// DayType is the weekday/weekend classification of a calendar date.
// Holiday status is tracked separately: a holiday keeps its weekday
// DayType for display, but the holiday rule-set wins the rate lookup.
type DayType string

const (
	Weekday  DayType = "WEEKDAY"
	Saturday DayType = "SATURDAY"
	Sunday   DayType = "SUNDAY"
)

// Phase is a production stage with its own calendar.
type Phase string

const (
	PhasePreProd  Phase = "preProd"
	PhaseShoot    Phase = "shoot"
	PhasePostProd Phase = "postProd"
)

// Phases returns all phases in canonical order.
func Phases() []Phase {
	return []Phase{PhasePreProd, PhaseShoot, PhasePostProd}
}

// =============================================================================
// PAY PROFILE - Immutable input to a single calculation
// =============================================================================

// PayProfile describes the worker being costed. It is supplied either
// directly by the caller (override path) or resolved from an award
// classification lookup. The two paths are equivalent once resolved.
type PayProfile struct {
	BaseHourlyRate decimal.Decimal
	Category       Category
	Employment     Employment

	// Classification is the award classification name this profile was
	// resolved from, if any. Informational only.
	Classification string

	// Found is false when the classification lookup missed and the
	// profile fell back to the default rate. The calculation still
	// proceeds; callers surface the degraded confidence.
	Found bool
}

// IsCasual reports whether the profile is a casual hire.
func (p PayProfile) IsCasual() bool { return p.Employment == EmploymentCasual }

// IsArtist reports whether the profile uses the Artist rate tables.
func (p PayProfile) IsArtist() bool { return p.Category == CategoryArtist }

// =============================================================================
// WORK DAY - One scheduled day, produced by the calendar resolver
// =============================================================================

// WorkDay is a single scheduled working day. Hours must be >= 0; a
// zero-hour day contributes no cost and is excluded from day counts.
type WorkDay struct {
	Date        Date
	DayType     DayType
	IsHoliday   bool
	HolidayName string
	Hours       float64
}

// =============================================================================
// COST BREAKDOWNS - Produced, never mutated
// =============================================================================

// BandContribution records the portion of a day that fell into one
// rate band, for auditability of the final number.
type BandContribution struct {
	Hours      decimal.Decimal
	Multiplier decimal.Decimal
	Amount     decimal.Decimal
}

// DayCostBreakdown is the itemized cost of a single work day.
type DayCostBreakdown struct {
	Date        Date
	DayType     DayType
	IsHoliday   bool
	HolidayName string

	// Hours is the effective (minimum-call adjusted) hours priced.
	Hours float64

	Bands []BandContribution

	// Total is the day cost rounded to currency precision.
	Total decimal.Decimal
}

// PhaseBreakdown is the rolled-up cost of one production phase.
type PhaseBreakdown struct {
	Phase Phase

	// Days counts only days that contributed cost (hours > 0).
	Days int

	Cost    decimal.Decimal
	Details []DayCostBreakdown
}

// FringeBreakdown holds the statutory add-on components. Each component
// is individually rounded to 2dp; Total is the sum of the rounded
// components so that displayed parts always sum to the displayed total.
type FringeBreakdown struct {
	Superannuation decimal.Decimal
	HolidayPay     decimal.Decimal
	PayrollTax     decimal.Decimal
	WorkersComp    decimal.Decimal
	Total          decimal.Decimal
}

// LaborCostResult is the terminal output of a labor cost calculation.
type LaborCostResult struct {
	TotalGross decimal.Decimal
	Phases     map[Phase]*PhaseBreakdown
	Fringes    FringeBreakdown

	// RateFound mirrors PayProfile.Found: false means the cost was
	// computed against the fallback base rate.
	RateFound bool
}
