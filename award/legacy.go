package award

import "github.com/shopspring/decimal"

// =============================================================================
// LEGACY SHIFT ENGINE - Generic configurable-threshold calculation
// =============================================================================
// Predecessor of the fixed-table engine in rates.go, retained as a
// simpler calculation mode for line items that carry a custom
// overtime rule set. Unlike the award table it has no day-type or
// holiday axes: just base rate, overtime thresholds and a casual
// loading percentage, plus flat/hourly allowances.

// OvertimeThreshold means "after AfterHours total hours in the
// shift, pay Multiplier x the (loaded) base rate".
type OvertimeThreshold struct {
	AfterHours float64
	Multiplier decimal.Decimal
}

// ShiftConfig configures a legacy shift calculation.
type ShiftConfig struct {
	BaseRate decimal.Decimal

	// Thresholds ordered ascending by AfterHours, e.g.
	// [{8, 1.5x}, {10, 2.0x}]: 0-8h standard, 8-10h at 1.5x, >10h at 2x.
	Thresholds []OvertimeThreshold

	// CasualLoadingPercent loads the base rate before multipliers
	// apply (25.0 means a 25% loaded base).
	CasualLoadingPercent float64
}

// AllowanceFrequency says how an allowance accrues over a shift.
type AllowanceFrequency string

const (
	AllowancePerHour AllowanceFrequency = "hour"
	AllowancePerDay  AllowanceFrequency = "day"
	AllowancePerWeek AllowanceFrequency = "week"
)

// ShiftAllowance is a rate add-on (meal money, travel, dirt money).
type ShiftAllowance struct {
	Name      string
	Cost      decimal.Decimal
	Frequency AllowanceFrequency
}

// ShiftCost prices a single shift: loaded base rate through the
// threshold brackets, plus allowances. Hourly allowances scale with
// the shift hours; daily and weekly ones are charged flat for the
// shift this call represents. Rounded to 2dp.
func ShiftCost(hours float64, cfg ShiftConfig, allowances []ShiftAllowance) decimal.Decimal {
	loading := decimal.NewFromFloat(1 + cfg.CasualLoadingPercent/100)
	effectiveBase := cfg.BaseRate.Mul(loading)
	h := decimal.NewFromFloat(hours)

	total := decimal.Zero
	prevThreshold := decimal.Zero
	prevMultiplier := decimal.NewFromInt(1)

	for _, t := range cfg.Thresholds {
		threshold := decimal.NewFromFloat(t.AfterHours)
		if !h.GreaterThan(prevThreshold) {
			break
		}
		upper := h
		if threshold.LessThan(h) {
			upper = threshold
		}
		bandHours := upper.Sub(prevThreshold)
		if bandHours.IsPositive() {
			total = total.Add(bandHours.Mul(effectiveBase).Mul(prevMultiplier))
		}
		prevThreshold = threshold
		prevMultiplier = t.Multiplier
	}

	if h.GreaterThan(prevThreshold) {
		total = total.Add(h.Sub(prevThreshold).Mul(effectiveBase).Mul(prevMultiplier))
	}

	for _, a := range allowances {
		if a.Frequency == AllowancePerHour {
			total = total.Add(a.Cost.Mul(h))
		} else {
			total = total.Add(a.Cost)
		}
	}

	return total.Round(2)
}
