package award

import "github.com/shopspring/decimal"

// =============================================================================
// FRINGE SETTINGS - Statutory percentage add-ons
// =============================================================================

// FringeSettings holds the statutory percentages applied on top of
// gross labor cost. Values are percentages (11.5 means 11.5%).
// Process-wide configuration: hot-reloadable between calculations,
// immutable during one.
type FringeSettings struct {
	Superannuation float64 `json:"superannuation"`
	HolidayPay     float64 `json:"holiday_pay"`
	PayrollTax     float64 `json:"payroll_tax"`
	WorkersComp    float64 `json:"workers_comp"`
}

// DefaultFringeSettings returns the statutory defaults.
func DefaultFringeSettings() FringeSettings {
	return FringeSettings{
		Superannuation: 11.5,
		HolidayPay:     4.0,
		PayrollTax:     4.85,
		WorkersComp:    1.5,
	}
}

// =============================================================================
// FRINGE CALCULATION
// =============================================================================

var hundred = decimal.NewFromInt(100)

// ComputeFringes applies the statutory percentages to a gross total.
//
// Casual workers are not entitled to holiday pay accrual - the casual
// loading in their rate multipliers stands in for it - so HolidayPay
// is zero for casuals. This exclusion is load-bearing business logic.
//
// Each component is rounded to 2dp BEFORE summing, so the displayed
// components always sum exactly to the displayed total. This accepts
// a cent-level drift from round(sum-of-unrounded) and must be
// preserved for compatibility.
func ComputeFringes(gross decimal.Decimal, casual bool, settings FringeSettings) FringeBreakdown {
	pct := func(p float64) decimal.Decimal {
		return gross.Mul(decimal.NewFromFloat(p)).Div(hundred).Round(2)
	}

	b := FringeBreakdown{
		Superannuation: pct(settings.Superannuation),
		PayrollTax:     pct(settings.PayrollTax),
		WorkersComp:    pct(settings.WorkersComp),
		HolidayPay:     decimal.Zero,
	}
	if !casual {
		b.HolidayPay = pct(settings.HolidayPay)
	}

	b.Total = b.Superannuation.Add(b.HolidayPay).Add(b.PayrollTax).Add(b.WorkersComp)
	return b
}
