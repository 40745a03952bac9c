package award_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/callsheet/budget-engine/award"
)

func TestComputeFringes_Defaults(t *testing.T) {
	// $10,000 gross, permanent: all four components apply.
	got := award.ComputeFringes(money("10000"), false, award.DefaultFringeSettings())

	assert.True(t, got.Superannuation.Equal(money("1150")), "super: %s", got.Superannuation)
	assert.True(t, got.HolidayPay.Equal(money("400")), "holiday pay: %s", got.HolidayPay)
	assert.True(t, got.PayrollTax.Equal(money("485")), "payroll tax: %s", got.PayrollTax)
	assert.True(t, got.WorkersComp.Equal(money("150")), "workers comp: %s", got.WorkersComp)
	assert.True(t, got.Total.Equal(money("2185")), "total: %s", got.Total)
}

func TestComputeFringes_CasualExcludedFromHolidayPay(t *testing.T) {
	// Casuals carry loading in their multipliers instead of accruing
	// holiday pay.
	got := award.ComputeFringes(money("10000"), true, award.DefaultFringeSettings())

	assert.True(t, got.HolidayPay.IsZero(), "casual holiday pay must be zero, got %s", got.HolidayPay)
	assert.True(t, got.Total.Equal(money("1785")), "total: %s", got.Total)
}

func TestComputeFringes_ComponentSumLaw(t *testing.T) {
	// total == round(super) + round(holiday) + round(tax) + round(comp)
	// exactly, for awkward grosses where round-then-sum and
	// sum-then-round diverge at cent level.
	grosses := []string{"410", "712.5", "1233.33", "99999.99", "0.01", "17777.77"}

	for _, g := range grosses {
		gross := money(g)
		for _, casual := range []bool{false, true} {
			got := award.ComputeFringes(gross, casual, award.DefaultFringeSettings())
			sum := got.Superannuation.Add(got.HolidayPay).Add(got.PayrollTax).Add(got.WorkersComp)
			assert.True(t, got.Total.Equal(sum),
				"gross %s casual=%v: total %s != component sum %s", g, casual, got.Total, sum)
		}
	}
}

func TestComputeFringes_ZeroGross(t *testing.T) {
	got := award.ComputeFringes(decimal.Zero, false, award.DefaultFringeSettings())
	assert.True(t, got.Total.IsZero())
}
