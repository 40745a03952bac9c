package award_test

import (
	"testing"

	"github.com/callsheet/budget-engine/award"
)

func stdThresholds() []award.OvertimeThreshold {
	return []award.OvertimeThreshold{
		{AfterHours: 8, Multiplier: money("1.5")},
		{AfterHours: 10, Multiplier: money("2.0")},
	}
}

func TestShiftCost_StandardDay(t *testing.T) {
	cfg := award.ShiftConfig{BaseRate: money("50"), Thresholds: stdThresholds()}

	if got := award.ShiftCost(8, cfg, nil); !got.Equal(money("400")) {
		t.Errorf("8h = %s, want 400", got)
	}
}

func TestShiftCost_Overtime(t *testing.T) {
	// 12h: 8 @ 1.0 + 2 @ 1.5 + 2 @ 2.0 = 400 + 150 + 200.
	cfg := award.ShiftConfig{BaseRate: money("50"), Thresholds: stdThresholds()}

	if got := award.ShiftCost(12, cfg, nil); !got.Equal(money("750")) {
		t.Errorf("12h = %s, want 750", got)
	}
}

func TestShiftCost_CasualLoading(t *testing.T) {
	// Loaded base 62.50: 8 @ 1.0 + 2 @ 1.5 = 500 + 187.50.
	cfg := award.ShiftConfig{
		BaseRate:             money("50"),
		Thresholds:           stdThresholds(),
		CasualLoadingPercent: 25,
	}

	if got := award.ShiftCost(10, cfg, nil); !got.Equal(money("687.5")) {
		t.Errorf("10h casual = %s, want 687.50", got)
	}
}

func TestShiftCost_Allowances(t *testing.T) {
	// 8h standard + $20 daily meal + $2/h dirt money = 400 + 20 + 16.
	cfg := award.ShiftConfig{BaseRate: money("50"), Thresholds: stdThresholds()}
	allowances := []award.ShiftAllowance{
		{Name: "Meal", Cost: money("20"), Frequency: award.AllowancePerDay},
		{Name: "Dirt", Cost: money("2"), Frequency: award.AllowancePerHour},
	}

	if got := award.ShiftCost(8, cfg, allowances); !got.Equal(money("436")) {
		t.Errorf("8h + allowances = %s, want 436", got)
	}
}

func TestShiftCost_NoThresholds(t *testing.T) {
	cfg := award.ShiftConfig{BaseRate: money("50")}

	if got := award.ShiftCost(6, cfg, nil); !got.Equal(money("300")) {
		t.Errorf("6h flat = %s, want 300", got)
	}
}
