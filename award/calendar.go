/*
calendar.go - Three-layer production calendar resolution

PURPOSE:
  Resolves the effective working schedule (dates + daily hours) for
  each production phase by merging up to three configuration layers
  in fixed precedence order:

    built-in defaults < Global project calendar
                      < Grouping override
                      < Line-item override

  A layer only takes effect for a phase when its inherit flag is
  EXPLICITLY false for that phase; otherwise the phase falls through
  to the next lower-precedence layer. This "last writer with explicit
  opt-out wins" merge is a pure reducer - no layer is mutated.

SYNTHETIC FALLBACK:
  When mode is inherit and no layer supplied any dates at all, a
  deterministic placeholder schedule is generated (10 weekday-only
  pre-prod dates, 20 shoot, 10 post) so a labor line with no calendar
  data still yields a plausible estimate instead of zero.
*/
package award

// CalendarMode selects how a line item sources its calendar.
type CalendarMode string

const (
	ModeInherit CalendarMode = "inherit"
	ModeCustom  CalendarMode = "custom"
)

// PhaseCalendarConfig is the resolved schedule for one phase. Dates
// are ISO strings as supplied by the layers; parsing and validation
// happen at aggregation time so a malformed entry degrades to a
// skipped day rather than failing resolution.
type PhaseCalendarConfig struct {
	DefaultHours float64
	Dates        []string
}

// PhaseOverride is one phase's entry in an override layer. Nil fields
// mean "not supplied": an override only replaces what it carries, and
// only when Inherit is explicitly false.
type PhaseOverride struct {
	Inherit      *bool
	DefaultHours *float64
	Dates        []string
}

// OverrideSet is a sparse per-phase override layer. Phase absence
// means no override for that phase.
type OverrideSet map[Phase]PhaseOverride

// DefaultPhaseHours returns the built-in daily hours for a phase:
// 8h pre-prod, 10h shoot, 8h post.
func DefaultPhaseHours(p Phase) float64 {
	if p == PhaseShoot {
		return 10.0
	}
	return 8.0
}

// fallbackAnchor is the fixed start date for the synthetic schedule.
var fallbackAnchor = NewDate(2026, 2, 1)

// Synthetic schedule shape: pre-prod starts at the anchor, shoot two
// weeks after, post four weeks (~20 working days) after shoot start.
const (
	fallbackPreProdDays  = 10
	fallbackShootDays    = 20
	fallbackPostProdDays = 10
	fallbackShootOffset  = 14
	fallbackPostOffset   = 28
)

// ResolveCalendar merges the global calendar and the two override
// layers into one effective per-phase schedule.
func ResolveCalendar(global map[Phase]PhaseCalendarConfig, grouping, lineItem OverrideSet, mode CalendarMode) map[Phase]PhaseCalendarConfig {
	effective := make(map[Phase]PhaseCalendarConfig, len(Phases()))

	// Built-in defaults: phase hours, no dates.
	for _, phase := range Phases() {
		effective[phase] = PhaseCalendarConfig{DefaultHours: DefaultPhaseHours(phase)}
	}

	// Global project calendar is the foundation: if it defines a
	// phase it replaces both hours and dates unconditionally.
	for _, phase := range Phases() {
		if cfg, ok := global[phase]; ok {
			effective[phase] = PhaseCalendarConfig{
				DefaultHours: cfg.DefaultHours,
				Dates:        cfg.Dates,
			}
		}
	}

	// Grouping overrides beat the global calendar; line-item
	// overrides beat both.
	applyLayer(effective, grouping)
	applyLayer(effective, lineItem)

	// Inherit mode with no dates anywhere: synthesize the fallback
	// schedule so the estimate is non-zero and deterministic.
	if mode == ModeInherit && !hasAnyDates(effective) {
		pre := effective[PhasePreProd]
		pre.Dates = generateWeekdays(fallbackAnchor, fallbackPreProdDays)
		effective[PhasePreProd] = pre

		shootStart := fallbackAnchor.AddDays(fallbackShootOffset)
		shoot := effective[PhaseShoot]
		shoot.Dates = generateWeekdays(shootStart, fallbackShootDays)
		effective[PhaseShoot] = shoot

		post := effective[PhasePostProd]
		post.Dates = generateWeekdays(shootStart.AddDays(fallbackPostOffset), fallbackPostProdDays)
		effective[PhasePostProd] = post
	}

	return effective
}

// applyLayer folds one override layer into the effective calendar.
// A phase entry only wins when it explicitly opts out of inheriting.
func applyLayer(effective map[Phase]PhaseCalendarConfig, layer OverrideSet) {
	for _, phase := range Phases() {
		ov, ok := layer[phase]
		if !ok {
			continue
		}
		if ov.Inherit == nil || *ov.Inherit {
			continue
		}
		cfg := effective[phase]
		if ov.DefaultHours != nil {
			cfg.DefaultHours = *ov.DefaultHours
		}
		if ov.Dates != nil {
			cfg.Dates = ov.Dates
		}
		effective[phase] = cfg
	}
}

func hasAnyDates(effective map[Phase]PhaseCalendarConfig) bool {
	for _, cfg := range effective {
		if len(cfg.Dates) > 0 {
			return true
		}
	}
	return false
}

// generateWeekdays returns the first count weekday-only ISO dates
// starting at start.
func generateWeekdays(start Date, count int) []string {
	dates := make([]string, 0, count)
	current := start
	for len(dates) < count {
		if ClassifyDay(current) == Weekday {
			dates = append(dates, current.String())
		}
		current = current.AddDays(1)
	}
	return dates
}
