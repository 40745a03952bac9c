/*
dto.go - Data Transfer Objects for API requests and responses

PURPOSE:
  Defines the JSON structures for API communication. These types decouple
  the internal domain model from the external API contract.

NAMING CONVENTION:
  - *DTO: Response types returned to clients
  - *Request: Request body types from clients
  - *Response: Complex response wrappers

MONEY:
  Internally all money is decimal; DTOs carry float64 for JSON
  friendliness. Conversion happens only at this boundary, after all
  rounding is done.

SEE ALSO:
  - handlers.go: Uses these types
  - factory/overrides.go: OverridesJSON type embedded in requests
*/
package api

import (
	"github.com/callsheet/budget-engine/factory"
)

// =============================================================================
// LABOR CALCULATION
// =============================================================================

// CalculateRequest is the input to a labor cost calculation. Exactly
// one of the rate paths applies: a positive base_hourly_rate overrides,
// otherwise classification is resolved against the rate card. All
// fields are optional; a line_item_id fills gaps from the stored item.
type CalculateRequest struct {
	ProjectID  string `json:"project_id,omitempty"`
	GroupingID string `json:"grouping_id,omitempty"`
	LineItemID string `json:"line_item_id,omitempty"`

	Classification string  `json:"classification,omitempty"`
	BaseHourlyRate float64 `json:"base_hourly_rate,omitempty"`
	IsArtist       bool    `json:"is_artist,omitempty"`
	IsCasual       bool    `json:"is_casual,omitempty"`

	// CalendarMode is "inherit" (default) or "custom".
	CalendarMode string `json:"calendar_mode,omitempty"`

	// PhaseDetails is the line-item calendar override layer. When
	// absent the stored line item's document is used instead.
	PhaseDetails factory.OverridesJSON `json:"phase_details,omitempty"`

	// IncludeDays adds the per-day breakdown to each phase.
	IncludeDays bool `json:"include_days,omitempty"`
}

// CalculateResponse is the full labor cost result.
type CalculateResponse struct {
	TotalGross       float64             `json:"total_gross"`
	TotalWithFringes float64             `json:"total_with_fringes"`
	RateFound        bool                `json:"rate_found"`
	Classification   string              `json:"classification,omitempty"`
	BaseHourlyRate   float64             `json:"base_hourly_rate"`
	Phases           map[string]PhaseDTO `json:"phases"`
	Fringes          FringeDTO           `json:"fringes"`
}

// PhaseDTO is one phase's rolled-up cost.
type PhaseDTO struct {
	Days      int      `json:"days"`
	Cost      float64  `json:"cost"`
	Breakdown []DayDTO `json:"day_breakdown,omitempty"`
}

// DayDTO is one priced working day.
type DayDTO struct {
	Date        string  `json:"date"`
	DayType     string  `json:"day_type"`
	IsHoliday   bool    `json:"is_holiday"`
	HolidayName string  `json:"holiday_name,omitempty"`
	Hours       float64 `json:"hours"`
	Cost        float64 `json:"cost"`
}

// FringeDTO itemizes the statutory add-ons.
type FringeDTO struct {
	Superannuation float64 `json:"superannuation"`
	HolidayPay     float64 `json:"holiday_pay"`
	PayrollTax     float64 `json:"payroll_tax"`
	WorkersComp    float64 `json:"workers_comp"`
	Total          float64 `json:"total"`
}

// =============================================================================
// CALENDARS
// =============================================================================

// PhaseCalendarDTO is one phase of a project calendar.
type PhaseCalendarDTO struct {
	DefaultHours float64  `json:"default_hours"`
	Dates        []string `json:"dates"`
}

// ProjectCalendarDTO is a whole project calendar keyed by phase name.
type ProjectCalendarDTO struct {
	ProjectID string                      `json:"project_id"`
	Phases    map[string]PhaseCalendarDTO `json:"phases"`
}

// =============================================================================
// GROUPINGS AND LINE ITEMS
// =============================================================================

// GroupingDTO is a budget grouping.
type GroupingDTO struct {
	ID                string                `json:"id,omitempty"`
	Name              string                `json:"name"`
	Code              string                `json:"code,omitempty"`
	CalendarOverrides factory.OverridesJSON `json:"calendar_overrides,omitempty"`
}

// LineItemDTO is a labor line item.
type LineItemDTO struct {
	ID              string                `json:"id,omitempty"`
	GroupingID      string                `json:"grouping_id,omitempty"`
	Description     string                `json:"description"`
	BaseRate        float64               `json:"base_rate"`
	IsCasual        bool                  `json:"is_casual"`
	IsArtist        bool                  `json:"is_artist"`
	Classification  string                `json:"classification,omitempty"`
	OvertimeRuleSet string                `json:"overtime_rule_set,omitempty"`
	PhaseDetails    factory.OverridesJSON `json:"phase_details,omitempty"`
}

// =============================================================================
// CREW
// =============================================================================

// AllowanceDTO is a crew rate allowance.
type AllowanceDTO struct {
	ID        string  `json:"id,omitempty"`
	Name      string  `json:"name"`
	Amount    float64 `json:"amount"`
	Frequency string  `json:"frequency,omitempty"`
}

// CrewMemberDTO is a crew record.
type CrewMemberDTO struct {
	ID                 string         `json:"id,omitempty"`
	Name               string         `json:"name"`
	Role               string         `json:"role,omitempty"`
	BaseRate           float64        `json:"base_rate"`
	DefaultDaysPerWeek float64        `json:"default_days_per_week,omitempty"`
	OvertimeRuleSet    string         `json:"overtime_rule_set,omitempty"`
	Allowances         []AllowanceDTO `json:"allowances,omitempty"`
}

// ThresholdDTO is one overtime bracket of a shift estimate.
type ThresholdDTO struct {
	AfterHours float64 `json:"after_hours"`
	Multiplier float64 `json:"multiplier"`
}

// ShiftEstimateRequest prices a single shift for a crew member using
// the configurable-threshold engine.
type ShiftEstimateRequest struct {
	Hours                float64        `json:"hours"`
	CasualLoadingPercent float64        `json:"casual_loading_percent,omitempty"`
	Thresholds           []ThresholdDTO `json:"thresholds,omitempty"`
}

// ShiftEstimateResponse is the priced shift.
type ShiftEstimateResponse struct {
	CrewMemberID string  `json:"crew_member_id"`
	Hours        float64 `json:"hours"`
	Cost         float64 `json:"cost"`
}

// =============================================================================
// HOLIDAYS AND CLASSIFICATIONS
// =============================================================================

// HolidayDTO is one public holiday.
type HolidayDTO struct {
	Date string `json:"date"`
	Name string `json:"name"`
}

// ResolveDTO is a resolved classification.
type ResolveDTO struct {
	Classification string  `json:"classification"`
	HourlyRate     float64 `json:"hourly_rate"`
	Category       string  `json:"category"`
	Employment     string  `json:"employment"`
	Found          bool    `json:"found"`
}

// ErrorResponse is the uniform error body.
type ErrorResponse struct {
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
}
