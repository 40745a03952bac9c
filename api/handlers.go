/*
handlers.go - HTTP API handlers for the labor cost engine

PURPOSE:
  Exposes the cost engine via REST API. Handles HTTP request/response,
  JSON serialization, and delegates to domain logic.

ENDPOINTS:
  Labor:
    POST   /api/labor/calculate        Full labor cost calculation

  Settings:
    GET    /api/settings/fringes       Current fringe percentages
    PUT    /api/settings/fringes       Update fringe percentages

  Calendars:
    GET    /api/projects/{id}/calendar Project calendar
    PUT    /api/projects/{id}/calendar Replace project calendar

  Groupings / line items:
    POST   /api/groupings              Create/update grouping
    GET    /api/groupings/{id}         Get grouping
    GET    /api/groupings/{id}/line-items
    POST   /api/line-items             Create/update line item
    GET    /api/line-items/{id}        Get line item

  Crew:
    GET    /api/crew                   List crew
    POST   /api/crew                   Create/update crew member
    GET    /api/crew/{id}              Get crew member
    DELETE /api/crew/{id}              Delete crew member
    POST   /api/crew/{id}/estimate     Price one shift

  Reference data:
    GET    /api/holidays               Public holidays in a range
    GET    /api/classifications        Search the rate card
    GET    /api/classifications/resolve Resolve one classification

REQUEST FLOW (calculate):
  1. Fill the request from the stored line item, if referenced
  2. Build the pay profile (override rate or rate card lookup)
  3. Load and merge the three calendar layers
  4. Resolve holidays for the calendar's date span
  5. Run the engine and serialize the breakdown

ERROR HANDLING:
  Errors are returned as JSON with appropriate HTTP status:
  - 400: Invalid input
  - 404: Resource not found
  - 500: Internal errors
  The calculation itself never fails on bad calendar or holiday data;
  that degradation happens inside the engine.

SEE ALSO:
  - dto.go: Request/response data structures
  - server.go: Router setup and middleware
*/
package api

import (
	"log"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/goccy/go-json"
	"github.com/shopspring/decimal"

	"github.com/callsheet/budget-engine/award"
	"github.com/callsheet/budget-engine/factory"
	"github.com/callsheet/budget-engine/holiday"
	"github.com/callsheet/budget-engine/ratecard"
	"github.com/callsheet/budget-engine/store/sqlite"
)

// =============================================================================
// HANDLER CONTEXT
// =============================================================================

// Handler holds all dependencies for HTTP handlers.
type Handler struct {
	Store    *sqlite.Store
	Rates    *award.RateTable
	Holidays *holiday.Service
	RateCard *ratecard.Service
	Settings *factory.SettingsStore
}

// NewHandler creates a handler over the given collaborators.
func NewHandler(store *sqlite.Store, holidays *holiday.Service, rateCard *ratecard.Service, settings *factory.SettingsStore) *Handler {
	return &Handler{
		Store:    store,
		Rates:    award.NewRateTable(),
		Holidays: holidays,
		RateCard: rateCard,
		Settings: settings,
	}
}

// =============================================================================
// LABOR CALCULATION
// =============================================================================

// Calculate runs the full labor cost calculation.
// POST /api/labor/calculate
func (h *Handler) Calculate(w http.ResponseWriter, r *http.Request) {
	var req CalculateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body", err)
		return
	}
	ctx := r.Context()

	// A referenced line item fills request gaps: grouping, pay fields
	// and the stored phase-details document.
	var stored *sqlite.LineItemRecord
	if req.LineItemID != "" {
		var err error
		stored, err = h.Store.GetLineItem(ctx, req.LineItemID)
		if err != nil {
			writeError(w, http.StatusInternalServerError, "Failed to load line item", err)
			return
		}
		if stored == nil {
			writeError(w, http.StatusNotFound, "Line item not found", nil)
			return
		}
		if req.GroupingID == "" {
			req.GroupingID = stored.GroupingID
		}
		if req.Classification == "" {
			req.Classification = stored.Classification
		}
		if req.BaseHourlyRate == 0 {
			req.BaseHourlyRate = stored.BaseRate
		}
		req.IsCasual = req.IsCasual || stored.IsCasual
		req.IsArtist = req.IsArtist || stored.IsArtist
	}

	profile := h.buildProfile(req)

	calendar, err := h.resolveCalendar(r, req, stored)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to resolve calendar", err)
		return
	}

	from, to := calendarSpan(calendar)
	holidays := h.Holidays.RangeCalendar(ctx, from, to)

	calc := award.NewCalculator(h.Rates, holidays)
	result := calc.Calculate(profile, calendar, h.Settings.Load())

	writeJSON(w, http.StatusOK, toCalculateResponse(profile, result, req.IncludeDays))
}

// buildProfile chooses the rate path: a positive override rate wins,
// otherwise the classification is resolved against the rate card.
func (h *Handler) buildProfile(req CalculateRequest) award.PayProfile {
	if req.BaseHourlyRate > 0 {
		profile := award.PayProfile{
			BaseHourlyRate: decimal.NewFromFloat(req.BaseHourlyRate),
			Category:       award.CategoryCrew,
			Employment:     award.EmploymentPermanent,
			Classification: req.Classification,
			Found:          true,
		}
		if req.IsArtist {
			profile.Category = award.CategoryArtist
		}
		if req.IsCasual {
			profile.Employment = award.EmploymentCasual
		}
		return profile
	}
	return h.RateCard.Resolve(req.Classification)
}

// resolveCalendar loads the three layers and merges them.
func (h *Handler) resolveCalendar(r *http.Request, req CalculateRequest, stored *sqlite.LineItemRecord) (map[award.Phase]award.PhaseCalendarConfig, error) {
	ctx := r.Context()

	global := map[award.Phase]award.PhaseCalendarConfig{}
	if req.ProjectID != "" {
		var err error
		global, err = h.Store.ProjectCalendar(ctx, req.ProjectID)
		if err != nil {
			return nil, err
		}
	}

	grouping := award.OverrideSet{}
	if req.GroupingID != "" {
		rec, err := h.Store.GetGrouping(ctx, req.GroupingID)
		if err != nil {
			return nil, err
		}
		if rec != nil {
			grouping = parseOverridesLenient("grouping", rec.ID, rec.CalendarOverrides)
		}
	}

	lineItem := award.OverrideSet{}
	if len(req.PhaseDetails) > 0 {
		lineItem = factory.FromOverridesJSON(req.PhaseDetails)
	} else if stored != nil {
		lineItem = parseOverridesLenient("line item", stored.ID, stored.PhaseDetails)
	}

	mode := award.ModeInherit
	if req.CalendarMode == string(award.ModeCustom) {
		mode = award.ModeCustom
	}

	return award.ResolveCalendar(global, grouping, lineItem, mode), nil
}

// parseOverridesLenient treats a malformed stored override document as
// an empty layer. The calculation still produces a number.
func parseOverridesLenient(kind, id string, raw []byte) award.OverrideSet {
	set, err := factory.ParseOverrides(raw)
	if err != nil {
		log.Printf("api: ignoring malformed %s overrides for %s: %v", kind, id, err)
		return award.OverrideSet{}
	}
	return set
}

// calendarSpan finds the first and last parseable dates across all
// phases, for scoping the holiday lookup. Zero dates mean no span.
func calendarSpan(calendar map[award.Phase]award.PhaseCalendarConfig) (award.Date, award.Date) {
	var from, to award.Date
	for _, cfg := range calendar {
		for _, s := range cfg.Dates {
			d, err := award.ParseDate(s)
			if err != nil {
				continue
			}
			if from.IsZero() || d.Before(from) {
				from = d
			}
			if to.IsZero() || d.After(to) {
				to = d
			}
		}
	}
	return from, to
}

func toCalculateResponse(profile award.PayProfile, result award.LaborCostResult, includeDays bool) CalculateResponse {
	resp := CalculateResponse{
		TotalGross:       result.TotalGross.InexactFloat64(),
		TotalWithFringes: result.TotalGross.Add(result.Fringes.Total).InexactFloat64(),
		RateFound:        result.RateFound,
		Classification:   profile.Classification,
		BaseHourlyRate:   profile.BaseHourlyRate.InexactFloat64(),
		Phases:           make(map[string]PhaseDTO, len(result.Phases)),
		Fringes: FringeDTO{
			Superannuation: result.Fringes.Superannuation.InexactFloat64(),
			HolidayPay:     result.Fringes.HolidayPay.InexactFloat64(),
			PayrollTax:     result.Fringes.PayrollTax.InexactFloat64(),
			WorkersComp:    result.Fringes.WorkersComp.InexactFloat64(),
			Total:          result.Fringes.Total.InexactFloat64(),
		},
	}

	for phase, pb := range result.Phases {
		dto := PhaseDTO{Days: pb.Days, Cost: pb.Cost.InexactFloat64()}
		if includeDays {
			for _, day := range pb.Details {
				dto.Breakdown = append(dto.Breakdown, DayDTO{
					Date:        day.Date.String(),
					DayType:     string(day.DayType),
					IsHoliday:   day.IsHoliday,
					HolidayName: day.HolidayName,
					Hours:       day.Hours,
					Cost:        day.Total.InexactFloat64(),
				})
			}
		}
		resp.Phases[string(phase)] = dto
	}
	return resp
}

// =============================================================================
// FRINGE SETTINGS
// =============================================================================

// GetFringeSettings returns the current fringe percentages.
// GET /api/settings/fringes
func (h *Handler) GetFringeSettings(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.Settings.Load())
}

// UpdateFringeSettings replaces the fringe percentages.
// PUT /api/settings/fringes
func (h *Handler) UpdateFringeSettings(w http.ResponseWriter, r *http.Request) {
	var settings award.FringeSettings
	if err := json.NewDecoder(r.Body).Decode(&settings); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body", err)
		return
	}
	if err := h.Settings.Save(settings); err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to save settings", err)
		return
	}
	writeJSON(w, http.StatusOK, settings)
}

// =============================================================================
// PROJECT CALENDARS
// =============================================================================

// GetProjectCalendar returns a project's calendar by phase.
// GET /api/projects/{projectID}/calendar
func (h *Handler) GetProjectCalendar(w http.ResponseWriter, r *http.Request) {
	projectID := chi.URLParam(r, "projectID")

	cal, err := h.Store.ProjectCalendar(r.Context(), projectID)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to load calendar", err)
		return
	}

	dto := ProjectCalendarDTO{ProjectID: projectID, Phases: make(map[string]PhaseCalendarDTO, len(cal))}
	for phase, cfg := range cal {
		dto.Phases[string(phase)] = PhaseCalendarDTO{
			DefaultHours: cfg.DefaultHours,
			Dates:        cfg.Dates,
		}
	}
	writeJSON(w, http.StatusOK, dto)
}

// PutProjectCalendar replaces a project's calendar. Unknown phase
// names are rejected.
// PUT /api/projects/{projectID}/calendar
func (h *Handler) PutProjectCalendar(w http.ResponseWriter, r *http.Request) {
	projectID := chi.URLParam(r, "projectID")

	var dto ProjectCalendarDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	known := make(map[string]bool, len(award.Phases()))
	for _, p := range award.Phases() {
		known[string(p)] = true
	}
	for name := range dto.Phases {
		if !known[name] {
			writeError(w, http.StatusBadRequest, "Unknown phase: "+name, nil)
			return
		}
	}

	for name, cfg := range dto.Phases {
		hours := cfg.DefaultHours
		if hours == 0 {
			hours = award.DefaultPhaseHours(award.Phase(name))
		}
		_, err := h.Store.SaveCalendar(r.Context(), sqlite.CalendarRecord{
			ProjectID:    projectID,
			Phase:        award.Phase(name),
			DefaultHours: hours,
			Dates:        cfg.Dates,
		})
		if err != nil {
			writeError(w, http.StatusInternalServerError, "Failed to save calendar", err)
			return
		}
	}

	h.GetProjectCalendar(w, r)
}

// =============================================================================
// GROUPINGS AND LINE ITEMS
// =============================================================================

// SaveGrouping creates or updates a budget grouping.
// POST /api/groupings
func (h *Handler) SaveGrouping(w http.ResponseWriter, r *http.Request) {
	var dto GroupingDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body", err)
		return
	}
	if dto.Name == "" {
		writeError(w, http.StatusBadRequest, "Grouping name is required", nil)
		return
	}

	var overrides []byte
	if len(dto.CalendarOverrides) > 0 {
		overrides, _ = json.Marshal(dto.CalendarOverrides)
	}

	id, err := h.Store.SaveGrouping(r.Context(), sqlite.GroupingRecord{
		ID:                dto.ID,
		Name:              dto.Name,
		Code:              dto.Code,
		CalendarOverrides: overrides,
	})
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to save grouping", err)
		return
	}
	dto.ID = id
	writeJSON(w, http.StatusCreated, dto)
}

// GetGrouping returns one grouping.
// GET /api/groupings/{id}
func (h *Handler) GetGrouping(w http.ResponseWriter, r *http.Request) {
	rec, err := h.Store.GetGrouping(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to load grouping", err)
		return
	}
	if rec == nil {
		writeError(w, http.StatusNotFound, "Grouping not found", nil)
		return
	}
	writeJSON(w, http.StatusOK, toGroupingDTO(rec))
}

// ListLineItems returns the line items under a grouping.
// GET /api/groupings/{id}/line-items
func (h *Handler) ListLineItems(w http.ResponseWriter, r *http.Request) {
	items, err := h.Store.ListLineItems(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to list line items", err)
		return
	}
	dtos := make([]LineItemDTO, len(items))
	for i := range items {
		dtos[i] = toLineItemDTO(&items[i])
	}
	writeJSON(w, http.StatusOK, dtos)
}

// SaveLineItem creates or updates a line item.
// POST /api/line-items
func (h *Handler) SaveLineItem(w http.ResponseWriter, r *http.Request) {
	var dto LineItemDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body", err)
		return
	}
	if dto.Description == "" {
		writeError(w, http.StatusBadRequest, "Line item description is required", nil)
		return
	}
	if dto.OvertimeRuleSet == "" {
		dto.OvertimeRuleSet = "Standard"
	}

	var phaseDetails []byte
	if len(dto.PhaseDetails) > 0 {
		phaseDetails, _ = json.Marshal(dto.PhaseDetails)
	}

	id, err := h.Store.SaveLineItem(r.Context(), sqlite.LineItemRecord{
		ID:              dto.ID,
		GroupingID:      dto.GroupingID,
		Description:     dto.Description,
		BaseRate:        dto.BaseRate,
		IsCasual:        dto.IsCasual,
		IsArtist:        dto.IsArtist,
		Classification:  dto.Classification,
		OvertimeRuleSet: dto.OvertimeRuleSet,
		PhaseDetails:    phaseDetails,
	})
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to save line item", err)
		return
	}
	dto.ID = id
	writeJSON(w, http.StatusCreated, dto)
}

// GetLineItem returns one line item.
// GET /api/line-items/{id}
func (h *Handler) GetLineItem(w http.ResponseWriter, r *http.Request) {
	rec, err := h.Store.GetLineItem(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to load line item", err)
		return
	}
	if rec == nil {
		writeError(w, http.StatusNotFound, "Line item not found", nil)
		return
	}
	writeJSON(w, http.StatusOK, toLineItemDTO(rec))
}

func toGroupingDTO(rec *sqlite.GroupingRecord) GroupingDTO {
	dto := GroupingDTO{ID: rec.ID, Name: rec.Name, Code: rec.Code}
	if len(rec.CalendarOverrides) > 0 {
		json.Unmarshal(rec.CalendarOverrides, &dto.CalendarOverrides)
	}
	return dto
}

func toLineItemDTO(rec *sqlite.LineItemRecord) LineItemDTO {
	dto := LineItemDTO{
		ID:              rec.ID,
		GroupingID:      rec.GroupingID,
		Description:     rec.Description,
		BaseRate:        rec.BaseRate,
		IsCasual:        rec.IsCasual,
		IsArtist:        rec.IsArtist,
		Classification:  rec.Classification,
		OvertimeRuleSet: rec.OvertimeRuleSet,
	}
	if len(rec.PhaseDetails) > 0 {
		json.Unmarshal(rec.PhaseDetails, &dto.PhaseDetails)
	}
	return dto
}

// =============================================================================
// CREW
// =============================================================================

// ListCrew returns all crew members.
// GET /api/crew
func (h *Handler) ListCrew(w http.ResponseWriter, r *http.Request) {
	crew, err := h.Store.ListCrew(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to list crew", err)
		return
	}
	dtos := make([]CrewMemberDTO, len(crew))
	for i := range crew {
		dtos[i] = toCrewDTO(&crew[i])
	}
	writeJSON(w, http.StatusOK, dtos)
}

// SaveCrewMember creates or updates a crew member.
// POST /api/crew
func (h *Handler) SaveCrewMember(w http.ResponseWriter, r *http.Request) {
	var dto CrewMemberDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body", err)
		return
	}
	if dto.Name == "" {
		writeError(w, http.StatusBadRequest, "Crew member name is required", nil)
		return
	}

	cm := sqlite.CrewMember{
		ID:                 dto.ID,
		Name:               dto.Name,
		Role:               dto.Role,
		BaseRate:           dto.BaseRate,
		DefaultDaysPerWeek: dto.DefaultDaysPerWeek,
		OvertimeRuleSet:    dto.OvertimeRuleSet,
	}
	for _, a := range dto.Allowances {
		cm.Allowances = append(cm.Allowances, sqlite.Allowance{
			ID:        a.ID,
			Name:      a.Name,
			Amount:    a.Amount,
			Frequency: a.Frequency,
		})
	}

	id, err := h.Store.SaveCrewMember(r.Context(), cm)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to save crew member", err)
		return
	}

	saved, err := h.Store.GetCrewMember(r.Context(), id)
	if err != nil || saved == nil {
		writeError(w, http.StatusInternalServerError, "Failed to reload crew member", err)
		return
	}
	writeJSON(w, http.StatusCreated, toCrewDTO(saved))
}

// GetCrewMember returns one crew member.
// GET /api/crew/{id}
func (h *Handler) GetCrewMember(w http.ResponseWriter, r *http.Request) {
	cm, err := h.Store.GetCrewMember(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to load crew member", err)
		return
	}
	if cm == nil {
		writeError(w, http.StatusNotFound, "Crew member not found", nil)
		return
	}
	writeJSON(w, http.StatusOK, toCrewDTO(cm))
}

// DeleteCrewMember removes a crew member.
// DELETE /api/crew/{id}
func (h *Handler) DeleteCrewMember(w http.ResponseWriter, r *http.Request) {
	if err := h.Store.DeleteCrewMember(r.Context(), chi.URLParam(r, "id")); err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to delete crew member", err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// EstimateShift prices one shift for a crew member through the
// configurable-threshold engine, using the member's stored base rate
// and allowances.
// POST /api/crew/{id}/estimate
func (h *Handler) EstimateShift(w http.ResponseWriter, r *http.Request) {
	cm, err := h.Store.GetCrewMember(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to load crew member", err)
		return
	}
	if cm == nil {
		writeError(w, http.StatusNotFound, "Crew member not found", nil)
		return
	}

	var req ShiftEstimateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body", err)
		return
	}
	if req.Hours <= 0 {
		writeError(w, http.StatusBadRequest, "Hours must be positive", nil)
		return
	}

	cfg := award.ShiftConfig{
		BaseRate:             decimal.NewFromFloat(cm.BaseRate),
		CasualLoadingPercent: req.CasualLoadingPercent,
	}
	if len(req.Thresholds) > 0 {
		for _, t := range req.Thresholds {
			cfg.Thresholds = append(cfg.Thresholds, award.OvertimeThreshold{
				AfterHours: t.AfterHours,
				Multiplier: decimal.NewFromFloat(t.Multiplier),
			})
		}
	} else {
		// Standard rule set: time-and-a-half after 8, double after 10.
		cfg.Thresholds = []award.OvertimeThreshold{
			{AfterHours: 8, Multiplier: decimal.RequireFromString("1.5")},
			{AfterHours: 10, Multiplier: decimal.RequireFromString("2.0")},
		}
	}

	var allowances []award.ShiftAllowance
	for _, a := range cm.Allowances {
		allowances = append(allowances, award.ShiftAllowance{
			Name:      a.Name,
			Cost:      decimal.NewFromFloat(a.Amount),
			Frequency: award.AllowanceFrequency(a.Frequency),
		})
	}

	cost := award.ShiftCost(req.Hours, cfg, allowances)
	writeJSON(w, http.StatusOK, ShiftEstimateResponse{
		CrewMemberID: cm.ID,
		Hours:        req.Hours,
		Cost:         cost.InexactFloat64(),
	})
}

func toCrewDTO(cm *sqlite.CrewMember) CrewMemberDTO {
	dto := CrewMemberDTO{
		ID:                 cm.ID,
		Name:               cm.Name,
		Role:               cm.Role,
		BaseRate:           cm.BaseRate,
		DefaultDaysPerWeek: cm.DefaultDaysPerWeek,
		OvertimeRuleSet:    cm.OvertimeRuleSet,
	}
	for _, a := range cm.Allowances {
		dto.Allowances = append(dto.Allowances, AllowanceDTO{
			ID:        a.ID,
			Name:      a.Name,
			Amount:    a.Amount,
			Frequency: a.Frequency,
		})
	}
	return dto
}

// =============================================================================
// HOLIDAYS AND CLASSIFICATIONS
// =============================================================================

// ListHolidays returns public holidays in a date range. The range
// defaults to calendar year 2026. "refresh=true" bypasses the cache.
// GET /api/holidays?from=2026-01-01&to=2026-12-31
func (h *Handler) ListHolidays(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	if r.URL.Query().Get("refresh") == "true" {
		h.Holidays.All(ctx, true)
	}

	from := award.NewDate(2026, 1, 1)
	to := award.NewDate(2026, 12, 31)
	if s := r.URL.Query().Get("from"); s != "" {
		d, err := award.ParseDate(s)
		if err != nil {
			writeError(w, http.StatusBadRequest, "Invalid from date", err)
			return
		}
		from = d
	}
	if s := r.URL.Query().Get("to"); s != "" {
		d, err := award.ParseDate(s)
		if err != nil {
			writeError(w, http.StatusBadRequest, "Invalid to date", err)
			return
		}
		to = d
	}

	holidays := h.Holidays.InRange(ctx, from, to)
	dtos := make([]HolidayDTO, len(holidays))
	for i, hol := range holidays {
		dtos[i] = HolidayDTO{Date: hol.Date.String(), Name: hol.Name}
	}
	writeJSON(w, http.StatusOK, dtos)
}

// SearchClassifications searches the rate card.
// GET /api/classifications?q=grip&limit=20
func (h *Handler) SearchClassifications(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query().Get("q")
	limit := 20
	if s := r.URL.Query().Get("limit"); s != "" {
		if n, err := strconv.Atoi(s); err == nil {
			limit = n
		}
	}
	writeJSON(w, http.StatusOK, h.RateCard.Search(query, limit))
}

// ResolveClassification resolves one classification to its profile.
// GET /api/classifications/resolve?name=Grip
func (h *Handler) ResolveClassification(w http.ResponseWriter, r *http.Request) {
	name := r.URL.Query().Get("name")
	profile := h.RateCard.Resolve(name)
	writeJSON(w, http.StatusOK, ResolveDTO{
		Classification: profile.Classification,
		HourlyRate:     profile.BaseHourlyRate.InexactFloat64(),
		Category:       string(profile.Category),
		Employment:     string(profile.Employment),
		Found:          profile.Found,
	})
}

// =============================================================================
// RESPONSE HELPERS
// =============================================================================

func writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

func writeError(w http.ResponseWriter, status int, message string, err error) {
	resp := ErrorResponse{Error: message}
	if err != nil {
		resp.Details = err.Error()
	}
	writeJSON(w, status, resp)
}
