/*
Package sqlite provides SQLite-backed persistence for budget data.

PURPOSE:
  Stores the three calendar layers and the pay inputs the labor engine
  reads: per-project production calendars with their working dates,
  budget groupings carrying calendar override documents, labor line
  items, and crew members with their allowances.

KEY TABLES:
  production_calendars: Global layer, one row per project+phase
  calendar_days:        Working dates belonging to a calendar
  budget_groupings:     Middle override layer (JSON override document)
  line_items:           Top override layer plus pay fields
  crew_members:         Crew records with rate allowances

MIGRATION:
  Schema is applied on New() via goose with embedded versioned
  migrations (migrations/*.sql).

CONCURRENCY:
  Uses sync.RWMutex for thread-safety. SQLite is opened with WAL
  (Write-Ahead Logging) for better concurrency.

USAGE:
  store, err := sqlite.New("./data/budget.db")
  if err != nil {
      log.Fatal(err)
  }
  defer store.Close()

SEE ALSO:
  - factory/overrides.go: Parsing of the stored override documents
  - award/calendar.go: The resolver consuming the layers
*/
package sqlite

import (
	"context"
	"database/sql"
	"embed"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	_ "github.com/mattn/go-sqlite3"
	"github.com/pressly/goose/v3"

	"github.com/callsheet/budget-engine/award"
)

//go:embed migrations/*.sql
var migrations embed.FS

// Store persists calendars, groupings, line items and crew.
type Store struct {
	db *sql.DB
	mu sync.RWMutex
}

// New creates a new SQLite store with the given database path.
// Use ":memory:" for an in-memory database.
func New(dbPath string) (*Store, error) {
	db, err := sql.Open("sqlite3", dbPath+"?_foreign_keys=on&_journal_mode=WAL")
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if err := migrate(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}

	return &Store{db: db}, nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

func migrate(db *sql.DB) error {
	goose.SetBaseFS(migrations)
	goose.SetLogger(goose.NopLogger())
	if err := goose.SetDialect("sqlite3"); err != nil {
		return err
	}
	return goose.Up(db, "migrations")
}

// =============================================================================
// PRODUCTION CALENDARS (global layer)
// =============================================================================

// CalendarRecord is one project phase's calendar with its working dates.
type CalendarRecord struct {
	ID           string
	ProjectID    string
	Phase        award.Phase
	DefaultHours float64
	Dates        []string
	CreatedAt    time.Time
}

// SaveCalendar upserts a calendar for a project+phase and replaces its
// working dates atomically.
func (s *Store) SaveCalendar(ctx context.Context, cal CalendarRecord) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if cal.ID == "" {
		cal.ID = uuid.NewString()
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return "", fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	query := `
		INSERT INTO production_calendars (id, project_id, phase, default_hours, created_at)
		VALUES (?, ?, ?, ?, ?)
		ON CONFLICT(project_id, phase) DO UPDATE SET
			default_hours = excluded.default_hours
	`
	if _, err := tx.ExecContext(ctx, query,
		cal.ID, cal.ProjectID, string(cal.Phase), cal.DefaultHours,
		time.Now().UTC().Format(time.RFC3339),
	); err != nil {
		return "", fmt.Errorf("failed to save calendar: %w", err)
	}

	// The upsert may have kept a pre-existing row ID; resolve it before
	// re-pointing the days.
	var calID string
	if err := tx.QueryRowContext(ctx,
		"SELECT id FROM production_calendars WHERE project_id = ? AND phase = ?",
		cal.ProjectID, string(cal.Phase),
	).Scan(&calID); err != nil {
		return "", fmt.Errorf("failed to resolve calendar id: %w", err)
	}

	if _, err := tx.ExecContext(ctx,
		"DELETE FROM calendar_days WHERE calendar_id = ?", calID,
	); err != nil {
		return "", fmt.Errorf("failed to clear calendar days: %w", err)
	}
	for _, date := range cal.Dates {
		if _, err := tx.ExecContext(ctx,
			"INSERT INTO calendar_days (id, calendar_id, date) VALUES (?, ?, ?)",
			uuid.NewString(), calID, date,
		); err != nil {
			return "", fmt.Errorf("failed to save calendar day: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return "", err
	}
	return calID, nil
}

// ProjectCalendar loads a project's calendars keyed by phase, in the
// shape the calendar resolver takes as its global layer. Phases with
// no stored calendar are absent from the map.
func (s *Store) ProjectCalendar(ctx context.Context, projectID string) (map[award.Phase]award.PhaseCalendarConfig, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	query := `
		SELECT c.id, c.phase, c.default_hours
		FROM production_calendars c
		WHERE c.project_id = ?
	`
	rows, err := s.db.QueryContext(ctx, query, projectID)
	if err != nil {
		return nil, fmt.Errorf("failed to query calendars: %w", err)
	}
	defer rows.Close()

	type calRow struct {
		id    string
		phase award.Phase
		hours float64
	}
	var cals []calRow
	for rows.Next() {
		var r calRow
		var phase string
		if err := rows.Scan(&r.id, &phase, &r.hours); err != nil {
			return nil, err
		}
		r.phase = award.Phase(phase)
		cals = append(cals, r)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	result := make(map[award.Phase]award.PhaseCalendarConfig, len(cals))
	for _, c := range cals {
		dates, err := s.calendarDays(ctx, c.id)
		if err != nil {
			return nil, err
		}
		result[c.phase] = award.PhaseCalendarConfig{
			DefaultHours: c.hours,
			Dates:        dates,
		}
	}
	return result, nil
}

func (s *Store) calendarDays(ctx context.Context, calendarID string) ([]string, error) {
	rows, err := s.db.QueryContext(ctx,
		"SELECT date FROM calendar_days WHERE calendar_id = ? ORDER BY date ASC",
		calendarID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to query calendar days: %w", err)
	}
	defer rows.Close()

	var dates []string
	for rows.Next() {
		var d string
		if err := rows.Scan(&d); err != nil {
			return nil, err
		}
		dates = append(dates, d)
	}
	return dates, rows.Err()
}

// =============================================================================
// BUDGET GROUPINGS (middle override layer)
// =============================================================================

// GroupingRecord is a budget grouping with its calendar override
// document (raw JSON, parsed by the factory package).
type GroupingRecord struct {
	ID                string
	Name              string
	Code              string
	CalendarOverrides []byte
}

// SaveGrouping upserts a grouping.
func (s *Store) SaveGrouping(ctx context.Context, g GroupingRecord) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if g.ID == "" {
		g.ID = uuid.NewString()
	}

	query := `
		INSERT INTO budget_groupings (id, name, code, calendar_overrides)
		VALUES (?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			name = excluded.name,
			code = excluded.code,
			calendar_overrides = excluded.calendar_overrides
	`
	_, err := s.db.ExecContext(ctx, query, g.ID, g.Name, g.Code, nullBytes(g.CalendarOverrides))
	if err != nil {
		return "", fmt.Errorf("failed to save grouping: %w", err)
	}
	return g.ID, nil
}

// GetGrouping retrieves a grouping by ID. Returns nil when not found.
func (s *Store) GetGrouping(ctx context.Context, id string) (*GroupingRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var g GroupingRecord
	var overrides sql.NullString
	err := s.db.QueryRowContext(ctx,
		"SELECT id, name, code, calendar_overrides FROM budget_groupings WHERE id = ?",
		id,
	).Scan(&g.ID, &g.Name, &g.Code, &overrides)

	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	if overrides.Valid {
		g.CalendarOverrides = []byte(overrides.String)
	}
	return &g, nil
}

// =============================================================================
// LINE ITEMS (top override layer + pay fields)
// =============================================================================

// LineItemRecord is a labor line item. PhaseDetails holds the
// line-item calendar override document as raw JSON.
type LineItemRecord struct {
	ID              string
	GroupingID      string
	Description     string
	BaseRate        float64
	IsCasual        bool
	IsArtist        bool
	Classification  string
	OvertimeRuleSet string
	PhaseDetails    []byte
}

// SaveLineItem upserts a line item.
func (s *Store) SaveLineItem(ctx context.Context, li LineItemRecord) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if li.ID == "" {
		li.ID = uuid.NewString()
	}
	if li.OvertimeRuleSet == "" {
		li.OvertimeRuleSet = "Standard"
	}

	query := `
		INSERT INTO line_items
		(id, grouping_id, description, base_rate, is_casual, is_artist,
		 classification, overtime_rule_set, phase_details)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			grouping_id = excluded.grouping_id,
			description = excluded.description,
			base_rate = excluded.base_rate,
			is_casual = excluded.is_casual,
			is_artist = excluded.is_artist,
			classification = excluded.classification,
			overtime_rule_set = excluded.overtime_rule_set,
			phase_details = excluded.phase_details
	`
	_, err := s.db.ExecContext(ctx, query,
		li.ID, nullString(li.GroupingID), li.Description, li.BaseRate,
		li.IsCasual, li.IsArtist, li.Classification, li.OvertimeRuleSet,
		nullBytes(li.PhaseDetails),
	)
	if err != nil {
		return "", fmt.Errorf("failed to save line item: %w", err)
	}
	return li.ID, nil
}

// GetLineItem retrieves a line item by ID. Returns nil when not found.
func (s *Store) GetLineItem(ctx context.Context, id string) (*LineItemRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var li LineItemRecord
	var groupingID, phaseDetails sql.NullString
	err := s.db.QueryRowContext(ctx,
		`SELECT id, grouping_id, description, base_rate, is_casual, is_artist,
		        classification, overtime_rule_set, phase_details
		 FROM line_items WHERE id = ?`,
		id,
	).Scan(&li.ID, &groupingID, &li.Description, &li.BaseRate, &li.IsCasual,
		&li.IsArtist, &li.Classification, &li.OvertimeRuleSet, &phaseDetails)

	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	li.GroupingID = groupingID.String
	if phaseDetails.Valid {
		li.PhaseDetails = []byte(phaseDetails.String)
	}
	return &li, nil
}

// ListLineItems returns all line items under a grouping.
func (s *Store) ListLineItems(ctx context.Context, groupingID string) ([]LineItemRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rows, err := s.db.QueryContext(ctx,
		`SELECT id, grouping_id, description, base_rate, is_casual, is_artist,
		        classification, overtime_rule_set, phase_details
		 FROM line_items WHERE grouping_id = ? ORDER BY description`,
		groupingID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []LineItemRecord
	for rows.Next() {
		var li LineItemRecord
		var gid, phaseDetails sql.NullString
		if err := rows.Scan(&li.ID, &gid, &li.Description, &li.BaseRate, &li.IsCasual,
			&li.IsArtist, &li.Classification, &li.OvertimeRuleSet, &phaseDetails); err != nil {
			return nil, err
		}
		li.GroupingID = gid.String
		if phaseDetails.Valid {
			li.PhaseDetails = []byte(phaseDetails.String)
		}
		items = append(items, li)
	}
	return items, rows.Err()
}

// =============================================================================
// CREW MEMBERS
// =============================================================================

// Allowance is a recurring rate allowance attached to a crew member.
type Allowance struct {
	ID        string
	Name      string
	Amount    float64
	Frequency string // hour, day, week
}

// CrewMember is a crew record with its allowances.
type CrewMember struct {
	ID                 string
	Name               string
	Role               string
	BaseRate           float64
	DefaultDaysPerWeek float64
	OvertimeRuleSet    string
	Allowances         []Allowance
}

// SaveCrewMember upserts a crew member and replaces its allowances.
func (s *Store) SaveCrewMember(ctx context.Context, cm CrewMember) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if cm.ID == "" {
		cm.ID = uuid.NewString()
	}
	if cm.DefaultDaysPerWeek == 0 {
		cm.DefaultDaysPerWeek = 5.0
	}
	if cm.OvertimeRuleSet == "" {
		cm.OvertimeRuleSet = "Standard"
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return "", fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	query := `
		INSERT INTO crew_members (id, name, role, base_rate, default_days_per_week, overtime_rule_set)
		VALUES (?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			name = excluded.name,
			role = excluded.role,
			base_rate = excluded.base_rate,
			default_days_per_week = excluded.default_days_per_week,
			overtime_rule_set = excluded.overtime_rule_set
	`
	if _, err := tx.ExecContext(ctx, query,
		cm.ID, cm.Name, cm.Role, cm.BaseRate, cm.DefaultDaysPerWeek, cm.OvertimeRuleSet,
	); err != nil {
		return "", fmt.Errorf("failed to save crew member: %w", err)
	}

	if _, err := tx.ExecContext(ctx,
		"DELETE FROM labor_allowances WHERE crew_member_id = ?", cm.ID,
	); err != nil {
		return "", fmt.Errorf("failed to clear allowances: %w", err)
	}
	for _, a := range cm.Allowances {
		id := a.ID
		if id == "" {
			id = uuid.NewString()
		}
		freq := a.Frequency
		if freq == "" {
			freq = "day"
		}
		if _, err := tx.ExecContext(ctx,
			"INSERT INTO labor_allowances (id, crew_member_id, name, amount, frequency) VALUES (?, ?, ?, ?, ?)",
			id, cm.ID, a.Name, a.Amount, freq,
		); err != nil {
			return "", fmt.Errorf("failed to save allowance: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return "", err
	}
	return cm.ID, nil
}

// GetCrewMember retrieves a crew member by ID, allowances included.
// Returns nil when not found.
func (s *Store) GetCrewMember(ctx context.Context, id string) (*CrewMember, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var cm CrewMember
	err := s.db.QueryRowContext(ctx,
		`SELECT id, name, role, base_rate, default_days_per_week, overtime_rule_set
		 FROM crew_members WHERE id = ?`,
		id,
	).Scan(&cm.ID, &cm.Name, &cm.Role, &cm.BaseRate, &cm.DefaultDaysPerWeek, &cm.OvertimeRuleSet)

	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	cm.Allowances, err = s.crewAllowances(ctx, cm.ID)
	if err != nil {
		return nil, err
	}
	return &cm, nil
}

// ListCrew returns all crew members, allowances included.
func (s *Store) ListCrew(ctx context.Context) ([]CrewMember, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rows, err := s.db.QueryContext(ctx,
		`SELECT id, name, role, base_rate, default_days_per_week, overtime_rule_set
		 FROM crew_members ORDER BY name`,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var crew []CrewMember
	for rows.Next() {
		var cm CrewMember
		if err := rows.Scan(&cm.ID, &cm.Name, &cm.Role, &cm.BaseRate,
			&cm.DefaultDaysPerWeek, &cm.OvertimeRuleSet); err != nil {
			return nil, err
		}
		crew = append(crew, cm)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	for i := range crew {
		crew[i].Allowances, err = s.crewAllowances(ctx, crew[i].ID)
		if err != nil {
			return nil, err
		}
	}
	return crew, nil
}

// DeleteCrewMember removes a crew member and its allowances.
func (s *Store) DeleteCrewMember(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, err := s.db.ExecContext(ctx, "DELETE FROM crew_members WHERE id = ?", id)
	return err
}

func (s *Store) crewAllowances(ctx context.Context, crewID string) ([]Allowance, error) {
	rows, err := s.db.QueryContext(ctx,
		"SELECT id, name, amount, frequency FROM labor_allowances WHERE crew_member_id = ? ORDER BY name",
		crewID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var allowances []Allowance
	for rows.Next() {
		var a Allowance
		if err := rows.Scan(&a.ID, &a.Name, &a.Amount, &a.Frequency); err != nil {
			return nil, err
		}
		allowances = append(allowances, a)
	}
	return allowances, rows.Err()
}

// =============================================================================
// UTILITIES
// =============================================================================

// Reset clears all data (for testing/demo).
func (s *Store) Reset(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	tables := []string{
		"labor_allowances", "crew_members", "line_items",
		"budget_groupings", "calendar_days", "production_calendars",
	}
	for _, table := range tables {
		if _, err := s.db.ExecContext(ctx, "DELETE FROM "+table); err != nil {
			return err
		}
	}
	return nil
}

func nullString(s string) sql.NullString {
	if s == "" {
		return sql.NullString{}
	}
	return sql.NullString{String: s, Valid: true}
}

func nullBytes(b []byte) sql.NullString {
	if len(b) == 0 {
		return sql.NullString{}
	}
	return sql.NullString{String: string(b), Valid: true}
}
