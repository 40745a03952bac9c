package sqlite_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/callsheet/budget-engine/award"
	"github.com/callsheet/budget-engine/store/sqlite"
)

func newStore(t *testing.T) *sqlite.Store {
	t.Helper()
	store, err := sqlite.New(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })
	return store
}

func TestCalendarRoundTrip(t *testing.T) {
	// GIVEN a store with a shoot calendar saved
	store := newStore(t)
	ctx := context.Background()

	_, err := store.SaveCalendar(ctx, sqlite.CalendarRecord{
		ProjectID:    "proj-1",
		Phase:        award.PhaseShoot,
		DefaultHours: 10,
		Dates:        []string{"2026-03-02", "2026-03-03", "2026-03-04"},
	})
	require.NoError(t, err)

	// WHEN loading the project calendar
	cal, err := store.ProjectCalendar(ctx, "proj-1")
	require.NoError(t, err)

	// THEN the shoot phase comes back with its dates, other phases absent
	shoot, ok := cal[award.PhaseShoot]
	require.True(t, ok)
	assert.Equal(t, 10.0, shoot.DefaultHours)
	assert.Equal(t, []string{"2026-03-02", "2026-03-03", "2026-03-04"}, shoot.Dates)

	_, ok = cal[award.PhasePreProd]
	assert.False(t, ok)
}

func TestSaveCalendar_UpsertReplacesDates(t *testing.T) {
	store := newStore(t)
	ctx := context.Background()

	id1, err := store.SaveCalendar(ctx, sqlite.CalendarRecord{
		ProjectID:    "proj-1",
		Phase:        award.PhaseShoot,
		DefaultHours: 10,
		Dates:        []string{"2026-03-02", "2026-03-03"},
	})
	require.NoError(t, err)

	// Saving the same project+phase again keeps the row but replaces
	// hours and dates.
	id2, err := store.SaveCalendar(ctx, sqlite.CalendarRecord{
		ProjectID:    "proj-1",
		Phase:        award.PhaseShoot,
		DefaultHours: 12,
		Dates:        []string{"2026-03-09"},
	})
	require.NoError(t, err)
	assert.Equal(t, id1, id2)

	cal, err := store.ProjectCalendar(ctx, "proj-1")
	require.NoError(t, err)
	assert.Equal(t, 12.0, cal[award.PhaseShoot].DefaultHours)
	assert.Equal(t, []string{"2026-03-09"}, cal[award.PhaseShoot].Dates)
}

func TestProjectCalendar_EmptyProject(t *testing.T) {
	store := newStore(t)

	cal, err := store.ProjectCalendar(context.Background(), "no-such-project")
	require.NoError(t, err)
	assert.Empty(t, cal)
}

func TestGroupingRoundTrip(t *testing.T) {
	store := newStore(t)
	ctx := context.Background()

	overrides := []byte(`{"shoot":{"inherit":false,"defaultHours":12}}`)
	id, err := store.SaveGrouping(ctx, sqlite.GroupingRecord{
		Name:              "Camera Department",
		Code:              "CAM",
		CalendarOverrides: overrides,
	})
	require.NoError(t, err)
	require.NotEmpty(t, id)

	got, err := store.GetGrouping(ctx, id)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "Camera Department", got.Name)
	assert.Equal(t, "CAM", got.Code)
	assert.JSONEq(t, string(overrides), string(got.CalendarOverrides))

	missing, err := store.GetGrouping(ctx, "nope")
	require.NoError(t, err)
	assert.Nil(t, missing)
}

func TestLineItemRoundTrip(t *testing.T) {
	store := newStore(t)
	ctx := context.Background()

	gid, err := store.SaveGrouping(ctx, sqlite.GroupingRecord{Name: "Grip Department"})
	require.NoError(t, err)

	id, err := store.SaveLineItem(ctx, sqlite.LineItemRecord{
		GroupingID:     gid,
		Description:    "Key Grip",
		BaseRate:       55.10,
		IsCasual:       true,
		Classification: "Casual Grip",
		PhaseDetails:   []byte(`{"postProd":{"inherit":false,"dates":[]}}`),
	})
	require.NoError(t, err)

	got, err := store.GetLineItem(ctx, id)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, gid, got.GroupingID)
	assert.Equal(t, "Key Grip", got.Description)
	assert.Equal(t, 55.10, got.BaseRate)
	assert.True(t, got.IsCasual)
	assert.False(t, got.IsArtist)
	assert.Equal(t, "Standard", got.OvertimeRuleSet)
	assert.NotEmpty(t, got.PhaseDetails)

	items, err := store.ListLineItems(ctx, gid)
	require.NoError(t, err)
	assert.Len(t, items, 1)
}

func TestCrewMemberRoundTrip(t *testing.T) {
	store := newStore(t)
	ctx := context.Background()

	id, err := store.SaveCrewMember(ctx, sqlite.CrewMember{
		Name:     "Alex Doe",
		Role:     "Gaffer",
		BaseRate: 52.40,
		Allowances: []sqlite.Allowance{
			{Name: "Meal", Amount: 30, Frequency: "day"},
			{Name: "Travel", Amount: 0.95, Frequency: "hour"},
		},
	})
	require.NoError(t, err)

	got, err := store.GetCrewMember(ctx, id)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "Alex Doe", got.Name)
	assert.Equal(t, 5.0, got.DefaultDaysPerWeek)
	require.Len(t, got.Allowances, 2)
	assert.Equal(t, "Meal", got.Allowances[0].Name)

	// Re-saving replaces allowances rather than accumulating them.
	got.Allowances = []sqlite.Allowance{{Name: "Meal", Amount: 35}}
	_, err = store.SaveCrewMember(ctx, *got)
	require.NoError(t, err)

	again, err := store.GetCrewMember(ctx, id)
	require.NoError(t, err)
	require.Len(t, again.Allowances, 1)
	assert.Equal(t, 35.0, again.Allowances[0].Amount)
	assert.Equal(t, "day", again.Allowances[0].Frequency)

	crew, err := store.ListCrew(ctx)
	require.NoError(t, err)
	assert.Len(t, crew, 1)

	require.NoError(t, store.DeleteCrewMember(ctx, id))
	gone, err := store.GetCrewMember(ctx, id)
	require.NoError(t, err)
	assert.Nil(t, gone)
}

func TestReset(t *testing.T) {
	store := newStore(t)
	ctx := context.Background()

	_, err := store.SaveCalendar(ctx, sqlite.CalendarRecord{
		ProjectID: "proj-1",
		Phase:     award.PhasePreProd,
		Dates:     []string{"2026-02-02"},
	})
	require.NoError(t, err)

	require.NoError(t, store.Reset(ctx))

	cal, err := store.ProjectCalendar(ctx, "proj-1")
	require.NoError(t, err)
	assert.Empty(t, cal)
}
