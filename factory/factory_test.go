package factory_test

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/callsheet/budget-engine/award"
	"github.com/callsheet/budget-engine/factory"
)

func TestParseOverrides(t *testing.T) {
	raw := []byte(`{
		"shoot": {"inherit": false, "defaultHours": 12, "dates": ["2026-05-11"]},
		"postProd": {"inherit": true},
		"someFuturePhase": {"inherit": false}
	}`)

	set, err := factory.ParseOverrides(raw)
	require.NoError(t, err)

	shoot, ok := set[award.PhaseShoot]
	require.True(t, ok)
	require.NotNil(t, shoot.Inherit)
	assert.False(t, *shoot.Inherit)
	require.NotNil(t, shoot.DefaultHours)
	assert.Equal(t, 12.0, *shoot.DefaultHours)
	assert.Equal(t, []string{"2026-05-11"}, shoot.Dates)

	post, ok := set[award.PhasePostProd]
	require.True(t, ok)
	require.NotNil(t, post.Inherit)
	assert.True(t, *post.Inherit)
	assert.Nil(t, post.DefaultHours)

	// Unknown phases are ignored, pre-prod was absent.
	_, ok = set[award.PhasePreProd]
	assert.False(t, ok)
	assert.Len(t, set, 2)
}

func TestParseOverrides_EmptyAndInvalid(t *testing.T) {
	set, err := factory.ParseOverrides(nil)
	require.NoError(t, err)
	assert.Empty(t, set)

	set, err = factory.ParseOverrides([]byte(`null`))
	require.NoError(t, err)
	assert.Empty(t, set)

	_, err = factory.ParseOverrides([]byte(`{broken`))
	assert.Error(t, err)
}

func TestOverridesRoundTrip(t *testing.T) {
	inherit := false
	hours := 9.5
	set := award.OverrideSet{
		award.PhaseShoot: {Inherit: &inherit, DefaultHours: &hours, Dates: []string{"2026-03-02"}},
	}

	doc := factory.ToOverridesJSON(set)
	back := factory.FromOverridesJSON(doc)

	assert.Equal(t, set, back)
}

func TestSettingsStore_DefaultsWhenMissing(t *testing.T) {
	store := factory.NewSettingsStore(filepath.Join(t.TempDir(), "fringe_settings.json"))

	got := store.Load()

	assert.Equal(t, award.DefaultFringeSettings(), got)
}

func TestSettingsStore_SaveAndReload(t *testing.T) {
	store := factory.NewSettingsStore(filepath.Join(t.TempDir(), "fringe_settings.json"))

	want := award.FringeSettings{
		Superannuation: 12.0,
		HolidayPay:     4.0,
		PayrollTax:     5.45,
		WorkersComp:    2.0,
	}
	require.NoError(t, store.Save(want))

	assert.Equal(t, want, store.Load())
}
