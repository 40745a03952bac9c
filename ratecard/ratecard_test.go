package ratecard_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/callsheet/budget-engine/award"
	"github.com/callsheet/budget-engine/ratecard"
)

func testDocument() ratecard.Document {
	return ratecard.Document{
		Sections: []ratecard.Section{
			{
				Name: "Category E - Artists",
				Classifications: []ratecard.Classification{
					{Classification: "Artist Standard", HourlyRate: 52.40},
					{Classification: "Casual Artist", HourlyRate: 52.40},
				},
			},
			{
				Name: "Crew",
				Classifications: []ratecard.Classification{
					{Classification: "Grip", HourlyRate: 48.75},
					{Classification: "Casual Grip", HourlyRate: 48.75},
					{Classification: "Gaffer", HourlyRate: 55.10, MetaSource: "page 12"},
					{Classification: "Broken Row", HourlyRate: 0},
				},
			},
		},
	}
}

func TestResolve_KnownClassifications(t *testing.T) {
	svc := ratecard.New(testDocument())

	grip := svc.Resolve("Grip")
	assert.True(t, grip.Found)
	assert.Equal(t, award.CategoryCrew, grip.Category)
	assert.Equal(t, award.EmploymentPermanent, grip.Employment)
	assert.True(t, grip.BaseHourlyRate.Equal(decimal.RequireFromString("48.75")))

	artist := svc.Resolve("artist standard") // case-insensitive
	assert.True(t, artist.Found)
	assert.Equal(t, award.CategoryArtist, artist.Category)

	casual := svc.Resolve("Casual Grip")
	assert.Equal(t, award.EmploymentCasual, casual.Employment)
}

func TestResolve_UnknownFallsBack(t *testing.T) {
	// Unknown classifications degrade to the fixed default rate with
	// Found=false - never an error.
	svc := ratecard.New(testDocument())

	got := svc.Resolve("Best Boy")

	assert.False(t, got.Found)
	assert.True(t, got.BaseHourlyRate.Equal(decimal.RequireFromString(ratecard.FallbackHourlyRate)))
	assert.Equal(t, award.CategoryCrew, got.Category)
}

func TestResolve_IgnoresZeroRateRows(t *testing.T) {
	// Extraction noise (rate <= 0) must not shadow the fallback.
	svc := ratecard.New(testDocument())

	got := svc.Resolve("Broken Row")

	assert.False(t, got.Found)
}

func TestSearch(t *testing.T) {
	svc := ratecard.New(testDocument())

	grips := svc.Search("grip", 20)
	assert.Len(t, grips, 2)
	assert.Equal(t, "Crew", grips[0].Section)

	limited := svc.Search("a", 1)
	assert.Len(t, limited, 1)

	assert.Empty(t, svc.Search("zzz", 20))
}

func TestLoad_MissingFileDegrades(t *testing.T) {
	svc := ratecard.Load("/nonexistent/award_rates.json")

	got := svc.Resolve("Grip")
	assert.False(t, got.Found)
	assert.True(t, got.BaseHourlyRate.Equal(decimal.RequireFromString(ratecard.FallbackHourlyRate)))
}
