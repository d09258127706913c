package tests

import (
	"testing"

	"groupdine/internal/domain"
	"groupdine/internal/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHeuristicExtract_FullPrompt(t *testing.T) {
	extracted := service.HeuristicExtract(
		"We are 6 people, mostly vegetarian, one vegan. We love italian food and wine. Budget 20-40 per person.")

	assert.Equal(t, []string{"vegetarian", "vegan"}, extracted.DietaryRestrictions)
	assert.Equal(t, []string{"Italian"}, extracted.CuisinePreferences)

	require.NotNil(t, extracted.AttendeeCount)
	assert.Equal(t, 6, *extracted.AttendeeCount)

	require.NotNil(t, extracted.BudgetMin)
	require.NotNil(t, extracted.BudgetMax)
	assert.Equal(t, 20.0, *extracted.BudgetMin)
	assert.Equal(t, 40.0, *extracted.BudgetMax)

	require.NotNil(t, extracted.AlcoholPreference)
	assert.Equal(t, domain.AlcoholRequired, *extracted.AlcoholPreference)
}

func TestHeuristicExtract_NoAlcoholBeatsDrinkMentions(t *testing.T) {
	extracted := service.HeuristicExtract("no alcohol please, but great sushi")

	require.NotNil(t, extracted.AlcoholPreference)
	assert.Equal(t, domain.AlcoholNone, *extracted.AlcoholPreference)
	assert.Equal(t, []string{"Sushi"}, extracted.CuisinePreferences)
}

func TestHeuristicExtract_BudgetCapOnly(t *testing.T) {
	extracted := service.HeuristicExtract("something casual, under 50 euros")

	assert.Nil(t, extracted.BudgetMin)
	require.NotNil(t, extracted.BudgetMax)
	assert.Equal(t, 50.0, *extracted.BudgetMax)
}

func TestHeuristicExtract_EmptyAndUnrecognizedText(t *testing.T) {
	for _, text := range []string{"", "   ", "surprise us!"} {
		extracted := service.HeuristicExtract(text)
		assert.Empty(t, extracted.DietaryRestrictions)
		assert.Empty(t, extracted.CuisinePreferences)
		assert.Nil(t, extracted.AttendeeCount)
		assert.Nil(t, extracted.BudgetMin)
		assert.Nil(t, extracted.BudgetMax)
		assert.Nil(t, extracted.AlcoholPreference)
	}
}

func TestExtractedPreferences_MergeKeepsStructuredFields(t *testing.T) {
	budget := 25.0
	location := "Utrecht"
	alcohol := domain.AlcoholRequired
	extracted := &domain.ExtractedPreferences{
		DietaryRestrictions: []string{"vegan"},
		CuisinePreferences:  []string{"Thai"},
		Location:            &location,
		BudgetMin:           &budget,
		AlcoholPreference:   &alcohol,
	}

	pref := domain.AttendeePreference{
		AttendeeID:          "a",
		DietaryRestrictions: []string{"halal"},
	}
	extracted.Merge(&pref)

	// Structured dietary input wins; everything empty is filled in.
	assert.Equal(t, []string{"halal"}, pref.DietaryRestrictions)
	assert.Equal(t, []string{"Thai"}, pref.CuisinePreferences)
	assert.Equal(t, domain.AlcoholRequired, pref.AlcoholPreference)
	require.NotNil(t, pref.LocationOverride)
	assert.Equal(t, "Utrecht", *pref.LocationOverride)
	require.NotNil(t, pref.BudgetMin)
	assert.Equal(t, 25.0, *pref.BudgetMin)
	assert.Nil(t, pref.BudgetMax)
}
