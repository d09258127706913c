package tests

import (
	"testing"

	"groupdine/internal/domain"
	"groupdine/internal/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }

func floatPtr(f float64) *float64 { return &f }

func testEvent() *domain.Event {
	return &domain.Event{
		ID:                    "ev-1",
		OrganizerPhone:        "+31600000001",
		Location:              "Amsterdam",
		OccasionDescription:   "Team dinner",
		Date:                  "2026-09-12",
		TimeWindow:            "19:00-22:00",
		ExpectedAttendeeCount: 4,
	}
}

func TestAggregatePreferences_InputErrors(t *testing.T) {
	_, err := service.AggregatePreferences(nil, []domain.AttendeePreference{{AttendeeID: "a"}})
	assert.ErrorIs(t, err, service.ErrMissingEventID)

	_, err = service.AggregatePreferences(&domain.Event{}, []domain.AttendeePreference{{AttendeeID: "a"}})
	assert.ErrorIs(t, err, service.ErrMissingEventID)

	_, err = service.AggregatePreferences(testEvent(), nil)
	assert.ErrorIs(t, err, service.ErrNoAttendees)
}

func TestAggregatePreferences_UnionsAndDefaults(t *testing.T) {
	prefs := []domain.AttendeePreference{
		{
			AttendeeID:          "a",
			DietaryRestrictions: []string{"vegetarian"},
			CuisinePreferences:  []string{"Italian"},
		},
		{
			AttendeeID:          "b",
			DietaryRestrictions: []string{"Vegetarian", "gluten-free"},
			CuisinePreferences:  []string{"italian", "Japanese"},
		},
	}

	criteria, err := service.AggregatePreferences(testEvent(), prefs)
	require.NoError(t, err)

	// Case-insensitive dedupe keeps first-seen casing and order.
	assert.Equal(t, []string{"vegetarian", "gluten-free"}, criteria.DietaryRestrictions)
	assert.Equal(t, []string{"Italian", "Japanese"}, criteria.CuisinePreferences)

	// Nobody stated a budget or alcohol preference.
	assert.Equal(t, service.DefaultBudgetMin, criteria.BudgetMin)
	assert.Equal(t, service.DefaultBudgetMax, criteria.BudgetMax)
	assert.False(t, criteria.AlcoholRequired)

	assert.Equal(t, "Amsterdam", criteria.Location)
	assert.Equal(t, 4, criteria.PartySize)
}

func TestAggregatePreferences_BudgetUnionCoversEveryone(t *testing.T) {
	prefs := []domain.AttendeePreference{
		{AttendeeID: "a", BudgetMin: floatPtr(10), BudgetMax: floatPtr(30)},
		{AttendeeID: "b", BudgetMin: floatPtr(20), BudgetMax: floatPtr(50)},
	}

	criteria, err := service.AggregatePreferences(testEvent(), prefs)
	require.NoError(t, err)

	assert.Equal(t, 10.0, criteria.BudgetMin)
	assert.Equal(t, 50.0, criteria.BudgetMax)
}

func TestAggregatePreferences_StatedMinAboveDefaultMaxKeepsRangeValid(t *testing.T) {
	prefs := []domain.AttendeePreference{
		{AttendeeID: "a", BudgetMin: floatPtr(1200)},
	}

	criteria, err := service.AggregatePreferences(testEvent(), prefs)
	require.NoError(t, err)

	assert.Equal(t, 1200.0, criteria.BudgetMin)
	assert.Equal(t, 1200.0, criteria.BudgetMax)
}

func TestAggregatePreferences_OneAlcoholRequirementWins(t *testing.T) {
	prefs := []domain.AttendeePreference{
		{AttendeeID: "a", AlcoholPreference: domain.AlcoholNoPreference},
		{AttendeeID: "b", AlcoholPreference: domain.AlcoholRequired},
		{AttendeeID: "c", AlcoholPreference: domain.AlcoholNone},
	}

	criteria, err := service.AggregatePreferences(testEvent(), prefs)
	require.NoError(t, err)
	assert.True(t, criteria.AlcoholRequired)
}

func TestAggregatePreferences_FirstLocationOverrideWins(t *testing.T) {
	prefs := []domain.AttendeePreference{
		{AttendeeID: "a"},
		{AttendeeID: "b", LocationOverride: strPtr("Utrecht")},
		{AttendeeID: "c", LocationOverride: strPtr("Rotterdam")},
	}

	criteria, err := service.AggregatePreferences(testEvent(), prefs)
	require.NoError(t, err)
	assert.Equal(t, "Utrecht", criteria.Location)
}

func TestAggregatePreferences_AnySentinel(t *testing.T) {
	prefs := []domain.AttendeePreference{
		{AttendeeID: "a", CuisinePreferences: []string{"Any"}},
		{AttendeeID: "b", CuisinePreferences: []string{"Thai"}},
	}

	criteria, err := service.AggregatePreferences(testEvent(), prefs)
	require.NoError(t, err)
	assert.Equal(t, []string{"Thai"}, criteria.CuisinePreferences)

	// A group with no stated cuisine at all keeps the sentinel.
	criteria, err = service.AggregatePreferences(testEvent(), []domain.AttendeePreference{
		{AttendeeID: "a", CuisinePreferences: []string{"Any"}},
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"Any"}, criteria.CuisinePreferences)
}

func TestAggregatePreferences_PartySizeFallbacks(t *testing.T) {
	event := testEvent()
	event.ExpectedAttendeeCount = 0

	criteria, err := service.AggregatePreferences(event, []domain.AttendeePreference{
		{AttendeeID: "a"}, {AttendeeID: "b"}, {AttendeeID: "c"},
	})
	require.NoError(t, err)
	assert.Equal(t, 3, criteria.PartySize)

	criteria, err = service.AggregatePreferences(event, []domain.AttendeePreference{{AttendeeID: "a"}})
	require.NoError(t, err)
	assert.Equal(t, service.DefaultPartySize, criteria.PartySize)
}

func TestAggregatePreferences_MoreAttendeesNeverShrinkCriteria(t *testing.T) {
	base := []domain.AttendeePreference{
		{AttendeeID: "a", DietaryRestrictions: []string{"vegan"}, CuisinePreferences: []string{"Greek"}},
	}
	small, err := service.AggregatePreferences(testEvent(), base)
	require.NoError(t, err)

	grown, err := service.AggregatePreferences(testEvent(), append(base, domain.AttendeePreference{
		AttendeeID:          "b",
		DietaryRestrictions: []string{"halal"},
		CuisinePreferences:  []string{"Korean"},
	}))
	require.NoError(t, err)

	assert.Subset(t, grown.DietaryRestrictions, small.DietaryRestrictions)
	assert.Subset(t, grown.CuisinePreferences, small.CuisinePreferences)
}
