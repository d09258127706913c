package service

import (
	"errors"
	"strings"

	"groupdine/internal/domain"
)

var (
	ErrMissingEventID = errors.New("event identity is required")
	ErrNoAttendees    = errors.New("no attendee preferences to aggregate")
)

// Permissive defaults applied when nobody states a value. The budget bounds
// cover all four price bands.
const (
	DefaultBudgetMin = 0.0
	DefaultBudgetMax = 1000.0
	DefaultPartySize = 2
)

// AggregatePreferences merges per-attendee preferences and event defaults
// into one criteria set. Missing optional fields degrade to permissive
// defaults; the only hard failures are a missing event identity and an empty
// attendee list.
//
// The prefs slice must be in submission order: the first attendee with a
// location override wins (there is no consensus mechanism).
func AggregatePreferences(event *domain.Event, prefs []domain.AttendeePreference) (*domain.EventCriteria, error) {
	if event == nil || event.ID == "" {
		return nil, ErrMissingEventID
	}
	if len(prefs) == 0 {
		return nil, ErrNoAttendees
	}

	criteria := &domain.EventCriteria{
		Location:   event.Location,
		Occasion:   event.OccasionDescription,
		Date:       event.Date,
		TimeWindow: event.TimeWindow,
		BudgetMin:  DefaultBudgetMin,
		BudgetMax:  DefaultBudgetMax,
	}

	var (
		minStated, maxStated bool
	)
	for _, pref := range prefs {
		criteria.DietaryRestrictions = unionTags(criteria.DietaryRestrictions, pref.DietaryRestrictions)
		criteria.CuisinePreferences = unionTags(criteria.CuisinePreferences, pref.CuisinePreferences)

		// One hard requirement outweighs everyone else's indifference.
		if pref.AlcoholPreference == domain.AlcoholRequired {
			criteria.AlcoholRequired = true
		}

		if pref.BudgetMin != nil {
			if !minStated || *pref.BudgetMin < criteria.BudgetMin {
				criteria.BudgetMin = *pref.BudgetMin
			}
			minStated = true
		}
		if pref.BudgetMax != nil {
			if !maxStated || *pref.BudgetMax > criteria.BudgetMax {
				criteria.BudgetMax = *pref.BudgetMax
			}
			maxStated = true
		}
	}
	// A stated minimum above the defaulted maximum would invert the range.
	if criteria.BudgetMax < criteria.BudgetMin {
		criteria.BudgetMax = criteria.BudgetMin
	}

	for _, pref := range prefs {
		if pref.LocationOverride != nil && strings.TrimSpace(*pref.LocationOverride) != "" {
			criteria.Location = *pref.LocationOverride
			break
		}
	}

	// "Any" never narrows; drop it as soon as a specific cuisine exists.
	criteria.CuisinePreferences = dropAnySentinel(criteria.CuisinePreferences)

	criteria.PartySize = event.ExpectedAttendeeCount
	if criteria.PartySize <= 0 {
		criteria.PartySize = len(prefs)
	}
	if criteria.PartySize < DefaultPartySize {
		criteria.PartySize = DefaultPartySize
	}

	return criteria, nil
}

// unionTags appends tags not yet present, deduplicating by case-insensitive
// trimmed equality and keeping first-seen casing and order.
func unionTags(existing, incoming []string) []string {
	seen := make(map[string]struct{}, len(existing))
	for _, tag := range existing {
		seen[strings.ToLower(strings.TrimSpace(tag))] = struct{}{}
	}
	for _, tag := range incoming {
		key := strings.ToLower(strings.TrimSpace(tag))
		if key == "" {
			continue
		}
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		existing = append(existing, strings.TrimSpace(tag))
	}
	return existing
}

func dropAnySentinel(cuisines []string) []string {
	if len(cuisines) <= 1 {
		return cuisines
	}
	kept := cuisines[:0]
	for _, tag := range cuisines {
		if strings.EqualFold(tag, domain.CuisineAny) {
			continue
		}
		kept = append(kept, tag)
	}
	if len(kept) == 0 {
		return []string{domain.CuisineAny}
	}
	return kept
}
