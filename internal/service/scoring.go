package service

import (
	"fmt"
	"sort"
	"strings"

	"groupdine/internal/domain"
)

// Sub-score weights. Scoring is additive; no sub-score ever subtracts.
const (
	locationBonus = 2.0
	cuisineWeight = 2.0
	priceBonus    = 1.5
	capacityBonus = 1.0

	// Real per-restaurant capacity is not modeled; groups up to this size
	// are assumed to fit anywhere.
	defaultMaxCapacity = 20
)

// Representative per-person cost for each price band.
var priceBandValues = map[string]float64{
	"$":    25,
	"$$":   50,
	"$$$":  100,
	"$$$$": 200,
}

const defaultPriceBand = "$$"

// ScoreRestaurant assigns a candidate a score and one reasoning fragment per
// contributing sub-score. Deterministic: identical inputs always yield the
// identical score and text. The reasoning list is never empty.
func ScoreRestaurant(r domain.Restaurant, criteria *domain.EventCriteria) (float64, []string) {
	score := 0.0
	var reasons []string

	city := r.Address.City
	if city != "" && criteria.Location != "" &&
		strings.Contains(strings.ToLower(city), strings.ToLower(criteria.Location)) {
		score += locationBonus
		reasons = append(reasons, fmt.Sprintf("Location matches %s", criteria.Location))
	}

	if matched := matchingCuisines(r.Cuisines, criteria.CuisinePreferences); len(matched) > 0 {
		score += float64(len(matched)) * cuisineWeight
		reasons = append(reasons, fmt.Sprintf("Matches cuisines: %s", strings.Join(matched, ", ")))
	}

	band := r.PriceLevel
	price, ok := priceBandValues[band]
	if !ok {
		band = defaultPriceBand
		price = priceBandValues[defaultPriceBand]
	}
	if criteria.BudgetMin <= price && price <= criteria.BudgetMax {
		score += priceBonus
		reasons = append(reasons, fmt.Sprintf("Price level %s within budget range", band))
	}

	if r.Rating > 0 {
		score += r.Rating / 2 // 2.5 cap at a 5.0 rating
		reasons = append(reasons, fmt.Sprintf("Rating bonus: %.1f/5 stars", r.Rating))
	}

	if criteria.PartySize <= defaultMaxCapacity {
		score += capacityBonus
		reasons = append(reasons, fmt.Sprintf("Can accommodate group of %d", criteria.PartySize))
	}

	if len(reasons) == 0 {
		reasons = append(reasons, "General recommendation")
	}
	return score, reasons
}

// matchingCuisines returns the sorted lower-cased intersection of candidate
// and criteria cuisine tags. The "Any" sentinel as the sole criteria tag
// means no cuisine constraint at all. Sorting keeps reasoning text stable
// across runs.
func matchingCuisines(candidate, wanted []string) []string {
	if len(candidate) == 0 || len(wanted) == 0 {
		return nil
	}
	if len(wanted) == 1 && strings.EqualFold(wanted[0], domain.CuisineAny) {
		return nil
	}
	want := make(map[string]struct{}, len(wanted))
	for _, tag := range wanted {
		want[strings.ToLower(strings.TrimSpace(tag))] = struct{}{}
	}
	matchedSet := make(map[string]struct{})
	for _, tag := range candidate {
		key := strings.ToLower(strings.TrimSpace(tag))
		if _, ok := want[key]; ok && key != "" {
			matchedSet[key] = struct{}{}
		}
	}
	if len(matchedSet) == 0 {
		return nil
	}
	matched := make([]string, 0, len(matchedSet))
	for tag := range matchedSet {
		matched = append(matched, tag)
	}
	sort.Strings(matched)
	return matched
}
