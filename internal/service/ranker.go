package service

import (
	"sort"

	"groupdine/internal/domain"
)

// MaxRecommendations caps a session's ranked list.
const MaxRecommendations = 5

// RankTop sorts scored candidates by score descending and truncates to the
// top limit. The sort is stable: equal scores keep pool order, so repeated
// runs over an unchanged pool produce identical output.
//
// A non-nil blacklist is applied once more as a safety net before ranks are
// assigned; the filter is idempotent so a doubly-filtered list is unchanged.
// Ranks are dense (1..N) regardless of how many candidates were dropped.
func RankTop(scored []domain.ScoredRestaurant, blacklist *Blacklist, limit int) []domain.RankedRestaurant {
	if limit <= 0 {
		limit = MaxRecommendations
	}

	surviving := make([]domain.ScoredRestaurant, 0, len(scored))
	for _, s := range scored {
		if blacklist != nil && blacklist.Matches(s.Restaurant) {
			continue
		}
		surviving = append(surviving, s)
	}

	sort.SliceStable(surviving, func(i, j int) bool {
		return surviving[i].Score > surviving[j].Score
	})

	if len(surviving) > limit {
		surviving = surviving[:limit]
	}

	ranked := make([]domain.RankedRestaurant, 0, len(surviving))
	for i, s := range surviving {
		ranked = append(ranked, domain.RankedRestaurant{
			Rank:         i + 1,
			RestaurantID: s.Restaurant.ID,
			Name:         s.Restaurant.Name,
			Address:      FormatAddress(s.Restaurant.Address),
			Phone:        s.Restaurant.Phone,
			Cuisines:     s.Restaurant.Cuisines,
			PriceLevel:   s.Restaurant.PriceLevel,
			Score:        s.Score,
			Reasoning:    s.Reasoning,
		})
	}
	return ranked
}
