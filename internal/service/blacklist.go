package service

import (
	"sort"
	"strings"

	"groupdine/internal/domain"
)

// Blacklist indexes active dislike records under two key spaces: restaurant
// identity and normalized (name, address). Historical records are not keyed
// consistently, so a candidate is excluded if it matches in either space.
type Blacklist struct {
	byID   map[string][]domain.DislikeRecord
	byPair map[string][]domain.DislikeRecord
}

// NewBlacklist builds the lookup sets from active records only. Inactive
// dislikes are how a user un-blacklists a restaurant; they must never filter.
func NewBlacklist(dislikes []domain.DislikeRecord) *Blacklist {
	bl := &Blacklist{
		byID:   make(map[string][]domain.DislikeRecord),
		byPair: make(map[string][]domain.DislikeRecord),
	}
	for _, d := range dislikes {
		if !d.IsActive {
			continue
		}
		if d.RestaurantID != "" {
			bl.byID[d.RestaurantID] = append(bl.byID[d.RestaurantID], d)
		}
		key := pairKey(d.RestaurantName, d.RestaurantAddress)
		if key != "|" {
			bl.byPair[key] = append(bl.byPair[key], d)
		}
	}
	return bl
}

func (bl *Blacklist) Matches(r domain.Restaurant) bool {
	return len(bl.matching(r)) > 0
}

func (bl *Blacklist) matching(r domain.Restaurant) []domain.DislikeRecord {
	var records []domain.DislikeRecord
	if r.ID != "" {
		records = append(records, bl.byID[r.ID]...)
	}
	records = append(records, bl.byPair[pairKey(r.Name, FormatAddress(r.Address))]...)
	return records
}

// Filter removes blacklisted candidates from the pool and returns the
// survivors plus an audit entry per excluded candidate. Filtering is
// idempotent: running it on its own output removes nothing further.
func (bl *Blacklist) Filter(pool []domain.Restaurant) ([]domain.Restaurant, []domain.ExcludedRestaurant) {
	kept := make([]domain.Restaurant, 0, len(pool))
	var excluded []domain.ExcludedRestaurant
	for _, candidate := range pool {
		records := bl.matching(candidate)
		if len(records) == 0 {
			kept = append(kept, candidate)
			continue
		}
		excluded = append(excluded, auditEntry(candidate, records))
	}
	return kept, excluded
}

func auditEntry(r domain.Restaurant, records []domain.DislikeRecord) domain.ExcludedRestaurant {
	entry := domain.ExcludedRestaurant{
		RestaurantID: r.ID,
		Name:         r.Name,
		Address:      FormatAddress(r.Address),
	}
	for _, d := range records {
		entry.ExcludedBy = appendUnique(entry.ExcludedBy, d.UserPhone)
		reason := d.Reason
		if reason == "" {
			reason = "unknown"
		}
		entry.Reasons = appendUnique(entry.Reasons, reason)
	}
	sort.Strings(entry.ExcludedBy)
	sort.Strings(entry.Reasons)
	return entry
}

func appendUnique(list []string, value string) []string {
	for _, v := range list {
		if v == value {
			return list
		}
	}
	return append(list, value)
}

// FormatAddress joins the non-empty address components with ", ".
func FormatAddress(a domain.Address) string {
	parts := make([]string, 0, 4)
	for _, p := range []string{a.Street, a.City, a.State, a.Country} {
		if strings.TrimSpace(p) != "" {
			parts = append(parts, strings.TrimSpace(p))
		}
	}
	return strings.Join(parts, ", ")
}

func pairKey(name, address string) string {
	return normalize(name) + "|" + normalize(address)
}

func normalize(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}
