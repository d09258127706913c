package service

import (
	"regexp"
	"strconv"
	"strings"

	"groupdine/internal/domain"
)

// Keyword tables for the heuristic parser. Deliberately small: this path only
// runs when the remote extractor is down, and anything it misses degrades to
// permissive defaults further along the pipeline.
var dietaryKeywords = []string{
	"vegetarian", "vegan", "gluten-free", "halal", "kosher",
	"lactose intolerant", "nut allergy", "shellfish allergy", "dairy-free",
}

var cuisineKeywords = []string{
	"italian", "japanese", "chinese", "thai", "indian", "mexican", "french",
	"greek", "mediterranean", "seafood", "steakhouse", "sushi", "korean",
	"vietnamese", "spanish", "turkish",
}

var (
	partySizePattern   = regexp.MustCompile(`(?i)\b(\d{1,3})\s*(?:people|persons|guests|attendees|of us)\b`)
	budgetRangePattern = regexp.MustCompile(`(?i)(?:€|\$|eur?\s*)?(\d{1,4})\s*(?:-|to)\s*(?:€|\$|eur?\s*)?(\d{1,4})\s*(?:€|\$|euros?|bucks)?`)
	budgetCapPattern   = regexp.MustCompile(`(?i)(?:under|max|at most|up to)\s*(?:€|\$|eur?\s*)?(\d{1,4})`)
)

// HeuristicExtract is the offline fallback for free-text preference
// extraction. It never fails; unrecognized text simply yields no fields.
func HeuristicExtract(text string) *domain.ExtractedPreferences {
	extracted := &domain.ExtractedPreferences{}
	if strings.TrimSpace(text) == "" {
		return extracted
	}
	lower := strings.ToLower(text)

	for _, keyword := range dietaryKeywords {
		if strings.Contains(lower, keyword) {
			extracted.DietaryRestrictions = append(extracted.DietaryRestrictions, keyword)
		}
	}
	for _, keyword := range cuisineKeywords {
		if strings.Contains(lower, keyword) {
			extracted.CuisinePreferences = append(extracted.CuisinePreferences, capitalize(keyword))
		}
	}

	if m := partySizePattern.FindStringSubmatch(text); m != nil {
		if n, err := strconv.Atoi(m[1]); err == nil && n > 0 {
			extracted.AttendeeCount = &n
		}
	}

	if m := budgetRangePattern.FindStringSubmatch(text); m != nil {
		low, errLow := strconv.ParseFloat(m[1], 64)
		high, errHigh := strconv.ParseFloat(m[2], 64)
		if errLow == nil && errHigh == nil && low <= high {
			extracted.BudgetMin = &low
			extracted.BudgetMax = &high
		}
	} else if m := budgetCapPattern.FindStringSubmatch(text); m != nil {
		if max, err := strconv.ParseFloat(m[1], 64); err == nil {
			extracted.BudgetMax = &max
		}
	}

	if strings.Contains(lower, "no alcohol") || strings.Contains(lower, "alcohol-free") {
		pref := domain.AlcoholNone
		extracted.AlcoholPreference = &pref
	} else if strings.Contains(lower, "drinks") || strings.Contains(lower, "wine") || strings.Contains(lower, "beer") {
		pref := domain.AlcoholRequired
		extracted.AlcoholPreference = &pref
	}

	return extracted
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
