package domain

import "time"

// Event statuses.
const (
	EventStatusCreated         = "created"
	EventStatusReadyForBooking = "ready_for_booking"
)

// Alcohol preference values.
const (
	AlcoholRequired     = "required"
	AlcoholNone         = "none"
	AlcoholNoPreference = "no-preference"
)

// Dislike types and reasons.
const (
	DislikePermanent     = "permanent"
	DislikeEventSpecific = "event-specific"
)

// CuisineAny is a sentinel meaning "no specific cuisine"; it never narrows
// the candidate set on its own.
const CuisineAny = "Any"

type Event struct {
	ID                    string    `json:"event_id"`
	OrganizerPhone        string    `json:"organizer_phone"`
	Location              string    `json:"location"`
	OccasionDescription   string    `json:"occasion_description"`
	Date                  string    `json:"date"`
	TimeWindow            string    `json:"time_window"`
	ExpectedAttendeeCount int       `json:"expected_attendee_count"`
	OrganizerPrompt       string    `json:"organizer_prompt,omitempty"`
	Status                string    `json:"status"`
	CreatedAt             time.Time `json:"created_at"`
	UpdatedAt             time.Time `json:"updated_at"`
}

// EventResponse is one invitee's answer to an invitation. Resubmission by the
// same phone for the same event updates the existing response in place.
type EventResponse struct {
	ID                  string    `json:"id"`
	EventID             string    `json:"event_id"`
	RespondentPhone     string    `json:"respondent_phone"`
	RespondentEmail     string    `json:"respondent_email,omitempty"`
	AttendanceConfirmed bool      `json:"attendance_confirmed"`
	LocationOverride    *string   `json:"location_preference_override,omitempty"`
	DietaryNotes        *string   `json:"event_specific_dietary_notes,omitempty"`
	Prompt              *string   `json:"prompt,omitempty"`
	RespondedAt         time.Time `json:"responded_at"`
	UpdatedAt           time.Time `json:"updated_at"`
}

// AttendeePreference is the structured preference set for one attendee,
// assembled from their response plus whatever the extractor pulled out of
// their free-text prompt. Every field except AttendeeID may be empty.
type AttendeePreference struct {
	AttendeeID          string   `json:"attendee_id"`
	DietaryRestrictions []string `json:"dietary_restrictions,omitempty"`
	CuisinePreferences  []string `json:"cuisine_preferences,omitempty"`
	AlcoholPreference   string   `json:"alcohol_preference,omitempty"`
	EventNotes          *string  `json:"event_specific_notes,omitempty"`
	LocationOverride    *string  `json:"location_override,omitempty"`
	BudgetMin           *float64 `json:"budget_min,omitempty"`
	BudgetMax           *float64 `json:"budget_max,omitempty"`
}

// EventCriteria is the normalized, aggregated requirement set for one
// planning cycle. It is derived, never persisted on its own.
type EventCriteria struct {
	Location            string   `json:"location"`
	Occasion            string   `json:"occasion"`
	Date                string   `json:"date"`
	TimeWindow          string   `json:"time_window"`
	PartySize           int      `json:"party_size"`
	BudgetMin           float64  `json:"budget_min"`
	BudgetMax           float64  `json:"budget_max"`
	DietaryRestrictions []string `json:"dietary_restrictions"`
	CuisinePreferences  []string `json:"cuisine_preferences"`
	AlcoholRequired     bool     `json:"alcohol_required"`
}

type Address struct {
	Street  string `json:"street"`
	City    string `json:"city"`
	State   string `json:"state"`
	Country string `json:"country"`
}

// Restaurant is a candidate from the pool. Read-only for the planner.
type Restaurant struct {
	ID         string   `json:"id"`
	Name       string   `json:"name"`
	Address    Address  `json:"address"`
	Phone      string   `json:"phone"`
	Cuisines   []string `json:"cuisines"`
	PriceLevel string   `json:"price_level"`
	Rating     float64  `json:"rating"`
	NumReviews int      `json:"num_reviews"`
}

// DislikeRecord marks a restaurant as excluded for one user. Deactivation is
// logical: an inactive record never filters anything. Matching prefers
// RestaurantID; older records carry only a name/address pair.
type DislikeRecord struct {
	ID                string    `json:"id"`
	UserPhone         string    `json:"user_phone"`
	RestaurantID      string    `json:"restaurant_id,omitempty"`
	RestaurantName    string    `json:"restaurant_name"`
	RestaurantAddress string    `json:"restaurant_address"`
	DislikeType       string    `json:"dislike_type"`
	EventID           *string   `json:"event_id,omitempty"`
	Reason            string    `json:"reason,omitempty"`
	Notes             string    `json:"notes,omitempty"`
	IsActive          bool      `json:"is_active"`
	CreatedAt         time.Time `json:"created_at"`
}

// DislikeUpdate carries the patchable dislike fields; nil means unchanged.
type DislikeUpdate struct {
	IsActive *bool   `json:"is_active,omitempty"`
	Reason   *string `json:"reason,omitempty"`
	Notes    *string `json:"notes,omitempty"`
}

// UserProfile holds a user's standing preferences, captured at onboarding and
// folded into every event they confirm.
type UserProfile struct {
	PhoneNumber         string    `json:"phone_number"`
	Email               string    `json:"email,omitempty"`
	DietaryRestrictions []string  `json:"dietary_restrictions"`
	AlcoholPreference   string    `json:"alcohol_preference"`
	PushNotifications   bool      `json:"push_notifications_enabled"`
	EmailNotifications  bool      `json:"email_notifications_enabled"`
	CreatedAt           time.Time `json:"created_at"`
	UpdatedAt           time.Time `json:"updated_at"`
}

// UserPreferencesUpdate carries the patchable profile fields; nil means
// unchanged.
type UserPreferencesUpdate struct {
	DietaryRestrictions *[]string `json:"dietary_restrictions,omitempty"`
	AlcoholPreference   *string   `json:"alcohol_preference,omitempty"`
	PushNotifications   *bool     `json:"push_notifications_enabled,omitempty"`
	EmailNotifications  *bool     `json:"email_notifications_enabled,omitempty"`
}

// ScoredRestaurant is ephemeral scoring output, produced fresh per pass.
type ScoredRestaurant struct {
	Restaurant Restaurant `json:"restaurant"`
	Score      float64    `json:"score"`
	Reasoning  []string   `json:"reasoning"`
}

// RankedRestaurant is one entry of a recommendation session. Ranks are dense
// and 1-based.
type RankedRestaurant struct {
	Rank         int      `json:"rank"`
	RestaurantID string   `json:"restaurant_id"`
	Name         string   `json:"restaurant_name"`
	Address      string   `json:"address"`
	Phone        string   `json:"phone"`
	Cuisines     []string `json:"cuisines"`
	PriceLevel   string   `json:"price_level"`
	Score        float64  `json:"score"`
	Reasoning    []string `json:"reasoning"`
}

// ExcludedRestaurant records a pool candidate removed by the blacklist, with
// every participant and reason that contributed to the exclusion.
type ExcludedRestaurant struct {
	RestaurantID string   `json:"restaurant_id,omitempty"`
	Name         string   `json:"restaurant_name"`
	Address      string   `json:"restaurant_address"`
	ExcludedBy   []string `json:"excluded_by"`
	Reasons      []string `json:"dislike_reasons"`
}

// RecommendationSession is the output of one generation cycle. A newer
// session supersedes an older one; retrieval returns the most recent by
// GeneratedAt.
type RecommendationSession struct {
	ID               string               `json:"id"`
	EventID          string               `json:"event_id"`
	Entries          []RankedRestaurant   `json:"recommendations"`
	Excluded         []ExcludedRestaurant `json:"excluded_restaurants"`
	Criteria         EventCriteria        `json:"criteria"`
	ModelUsed        string               `json:"model_used"`
	ConfidenceScore  float64              `json:"confidence_score"`
	ThresholdCrossed bool                 `json:"threshold_crossed"`
	GeneratedAt      time.Time            `json:"generated_at"`
}

// ExtractedPreferences is the partial result of free-text extraction. Every
// field is optional; consumers substitute permissive defaults for anything
// absent.
type ExtractedPreferences struct {
	Occasion            *string  `json:"occasion,omitempty"`
	Date                *string  `json:"date,omitempty"`
	Time                *string  `json:"time,omitempty"`
	Location            *string  `json:"location,omitempty"`
	DietaryRestrictions []string `json:"dietary_restrictions,omitempty"`
	CuisinePreferences  []string `json:"cuisine_preferences,omitempty"`
	AttendeeCount       *int     `json:"attendee_count,omitempty"`
	BudgetMin           *float64 `json:"budget_min,omitempty"`
	BudgetMax           *float64 `json:"budget_max,omitempty"`
	AlcoholPreference   *string  `json:"alcohol_preference,omitempty"`
}

// Merge fills the target preference's empty fields from the extraction
// output. Explicit structured fields always win over extracted ones.
func (e *ExtractedPreferences) Merge(pref *AttendeePreference) {
	if e == nil || pref == nil {
		return
	}
	if len(pref.DietaryRestrictions) == 0 {
		pref.DietaryRestrictions = e.DietaryRestrictions
	}
	if len(pref.CuisinePreferences) == 0 {
		pref.CuisinePreferences = e.CuisinePreferences
	}
	if pref.AlcoholPreference == "" && e.AlcoholPreference != nil {
		pref.AlcoholPreference = *e.AlcoholPreference
	}
	if pref.LocationOverride == nil && e.Location != nil {
		pref.LocationOverride = e.Location
	}
	if pref.BudgetMin == nil {
		pref.BudgetMin = e.BudgetMin
	}
	if pref.BudgetMax == nil {
		pref.BudgetMax = e.BudgetMax
	}
}

type KafkaMessage struct {
	Type             string    `json:"type"`
	EventID          string    `json:"event_id"`
	SessionID        string    `json:"session_id"`
	ThresholdCrossed bool      `json:"threshold_crossed"`
	Recommendations  int       `json:"recommendation_count"`
	Timestamp        time.Time `json:"timestamp"`
}

// BookingTask is queued by the downstream consumer once recommendations for
// an event are ready; the booking/call system drains the queue.
type BookingTask struct {
	ID        int       `json:"id"`
	EventID   string    `json:"event_id"`
	SessionID string    `json:"session_id"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
}
