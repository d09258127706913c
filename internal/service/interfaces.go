package service

import (
	"context"
	"time"

	"groupdine/internal/domain"
)

type EventServiceInterface interface {
	Create(ctx context.Context, event *domain.Event) error
	Get(ctx context.Context, eventID string) (*domain.Event, error)
	InviteQR(eventID string) ([]byte, error)
}

type DislikeServiceInterface interface {
	Add(ctx context.Context, dislike *domain.DislikeRecord) error
	ListForUser(ctx context.Context, phone string) ([]domain.DislikeRecord, error)
	Update(ctx context.Context, dislikeID string, update domain.DislikeUpdate) (*domain.DislikeRecord, error)
	Deactivate(ctx context.Context, dislikeID string) error
}

type UserServiceInterface interface {
	Onboard(ctx context.Context, user *domain.UserProfile) error
	Get(ctx context.Context, phone string) (*domain.UserProfile, error)
	UpdatePreferences(ctx context.Context, phone string, update domain.UserPreferencesUpdate) (*domain.UserProfile, error)
}

type PlannerServiceInterface interface {
	SubmitResponse(ctx context.Context, response *domain.EventResponse) (bool, error)
	Generate(ctx context.Context, eventID string) (*domain.RecommendationSession, error)
	Latest(ctx context.Context, eventID string) (*domain.RecommendationSession, error)
}

type EventRepository interface {
	InsertEvent(ctx context.Context, event *domain.Event) error
	GetEvent(ctx context.Context, eventID string) (*domain.Event, error)
	UpdateEventStatus(ctx context.Context, eventID, status string) error
	UpsertResponse(ctx context.Context, response *domain.EventResponse) error
	ListResponses(ctx context.Context, eventID string) ([]domain.EventResponse, error)
	ListConfirmed(ctx context.Context, eventID string) ([]domain.EventResponse, error)
}

type UserRepository interface {
	UpsertUser(ctx context.Context, user *domain.UserProfile) error
	GetUser(ctx context.Context, phone string) (*domain.UserProfile, error)
	UpdateUserPreferences(ctx context.Context, phone string, update domain.UserPreferencesUpdate) (*domain.UserProfile, error)
}

type RestaurantPool interface {
	ListAll(ctx context.Context) ([]domain.Restaurant, error)
}

type DislikeRepository interface {
	InsertDislike(ctx context.Context, dislike *domain.DislikeRecord) error
	GetDislike(ctx context.Context, dislikeID string) (*domain.DislikeRecord, error)
	ListUserDislikes(ctx context.Context, phone string, activeOnly bool) ([]domain.DislikeRecord, error)
	ListGroupDislikes(ctx context.Context, phones []string) ([]domain.DislikeRecord, error)
	UpdateDislike(ctx context.Context, dislikeID string, update domain.DislikeUpdate) (*domain.DislikeRecord, error)
}

type SessionRepository interface {
	SaveSession(ctx context.Context, session *domain.RecommendationSession) error
	LatestSession(ctx context.Context, eventID string) (*domain.RecommendationSession, error)
}

// GenerationCache keeps idempotency markers so a retried auto-trigger does
// not generate a duplicate session for the same confirmation count.
type GenerationCache interface {
	GenerationMarkerKey(eventID string, confirmedCount int) string
	Exists(ctx context.Context, key string) (bool, error)
	SetMarker(ctx context.Context, key string) error
}

type RecommendationPublisher interface {
	PublishReady(ctx context.Context, msg domain.KafkaMessage) error
}

// PreferenceExtractor turns a free-text prompt into partial structured
// fields. Implementations may be remote and slow; callers bound them with a
// context deadline and fall back to heuristics on error.
type PreferenceExtractor interface {
	Extract(ctx context.Context, freeText string, now time.Time, defaultLocation string) (*domain.ExtractedPreferences, error)
}

type BookingStore interface {
	EnqueueBookingTask(eventID, sessionID string) error
}

var _ EventServiceInterface = (*EventService)(nil)
var _ DislikeServiceInterface = (*DislikeService)(nil)
var _ UserServiceInterface = (*UserService)(nil)
var _ PlannerServiceInterface = (*PlannerService)(nil)
