package service

import (
	"context"
	"errors"
	"fmt"
	"log"
	"sync"
	"time"

	"groupdine/internal/domain"
)

var (
	ErrEventNotFound = errors.New("event not found")
	ErrNoSession     = errors.New("no recommendations generated for this event yet")
)

const defaultExtractTimeout = 30 * time.Second

// PlannerService runs the full planning cycle for an event: collect
// preferences, aggregate, filter the pool against the group blacklist, score,
// rank, persist the session and signal downstream consumers.
type PlannerService struct {
	events    EventRepository
	users     UserRepository
	pool      RestaurantPool
	dislikes  DislikeRepository
	sessions  SessionRepository
	cache     GenerationCache
	publisher RecommendationPublisher
	extractor PreferenceExtractor

	modelID        string
	extractTimeout time.Duration

	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

func NewPlannerService(
	events EventRepository,
	users UserRepository,
	pool RestaurantPool,
	dislikes DislikeRepository,
	sessions SessionRepository,
	cache GenerationCache,
	publisher RecommendationPublisher,
	extractor PreferenceExtractor,
	modelID string,
) *PlannerService {
	return &PlannerService{
		events:         events,
		users:          users,
		pool:           pool,
		dislikes:       dislikes,
		sessions:       sessions,
		cache:          cache,
		publisher:      publisher,
		extractor:      extractor,
		modelID:        modelID,
		extractTimeout: defaultExtractTimeout,
		locks:          make(map[string]*sync.Mutex),
	}
}

// SubmitResponse upserts an invitee response and, when the confirmed count
// first meets the event's expected attendee count, marks the event ready and
// generates recommendations. A generation failure on the auto path is logged
// but does not fail the submission itself.
func (s *PlannerService) SubmitResponse(ctx context.Context, response *domain.EventResponse) (bool, error) {
	event, err := s.events.GetEvent(ctx, response.EventID)
	if err != nil {
		return false, fmt.Errorf("failed to load event: %w", err)
	}
	if event == nil {
		return false, ErrEventNotFound
	}

	if err := s.events.UpsertResponse(ctx, response); err != nil {
		return false, fmt.Errorf("failed to save response: %w", err)
	}

	confirmed, err := s.events.ListConfirmed(ctx, event.ID)
	if err != nil {
		return false, fmt.Errorf("failed to count confirmed attendees: %w", err)
	}

	crossed := event.ExpectedAttendeeCount > 0 && len(confirmed) >= event.ExpectedAttendeeCount
	if !crossed {
		return false, nil
	}

	if err := s.events.UpdateEventStatus(ctx, event.ID, domain.EventStatusReadyForBooking); err != nil {
		log.Printf("Failed to update event %s status: %v", event.ID, err)
	}

	if _, err := s.generate(ctx, event, true); err != nil {
		log.Printf("Auto-generation of recommendations for event %s failed: %v", event.ID, err)
	}

	return true, nil
}

// Generate runs a planning cycle on demand.
func (s *PlannerService) Generate(ctx context.Context, eventID string) (*domain.RecommendationSession, error) {
	event, err := s.events.GetEvent(ctx, eventID)
	if err != nil {
		return nil, fmt.Errorf("failed to load event: %w", err)
	}
	if event == nil {
		return nil, ErrEventNotFound
	}
	return s.generate(ctx, event, false)
}

// Latest returns the most recent session for an event.
func (s *PlannerService) Latest(ctx context.Context, eventID string) (*domain.RecommendationSession, error) {
	session, err := s.sessions.LatestSession(ctx, eventID)
	if err != nil {
		return nil, fmt.Errorf("failed to load session: %w", err)
	}
	if session == nil {
		return nil, ErrNoSession
	}
	return session, nil
}

// generate is the single-writer section: for one event, only one
// check-threshold/generate/persist sequence runs at a time.
func (s *PlannerService) generate(ctx context.Context, event *domain.Event, auto bool) (*domain.RecommendationSession, error) {
	lock := s.eventLock(event.ID)
	lock.Lock()
	defer lock.Unlock()

	confirmed, err := s.events.ListConfirmed(ctx, event.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to list confirmed attendees: %w", err)
	}

	var markerKey string
	if auto && s.cache != nil {
		markerKey = s.cache.GenerationMarkerKey(event.ID, len(confirmed))
		if exists, err := s.cache.Exists(ctx, markerKey); err == nil && exists {
			// Retry of an already-completed trigger; return the session it produced.
			return s.sessions.LatestSession(ctx, event.ID)
		}
	}

	prefs := s.collectPreferences(ctx, event, confirmed)
	criteria, err := AggregatePreferences(event, prefs)
	if err != nil {
		return nil, err
	}

	pool, err := s.pool.ListAll(ctx)
	if err != nil {
		// Empty recommendations are a valid result; an unreachable pool is not fatal.
		log.Printf("Restaurant pool unavailable for event %s: %v", event.ID, err)
		pool = nil
	}

	participants := make([]string, 0, len(confirmed)+1)
	participants = append(participants, event.OrganizerPhone)
	for _, r := range confirmed {
		participants = append(participants, r.RespondentPhone)
	}
	dislikes, err := s.dislikes.ListGroupDislikes(ctx, participants)
	if err != nil {
		log.Printf("Dislike lookup failed for event %s: %v", event.ID, err)
		dislikes = nil
	}

	blacklist := NewBlacklist(dislikes)
	candidates, excluded := blacklist.Filter(pool)

	scored := make([]domain.ScoredRestaurant, 0, len(candidates))
	for _, candidate := range candidates {
		score, reasoning := ScoreRestaurant(candidate, criteria)
		scored = append(scored, domain.ScoredRestaurant{
			Restaurant: candidate,
			Score:      score,
			Reasoning:  reasoning,
		})
	}

	session := &domain.RecommendationSession{
		EventID:          event.ID,
		Entries:          RankTop(scored, blacklist, MaxRecommendations),
		Excluded:         excluded,
		Criteria:         *criteria,
		ModelUsed:        s.modelID,
		ConfidenceScore:  0.85,
		ThresholdCrossed: auto,
		GeneratedAt:      time.Now().UTC(),
	}

	if err := s.sessions.SaveSession(ctx, session); err != nil {
		return nil, fmt.Errorf("failed to persist recommendation session: %w", err)
	}

	if markerKey != "" {
		if err := s.cache.SetMarker(ctx, markerKey); err != nil {
			log.Printf("Warning: failed to set generation marker for event %s: %v", event.ID, err)
		}
	}

	// The session is already persisted; a downstream publish failure must not
	// invalidate it.
	if s.publisher != nil {
		msg := domain.KafkaMessage{
			Type:             "recommendations_ready",
			EventID:          event.ID,
			SessionID:        session.ID,
			ThresholdCrossed: auto,
			Recommendations:  len(session.Entries),
			Timestamp:        time.Now(),
		}
		if err := s.publisher.PublishReady(ctx, msg); err != nil {
			log.Printf("Failed to publish recommendations_ready for event %s: %v", event.ID, err)
		}
	}

	log.Printf("Generated %d recommendations for event %s (%d excluded by blacklist)",
		len(session.Entries), event.ID, len(excluded))
	return session, nil
}

// collectPreferences assembles the attendee preference list in submission
// order, the organizer first. Standing profile preferences fill in before the
// prompt extraction output, so an onboarded profile wins over inferred values.
// Free-text prompts go through the extractor; extraction failures degrade to
// the heuristic parser, never to an error.
func (s *PlannerService) collectPreferences(ctx context.Context, event *domain.Event, confirmed []domain.EventResponse) []domain.AttendeePreference {
	prefs := make([]domain.AttendeePreference, 0, len(confirmed)+1)

	organizer := domain.AttendeePreference{AttendeeID: event.OrganizerPhone}
	s.applyProfile(ctx, &organizer)
	for _, response := range confirmed {
		if response.RespondentPhone != event.OrganizerPhone {
			continue
		}
		// The organizer may confirm through the invite link like any guest;
		// their response folds into the organizer entry instead of adding a
		// second one.
		organizer.EventNotes = response.DietaryNotes
		organizer.LocationOverride = response.LocationOverride
		if response.Prompt != nil && *response.Prompt != "" {
			s.extractPrompt(ctx, *response.Prompt, event.Location).Merge(&organizer)
		}
	}
	if event.OrganizerPrompt != "" {
		s.extractPrompt(ctx, event.OrganizerPrompt, event.Location).Merge(&organizer)
	}
	prefs = append(prefs, organizer)

	for _, response := range confirmed {
		if response.RespondentPhone == event.OrganizerPhone {
			continue
		}
		pref := domain.AttendeePreference{
			AttendeeID:       response.RespondentPhone,
			EventNotes:       response.DietaryNotes,
			LocationOverride: response.LocationOverride,
		}
		s.applyProfile(ctx, &pref)
		if response.Prompt != nil && *response.Prompt != "" {
			s.extractPrompt(ctx, *response.Prompt, event.Location).Merge(&pref)
		}
		prefs = append(prefs, pref)
	}
	return prefs
}

// applyProfile copies an attendee's stored dietary restrictions and alcohol
// preference onto the preference entry. Lookup failures are logged and the
// attendee is treated as having no profile.
func (s *PlannerService) applyProfile(ctx context.Context, pref *domain.AttendeePreference) {
	if s.users == nil {
		return
	}
	profile, err := s.users.GetUser(ctx, pref.AttendeeID)
	if err != nil {
		log.Printf("Failed to load user profile for %s: %v", pref.AttendeeID, err)
		return
	}
	if profile == nil {
		return
	}
	if len(pref.DietaryRestrictions) == 0 {
		pref.DietaryRestrictions = profile.DietaryRestrictions
	}
	if pref.AlcoholPreference == "" {
		pref.AlcoholPreference = profile.AlcoholPreference
	}
}

func (s *PlannerService) extractPrompt(ctx context.Context, text, defaultLocation string) *domain.ExtractedPreferences {
	now := time.Now()
	if s.extractor != nil {
		extractCtx, cancel := context.WithTimeout(ctx, s.extractTimeout)
		defer cancel()
		if extracted, err := s.extractor.Extract(extractCtx, text, now, defaultLocation); err == nil && extracted != nil {
			return extracted
		} else if err != nil {
			log.Printf("Preference extraction failed, falling back to heuristics: %v", err)
		}
	}
	return HeuristicExtract(text)
}

// eventLock returns the per-event generation mutex. Entries are kept for the
// process lifetime, so the map grows with the number of distinct events seen.
func (s *PlannerService) eventLock(eventID string) *sync.Mutex {
	s.mu.Lock()
	defer s.mu.Unlock()
	lock, ok := s.locks[eventID]
	if !ok {
		lock = &sync.Mutex{}
		s.locks[eventID] = lock
	}
	return lock
}
