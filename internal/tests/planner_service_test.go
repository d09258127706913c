package tests

import (
	"context"
	"testing"

	"groupdine/internal/domain"
	"groupdine/internal/mocks"
	"groupdine/internal/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type plannerFixture struct {
	events    *mocks.EventRepository
	users     *mocks.UserRepository
	pool      *mocks.RestaurantPool
	dislikes  *mocks.DislikeRepository
	sessions  *mocks.SessionRepository
	cache     *mocks.GenerationCache
	publisher *mocks.RecommendationPublisher
	svc       service.PlannerServiceInterface
}

func newPlannerFixture(t *testing.T) *plannerFixture {
	f := &plannerFixture{
		events:    mocks.NewEventRepository(t),
		users:     mocks.NewUserRepository(t),
		pool:      mocks.NewRestaurantPool(t),
		dislikes:  mocks.NewDislikeRepository(t),
		sessions:  mocks.NewSessionRepository(t),
		cache:     mocks.NewGenerationCache(t),
		publisher: mocks.NewRecommendationPublisher(t),
	}
	f.svc = service.NewPlannerService(
		f.events, f.users, f.pool, f.dislikes, f.sessions, f.cache, f.publisher, nil, "test-model")
	return f
}

// noProfiles answers every profile lookup with "not onboarded".
func (f *plannerFixture) noProfiles(ctx context.Context) {
	f.users.On("GetUser", ctx, mock.AnythingOfType("string")).Return(nil, nil)
}

func plannerEvent() *domain.Event {
	return &domain.Event{
		ID:                    "ev-1",
		OrganizerPhone:        "+31600000001",
		Location:              "Amsterdam",
		ExpectedAttendeeCount: 2,
		Status:                domain.EventStatusCreated,
	}
}

func confirmedResponses() []domain.EventResponse {
	return []domain.EventResponse{
		{EventID: "ev-1", RespondentPhone: "+31600000002", AttendanceConfirmed: true},
		{EventID: "ev-1", RespondentPhone: "+31600000003", AttendanceConfirmed: true},
	}
}

func TestPlannerService_Generate_HappyPath(t *testing.T) {
	f := newPlannerFixture(t)
	ctx := context.Background()

	pool := []domain.Restaurant{
		{ID: "r-1", Name: "Trattoria Roma", Address: domain.Address{City: "Amsterdam"},
			Cuisines: []string{"Italian"}, PriceLevel: "$$", Rating: 4.5},
		{ID: "r-2", Name: "Sakura House", Address: domain.Address{City: "Amsterdam"},
			Cuisines: []string{"Japanese"}, PriceLevel: "$$$", Rating: 4.0},
	}

	f.events.On("GetEvent", ctx, "ev-1").Return(plannerEvent(), nil).Once()
	f.events.On("ListConfirmed", ctx, "ev-1").Return(confirmedResponses(), nil).Once()
	f.noProfiles(ctx)
	f.pool.On("ListAll", ctx).Return(pool, nil).Once()
	f.dislikes.On("ListGroupDislikes", ctx, []string{"+31600000001", "+31600000002", "+31600000003"}).
		Return([]domain.DislikeRecord{
			{UserPhone: "+31600000002", RestaurantID: "r-2", RestaurantName: "Sakura House",
				Reason: "allergy_concern", IsActive: true},
		}, nil).Once()
	f.sessions.On("SaveSession", ctx, mock.Anything).Return(nil).Once()
	f.publisher.On("PublishReady", ctx, mock.MatchedBy(func(msg domain.KafkaMessage) bool {
		return msg.Type == "recommendations_ready" && msg.EventID == "ev-1" && msg.Recommendations == 1
	})).Return(nil).Once()

	session, err := f.svc.Generate(ctx, "ev-1")
	require.NoError(t, err)

	require.Len(t, session.Entries, 1)
	assert.Equal(t, "r-1", session.Entries[0].RestaurantID)
	assert.Equal(t, 1, session.Entries[0].Rank)

	require.Len(t, session.Excluded, 1)
	assert.Equal(t, "r-2", session.Excluded[0].RestaurantID)
	assert.Equal(t, []string{"allergy_concern"}, session.Excluded[0].Reasons)

	assert.Equal(t, "test-model", session.ModelUsed)
	assert.False(t, session.ThresholdCrossed)
	assert.Equal(t, "Amsterdam", session.Criteria.Location)
}

func TestPlannerService_Generate_EventNotFound(t *testing.T) {
	f := newPlannerFixture(t)
	ctx := context.Background()

	f.events.On("GetEvent", ctx, "missing").Return(nil, nil).Once()

	_, err := f.svc.Generate(ctx, "missing")
	assert.ErrorIs(t, err, service.ErrEventNotFound)
}

func TestPlannerService_Generate_EmptyPoolStillSucceeds(t *testing.T) {
	f := newPlannerFixture(t)
	ctx := context.Background()

	f.events.On("GetEvent", ctx, "ev-1").Return(plannerEvent(), nil).Once()
	f.events.On("ListConfirmed", ctx, "ev-1").Return(nil, nil).Once()
	f.noProfiles(ctx)
	f.pool.On("ListAll", ctx).Return(nil, assert.AnError).Once()
	f.dislikes.On("ListGroupDislikes", ctx, []string{"+31600000001"}).Return(nil, assert.AnError).Once()
	f.sessions.On("SaveSession", ctx, mock.Anything).Return(nil).Once()
	f.publisher.On("PublishReady", ctx, mock.Anything).Return(nil).Once()

	session, err := f.svc.Generate(ctx, "ev-1")
	require.NoError(t, err)
	assert.Empty(t, session.Entries)
	assert.Empty(t, session.Excluded)
}

func TestPlannerService_Generate_PersistenceFailurePropagates(t *testing.T) {
	f := newPlannerFixture(t)
	ctx := context.Background()

	f.events.On("GetEvent", ctx, "ev-1").Return(plannerEvent(), nil).Once()
	f.events.On("ListConfirmed", ctx, "ev-1").Return(confirmedResponses(), nil).Once()
	f.noProfiles(ctx)
	f.pool.On("ListAll", ctx).Return(nil, nil).Once()
	f.dislikes.On("ListGroupDislikes", ctx, mock.Anything).Return(nil, nil).Once()
	f.sessions.On("SaveSession", ctx, mock.Anything).Return(assert.AnError).Once()

	_, err := f.svc.Generate(ctx, "ev-1")
	assert.ErrorContains(t, err, "failed to persist recommendation session")
}

func TestPlannerService_Generate_PublishFailureDoesNotFail(t *testing.T) {
	f := newPlannerFixture(t)
	ctx := context.Background()

	f.events.On("GetEvent", ctx, "ev-1").Return(plannerEvent(), nil).Once()
	f.events.On("ListConfirmed", ctx, "ev-1").Return(confirmedResponses(), nil).Once()
	f.noProfiles(ctx)
	f.pool.On("ListAll", ctx).Return(nil, nil).Once()
	f.dislikes.On("ListGroupDislikes", ctx, mock.Anything).Return(nil, nil).Once()
	f.sessions.On("SaveSession", ctx, mock.Anything).Return(nil).Once()
	f.publisher.On("PublishReady", ctx, mock.Anything).Return(assert.AnError).Once()

	_, err := f.svc.Generate(ctx, "ev-1")
	assert.NoError(t, err)
}

func TestPlannerService_Generate_OrganizerResponseFoldsIntoCriteria(t *testing.T) {
	f := newPlannerFixture(t)
	ctx := context.Background()

	// The organizer confirmed through the invite link; their prompt and
	// location override must reach the aggregated criteria.
	confirmed := []domain.EventResponse{
		{EventID: "ev-1", RespondentPhone: "+31600000001", AttendanceConfirmed: true,
			Prompt: strPtr("vegetarian options please"), LocationOverride: strPtr("Utrecht")},
		{EventID: "ev-1", RespondentPhone: "+31600000002", AttendanceConfirmed: true},
	}

	f.events.On("GetEvent", ctx, "ev-1").Return(plannerEvent(), nil).Once()
	f.events.On("ListConfirmed", ctx, "ev-1").Return(confirmed, nil).Once()
	f.noProfiles(ctx)
	f.pool.On("ListAll", ctx).Return(nil, nil).Once()
	f.dislikes.On("ListGroupDislikes", ctx, mock.Anything).Return(nil, nil).Once()
	f.sessions.On("SaveSession", ctx, mock.Anything).Return(nil).Once()
	f.publisher.On("PublishReady", ctx, mock.Anything).Return(nil).Once()

	session, err := f.svc.Generate(ctx, "ev-1")
	require.NoError(t, err)
	assert.Contains(t, session.Criteria.DietaryRestrictions, "vegetarian")
	assert.Equal(t, "Utrecht", session.Criteria.Location)
}

func TestPlannerService_Generate_ProfilePreferencesApplied(t *testing.T) {
	f := newPlannerFixture(t)
	ctx := context.Background()

	organizerProfile := &domain.UserProfile{
		PhoneNumber:         "+31600000001",
		DietaryRestrictions: []string{"halal"},
		AlcoholPreference:   domain.AlcoholRequired,
	}

	f.events.On("GetEvent", ctx, "ev-1").Return(plannerEvent(), nil).Once()
	f.events.On("ListConfirmed", ctx, "ev-1").Return(confirmedResponses(), nil).Once()
	f.users.On("GetUser", ctx, "+31600000001").Return(organizerProfile, nil).Once()
	f.users.On("GetUser", ctx, "+31600000002").Return(nil, nil).Once()
	// A failing lookup degrades that attendee to an empty profile.
	f.users.On("GetUser", ctx, "+31600000003").Return(nil, assert.AnError).Once()
	f.pool.On("ListAll", ctx).Return(nil, nil).Once()
	f.dislikes.On("ListGroupDislikes", ctx, mock.Anything).Return(nil, nil).Once()
	f.sessions.On("SaveSession", ctx, mock.Anything).Return(nil).Once()
	f.publisher.On("PublishReady", ctx, mock.Anything).Return(nil).Once()

	session, err := f.svc.Generate(ctx, "ev-1")
	require.NoError(t, err)
	assert.Contains(t, session.Criteria.DietaryRestrictions, "halal")
	assert.True(t, session.Criteria.AlcoholRequired)
}

func TestPlannerService_SubmitResponse_BelowThreshold(t *testing.T) {
	f := newPlannerFixture(t)
	ctx := context.Background()

	response := &domain.EventResponse{
		EventID: "ev-1", RespondentPhone: "+31600000002", AttendanceConfirmed: true,
	}

	f.events.On("GetEvent", ctx, "ev-1").Return(plannerEvent(), nil).Once()
	f.events.On("UpsertResponse", ctx, response).Return(nil).Once()
	f.events.On("ListConfirmed", ctx, "ev-1").Return(confirmedResponses()[:1], nil).Once()

	crossed, err := f.svc.SubmitResponse(ctx, response)
	require.NoError(t, err)
	assert.False(t, crossed)
}

func TestPlannerService_SubmitResponse_ThresholdCrossingGenerates(t *testing.T) {
	f := newPlannerFixture(t)
	ctx := context.Background()

	response := &domain.EventResponse{
		EventID: "ev-1", RespondentPhone: "+31600000003", AttendanceConfirmed: true,
	}

	f.events.On("GetEvent", ctx, "ev-1").Return(plannerEvent(), nil).Once()
	f.events.On("UpsertResponse", ctx, response).Return(nil).Once()
	// Counted once for the threshold check, once inside generation.
	f.events.On("ListConfirmed", ctx, "ev-1").Return(confirmedResponses(), nil).Twice()
	f.events.On("UpdateEventStatus", ctx, "ev-1", domain.EventStatusReadyForBooking).Return(nil).Once()

	f.cache.On("GenerationMarkerKey", "ev-1", 2).Return("recs:ev-1:2").Once()
	f.cache.On("Exists", ctx, "recs:ev-1:2").Return(false, nil).Once()
	f.cache.On("SetMarker", ctx, "recs:ev-1:2").Return(nil).Once()

	f.noProfiles(ctx)
	f.pool.On("ListAll", ctx).Return(nil, nil).Once()
	f.dislikes.On("ListGroupDislikes", ctx, mock.Anything).Return(nil, nil).Once()
	f.sessions.On("SaveSession", ctx, mock.MatchedBy(func(s *domain.RecommendationSession) bool {
		return s.ThresholdCrossed && s.EventID == "ev-1"
	})).Return(nil).Once()
	f.publisher.On("PublishReady", ctx, mock.MatchedBy(func(msg domain.KafkaMessage) bool {
		return msg.ThresholdCrossed
	})).Return(nil).Once()

	crossed, err := f.svc.SubmitResponse(ctx, response)
	require.NoError(t, err)
	assert.True(t, crossed)
}

func TestPlannerService_SubmitResponse_RetrySkipsDuplicateGeneration(t *testing.T) {
	f := newPlannerFixture(t)
	ctx := context.Background()

	response := &domain.EventResponse{
		EventID: "ev-1", RespondentPhone: "+31600000003", AttendanceConfirmed: true,
	}
	existing := &domain.RecommendationSession{ID: "sess-1", EventID: "ev-1"}

	f.events.On("GetEvent", ctx, "ev-1").Return(plannerEvent(), nil).Once()
	f.events.On("UpsertResponse", ctx, response).Return(nil).Once()
	f.events.On("ListConfirmed", ctx, "ev-1").Return(confirmedResponses(), nil).Twice()
	f.events.On("UpdateEventStatus", ctx, "ev-1", domain.EventStatusReadyForBooking).Return(nil).Once()

	f.cache.On("GenerationMarkerKey", "ev-1", 2).Return("recs:ev-1:2").Once()
	f.cache.On("Exists", ctx, "recs:ev-1:2").Return(true, nil).Once()
	f.sessions.On("LatestSession", ctx, "ev-1").Return(existing, nil).Once()

	crossed, err := f.svc.SubmitResponse(ctx, response)
	require.NoError(t, err)
	assert.True(t, crossed)
	f.sessions.AssertNotCalled(t, "SaveSession", mock.Anything, mock.Anything)
}

func TestPlannerService_SubmitResponse_UnknownEvent(t *testing.T) {
	f := newPlannerFixture(t)
	ctx := context.Background()

	f.events.On("GetEvent", ctx, "nope").Return(nil, nil).Once()

	_, err := f.svc.SubmitResponse(ctx, &domain.EventResponse{EventID: "nope", RespondentPhone: "+31"})
	assert.ErrorIs(t, err, service.ErrEventNotFound)
}

func TestPlannerService_Latest(t *testing.T) {
	f := newPlannerFixture(t)
	ctx := context.Background()

	f.sessions.On("LatestSession", ctx, "ev-1").Return(nil, nil).Once()
	_, err := f.svc.Latest(ctx, "ev-1")
	assert.ErrorIs(t, err, service.ErrNoSession)

	existing := &domain.RecommendationSession{ID: "sess-1", EventID: "ev-1"}
	f.sessions.On("LatestSession", ctx, "ev-1").Return(existing, nil).Once()
	session, err := f.svc.Latest(ctx, "ev-1")
	require.NoError(t, err)
	assert.Equal(t, existing, session)
}
