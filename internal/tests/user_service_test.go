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

func TestUserService_Onboard_DefaultsAlcoholPreference(t *testing.T) {
	repo := mocks.NewUserRepository(t)
	svc := service.NewUserService(repo)

	repo.On("UpsertUser", mock.Anything, mock.MatchedBy(func(u *domain.UserProfile) bool {
		return u.AlcoholPreference == domain.AlcoholNoPreference
	})).Return(nil).Once()

	user := &domain.UserProfile{PhoneNumber: "+31600000001"}
	require.NoError(t, svc.Onboard(context.Background(), user))
	assert.Equal(t, domain.AlcoholNoPreference, user.AlcoholPreference)
}

func TestUserService_Onboard_RepositoryFailure(t *testing.T) {
	repo := mocks.NewUserRepository(t)
	svc := service.NewUserService(repo)

	repo.On("UpsertUser", mock.Anything, mock.Anything).Return(assert.AnError).Once()

	err := svc.Onboard(context.Background(), &domain.UserProfile{PhoneNumber: "+31600000001"})
	assert.ErrorContains(t, err, "failed to save user profile")
}

func TestUserService_Get(t *testing.T) {
	repo := mocks.NewUserRepository(t)
	svc := service.NewUserService(repo)

	stored := &domain.UserProfile{PhoneNumber: "+31600000001", DietaryRestrictions: []string{"halal"}}
	repo.On("GetUser", mock.Anything, "+31600000001").Return(stored, nil).Once()
	repo.On("GetUser", mock.Anything, "+31600000009").Return(nil, nil).Once()

	user, err := svc.Get(context.Background(), "+31600000001")
	require.NoError(t, err)
	assert.Equal(t, stored, user)

	_, err = svc.Get(context.Background(), "+31600000009")
	assert.ErrorIs(t, err, service.ErrUserNotFound)
}

func TestUserService_UpdatePreferences(t *testing.T) {
	repo := mocks.NewUserRepository(t)
	svc := service.NewUserService(repo)

	pref := domain.AlcoholNone
	update := domain.UserPreferencesUpdate{AlcoholPreference: &pref}
	updated := &domain.UserProfile{PhoneNumber: "+31600000001", AlcoholPreference: domain.AlcoholNone}

	repo.On("UpdateUserPreferences", mock.Anything, "+31600000001", update).Return(updated, nil).Once()
	repo.On("UpdateUserPreferences", mock.Anything, "+31600000009", update).Return(nil, nil).Once()

	user, err := svc.UpdatePreferences(context.Background(), "+31600000001", update)
	require.NoError(t, err)
	assert.Equal(t, domain.AlcoholNone, user.AlcoholPreference)

	_, err = svc.UpdatePreferences(context.Background(), "+31600000009", update)
	assert.ErrorIs(t, err, service.ErrUserNotFound)
}
