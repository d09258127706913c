package service

import (
	"context"
	"errors"
	"fmt"

	"groupdine/internal/domain"
)

var ErrUserNotFound = errors.New("user not found")

type UserService struct {
	repository UserRepository
}

func NewUserService(repository UserRepository) *UserService {
	return &UserService{repository: repository}
}

// Onboard saves a user's standing preferences, replacing any earlier profile
// stored under the same phone number.
func (s *UserService) Onboard(ctx context.Context, user *domain.UserProfile) error {
	if user.AlcoholPreference == "" {
		user.AlcoholPreference = domain.AlcoholNoPreference
	}
	if err := s.repository.UpsertUser(ctx, user); err != nil {
		return fmt.Errorf("failed to save user profile: %w", err)
	}
	return nil
}

func (s *UserService) Get(ctx context.Context, phone string) (*domain.UserProfile, error) {
	user, err := s.repository.GetUser(ctx, phone)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}
	return user, nil
}

func (s *UserService) UpdatePreferences(ctx context.Context, phone string, update domain.UserPreferencesUpdate) (*domain.UserProfile, error) {
	updated, err := s.repository.UpdateUserPreferences(ctx, phone, update)
	if err != nil {
		return nil, err
	}
	if updated == nil {
		return nil, ErrUserNotFound
	}
	return updated, nil
}
