package service

import (
	"context"
	"errors"
	"fmt"

	"groupdine/internal/domain"
)

var ErrDislikeNotFound = errors.New("dislike not found")

type DislikeService struct {
	repository DislikeRepository
}

func NewDislikeService(repository DislikeRepository) *DislikeService {
	return &DislikeService{repository: repository}
}

func (s *DislikeService) Add(ctx context.Context, dislike *domain.DislikeRecord) error {
	if dislike.DislikeType == "" {
		dislike.DislikeType = domain.DislikePermanent
	}
	dislike.IsActive = true
	if err := s.repository.InsertDislike(ctx, dislike); err != nil {
		return fmt.Errorf("failed to save dislike: %w", err)
	}
	return nil
}

func (s *DislikeService) ListForUser(ctx context.Context, phone string) ([]domain.DislikeRecord, error) {
	return s.repository.ListUserDislikes(ctx, phone, true)
}

func (s *DislikeService) Update(ctx context.Context, dislikeID string, update domain.DislikeUpdate) (*domain.DislikeRecord, error) {
	updated, err := s.repository.UpdateDislike(ctx, dislikeID, update)
	if err != nil {
		return nil, err
	}
	if updated == nil {
		return nil, ErrDislikeNotFound
	}
	return updated, nil
}

// Deactivate removes a restaurant from the user's blacklist. Deletion is
// logical: the record stays but stops filtering.
func (s *DislikeService) Deactivate(ctx context.Context, dislikeID string) error {
	inactive := false
	updated, err := s.repository.UpdateDislike(ctx, dislikeID, domain.DislikeUpdate{IsActive: &inactive})
	if err != nil {
		return err
	}
	if updated == nil {
		return ErrDislikeNotFound
	}
	return nil
}
