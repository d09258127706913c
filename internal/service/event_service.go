package service

import (
	"context"
	"fmt"

	"groupdine/internal/domain"
)

type EventService struct {
	repository EventRepository
	qr         InviteQRGenerator
}

func NewEventService(repository EventRepository, qr InviteQRGenerator) *EventService {
	return &EventService{repository: repository, qr: qr}
}

func (s *EventService) Create(ctx context.Context, event *domain.Event) error {
	event.Status = domain.EventStatusCreated
	if err := s.repository.InsertEvent(ctx, event); err != nil {
		return fmt.Errorf("failed to create event: %w", err)
	}
	return nil
}

func (s *EventService) Get(ctx context.Context, eventID string) (*domain.Event, error) {
	event, err := s.repository.GetEvent(ctx, eventID)
	if err != nil {
		return nil, fmt.Errorf("failed to load event: %w", err)
	}
	if event == nil {
		return nil, ErrEventNotFound
	}
	return event, nil
}

// InviteQR renders the response link for an event as a PNG QR code.
func (s *EventService) InviteQR(eventID string) ([]byte, error) {
	return s.qr.Generate(eventID)
}
