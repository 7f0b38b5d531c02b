package services

import (
	"context"

	"meeting-insights/internal/app/model"
)

// Sender is satisfied by *notify.Mailer
type Sender interface {
	Send(ctx context.Context, result *model.ExtractionResult) error
}

// EmailObserver counts email attempts
type EmailObserver interface {
	ObserveEmail(err error)
}

type notificationService struct {
	sender   Sender
	observer EmailObserver
}

// NewNotificationService creates a notification service. observer may be nil.
func NewNotificationService(sender Sender, observer EmailObserver) NotificationService {
	return &notificationService{sender: sender, observer: observer}
}

func (s *notificationService) Email(ctx context.Context, result *model.ExtractionResult) error {
	err := s.sender.Send(ctx, result)
	if s.observer != nil {
		s.observer.ObserveEmail(err)
	}
	return err
}
