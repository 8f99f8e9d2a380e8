package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/hellodg123/ShipReward.in/internal/domain"
	"github.com/hellodg123/ShipReward.in/internal/repository"
)

// StatusService records and lists client status checks.
type StatusService struct {
	checks repository.StatusCheckRepository
}

// NewStatusService builds the service.
func NewStatusService(checks repository.StatusCheckRepository) *StatusService {
	return &StatusService{checks: checks}
}

// Create appends a status check with a server-generated id and timestamp.
func (s *StatusService) Create(ctx context.Context, clientName string) (*domain.StatusCheck, error) {
	check := &domain.StatusCheck{
		ID:         uuid.NewString(),
		ClientName: clientName,
		Timestamp:  time.Now().UTC(),
	}
	if err := s.checks.Insert(ctx, check); err != nil {
		return nil, err
	}
	return check, nil
}

// List returns recorded status checks.
func (s *StatusService) List(ctx context.Context) ([]domain.StatusCheck, error) {
	return s.checks.List(ctx)
}
