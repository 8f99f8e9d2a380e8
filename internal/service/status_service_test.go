package service

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hellodg123/ShipReward.in/internal/domain"
)

type memoryStatusRepo struct {
	mu     sync.Mutex
	checks []domain.StatusCheck
}

func (r *memoryStatusRepo) Insert(_ context.Context, check *domain.StatusCheck) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.checks = append(r.checks, *check)
	return nil
}

func (r *memoryStatusRepo) List(_ context.Context) ([]domain.StatusCheck, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]domain.StatusCheck{}, r.checks...), nil
}

func TestStatusService_CreateAndList(t *testing.T) {
	svc := NewStatusService(&memoryStatusRepo{})
	ctx := context.Background()

	created, err := svc.Create(ctx, "probe-1")
	require.NoError(t, err)
	assert.NotEmpty(t, created.ID)
	assert.Equal(t, "probe-1", created.ClientName)
	assert.False(t, created.Timestamp.IsZero())

	_, err = svc.Create(ctx, "probe-2")
	require.NoError(t, err)

	checks, err := svc.List(ctx)
	require.NoError(t, err)
	require.Len(t, checks, 2)
	assert.Equal(t, created.ID, checks[0].ID)
}
