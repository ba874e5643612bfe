package application

import (
	"context"
	"testing"

	"github.com/davarch/coolify-badge/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestScheduler_ReportsOnlyTransitions(t *testing.T) {
	src := &domain.SequenceSource{Statuses: []domain.DeploymentStatus{
		domain.StatusQueued, domain.StatusQueued, domain.StatusInProgress, domain.StatusFinished, domain.StatusFinished,
	}}
	uc := NewBadgeUseCase(zap.NewNop(), src, &domain.MockRenderer{})

	var got []Transition
	s := NewScheduler(zap.NewNop(), uc, []string{"app"}, 0, func(tr Transition) { got = append(got, tr) })

	for i := 0; i < 5; i++ {
		s.tick(context.Background())
	}

	require.Len(t, got, 3)
	assert.Equal(t, "", got[0].From)
	assert.Equal(t, "queued", got[0].To)
	assert.Equal(t, "queued", got[1].From)
	assert.Equal(t, "in_progress", got[1].To)
	assert.Equal(t, "finished", got[2].To)
	assert.Equal(t, 5, src.Called)
}

func TestScheduler_StopsOnCancelledContext(t *testing.T) {
	src := &domain.MockSource{Deployment: domain.Deployment{Status: domain.StatusFinished}}
	uc := NewBadgeUseCase(zap.NewNop(), src, &domain.MockRenderer{})
	s := NewScheduler(zap.NewNop(), uc, []string{"a", "b"}, 0, nil)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	s.tick(ctx)

	assert.Equal(t, 0, src.Called)
}
