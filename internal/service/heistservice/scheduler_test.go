package heistservice

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"

	"github.com/streetwars/economy/internal/domain"
	"github.com/streetwars/economy/internal/settings"
)

// capturePool hands each deferred transition to the test instead of
// running it.
type capturePool struct {
	tasks chan Task
}

func (p *capturePool) AddTask(ctx context.Context, task Task) error {
	select {
	case p.tasks <- task:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (p *capturePool) Close() {}

// The join-deadline timer must keep ticking after the request that spawned
// the heist has returned and its context is canceled.
func TestSpawnTimerOutlivesTheRequestContext(t *testing.T) {
	service, heistRepo, _, _, config, notifier := NewMock(t)
	pool := &capturePool{tasks: make(chan Task, 1)}
	service.pool = pool

	cfg := settings.Default()
	cfg.HeistJoinWindow = 50 * time.Millisecond
	config.EXPECT().Get(gomock.Any()).Return(&cfg, nil)
	heistRepo.EXPECT().GetActiveByRoom(gomock.Any(), int64(-100)).Return(nil, nil)
	heistRepo.EXPECT().RandomEvent(gomock.Any()).Return(&domain.HeistEvent{
		ID: 1, Title: "Bank vault", Keyword: "in", PotMin: 100, PotMax: 100,
	}, nil)
	heistRepo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, h *domain.Heist) (*domain.Heist, error) {
			h.ID = 7
			h.Phase = domain.PhaseJoining
			return h, nil
		},
	)
	notifier.EXPECT().NotifyRoom(gomock.Any(), int64(-100), gomock.Any())

	reqCtx, cancel := context.WithCancel(context.Background())
	_, err := service.Spawn(reqCtx, -100)
	assert.NoError(t, err)
	cancel()

	select {
	case <-pool.tasks:
	case <-time.After(time.Second):
		t.Fatal("join deadline transition never reached the worker pool")
	}
}

func TestScheduleStandsDownAfterShutdown(t *testing.T) {
	service, _, _, _, _, _ := NewMock(t)
	pool := &capturePool{tasks: make(chan Task, 1)}
	service.pool = pool

	ctx, cancel := context.WithCancel(context.Background())
	service.schedCtx = ctx
	cancel()

	service.schedule(1, domain.PhaseJoining, time.Now().Add(-time.Second))

	select {
	case <-pool.tasks:
		t.Fatal("transition fired after shutdown")
	case <-time.After(100 * time.Millisecond):
	}
	assert.Eventually(t, func() bool {
		_, armed := service.pending.Load("1/joining")
		return !armed
	}, time.Second, 10*time.Millisecond, "abandoned timer should release its pending key")
}

func TestStartRearmsUnfinishedHeists(t *testing.T) {
	service, heistRepo, _, _, _, _ := NewMock(t)
	pool := &capturePool{tasks: make(chan Task, 1)}
	service.pool = pool

	h := splittingHeist(3)
	heistRepo.EXPECT().ListUnfinished(gomock.Any()).Return([]domain.Heist{*h}, nil)

	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)
	service.Start(ctx)

	select {
	case <-pool.tasks:
	case <-time.After(time.Second):
		t.Fatal("split deadline transition was not re-armed from the store")
	}
}
