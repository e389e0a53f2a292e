package heistservice

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/streetwars/economy/internal/domain"
)

const rescanInterval = 30 * time.Second

// Start launches the deadline scheduler: pending transitions of unfinished
// heists are re-armed from the store (so deadlines survive a restart), and
// a periodic rescan catches any timer the process lost along the way. The
// scheduler's context also backs every armed timer, so timers live until
// shutdown, not until the request that armed them returns.
func (s *Service) Start(ctx context.Context) {
	s.schedCtx = ctx
	zap.L().Info("heist scheduler started")
	go s.run(ctx)
}

func (s *Service) run(ctx context.Context) {
	s.rearm(ctx)

	ticker := time.NewTicker(rescanInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			zap.L().Info("context canceled, stopping heist scheduler")
			s.pool.Close()
			return
		case <-ticker.C:
			s.rearm(ctx)
		}
	}
}

func (s *Service) rearm(ctx context.Context) {
	heists, err := s.heistRepo.ListUnfinished(ctx)
	if err != nil {
		zap.L().Error("failed to rescan pending heists", zap.Error(err))
		return
	}

	var g errgroup.Group
	for _, heist := range heists {
		heist := heist
		g.Go(func() error {
			switch heist.Phase {
			case domain.PhaseJoining:
				s.schedule(heist.ID, domain.PhaseJoining, heist.JoinDeadline)
			case domain.PhaseSplitting:
				s.schedule(heist.ID, domain.PhaseSplitting, heist.SplitDeadline)
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		zap.L().Error("error re-arming heist deadlines", zap.Error(err))
	}
}

// schedule arms one deferred transition for (heist, phase). The timer runs
// on the scheduler's context rather than the caller's, which is typically a
// request context that dies long before the deadline. Duplicate arms for
// the same transition collapse into the first one; the transition itself
// re-checks the phase, so a stale timer is harmless.
func (s *Service) schedule(heistID int, phase domain.HeistPhase, deadline time.Time) {
	key := fmt.Sprintf("%d/%s", heistID, phase)
	if _, loaded := s.pending.LoadOrStore(key, struct{}{}); loaded {
		return
	}

	ctx := s.schedCtx
	go func() {
		if delay := time.Until(deadline); delay > 0 {
			select {
			case <-ctx.Done():
				s.pending.Delete(key)
				return
			case <-time.After(delay):
			}
		}
		if ctx.Err() != nil {
			s.pending.Delete(key)
			return
		}

		err := s.pool.AddTask(ctx, func() error {
			defer s.pending.Delete(key)
			switch phase {
			case domain.PhaseJoining:
				return s.HandleJoinDeadline(ctx, heistID)
			case domain.PhaseSplitting:
				return s.HandleSplitDeadline(ctx, heistID)
			}
			return nil
		})
		if err != nil {
			s.pending.Delete(key)
		}
	}()
}
