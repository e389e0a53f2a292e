package progressionservice

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"github.com/streetwars/economy/internal/domain"
	"github.com/streetwars/economy/internal/notify"
	"github.com/streetwars/economy/internal/pg"
	"github.com/streetwars/economy/internal/settings"
)

//go:generate mockgen -source=progressionservice.go -destination=mock_progressionservice.go -package=progressionservice

type AccountRepo interface {
	GetForUpdate(ctx context.Context, id int64) (*domain.Account, error)
	UpdateProgress(ctx context.Context, id int64, exp int64, level, strength, agility, defense int) error
	CreditCash(ctx context.Context, id int64, amount float64) (float64, error)
	AdjustReputation(ctx context.Context, id int64, delta int) (int, error)
}

type SettingsProvider interface {
	Get(ctx context.Context) (*settings.Settings, error)
}

type Service struct {
	accountRepo AccountRepo
	config      SettingsProvider
	txManager   pg.TXManager
	notifier    notify.Notifier
}

func New(accountRepo AccountRepo, config SettingsProvider, txManager pg.TXManager, notifier notify.Notifier) *Service {
	return &Service{
		accountRepo: accountRepo,
		config:      config,
		txManager:   txManager,
		notifier:    notifier,
	}
}

// GrantExperience adds experience and runs the level-up cascade: while the
// level threshold is crossed, the level rises; each crossed level pays the
// configured cash/reputation reward and bumps the three combat stats.
// Amounts of zero or less are a no-op.
func (s *Service) GrantExperience(ctx context.Context, accountID int64, amount int64) error {
	if amount <= 0 {
		return nil
	}

	cfg, err := s.config.Get(ctx)
	if err != nil {
		return err
	}

	var crossed []int
	err = s.txManager.Begin(ctx, func(ctx context.Context) error {
		acc, err := s.accountRepo.GetForUpdate(ctx, accountID)
		if err != nil {
			return err
		}
		if acc == nil {
			return fmt.Errorf("account %d: %w", accountID, domain.ErrNotFound)
		}

		exp := acc.Exp + amount
		level := acc.Level
		for exp >= int64(level*cfg.ExpMultiplier) {
			exp -= int64(level * cfg.ExpMultiplier)
			level++
		}
		gained := level - acc.Level

		strength := acc.Strength + cfg.StatPerLevel*gained
		agility := acc.Agility + cfg.StatPerLevel*gained
		defense := acc.Defense + cfg.StatPerLevel*gained

		if err := s.accountRepo.UpdateProgress(ctx, accountID, exp, level, strength, agility, defense); err != nil {
			return err
		}

		for l := acc.Level + 1; l <= level; l++ {
			if _, err := s.accountRepo.CreditCash(ctx, accountID, cfg.LevelRewardCash); err != nil {
				return err
			}
			if _, err := s.accountRepo.AdjustReputation(ctx, accountID, cfg.LevelRewardReputation); err != nil {
				return err
			}
			crossed = append(crossed, l)
		}
		return nil
	})
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return fmt.Errorf("account %d: %w", accountID, domain.ErrNotFound)
		}
		zap.L().Error("failed to grant experience", zap.Error(err), zap.Int64("accountID", accountID))
		return err
	}

	for _, l := range crossed {
		s.notifier.NotifyAccount(ctx, accountID,
			fmt.Sprintf("Level up! You are now level %d (+$%.2f, +%d reputation)", l, cfg.LevelRewardCash, cfg.LevelRewardReputation))
	}
	return nil
}
