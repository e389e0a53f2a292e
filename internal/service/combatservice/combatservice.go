package combatservice

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/streetwars/economy/internal/domain"
	"github.com/streetwars/economy/internal/pg"
	"github.com/streetwars/economy/internal/settings"
	"github.com/streetwars/economy/pkg/money"
	"github.com/streetwars/economy/pkg/rng"
)

//go:generate mockgen -source=combatservice.go -destination=mock_combatservice.go -package=combatservice

const actionTheft = "theft"

type AccountRepo interface {
	GetForUpdate(ctx context.Context, id int64) (*domain.Account, error)
	CreditCash(ctx context.Context, id int64, amount float64) (float64, error)
	DebitCashStrict(ctx context.Context, id int64, amount float64) (float64, error)
	CreditCrypto(ctx context.Context, id int64, amount float64) (float64, error)
	IncrementCounter(ctx context.Context, id int64, kind domain.CounterKind, delta int) error
	SetReferralRewardGiven(ctx context.Context, id int64) error
	GetCooldown(ctx context.Context, id int64, action string) (*time.Time, error)
	SetCooldown(ctx context.Context, id int64, action string, at time.Time) error
}

type Progression interface {
	GrantExperience(ctx context.Context, accountID int64, amount int64) error
}

type SettingsProvider interface {
	Get(ctx context.Context) (*settings.Settings, error)
}

type Notifier interface {
	NotifyAccount(ctx context.Context, accountID int64, text string)
}

type Result string

const (
	ResultStolen   Result = "stolen"
	ResultDefended Result = "defended"
	ResultFailed   Result = "failed"
)

type Outcome struct {
	Result  Result
	Amount  float64
	Penalty float64
}

// Service resolves attacker-vs-victim cash theft attempts.
type Service struct {
	accountRepo AccountRepo
	progression Progression
	config      SettingsProvider
	txManager   pg.TXManager
	notifier    Notifier
	rand        rng.Rand
	now         func() time.Time
}

func New(accountRepo AccountRepo, progression Progression, config SettingsProvider, txManager pg.TXManager, notifier Notifier, rand rng.Rand) *Service {
	return &Service{
		accountRepo: accountRepo,
		progression: progression,
		config:      config,
		txManager:   txManager,
		notifier:    notifier,
		rand:        rand,
		now:         time.Now,
	}
}

// CooldownRemaining reports how long the attacker must still wait before
// the next theft attempt. The caller gates on this; the resolver itself
// only stamps the attempt time.
func (s *Service) CooldownRemaining(ctx context.Context, accountID int64) (time.Duration, error) {
	cfg, err := s.config.Get(ctx)
	if err != nil {
		return 0, err
	}
	last, err := s.accountRepo.GetCooldown(ctx, accountID, actionTheft)
	if err != nil {
		return 0, err
	}
	if last == nil {
		return 0, nil
	}
	remaining := cfg.TheftCooldown - s.now().Sub(*last)
	if remaining < 0 {
		remaining = 0
	}
	return remaining, nil
}

// AttemptTheft runs one theft attempt. The upfront cost must be fully
// covered or the attempt aborts with InsufficientFunds before any state
// changes; every resolved attempt stamps the attacker's cooldown at the
// end, whatever the outcome.
func (s *Service) AttemptTheft(ctx context.Context, attackerID, victimID int64, upfrontCost float64) (*Outcome, error) {
	if attackerID == victimID {
		return nil, fmt.Errorf("cannot steal from yourself: %w", domain.ErrValidation)
	}
	if upfrontCost < 0 {
		return nil, fmt.Errorf("upfront cost cannot be negative: %w", domain.ErrValidation)
	}

	cfg, err := s.config.Get(ctx)
	if err != nil {
		return nil, err
	}

	var outcome Outcome
	err = s.txManager.Begin(ctx, func(ctx context.Context) error {
		attacker, victim, err := s.lockBoth(ctx, attackerID, victimID)
		if err != nil {
			return err
		}

		if attacker.Cash < upfrontCost {
			return fmt.Errorf("upfront cost %.2f exceeds balance: %w", upfrontCost, domain.ErrInsufficientFunds)
		}
		cashLeft := attacker.Cash
		if upfrontCost > 0 {
			if cashLeft, err = s.accountRepo.DebitCashStrict(ctx, attackerID, upfrontCost); err != nil {
				return err
			}
		}

		if err := s.accountRepo.IncrementCounter(ctx, attackerID, domain.CounterTheftAttempts, 1); err != nil {
			return err
		}

		defenseChance := cfg.TheftDefenseBase + scaledBonus(victim.Reputation, cfg.TheftDefenseRepDiv, cfg.TheftDefenseRepCap)
		if rng.Roll(s.rand) <= defenseChance {
			return s.resolveDefended(ctx, cfg, attackerID, victimID, cashLeft, &outcome)
		}

		successChance := cfg.TheftSuccessBase + scaledBonus(attacker.Reputation, cfg.TheftSuccessRepDiv, cfg.TheftSuccessRepCap)
		if rng.Roll(s.rand) <= successChance && victim.Cash > 0 {
			steal := money.Round2(float64(rng.Between(s.rand, cfg.TheftStealMin, cfg.TheftStealMax)))
			if victim.Cash < steal {
				steal = money.Round2(victim.Cash)
			}
			if steal > 0 {
				return s.resolveStolen(ctx, cfg, attacker, victimID, steal, &outcome)
			}
		}

		return s.resolveFailed(ctx, cfg, attackerID, &outcome)
	})
	if err != nil {
		return nil, err
	}

	switch outcome.Result {
	case ResultStolen:
		s.notifier.NotifyAccount(ctx, victimID, fmt.Sprintf("You were robbed of $%.2f!", outcome.Amount))
	case ResultDefended:
		s.notifier.NotifyAccount(ctx, victimID, fmt.Sprintf("You fought off a thief and collected $%.2f.", outcome.Penalty))
	}
	return &outcome, nil
}

// lockBoth locks the attacker and the victim in ascending id order so two
// opposed attempts cannot deadlock.
func (s *Service) lockBoth(ctx context.Context, attackerID, victimID int64) (attacker, victim *domain.Account, err error) {
	first, second := attackerID, victimID
	if second < first {
		first, second = second, first
	}
	a, err := s.accountRepo.GetForUpdate(ctx, first)
	if err != nil {
		return nil, nil, err
	}
	b, err := s.accountRepo.GetForUpdate(ctx, second)
	if err != nil {
		return nil, nil, err
	}
	if a == nil || b == nil {
		return nil, nil, fmt.Errorf("account: %w", domain.ErrNotFound)
	}
	if a.ID == attackerID {
		return a, b, nil
	}
	return b, a, nil
}

func (s *Service) resolveDefended(ctx context.Context, cfg *settings.Settings, attackerID, victimID int64, attackerCash float64, outcome *Outcome) error {
	penalty := money.Round2(cfg.TheftPenalty)
	if attackerCash < penalty {
		penalty = money.Round2(attackerCash)
	}
	if penalty > 0 {
		if _, err := s.accountRepo.DebitCashStrict(ctx, attackerID, penalty); err != nil {
			return err
		}
		if _, err := s.accountRepo.CreditCash(ctx, victimID, penalty); err != nil {
			return err
		}
	}

	if err := s.accountRepo.IncrementCounter(ctx, attackerID, domain.CounterTheftFailed, 1); err != nil {
		return err
	}
	if err := s.accountRepo.IncrementCounter(ctx, victimID, domain.CounterTheftProtected, 1); err != nil {
		return err
	}
	if err := s.progression.GrantExperience(ctx, victimID, int64(cfg.TheftExpDefense)); err != nil {
		return err
	}
	if err := s.progression.GrantExperience(ctx, attackerID, int64(cfg.TheftExpFail)); err != nil {
		return err
	}

	*outcome = Outcome{Result: ResultDefended, Penalty: penalty}
	return s.accountRepo.SetCooldown(ctx, attackerID, actionTheft, s.now())
}

func (s *Service) resolveStolen(ctx context.Context, cfg *settings.Settings, attacker *domain.Account, victimID int64, steal float64, outcome *Outcome) error {
	if _, err := s.accountRepo.DebitCashStrict(ctx, victimID, steal); err != nil {
		return err
	}
	if _, err := s.accountRepo.CreditCash(ctx, attacker.ID, steal); err != nil {
		return err
	}
	if cfg.TheftCryptoReward > 0 {
		if _, err := s.accountRepo.CreditCrypto(ctx, attacker.ID, cfg.TheftCryptoReward); err != nil {
			return err
		}
	}
	if err := s.accountRepo.IncrementCounter(ctx, attacker.ID, domain.CounterTheftSuccess, 1); err != nil {
		return err
	}
	if err := s.progression.GrantExperience(ctx, attacker.ID, int64(cfg.TheftExpSuccess)); err != nil {
		return err
	}

	// One-time referral bonus once the attacker's lifetime successes cross
	// the threshold.
	if attacker.ReferrerID != nil && !attacker.ReferralRewardGiven && attacker.TheftSuccess+1 >= cfg.ReferralThreshold {
		if _, err := s.accountRepo.CreditCash(ctx, *attacker.ReferrerID, cfg.ReferralBonus); err != nil {
			return err
		}
		if err := s.accountRepo.SetReferralRewardGiven(ctx, attacker.ID); err != nil {
			return err
		}
		zap.L().Info("referral bonus paid",
			zap.Int64("referrerID", *attacker.ReferrerID), zap.Int64("accountID", attacker.ID))
	}

	*outcome = Outcome{Result: ResultStolen, Amount: steal}
	return s.accountRepo.SetCooldown(ctx, attacker.ID, actionTheft, s.now())
}

func (s *Service) resolveFailed(ctx context.Context, cfg *settings.Settings, attackerID int64, outcome *Outcome) error {
	if err := s.accountRepo.IncrementCounter(ctx, attackerID, domain.CounterTheftFailed, 1); err != nil {
		return err
	}
	if err := s.progression.GrantExperience(ctx, attackerID, int64(cfg.TheftExpFail)); err != nil {
		return err
	}

	*outcome = Outcome{Result: ResultFailed}
	return s.accountRepo.SetCooldown(ctx, attackerID, actionTheft, s.now())
}

func scaledBonus(reputation, div, cap int) int {
	if div <= 0 || reputation <= 0 {
		return 0
	}
	bonus := reputation / div
	if bonus > cap {
		bonus = cap
	}
	return bonus
}
