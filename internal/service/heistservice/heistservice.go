package heistservice

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
	"go.uber.org/zap"

	"github.com/streetwars/economy/internal/domain"
	"github.com/streetwars/economy/internal/pg"
	"github.com/streetwars/economy/internal/settings"
	"github.com/streetwars/economy/pkg/money"
	"github.com/streetwars/economy/pkg/rng"
)

//go:generate mockgen -source=heistservice.go -destination=mock_heistservice.go -package=heistservice

const uniqueViolationCode = "23505"

type HeistRepo interface {
	RandomEvent(ctx context.Context) (*domain.HeistEvent, error)
	Create(ctx context.Context, heist *domain.Heist) (*domain.Heist, error)
	GetByID(ctx context.Context, id int) (*domain.Heist, error)
	GetByIDForUpdate(ctx context.Context, id int) (*domain.Heist, error)
	GetActiveByRoom(ctx context.Context, roomID int64) (*domain.Heist, error)
	ListUnfinished(ctx context.Context) ([]domain.Heist, error)
	AdvancePhase(ctx context.Context, id int, from, to domain.HeistPhase) (bool, error)
	AddParticipant(ctx context.Context, heistID int, accountID int64) (bool, error)
	ListParticipants(ctx context.Context, heistID int) ([]domain.HeistParticipant, error)
	ListParticipantsForUpdate(ctx context.Context, heistID int) ([]domain.HeistParticipant, error)
	LockPair(ctx context.Context, heistID int, a, b int64) ([]domain.HeistParticipant, error)
	SetAllShares(ctx context.Context, heistID int, baseShare, bonusShare float64) error
	UpdateParticipant(ctx context.Context, heistID int, accountID int64, currentShare float64, defenseBonus int) error
	DeleteParticipants(ctx context.Context, heistID int) error
	SaveBetrayal(ctx context.Context, b *domain.Betrayal) error
	ListBetrayals(ctx context.Context, heistID int) ([]domain.Betrayal, error)
}

type AccountRepo interface {
	Get(ctx context.Context, id int64) (*domain.Account, error)
	CreditCash(ctx context.Context, id int64, amount float64) (float64, error)
	CreditCrypto(ctx context.Context, id int64, amount float64) (float64, error)
	IncrementCounter(ctx context.Context, id int64, kind domain.CounterKind, delta int) error
	AddHeistEarnings(ctx context.Context, id int64, amount float64) error
}

type Progression interface {
	GrantExperience(ctx context.Context, accountID int64, amount int64) error
}

type SettingsProvider interface {
	Get(ctx context.Context) (*settings.Settings, error)
}

type Notifier interface {
	NotifyAccount(ctx context.Context, accountID int64, text string)
	NotifyRoom(ctx context.Context, roomID int64, text string)
}

type BetrayalResult struct {
	Success bool
	Amount  float64
}

type Status struct {
	Heist        *domain.Heist
	Participants []domain.HeistParticipant
	Betrayals    []domain.Betrayal
}

// Service owns the per-room heist state machine
// (joining -> splitting -> finished). Player actions and deadline timers
// race against each other; every transition re-checks the phase inside its
// own transaction, so a late timer or a late player action degrades to a
// clean no-op or state conflict.
type Service struct {
	heistRepo   HeistRepo
	accountRepo AccountRepo
	progression Progression
	config      SettingsProvider
	txManager   pg.TXManager
	notifier    Notifier
	rand        rng.Rand

	pool     WorkerPoolI
	pending  sync.Map
	now      func() time.Time
	schedCtx context.Context
}

func New(heistRepo HeistRepo, accountRepo AccountRepo, progression Progression, config SettingsProvider, txManager pg.TXManager, notifier Notifier, rand rng.Rand) *Service {
	return &Service{
		heistRepo:   heistRepo,
		accountRepo: accountRepo,
		progression: progression,
		config:      config,
		txManager:   txManager,
		notifier:    notifier,
		rand:        rand,
		pool:        NewWorkerPool(4),
		now:         time.Now,
		schedCtx:    context.Background(),
	}
}

// Spawn starts a heist in the room from a random event template: the pot is
// drawn uniformly from the template's range and a crypto bonus may be rolled
// on top. One non-finished heist per room is enforced by the store.
func (s *Service) Spawn(ctx context.Context, roomID int64) (*domain.Heist, error) {
	cfg, err := s.config.Get(ctx)
	if err != nil {
		return nil, err
	}

	var heist *domain.Heist
	var event *domain.HeistEvent
	err = s.txManager.Begin(ctx, func(ctx context.Context) error {
		active, err := s.heistRepo.GetActiveByRoom(ctx, roomID)
		if err != nil {
			return err
		}
		if active != nil {
			return fmt.Errorf("room %d already has heist %d: %w", roomID, active.ID, domain.ErrStateConflict)
		}

		event, err = s.heistRepo.RandomEvent(ctx)
		if err != nil {
			return err
		}
		if event == nil {
			return errors.New("no heist events configured")
		}

		bonus := 0.0
		if event.BonusChance > 0 && rng.Roll(s.rand) <= event.BonusChance {
			bonus = money.Round4(rng.BetweenFloat(s.rand, event.BonusMin, event.BonusMax))
		}

		joinDeadline := s.now().Add(cfg.HeistJoinWindow)
		heist, err = s.heistRepo.Create(ctx, &domain.Heist{
			RoomID:        roomID,
			EventID:       event.ID,
			Pot:           rng.Between(s.rand, event.PotMin, event.PotMax),
			Bonus:         bonus,
			JoinDeadline:  joinDeadline,
			SplitDeadline: joinDeadline.Add(cfg.HeistSplitWindow),
		})
		return err
	})
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolationCode {
			return nil, fmt.Errorf("room %d already has an active heist: %w", roomID, domain.ErrStateConflict)
		}
		return nil, err
	}

	s.schedule(heist.ID, domain.PhaseJoining, heist.JoinDeadline)
	s.notifier.NotifyRoom(ctx, roomID,
		fmt.Sprintf("%s is on! Pot: $%d. Send \"%s\" to join.", event.Title, heist.Pot, event.Keyword))
	return heist, nil
}

// Join registers the account while the join window is open. A repeat join
// reports false without error.
func (s *Service) Join(ctx context.Context, heistID int, accountID int64) (bool, error) {
	var joined bool
	err := s.txManager.Begin(ctx, func(ctx context.Context) error {
		heist, err := s.heistRepo.GetByIDForUpdate(ctx, heistID)
		if err != nil {
			return err
		}
		if heist == nil {
			return fmt.Errorf("heist %d: %w", heistID, domain.ErrNotFound)
		}
		if heist.Phase != domain.PhaseJoining || s.now().After(heist.JoinDeadline) {
			return fmt.Errorf("heist %d is not joinable: %w", heistID, domain.ErrStateConflict)
		}

		joined, err = s.heistRepo.AddParticipant(ctx, heistID, accountID)
		if err != nil {
			return err
		}
		if joined {
			return s.accountRepo.IncrementCounter(ctx, accountID, domain.CounterHeistsJoined, 1)
		}
		return nil
	})
	if err != nil {
		return false, err
	}
	return joined, nil
}

// Betray attempts to steal a slice of another participant's share during
// the splitting window. Both participant rows are locked together so two
// concurrent betrayals cannot lose an update, and the transferred amount is
// symmetric, keeping the share sum equal to the pot.
func (s *Service) Betray(ctx context.Context, heistID int, attackerID, targetID int64) (*BetrayalResult, error) {
	if attackerID == targetID {
		return nil, fmt.Errorf("cannot betray yourself: %w", domain.ErrValidation)
	}

	cfg, err := s.config.Get(ctx)
	if err != nil {
		return nil, err
	}

	var result BetrayalResult
	err = s.txManager.Begin(ctx, func(ctx context.Context) error {
		heist, err := s.heistRepo.GetByIDForUpdate(ctx, heistID)
		if err != nil {
			return err
		}
		if heist == nil {
			return fmt.Errorf("heist %d: %w", heistID, domain.ErrNotFound)
		}
		if heist.Phase != domain.PhaseSplitting || s.now().After(heist.SplitDeadline) {
			return fmt.Errorf("heist %d is not in its splitting window: %w", heistID, domain.ErrStateConflict)
		}

		pair, err := s.heistRepo.LockPair(ctx, heistID, attackerID, targetID)
		if err != nil {
			return err
		}
		var attacker, target *domain.HeistParticipant
		for i := range pair {
			switch pair[i].AccountID {
			case attackerID:
				attacker = &pair[i]
			case targetID:
				target = &pair[i]
			}
		}
		if attacker == nil || target == nil {
			return fmt.Errorf("both sides must participate in heist %d: %w", heistID, domain.ErrNotFound)
		}

		acc, err := s.accountRepo.Get(ctx, attackerID)
		if err != nil {
			return err
		}
		if acc == nil {
			return fmt.Errorf("account %d: %w", attackerID, domain.ErrNotFound)
		}

		chance := cfg.BetrayBaseChance + acc.SkillBetray*cfg.BetraySkillBonus
		if chance > cfg.BetrayMaxChance {
			chance = cfg.BetrayMaxChance
		}
		chance -= target.DefenseBonus

		if err := s.accountRepo.IncrementCounter(ctx, attackerID, domain.CounterHeistBetrayAttempts, 1); err != nil {
			return err
		}

		if rng.Roll(s.rand) <= chance {
			steal := money.Percent(target.CurrentShare, cfg.BetrayStealPercent)
			result = BetrayalResult{Success: true, Amount: steal}

			if err := s.heistRepo.UpdateParticipant(ctx, heistID, targetID, money.Round2(target.CurrentShare-steal), 0); err != nil {
				return err
			}
			if err := s.heistRepo.UpdateParticipant(ctx, heistID, attackerID, money.Round2(attacker.CurrentShare+steal), attacker.DefenseBonus); err != nil {
				return err
			}
			if err := s.accountRepo.IncrementCounter(ctx, attackerID, domain.CounterHeistBetraySuccess, 1); err != nil {
				return err
			}
			if err := s.accountRepo.IncrementCounter(ctx, targetID, domain.CounterHeistsBetrayedCount, 1); err != nil {
				return err
			}
			if err := s.heistRepo.SaveBetrayal(ctx, &domain.Betrayal{
				HeistID: heistID, AttackerID: attackerID, TargetID: targetID, Success: true, Amount: steal,
			}); err != nil {
				return err
			}
			return s.progression.GrantExperience(ctx, attackerID, int64(cfg.BetrayExpSuccess))
		}

		penalty := money.Percent(attacker.CurrentShare, cfg.BetrayFailPenaltyPercent)
		result = BetrayalResult{Success: false, Amount: penalty}

		defense := target.DefenseBonus + cfg.DefenseBonusStep
		if defense > cfg.DefenseBonusCap {
			defense = cfg.DefenseBonusCap
		}
		if err := s.heistRepo.UpdateParticipant(ctx, heistID, attackerID, money.Round2(attacker.CurrentShare-penalty), attacker.DefenseBonus); err != nil {
			return err
		}
		if err := s.heistRepo.UpdateParticipant(ctx, heistID, targetID, money.Round2(target.CurrentShare+penalty), defense); err != nil {
			return err
		}
		if err := s.heistRepo.SaveBetrayal(ctx, &domain.Betrayal{
			HeistID: heistID, AttackerID: attackerID, TargetID: targetID, Success: false, Amount: penalty,
		}); err != nil {
			return err
		}
		return s.progression.GrantExperience(ctx, attackerID, int64(cfg.BetrayExpFail))
	})
	if err != nil {
		return nil, err
	}

	if result.Success {
		s.notifier.NotifyAccount(ctx, attackerID, fmt.Sprintf("Betrayal succeeded: you grabbed $%.2f of the share.", result.Amount))
		s.notifier.NotifyAccount(ctx, targetID, fmt.Sprintf("You were betrayed and lost $%.2f of your share!", result.Amount))
	} else {
		s.notifier.NotifyAccount(ctx, attackerID, fmt.Sprintf("Betrayal failed: you forfeited $%.2f of your share.", result.Amount))
		s.notifier.NotifyAccount(ctx, targetID, fmt.Sprintf("Someone tried to betray you and paid $%.2f for it.", result.Amount))
	}
	return &result, nil
}

func (s *Service) GetStatus(ctx context.Context, heistID int) (*Status, error) {
	heist, err := s.heistRepo.GetByID(ctx, heistID)
	if err != nil {
		return nil, err
	}
	if heist == nil {
		return nil, fmt.Errorf("heist %d: %w", heistID, domain.ErrNotFound)
	}
	participants, err := s.heistRepo.ListParticipants(ctx, heistID)
	if err != nil {
		return nil, err
	}
	betrayals, err := s.heistRepo.ListBetrayals(ctx, heistID)
	if err != nil {
		return nil, err
	}
	return &Status{Heist: heist, Participants: participants, Betrayals: betrayals}, nil
}

// HandleJoinDeadline closes the join window: nobody joined finishes the
// heist dry, a single participant is paid out immediately, and two or more
// get equal shares and a splitting window.
func (s *Service) HandleJoinDeadline(ctx context.Context, heistID int) error {
	var split *domain.Heist
	err := s.txManager.Begin(ctx, func(ctx context.Context) error {
		heist, err := s.heistRepo.GetByIDForUpdate(ctx, heistID)
		if err != nil {
			return err
		}
		if heist == nil || heist.Phase != domain.PhaseJoining {
			// The timer lost the race against another transition.
			return nil
		}

		participants, err := s.heistRepo.ListParticipantsForUpdate(ctx, heistID)
		if err != nil {
			return err
		}

		if len(participants) == 0 {
			_, err := s.heistRepo.AdvancePhase(ctx, heistID, domain.PhaseJoining, domain.PhaseFinished)
			if err == nil {
				s.notifier.NotifyRoom(ctx, heist.RoomID, "The heist was called off: nobody showed up.")
			}
			return err
		}

		baseShare := money.Round2(float64(heist.Pot) / float64(len(participants)))
		bonusShare := money.Round4(heist.Bonus / float64(len(participants)))

		if len(participants) == 1 {
			sole := participants[0]
			if err := s.payOut(ctx, heist, sole.AccountID, float64(heist.Pot), heist.Bonus); err != nil {
				return err
			}
			if err := s.heistRepo.DeleteParticipants(ctx, heistID); err != nil {
				return err
			}
			if _, err := s.heistRepo.AdvancePhase(ctx, heistID, domain.PhaseJoining, domain.PhaseFinished); err != nil {
				return err
			}
			s.notifier.NotifyAccount(ctx, sole.AccountID,
				fmt.Sprintf("You pulled the heist off alone and keep the whole pot: $%d!", heist.Pot))
			return nil
		}

		if err := s.heistRepo.SetAllShares(ctx, heistID, baseShare, bonusShare); err != nil {
			return err
		}
		if _, err := s.heistRepo.AdvancePhase(ctx, heistID, domain.PhaseJoining, domain.PhaseSplitting); err != nil {
			return err
		}
		split = heist
		return nil
	})
	if err != nil {
		zap.L().Error("join deadline transition failed", zap.Error(err), zap.Int("heistID", heistID))
		return err
	}

	if split != nil {
		s.schedule(heistID, domain.PhaseSplitting, split.SplitDeadline)
		s.notifier.NotifyRoom(ctx, split.RoomID,
			fmt.Sprintf("The crew is in. Split the $%d pot - or betray for a bigger cut.", split.Pot))
	}
	return nil
}

// HandleSplitDeadline pays every remaining participant their current share.
// Rounding drift against the pot is credited to the participant with the
// lowest account id so the payout total always equals the pot exactly.
func (s *Service) HandleSplitDeadline(ctx context.Context, heistID int) error {
	err := s.txManager.Begin(ctx, func(ctx context.Context) error {
		heist, err := s.heistRepo.GetByIDForUpdate(ctx, heistID)
		if err != nil {
			return err
		}
		if heist == nil || heist.Phase != domain.PhaseSplitting {
			return nil
		}

		participants, err := s.heistRepo.ListParticipantsForUpdate(ctx, heistID)
		if err != nil {
			return err
		}

		var sum float64
		for _, p := range participants {
			sum += p.CurrentShare
		}
		drift := money.Round2(float64(heist.Pot) - sum)
		for i, p := range participants {
			share := p.CurrentShare
			if i == 0 && drift != 0 {
				share = money.Round2(share + drift)
			}
			if err := s.payOut(ctx, heist, p.AccountID, share, p.BonusShare); err != nil {
				return err
			}
			s.notifier.NotifyAccount(ctx, p.AccountID, fmt.Sprintf("Heist payout: $%.2f is yours.", share))
		}

		if err := s.heistRepo.DeleteParticipants(ctx, heistID); err != nil {
			return err
		}
		_, err = s.heistRepo.AdvancePhase(ctx, heistID, domain.PhaseSplitting, domain.PhaseFinished)
		return err
	})
	if err != nil {
		zap.L().Error("split deadline transition failed", zap.Error(err), zap.Int("heistID", heistID))
	}
	return err
}

func (s *Service) payOut(ctx context.Context, heist *domain.Heist, accountID int64, cash, bonus float64) error {
	if cash > 0 {
		if _, err := s.accountRepo.CreditCash(ctx, accountID, cash); err != nil {
			return err
		}
		if err := s.accountRepo.AddHeistEarnings(ctx, accountID, cash); err != nil {
			return err
		}
	}
	if bonus > 0 {
		if _, err := s.accountRepo.CreditCrypto(ctx, accountID, bonus); err != nil {
			return err
		}
	}
	return nil
}
