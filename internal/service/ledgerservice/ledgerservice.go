package ledgerservice

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"github.com/streetwars/economy/internal/domain"
	"github.com/streetwars/economy/internal/settings"
	"github.com/streetwars/economy/pkg/money"
)

//go:generate mockgen -source=ledgerservice.go -destination=mock_ledgerservice.go -package=ledgerservice

type AccountRepo interface {
	Get(ctx context.Context, id int64) (*domain.Account, error)
	Create(ctx context.Context, id int64, username string, startingCash float64) (*domain.Account, error)
	CreditCash(ctx context.Context, id int64, amount float64) (float64, error)
	DebitCash(ctx context.Context, id int64, amount float64) (cash, debt float64, err error)
	DebitCashStrict(ctx context.Context, id int64, amount float64) (float64, error)
	CreditCrypto(ctx context.Context, id int64, amount float64) (float64, error)
	DebitCrypto(ctx context.Context, id int64, amount float64) (float64, error)
	AdjustReputation(ctx context.Context, id int64, delta int) (int, error)
	AdjustSkill(ctx context.Context, id int64, kind domain.SkillKind, delta, max int) (int, error)
}

type Progression interface {
	GrantExperience(ctx context.Context, accountID int64, amount int64) error
}

type SettingsProvider interface {
	Get(ctx context.Context) (*settings.Settings, error)
}

// Service is the account ledger. Every other component changes balances
// through it (or through the same atomic account queries it delegates to).
type Service struct {
	accountRepo AccountRepo
	progression Progression
	config      SettingsProvider
}

func New(accountRepo AccountRepo, progression Progression, config SettingsProvider) *Service {
	return &Service{
		accountRepo: accountRepo,
		progression: progression,
		config:      config,
	}
}

// EnsureAccount creates the account with the starting cash grant on first
// interaction and refreshes the stored username afterwards.
func (s *Service) EnsureAccount(ctx context.Context, id int64, username string) (*domain.Account, error) {
	acc, err := s.accountRepo.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if acc != nil && acc.Username == username {
		return acc, nil
	}

	cfg, err := s.config.Get(ctx)
	if err != nil {
		return nil, err
	}
	return s.accountRepo.Create(ctx, id, username, cfg.StartingCash)
}

func (s *Service) GetBalance(ctx context.Context, id int64) (*domain.Account, error) {
	acc, err := s.accountRepo.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if acc == nil {
		return nil, fmt.Errorf("account %d: %w", id, domain.ErrNotFound)
	}
	return acc, nil
}

func (s *Service) CreditCash(ctx context.Context, id int64, amount float64) (float64, error) {
	if amount <= 0 {
		return 0, fmt.Errorf("credit amount must be positive: %w", domain.ErrValidation)
	}
	cash, err := s.accountRepo.CreditCash(ctx, id, money.Round2(amount))
	if err != nil {
		return 0, s.mapAccountErr(ctx, err, id)
	}
	return cash, nil
}

// DebitCash never fails on a shortfall: cash is clamped at zero and the
// uncovered remainder accrues as debt.
func (s *Service) DebitCash(ctx context.Context, id int64, amount float64) (cash, debt float64, err error) {
	if amount <= 0 {
		return 0, 0, fmt.Errorf("debit amount must be positive: %w", domain.ErrValidation)
	}
	cash, debt, err = s.accountRepo.DebitCash(ctx, id, money.Round2(amount))
	if err != nil {
		return 0, 0, s.mapAccountErr(ctx, err, id)
	}
	return cash, debt, nil
}

func (s *Service) CreditCrypto(ctx context.Context, id int64, amount float64) (float64, error) {
	if amount <= 0 {
		return 0, fmt.Errorf("credit amount must be positive: %w", domain.ErrValidation)
	}
	crypto, err := s.accountRepo.CreditCrypto(ctx, id, money.Round4(amount))
	if err != nil {
		return 0, s.mapAccountErr(ctx, err, id)
	}
	return crypto, nil
}

// DebitCrypto fails with InsufficientFunds instead of going negative.
func (s *Service) DebitCrypto(ctx context.Context, id int64, amount float64) (float64, error) {
	if amount <= 0 {
		return 0, fmt.Errorf("debit amount must be positive: %w", domain.ErrValidation)
	}
	crypto, err := s.accountRepo.DebitCrypto(ctx, id, money.Round4(amount))
	if err != nil {
		return 0, s.mapShortfallErr(ctx, err, id)
	}
	return crypto, nil
}

func (s *Service) AdjustReputation(ctx context.Context, id int64, delta int) (int, error) {
	reputation, err := s.accountRepo.AdjustReputation(ctx, id, delta)
	if err != nil {
		return 0, s.mapAccountErr(ctx, err, id)
	}
	return reputation, nil
}

func (s *Service) AdjustSkill(ctx context.Context, id int64, kind domain.SkillKind, delta int) (int, error) {
	cfg, err := s.config.Get(ctx)
	if err != nil {
		return 0, err
	}
	level, err := s.accountRepo.AdjustSkill(ctx, id, kind, delta, cfg.SkillMax)
	if err != nil {
		return 0, s.mapAccountErr(ctx, err, id)
	}
	return level, nil
}

func (s *Service) GrantExperience(ctx context.Context, id int64, amount int64) error {
	return s.progression.GrantExperience(ctx, id, amount)
}

// mapAccountErr turns a no-rows update result into NotFound.
func (s *Service) mapAccountErr(_ context.Context, err error, id int64) error {
	if errors.Is(err, pgx.ErrNoRows) {
		return fmt.Errorf("account %d: %w", id, domain.ErrNotFound)
	}
	zap.L().Error("ledger operation failed", zap.Error(err), zap.Int64("accountID", id))
	return err
}

// mapShortfallErr distinguishes a missing account from a conditional debit
// that found the row but not the funds.
func (s *Service) mapShortfallErr(ctx context.Context, err error, id int64) error {
	if !errors.Is(err, pgx.ErrNoRows) {
		zap.L().Error("ledger operation failed", zap.Error(err), zap.Int64("accountID", id))
		return err
	}
	acc, getErr := s.accountRepo.Get(ctx, id)
	if getErr != nil {
		return getErr
	}
	if acc == nil {
		return fmt.Errorf("account %d: %w", id, domain.ErrNotFound)
	}
	return fmt.Errorf("account %d: %w", id, domain.ErrInsufficientFunds)
}
