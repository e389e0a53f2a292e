package combatservice

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"

	"github.com/streetwars/economy/internal/domain"
	"github.com/streetwars/economy/internal/pg"
	"github.com/streetwars/economy/internal/settings"
)

// scriptedRand returns pre-programmed Intn values so roll outcomes are
// deterministic.
type scriptedRand struct {
	ints []int
	idx  int
}

func (r *scriptedRand) Intn(int) int {
	v := r.ints[r.idx%len(r.ints)]
	r.idx++
	return v
}

func (r *scriptedRand) Float64() float64 { return 0.5 }

var testNow = time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

func NewMock(t *testing.T, rolls ...int) (*Service, *MockAccountRepo, *MockProgression, *MockSettingsProvider, *MockNotifier) {
	ctrl := gomock.NewController(t)
	accountRepo := NewMockAccountRepo(ctrl)
	progression := NewMockProgression(ctrl)
	config := NewMockSettingsProvider(ctrl)
	notifier := NewMockNotifier(ctrl)
	txManager := pg.NewMockTXManager(ctrl)
	txManager.EXPECT().Begin(gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, fn pg.TransactionalFn) error {
			return fn(ctx)
		},
	).AnyTimes()

	service := New(accountRepo, progression, config, txManager, notifier, &scriptedRand{ints: rolls})
	service.now = func() time.Time { return testNow }
	defer ctrl.Finish()
	return service, accountRepo, progression, config, notifier
}

func TestAttemptTheft_Validation(t *testing.T) {
	t.Run("Stealing from yourself", func(t *testing.T) {
		service, _, _, _, _ := NewMock(t)
		_, err := service.AttemptTheft(context.Background(), 1, 1, 0)
		assert.ErrorIs(t, err, domain.ErrValidation)
	})

	t.Run("Negative upfront cost", func(t *testing.T) {
		service, _, _, _, _ := NewMock(t)
		_, err := service.AttemptTheft(context.Background(), 1, 2, -1)
		assert.ErrorIs(t, err, domain.ErrValidation)
	})
}

func TestAttemptTheft_UpfrontShortfallAbortsCleanly(t *testing.T) {
	service, accountRepo, _, config, _ := NewMock(t)
	cfg := settings.Default()
	config.EXPECT().Get(gomock.Any()).Return(&cfg, nil)

	accountRepo.EXPECT().GetForUpdate(gomock.Any(), int64(1)).Return(&domain.Account{ID: 1, Cash: 5}, nil)
	accountRepo.EXPECT().GetForUpdate(gomock.Any(), int64(2)).Return(&domain.Account{ID: 2, Cash: 100}, nil)

	// No debit, no counter, no cooldown stamp.
	_, err := service.AttemptTheft(context.Background(), 1, 2, 10)
	assert.ErrorIs(t, err, domain.ErrInsufficientFunds)
}

func TestAttemptTheft_Defended(t *testing.T) {
	// Victim reputation 50 adds 50/10 = 5 on top of the base 30; a roll of
	// 30 -> 31 lands under 35.
	service, accountRepo, progression, config, notifier := NewMock(t, 30)
	cfg := settings.Default()
	config.EXPECT().Get(gomock.Any()).Return(&cfg, nil)

	accountRepo.EXPECT().GetForUpdate(gomock.Any(), int64(1)).Return(&domain.Account{ID: 1, Cash: 100}, nil)
	accountRepo.EXPECT().GetForUpdate(gomock.Any(), int64(2)).Return(&domain.Account{ID: 2, Cash: 40, Reputation: 50}, nil)
	accountRepo.EXPECT().DebitCashStrict(gomock.Any(), int64(1), 10.0).Return(90.0, nil)
	accountRepo.EXPECT().IncrementCounter(gomock.Any(), int64(1), domain.CounterTheftAttempts, 1).Return(nil)

	accountRepo.EXPECT().DebitCashStrict(gomock.Any(), int64(1), cfg.TheftPenalty).Return(75.0, nil)
	accountRepo.EXPECT().CreditCash(gomock.Any(), int64(2), cfg.TheftPenalty).Return(55.0, nil)
	accountRepo.EXPECT().IncrementCounter(gomock.Any(), int64(1), domain.CounterTheftFailed, 1).Return(nil)
	accountRepo.EXPECT().IncrementCounter(gomock.Any(), int64(2), domain.CounterTheftProtected, 1).Return(nil)
	progression.EXPECT().GrantExperience(gomock.Any(), int64(2), int64(cfg.TheftExpDefense)).Return(nil)
	progression.EXPECT().GrantExperience(gomock.Any(), int64(1), int64(cfg.TheftExpFail)).Return(nil)
	accountRepo.EXPECT().SetCooldown(gomock.Any(), int64(1), actionTheft, testNow).Return(nil)
	notifier.EXPECT().NotifyAccount(gomock.Any(), int64(2), gomock.Any())

	outcome, err := service.AttemptTheft(context.Background(), 1, 2, 10)
	assert.NoError(t, err)
	assert.Equal(t, ResultDefended, outcome.Result)
	assert.Equal(t, cfg.TheftPenalty, outcome.Penalty)
}

func TestAttemptTheft_DefendedPenaltyCappedByCash(t *testing.T) {
	// The attacker has 8 left after the upfront cost, so only 8 of the 15
	// penalty can move.
	service, accountRepo, progression, config, notifier := NewMock(t, 1)
	cfg := settings.Default()
	config.EXPECT().Get(gomock.Any()).Return(&cfg, nil)

	accountRepo.EXPECT().GetForUpdate(gomock.Any(), int64(1)).Return(&domain.Account{ID: 1, Cash: 18}, nil)
	accountRepo.EXPECT().GetForUpdate(gomock.Any(), int64(2)).Return(&domain.Account{ID: 2, Cash: 40}, nil)
	accountRepo.EXPECT().DebitCashStrict(gomock.Any(), int64(1), 10.0).Return(8.0, nil)
	accountRepo.EXPECT().IncrementCounter(gomock.Any(), int64(1), domain.CounterTheftAttempts, 1).Return(nil)

	accountRepo.EXPECT().DebitCashStrict(gomock.Any(), int64(1), 8.0).Return(0.0, nil)
	accountRepo.EXPECT().CreditCash(gomock.Any(), int64(2), 8.0).Return(48.0, nil)
	accountRepo.EXPECT().IncrementCounter(gomock.Any(), int64(1), domain.CounterTheftFailed, 1).Return(nil)
	accountRepo.EXPECT().IncrementCounter(gomock.Any(), int64(2), domain.CounterTheftProtected, 1).Return(nil)
	progression.EXPECT().GrantExperience(gomock.Any(), int64(2), int64(cfg.TheftExpDefense)).Return(nil)
	progression.EXPECT().GrantExperience(gomock.Any(), int64(1), int64(cfg.TheftExpFail)).Return(nil)
	accountRepo.EXPECT().SetCooldown(gomock.Any(), int64(1), actionTheft, testNow).Return(nil)
	notifier.EXPECT().NotifyAccount(gomock.Any(), int64(2), gomock.Any())

	outcome, err := service.AttemptTheft(context.Background(), 1, 2, 10)
	assert.NoError(t, err)
	assert.Equal(t, 8.0, outcome.Penalty)
}

func TestAttemptTheft_StolenWithReferralBonus(t *testing.T) {
	// Rolls: 90 -> 91 beats the defense check, 20 -> 21 lands under the
	// 40+40/20 = 42 success chance, 15 draws a steal of 10+15 = 25.
	service, accountRepo, progression, config, notifier := NewMock(t, 90, 20, 15)
	cfg := settings.Default()
	config.EXPECT().Get(gomock.Any()).Return(&cfg, nil)

	referrerID := int64(9)
	accountRepo.EXPECT().GetForUpdate(gomock.Any(), int64(1)).Return(&domain.Account{
		ID: 1, Cash: 100, Reputation: 40,
		ReferrerID: &referrerID, TheftSuccess: 9,
	}, nil)
	accountRepo.EXPECT().GetForUpdate(gomock.Any(), int64(2)).Return(&domain.Account{ID: 2, Cash: 50}, nil)
	accountRepo.EXPECT().IncrementCounter(gomock.Any(), int64(1), domain.CounterTheftAttempts, 1).Return(nil)

	accountRepo.EXPECT().DebitCashStrict(gomock.Any(), int64(2), 25.0).Return(25.0, nil)
	accountRepo.EXPECT().CreditCash(gomock.Any(), int64(1), 25.0).Return(125.0, nil)
	accountRepo.EXPECT().CreditCrypto(gomock.Any(), int64(1), cfg.TheftCryptoReward).Return(0.0005, nil)
	accountRepo.EXPECT().IncrementCounter(gomock.Any(), int64(1), domain.CounterTheftSuccess, 1).Return(nil)
	progression.EXPECT().GrantExperience(gomock.Any(), int64(1), int64(cfg.TheftExpSuccess)).Return(nil)

	// The tenth success crosses the referral threshold exactly once.
	accountRepo.EXPECT().CreditCash(gomock.Any(), referrerID, cfg.ReferralBonus).Return(600.0, nil)
	accountRepo.EXPECT().SetReferralRewardGiven(gomock.Any(), int64(1)).Return(nil)

	accountRepo.EXPECT().SetCooldown(gomock.Any(), int64(1), actionTheft, testNow).Return(nil)
	notifier.EXPECT().NotifyAccount(gomock.Any(), int64(2), gomock.Any())

	outcome, err := service.AttemptTheft(context.Background(), 1, 2, 0)
	assert.NoError(t, err)
	assert.Equal(t, ResultStolen, outcome.Result)
	assert.Equal(t, 25.0, outcome.Amount)
}

func TestAttemptTheft_StealCappedByVictimCash(t *testing.T) {
	service, accountRepo, progression, config, notifier := NewMock(t, 90, 20, 15)
	cfg := settings.Default()
	config.EXPECT().Get(gomock.Any()).Return(&cfg, nil)

	accountRepo.EXPECT().GetForUpdate(gomock.Any(), int64(1)).Return(&domain.Account{ID: 1, Cash: 100}, nil)
	accountRepo.EXPECT().GetForUpdate(gomock.Any(), int64(2)).Return(&domain.Account{ID: 2, Cash: 4.5}, nil)
	accountRepo.EXPECT().IncrementCounter(gomock.Any(), int64(1), domain.CounterTheftAttempts, 1).Return(nil)

	accountRepo.EXPECT().DebitCashStrict(gomock.Any(), int64(2), 4.5).Return(0.0, nil)
	accountRepo.EXPECT().CreditCash(gomock.Any(), int64(1), 4.5).Return(104.5, nil)
	accountRepo.EXPECT().CreditCrypto(gomock.Any(), int64(1), cfg.TheftCryptoReward).Return(0.0005, nil)
	accountRepo.EXPECT().IncrementCounter(gomock.Any(), int64(1), domain.CounterTheftSuccess, 1).Return(nil)
	progression.EXPECT().GrantExperience(gomock.Any(), int64(1), int64(cfg.TheftExpSuccess)).Return(nil)
	accountRepo.EXPECT().SetCooldown(gomock.Any(), int64(1), actionTheft, testNow).Return(nil)
	notifier.EXPECT().NotifyAccount(gomock.Any(), int64(2), gomock.Any())

	outcome, err := service.AttemptTheft(context.Background(), 1, 2, 0)
	assert.NoError(t, err)
	assert.Equal(t, 4.5, outcome.Amount)
}

func TestAttemptTheft_Failed(t *testing.T) {
	// Both rolls of 90 -> 91 miss the defense and success chances.
	service, accountRepo, progression, config, _ := NewMock(t, 90, 90)
	cfg := settings.Default()
	config.EXPECT().Get(gomock.Any()).Return(&cfg, nil)

	// Lock order is by ascending id even when the victim's id is lower.
	gomock.InOrder(
		accountRepo.EXPECT().GetForUpdate(gomock.Any(), int64(2)).Return(&domain.Account{ID: 2, Cash: 50}, nil),
		accountRepo.EXPECT().GetForUpdate(gomock.Any(), int64(5)).Return(&domain.Account{ID: 5, Cash: 100}, nil),
	)
	accountRepo.EXPECT().IncrementCounter(gomock.Any(), int64(5), domain.CounterTheftAttempts, 1).Return(nil)
	accountRepo.EXPECT().IncrementCounter(gomock.Any(), int64(5), domain.CounterTheftFailed, 1).Return(nil)
	progression.EXPECT().GrantExperience(gomock.Any(), int64(5), int64(cfg.TheftExpFail)).Return(nil)
	accountRepo.EXPECT().SetCooldown(gomock.Any(), int64(5), actionTheft, testNow).Return(nil)

	outcome, err := service.AttemptTheft(context.Background(), 5, 2, 0)
	assert.NoError(t, err)
	assert.Equal(t, ResultFailed, outcome.Result)
	assert.Zero(t, outcome.Amount)
}

func TestAttemptTheft_UnknownVictim(t *testing.T) {
	service, accountRepo, _, config, _ := NewMock(t)
	cfg := settings.Default()
	config.EXPECT().Get(gomock.Any()).Return(&cfg, nil)

	accountRepo.EXPECT().GetForUpdate(gomock.Any(), int64(1)).Return(&domain.Account{ID: 1, Cash: 100}, nil)
	accountRepo.EXPECT().GetForUpdate(gomock.Any(), int64(2)).Return(nil, nil)

	_, err := service.AttemptTheft(context.Background(), 1, 2, 0)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestCooldownRemaining(t *testing.T) {
	cfg := settings.Default()

	tests := []struct {
		name        string
		prepareMock func(accountRepo *MockAccountRepo, config *MockSettingsProvider)
		expected    time.Duration
	}{
		{
			name: "Never attempted",
			prepareMock: func(accountRepo *MockAccountRepo, config *MockSettingsProvider) {
				config.EXPECT().Get(gomock.Any()).Return(&cfg, nil)
				accountRepo.EXPECT().GetCooldown(gomock.Any(), int64(1), actionTheft).Return(nil, nil)
			},
			expected: 0,
		},
		{
			name: "Recent attempt still cooling down",
			prepareMock: func(accountRepo *MockAccountRepo, config *MockSettingsProvider) {
				config.EXPECT().Get(gomock.Any()).Return(&cfg, nil)
				last := testNow.Add(-10 * time.Minute)
				accountRepo.EXPECT().GetCooldown(gomock.Any(), int64(1), actionTheft).Return(&last, nil)
			},
			expected: 50 * time.Minute,
		},
		{
			name: "Old attempt is fully cooled",
			prepareMock: func(accountRepo *MockAccountRepo, config *MockSettingsProvider) {
				config.EXPECT().Get(gomock.Any()).Return(&cfg, nil)
				last := testNow.Add(-2 * time.Hour)
				accountRepo.EXPECT().GetCooldown(gomock.Any(), int64(1), actionTheft).Return(&last, nil)
			},
			expected: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, accountRepo, _, config, _ := NewMock(t)
			tt.prepareMock(accountRepo, config)

			remaining, err := service.CooldownRemaining(context.Background(), 1)
			assert.NoError(t, err)
			assert.Equal(t, tt.expected, remaining)
		})
	}
}
