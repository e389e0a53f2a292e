package heistservice

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

// discardPool swallows deferred transitions so a timer armed by a test
// never runs one against mocks that are already done.
type discardPool struct{}

func (discardPool) AddTask(context.Context, Task) error { return nil }
func (discardPool) Close()                              {}

func NewMock(t *testing.T, rolls ...int) (*Service, *MockHeistRepo, *MockAccountRepo, *MockProgression, *MockSettingsProvider, *MockNotifier) {
	ctrl := gomock.NewController(t)
	heistRepo := NewMockHeistRepo(ctrl)
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

	service := New(heistRepo, accountRepo, progression, config, txManager, notifier, &scriptedRand{ints: rolls})
	service.pool = discardPool{}
	defer ctrl.Finish()
	return service, heistRepo, accountRepo, progression, config, notifier
}

var testNow = time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

func fixNow(s *Service) {
	s.now = func() time.Time { return testNow }
}

func joiningHeist(id int) *domain.Heist {
	return &domain.Heist{
		ID:            id,
		RoomID:        -100,
		Pot:           100,
		Phase:         domain.PhaseJoining,
		JoinDeadline:  testNow.Add(time.Minute),
		SplitDeadline: testNow.Add(4 * time.Minute),
	}
}

func splittingHeist(id int) *domain.Heist {
	h := joiningHeist(id)
	h.Phase = domain.PhaseSplitting
	return h
}

func TestSpawn(t *testing.T) {
	cfg := settings.Default()

	t.Run("Room with an active heist conflicts", func(t *testing.T) {
		service, heistRepo, _, _, config, _ := NewMock(t, 10)
		fixNow(service)
		config.EXPECT().Get(gomock.Any()).Return(&cfg, nil)
		heistRepo.EXPECT().GetActiveByRoom(gomock.Any(), int64(-100)).Return(joiningHeist(1), nil)

		_, err := service.Spawn(context.Background(), -100)
		assert.ErrorIs(t, err, domain.ErrStateConflict)
	})

	t.Run("Spawns from a random event with a rolled pot", func(t *testing.T) {
		service, heistRepo, _, _, config, notifier := NewMock(t, 10)
		fixNow(service)
		config.EXPECT().Get(gomock.Any()).Return(&cfg, nil)
		heistRepo.EXPECT().GetActiveByRoom(gomock.Any(), int64(-100)).Return(nil, nil)
		heistRepo.EXPECT().RandomEvent(gomock.Any()).Return(&domain.HeistEvent{
			ID: 1, Title: "Bank vault", Keyword: "in", PotMin: 500, PotMax: 1000,
		}, nil)

		joinDeadline := testNow.Add(cfg.HeistJoinWindow)
		heistRepo.EXPECT().Create(gomock.Any(), &domain.Heist{
			RoomID:        -100,
			EventID:       1,
			Pot:           510,
			JoinDeadline:  joinDeadline,
			SplitDeadline: joinDeadline.Add(cfg.HeistSplitWindow),
		}).Return(&domain.Heist{
			ID: 7, RoomID: -100, EventID: 1, Pot: 510, Phase: domain.PhaseJoining,
			JoinDeadline: joinDeadline, SplitDeadline: joinDeadline.Add(cfg.HeistSplitWindow),
		}, nil)
		notifier.EXPECT().NotifyRoom(gomock.Any(), int64(-100), gomock.Any())

		heist, err := service.Spawn(context.Background(), -100)
		assert.NoError(t, err)
		assert.Equal(t, 510, heist.Pot)
	})
}

func TestJoin(t *testing.T) {
	tests := []struct {
		name        string
		prepareMock func(heistRepo *MockHeistRepo, accountRepo *MockAccountRepo)
		expected    bool
		expectedErr error
	}{
		{
			name: "First join adds the participant and counts it",
			prepareMock: func(heistRepo *MockHeistRepo, accountRepo *MockAccountRepo) {
				heistRepo.EXPECT().GetByIDForUpdate(gomock.Any(), 1).Return(joiningHeist(1), nil)
				heistRepo.EXPECT().AddParticipant(gomock.Any(), 1, int64(42)).Return(true, nil)
				accountRepo.EXPECT().IncrementCounter(gomock.Any(), int64(42), domain.CounterHeistsJoined, 1).Return(nil)
			},
			expected: true,
		},
		{
			name: "Repeat join is a quiet no-op",
			prepareMock: func(heistRepo *MockHeistRepo, accountRepo *MockAccountRepo) {
				heistRepo.EXPECT().GetByIDForUpdate(gomock.Any(), 1).Return(joiningHeist(1), nil)
				heistRepo.EXPECT().AddParticipant(gomock.Any(), 1, int64(42)).Return(false, nil)
			},
			expected: false,
		},
		{
			name: "Join after the deadline conflicts",
			prepareMock: func(heistRepo *MockHeistRepo, accountRepo *MockAccountRepo) {
				h := joiningHeist(1)
				h.JoinDeadline = testNow.Add(-time.Second)
				heistRepo.EXPECT().GetByIDForUpdate(gomock.Any(), 1).Return(h, nil)
			},
			expectedErr: domain.ErrStateConflict,
		},
		{
			name: "Join outside the joining phase conflicts",
			prepareMock: func(heistRepo *MockHeistRepo, accountRepo *MockAccountRepo) {
				heistRepo.EXPECT().GetByIDForUpdate(gomock.Any(), 1).Return(splittingHeist(1), nil)
			},
			expectedErr: domain.ErrStateConflict,
		},
		{
			name: "Unknown heist",
			prepareMock: func(heistRepo *MockHeistRepo, accountRepo *MockAccountRepo) {
				heistRepo.EXPECT().GetByIDForUpdate(gomock.Any(), 1).Return(nil, nil)
			},
			expectedErr: domain.ErrNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, heistRepo, accountRepo, _, _, _ := NewMock(t)
			fixNow(service)
			tt.prepareMock(heistRepo, accountRepo)

			joined, err := service.Join(context.Background(), 1, 42)
			if tt.expectedErr != nil {
				assert.ErrorIs(t, err, tt.expectedErr)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.expected, joined)
		})
	}
}

func TestBetray_SuccessTransfersSymmetrically(t *testing.T) {
	// Roll of 10 -> 11 against a chance of 20+2*5-10 = 20.
	service, heistRepo, accountRepo, progression, config, notifier := NewMock(t, 10)
	fixNow(service)
	cfg := settings.Default()
	config.EXPECT().Get(gomock.Any()).Return(&cfg, nil)

	heistRepo.EXPECT().GetByIDForUpdate(gomock.Any(), 1).Return(splittingHeist(1), nil)
	heistRepo.EXPECT().LockPair(gomock.Any(), 1, int64(42), int64(43)).Return([]domain.HeistParticipant{
		{HeistID: 1, AccountID: 42, CurrentShare: 200, DefenseBonus: 0},
		{HeistID: 1, AccountID: 43, CurrentShare: 300, DefenseBonus: 10},
	}, nil)
	accountRepo.EXPECT().Get(gomock.Any(), int64(42)).Return(&domain.Account{ID: 42, SkillBetray: 2}, nil)
	accountRepo.EXPECT().IncrementCounter(gomock.Any(), int64(42), domain.CounterHeistBetrayAttempts, 1).Return(nil)

	// 30% of the target's 300 moves over; the target's defense resets.
	heistRepo.EXPECT().UpdateParticipant(gomock.Any(), 1, int64(43), 210.0, 0).Return(nil)
	heistRepo.EXPECT().UpdateParticipant(gomock.Any(), 1, int64(42), 290.0, 0).Return(nil)
	accountRepo.EXPECT().IncrementCounter(gomock.Any(), int64(42), domain.CounterHeistBetraySuccess, 1).Return(nil)
	accountRepo.EXPECT().IncrementCounter(gomock.Any(), int64(43), domain.CounterHeistsBetrayedCount, 1).Return(nil)
	heistRepo.EXPECT().SaveBetrayal(gomock.Any(), &domain.Betrayal{
		HeistID: 1, AttackerID: 42, TargetID: 43, Success: true, Amount: 90,
	}).Return(nil)
	progression.EXPECT().GrantExperience(gomock.Any(), int64(42), int64(cfg.BetrayExpSuccess)).Return(nil)
	notifier.EXPECT().NotifyAccount(gomock.Any(), int64(42), gomock.Any())
	notifier.EXPECT().NotifyAccount(gomock.Any(), int64(43), gomock.Any())

	result, err := service.Betray(context.Background(), 1, 42, 43)
	assert.NoError(t, err)
	assert.True(t, result.Success)
	assert.Equal(t, 90.0, result.Amount)
}

func TestBetray_FailureForfeitsAndHardensTarget(t *testing.T) {
	// Roll of 98 -> 99 against a chance of at most 80.
	service, heistRepo, accountRepo, progression, config, notifier := NewMock(t, 98)
	fixNow(service)
	cfg := settings.Default()
	config.EXPECT().Get(gomock.Any()).Return(&cfg, nil)

	heistRepo.EXPECT().GetByIDForUpdate(gomock.Any(), 1).Return(splittingHeist(1), nil)
	heistRepo.EXPECT().LockPair(gomock.Any(), 1, int64(42), int64(43)).Return([]domain.HeistParticipant{
		{HeistID: 1, AccountID: 42, CurrentShare: 200, DefenseBonus: 0},
		{HeistID: 1, AccountID: 43, CurrentShare: 300, DefenseBonus: 10},
	}, nil)
	accountRepo.EXPECT().Get(gomock.Any(), int64(42)).Return(&domain.Account{ID: 42, SkillBetray: 2}, nil)
	accountRepo.EXPECT().IncrementCounter(gomock.Any(), int64(42), domain.CounterHeistBetrayAttempts, 1).Return(nil)

	// 10% of the attacker's 200 compensates the target, whose defense grows.
	heistRepo.EXPECT().UpdateParticipant(gomock.Any(), 1, int64(42), 180.0, 0).Return(nil)
	heistRepo.EXPECT().UpdateParticipant(gomock.Any(), 1, int64(43), 320.0, 20).Return(nil)
	heistRepo.EXPECT().SaveBetrayal(gomock.Any(), &domain.Betrayal{
		HeistID: 1, AttackerID: 42, TargetID: 43, Success: false, Amount: 20,
	}).Return(nil)
	progression.EXPECT().GrantExperience(gomock.Any(), int64(42), int64(cfg.BetrayExpFail)).Return(nil)
	notifier.EXPECT().NotifyAccount(gomock.Any(), int64(42), gomock.Any())
	notifier.EXPECT().NotifyAccount(gomock.Any(), int64(43), gomock.Any())

	result, err := service.Betray(context.Background(), 1, 42, 43)
	assert.NoError(t, err)
	assert.False(t, result.Success)
	assert.Equal(t, 20.0, result.Amount)
}

func TestBetray_Guards(t *testing.T) {
	t.Run("Betraying yourself is invalid", func(t *testing.T) {
		service, _, _, _, _, _ := NewMock(t)
		_, err := service.Betray(context.Background(), 1, 42, 42)
		assert.ErrorIs(t, err, domain.ErrValidation)
	})

	t.Run("Outside the splitting window", func(t *testing.T) {
		service, heistRepo, _, _, config, _ := NewMock(t)
		fixNow(service)
		cfg := settings.Default()
		config.EXPECT().Get(gomock.Any()).Return(&cfg, nil)
		heistRepo.EXPECT().GetByIDForUpdate(gomock.Any(), 1).Return(joiningHeist(1), nil)

		_, err := service.Betray(context.Background(), 1, 42, 43)
		assert.ErrorIs(t, err, domain.ErrStateConflict)
	})

	t.Run("Target not participating", func(t *testing.T) {
		service, heistRepo, _, _, config, _ := NewMock(t)
		fixNow(service)
		cfg := settings.Default()
		config.EXPECT().Get(gomock.Any()).Return(&cfg, nil)
		heistRepo.EXPECT().GetByIDForUpdate(gomock.Any(), 1).Return(splittingHeist(1), nil)
		heistRepo.EXPECT().LockPair(gomock.Any(), 1, int64(42), int64(43)).Return([]domain.HeistParticipant{
			{HeistID: 1, AccountID: 42, CurrentShare: 200},
		}, nil)

		_, err := service.Betray(context.Background(), 1, 42, 43)
		assert.ErrorIs(t, err, domain.ErrNotFound)
	})
}

func TestHandleJoinDeadline(t *testing.T) {
	t.Run("Stale timer is a no-op", func(t *testing.T) {
		service, heistRepo, _, _, _, _ := NewMock(t)
		fixNow(service)
		heistRepo.EXPECT().GetByIDForUpdate(gomock.Any(), 1).Return(splittingHeist(1), nil)

		assert.NoError(t, service.HandleJoinDeadline(context.Background(), 1))
	})

	t.Run("Nobody joined finishes the heist dry", func(t *testing.T) {
		service, heistRepo, _, _, _, notifier := NewMock(t)
		fixNow(service)
		heistRepo.EXPECT().GetByIDForUpdate(gomock.Any(), 1).Return(joiningHeist(1), nil)
		heistRepo.EXPECT().ListParticipantsForUpdate(gomock.Any(), 1).Return(nil, nil)
		heistRepo.EXPECT().AdvancePhase(gomock.Any(), 1, domain.PhaseJoining, domain.PhaseFinished).Return(true, nil)
		notifier.EXPECT().NotifyRoom(gomock.Any(), int64(-100), gomock.Any())

		assert.NoError(t, service.HandleJoinDeadline(context.Background(), 1))
	})

	t.Run("Sole participant keeps the whole pot", func(t *testing.T) {
		service, heistRepo, accountRepo, _, _, notifier := NewMock(t)
		fixNow(service)
		h := joiningHeist(1)
		h.Bonus = 1.5
		heistRepo.EXPECT().GetByIDForUpdate(gomock.Any(), 1).Return(h, nil)
		heistRepo.EXPECT().ListParticipantsForUpdate(gomock.Any(), 1).Return([]domain.HeistParticipant{
			{HeistID: 1, AccountID: 42},
		}, nil)
		accountRepo.EXPECT().CreditCash(gomock.Any(), int64(42), 100.0).Return(600.0, nil)
		accountRepo.EXPECT().AddHeistEarnings(gomock.Any(), int64(42), 100.0).Return(nil)
		accountRepo.EXPECT().CreditCrypto(gomock.Any(), int64(42), 1.5).Return(1.5, nil)
		heistRepo.EXPECT().DeleteParticipants(gomock.Any(), 1).Return(nil)
		heistRepo.EXPECT().AdvancePhase(gomock.Any(), 1, domain.PhaseJoining, domain.PhaseFinished).Return(true, nil)
		notifier.EXPECT().NotifyAccount(gomock.Any(), int64(42), gomock.Any())

		assert.NoError(t, service.HandleJoinDeadline(context.Background(), 1))
	})

	t.Run("A crew gets equal shares and a splitting window", func(t *testing.T) {
		service, heistRepo, _, _, _, notifier := NewMock(t)
		fixNow(service)
		h := joiningHeist(1)
		h.Bonus = 1.0
		heistRepo.EXPECT().GetByIDForUpdate(gomock.Any(), 1).Return(h, nil)
		heistRepo.EXPECT().ListParticipantsForUpdate(gomock.Any(), 1).Return([]domain.HeistParticipant{
			{HeistID: 1, AccountID: 42},
			{HeistID: 1, AccountID: 43},
			{HeistID: 1, AccountID: 44},
		}, nil)
		// 100 / 3 rounds to 33.33 per head, 1.0 bonus to 0.3333.
		heistRepo.EXPECT().SetAllShares(gomock.Any(), 1, 33.33, 0.3333).Return(nil)
		heistRepo.EXPECT().AdvancePhase(gomock.Any(), 1, domain.PhaseJoining, domain.PhaseSplitting).Return(true, nil)
		notifier.EXPECT().NotifyRoom(gomock.Any(), int64(-100), gomock.Any())

		assert.NoError(t, service.HandleJoinDeadline(context.Background(), 1))
	})
}

func TestHandleSplitDeadline(t *testing.T) {
	t.Run("Stale timer is a no-op", func(t *testing.T) {
		service, heistRepo, _, _, _, _ := NewMock(t)
		fixNow(service)
		h := splittingHeist(1)
		h.Phase = domain.PhaseFinished
		heistRepo.EXPECT().GetByIDForUpdate(gomock.Any(), 1).Return(h, nil)

		assert.NoError(t, service.HandleSplitDeadline(context.Background(), 1))
	})

	t.Run("Rounding drift lands on the lowest account id", func(t *testing.T) {
		service, heistRepo, accountRepo, _, _, notifier := NewMock(t)
		fixNow(service)
		heistRepo.EXPECT().GetByIDForUpdate(gomock.Any(), 1).Return(splittingHeist(1), nil)
		heistRepo.EXPECT().ListParticipantsForUpdate(gomock.Any(), 1).Return([]domain.HeistParticipant{
			{HeistID: 1, AccountID: 42, CurrentShare: 33.33},
			{HeistID: 1, AccountID: 43, CurrentShare: 33.33},
			{HeistID: 1, AccountID: 44, CurrentShare: 33.33},
		}, nil)

		// Shares sum to 99.99 against a pot of 100; the 0.01 goes to 42.
		accountRepo.EXPECT().CreditCash(gomock.Any(), int64(42), 33.34).Return(533.34, nil)
		accountRepo.EXPECT().AddHeistEarnings(gomock.Any(), int64(42), 33.34).Return(nil)
		accountRepo.EXPECT().CreditCash(gomock.Any(), int64(43), 33.33).Return(533.33, nil)
		accountRepo.EXPECT().AddHeistEarnings(gomock.Any(), int64(43), 33.33).Return(nil)
		accountRepo.EXPECT().CreditCash(gomock.Any(), int64(44), 33.33).Return(533.33, nil)
		accountRepo.EXPECT().AddHeistEarnings(gomock.Any(), int64(44), 33.33).Return(nil)
		notifier.EXPECT().NotifyAccount(gomock.Any(), gomock.Any(), gomock.Any()).Times(3)

		heistRepo.EXPECT().DeleteParticipants(gomock.Any(), 1).Return(nil)
		heistRepo.EXPECT().AdvancePhase(gomock.Any(), 1, domain.PhaseSplitting, domain.PhaseFinished).Return(true, nil)

		assert.NoError(t, service.HandleSplitDeadline(context.Background(), 1))
	})
}

func TestGetStatus(t *testing.T) {
	t.Run("Unknown heist", func(t *testing.T) {
		service, heistRepo, _, _, _, _ := NewMock(t)
		heistRepo.EXPECT().GetByID(gomock.Any(), 9).Return(nil, nil)

		_, err := service.GetStatus(context.Background(), 9)
		assert.ErrorIs(t, err, domain.ErrNotFound)
	})

	t.Run("Returns heist with participants and betrayals", func(t *testing.T) {
		service, heistRepo, _, _, _, _ := NewMock(t)
		heistRepo.EXPECT().GetByID(gomock.Any(), 1).Return(splittingHeist(1), nil)
		heistRepo.EXPECT().ListParticipants(gomock.Any(), 1).Return([]domain.HeistParticipant{
			{HeistID: 1, AccountID: 42, CurrentShare: 50},
		}, nil)
		heistRepo.EXPECT().ListBetrayals(gomock.Any(), 1).Return([]domain.Betrayal{
			{HeistID: 1, AttackerID: 42, TargetID: 43, Success: true, Amount: 15},
		}, nil)

		status, err := service.GetStatus(context.Background(), 1)
		assert.NoError(t, err)
		assert.Len(t, status.Participants, 1)
		assert.Len(t, status.Betrayals, 1)
	})
}
