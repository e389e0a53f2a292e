package progressionservice

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"

	"github.com/streetwars/economy/internal/domain"
	"github.com/streetwars/economy/internal/notify"
	"github.com/streetwars/economy/internal/pg"
	"github.com/streetwars/economy/internal/settings"
)

func NewMock(t *testing.T) (*Service, *MockAccountRepo, *MockSettingsProvider, *pg.MockTXManager) {
	ctrl := gomock.NewController(t)
	accountRepo := NewMockAccountRepo(ctrl)
	config := NewMockSettingsProvider(ctrl)
	txManager := pg.NewMockTXManager(ctrl)
	service := New(accountRepo, config, txManager, notify.NewLogNotifier())
	defer ctrl.Finish()
	return service, accountRepo, config, txManager
}

func passThroughTx(txManager *pg.MockTXManager) {
	txManager.EXPECT().Begin(gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, fn pg.TransactionalFn) error {
			return fn(ctx)
		},
	)
}

func TestGrantExperience(t *testing.T) {
	cfg := settings.Default()

	tests := []struct {
		name        string
		accountID   int64
		amount      int64
		prepareMock func(accountRepo *MockAccountRepo, config *MockSettingsProvider, txManager *pg.MockTXManager)
		expectedErr error
	}{
		{
			name:        "Zero amount is a no-op",
			accountID:   1,
			amount:      0,
			prepareMock: func(*MockAccountRepo, *MockSettingsProvider, *pg.MockTXManager) {},
		},
		{
			name:      "No threshold crossed",
			accountID: 1,
			amount:    50,
			prepareMock: func(accountRepo *MockAccountRepo, config *MockSettingsProvider, txManager *pg.MockTXManager) {
				config.EXPECT().Get(gomock.Any()).Return(&cfg, nil)
				passThroughTx(txManager)
				accountRepo.EXPECT().GetForUpdate(gomock.Any(), int64(1)).Return(&domain.Account{
					ID: 1, Exp: 10, Level: 1, Strength: 1, Agility: 1, Defense: 1,
				}, nil)
				accountRepo.EXPECT().UpdateProgress(gomock.Any(), int64(1), int64(60), 1, 1, 1, 1).Return(nil)
			},
		},
		{
			name:      "Single level-up pays the reward",
			accountID: 1,
			amount:    30,
			prepareMock: func(accountRepo *MockAccountRepo, config *MockSettingsProvider, txManager *pg.MockTXManager) {
				config.EXPECT().Get(gomock.Any()).Return(&cfg, nil)
				passThroughTx(txManager)
				accountRepo.EXPECT().GetForUpdate(gomock.Any(), int64(1)).Return(&domain.Account{
					ID: 1, Exp: 80, Level: 1, Strength: 1, Agility: 1, Defense: 1,
				}, nil)
				// 110 exp crosses the level-1 threshold of 100: level 2, 10 exp left.
				accountRepo.EXPECT().UpdateProgress(gomock.Any(), int64(1), int64(10), 2, 2, 2, 2).Return(nil)
				accountRepo.EXPECT().CreditCash(gomock.Any(), int64(1), cfg.LevelRewardCash).Return(550.0, nil)
				accountRepo.EXPECT().AdjustReputation(gomock.Any(), int64(1), cfg.LevelRewardReputation).Return(1, nil)
			},
		},
		{
			name:      "Cascade crosses two levels and pays each",
			accountID: 1,
			amount:    350,
			prepareMock: func(accountRepo *MockAccountRepo, config *MockSettingsProvider, txManager *pg.MockTXManager) {
				config.EXPECT().Get(gomock.Any()).Return(&cfg, nil)
				passThroughTx(txManager)
				accountRepo.EXPECT().GetForUpdate(gomock.Any(), int64(1)).Return(&domain.Account{
					ID: 1, Exp: 0, Level: 1, Strength: 1, Agility: 1, Defense: 1,
				}, nil)
				// 350 exp: level 1 costs 100, level 2 costs 200, 50 left at level 3.
				accountRepo.EXPECT().UpdateProgress(gomock.Any(), int64(1), int64(50), 3, 3, 3, 3).Return(nil)
				accountRepo.EXPECT().CreditCash(gomock.Any(), int64(1), cfg.LevelRewardCash).Return(550.0, nil).Times(2)
				accountRepo.EXPECT().AdjustReputation(gomock.Any(), int64(1), cfg.LevelRewardReputation).Return(1, nil).Times(2)
			},
		},
		{
			name:      "Unknown account",
			accountID: 99,
			amount:    10,
			prepareMock: func(accountRepo *MockAccountRepo, config *MockSettingsProvider, txManager *pg.MockTXManager) {
				config.EXPECT().Get(gomock.Any()).Return(&cfg, nil)
				passThroughTx(txManager)
				accountRepo.EXPECT().GetForUpdate(gomock.Any(), int64(99)).Return(nil, nil)
			},
			expectedErr: domain.ErrNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, accountRepo, config, txManager := NewMock(t)
			tt.prepareMock(accountRepo, config, txManager)

			err := service.GrantExperience(context.Background(), tt.accountID, tt.amount)
			if tt.expectedErr != nil {
				assert.ErrorIs(t, err, tt.expectedErr)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestGrantExperience_RewardFailureRollsBack(t *testing.T) {
	service, accountRepo, config, txManager := NewMock(t)
	cfg := settings.Default()

	config.EXPECT().Get(gomock.Any()).Return(&cfg, nil)
	passThroughTx(txManager)
	accountRepo.EXPECT().GetForUpdate(gomock.Any(), int64(1)).Return(&domain.Account{
		ID: 1, Exp: 90, Level: 1, Strength: 1, Agility: 1, Defense: 1,
	}, nil)
	accountRepo.EXPECT().UpdateProgress(gomock.Any(), int64(1), int64(0), 2, 2, 2, 2).Return(nil)
	accountRepo.EXPECT().CreditCash(gomock.Any(), int64(1), cfg.LevelRewardCash).Return(0.0, errors.New("db error"))

	err := service.GrantExperience(context.Background(), 1, 10)
	assert.Error(t, err)
}
