package service

import (
	"github.com/streetwars/economy/internal/handlers/admin"
	"github.com/streetwars/economy/internal/handlers/combat"
	"github.com/streetwars/economy/internal/handlers/exchange"
	"github.com/streetwars/economy/internal/handlers/ledger"

	"github.com/streetwars/economy/internal/notify"
	"github.com/streetwars/economy/internal/pg"
	"github.com/streetwars/economy/internal/repo"
	combatservice "github.com/streetwars/economy/internal/service/combatservice"
	exchangeservice "github.com/streetwars/economy/internal/service/exchangeservice"
	heistservice "github.com/streetwars/economy/internal/service/heistservice"
	ledgerservice "github.com/streetwars/economy/internal/service/ledgerservice"
	progressionservice "github.com/streetwars/economy/internal/service/progressionservice"
	"github.com/streetwars/economy/internal/settings"
	"github.com/streetwars/economy/pkg/rng"
)

type Services struct {
	LedgerService   ledger.Service
	ExchangeService exchange.Service
	CombatService   combat.Service
	SettingsService admin.Service

	// HeistService is kept concrete: the app starts and stops its
	// deadline scheduler.
	HeistService *heistservice.Service
}

func New(repo *repo.Repositories, settingsService *settings.Service, txManager pg.TXManager, notifier notify.Notifier, rand rng.Rand) *Services {
	progressionService := progressionservice.New(repo.AccountRepo, settingsService, txManager, notifier)
	ledgerService := ledgerservice.New(repo.AccountRepo, progressionService, settingsService)
	exchangeService := exchangeservice.New(repo.OrderRepo, repo.AccountRepo, settingsService, txManager)
	heistService := heistservice.New(repo.HeistRepo, repo.AccountRepo, progressionService, settingsService, txManager, notifier, rand)
	combatService := combatservice.New(repo.AccountRepo, progressionService, settingsService, txManager, notifier, rand)

	return &Services{
		LedgerService:   ledgerService,
		ExchangeService: exchangeService,
		CombatService:   combatService,
		SettingsService: settingsService,
		HeistService:    heistService,
	}
}
