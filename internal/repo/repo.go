package repo

import (
	"github.com/streetwars/economy/internal/pg"
	accountrepo "github.com/streetwars/economy/internal/repo/account-repo"
	heistrepo "github.com/streetwars/economy/internal/repo/heist-repo"
	orderrepo "github.com/streetwars/economy/internal/repo/order-repo"
	settingsrepo "github.com/streetwars/economy/internal/repo/settings-repo"
)

// Repositories exposes the concrete stores; each service narrows them to
// its own consumer interface.
type Repositories struct {
	AccountRepo  *accountrepo.Repository
	OrderRepo    *orderrepo.Repository
	HeistRepo    *heistrepo.Repository
	SettingsRepo *settingsrepo.Repository
}

func New(conn pg.Database, txManager pg.TXManager) *Repositories {
	accountRepo := accountrepo.New(conn, txManager)
	orderRepo := orderrepo.New(conn, txManager)
	heistRepo := heistrepo.New(conn, txManager)
	settingsRepo := settingsrepo.New(conn)

	return &Repositories{
		AccountRepo:  accountRepo,
		OrderRepo:    orderRepo,
		HeistRepo:    heistRepo,
		SettingsRepo: settingsRepo,
	}
}
