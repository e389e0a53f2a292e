package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"

	_ "github.com/streetwars/economy/docs"
	adminhandlers "github.com/streetwars/economy/internal/handlers/admin"
	combathandlers "github.com/streetwars/economy/internal/handlers/combat"
	exchangehandlers "github.com/streetwars/economy/internal/handlers/exchange"
	heisthandlers "github.com/streetwars/economy/internal/handlers/heist"
	ledgerhandlers "github.com/streetwars/economy/internal/handlers/ledger"
	"github.com/streetwars/economy/internal/service"
)

//go:generate mockgen -source=handlers.go -destination=mock_handlers.go -package=handlers

type LedgerHandler interface {
	EnsureAccount(w http.ResponseWriter, r *http.Request)
	GetBalance(w http.ResponseWriter, r *http.Request)
	CreditCash(w http.ResponseWriter, r *http.Request)
	DebitCash(w http.ResponseWriter, r *http.Request)
	CreditCrypto(w http.ResponseWriter, r *http.Request)
	DebitCrypto(w http.ResponseWriter, r *http.Request)
	AdjustReputation(w http.ResponseWriter, r *http.Request)
	AdjustSkill(w http.ResponseWriter, r *http.Request)
	GrantExperience(w http.ResponseWriter, r *http.Request)
}

type ExchangeHandler interface {
	SubmitOrder(w http.ResponseWriter, r *http.Request)
	TakeAtPrice(w http.ResponseWriter, r *http.Request)
	CancelOrder(w http.ResponseWriter, r *http.Request)
	GetOrderBook(w http.ResponseWriter, r *http.Request)
	GetOrders(w http.ResponseWriter, r *http.Request)
}

type HeistHandler interface {
	Spawn(w http.ResponseWriter, r *http.Request)
	Join(w http.ResponseWriter, r *http.Request)
	Betray(w http.ResponseWriter, r *http.Request)
	GetStatus(w http.ResponseWriter, r *http.Request)
}

type CombatHandler interface {
	AttemptTheft(w http.ResponseWriter, r *http.Request)
	GetCooldown(w http.ResponseWriter, r *http.Request)
}

type AdminHandler interface {
	GetSettings(w http.ResponseWriter, r *http.Request)
	SetSetting(w http.ResponseWriter, r *http.Request)
}

type Handlers struct {
	LedgerHandler   LedgerHandler
	ExchangeHandler ExchangeHandler
	HeistHandler    HeistHandler
	CombatHandler   CombatHandler
	AdminHandler    AdminHandler
}

func New(s *service.Services) *Handlers {
	return &Handlers{
		LedgerHandler:   ledgerhandlers.New(s.LedgerService),
		ExchangeHandler: exchangehandlers.New(s.ExchangeService),
		HeistHandler:    heisthandlers.New(s.HeistService),
		CombatHandler:   combathandlers.New(s.CombatService),
		AdminHandler:    adminhandlers.New(s.SettingsService),
	}
}

func (h *Handlers) InitRoutes(r chi.Router) chi.Router {
	r.Use(
		middleware.RealIP,
		middleware.Recoverer,
		middleware.Logger,
	)
	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("doc.json"),
	))
	r.Route("/api", func(r chi.Router) {
		r.Route("/accounts", func(r chi.Router) {
			r.Post("/", h.LedgerHandler.EnsureAccount)
			r.Route("/{accountID}", func(r chi.Router) {
				r.Get("/", h.LedgerHandler.GetBalance)
				r.Post("/cash/credit", h.LedgerHandler.CreditCash)
				r.Post("/cash/debit", h.LedgerHandler.DebitCash)
				r.Post("/crypto/credit", h.LedgerHandler.CreditCrypto)
				r.Post("/crypto/debit", h.LedgerHandler.DebitCrypto)
				r.Post("/reputation", h.LedgerHandler.AdjustReputation)
				r.Post("/skills", h.LedgerHandler.AdjustSkill)
				r.Post("/experience", h.LedgerHandler.GrantExperience)
			})
		})
		r.Route("/exchange", func(r chi.Router) {
			r.Post("/orders", h.ExchangeHandler.SubmitOrder)
			r.Delete("/orders/{orderID}", h.ExchangeHandler.CancelOrder)
			r.Get("/orders/account/{accountID}", h.ExchangeHandler.GetOrders)
			r.Post("/take", h.ExchangeHandler.TakeAtPrice)
			r.Get("/book", h.ExchangeHandler.GetOrderBook)
		})
		r.Route("/heists", func(r chi.Router) {
			r.Post("/", h.HeistHandler.Spawn)
			r.Route("/{heistID}", func(r chi.Router) {
				r.Get("/", h.HeistHandler.GetStatus)
				r.Post("/join", h.HeistHandler.Join)
				r.Post("/betray", h.HeistHandler.Betray)
			})
		})
		r.Route("/combat", func(r chi.Router) {
			r.Post("/theft", h.CombatHandler.AttemptTheft)
			r.Get("/cooldown/{accountID}", h.CombatHandler.GetCooldown)
		})
		r.Route("/admin", func(r chi.Router) {
			r.Get("/settings", h.AdminHandler.GetSettings)
			r.Post("/settings", h.AdminHandler.SetSetting)
		})
	})

	return r
}
