package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"

	_ "github.com/streetwars/economy/docs"
	"github.com/streetwars/economy/internal/handlers/admin"
	"github.com/streetwars/economy/internal/handlers/combat"
	"github.com/streetwars/economy/internal/handlers/exchange"
	"github.com/streetwars/economy/internal/handlers/ledger"
	"github.com/streetwars/economy/internal/service"
)

func TestNew(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	services := &service.Services{
		LedgerService:   ledger.NewMockService(ctrl),
		ExchangeService: exchange.NewMockService(ctrl),
		CombatService:   combat.NewMockService(ctrl),
		SettingsService: admin.NewMockService(ctrl),
	}

	h := New(services)
	assert.NotNil(t, h, "Handlers should not be nil")
}

func TestInitRoutes(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockLedger := NewMockLedgerHandler(ctrl)
	mockExchange := NewMockExchangeHandler(ctrl)
	mockHeist := NewMockHeistHandler(ctrl)
	mockCombat := NewMockCombatHandler(ctrl)
	mockAdmin := NewMockAdminHandler(ctrl)

	mockLedger.EXPECT().EnsureAccount(gomock.Any(), gomock.Any()).AnyTimes()
	mockLedger.EXPECT().GetBalance(gomock.Any(), gomock.Any()).AnyTimes()
	mockLedger.EXPECT().CreditCash(gomock.Any(), gomock.Any()).AnyTimes()
	mockLedger.EXPECT().DebitCash(gomock.Any(), gomock.Any()).AnyTimes()
	mockLedger.EXPECT().CreditCrypto(gomock.Any(), gomock.Any()).AnyTimes()
	mockLedger.EXPECT().DebitCrypto(gomock.Any(), gomock.Any()).AnyTimes()
	mockLedger.EXPECT().AdjustReputation(gomock.Any(), gomock.Any()).AnyTimes()
	mockLedger.EXPECT().AdjustSkill(gomock.Any(), gomock.Any()).AnyTimes()
	mockLedger.EXPECT().GrantExperience(gomock.Any(), gomock.Any()).AnyTimes()
	mockExchange.EXPECT().SubmitOrder(gomock.Any(), gomock.Any()).AnyTimes()
	mockExchange.EXPECT().CancelOrder(gomock.Any(), gomock.Any()).AnyTimes()
	mockExchange.EXPECT().GetOrders(gomock.Any(), gomock.Any()).AnyTimes()
	mockExchange.EXPECT().TakeAtPrice(gomock.Any(), gomock.Any()).AnyTimes()
	mockExchange.EXPECT().GetOrderBook(gomock.Any(), gomock.Any()).AnyTimes()
	mockHeist.EXPECT().Spawn(gomock.Any(), gomock.Any()).AnyTimes()
	mockHeist.EXPECT().GetStatus(gomock.Any(), gomock.Any()).AnyTimes()
	mockHeist.EXPECT().Join(gomock.Any(), gomock.Any()).AnyTimes()
	mockHeist.EXPECT().Betray(gomock.Any(), gomock.Any()).AnyTimes()
	mockCombat.EXPECT().AttemptTheft(gomock.Any(), gomock.Any()).AnyTimes()
	mockCombat.EXPECT().GetCooldown(gomock.Any(), gomock.Any()).AnyTimes()
	mockAdmin.EXPECT().GetSettings(gomock.Any(), gomock.Any()).AnyTimes()
	mockAdmin.EXPECT().SetSetting(gomock.Any(), gomock.Any()).AnyTimes()

	h := &Handlers{
		LedgerHandler:   mockLedger,
		ExchangeHandler: mockExchange,
		HeistHandler:    mockHeist,
		CombatHandler:   mockCombat,
		AdminHandler:    mockAdmin,
	}

	router := chi.NewRouter()
	h.InitRoutes(router)

	tests := []struct {
		method string
		url    string
	}{
		{"POST", "/api/accounts"},
		{"GET", "/api/accounts/1"},
		{"POST", "/api/accounts/1/cash/credit"},
		{"POST", "/api/accounts/1/cash/debit"},
		{"POST", "/api/accounts/1/crypto/credit"},
		{"POST", "/api/accounts/1/crypto/debit"},
		{"POST", "/api/accounts/1/reputation"},
		{"POST", "/api/accounts/1/skills"},
		{"POST", "/api/accounts/1/experience"},
		{"POST", "/api/exchange/orders"},
		{"DELETE", "/api/exchange/orders/5"},
		{"GET", "/api/exchange/orders/account/1"},
		{"POST", "/api/exchange/take"},
		{"GET", "/api/exchange/book"},
		{"POST", "/api/heists"},
		{"GET", "/api/heists/1"},
		{"POST", "/api/heists/1/join"},
		{"POST", "/api/heists/1/betray"},
		{"POST", "/api/combat/theft"},
		{"GET", "/api/combat/cooldown/1"},
		{"GET", "/api/admin/settings"},
		{"POST", "/api/admin/settings"},
	}

	for _, tt := range tests {
		t.Run(tt.method+" "+tt.url, func(t *testing.T) {
			req := httptest.NewRequest(tt.method, tt.url, nil)
			rec := httptest.NewRecorder()

			router.ServeHTTP(rec, req)

			assert.Equal(t, http.StatusOK, rec.Code)
		})
	}
}
