package ledger

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"

	"github.com/streetwars/economy/internal/domain"
	"github.com/streetwars/economy/internal/dto"
)

func NewMock(t *testing.T) (*LedgerHandler, *MockService) {
	ctrl := gomock.NewController(t)
	service := NewMockService(ctrl)
	handler := New(service)
	defer ctrl.Finish()
	return handler, service
}

func withAccountID(r *http.Request, id string) *http.Request {
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add("accountID", id)
	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
}

func TestEnsureAccountHandler(t *testing.T) {
	handler, service := NewMock(t)

	tests := []struct {
		name         string
		body         string
		prepareMock  func()
		expectedCode int
	}{
		{
			name: "Successful ensure",
			body: `{"account_id":1,"username":"vinny"}`,
			prepareMock: func() {
				service.EXPECT().EnsureAccount(gomock.Any(), int64(1), "vinny").
					Return(&domain.Account{ID: 1, Username: "vinny", Cash: 500}, nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name:         "Invalid request body",
			body:         `{"account_id":invalid}`,
			prepareMock:  func() {},
			expectedCode: http.StatusBadRequest,
		},
		{
			name: "Internal server error",
			body: `{"account_id":1,"username":"vinny"}`,
			prepareMock: func() {
				service.EXPECT().EnsureAccount(gomock.Any(), int64(1), "vinny").
					Return(nil, errors.New("error"))
			},
			expectedCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()
			r := httptest.NewRequest(http.MethodPost, "/accounts", bytes.NewBufferString(tt.body))
			w := httptest.NewRecorder()

			handler.EnsureAccount(w, r)
			assert.Equal(t, tt.expectedCode, w.Code)
		})
	}
}

func TestGetBalanceHandler(t *testing.T) {
	handler, service := NewMock(t)

	tests := []struct {
		name         string
		accountID    string
		prepareMock  func()
		expectedCode int
		expectedBody dto.BalanceResponseDTO
	}{
		{
			name:      "Successful retrieval",
			accountID: "1",
			prepareMock: func() {
				service.EXPECT().GetBalance(gomock.Any(), int64(1)).
					Return(&domain.Account{ID: 1, Username: "vinny", Cash: 500, Debt: 25, Crypto: 0.5, Reputation: 3, Exp: 40, Level: 2}, nil)
			},
			expectedCode: http.StatusOK,
			expectedBody: dto.BalanceResponseDTO{
				AccountID: 1, Username: "vinny", Cash: 500, Debt: 25, Crypto: 0.5, Reputation: 3, Exp: 40, Level: 2,
			},
		},
		{
			name:         "Invalid account id",
			accountID:    "abc",
			prepareMock:  func() {},
			expectedCode: http.StatusBadRequest,
		},
		{
			name:      "Account not found",
			accountID: "99",
			prepareMock: func() {
				service.EXPECT().GetBalance(gomock.Any(), int64(99)).
					Return(nil, domain.ErrNotFound)
			},
			expectedCode: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()
			r := withAccountID(httptest.NewRequest(http.MethodGet, "/accounts/"+tt.accountID, nil), tt.accountID)
			w := httptest.NewRecorder()

			handler.GetBalance(w, r)
			assert.Equal(t, tt.expectedCode, w.Code)
			if tt.expectedCode == http.StatusOK {
				var body dto.BalanceResponseDTO
				_ = json.NewDecoder(w.Body).Decode(&body)
				assert.Equal(t, tt.expectedBody, body)
			}
		})
	}
}

func TestDebitCashHandler(t *testing.T) {
	handler, service := NewMock(t)

	tests := []struct {
		name         string
		body         string
		prepareMock  func()
		expectedCode int
		expectedBody dto.CashResponseDTO
	}{
		{
			name: "Covered debit",
			body: `{"amount":100}`,
			prepareMock: func() {
				service.EXPECT().DebitCash(gomock.Any(), int64(1), 100.0).Return(400.0, 0.0, nil)
			},
			expectedCode: http.StatusOK,
			expectedBody: dto.CashResponseDTO{Cash: 400},
		},
		{
			name: "Shortfall reports the accrued debt",
			body: `{"amount":600}`,
			prepareMock: func() {
				service.EXPECT().DebitCash(gomock.Any(), int64(1), 600.0).Return(0.0, 100.0, nil)
			},
			expectedCode: http.StatusOK,
			expectedBody: dto.CashResponseDTO{Cash: 0, Debt: 100},
		},
		{
			name: "Invalid amount",
			body: `{"amount":0}`,
			prepareMock: func() {
				service.EXPECT().DebitCash(gomock.Any(), int64(1), 0.0).Return(0.0, 0.0, domain.ErrValidation)
			},
			expectedCode: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()
			r := withAccountID(httptest.NewRequest(http.MethodPost, "/accounts/1/cash/debit", bytes.NewBufferString(tt.body)), "1")
			w := httptest.NewRecorder()

			handler.DebitCash(w, r)
			assert.Equal(t, tt.expectedCode, w.Code)
			if tt.expectedCode == http.StatusOK {
				var body dto.CashResponseDTO
				_ = json.NewDecoder(w.Body).Decode(&body)
				assert.Equal(t, tt.expectedBody, body)
			}
		})
	}
}

func TestDebitCryptoHandler(t *testing.T) {
	handler, service := NewMock(t)

	t.Run("Shortfall maps to payment required", func(t *testing.T) {
		service.EXPECT().DebitCrypto(gomock.Any(), int64(1), 5.0).Return(0.0, domain.ErrInsufficientFunds)

		r := withAccountID(httptest.NewRequest(http.MethodPost, "/accounts/1/crypto/debit", bytes.NewBufferString(`{"amount":5}`)), "1")
		w := httptest.NewRecorder()

		handler.DebitCrypto(w, r)
		assert.Equal(t, http.StatusPaymentRequired, w.Code)
	})
}

func TestAdjustSkillHandler(t *testing.T) {
	handler, service := NewMock(t)

	t.Run("Known skill", func(t *testing.T) {
		service.EXPECT().AdjustSkill(gomock.Any(), int64(1), domain.SkillBetray, 1).Return(3, nil)

		r := withAccountID(httptest.NewRequest(http.MethodPost, "/accounts/1/skills", bytes.NewBufferString(`{"skill":"betray","delta":1}`)), "1")
		w := httptest.NewRecorder()

		handler.AdjustSkill(w, r)
		assert.Equal(t, http.StatusOK, w.Code)

		var body dto.SkillResponseDTO
		_ = json.NewDecoder(w.Body).Decode(&body)
		assert.Equal(t, dto.SkillResponseDTO{Skill: "betray", Value: 3}, body)
	})

	t.Run("Unknown skill", func(t *testing.T) {
		r := withAccountID(httptest.NewRequest(http.MethodPost, "/accounts/1/skills", bytes.NewBufferString(`{"skill":"charm","delta":1}`)), "1")
		w := httptest.NewRecorder()

		handler.AdjustSkill(w, r)
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "unknown skill")
	})
}

func TestGrantExperienceHandler(t *testing.T) {
	handler, service := NewMock(t)

	service.EXPECT().GrantExperience(gomock.Any(), int64(1), int64(120)).Return(nil)
	service.EXPECT().GetBalance(gomock.Any(), int64(1)).
		Return(&domain.Account{ID: 1, Username: "vinny", Cash: 550, Exp: 20, Level: 2}, nil)

	r := withAccountID(httptest.NewRequest(http.MethodPost, "/accounts/1/experience", bytes.NewBufferString(`{"amount":120}`)), "1")
	w := httptest.NewRecorder()

	handler.GrantExperience(w, r)
	assert.Equal(t, http.StatusOK, w.Code)

	var body dto.BalanceResponseDTO
	_ = json.NewDecoder(w.Body).Decode(&body)
	assert.Equal(t, int64(20), body.Exp)
	assert.Equal(t, 2, body.Level)
}
