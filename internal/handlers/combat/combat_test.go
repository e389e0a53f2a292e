package combat

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"

	"github.com/streetwars/economy/internal/domain"
	"github.com/streetwars/economy/internal/dto"
	combatservice "github.com/streetwars/economy/internal/service/combatservice"
)

func NewMock(t *testing.T) (*CombatHandler, *MockService) {
	ctrl := gomock.NewController(t)
	service := NewMockService(ctrl)
	handler := New(service)
	defer ctrl.Finish()
	return handler, service
}

func TestAttemptTheftHandler(t *testing.T) {
	handler, service := NewMock(t)

	tests := []struct {
		name         string
		body         string
		prepareMock  func()
		expectedCode int
		expectedBody dto.TheftResponseDTO
	}{
		{
			name: "Successful theft",
			body: `{"attacker_id":1,"victim_id":2,"upfront_cost":10}`,
			prepareMock: func() {
				service.EXPECT().CooldownRemaining(gomock.Any(), int64(1)).Return(time.Duration(0), nil)
				service.EXPECT().AttemptTheft(gomock.Any(), int64(1), int64(2), 10.0).
					Return(&combatservice.Outcome{Result: combatservice.ResultStolen, Amount: 25}, nil)
			},
			expectedCode: http.StatusOK,
			expectedBody: dto.TheftResponseDTO{Result: "stolen", Amount: 25},
		},
		{
			name: "Attempt while cooling down conflicts",
			body: `{"attacker_id":1,"victim_id":2}`,
			prepareMock: func() {
				service.EXPECT().CooldownRemaining(gomock.Any(), int64(1)).Return(30*time.Minute, nil)
			},
			expectedCode: http.StatusConflict,
		},
		{
			name: "Upfront cost not covered",
			body: `{"attacker_id":1,"victim_id":2,"upfront_cost":1000}`,
			prepareMock: func() {
				service.EXPECT().CooldownRemaining(gomock.Any(), int64(1)).Return(time.Duration(0), nil)
				service.EXPECT().AttemptTheft(gomock.Any(), int64(1), int64(2), 1000.0).
					Return(nil, domain.ErrInsufficientFunds)
			},
			expectedCode: http.StatusPaymentRequired,
		},
		{
			name: "Self-theft is invalid",
			body: `{"attacker_id":1,"victim_id":1}`,
			prepareMock: func() {
				service.EXPECT().CooldownRemaining(gomock.Any(), int64(1)).Return(time.Duration(0), nil)
				service.EXPECT().AttemptTheft(gomock.Any(), int64(1), int64(1), 0.0).
					Return(nil, domain.ErrValidation)
			},
			expectedCode: http.StatusBadRequest,
		},
		{
			name:         "Invalid request body",
			body:         `{"attacker_id":invalid}`,
			prepareMock:  func() {},
			expectedCode: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()
			r := httptest.NewRequest(http.MethodPost, "/combat/theft", bytes.NewBufferString(tt.body))
			w := httptest.NewRecorder()

			handler.AttemptTheft(w, r)
			assert.Equal(t, tt.expectedCode, w.Code)
			if tt.expectedCode == http.StatusOK {
				var body dto.TheftResponseDTO
				_ = json.NewDecoder(w.Body).Decode(&body)
				assert.Equal(t, tt.expectedBody, body)
			}
		})
	}
}

func TestGetCooldownHandler(t *testing.T) {
	handler, service := NewMock(t)

	t.Run("Reports remaining seconds", func(t *testing.T) {
		service.EXPECT().CooldownRemaining(gomock.Any(), int64(1)).Return(90*time.Second, nil)

		rctx := chi.NewRouteContext()
		rctx.URLParams.Add("accountID", "1")
		r := httptest.NewRequest(http.MethodGet, "/combat/cooldown/1", nil)
		r = r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
		w := httptest.NewRecorder()

		handler.GetCooldown(w, r)
		assert.Equal(t, http.StatusOK, w.Code)

		var body dto.CooldownResponseDTO
		_ = json.NewDecoder(w.Body).Decode(&body)
		assert.Equal(t, int64(90), body.RemainingSeconds)
	})

	t.Run("Invalid account id", func(t *testing.T) {
		rctx := chi.NewRouteContext()
		rctx.URLParams.Add("accountID", "abc")
		r := httptest.NewRequest(http.MethodGet, "/combat/cooldown/abc", nil)
		r = r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
		w := httptest.NewRecorder()

		handler.GetCooldown(w, r)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}
