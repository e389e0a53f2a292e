package ledger

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/streetwars/economy/internal/domain"
	"github.com/streetwars/economy/internal/dto"
	"github.com/streetwars/economy/pkg/utils"
)

//go:generate mockgen -source=ledger.go -destination=mock_ledger.go -package=ledger

type Service interface {
	EnsureAccount(ctx context.Context, id int64, username string) (*domain.Account, error)
	GetBalance(ctx context.Context, id int64) (*domain.Account, error)
	CreditCash(ctx context.Context, id int64, amount float64) (float64, error)
	DebitCash(ctx context.Context, id int64, amount float64) (cash, debt float64, err error)
	CreditCrypto(ctx context.Context, id int64, amount float64) (float64, error)
	DebitCrypto(ctx context.Context, id int64, amount float64) (float64, error)
	AdjustReputation(ctx context.Context, id int64, delta int) (int, error)
	AdjustSkill(ctx context.Context, id int64, kind domain.SkillKind, delta int) (int, error)
	GrantExperience(ctx context.Context, id int64, amount int64) error
}

type LedgerHandler struct {
	ledgerService Service
}

func New(ledgerService Service) *LedgerHandler {
	return &LedgerHandler{
		ledgerService: ledgerService,
	}
}

// EnsureAccount godoc
//
//	@Summary		Ensure an account exists
//	@Description	Create the account with the starting cash balance if it does not exist yet; refresh the username if it does.
//	@Tags			Ledger
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.EnsureAccountRequestDTO	true	"Account identity"
//	@Success		200		{object}	dto.BalanceResponseDTO		"Current account state"
//	@Failure		400		{object}	utils.Response				"Invalid request"
//	@Failure		500		{object}	utils.Response				"Internal server error"
//	@Router			/api/accounts [post]
func (h *LedgerHandler) EnsureAccount(w http.ResponseWriter, r *http.Request) {
	var req dto.EnsureAccountRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	account, err := h.ledgerService.EnsureAccount(r.Context(), req.AccountID, req.Username)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, toBalanceDTO(account))
}

// GetBalance godoc
//
//	@Summary		Get account balances
//	@Description	Retrieve cash, debt, crypto, reputation and progression state for one account.
//	@Tags			Ledger
//	@Produce		json
//	@Param			accountID	path		int						true	"Account ID"
//	@Success		200			{object}	dto.BalanceResponseDTO	"Account state"
//	@Failure		404			{object}	utils.Response			"Account not found"
//	@Failure		500			{object}	utils.Response			"Internal server error"
//	@Router			/api/accounts/{accountID} [get]
func (h *LedgerHandler) GetBalance(w http.ResponseWriter, r *http.Request) {
	accountID, ok := accountIDParam(w, r)
	if !ok {
		return
	}

	account, err := h.ledgerService.GetBalance(r.Context(), accountID)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, toBalanceDTO(account))
}

// CreditCash godoc
//
//	@Summary		Credit cash
//	@Tags			Ledger
//	@Accept			json
//	@Produce		json
//	@Param			accountID	path		int						true	"Account ID"
//	@Param			request		body		dto.AmountRequestDTO	true	"Amount to credit"
//	@Success		200			{object}	dto.CashResponseDTO		"New cash balance"
//	@Failure		400			{object}	utils.Response			"Invalid amount"
//	@Failure		404			{object}	utils.Response			"Account not found"
//	@Failure		500			{object}	utils.Response			"Internal server error"
//	@Router			/api/accounts/{accountID}/cash/credit [post]
func (h *LedgerHandler) CreditCash(w http.ResponseWriter, r *http.Request) {
	accountID, ok := accountIDParam(w, r)
	if !ok {
		return
	}
	var req dto.AmountRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	cash, err := h.ledgerService.CreditCash(r.Context(), accountID, req.Amount)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.CashResponseDTO{Cash: cash})
}

// DebitCash godoc
//
//	@Summary		Debit cash
//	@Description	Debit cash from the account. A shortfall clamps cash to zero and accrues the remainder as debt.
//	@Tags			Ledger
//	@Accept			json
//	@Produce		json
//	@Param			accountID	path		int						true	"Account ID"
//	@Param			request		body		dto.AmountRequestDTO	true	"Amount to debit"
//	@Success		200			{object}	dto.CashResponseDTO		"New cash and debt balances"
//	@Failure		400			{object}	utils.Response			"Invalid amount"
//	@Failure		404			{object}	utils.Response			"Account not found"
//	@Failure		500			{object}	utils.Response			"Internal server error"
//	@Router			/api/accounts/{accountID}/cash/debit [post]
func (h *LedgerHandler) DebitCash(w http.ResponseWriter, r *http.Request) {
	accountID, ok := accountIDParam(w, r)
	if !ok {
		return
	}
	var req dto.AmountRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	cash, debt, err := h.ledgerService.DebitCash(r.Context(), accountID, req.Amount)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.CashResponseDTO{Cash: cash, Debt: debt})
}

// CreditCrypto godoc
//
//	@Summary		Credit crypto
//	@Tags			Ledger
//	@Accept			json
//	@Produce		json
//	@Param			accountID	path		int						true	"Account ID"
//	@Param			request		body		dto.AmountRequestDTO	true	"Amount to credit"
//	@Success		200			{object}	dto.CryptoResponseDTO	"New crypto balance"
//	@Failure		400			{object}	utils.Response			"Invalid amount"
//	@Failure		404			{object}	utils.Response			"Account not found"
//	@Failure		500			{object}	utils.Response			"Internal server error"
//	@Router			/api/accounts/{accountID}/crypto/credit [post]
func (h *LedgerHandler) CreditCrypto(w http.ResponseWriter, r *http.Request) {
	accountID, ok := accountIDParam(w, r)
	if !ok {
		return
	}
	var req dto.AmountRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	crypto, err := h.ledgerService.CreditCrypto(r.Context(), accountID, req.Amount)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.CryptoResponseDTO{Crypto: crypto})
}

// DebitCrypto godoc
//
//	@Summary		Debit crypto
//	@Description	Debit crypto from the account. Unlike cash, crypto never goes negative and a shortfall rejects the whole debit.
//	@Tags			Ledger
//	@Accept			json
//	@Produce		json
//	@Param			accountID	path		int						true	"Account ID"
//	@Param			request		body		dto.AmountRequestDTO	true	"Amount to debit"
//	@Success		200			{object}	dto.CryptoResponseDTO	"New crypto balance"
//	@Failure		400			{object}	utils.Response			"Invalid amount"
//	@Failure		402			{object}	utils.Response			"Insufficient crypto"
//	@Failure		404			{object}	utils.Response			"Account not found"
//	@Failure		500			{object}	utils.Response			"Internal server error"
//	@Router			/api/accounts/{accountID}/crypto/debit [post]
func (h *LedgerHandler) DebitCrypto(w http.ResponseWriter, r *http.Request) {
	accountID, ok := accountIDParam(w, r)
	if !ok {
		return
	}
	var req dto.AmountRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	crypto, err := h.ledgerService.DebitCrypto(r.Context(), accountID, req.Amount)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.CryptoResponseDTO{Crypto: crypto})
}

// AdjustReputation godoc
//
//	@Summary		Adjust reputation
//	@Tags			Ledger
//	@Accept			json
//	@Produce		json
//	@Param			accountID	path		int							true	"Account ID"
//	@Param			request		body		dto.ReputationRequestDTO	true	"Signed delta"
//	@Success		200			{object}	dto.ReputationResponseDTO	"New reputation"
//	@Failure		404			{object}	utils.Response				"Account not found"
//	@Failure		500			{object}	utils.Response				"Internal server error"
//	@Router			/api/accounts/{accountID}/reputation [post]
func (h *LedgerHandler) AdjustReputation(w http.ResponseWriter, r *http.Request) {
	accountID, ok := accountIDParam(w, r)
	if !ok {
		return
	}
	var req dto.ReputationRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	reputation, err := h.ledgerService.AdjustReputation(r.Context(), accountID, req.Delta)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.ReputationResponseDTO{Reputation: reputation})
}

// AdjustSkill godoc
//
//	@Summary		Adjust a trainable skill
//	@Description	Apply a signed delta to one of the share/luck/betray skills, clamped to the configured range.
//	@Tags			Ledger
//	@Accept			json
//	@Produce		json
//	@Param			accountID	path		int						true	"Account ID"
//	@Param			request		body		dto.SkillRequestDTO		true	"Skill and signed delta"
//	@Success		200			{object}	dto.SkillResponseDTO	"New skill value"
//	@Failure		400			{object}	utils.Response			"Unknown skill"
//	@Failure		404			{object}	utils.Response			"Account not found"
//	@Failure		500			{object}	utils.Response			"Internal server error"
//	@Router			/api/accounts/{accountID}/skills [post]
func (h *LedgerHandler) AdjustSkill(w http.ResponseWriter, r *http.Request) {
	accountID, ok := accountIDParam(w, r)
	if !ok {
		return
	}
	var req dto.SkillRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	kind, ok := parseSkill(req.Skill)
	if !ok {
		utils.RespondWithError(w, http.StatusBadRequest, "unknown skill")
		return
	}

	value, err := h.ledgerService.AdjustSkill(r.Context(), accountID, kind, req.Delta)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.SkillResponseDTO{Skill: req.Skill, Value: value})
}

// GrantExperience godoc
//
//	@Summary		Grant experience
//	@Description	Grant experience to the account, cascading level-ups and their rewards.
//	@Tags			Ledger
//	@Accept			json
//	@Produce		json
//	@Param			accountID	path		int							true	"Account ID"
//	@Param			request		body		dto.ExperienceRequestDTO	true	"Experience amount"
//	@Success		200			{object}	dto.BalanceResponseDTO		"Account state after the grant"
//	@Failure		404			{object}	utils.Response				"Account not found"
//	@Failure		500			{object}	utils.Response				"Internal server error"
//	@Router			/api/accounts/{accountID}/experience [post]
func (h *LedgerHandler) GrantExperience(w http.ResponseWriter, r *http.Request) {
	accountID, ok := accountIDParam(w, r)
	if !ok {
		return
	}
	var req dto.ExperienceRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if err := h.ledgerService.GrantExperience(r.Context(), accountID, req.Amount); err != nil {
		respondServiceError(w, err)
		return
	}
	account, err := h.ledgerService.GetBalance(r.Context(), accountID)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, toBalanceDTO(account))
}

func accountIDParam(w http.ResponseWriter, r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, "accountID"), 10, 64)
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid account id")
		return 0, false
	}
	return id, true
}

func parseSkill(s string) (domain.SkillKind, bool) {
	switch domain.SkillKind(s) {
	case domain.SkillShare, domain.SkillLuck, domain.SkillBetray:
		return domain.SkillKind(s), true
	}
	return "", false
}

func toBalanceDTO(a *domain.Account) dto.BalanceResponseDTO {
	return dto.BalanceResponseDTO{
		AccountID:  a.ID,
		Username:   a.Username,
		Cash:       a.Cash,
		Debt:       a.Debt,
		Crypto:     a.Crypto,
		Reputation: a.Reputation,
		Exp:        a.Exp,
		Level:      a.Level,
	}
}

func respondServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, domain.ErrValidation):
		utils.RespondWithError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, domain.ErrInsufficientFunds):
		utils.RespondWithError(w, http.StatusPaymentRequired, err.Error())
	case errors.Is(err, domain.ErrNotFound):
		utils.RespondWithError(w, http.StatusNotFound, err.Error())
	default:
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
	}
}
