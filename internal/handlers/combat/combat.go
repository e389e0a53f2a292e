package combat

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/streetwars/economy/internal/domain"
	"github.com/streetwars/economy/internal/dto"
	combatservice "github.com/streetwars/economy/internal/service/combatservice"
	"github.com/streetwars/economy/pkg/utils"
)

//go:generate mockgen -source=combat.go -destination=mock_combat.go -package=combat

type Service interface {
	AttemptTheft(ctx context.Context, attackerID, victimID int64, upfrontCost float64) (*combatservice.Outcome, error)
	CooldownRemaining(ctx context.Context, accountID int64) (time.Duration, error)
}

type CombatHandler struct {
	combatService Service
}

func New(combatService Service) *CombatHandler {
	return &CombatHandler{
		combatService: combatService,
	}
}

// AttemptTheft godoc
//
//	@Summary		Attempt a theft
//	@Description	Resolve one theft attempt against a victim. The upfront cost must be covered in full; the victim may defend, collecting a penalty from the attacker.
//	@Tags			Combat
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.TheftRequestDTO		true	"Attacker, victim and upfront cost"
//	@Success		200		{object}	dto.TheftResponseDTO	"Theft outcome"
//	@Failure		400		{object}	utils.Response			"Invalid attempt"
//	@Failure		402		{object}	utils.Response			"Upfront cost not covered"
//	@Failure		404		{object}	utils.Response			"Account not found"
//	@Failure		500		{object}	utils.Response			"Internal server error"
//	@Router			/api/combat/theft [post]
func (h *CombatHandler) AttemptTheft(w http.ResponseWriter, r *http.Request) {
	var req dto.TheftRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	remaining, err := h.combatService.CooldownRemaining(r.Context(), req.AttackerID)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	if remaining > 0 {
		utils.RespondWithError(w, http.StatusConflict, "theft on cooldown")
		return
	}

	outcome, err := h.combatService.AttemptTheft(r.Context(), req.AttackerID, req.VictimID, req.UpfrontCost)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.TheftResponseDTO{
		Result:  string(outcome.Result),
		Amount:  outcome.Amount,
		Penalty: outcome.Penalty,
	})
}

// GetCooldown godoc
//
//	@Summary		Get theft cooldown
//	@Tags			Combat
//	@Produce		json
//	@Param			accountID	path		int						true	"Account ID"
//	@Success		200			{object}	dto.CooldownResponseDTO	"Seconds until the next attempt"
//	@Failure		500			{object}	utils.Response			"Internal server error"
//	@Router			/api/combat/cooldown/{accountID} [get]
func (h *CombatHandler) GetCooldown(w http.ResponseWriter, r *http.Request) {
	accountID, err := strconv.ParseInt(chi.URLParam(r, "accountID"), 10, 64)
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid account id")
		return
	}

	remaining, err := h.combatService.CooldownRemaining(r.Context(), accountID)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.CooldownResponseDTO{
		RemainingSeconds: int64(remaining / time.Second),
	})
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
