package heist

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/streetwars/economy/internal/domain"
	"github.com/streetwars/economy/internal/dto"
	heistservice "github.com/streetwars/economy/internal/service/heistservice"
	"github.com/streetwars/economy/pkg/utils"
)

type Service interface {
	Spawn(ctx context.Context, roomID int64) (*domain.Heist, error)
	Join(ctx context.Context, heistID int, accountID int64) (bool, error)
	Betray(ctx context.Context, heistID int, attackerID, targetID int64) (*heistservice.BetrayalResult, error)
	GetStatus(ctx context.Context, heistID int) (*heistservice.Status, error)
}

type HeistHandler struct {
	heistService Service
}

func New(heistService Service) *HeistHandler {
	return &HeistHandler{
		heistService: heistService,
	}
}

// Spawn godoc
//
//	@Summary		Spawn a heist in a room
//	@Description	Start a heist from a random event template. A room can hold at most one unfinished heist.
//	@Tags			Heists
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.SpawnHeistRequestDTO	true	"Room to spawn in"
//	@Success		200		{object}	dto.HeistResponseDTO		"Spawned heist"
//	@Failure		409		{object}	utils.Response				"Room already has an active heist"
//	@Failure		500		{object}	utils.Response				"Internal server error"
//	@Router			/api/heists [post]
func (h *HeistHandler) Spawn(w http.ResponseWriter, r *http.Request) {
	var req dto.SpawnHeistRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	heist, err := h.heistService.Spawn(r.Context(), req.RoomID)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, toHeistDTO(heist))
}

// Join godoc
//
//	@Summary		Join a heist
//	@Description	Join an open heist before its join deadline. Joining twice is a no-op.
//	@Tags			Heists
//	@Accept			json
//	@Produce		json
//	@Param			heistID	path		int						true	"Heist ID"
//	@Param			request	body		dto.JoinHeistRequestDTO	true	"Joining account"
//	@Success		200		{object}	dto.JoinHeistResponseDTO	"Whether the account was newly added"
//	@Failure		404		{object}	utils.Response				"Heist not found"
//	@Failure		409		{object}	utils.Response				"Join window closed"
//	@Failure		500		{object}	utils.Response				"Internal server error"
//	@Router			/api/heists/{heistID}/join [post]
func (h *HeistHandler) Join(w http.ResponseWriter, r *http.Request) {
	heistID, ok := heistIDParam(w, r)
	if !ok {
		return
	}
	var req dto.JoinHeistRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	joined, err := h.heistService.Join(r.Context(), heistID, req.AccountID)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.JoinHeistResponseDTO{Joined: joined})
}

// Betray godoc
//
//	@Summary		Betray a fellow participant
//	@Description	During the split window, attempt to steal a cut of another participant's share. Failure costs the attacker part of their own share and hardens the target's defense.
//	@Tags			Heists
//	@Accept			json
//	@Produce		json
//	@Param			heistID	path		int						true	"Heist ID"
//	@Param			request	body		dto.BetrayRequestDTO	true	"Attacker and target"
//	@Success		200		{object}	dto.BetrayResponseDTO	"Betrayal outcome"
//	@Failure		400		{object}	utils.Response			"Invalid betrayal"
//	@Failure		404		{object}	utils.Response			"Heist or participant not found"
//	@Failure		409		{object}	utils.Response			"Split window closed"
//	@Failure		500		{object}	utils.Response			"Internal server error"
//	@Router			/api/heists/{heistID}/betray [post]
func (h *HeistHandler) Betray(w http.ResponseWriter, r *http.Request) {
	heistID, ok := heistIDParam(w, r)
	if !ok {
		return
	}
	var req dto.BetrayRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	result, err := h.heistService.Betray(r.Context(), heistID, req.AttackerID, req.TargetID)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.BetrayResponseDTO{
		Success: result.Success,
		Amount:  result.Amount,
	})
}

// GetStatus godoc
//
//	@Summary		Get heist status
//	@Description	Current phase, participants with their shares, and the betrayal log.
//	@Tags			Heists
//	@Produce		json
//	@Param			heistID	path		int							true	"Heist ID"
//	@Success		200		{object}	dto.HeistStatusResponseDTO	"Heist state"
//	@Failure		404		{object}	utils.Response				"Heist not found"
//	@Failure		500		{object}	utils.Response				"Internal server error"
//	@Router			/api/heists/{heistID} [get]
func (h *HeistHandler) GetStatus(w http.ResponseWriter, r *http.Request) {
	heistID, ok := heistIDParam(w, r)
	if !ok {
		return
	}

	status, err := h.heistService.GetStatus(r.Context(), heistID)
	if err != nil {
		respondServiceError(w, err)
		return
	}

	resp := dto.HeistStatusResponseDTO{
		Heist:        toHeistDTO(status.Heist),
		Participants: make([]dto.HeistParticipantDTO, len(status.Participants)),
		Betrayals:    make([]dto.BetrayalDTO, len(status.Betrayals)),
	}
	for i, p := range status.Participants {
		resp.Participants[i] = dto.HeistParticipantDTO{
			AccountID:    p.AccountID,
			BaseShare:    p.BaseShare,
			CurrentShare: p.CurrentShare,
			BonusShare:   p.BonusShare,
			DefenseBonus: p.DefenseBonus,
		}
	}
	for i, b := range status.Betrayals {
		resp.Betrayals[i] = dto.BetrayalDTO{
			AttackerID: b.AttackerID,
			TargetID:   b.TargetID,
			Success:    b.Success,
			Amount:     b.Amount,
		}
	}
	utils.RespondWithJSON(w, http.StatusOK, resp)
}

func heistIDParam(w http.ResponseWriter, r *http.Request) (int, bool) {
	id, err := strconv.Atoi(chi.URLParam(r, "heistID"))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid heist id")
		return 0, false
	}
	return id, true
}

func toHeistDTO(h *domain.Heist) dto.HeistResponseDTO {
	return dto.HeistResponseDTO{
		ID:            h.ID,
		RoomID:        h.RoomID,
		Pot:           h.Pot,
		Bonus:         h.Bonus,
		Phase:         string(h.Phase),
		JoinDeadline:  h.JoinDeadline,
		SplitDeadline: h.SplitDeadline,
	}
}

func respondServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, domain.ErrValidation):
		utils.RespondWithError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, domain.ErrNotFound):
		utils.RespondWithError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, domain.ErrStateConflict):
		utils.RespondWithError(w, http.StatusConflict, err.Error())
	default:
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
	}
}
