package admin

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/streetwars/economy/internal/dto"
	"github.com/streetwars/economy/internal/settings"
	"github.com/streetwars/economy/pkg/utils"
)

//go:generate mockgen -source=admin.go -destination=mock_admin.go -package=admin

type Service interface {
	Get(ctx context.Context) (*settings.Settings, error)
	Set(ctx context.Context, key string, value float64) error
}

type AdminHandler struct {
	settingsService Service
}

func New(settingsService Service) *AdminHandler {
	return &AdminHandler{
		settingsService: settingsService,
	}
}

// GetSettings godoc
//
//	@Summary		Get effective economy settings
//	@Tags			Admin
//	@Produce		json
//	@Success		200	{object}	settings.Settings	"Defaults merged with stored overrides"
//	@Failure		500	{object}	utils.Response		"Internal server error"
//	@Router			/api/admin/settings [get]
func (h *AdminHandler) GetSettings(w http.ResponseWriter, r *http.Request) {
	cfg, err := h.settingsService.Get(r.Context())
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, cfg)
}

// SetSetting godoc
//
//	@Summary		Override one economy setting
//	@Tags			Admin
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.SetSettingRequestDTO	true	"Key and value"
//	@Success		200		{object}	utils.Response				"Setting stored"
//	@Failure		400		{object}	utils.Response				"Invalid request"
//	@Failure		500		{object}	utils.Response				"Internal server error"
//	@Router			/api/admin/settings [post]
func (h *AdminHandler) SetSetting(w http.ResponseWriter, r *http.Request) {
	var req dto.SetSettingRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.Key == "" {
		utils.RespondWithError(w, http.StatusBadRequest, "key is required")
		return
	}

	if err := h.settingsService.Set(r.Context(), req.Key, req.Value); err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, utils.Response{Message: "setting stored"})
}
