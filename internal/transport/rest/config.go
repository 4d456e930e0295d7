package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/heartmarshall/lostfound-backend/internal/domain"
	"github.com/heartmarshall/lostfound-backend/internal/transport/middleware"
)

type settingsService interface {
	GetConfig(ctx context.Context) (domain.Settings, error)
	UpdateConfig(ctx context.Context, update domain.SettingsUpdate) (domain.Settings, error)
}

// ConfigHandler serves the admin matching-settings endpoints.
type ConfigHandler struct {
	svc settingsService
	log *slog.Logger
}

// NewConfigHandler creates a ConfigHandler.
func NewConfigHandler(svc settingsService, logger *slog.Logger) *ConfigHandler {
	return &ConfigHandler{svc: svc, log: logger.With("handler", "config")}
}

type weightsUpdateRequest struct {
	Category *float64 `json:"category"`
	Keyword  *float64 `json:"keyword"`
	Date     *float64 `json:"date"`
	Location *float64 `json:"location"`
	Feature  *float64 `json:"feature"`
	Color    *float64 `json:"color"`
}

type updateConfigRequest struct {
	AutoMatchThreshold *int                  `json:"auto_match_threshold"`
	RejectThreshold    *int                  `json:"reject_threshold"`
	Weights            *weightsUpdateRequest `json:"weights"`
}

// Get handles GET /admin/config.
func (h *ConfigHandler) Get(w http.ResponseWriter, r *http.Request) {
	if err := middleware.RequireAdmin(r.Context()); err != nil {
		writeDomainError(w, r, h.log, err)
		return
	}
	cfg, err := h.svc.GetConfig(r.Context())
	if err != nil {
		writeDomainError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, toSettingsResponse(cfg))
}

// Update handles PATCH /admin/config. Absent fields keep their value.
func (h *ConfigHandler) Update(w http.ResponseWriter, r *http.Request) {
	if err := middleware.RequireAdmin(r.Context()); err != nil {
		writeDomainError(w, r, h.log, err)
		return
	}
	var req updateConfigRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	update := domain.SettingsUpdate{
		AutoMatchThreshold: req.AutoMatchThreshold,
		RejectThreshold:    req.RejectThreshold,
	}
	if req.Weights != nil {
		wu := domain.WeightsUpdate(*req.Weights)
		update.Weights = &wu
	}

	cfg, err := h.svc.UpdateConfig(r.Context(), update)
	if err != nil {
		writeDomainError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, toSettingsResponse(cfg))
}
