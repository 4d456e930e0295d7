package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/heartmarshall/lostfound-backend/internal/domain"
	"github.com/heartmarshall/lostfound-backend/internal/service/match"
	"github.com/heartmarshall/lostfound-backend/internal/transport/middleware"
)

type matchService interface {
	GenerateMatches(ctx context.Context, src domain.MatchSource) ([]domain.Match, error)
	GetMatchesForItem(ctx context.Context, itemID uuid.UUID) ([]domain.Match, error)
	GetMatchesForReport(ctx context.Context, reportID uuid.UUID) ([]domain.Match, error)
	UpdateMatchStatus(ctx context.Context, id uuid.UUID, status domain.MatchStatus) (domain.Match, error)
	ReScanAll(ctx context.Context) (match.RescanResult, error)
}

// MatchHandler serves match REST endpoints.
type MatchHandler struct {
	svc matchService
	log *slog.Logger
}

// NewMatchHandler creates a MatchHandler.
func NewMatchHandler(svc matchService, logger *slog.Logger) *MatchHandler {
	return &MatchHandler{svc: svc, log: logger.With("handler", "match")}
}

type generateRequest struct {
	ItemID       *uuid.UUID `json:"item_id"`
	LostReportID *uuid.UUID `json:"lost_report_id"`
}

type updateMatchRequest struct {
	Status string `json:"status"`
}

// Generate handles POST /matches/generate.
func (h *MatchHandler) Generate(w http.ResponseWriter, r *http.Request) {
	if _, ok := requireUser(w, r); !ok {
		return
	}
	var req generateRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	matches, err := h.svc.GenerateMatches(r.Context(), domain.MatchSource{
		ItemID:       req.ItemID,
		LostReportID: req.LostReportID,
	})
	if err != nil {
		writeDomainError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, toMatchResponses(matches))
}

// ListForItem handles GET /items/{id}/matches.
func (h *MatchHandler) ListForItem(w http.ResponseWriter, r *http.Request) {
	if _, ok := requireUser(w, r); !ok {
		return
	}
	id, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}
	matches, err := h.svc.GetMatchesForItem(r.Context(), id)
	if err != nil {
		writeDomainError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, toMatchResponses(matches))
}

// ListForReport handles GET /reports/{id}/matches.
func (h *MatchHandler) ListForReport(w http.ResponseWriter, r *http.Request) {
	if _, ok := requireUser(w, r); !ok {
		return
	}
	id, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}
	matches, err := h.svc.GetMatchesForReport(r.Context(), id)
	if err != nil {
		writeDomainError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, toMatchResponses(matches))
}

// UpdateStatus handles PATCH /matches/{id}.
func (h *MatchHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}
	var req updateMatchRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	m, err := h.svc.UpdateMatchStatus(r.Context(), id, domain.MatchStatus(req.Status))
	if err != nil {
		writeDomainError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, toMatchResponse(m))
}

// Rescan handles POST /admin/matches/rescan.
func (h *MatchHandler) Rescan(w http.ResponseWriter, r *http.Request) {
	if err := middleware.RequireAdmin(r.Context()); err != nil {
		writeDomainError(w, r, h.log, err)
		return
	}

	result, err := h.svc.ReScanAll(r.Context())
	if err != nil {
		writeDomainError(w, r, h.log, err)
		return
	}
	h.log.InfoContext(r.Context(), "rescan finished",
		slog.Int("scanned", result.Scanned),
		slog.Int("failed", result.Failed),
	)
	writeJSON(w, http.StatusOK, toRescanResponse(result))
}
