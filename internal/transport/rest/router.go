package rest

import (
	"net/http"

	"github.com/heartmarshall/lostfound-backend/internal/transport/middleware"
)

// Handlers groups the endpoint handlers mounted by NewRouter.
type Handlers struct {
	Health *HealthHandler
	Match  *MatchHandler
	Claim  *ClaimHandler
	Config *ConfigHandler
}

// NewRouter registers every route. claimLimit wraps claim filing only;
// pass nil to leave it unthrottled.
func NewRouter(h Handlers, claimLimit middleware.Middleware) *http.ServeMux {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /health", h.Health.Health)
	mux.HandleFunc("GET /live", h.Health.Live)
	mux.HandleFunc("GET /ready", h.Health.Ready)

	mux.HandleFunc("POST /matches/generate", h.Match.Generate)
	mux.HandleFunc("GET /items/{id}/matches", h.Match.ListForItem)
	mux.HandleFunc("GET /reports/{id}/matches", h.Match.ListForReport)
	mux.HandleFunc("PATCH /matches/{id}", h.Match.UpdateStatus)
	mux.HandleFunc("POST /admin/matches/rescan", h.Match.Rescan)

	mux.HandleFunc("GET /admin/config", h.Config.Get)
	mux.HandleFunc("PATCH /admin/config", h.Config.Update)

	var create http.Handler = http.HandlerFunc(h.Claim.Create)
	if claimLimit != nil {
		create = claimLimit(create)
	}
	mux.Handle("POST /claims", create)
	mux.HandleFunc("GET /claims/{id}", h.Claim.Get)
	mux.HandleFunc("DELETE /claims/{id}", h.Claim.Delete)
	mux.HandleFunc("POST /claims/{id}/proofs", h.Claim.UploadProofs)
	mux.HandleFunc("POST /claims/{id}/verify", h.Claim.Verify)
	mux.HandleFunc("POST /claims/{id}/reject", h.Claim.Reject)
	mux.HandleFunc("POST /claims/{id}/challenges", h.Claim.AddChallenge)
	mux.HandleFunc("POST /claims/{id}/challenges/{challengeId}/answer", h.Claim.AnswerChallenge)

	return mux
}
