package health

import (
	"encoding/json"
	"net/http"

	"github.com/xunman0/BarrierLog/internal/app/system/timeouts"
	"github.com/xunman0/BarrierLog/internal/jotform"
	"go.uber.org/zap"
)

// Handler holds dependencies needed for health checks.
type Handler struct {
	Client *jotform.Client
	Log    *zap.Logger
}

// NewHandler constructs a health Handler over the JotForm client.
func NewHandler(client *jotform.Client, logger *zap.Logger) *Handler {
	return &Handler{
		Client: client,
		Log:    logger,
	}
}

// healthResponse is the JSON structure for the health check response.
type healthResponse struct {
	Status   string `json:"status"`
	Upstream string `json:"upstream"`
	Message  string `json:"message,omitempty"`
	Error    string `json:"error,omitempty"`
}

// Serve handles GET /health.
//
// On success: 200 and
//
//	{ "status":"ok", "upstream":"reachable" }
//
// On API failure: 503 and
//
//	{ "status":"error", "upstream":"unreachable", "message":"…", "error":"…" }
func (h *Handler) Serve(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := timeouts.WithTimeout(r.Context(), timeouts.Ping(), h.Log, "health check")
	defer cancel()

	w.Header().Set("Content-Type", "application/json")

	resp := healthResponse{
		Status:   "ok",
		Upstream: "reachable",
	}

	// A form-metadata request doubles as a connectivity and credential
	// check without touching submissions.
	if _, err := h.Client.Form(ctx); err != nil {
		h.Log.Error("health-check: jotform ping failed", zap.Error(err))
		w.WriteHeader(http.StatusServiceUnavailable)
		resp.Status = "error"
		resp.Upstream = "unreachable"
		resp.Message = "JotForm API unavailable"
		resp.Error = err.Error()
		_ = json.NewEncoder(w).Encode(resp)
		return
	}

	_ = json.NewEncoder(w).Encode(resp)
}
