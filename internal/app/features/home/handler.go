package home

import (
	"net/http"

	"github.com/xunman0/BarrierLog/internal/app/system/viewdata"
	"github.com/dalemusser/waffle/pantry/templates"
	"go.uber.org/zap"
)

// Handler holds dependencies needed to serve the landing page.
type Handler struct {
	Log *zap.Logger
}

func NewHandler(logger *zap.Logger) *Handler {
	return &Handler{Log: logger}
}

// ServeRoot renders the landing page.
// GET /
func (h *Handler) ServeRoot(w http.ResponseWriter, r *http.Request) {
	data := struct {
		viewdata.BaseVM
	}{
		BaseVM: viewdata.NewBaseVM(r, "Welcome"),
	}

	templates.Render(w, r, "home", data)
}
