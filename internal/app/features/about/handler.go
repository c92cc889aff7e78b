// Package about serves the background page: what the data is, where it
// comes from, and the remote form's field schema for introspection.
package about

import (
	"net/http"

	uierrors "github.com/xunman0/BarrierLog/internal/app/features/errors"
	"github.com/xunman0/BarrierLog/internal/app/system/timeouts"
	"github.com/xunman0/BarrierLog/internal/app/system/viewdata"
	"github.com/xunman0/BarrierLog/internal/jotform"
	"github.com/dalemusser/waffle/pantry/templates"
	"go.uber.org/zap"
)

type Handler struct {
	Client *jotform.Client
	ErrLog *uierrors.ErrorLogger
	Log    *zap.Logger
}

func NewHandler(client *jotform.Client, errLog *uierrors.ErrorLogger, logger *zap.Logger) *Handler {
	return &Handler{
		Client: client,
		ErrLog: errLog,
		Log:    logger,
	}
}

type aboutData struct {
	viewdata.BaseVM

	FormTitle       string
	FormCreated     string
	SubmissionCount int
	Questions       []jotform.Question
}

// ServeAbout renders the form metadata page. Uses the metadata accessors
// only; no submissions are fetched.
// GET /about
func (h *Handler) ServeAbout(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := timeouts.WithTimeout(r.Context(), timeouts.Short(), h.Log, "about page metadata")
	defer cancel()

	info, err := h.Client.Form(ctx)
	if err != nil {
		h.ErrLog.LogServerError(w, r, "form metadata fetch failed", err, jotform.UserMessage(err), "/")
		return
	}
	questions, err := h.Client.Questions(ctx)
	if err != nil {
		h.ErrLog.LogServerError(w, r, "form schema fetch failed", err, jotform.UserMessage(err), "/")
		return
	}

	data := aboutData{
		BaseVM:          viewdata.NewBaseVM(r, "About the Data"),
		FormTitle:       info.Title,
		SubmissionCount: info.SubmissionCount,
		Questions:       questions,
	}
	if !info.CreatedAt.IsZero() {
		data.FormCreated = info.CreatedAt.Format("January 2, 2006")
	}

	templates.Render(w, r, "about", data)
}
