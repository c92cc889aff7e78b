package dashboard

import (
	"net/http"

	uierrors "github.com/xunman0/BarrierLog/internal/app/features/errors"
	"github.com/xunman0/BarrierLog/internal/app/system/timeouts"
	"github.com/xunman0/BarrierLog/internal/app/system/viewdata"
	"github.com/xunman0/BarrierLog/internal/domain/barriers"
	"github.com/xunman0/BarrierLog/internal/jotform"
	"github.com/dalemusser/waffle/pantry/templates"
	"go.uber.org/zap"
)

type Handler struct {
	Client *jotform.Client
	Charts []ChartSpec
	ErrLog *uierrors.ErrorLogger
	Log    *zap.Logger
}

func NewHandler(client *jotform.Client, charts []ChartSpec, errLog *uierrors.ErrorLogger, logger *zap.Logger) *Handler {
	return &Handler{
		Client: client,
		Charts: charts,
		ErrLog: errLog,
		Log:    logger,
	}
}

type dashboardData struct {
	viewdata.BaseVM

	Empty   bool
	Summary barriers.Summary
	Panels  []panelVM

	SnapshotID string
	FetchedAt  string
}

// ServeDashboard fetches the current dataset from the live API and
// renders the chart panels. Every page load (including the refresh
// control) is a fresh fetch; nothing is cached across requests.
func (h *Handler) ServeDashboard(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := timeouts.WithTimeout(r.Context(), timeouts.Fetch(), h.Log, "dashboard fetch")
	defer cancel()

	ds, err := barriers.Fetch(ctx, h.Client)
	if err != nil {
		h.ErrLog.LogServerError(w, r, "dashboard fetch failed", err, jotform.UserMessage(err), "/dashboard")
		return
	}

	data := dashboardData{
		BaseVM:     viewdata.NewBaseVM(r, "Barrier Dashboard"),
		SnapshotID: ds.SnapshotID(),
		FetchedAt:  ds.FetchedAt().Format("Jan 2, 2006 15:04 MST"),
	}

	if ds.Len() == 0 {
		data.Empty = true
		h.Log.Info("dashboard served empty dataset", zap.String("snapshot", ds.SnapshotID()))
		templates.Render(w, r, "dashboard", data)
		return
	}

	data.Summary = barriers.Summarize(ds)
	data.Panels = buildPanels(ds, h.Charts)

	h.Log.Debug("dashboard served",
		zap.String("snapshot", ds.SnapshotID()),
		zap.Int("rows", ds.Len()),
		zap.Int("panels", len(data.Panels)))

	templates.Render(w, r, "dashboard", data)
}
