// Package submissions serves the raw-data table and CSV download. Both
// surfaces show only the PHI-free public columns; family and staff
// contact details never leave the server.
package submissions

import (
	"html/template"
	"net/http"

	uierrors "github.com/xunman0/BarrierLog/internal/app/features/errors"
	"github.com/xunman0/BarrierLog/internal/app/system/htmlsanitize"
	"github.com/xunman0/BarrierLog/internal/app/system/timeouts"
	"github.com/xunman0/BarrierLog/internal/app/system/viewdata"
	"github.com/xunman0/BarrierLog/internal/domain/barriers"
	"github.com/xunman0/BarrierLog/internal/domain/dataset"
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

type tableData struct {
	viewdata.BaseVM

	Columns []string
	Rows    [][]template.HTML
	Count   int
	Empty   bool
}

// ServeTable renders the public columns of every submission.
// GET /submissions
func (h *Handler) ServeTable(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := timeouts.WithTimeout(r.Context(), timeouts.Fetch(), h.Log, "submissions table fetch")
	defer cancel()

	ds, err := barriers.Fetch(ctx, h.Client)
	if err != nil {
		h.ErrLog.LogServerError(w, r, "submissions fetch failed", err, jotform.UserMessage(err), "/submissions")
		return
	}

	data := tableData{
		BaseVM:  viewdata.NewBaseVM(r, "Raw Data"),
		Columns: barriers.PublicColumns(),
		Count:   ds.Len(),
		Empty:   ds.Len() == 0,
	}

	for i := 0; i < ds.Len(); i++ {
		row := make([]template.HTML, 0, len(data.Columns))
		for _, col := range data.Columns {
			row = append(row, cell(ds.Value(i, col)))
		}
		data.Rows = append(data.Rows, row)
	}

	templates.Render(w, r, "submissions_table", data)
}

// cell renders one table cell. Answer text comes straight from a public
// form, so everything is sanitized before display.
func cell(v dataset.Value) template.HTML {
	return htmlsanitize.PrepareForDisplay(v.String())
}
