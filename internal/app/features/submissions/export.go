package submissions

import (
	"encoding/csv"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/xunman0/BarrierLog/internal/app/system/timeouts"
	"github.com/xunman0/BarrierLog/internal/domain/barriers"
	"github.com/xunman0/BarrierLog/internal/jotform"
	"go.uber.org/zap"
)

// ServeCSV exports the public columns as a CSV download.
// GET /submissions/export.csv
func (h *Handler) ServeCSV(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := timeouts.WithTimeout(r.Context(), timeouts.Fetch(), h.Log, "submissions CSV export")
	defer cancel()

	ds, err := barriers.Fetch(ctx, h.Client)
	if err != nil {
		h.ErrLog.LogServerError(w, r, "CSV export fetch failed", err, jotform.UserMessage(err), "/submissions")
		return
	}

	filename := fmt.Sprintf("barriers_%s.csv", time.Now().Format("20060102"))
	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, url.PathEscape(filename)))

	// UTF-8 BOM for Excel
	if _, err := w.Write([]byte{0xEF, 0xBB, 0xBF}); err != nil {
		h.Log.Error("CSV write failed (BOM)", zap.Error(err))
		return
	}

	columns := barriers.PublicColumns()
	cw := csv.NewWriter(w)
	if err := cw.Write(columns); err != nil {
		h.Log.Error("CSV write failed (header)", zap.Error(err))
		return
	}

	for i := 0; i < ds.Len(); i++ {
		record := make([]string, 0, len(columns))
		for _, col := range columns {
			record = append(record, ds.Value(i, col).String())
		}
		if err := cw.Write(record); err != nil {
			h.Log.Error("CSV write failed (row)", zap.Int("row", i), zap.Error(err))
			return
		}
	}

	cw.Flush()
	if err := cw.Error(); err != nil {
		h.Log.Error("CSV flush failed", zap.Error(err))
		return
	}

	h.Log.Info("CSV export served",
		zap.String("snapshot", ds.SnapshotID()),
		zap.Int("rows", ds.Len()))
}
