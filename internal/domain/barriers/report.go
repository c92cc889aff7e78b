package barriers

import (
	"github.com/xunman0/BarrierLog/internal/domain/dataset"
)

// Summary holds the KPI figures shown at the top of the dashboard.
type Summary struct {
	Submissions      int    // total rows in the dataset
	BarriersReported int    // total barrier selections across all rows
	BarrierTypes     int    // distinct barrier categories observed
	LatestEntry      string // mm-dd-yyyy of the most recent submission, "" if none
}

// Summarize computes the KPI figures from the current dataset.
func Summarize(d *dataset.Dataset) Summary {
	s := Summary{
		Submissions:      d.Len(),
		BarriersReported: d.Total(ColBarrierList),
		BarrierTypes:     d.Distinct(ColBarrierList),
	}
	if latest, ok := d.LatestDate(ColDate); ok {
		s.LatestEntry = latest.Format("01-02-2006")
	}
	return s
}
