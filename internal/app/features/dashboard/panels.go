package dashboard

import (
	"encoding/json"
	"fmt"
	"html/template"
	"sort"
	"strconv"

	"github.com/xunman0/BarrierLog/internal/domain/dataset"
)

// RenderError reports a chart whose configured column is absent from
// the dataset schema, which happens when the remote form changes out
// from under the configuration. It is surfaced on the page rather than
// silently dropping or blanking the chart.
type RenderError struct {
	Chart  string
	Column string
}

func (e *RenderError) Error() string {
	return fmt.Sprintf("chart %q: required column %q is missing from the dataset", e.Chart, e.Column)
}

// panelVM is the per-chart view model. Either Err is set (a visible
// error card) or JSON carries the Chart.js payload.
type panelVM struct {
	Name  string
	Title string
	Kind  string
	Err   string
	JSON  template.JS
}

// chartPayload is serialized into the page for the client-side renderer.
type chartPayload struct {
	Kind     string         `json:"kind"`
	Labels   []string       `json:"labels"`
	Series   []int          `json:"series,omitempty"`
	Datasets []chartDataset `json:"datasets,omitempty"`
}

type chartDataset struct {
	Label string `json:"label"`
	Data  []int  `json:"data"`
}

// buildPanels derives one panel per configured chart from the dataset.
// Panels with missing columns come back as error cards; the remaining
// charts still render.
func buildPanels(d *dataset.Dataset, specs []ChartSpec) []panelVM {
	panels := make([]panelVM, 0, len(specs))
	for _, spec := range specs {
		vm := panelVM{Name: spec.Name, Title: spec.Title, Kind: spec.Kind}

		payload, err := buildPayload(d, spec)
		if err != nil {
			vm.Err = err.Error()
			panels = append(panels, vm)
			continue
		}
		raw, merr := json.Marshal(payload)
		if merr != nil {
			vm.Err = fmt.Sprintf("chart %q: encoding failed: %v", spec.Name, merr)
			panels = append(panels, vm)
			continue
		}
		vm.JSON = template.JS(raw)
		panels = append(panels, vm)
	}
	return panels
}

func buildPayload(d *dataset.Dataset, spec ChartSpec) (*chartPayload, error) {
	if !d.HasColumn(spec.Column) {
		return nil, &RenderError{Chart: spec.Name, Column: spec.Column}
	}
	if spec.By != "" && !d.HasColumn(spec.By) {
		return nil, &RenderError{Chart: spec.Name, Column: spec.By}
	}

	p := &chartPayload{Kind: spec.Kind}
	switch spec.Kind {
	case "bar", "pie":
		counts := d.TopN(spec.Column, spec.Limit)
		if spec.Sort == "label" {
			sortByLabel(counts)
		}
		for _, c := range counts {
			p.Labels = append(p.Labels, c.Label)
			p.Series = append(p.Series, c.Count)
		}

	case "line":
		for _, c := range d.CountByMonth(spec.Column) {
			p.Labels = append(p.Labels, c.Label)
			p.Series = append(p.Series, c.Count)
		}

	case "stacked":
		ct := d.CrossTabulate(spec.Column, spec.By)
		rows := len(ct.RowLabels)
		if spec.Limit > 0 && rows > spec.Limit {
			rows = spec.Limit
		}
		p.Labels = ct.RowLabels[:rows]
		for j, col := range ct.ColLabels {
			ds := chartDataset{Label: col, Data: make([]int, rows)}
			for i := 0; i < rows; i++ {
				ds.Data[i] = ct.Counts[i][j]
			}
			p.Datasets = append(p.Datasets, ds)
		}

	default:
		return nil, fmt.Errorf("chart %q: unknown kind %q", spec.Name, spec.Kind)
	}
	return p, nil
}

// sortByLabel reorders counts by label, numerically when every label is
// a number (ages), lexically otherwise.
func sortByLabel(counts []dataset.CategoryCount) {
	numeric := true
	for _, c := range counts {
		if _, err := strconv.Atoi(c.Label); err != nil {
			numeric = false
			break
		}
	}
	sort.Slice(counts, func(i, j int) bool {
		if numeric {
			a, _ := strconv.Atoi(counts[i].Label)
			b, _ := strconv.Atoi(counts[j].Label)
			return a < b
		}
		return counts[i].Label < counts[j].Label
	})
}
