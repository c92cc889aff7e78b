package dataset

import (
	"sort"
	"time"
)

// CategoryCount pairs a category label with its occurrence count.
type CategoryCount struct {
	Label string
	Count int
}

// CountBy tallies values in a column. Multi-select cells contribute one
// count per selected category; scalar cells contribute their display
// string. Empty cells are skipped. Results sort by count descending,
// ties by label, so output is deterministic for a given dataset.
//
// An absent column yields an empty tally; callers that need a hard
// failure on missing columns should check HasColumn first.
func (d *Dataset) CountBy(column string) []CategoryCount {
	counts := make(map[string]int)
	for _, s := range d.subs {
		v, ok := s.Fields[column]
		if !ok || v.IsZero() {
			continue
		}
		if v.Kind == KindCategories {
			for _, item := range v.List {
				counts[item]++
			}
			continue
		}
		counts[v.String()]++
	}
	return sortCounts(counts)
}

// TopN returns the n most frequent values in a column.
func (d *Dataset) TopN(column string, n int) []CategoryCount {
	all := d.CountBy(column)
	if n > 0 && len(all) > n {
		all = all[:n]
	}
	return all
}

// Total is the summed occurrence count for a column: for multi-select
// columns this is the total number of selections across all rows.
func (d *Dataset) Total(column string) int {
	total := 0
	for _, c := range d.CountBy(column) {
		total += c.Count
	}
	return total
}

// Distinct is the number of distinct values observed in a column.
func (d *Dataset) Distinct(column string) int {
	return len(d.CountBy(column))
}

// CountByMonth buckets a date column into calendar months, ascending.
// Labels use the YYYY-MM form. Non-date and empty cells are skipped.
func (d *Dataset) CountByMonth(column string) []CategoryCount {
	counts := make(map[string]int)
	for _, s := range d.subs {
		v := s.Fields[column]
		if v.Kind != KindDate || v.Date.IsZero() {
			continue
		}
		counts[v.Date.Format("2006-01")]++
	}
	out := make([]CategoryCount, 0, len(counts))
	for label, n := range counts {
		out = append(out, CategoryCount{Label: label, Count: n})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Label < out[j].Label })
	return out
}

// CrossTab is a two-way frequency table: Counts[i][j] is the number of
// co-occurrences of RowLabels[i] with ColLabels[j].
type CrossTab struct {
	RowLabels []string
	ColLabels []string
	Counts    [][]int
}

// CrossTabulate counts co-occurrences of values in two columns. Row
// labels order by overall frequency (like CountBy); column labels sort
// alphabetically. Multi-select cells contribute one co-occurrence per
// selected category.
func (d *Dataset) CrossTabulate(rowColumn, colColumn string) *CrossTab {
	rowOrder := d.CountBy(rowColumn)
	colSet := make(map[string]struct{})
	pair := make(map[string]map[string]int)

	for _, s := range d.subs {
		rows := cellValues(s.Fields[rowColumn])
		cols := cellValues(s.Fields[colColumn])
		for _, rv := range rows {
			for _, cv := range cols {
				colSet[cv] = struct{}{}
				if pair[rv] == nil {
					pair[rv] = make(map[string]int)
				}
				pair[rv][cv]++
			}
		}
	}

	ct := &CrossTab{}
	for _, c := range rowOrder {
		ct.RowLabels = append(ct.RowLabels, c.Label)
	}
	for label := range colSet {
		ct.ColLabels = append(ct.ColLabels, label)
	}
	sort.Strings(ct.ColLabels)

	ct.Counts = make([][]int, len(ct.RowLabels))
	for i, rv := range ct.RowLabels {
		ct.Counts[i] = make([]int, len(ct.ColLabels))
		for j, cv := range ct.ColLabels {
			ct.Counts[i][j] = pair[rv][cv]
		}
	}
	return ct
}

// LatestDate returns the most recent value of a date column, and whether
// any date was present at all.
func (d *Dataset) LatestDate(column string) (time.Time, bool) {
	var latest time.Time
	found := false
	for _, s := range d.subs {
		v := s.Fields[column]
		if v.Kind != KindDate || v.Date.IsZero() {
			continue
		}
		if !found || v.Date.After(latest) {
			latest = v.Date
			found = true
		}
	}
	return latest, found
}

// cellValues flattens one cell into its countable values.
func cellValues(v Value) []string {
	if v.IsZero() {
		return nil
	}
	if v.Kind == KindCategories {
		return v.List
	}
	return []string{v.String()}
}

func sortCounts(counts map[string]int) []CategoryCount {
	out := make([]CategoryCount, 0, len(counts))
	for label, n := range counts {
		out = append(out, CategoryCount{Label: label, Count: n})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Count != out[j].Count {
			return out[i].Count > out[j].Count
		}
		return out[i].Label < out[j].Label
	})
	return out
}
