// Package dataset holds the in-memory tabular model for form submissions.
//
// A Dataset is built fresh on every fetch, is immutable once constructed,
// and is discarded on refresh. There is no cross-run caching: two Datasets
// never share rows.
package dataset

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Kind tags the shape of an answer value. Modeling answers as tagged
// values (rather than bare strings) lets schema mismatches surface as
// errors instead of silently corrupting aggregates.
type Kind string

const (
	KindText       Kind = "text"
	KindCategory   Kind = "category"
	KindCategories Kind = "categories"
	KindDate       Kind = "date"
)

// Value is one answer cell: free text, a selected category, a list of
// selected categories, or a date. The zero Value reads as an empty cell.
type Value struct {
	Kind Kind
	Text string
	List []string
	Date time.Time
}

// Text wraps a free-text answer.
func Text(s string) Value { return Value{Kind: KindText, Text: s} }

// Category wraps a single selected category.
func Category(s string) Value { return Value{Kind: KindCategory, Text: s} }

// Categories wraps a multi-select answer.
func Categories(vals []string) Value { return Value{Kind: KindCategories, List: vals} }

// Date wraps a date answer.
func Date(t time.Time) Value { return Value{Kind: KindDate, Date: t} }

// IsZero reports whether the value represents an empty cell.
func (v Value) IsZero() bool {
	switch v.Kind {
	case KindCategories:
		return len(v.List) == 0
	case KindDate:
		return v.Date.IsZero()
	case "":
		return true
	default:
		return v.Text == ""
	}
}

// String renders the value for display and CSV export. Multi-select
// values join with "; ", dates use mm-dd-yyyy like the source form.
func (v Value) String() string {
	switch v.Kind {
	case KindCategories:
		return strings.Join(v.List, "; ")
	case KindDate:
		if v.Date.IsZero() {
			return ""
		}
		return v.Date.Format("01-02-2006")
	default:
		return v.Text
	}
}

// Submission is one survey response: a unique identifier, the submission
// timestamp, and a mapping from column name to answer value.
type Submission struct {
	ID          string
	SubmittedAt time.Time
	Fields      map[string]Value
}

// Dataset is an ordered, immutable collection of Submissions exposed as a
// table: one row per submission, one column per distinct field name seen
// across all submissions. Missing fields read as empty values.
type Dataset struct {
	snapshotID string
	fetchedAt  time.Time
	subs       []Submission
	columns    []string
	colIndex   map[string]int
}

// New builds a Dataset from submissions in their given order. Column order
// is first-seen order across rows, so a fixed remote schema yields a stable
// column layout between refreshes. Duplicate submission IDs violate the
// dataset invariant and fail construction.
func New(subs []Submission) (*Dataset, error) {
	d := &Dataset{
		snapshotID: uuid.NewString(),
		fetchedAt:  time.Now().UTC(),
		subs:       make([]Submission, len(subs)),
		colIndex:   make(map[string]int),
	}
	copy(d.subs, subs)

	seen := make(map[string]struct{}, len(subs))
	for _, s := range subs {
		if _, dup := seen[s.ID]; dup {
			return nil, fmt.Errorf("duplicate submission id %q", s.ID)
		}
		seen[s.ID] = struct{}{}
	}

	for _, s := range subs {
		// Map iteration order is random; sort per-row names so column
		// order is deterministic for a given set of rows.
		names := make([]string, 0, len(s.Fields))
		for name := range s.Fields {
			names = append(names, name)
		}
		sort.Strings(names)
		for _, name := range names {
			if _, ok := d.colIndex[name]; !ok {
				d.colIndex[name] = len(d.columns)
				d.columns = append(d.columns, name)
			}
		}
	}
	return d, nil
}

// SnapshotID identifies this fetch for log correlation. Each refresh
// produces a new ID.
func (d *Dataset) SnapshotID() string { return d.snapshotID }

// FetchedAt is the time the dataset was constructed.
func (d *Dataset) FetchedAt() time.Time { return d.fetchedAt }

// Len is the number of rows.
func (d *Dataset) Len() int { return len(d.subs) }

// Columns returns the column names in table order.
func (d *Dataset) Columns() []string {
	out := make([]string, len(d.columns))
	copy(out, d.columns)
	return out
}

// HasColumn reports whether the dataset schema contains the named column.
func (d *Dataset) HasColumn(name string) bool {
	_, ok := d.colIndex[name]
	return ok
}

// Rows returns the submissions in table order.
func (d *Dataset) Rows() []Submission {
	out := make([]Submission, len(d.subs))
	copy(out, d.subs)
	return out
}

// Value returns the cell at (row, column); absent fields read as the
// zero Value.
func (d *Dataset) Value(row int, column string) Value {
	if row < 0 || row >= len(d.subs) {
		return Value{}
	}
	return d.subs[row].Fields[column]
}

// EqualContent reports whether two datasets hold the same rows with the
// same values, ignoring row ordering and snapshot identity. Two fetches
// against an unchanged form compare equal under this relation.
func EqualContent(a, b *Dataset) bool {
	if a.Len() != b.Len() {
		return false
	}
	rowsA, rowsB := a.Rows(), b.Rows()
	sort.Slice(rowsA, func(i, j int) bool { return rowsA[i].ID < rowsA[j].ID })
	sort.Slice(rowsB, func(i, j int) bool { return rowsB[i].ID < rowsB[j].ID })
	for i := range rowsA {
		if rowsA[i].ID != rowsB[i].ID {
			return false
		}
		if !rowsA[i].SubmittedAt.Equal(rowsB[i].SubmittedAt) {
			return false
		}
		if !equalFields(rowsA[i].Fields, rowsB[i].Fields) {
			return false
		}
	}
	return true
}

func equalFields(a, b map[string]Value) bool {
	if len(a) != len(b) {
		return false
	}
	for name, va := range a {
		vb, ok := b[name]
		if !ok || va.Kind != vb.Kind || va.Text != vb.Text || !va.Date.Equal(vb.Date) {
			return false
		}
		if len(va.List) != len(vb.List) {
			return false
		}
		for i := range va.List {
			if va.List[i] != vb.List[i] {
				return false
			}
		}
	}
	return true
}
