package dataset_test

import (
	"strings"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/xunman0/BarrierLog/internal/domain/dataset"
)

func row(id string, fields map[string]dataset.Value) dataset.Submission {
	return dataset.Submission{
		ID:          id,
		SubmittedAt: time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC),
		Fields:      fields,
	}
}

func mustNew(t *testing.T, subs []dataset.Submission) *dataset.Dataset {
	t.Helper()
	d, err := dataset.New(subs)
	if err != nil {
		t.Fatalf("New() failed: %v", err)
	}
	return d
}

func TestNew_RejectsDuplicateIDs(t *testing.T) {
	subs := []dataset.Submission{
		row("1", map[string]dataset.Value{"age": dataset.Category("30")}),
		row("1", map[string]dataset.Value{"age": dataset.Category("31")}),
	}
	_, err := dataset.New(subs)
	if err == nil {
		t.Fatal("New() accepted duplicate submission IDs")
	}
	if !strings.Contains(err.Error(), "duplicate") {
		t.Errorf("error %q does not mention the duplicate", err)
	}
}

func TestNew_ColumnOrderIsStable(t *testing.T) {
	subs := []dataset.Submission{
		row("1", map[string]dataset.Value{
			"sex": dataset.Category("Female"),
			"age": dataset.Category("34"),
		}),
		row("2", map[string]dataset.Value{
			"age":     dataset.Category("41"),
			"zipcode": dataset.Category("95814"),
		}),
	}

	a := mustNew(t, subs)
	b := mustNew(t, subs)

	// Within a row names sort, across rows it is first-seen order.
	want := []string{"age", "sex", "zipcode"}
	if diff := cmp.Diff(want, a.Columns()); diff != "" {
		t.Errorf("Columns() mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff(a.Columns(), b.Columns()); diff != "" {
		t.Errorf("column order differs between builds (-a +b):\n%s", diff)
	}
}

func TestDataset_ValueAndHasColumn(t *testing.T) {
	d := mustNew(t, []dataset.Submission{
		row("1", map[string]dataset.Value{"age": dataset.Category("34")}),
	})

	if !d.HasColumn("age") {
		t.Error("HasColumn(age) = false, want true")
	}
	if d.HasColumn("shoe_size") {
		t.Error("HasColumn(shoe_size) = true, want false")
	}
	if got := d.Value(0, "age").String(); got != "34" {
		t.Errorf("Value(0, age) = %q, want %q", got, "34")
	}
	if !d.Value(0, "shoe_size").IsZero() {
		t.Error("absent column should read as a zero value")
	}
	if !d.Value(5, "age").IsZero() {
		t.Error("out-of-range row should read as a zero value")
	}
}

func TestValue_String(t *testing.T) {
	cases := []struct {
		name string
		v    dataset.Value
		want string
	}{
		{"text", dataset.Text("hello"), "hello"},
		{"category", dataset.Category("Transportation"), "Transportation"},
		{"categories", dataset.Categories([]string{"Housing", "Food Access"}), "Housing; Food Access"},
		{"date", dataset.Date(time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)), "03-01-2024"},
		{"zero date", dataset.Value{Kind: dataset.KindDate}, ""},
		{"zero", dataset.Value{}, ""},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.v.String(); got != tc.want {
				t.Errorf("String() = %q, want %q", got, tc.want)
			}
		})
	}
}

func TestValue_IsZero(t *testing.T) {
	if !(dataset.Value{}).IsZero() {
		t.Error("zero Value should be zero")
	}
	if !dataset.Categories(nil).IsZero() {
		t.Error("empty multi-select should be zero")
	}
	if dataset.Categories([]string{"Housing"}).IsZero() {
		t.Error("non-empty multi-select should not be zero")
	}
	if dataset.Text("x").IsZero() {
		t.Error("non-empty text should not be zero")
	}
}

func TestSnapshotIDs_DifferBetweenBuilds(t *testing.T) {
	subs := []dataset.Submission{row("1", nil)}
	a := mustNew(t, subs)
	b := mustNew(t, subs)
	if a.SnapshotID() == b.SnapshotID() {
		t.Error("two builds share a snapshot ID")
	}
	if a.SnapshotID() == "" {
		t.Error("snapshot ID is empty")
	}
}

func TestEqualContent(t *testing.T) {
	subs := []dataset.Submission{
		row("1", map[string]dataset.Value{"age": dataset.Category("34")}),
		row("2", map[string]dataset.Value{"age": dataset.Category("41")}),
	}
	reversed := []dataset.Submission{subs[1], subs[0]}

	a := mustNew(t, subs)
	b := mustNew(t, reversed)
	if !dataset.EqualContent(a, b) {
		t.Error("EqualContent should ignore row order and snapshot identity")
	}

	changed := []dataset.Submission{
		subs[0],
		row("2", map[string]dataset.Value{"age": dataset.Category("99")}),
	}
	c := mustNew(t, changed)
	if dataset.EqualContent(a, c) {
		t.Error("EqualContent should detect a changed cell")
	}

	shorter := mustNew(t, subs[:1])
	if dataset.EqualContent(a, shorter) {
		t.Error("EqualContent should detect differing row counts")
	}
}
