package barriers_test

import (
	"context"
	"errors"
	"testing"

	"github.com/xunman0/BarrierLog/internal/domain/barriers"
	"github.com/xunman0/BarrierLog/internal/domain/dataset"
	"github.com/xunman0/BarrierLog/internal/jotform"
	"github.com/xunman0/BarrierLog/internal/testutil"
)

func TestFetch_BuildsNormalizedDataset(t *testing.T) {
	api := testutil.NewJotFormAPI(t)
	subs := testutil.DemoSubmissions()
	subs = append(subs, testutil.Submission("6004", "2024-04-10 11:00:00",
		testutil.DateAnswer("Date", "04-10-2024"),
		testutil.ChoiceAnswer("Submission Type", "Barrier Log Only (non-referral)"),
		testutil.CheckboxAnswer("Barriers", "Housing"),
		testutil.AddressAnswer("Family Contact Address", "456 Oak Ave Sacramento CA 95816"),
	))
	api.SetSubmissions(subs...)

	d, err := barriers.Fetch(context.Background(), api.Client(100))
	if err != nil {
		t.Fatalf("Fetch() failed: %v", err)
	}
	if d.Len() != 4 {
		t.Fatalf("Len() = %d, want 4", d.Len())
	}

	// Last row went through normalization: the legacy submission type is
	// canonicalized and the zipcode is recovered from the address.
	last := d.Rows()[3]
	if got := last.Fields[barriers.ColSubmissionTyp].Text; got != barriers.TypeBarrierLog {
		t.Errorf("submission type = %q, want %q", got, barriers.TypeBarrierLog)
	}
	if got := last.Fields[barriers.ColZipcode].Text; got != "95816" {
		t.Errorf("recovered zipcode = %q, want %q", got, "95816")
	}
}

func TestFetch_RefetchIsEquivalent(t *testing.T) {
	api := testutil.NewJotFormAPI(t)
	api.SetSubmissions(testutil.DemoSubmissions()...)
	client := api.Client(100)

	a, err := barriers.Fetch(context.Background(), client)
	if err != nil {
		t.Fatalf("first Fetch() failed: %v", err)
	}
	b, err := barriers.Fetch(context.Background(), client)
	if err != nil {
		t.Fatalf("second Fetch() failed: %v", err)
	}

	if a.SnapshotID() == b.SnapshotID() {
		t.Error("two fetches share a snapshot ID")
	}
	if !dataset.EqualContent(a, b) {
		t.Error("two fetches of an unchanged form differ in content")
	}
}

func TestFetch_DuplicateIDsSurfaceAsSchemaError(t *testing.T) {
	api := testutil.NewJotFormAPI(t)
	api.SetSubmissions(
		testutil.Submission("7001", "2024-03-01 09:00:00", testutil.CheckboxAnswer("Barriers", "Housing")),
		testutil.Submission("7001", "2024-03-02 09:00:00", testutil.CheckboxAnswer("Barriers", "Transportation")),
	)

	_, err := barriers.Fetch(context.Background(), api.Client(100))
	if err == nil {
		t.Fatal("Fetch() accepted duplicate submission IDs")
	}
	if !errors.Is(err, jotform.ErrSchema) {
		t.Errorf("error %v is not a schema error", err)
	}
}
