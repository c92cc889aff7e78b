package jotform_test

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/xunman0/BarrierLog/internal/domain/dataset"
	"github.com/xunman0/BarrierLog/internal/jotform"
	"github.com/xunman0/BarrierLog/internal/testutil"
)

func TestSubmissions_FlattensActiveRows(t *testing.T) {
	api := testutil.NewJotFormAPI(t)
	subs := testutil.DemoSubmissions()
	subs = append(subs, testutil.Deleted(testutil.Submission("6099", "2024-04-20 10:00:00",
		testutil.CheckboxAnswer("Barriers", "Housing"))))
	api.SetSubmissions(subs...)

	got, err := api.Client(100).Submissions(context.Background())
	if err != nil {
		t.Fatalf("Submissions() failed: %v", err)
	}
	if len(got) != 3 {
		t.Fatalf("got %d submissions, want 3 (deleted rows excluded)", len(got))
	}

	first := got[0]
	if first.ID != "6001" {
		t.Errorf("first submission ID = %q, want %q", first.ID, "6001")
	}
	if first.SubmittedAt.IsZero() {
		t.Error("SubmittedAt not parsed")
	}

	// Labels map onto canonical columns with the right value kinds.
	if v := first.Fields["barrier_list"]; v.Kind != dataset.KindCategories || len(v.List) != 2 {
		t.Errorf("barrier_list = %+v, want a two-item multi-select", v)
	}
	if v := first.Fields["date"]; v.Kind != dataset.KindDate || v.Date.IsZero() {
		t.Errorf("date = %+v, want a parsed date", v)
	}
	if v := first.Fields["zipcode"]; v.Kind != dataset.KindCategory || v.Text != "95814" {
		t.Errorf("zipcode = %+v, want category %q", v, "95814")
	}
	if v := first.Fields["submission_type"]; v.Text != "Self-Referral" {
		t.Errorf("submission_type = %q, want %q", v.Text, "Self-Referral")
	}
}

func TestSubmissions_Paginates(t *testing.T) {
	api := testutil.NewJotFormAPI(t)
	api.SetSubmissions(
		testutil.Submission("1", "2024-03-01 09:00:00", testutil.TextAnswer("Barrier Description", "a")),
		testutil.Submission("2", "2024-03-02 09:00:00", testutil.TextAnswer("Barrier Description", "b")),
		testutil.Submission("3", "2024-03-03 09:00:00", testutil.TextAnswer("Barrier Description", "c")),
		testutil.Submission("4", "2024-03-04 09:00:00", testutil.TextAnswer("Barrier Description", "d")),
		testutil.Submission("5", "2024-03-05 09:00:00", testutil.TextAnswer("Barrier Description", "e")),
	)

	got, err := api.Client(2).Submissions(context.Background())
	if err != nil {
		t.Fatalf("Submissions() failed: %v", err)
	}
	if len(got) != 5 {
		t.Fatalf("got %d submissions across pages, want 5", len(got))
	}
	// 2+2+1 rows means three page requests.
	if n := api.Requests(); n != 3 {
		t.Errorf("stub saw %d requests, want 3", n)
	}
}

func TestSubmissions_EmptyForm(t *testing.T) {
	api := testutil.NewJotFormAPI(t)

	got, err := api.Client(100).Submissions(context.Background())
	if err != nil {
		t.Fatalf("Submissions() failed: %v", err)
	}
	if len(got) != 0 {
		t.Errorf("got %d submissions from an empty form, want 0", len(got))
	}
}

func TestSubmissions_AuthFailure(t *testing.T) {
	api := testutil.NewJotFormAPI(t)
	api.ForceStatus(http.StatusUnauthorized)

	_, err := api.Client(100).Submissions(context.Background())
	if !errors.Is(err, jotform.ErrAuth) {
		t.Errorf("error = %v, want ErrAuth", err)
	}
	// Auth failures are terminal: no retries.
	if n := api.Requests(); n != 1 {
		t.Errorf("stub saw %d requests, want 1", n)
	}
}

func TestSubmissions_FormNotFound(t *testing.T) {
	api := testutil.NewJotFormAPI(t)
	api.ForceStatus(http.StatusNotFound)

	_, err := api.Client(100).Submissions(context.Background())
	if !errors.Is(err, jotform.ErrNotFound) {
		t.Errorf("error = %v, want ErrNotFound", err)
	}
}

func TestSubmissions_RetriesTransientFailure(t *testing.T) {
	api := testutil.NewJotFormAPI(t)
	api.SetSubmissions(testutil.DemoSubmissions()...)
	api.FailNext(1)

	got, err := api.Client(100).Submissions(context.Background())
	if err != nil {
		t.Fatalf("Submissions() failed after a recoverable 500: %v", err)
	}
	if len(got) != 3 {
		t.Errorf("got %d submissions, want 3", len(got))
	}
	if n := api.Requests(); n != 2 {
		t.Errorf("stub saw %d requests, want 2 (one failure, one retry)", n)
	}
}

func TestSubmissions_RetryBudgetExhausted(t *testing.T) {
	api := testutil.NewJotFormAPI(t)
	api.ForceStatus(http.StatusInternalServerError)

	_, err := api.Client(100).Submissions(context.Background())
	if !errors.Is(err, jotform.ErrTransient) {
		t.Errorf("error = %v, want ErrTransient", err)
	}
	// Initial attempt plus RetryMax retries.
	if n := api.Requests(); n != 3 {
		t.Errorf("stub saw %d requests, want 3", n)
	}
}

func TestSubmissions_EmptyIDIsSchemaError(t *testing.T) {
	api := testutil.NewJotFormAPI(t)
	api.SetSubmissions(testutil.Submission("", "2024-03-01 09:00:00",
		testutil.CheckboxAnswer("Barriers", "Housing")))

	_, err := api.Client(100).Submissions(context.Background())
	if !errors.Is(err, jotform.ErrSchema) {
		t.Errorf("error = %v, want ErrSchema", err)
	}
}

func TestForm(t *testing.T) {
	api := testutil.NewJotFormAPI(t)
	api.SetForm("Community Barrier Log")
	api.SetSubmissions(testutil.DemoSubmissions()...)

	info, err := api.Client(100).Form(context.Background())
	if err != nil {
		t.Fatalf("Form() failed: %v", err)
	}
	if info.Title != "Community Barrier Log" {
		t.Errorf("Title = %q, want %q", info.Title, "Community Barrier Log")
	}
	if info.SubmissionCount != 3 {
		t.Errorf("SubmissionCount = %d, want 3", info.SubmissionCount)
	}
	if info.CreatedAt.IsZero() {
		t.Error("CreatedAt not parsed")
	}
}

func TestQuestions_SortedByFormOrder(t *testing.T) {
	api := testutil.NewJotFormAPI(t)
	api.SetQuestions(
		map[string]any{"qid": "7", "text": "Barriers", "name": "barriers", "type": "control_checkbox", "order": "12"},
		map[string]any{"qid": "3", "text": "Date", "name": "date", "type": "control_datetime", "order": "2"},
		map[string]any{"qid": "5", "text": "Age", "name": "age", "type": "control_number", "order": "5"},
	)

	qs, err := api.Client(100).Questions(context.Background())
	if err != nil {
		t.Fatalf("Questions() failed: %v", err)
	}
	if len(qs) != 3 {
		t.Fatalf("got %d questions, want 3", len(qs))
	}
	wantOrder := []string{"Date", "Age", "Barriers"}
	for i, want := range wantOrder {
		if qs[i].Label != want {
			t.Errorf("question %d = %q, want %q", i, qs[i].Label, want)
		}
	}
}

func TestUserMessage(t *testing.T) {
	api := testutil.NewJotFormAPI(t)
	api.ForceStatus(http.StatusUnauthorized)

	_, err := api.Client(100).Submissions(context.Background())
	msg := jotform.UserMessage(err)
	if msg == "" || msg == err.Error() {
		t.Errorf("UserMessage(%v) = %q, want a user-facing sentence", err, msg)
	}
}
