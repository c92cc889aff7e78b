// Package testutil provides shared helpers for client and handler tests:
// a stub JotForm API server and fixture builders for submissions.
package testutil

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/xunman0/BarrierLog/internal/jotform"
	"go.uber.org/zap"
)

// JotFormAPI is a stand-in for the JotForm REST API backed by httptest.
// It serves the submissions, form-metadata, and questions endpoints from
// in-memory fixture data and supports fault injection for retry tests.
type JotFormAPI struct {
	t   *testing.T
	srv *httptest.Server

	mu          sync.Mutex
	submissions []map[string]any
	formTitle   string
	questions   []map[string]any
	failNext    int // respond 500 to this many requests, then recover
	forceStatus int // when non-zero, every request gets this status
	requests    int
}

// NewJotFormAPI starts a stub server. It is shut down via t.Cleanup.
func NewJotFormAPI(t *testing.T) *JotFormAPI {
	t.Helper()
	api := &JotFormAPI{
		t:         t,
		formTitle: "Barrier Log",
		questions: []map[string]any{
			{"qid": "3", "text": "Date", "name": "date", "type": "control_datetime", "order": "1"},
			{"qid": "4", "text": "Barriers", "name": "barriers", "type": "control_checkbox", "order": "2"},
		},
	}
	api.srv = httptest.NewServer(http.HandlerFunc(api.handle))
	t.Cleanup(api.srv.Close)
	return api
}

// URL is the stub server's base URL.
func (a *JotFormAPI) URL() string { return a.srv.URL }

// Client returns a jotform.Client aimed at the stub, tuned for tests:
// bounded retries with near-zero backoff.
func (a *JotFormAPI) Client(pageSize int) *jotform.Client {
	a.t.Helper()
	return jotform.New(jotform.Config{
		BaseURL:      a.srv.URL,
		APIKey:       "test-key",
		FormID:       "9001",
		PageSize:     pageSize,
		MaxPages:     10,
		RetryMax:     2,
		RetryBackoff: time.Millisecond,
	}, zap.NewNop())
}

// SetSubmissions replaces the stub's submission fixtures.
func (a *JotFormAPI) SetSubmissions(subs ...map[string]any) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.submissions = subs
}

// SetForm overrides the form title reported by the metadata endpoint.
func (a *JotFormAPI) SetForm(title string) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.formTitle = title
}

// SetQuestions replaces the stub's question fixtures.
func (a *JotFormAPI) SetQuestions(qs ...map[string]any) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.questions = qs
}

// FailNext makes the next n requests fail with a 500 before recovering.
func (a *JotFormAPI) FailNext(n int) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.failNext = n
}

// ForceStatus makes every request respond with the given HTTP status.
func (a *JotFormAPI) ForceStatus(code int) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.forceStatus = code
}

// Requests reports how many requests the stub has received.
func (a *JotFormAPI) Requests() int {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.requests
}

func (a *JotFormAPI) handle(w http.ResponseWriter, r *http.Request) {
	a.mu.Lock()
	a.requests++
	if a.forceStatus != 0 {
		code := a.forceStatus
		a.mu.Unlock()
		http.Error(w, http.StatusText(code), code)
		return
	}
	if a.failNext > 0 {
		a.failNext--
		a.mu.Unlock()
		http.Error(w, "upstream error", http.StatusInternalServerError)
		return
	}
	a.mu.Unlock()

	if r.URL.Query().Get("apiKey") == "" {
		http.Error(w, "missing apiKey", http.StatusUnauthorized)
		return
	}

	switch {
	case strings.HasSuffix(r.URL.Path, "/submissions"):
		a.serveSubmissions(w, r)
	case strings.HasSuffix(r.URL.Path, "/questions"):
		a.serveQuestions(w)
	default:
		a.serveForm(w)
	}
}

func (a *JotFormAPI) serveSubmissions(w http.ResponseWriter, r *http.Request) {
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))
	offset, _ := strconv.Atoi(r.URL.Query().Get("offset"))

	a.mu.Lock()
	subs := a.submissions
	a.mu.Unlock()

	if limit <= 0 {
		limit = len(subs)
	}
	if offset > len(subs) {
		offset = len(subs)
	}
	end := offset + limit
	if end > len(subs) {
		end = len(subs)
	}

	writeJSON(a.t, w, map[string]any{
		"responseCode": 200,
		"message":      "success",
		"content":      subs[offset:end],
		"limit-left":   1000,
	})
}

func (a *JotFormAPI) serveForm(w http.ResponseWriter) {
	a.mu.Lock()
	title := a.formTitle
	count := len(a.submissions)
	a.mu.Unlock()

	writeJSON(a.t, w, map[string]any{
		"responseCode": 200,
		"message":      "success",
		"content": map[string]any{
			"id":         "9001",
			"title":      title,
			"status":     "ENABLED",
			"created_at": "2024-02-01 10:30:00",
			"count":      strconv.Itoa(count),
		},
	})
}

func (a *JotFormAPI) serveQuestions(w http.ResponseWriter) {
	a.mu.Lock()
	qs := a.questions
	a.mu.Unlock()

	content := make(map[string]any, len(qs))
	for _, q := range qs {
		content[q["qid"].(string)] = q
	}
	writeJSON(a.t, w, map[string]any{
		"responseCode": 200,
		"message":      "success",
		"content":      content,
	})
}

func writeJSON(t *testing.T, w http.ResponseWriter, v any) {
	t.Helper()
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		t.Errorf("stub response encode failed: %v", err)
	}
}
