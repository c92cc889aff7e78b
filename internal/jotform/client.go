// Package jotform is a thin client for the JotForm submissions API. It
// fetches a form's submissions page by page, flattens the nested answer
// objects into dataset rows, and exposes form metadata for introspection.
package jotform

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"sort"
	"strconv"
	"time"

	"github.com/xunman0/BarrierLog/internal/domain/dataset"
	"go.uber.org/zap"
)

const DefaultBaseURL = "https://hipaa-api.jotform.com"

// Config holds the credentials and fetch policy for a Client. APIKey and
// FormID are required; everything else has a working default.
type Config struct {
	BaseURL string
	APIKey  string
	FormID  string

	PageSize int           // submissions per request page
	MaxPages int           // bound on the paginated sequence
	Timeout  time.Duration // per-request HTTP timeout

	RetryMax     int           // additional attempts after a transient failure
	RetryBackoff time.Duration // base delay, grows linearly per attempt
}

// Client issues authenticated requests against one form. It holds no
// mutable state beyond the underlying HTTP client and is safe for
// concurrent use.
type Client struct {
	cfg  Config
	http *http.Client
	log  *zap.Logger
}

// New builds a Client, filling config defaults.
func New(cfg Config, logger *zap.Logger) *Client {
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultBaseURL
	}
	if cfg.PageSize <= 0 {
		cfg.PageSize = 100
	}
	if cfg.MaxPages <= 0 {
		cfg.MaxPages = 10
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 15 * time.Second
	}
	if cfg.RetryBackoff <= 0 {
		cfg.RetryBackoff = 500 * time.Millisecond
	}
	return &Client{
		cfg:  cfg,
		http: &http.Client{Timeout: cfg.Timeout},
		log:  logger,
	}
}

// Submissions fetches every ACTIVE submission visible to the configured
// credentials, in the API's native return order, flattened into dataset
// rows.
func (c *Client) Submissions(ctx context.Context) ([]dataset.Submission, error) {
	var subs []dataset.Submission
	offset := 0

	for page := 0; page < c.cfg.MaxPages; page++ {
		q := url.Values{}
		q.Set("limit", strconv.Itoa(c.cfg.PageSize))
		q.Set("offset", strconv.Itoa(offset))

		var env submissionsEnvelope
		if err := c.get(ctx, "/form/"+c.cfg.FormID+"/submissions", q, &env); err != nil {
			return nil, err
		}
		if err := checkEnvelope(env.ResponseCode, env.Message); err != nil {
			return nil, err
		}

		for _, raw := range env.Content {
			if raw.Status != "ACTIVE" {
				continue
			}
			sub, err := flattenSubmission(raw)
			if err != nil {
				return nil, err
			}
			subs = append(subs, sub)
		}

		if len(env.Content) < c.cfg.PageSize {
			c.log.Debug("submission fetch complete",
				zap.Int("pages", page+1),
				zap.Int("active", len(subs)),
				zap.Int("limit_left", env.LimitLeft))
			return subs, nil
		}
		offset += c.cfg.PageSize
	}

	c.log.Warn("submission fetch hit the page bound; results may be truncated",
		zap.Int("max_pages", c.cfg.MaxPages),
		zap.Int("active", len(subs)))
	return subs, nil
}

// Form fetches form-level metadata without touching submissions. Also
// serves as a cheap connectivity and credential check.
func (c *Client) Form(ctx context.Context) (*FormInfo, error) {
	var env formEnvelope
	if err := c.get(ctx, "/form/"+c.cfg.FormID, nil, &env); err != nil {
		return nil, err
	}
	if err := checkEnvelope(env.ResponseCode, env.Message); err != nil {
		return nil, err
	}

	info := &FormInfo{
		ID:     env.Content.ID,
		Title:  env.Content.Title,
		Status: env.Content.Status,
	}
	if env.Content.CreatedAt != "" {
		t, err := time.Parse("2006-01-02 15:04:05", env.Content.CreatedAt)
		if err != nil {
			return nil, schemaErr(fmt.Sprintf("form created_at %q", env.Content.CreatedAt), err)
		}
		info.CreatedAt = t
	}
	if env.Content.Count != "" {
		n, err := strconv.Atoi(env.Content.Count)
		if err != nil {
			return nil, schemaErr(fmt.Sprintf("form count %q", env.Content.Count), err)
		}
		info.SubmissionCount = n
	}
	return info, nil
}

// Questions fetches the form's field schema, ordered as on the form.
func (c *Client) Questions(ctx context.Context) ([]Question, error) {
	var env questionsEnvelope
	if err := c.get(ctx, "/form/"+c.cfg.FormID+"/questions", nil, &env); err != nil {
		return nil, err
	}
	if err := checkEnvelope(env.ResponseCode, env.Message); err != nil {
		return nil, err
	}

	out := make([]Question, 0, len(env.Content))
	for qid, q := range env.Content {
		order, _ := strconv.Atoi(q.Order)
		out = append(out, Question{
			QID:   qid,
			Label: q.Text,
			Name:  q.Name,
			Type:  q.Type,
			Order: order,
		})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Order < out[j].Order })
	return out, nil
}

// Close releases idle connections held by the underlying HTTP client.
func (c *Client) Close() {
	c.http.CloseIdleConnections()
}

// get performs an authenticated GET with bounded retries. Only transient
// failures are retried; auth, not-found and schema errors surface at
// once. Backoff grows linearly with the attempt number.
func (c *Client) get(ctx context.Context, path string, query url.Values, out any) error {
	var lastErr error
	for attempt := 0; attempt <= c.cfg.RetryMax; attempt++ {
		if attempt > 0 {
			delay := time.Duration(attempt) * c.cfg.RetryBackoff
			c.log.Warn("retrying JotForm request",
				zap.String("path", path),
				zap.Int("attempt", attempt),
				zap.Duration("backoff", delay),
				zap.Error(lastErr))
			select {
			case <-time.After(delay):
			case <-ctx.Done():
				return transientErr("fetch canceled while backing off", ctx.Err())
			}
		}

		err := c.doOnce(ctx, path, query, out)
		if err == nil {
			return nil
		}
		if !isTransient(err) {
			return err
		}
		lastErr = err
	}
	return lastErr
}

func (c *Client) doOnce(ctx context.Context, path string, query url.Values, out any) error {
	if query == nil {
		query = url.Values{}
	}
	query.Set("apiKey", c.cfg.APIKey)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.cfg.BaseURL+path+"?"+query.Encode(), nil)
	if err != nil {
		return schemaErr("building request", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return transientErr("request to "+path+" failed", err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden:
		return authErr(fmt.Sprintf("GET %s returned %d", path, resp.StatusCode))
	case resp.StatusCode == http.StatusNotFound:
		return notFoundErr(fmt.Sprintf("GET %s returned 404", path))
	case resp.StatusCode >= 500:
		return transientErr(fmt.Sprintf("GET %s returned %d", path, resp.StatusCode), nil)
	case resp.StatusCode != http.StatusOK:
		return schemaErrf("GET %s returned unexpected status %d", path, resp.StatusCode)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return schemaErr("decoding response from "+path, err)
	}
	return nil
}

// checkEnvelope maps the envelope-level responseCode onto the error
// taxonomy; JotForm repeats the HTTP status there.
func checkEnvelope(code int, message string) error {
	switch {
	case code == 0 || code == http.StatusOK:
		return nil
	case code == http.StatusUnauthorized || code == http.StatusForbidden:
		return authErr(message)
	case code == http.StatusNotFound:
		return notFoundErr(message)
	case code >= 500:
		return transientErr(message, nil)
	default:
		return schemaErrf("envelope responseCode %d: %s", code, message)
	}
}

func isTransient(err error) bool {
	return errors.Is(err, ErrTransient)
}
