package jotform

import (
	"encoding/json"
	"time"
)

// Wire types for the JotForm REST API. Responses arrive as an envelope
// with a responseCode mirroring the HTTP status, a content payload, and
// rate-limit metadata.

type submissionsEnvelope struct {
	ResponseCode int             `json:"responseCode"`
	Message      string          `json:"message"`
	Content      []rawSubmission `json:"content"`
	LimitLeft    int             `json:"limit-left"`
}

type rawSubmission struct {
	ID        string               `json:"id"`
	FormID    string               `json:"form_id"`
	CreatedAt string               `json:"created_at"`
	Status    string               `json:"status"`
	Answers   map[string]rawAnswer `json:"answers"`
}

// rawAnswer is one per-field answer object. Answer stays raw because its
// shape depends on the control type: string for text fields, array for
// checkboxes, object for names, addresses and phone numbers.
type rawAnswer struct {
	Name         string          `json:"name"`
	Text         string          `json:"text"`
	Type         string          `json:"type"`
	Answer       json.RawMessage `json:"answer"`
	PrettyFormat string          `json:"prettyFormat"`
}

type formEnvelope struct {
	ResponseCode int     `json:"responseCode"`
	Message      string  `json:"message"`
	Content      rawForm `json:"content"`
}

// rawForm carries form properties; JotForm returns numeric fields as
// strings here.
type rawForm struct {
	ID        string `json:"id"`
	Title     string `json:"title"`
	Status    string `json:"status"`
	CreatedAt string `json:"created_at"`
	Count     string `json:"count"`
}

type questionsEnvelope struct {
	ResponseCode int                    `json:"responseCode"`
	Message      string                 `json:"message"`
	Content      map[string]rawQuestion `json:"content"`
}

type rawQuestion struct {
	QID   string `json:"qid"`
	Type  string `json:"type"`
	Text  string `json:"text"`
	Name  string `json:"name"`
	Order string `json:"order"`
}

// FormInfo is the form-level metadata exposed without fetching
// submissions.
type FormInfo struct {
	ID              string
	Title           string
	Status          string
	CreatedAt       time.Time
	SubmissionCount int
}

// Question describes one field of the remote form schema.
type Question struct {
	QID   string
	Label string
	Name  string
	Type  string
	Order int
}
