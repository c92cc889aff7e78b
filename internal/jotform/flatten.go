package jotform

import (
	"encoding/json"
	"regexp"
	"strings"
	"time"

	"github.com/xunman0/BarrierLog/internal/domain/dataset"
)

// Flattening: each per-field answer object becomes one tagged cell keyed
// by a column name derived from the field's label. The mapping from
// control type to cell shape is fixed:
//
//	control_textbox/textarea/email  answer string        -> Text
//	control_dropdown/radio          answer string|{other} -> Category
//	control_checkbox                answer []string       -> Categories
//	control_datetime                prettyFormat mm-dd-yyyy -> Date
//	control_fullname                prettyFormat          -> Text
//	control_address                 prettyFormat, cleaned -> Text
//	                                (a bare-postal address -> Category)
//	control_phone                   answer.full           -> Text
//	control_number                  answer string         -> Category
//
// Anything that fails to decode under this mapping is a schema error
// naming the field and what was expected versus found.

// labelColumns maps the referral form's field labels onto the canonical
// barrier-log column names. Unlisted labels fall back to a slug of the
// label text, so new form fields become columns without code changes.
var labelColumns = map[string]string{
	"Date":                                     "date",
	"Submission Type":                          "submission_type",
	"Age":                                      "age",
	"Sex":                                      "sex",
	"Ethnicity":                                "ethnicity",
	"Zipcode":                                  "zipcode",
	"Barrier Description":                      "barrier_description",
	"Barriers":                                 "barrier_list",
	"Cause of Barrier (optional)":              "barrier_cause",
	"Solution to Barrier (optional)":           "barrier_solution",
	"Solution Pathway to Barrier (optional)":   "solution_path",
	"Referring Organization":                   "referring_org",
	"Referring Staff Name":                     "referring_staff",
	"Referring Staff Email":                    "staff_email",
	"Referring Staff Phone Number":             "staff_phone",
	"Family Contact Name":                      "family_contact",
	"Family Contact Address":                   "family_address",
	"Family Contact Phone Number":              "family_phone",
	"Family Contact Email":                     "family_email",
}

// Layout-only controls that never carry an answer.
var skipControls = map[string]bool{
	"control_head":      true,
	"control_button":    true,
	"control_pagebreak": true,
	"control_text":      true,
	"control_divider":   true,
	"control_image":     true,
}

var nonSlug = regexp.MustCompile(`[^a-z0-9]+`)

func columnName(label string) string {
	if name, ok := labelColumns[label]; ok {
		return name
	}
	slug := nonSlug.ReplaceAllString(strings.ToLower(label), "_")
	return strings.Trim(slug, "_")
}

func flattenSubmission(raw rawSubmission) (dataset.Submission, error) {
	sub := dataset.Submission{
		ID:     raw.ID,
		Fields: make(map[string]dataset.Value),
	}
	if raw.ID == "" {
		return sub, schemaErrf("submission with empty id")
	}
	if raw.CreatedAt != "" {
		t, err := time.Parse("2006-01-02 15:04:05", raw.CreatedAt)
		if err != nil {
			return sub, schemaErr("submission "+raw.ID+": created_at "+raw.CreatedAt, err)
		}
		sub.SubmittedAt = t
	}

	for qid, ans := range raw.Answers {
		if skipControls[ans.Type] || ans.Text == "" {
			continue
		}
		name := columnName(ans.Text)
		if name == "" {
			continue
		}
		v, err := answerValue(name, ans)
		if err != nil {
			return sub, schemaErrf("submission %s, field %q (qid %s): %v", raw.ID, name, qid, err)
		}
		sub.Fields[name] = v
	}
	return sub, nil
}

func answerValue(name string, ans rawAnswer) (dataset.Value, error) {
	switch ans.Type {
	case "control_textbox", "control_textarea", "control_email":
		s, err := stringAnswer(ans.Answer)
		if err != nil {
			return dataset.Value{}, err
		}
		return dataset.Text(s), nil

	case "control_dropdown", "control_radio":
		s, err := scalarOrOther(ans.Answer)
		if err != nil {
			return dataset.Value{}, err
		}
		return dataset.Category(s), nil

	case "control_number":
		s, err := stringAnswer(ans.Answer)
		if err != nil {
			return dataset.Value{}, err
		}
		return dataset.Category(s), nil

	case "control_checkbox":
		return checkboxAnswer(ans)

	case "control_datetime":
		return dateAnswer(ans)

	case "control_fullname":
		if ans.PrettyFormat != "" {
			return dataset.Text(ans.PrettyFormat), nil
		}
		return nameAnswer(ans.Answer)

	case "control_address":
		// The standalone Zipcode field is an address control with only
		// the postal part filled in.
		if name == "zipcode" {
			return postalAnswer(ans.Answer)
		}
		return dataset.Text(cleanAddress(ans.PrettyFormat)), nil

	case "control_phone":
		return phoneAnswer(ans.Answer)

	default:
		// Unknown control: take whatever scalar presentation exists
		// rather than failing, since extra fields do not affect the
		// configured charts.
		if ans.PrettyFormat != "" {
			return dataset.Text(ans.PrettyFormat), nil
		}
		if s, err := stringAnswer(ans.Answer); err == nil {
			return dataset.Text(s), nil
		}
		return dataset.Value{Kind: dataset.KindText}, nil
	}
}

func stringAnswer(raw json.RawMessage) (string, error) {
	if len(raw) == 0 || string(raw) == "null" {
		return "", nil
	}
	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		return "", schemaErrf("expected string answer, found %s", preview(raw))
	}
	return s, nil
}

// scalarOrOther handles single-choice answers, which arrive either as a
// plain string or, when "Other" was selected, as {"other": "..."}.
func scalarOrOther(raw json.RawMessage) (string, error) {
	if len(raw) == 0 || string(raw) == "null" {
		return "", nil
	}
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return s, nil
	}
	var obj struct {
		Other string `json:"other"`
	}
	if err := json.Unmarshal(raw, &obj); err != nil {
		return "", schemaErrf("expected string or {other} answer, found %s", preview(raw))
	}
	return obj.Other, nil
}

func checkboxAnswer(ans rawAnswer) (dataset.Value, error) {
	if len(ans.Answer) > 0 && string(ans.Answer) != "null" {
		var items []string
		if err := json.Unmarshal(ans.Answer, &items); err != nil {
			return dataset.Value{}, schemaErrf("expected list answer, found %s", preview(ans.Answer))
		}
		return dataset.Categories(items), nil
	}
	// Older submissions only carry the pretty "a; b; c" form.
	if ans.PrettyFormat != "" {
		parts := strings.Split(ans.PrettyFormat, ";")
		for i := range parts {
			parts[i] = strings.TrimSpace(parts[i])
		}
		return dataset.Categories(parts), nil
	}
	return dataset.Value{Kind: dataset.KindCategories}, nil
}

func dateAnswer(ans rawAnswer) (dataset.Value, error) {
	if ans.PrettyFormat != "" {
		t, err := time.Parse("01-02-2006", ans.PrettyFormat)
		if err != nil {
			return dataset.Value{}, schemaErrf("expected mm-dd-yyyy date, found %q", ans.PrettyFormat)
		}
		return dataset.Date(t), nil
	}
	if len(ans.Answer) == 0 || string(ans.Answer) == "null" {
		return dataset.Value{Kind: dataset.KindDate}, nil
	}
	var obj struct {
		Year  string `json:"year"`
		Month string `json:"month"`
		Day   string `json:"day"`
	}
	if err := json.Unmarshal(ans.Answer, &obj); err != nil {
		return dataset.Value{}, schemaErrf("expected date answer, found %s", preview(ans.Answer))
	}
	t, err := time.Parse("2006-1-2", obj.Year+"-"+obj.Month+"-"+obj.Day)
	if err != nil {
		return dataset.Value{}, schemaErrf("expected year/month/day date, found %s", preview(ans.Answer))
	}
	return dataset.Date(t), nil
}

func nameAnswer(raw json.RawMessage) (dataset.Value, error) {
	if len(raw) == 0 || string(raw) == "null" {
		return dataset.Value{Kind: dataset.KindText}, nil
	}
	var obj struct {
		First string `json:"first"`
		Last  string `json:"last"`
	}
	if err := json.Unmarshal(raw, &obj); err != nil {
		return dataset.Value{}, schemaErrf("expected name answer, found %s", preview(raw))
	}
	return dataset.Text(strings.TrimSpace(obj.First + " " + obj.Last)), nil
}

func postalAnswer(raw json.RawMessage) (dataset.Value, error) {
	if len(raw) == 0 || string(raw) == "null" {
		return dataset.Value{Kind: dataset.KindCategory}, nil
	}
	var obj struct {
		Postal string `json:"postal"`
	}
	if err := json.Unmarshal(raw, &obj); err != nil {
		return dataset.Value{}, schemaErrf("expected {postal} answer, found %s", preview(raw))
	}
	return dataset.Category(obj.Postal), nil
}

func phoneAnswer(raw json.RawMessage) (dataset.Value, error) {
	if len(raw) == 0 || string(raw) == "null" {
		return dataset.Value{Kind: dataset.KindText}, nil
	}
	var obj struct {
		Full  string `json:"full"`
		Area  string `json:"area"`
		Phone string `json:"phone"`
	}
	if err := json.Unmarshal(raw, &obj); err != nil {
		return dataset.Value{}, schemaErrf("expected phone answer, found %s", preview(raw))
	}
	if obj.Full != "" {
		return dataset.Text(obj.Full), nil
	}
	return dataset.Text(strings.TrimSpace(obj.Area + " " + obj.Phone)), nil
}

// addressNoise strips the per-line labels and markup JotForm embeds in
// an address prettyFormat.
var addressNoise = regexp.MustCompile(`(City:|State|Province:|Postal|Zip\s*Code:|Street\s*Address:|Address\s*Line\s*2:|<br>|/)`)

var multiSpace = regexp.MustCompile(`\s+`)

func cleanAddress(pretty string) string {
	cleaned := addressNoise.ReplaceAllString(pretty, " ")
	return strings.TrimSpace(multiSpace.ReplaceAllString(cleaned, " "))
}

func preview(raw json.RawMessage) string {
	const max = 80
	s := string(raw)
	if len(s) > max {
		s = s[:max] + "..."
	}
	return s
}
