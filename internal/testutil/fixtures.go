package testutil

import (
	"strconv"
	"strings"
)

// Answer builders produce the per-field answer objects the JotForm API
// nests inside a submission. The "text" property carries the field label
// that flattening maps to a column name.

func answer(label, control string) map[string]any {
	slug := strings.ToLower(strings.ReplaceAll(label, " ", "_"))
	return map[string]any{"name": slug, "text": label, "type": control}
}

// TextAnswer builds a free-text (control_textbox) answer.
func TextAnswer(label, value string) map[string]any {
	a := answer(label, "control_textbox")
	a["answer"] = value
	return a
}

// ChoiceAnswer builds a single-choice (control_radio) answer.
func ChoiceAnswer(label, value string) map[string]any {
	a := answer(label, "control_radio")
	a["answer"] = value
	return a
}

// NumberAnswer builds a numeric (control_number) answer.
func NumberAnswer(label, value string) map[string]any {
	a := answer(label, "control_number")
	a["answer"] = value
	return a
}

// CheckboxAnswer builds a multi-select (control_checkbox) answer with
// both the array form and the pretty "a; b" form, as the API sends both.
func CheckboxAnswer(label string, values ...string) map[string]any {
	a := answer(label, "control_checkbox")
	a["answer"] = values
	a["prettyFormat"] = strings.Join(values, "; ")
	return a
}

// DateAnswer builds a control_datetime answer from an mm-dd-yyyy date.
func DateAnswer(label, pretty string) map[string]any {
	a := answer(label, "control_datetime")
	a["prettyFormat"] = pretty
	return a
}

// ZipAnswer builds the standalone Zipcode field: an address control with
// only the postal part filled in.
func ZipAnswer(postal string) map[string]any {
	a := answer("Zipcode", "control_address")
	a["answer"] = map[string]any{"postal": postal}
	return a
}

// AddressAnswer builds a full-address answer with JotForm's labeled
// prettyFormat markup.
func AddressAnswer(label, pretty string) map[string]any {
	a := answer(label, "control_address")
	a["answer"] = map[string]any{}
	a["prettyFormat"] = pretty
	return a
}

// Submission assembles an ACTIVE submission from answer objects, keyed
// by sequential question IDs the way the API returns them.
func Submission(id, created string, answers ...map[string]any) map[string]any {
	ans := make(map[string]any, len(answers))
	for i, a := range answers {
		ans[strconv.Itoa(i+3)] = a
	}
	return map[string]any{
		"id":         id,
		"form_id":    "9001",
		"created_at": created,
		"status":     "ACTIVE",
		"answers":    ans,
	}
}

// Deleted marks a submission fixture as soft-deleted on the remote form.
func Deleted(sub map[string]any) map[string]any {
	sub["status"] = "DELETED"
	return sub
}

// DemoSubmissions returns three ACTIVE submissions with a known barrier
// tally: Transportation appears twice, Housing and Food Access once each.
func DemoSubmissions() []map[string]any {
	return []map[string]any{
		Submission("6001", "2024-03-01 09:15:00",
			DateAnswer("Date", "03-01-2024"),
			ChoiceAnswer("Submission Type", "Self-Referral"),
			NumberAnswer("Age", "34"),
			ChoiceAnswer("Sex", "Female"),
			ChoiceAnswer("Ethnicity", "Hispanic or Latino"),
			ZipAnswer("95814"),
			CheckboxAnswer("Barriers", "Transportation", "Housing"),
			TextAnswer("Barrier Description", "No reliable ride to appointments."),
		),
		Submission("6002", "2024-03-12 14:02:00",
			DateAnswer("Date", "03-12-2024"),
			ChoiceAnswer("Submission Type", "Organization Referral"),
			NumberAnswer("Age", "41"),
			ChoiceAnswer("Sex", "Male"),
			ChoiceAnswer("Ethnicity", "White"),
			ZipAnswer("95630"),
			CheckboxAnswer("Barriers", "Transportation"),
			TextAnswer("Barrier Description", "Bus route was discontinued."),
		),
		Submission("6003", "2024-04-02 08:45:00",
			DateAnswer("Date", "04-02-2024"),
			ChoiceAnswer("Submission Type", "Barrier Log"),
			NumberAnswer("Age", "29"),
			ChoiceAnswer("Sex", "Female"),
			ChoiceAnswer("Ethnicity", "Black or African American"),
			ZipAnswer("95814"),
			CheckboxAnswer("Barriers", "Food Access"),
			TextAnswer("Barrier Description", "Nearest food bank is across town."),
		),
	}
}
