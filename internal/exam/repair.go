package exam

import (
	"fmt"

	"github.com/ghori-academy/examgen/internal/pattern"
)

// DefaultTitle is used when the model output carries no exam title.
const DefaultTitle = "Annual Examination"

// Repair converts an arbitrary JSON-shaped value into a structurally valid
// Exam. It is a total function: whatever the model produced, every field of
// the result is populated, using the subject pattern's values as defaults.
// Only shape is repaired; mark totals are taken as-is and never reconciled
// against the pattern.
//
// Repair is pure. It reads the input value and returns a fresh Exam.
func Repair(raw any, p pattern.Subject) Exam {
	m, _ := raw.(map[string]any)

	e := Exam{
		Title:       DefaultTitle,
		Subject:     p.Name,
		TotalMarks:  p.TotalMarks,
		TimeAllowed: p.TimeAllowed,
		Sections:    []Section{},
	}
	if s := asString(m["exam_title"]); s != "" {
		e.Title = s
	}
	if s := asString(m["subject"]); s != "" {
		e.Subject = s
	}
	if truthy(m["total_marks"]) {
		if n, ok := asInt(m["total_marks"]); ok {
			e.TotalMarks = n
		}
	}
	if s := asString(m["time_allowed"]); s != "" {
		e.TimeAllowed = s
	}

	sections, _ := m["sections"].([]any)
	for i, sv := range sections {
		e.Sections = append(e.Sections, repairSection(sv, i))
	}
	return e
}

func repairSection(raw any, i int) Section {
	m, _ := raw.(map[string]any)

	sec := Section{
		Name:         fmt.Sprintf("Section %d", i+1),
		Label:        fmt.Sprintf("Q#%d", i+1),
		Type:         "SHORT",
		Instructions: "",
		Questions:    []Question{},
	}
	if s := asString(m["section_name"]); s != "" {
		sec.Name = s
	}
	if s := asString(m["question_label"]); s != "" {
		sec.Label = s
	}
	if s := asString(m["section_type"]); s != "" {
		sec.Type = s
	}
	if s := asString(m["instructions"]); s != "" {
		sec.Instructions = s
	}
	// Attempt rule stays an explicit null unless the model provided one.
	if s := asString(m["attempt_rule"]); s != "" {
		sec.AttemptRule = &s
	}

	questions, _ := m["questions"].([]any)
	for j, qv := range questions {
		sec.Questions = append(sec.Questions, repairQuestion(qv, j, sec.Type))
	}
	return sec
}

func repairQuestion(raw any, j int, sectionType string) Question {
	m, _ := raw.(map[string]any)

	q := Question{
		Number: j + 1,
		Text:   fmt.Sprintf("Question %d", j+1),
		Marks:  1,
	}
	// A question_number of 0 counts as missing and is renumbered.
	if truthy(m["question_number"]) {
		if n, ok := asInt(m["question_number"]); ok {
			q.Number = n
		}
	}
	if s := asString(m["question_text"]); s != "" {
		q.Text = s
	}
	if truthy(m["marks"]) {
		if n, ok := asInt(m["marks"]); ok {
			q.Marks = n
		}
	}

	// Options and correct answer pass through untouched for every section
	// type; only an exact "MCQ" section gets the completeness guarantee.
	// MCQ_MIXED is deliberately not repaired here.
	if opts, ok := m["options"].(map[string]any); ok {
		q.Options = make(map[string]string, len(opts))
		for k, v := range opts {
			q.Options[k] = asString(v)
		}
	}
	q.CorrectAnswer = asString(m["correct_answer"])

	if sectionType == "MCQ" {
		if !truthy(m["options"]) || q.Options == nil {
			q.Options = map[string]string{
				"A": "Option A", "B": "Option B", "C": "Option C", "D": "Option D",
			}
		} else {
			for _, letter := range []string{"A", "B", "C", "D"} {
				if q.Options[letter] == "" {
					q.Options[letter] = "Option " + letter
				}
			}
		}
		switch q.CorrectAnswer {
		case "A", "B", "C", "D":
		default:
			q.CorrectAnswer = "A"
		}
	}

	// Sub-parts are carried for any section type but only repaired on LONG
	// questions that actually declare them.
	if rawParts, present := m["sub_parts"]; present {
		parts, _ := rawParts.([]any)
		q.SubParts = make([]SubPart, 0, len(parts))
		for _, pv := range parts {
			q.SubParts = append(q.SubParts, convertSubPart(pv))
		}
		if sectionType == "LONG" && truthy(rawParts) {
			for k := range q.SubParts {
				repairSubPart(&q.SubParts[k])
			}
		}
	}
	return q
}

func convertSubPart(raw any) SubPart {
	m, _ := raw.(map[string]any)
	sp := SubPart{
		Part: asString(m["part"]),
		Text: asString(m["text"]),
	}
	if n, ok := asInt(m["marks"]); ok {
		sp.Marks = n
	}
	return sp
}

// repairSubPart fills each missing field independently. Every sub-part with
// a missing part label gets "a", so two incomplete sub-parts can end up with
// duplicate labels; that matches the established behavior and is not
// deduplicated.
func repairSubPart(sp *SubPart) {
	if sp.Part == "" {
		sp.Part = "a"
	}
	if sp.Text == "" {
		sp.Text = "Sub-question"
	}
	if sp.Marks == 0 {
		sp.Marks = 4
	}
}

// truthy reports whether a JSON value counts as present: non-nil, non-false,
// non-empty, non-zero.
func truthy(v any) bool {
	switch t := v.(type) {
	case nil:
		return false
	case bool:
		return t
	case string:
		return t != ""
	case float64:
		return t != 0
	case int:
		return t != 0
	case []any:
		return len(t) > 0
	case map[string]any:
		return len(t) > 0
	default:
		return true
	}
}

func asString(v any) string {
	s, _ := v.(string)
	return s
}

func asInt(v any) (int, bool) {
	switch t := v.(type) {
	case float64:
		return int(t), true
	case int:
		return t, true
	default:
		return 0, false
	}
}
