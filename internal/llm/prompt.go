package llm

import (
	"fmt"
	"strings"

	"github.com/ghori-academy/examgen/internal/pattern"
)

const generateSystemPrompt = `You are an expert exam paper generator. Output ONLY valid JSON, no explanation.

CRITICAL: Every question MUST have these fields:
- question_number (integer)
- question_text (string, never empty)
- marks (integer)

MCQ questions MUST also have:
- options: {"A": "...", "B": "...", "C": "...", "D": "..."}
- correct_answer: "A", "B", "C", or "D"

LONG questions with sub_parts MUST have:
- sub_parts: [{"part": "a", "text": "...", "marks": 5}, {"part": "b", "text": "...", "marks": 4}]`

const generateExampleJSON = `{
  "exam_title": "Annual Examination",
  "subject": "%s",
  "total_marks": %d,
  "time_allowed": "%s",
  "sections": [
    {
      "question_label": "Q#1",
      "section_name": "OBJECTIVE TYPE",
      "section_type": "MCQ",
      "instructions": "Choose the correct answer. Each MCQ carries 1 mark.",
      "attempt_rule": null,
      "questions": [
        {
          "question_number": 1,
          "question_text": "What is the atomic number of Carbon?",
          "options": {"A": "6", "B": "8", "C": "12", "D": "14"},
          "correct_answer": "A",
          "marks": 1
        }
      ]
    },
    {
      "question_label": "Q#2",
      "section_name": "SUBJECTIVE TYPE (Part-I)",
      "section_type": "SHORT",
      "instructions": "Attempt any 5 out of 8. Each carries 2 marks.",
      "attempt_rule": "Attempt any 5 out of 8",
      "questions": [
        {
          "question_number": 1,
          "question_text": "Define atomic mass.",
          "marks": 2
        }
      ]
    },
    {
      "question_label": "Q#5",
      "section_name": "SUBJECTIVE TYPE (Part-II)",
      "section_type": "LONG",
      "instructions": "Attempt any 2 out of 3.",
      "attempt_rule": "Attempt any 2 out of 3",
      "questions": [
        {
          "question_number": 1,
          "question_text": "Explain the following:",
          "sub_parts": [
            {"part": "a", "text": "Explain ionic bonding with examples.", "marks": 5},
            {"part": "b", "text": "Differentiate between ionic and covalent bonds.", "marks": 4}
          ],
          "marks": 9
        }
      ]
    }
  ]
}`

// sectionDescription renders the paper pattern as plain text for the
// generation prompt: one block per section with its type, counts, marks,
// attempt rule, and sub-part weights.
func sectionDescription(p pattern.Subject) string {
	var sb strings.Builder
	for _, sec := range p.Sections {
		fmt.Fprintf(&sb, "\n%s: %s", sec.Label, sec.Name)
		fmt.Fprintf(&sb, "\n  Type: %s, Questions: %d", sec.Type, sec.NumQuestions)
		if sec.MarksEach > 0 {
			fmt.Fprintf(&sb, ", %d marks each", sec.MarksEach)
		}
		fmt.Fprintf(&sb, ", Total: %d marks", sec.TotalMarks)
		if sec.AttemptRule != "" {
			fmt.Fprintf(&sb, "\n  Rule: %s", sec.AttemptRule)
		}
		for _, sp := range sec.SubParts {
			fmt.Fprintf(&sb, "\n  Part (%s): %d marks", sp.Part, sp.Marks)
		}
	}
	return sb.String()
}

func buildGeneratePrompt(p pattern.Subject, material string) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "Generate a %s exam paper.\n\n", p.Name)
	fmt.Fprintf(&sb, "Total Marks: %d\nTime: %s\n\n", p.TotalMarks, p.TimeAllowed)
	sb.WriteString("PAPER PATTERN:\n")
	sb.WriteString(sectionDescription(p))
	sb.WriteString("\n\nSTUDY MATERIAL:\n")
	sb.WriteString(material)
	sb.WriteString("\n\nOUTPUT THIS EXACT JSON STRUCTURE:\n")
	fmt.Fprintf(&sb, generateExampleJSON, p.Name, p.TotalMarks, p.TimeAllowed)
	sb.WriteString("\n\nGenerate the complete exam now with ALL sections filled:")
	return sb.String()
}
