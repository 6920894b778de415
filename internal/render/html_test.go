package render

import (
	"strings"
	"testing"

	"github.com/ghori-academy/examgen/internal/exam"
)

func shortSection(name, label string, n int) exam.Section {
	sec := exam.Section{Name: name, Label: label, Type: "SHORT", Instructions: "Attempt all."}
	for i := 1; i <= n; i++ {
		sec.Questions = append(sec.Questions, exam.Question{Number: i, Text: "Define something.", Marks: 2})
	}
	return sec
}

func sampleExam() exam.Exam {
	return exam.Exam{
		Title:       "Annual Examination",
		Subject:     "Chemistry",
		TotalMarks:  60,
		TimeAllowed: "2 Hours 30 Minutes",
		Sections: []exam.Section{
			{
				Name: "OBJECTIVE TYPE", Label: "Q#1", Type: "MCQ",
				Instructions: "Choose the correct answer.",
				Questions: []exam.Question{
					{Number: 1, Text: "Atomic number of carbon?", Marks: 1,
						Options:       map[string]string{"A": "6", "B": "8", "C": "12", "D": "14"},
						CorrectAnswer: "A"},
				},
			},
			shortSection("SUBJECTIVE TYPE (Part-I)", "Q#2", 4),
			shortSection("SUBJECTIVE TYPE (Part-I)", "Q#3", 4),
		},
	}
}

func TestUnitsSectionGrouping(t *testing.T) {
	r := NewRenderer("GHORI ACADEMY")
	units := r.units(sampleExam())

	headers := 0
	for _, u := range units {
		if strings.Contains(u, "sec-h") {
			headers++
		}
	}
	// Q#2 and Q#3 share a section name, so only two headers are emitted.
	if headers != 2 {
		t.Errorf("expected 2 section headers, got %d", headers)
	}
}

func TestUnitsMCQGrid(t *testing.T) {
	r := NewRenderer("GHORI ACADEMY")
	e := sampleExam()
	// Blank out one option; it must be omitted from the grid.
	e.Sections[0].Questions[0].Options["C"] = ""

	units := r.units(e)
	var mcq string
	for _, u := range units {
		if strings.Contains(u, "opts") {
			mcq = u
			break
		}
	}
	if mcq == "" {
		t.Fatal("no MCQ option grid rendered")
	}
	for _, want := range []string{"(A)", "(B)", "(D)"} {
		if !strings.Contains(mcq, want) {
			t.Errorf("option grid missing %s", want)
		}
	}
	if strings.Contains(mcq, "(C)") {
		t.Error("empty option C should be omitted")
	}
	// Fixed A,B,D order.
	if strings.Index(mcq, "(A)") > strings.Index(mcq, "(B)") || strings.Index(mcq, "(B)") > strings.Index(mcq, "(D)") {
		t.Error("options out of order")
	}
}

func TestUnitsSubParts(t *testing.T) {
	r := NewRenderer("GHORI ACADEMY")
	e := exam.Exam{
		Title: "T", Subject: "S", TotalMarks: 9, TimeAllowed: "1 Hour",
		Sections: []exam.Section{{
			Name: "SUBJECTIVE TYPE (Part-II)", Label: "Q#5", Type: "LONG",
			Questions: []exam.Question{{
				Number: 1, Text: "Explain:", Marks: 9,
				SubParts: []exam.SubPart{
					{Part: "a", Text: "Ionic bonding.", Marks: 5},
					{Part: "b", Text: "Covalent bonding.", Marks: 4},
				},
			}},
		}},
	}

	units := r.units(e)
	joined := strings.Join(units, "")
	if !strings.Contains(joined, "[9 Marks]") {
		t.Error("parent question marks not rendered")
	}
	if !strings.Contains(joined, "(a)</span> Ionic bonding. [5]") {
		t.Errorf("sub-part a not rendered: %s", joined)
	}
	if !strings.Contains(joined, "(b)</span> Covalent bonding. [4]") {
		t.Errorf("sub-part b not rendered: %s", joined)
	}
}

func TestSplitIndexOnSectionHeader(t *testing.T) {
	// 20 units with a section header at index 12: midpoint 10, header within
	// the 10-unit window, so the split lands exactly on 12.
	units := make([]string, 20)
	for i := range units {
		units[i] = "<div class=\"q\">question</div>\n"
	}
	units[12] = "<div class=\"sec-h\">SECTION</div>\n"

	if got := splitIndex(units); got != 12 {
		t.Errorf("splitIndex = %d, want 12", got)
	}
}

func TestSplitIndexNoHeaderInWindow(t *testing.T) {
	units := make([]string, 21)
	for i := range units {
		units[i] = "<div class=\"q\">question</div>\n"
	}
	// Header before the midpoint does not count.
	units[2] = "<div class=\"sec-h\">SECTION</div>\n"

	if got := splitIndex(units); got != 10 {
		t.Errorf("splitIndex = %d, want floor(21/2)=10", got)
	}
}

func TestSplitIndexHeaderBeyondWindow(t *testing.T) {
	units := make([]string, 40)
	for i := range units {
		units[i] = "<div class=\"q\">question</div>\n"
	}
	units[35] = "<div class=\"sec-h\">SECTION</div>\n"

	// Header at 35 is outside the midpoint+10 window, split stays at 20.
	if got := splitIndex(units); got != 20 {
		t.Errorf("splitIndex = %d, want 20", got)
	}
}

func TestSplitDeterministicUnderReordering(t *testing.T) {
	r := NewRenderer("GHORI ACADEMY")
	e := sampleExam()

	before := splitIndex(r.units(e))

	// Swapping the two same-shaped SHORT sections keeps unit count and
	// header positions, so the split must not move.
	e.Sections[1], e.Sections[2] = e.Sections[2], e.Sections[1]
	after := splitIndex(r.units(e))

	if before != after {
		t.Errorf("split moved under reordering: %d -> %d", before, after)
	}
}

func TestHTMLPages(t *testing.T) {
	r := NewRenderer("GHORI ACADEMY")
	out := r.HTML(sampleExam())

	if got := strings.Count(out, `<div class="page">`); got != 2 {
		t.Errorf("expected 2 pages, got %d", got)
	}
	// Identical header block on both pages.
	if got := strings.Count(out, `<div class="academy">GHORI ACADEMY</div>`); got != 2 {
		t.Errorf("expected banner on both pages, got %d", got)
	}
	if got := strings.Count(out, endOfPaper); got != 1 {
		t.Errorf("expected one end-of-paper marker, got %d", got)
	}
	if !strings.Contains(out, "Total Marks: 60") || !strings.Contains(out, "Time: 2 Hours 30 Minutes") {
		t.Error("meta line missing")
	}
}

func TestHTMLEscapesText(t *testing.T) {
	r := NewRenderer("GHORI ACADEMY")
	e := sampleExam()
	e.Sections[0].Questions[0].Text = "Is 2 < 3 & 4 > 1?"

	out := r.HTML(e)
	if !strings.Contains(out, "Is 2 &lt; 3 &amp; 4 &gt; 1?") {
		t.Error("question text not escaped")
	}
}
