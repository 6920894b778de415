package render

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/fumiama/go-docx"

	"github.com/ghori-academy/examgen/internal/exam"
)

// DOCX renders the exam as a single unbroken word-processor document.
//
// This layout is intentionally simpler than the HTML one: it prints the
// banner, title, subject, section headers, question labels, and plain
// question text, but does not lay out MCQ option grids or sub-parts. The two
// renderers have always diverged this way; keep them divergent.
func (r *Renderer) DOCX(e exam.Exam) *docx.Docx {
	doc := docx.New().WithDefaultTheme()

	// Font sizes are half-points.
	doc.AddParagraph().Justification("center").AddText(r.Academy).Size("36").Bold()
	doc.AddParagraph().Justification("center").AddText(e.Title).Size("26")
	doc.AddParagraph().Justification("center").AddText("Subject: " + e.Subject).Size("24").Bold()

	currentSection := ""
	for _, sec := range e.Sections {
		if sec.Name != currentSection {
			run := doc.AddParagraph().AddText(strings.ToUpper(sec.Name))
			run.Bold()
			run.Underline("single")
			currentSection = sec.Name
		}
		label := doc.AddParagraph().AddText(sec.Label + ":")
		label.Bold()
		label.Underline("single")
		for _, q := range sec.Questions {
			p := doc.AddParagraph()
			p.AddText(fmt.Sprintf("(%d) ", q.Number)).Bold()
			p.AddText(q.Text)
		}
	}

	doc.AddParagraph().Justification("center").AddText(endOfPaper).Bold()
	return doc
}

// WriteDOCX renders the exam and writes it to path, creating parent
// directories as needed.
func (r *Renderer) WriteDOCX(e exam.Exam, path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create docx dir: %w", err)
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create docx: %w", err)
	}
	defer f.Close()

	if _, err := r.DOCX(e).WriteTo(f); err != nil {
		return fmt.Errorf("write docx: %w", err)
	}
	return nil
}
