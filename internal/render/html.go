// Package render turns a validated exam into print-ready documents: a
// two-page A4 HTML layout (the input for wkhtmltopdf) and a simpler
// single-flow DOCX. Both renderings are pure functions of the exam; the
// file-writing entry points live in pdf.go and docx.go.
package render

import (
	"fmt"
	"html"
	"strings"

	"github.com/ghori-academy/examgen/internal/exam"
)

// endOfPaper is the centered marker closing the second page.
const endOfPaper = "✦ END OF PAPER ✦"

// pageLookahead is how far past the midpoint the page split may move to land
// on a section header.
const pageLookahead = 10

// Renderer composes exam documents under a fixed institution banner.
type Renderer struct {
	Academy string
}

// NewRenderer returns a Renderer with the given institution banner text.
func NewRenderer(academy string) *Renderer {
	return &Renderer{Academy: academy}
}

const htmlHead = `<!DOCTYPE html><html><head><meta charset="UTF-8">
<style>
@page { size: A4; margin: 10mm 12mm; }
* { margin: 0; padding: 0; box-sizing: border-box; }
body { font-family: 'Times New Roman', serif; font-size: 10pt; line-height: 1.35; color: #000; }
.page { width: 100%; page-break-after: always; }
.page:last-child { page-break-after: avoid; }
.header { text-align: center; border-bottom: 2.5px double #000; padding-bottom: 6px; margin-bottom: 6px; }
.academy { font-size: 16pt; font-weight: bold; letter-spacing: 3px; text-transform: uppercase; }
.exam-title { font-size: 12pt; margin: 2px 0; }
.subject-line { font-size: 11pt; font-weight: bold; }
.meta { display: flex; justify-content: space-between; font-size: 9.5pt; margin: 4px 0; font-weight: bold; }
.student-row { display: flex; justify-content: space-between; font-size: 9.5pt; margin: 3px 0 8px; }
.student-row span { border-bottom: 1px solid #666; min-width: 150px; display: inline-block; }
.sec-h { font-size: 10.5pt; font-weight: bold; text-transform: uppercase; background: #f0f0f0; padding: 3px 8px; margin: 8px 0 4px; border-left: 3px solid #000; }
.q-label { font-size: 10pt; font-weight: bold; text-decoration: underline; margin: 6px 0 2px; }
.inst { font-style: italic; font-size: 9pt; color: #333; margin: 1px 0 4px 12px; }
.rule { font-weight: bold; color: #900; font-size: 9pt; margin: 1px 0 4px 12px; }
.q { margin: 3px 0; font-size: 9.5pt; }
.q-num { font-weight: bold; }
.q-marks { float: right; font-size: 8.5pt; color: #555; font-weight: bold; }
.opts { margin: 2px 0 4px 18px; display: grid; grid-template-columns: 1fr 1fr; gap: 1px 15px; font-size: 9.5pt; }
.sub { margin: 2px 0 2px 18px; font-size: 9.5pt; }
.sub-l { font-weight: bold; }
.footer { text-align: center; margin-top: 8px; padding-top: 4px; border-top: 2px solid #000; font-size: 9pt; font-weight: bold; letter-spacing: 2px; }
</style></head><body>`

// HTML renders the exam as a two-page A4 document. Each page repeats the
// header block; the body units are split at the midpoint, nudged forward to
// the next section header when one sits within the lookahead window.
func (r *Renderer) HTML(e exam.Exam) string {
	units := r.units(e)
	split := splitIndex(units)
	header := r.pageHeader(e)

	var b strings.Builder
	b.WriteString(htmlHead)
	b.WriteString(`<div class="page">` + header + "\n")
	b.WriteString(strings.Join(units[:split], ""))
	b.WriteString("</div>\n")
	b.WriteString(`<div class="page">` + header + "\n")
	b.WriteString(strings.Join(units[split:], ""))
	b.WriteString("\n<div class=\"footer\">" + endOfPaper + "</div></div>\n")
	b.WriteString("</body></html>")
	return b.String()
}

func (r *Renderer) pageHeader(e exam.Exam) string {
	return fmt.Sprintf(`<div class="header"><div class="academy">%s</div><div class="exam-title">%s</div><div class="subject-line">Subject: %s</div></div>
<div class="meta"><div>Total Marks: %d</div><div>Time: %s</div></div>
<div class="student-row"><div>Name: <span></span></div><div>Roll No: <span></span></div></div>`,
		html.EscapeString(r.Academy), html.EscapeString(e.Title),
		html.EscapeString(e.Subject), e.TotalMarks, html.EscapeString(e.TimeAllowed))
}

// units renders every section and question into an ordered list of HTML
// blocks, one block per line of output. The section header block is emitted
// only when the section name changes, so contiguous same-name sections share
// one visual header.
func (r *Renderer) units(e exam.Exam) []string {
	var units []string
	currentSection := ""
	for _, sec := range e.Sections {
		if sec.Name != currentSection {
			units = append(units, fmt.Sprintf("<div class=\"sec-h\">%s</div>\n", html.EscapeString(sec.Name)))
			currentSection = sec.Name
		}
		units = append(units, fmt.Sprintf("<div class=\"q-label\">%s:</div>\n", html.EscapeString(sec.Label)))
		if sec.Instructions != "" {
			units = append(units, fmt.Sprintf("<div class=\"inst\">%s</div>\n", html.EscapeString(sec.Instructions)))
		}
		if sec.AttemptRule != nil && *sec.AttemptRule != "" {
			units = append(units, fmt.Sprintf("<div class=\"rule\">Note: %s</div>\n", html.EscapeString(*sec.AttemptRule)))
		}
		for _, q := range sec.Questions {
			units = append(units, questionUnits(sec, q)...)
		}
	}
	return units
}

func questionUnits(sec exam.Section, q exam.Question) []string {
	switch {
	case sec.Type == "MCQ" || sec.Type == "MCQ_MIXED":
		var b strings.Builder
		fmt.Fprintf(&b, "<div class=\"q\"><span class=\"q-num\">(%d)</span> %s\n", q.Number, html.EscapeString(q.Text))
		if len(q.Options) > 0 {
			b.WriteString(`<div class="opts">`)
			for _, letter := range []string{"A", "B", "C", "D"} {
				if q.Options[letter] != "" {
					fmt.Fprintf(&b, "<div><span class=\"q-num\">(%s)</span> %s</div>", letter, html.EscapeString(q.Options[letter]))
				}
			}
			b.WriteString("</div>")
		}
		b.WriteString("</div>\n")
		return []string{b.String()}

	case len(q.SubParts) > 0:
		units := []string{fmt.Sprintf("<div class=\"q\"><span class=\"q-num\">%s</span> <span class=\"q-marks\">[%d Marks]</span></div>\n",
			html.EscapeString(sec.Label), q.Marks)}
		for _, sp := range q.SubParts {
			units = append(units, fmt.Sprintf("<div class=\"sub\"><span class=\"sub-l\">(%s)</span> %s [%d]</div>\n",
				html.EscapeString(sp.Part), html.EscapeString(sp.Text), sp.Marks))
		}
		return units

	default:
		return []string{fmt.Sprintf("<div class=\"q\"><span class=\"q-num\">(%d)</span> %s <span class=\"q-marks\">[%d]</span></div>\n",
			q.Number, html.EscapeString(q.Text), q.Marks)}
	}
}

// splitIndex picks where page one ends. The split starts at the midpoint and
// moves forward up to pageLookahead units to land on a section header, so a
// section does not open at the bottom of page one; with no header in the
// window the split stays at the midpoint.
func splitIndex(units []string) int {
	mid := len(units) / 2
	end := mid + pageLookahead
	if end > len(units) {
		end = len(units)
	}
	for i := mid; i < end; i++ {
		if strings.Contains(units[i], "sec-h") {
			return i
		}
	}
	return mid
}
