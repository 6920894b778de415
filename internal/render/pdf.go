package render

import (
	"fmt"
	"os"
	"path/filepath"

	wkhtmltopdf "github.com/SebastiaanKlippert/go-wkhtmltopdf"

	"github.com/ghori-academy/examgen/internal/exam"
)

// WritePDF renders the exam to pdfPath via wkhtmltopdf, leaving the
// intermediate HTML at htmlPath. Both parent directories are created as
// needed.
func (r *Renderer) WritePDF(e exam.Exam, htmlPath, pdfPath string) error {
	if err := os.MkdirAll(filepath.Dir(htmlPath), 0o755); err != nil {
		return fmt.Errorf("create html dir: %w", err)
	}
	if err := os.WriteFile(htmlPath, []byte(r.HTML(e)), 0o644); err != nil {
		return fmt.Errorf("write html: %w", err)
	}

	pdfg, err := wkhtmltopdf.NewPDFGenerator()
	if err != nil {
		return fmt.Errorf("init wkhtmltopdf: %w", err)
	}
	pdfg.PageSize.Set(wkhtmltopdf.PageSizeA4)
	pdfg.MarginTop.Set(0)
	pdfg.MarginBottom.Set(0)
	pdfg.MarginLeft.Set(0)
	pdfg.MarginRight.Set(0)
	pdfg.NoOutline.Set(true)

	page := wkhtmltopdf.NewPage(htmlPath)
	page.Encoding.Set("UTF-8")
	page.EnableLocalFileAccess.Set(true)
	pdfg.AddPage(page)

	if err := pdfg.Create(); err != nil {
		return fmt.Errorf("render pdf: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(pdfPath), 0o755); err != nil {
		return fmt.Errorf("create pdf dir: %w", err)
	}
	if err := pdfg.WriteFile(pdfPath); err != nil {
		return fmt.Errorf("write pdf: %w", err)
	}
	return nil
}
