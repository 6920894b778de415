package ocr

import (
	"regexp"
	"strings"
)

var (
	leadingNumComma = regexp.MustCompile(`^(\d+),(\s)`)
	digitComma      = regexp.MustCompile(`(\d),(\d)`)
	ofThe           = regexp.MustCompile(`\bofthe\b`)
	gramsRun        = regexp.MustCompile(`(\d+)grams?\b`)
	bracketMarks    = regexp.MustCompile(`\[\s*(\d+)\s*\]`)
	tabRun          = regexp.MustCompile(`\t+`)
)

// watermarkTokens mark lines injected by scan-sharing sites; any line
// containing one (case-insensitive) is dropped.
var watermarkTokens = []string{"WWW.", "FREEILM", ".COM"}

// LocalClean is the deterministic fallback used when the LLM text cleanup is
// unavailable. It strips Arabic-script characters, drops watermark and
// address lines, and fixes the digit and spacing artifacts OCR typically
// introduces. Repeated runs on the same input produce identical output.
func LocalClean(text string) string {
	var cleaned []string
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			if len(cleaned) > 0 && cleaned[len(cleaned)-1] != "" {
				cleaned = append(cleaned, "")
			}
			continue
		}

		line = stripArabic(line)

		upper := strings.ToUpper(line)
		watermark := false
		for _, tok := range watermarkTokens {
			if strings.Contains(upper, tok) {
				watermark = true
				break
			}
		}
		if watermark {
			continue
		}
		if strings.Count(line, "@") > 1 {
			continue
		}

		line = leadingNumComma.ReplaceAllString(line, "$1.$2")
		line = digitComma.ReplaceAllString(line, "$1.$2")
		line = ofThe.ReplaceAllString(line, "of the")
		line = gramsRun.ReplaceAllString(line, "$1 grams")
		line = bracketMarks.ReplaceAllString(line, "[$1 marks]")
		line = strings.TrimSpace(tabRun.ReplaceAllString(line, "  "))

		if len(line) >= 2 {
			cleaned = append(cleaned, line)
		}
	}
	return strings.TrimSpace(strings.Join(cleaned, "\n"))
}

// stripArabic removes characters in the Arabic and Arabic Presentation Forms
// blocks, which show up when Urdu-annotated pages are scanned.
func stripArabic(s string) string {
	return strings.Map(func(r rune) rune {
		if (r >= 0x0600 && r <= 0x06FF) || (r >= 0xFB50 && r <= 0xFDFF) {
			return -1
		}
		return r
	}, s)
}
