package render

import (
	"bytes"
	"testing"
)

func TestDOCXWrites(t *testing.T) {
	r := NewRenderer("GHORI ACADEMY")
	doc := r.DOCX(sampleExam())

	var buf bytes.Buffer
	if _, err := doc.WriteTo(&buf); err != nil {
		t.Fatalf("WriteTo: %v", err)
	}
	// A DOCX file is a zip archive.
	if buf.Len() < 4 || !bytes.HasPrefix(buf.Bytes(), []byte("PK")) {
		t.Errorf("output does not look like a zip archive (%d bytes)", buf.Len())
	}
}

func TestWriteDOCXFile(t *testing.T) {
	r := NewRenderer("GHORI ACADEMY")
	path := t.TempDir() + "/out/exam.docx"

	if err := r.WriteDOCX(sampleExam(), path); err != nil {
		t.Fatalf("WriteDOCX: %v", err)
	}
}
