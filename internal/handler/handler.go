package handler

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/ghori-academy/examgen/internal/cleanup"
	"github.com/ghori-academy/examgen/internal/drive"
	"github.com/ghori-academy/examgen/internal/exam"
	"github.com/ghori-academy/examgen/internal/ocr"
	"github.com/ghori-academy/examgen/internal/pattern"
	"github.com/ghori-academy/examgen/internal/render"
	"github.com/ghori-academy/examgen/internal/store"
)

// maxUploadBytes caps a multipart upload request.
const maxUploadBytes = 20 << 20

var allowedExtensions = map[string]bool{
	".png":  true,
	".jpg":  true,
	".jpeg": true,
	".bmp":  true,
	".tiff": true,
	".webp": true,
}

// TextGenerator is the language-model surface the pipeline needs.
type TextGenerator interface {
	Clean(ctx context.Context, subject, rawText string) (string, error)
	Generate(ctx context.Context, p pattern.Subject, material string) (string, error)
}

// TextExtractor turns one uploaded image into raw text.
type TextExtractor interface {
	ParseImage(ctx context.Context, filename string, r io.Reader) (string, error)
}

// Handler holds shared dependencies for HTTP handlers.
type Handler struct {
	catalog  *pattern.Catalog
	store    *store.Store
	llm      TextGenerator
	ocr      TextExtractor
	drive    *drive.Service // nil when the integration is not configured
	renderer *render.Renderer
	sweeper  *cleanup.Sweeper
	dataDir  string
	academy  string
	logger   *slog.Logger
}

// New creates a new Handler. drv may be nil.
func New(catalog *pattern.Catalog, s *store.Store, llm TextGenerator, extractor TextExtractor,
	drv *drive.Service, renderer *render.Renderer, sweeper *cleanup.Sweeper,
	dataDir, academy string, logger *slog.Logger) *Handler {
	return &Handler{
		catalog:  catalog,
		store:    s,
		llm:      llm,
		ocr:      extractor,
		drive:    drv,
		renderer: renderer,
		sweeper:  sweeper,
		dataDir:  dataDir,
		academy:  academy,
		logger:   logger,
	}
}

// Routes registers all HTTP routes.
func (h *Handler) Routes(r chi.Router) {
	r.Get("/", h.handleIndex)
	r.Get("/api/subjects", h.handleSubjects)
	r.Post("/api/upload", h.handleUpload)
	r.Post("/api/clean", h.handleClean)
	r.Post("/api/generate", h.handleGenerate)
	r.Post("/api/download/pdf", h.handleDownloadPDF)
	r.Post("/api/download/docx", h.handleDownloadDOCX)
	r.Get("/api/drive/status", h.handleDriveStatus)
	r.Post("/api/drive/upload", h.handleDriveUpload)
	r.Get("/api/drive/files", h.handleDriveFiles)
	r.Delete("/api/drive/delete/{fileID}", h.handleDriveDelete)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("encode response", "error", err)
	}
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}

func newSessionID() string {
	return uuid.NewString()[:8]
}

// handleIndex reports service status and kicks off an opportunistic
// retention sweep.
func (h *Handler) handleIndex(w http.ResponseWriter, r *http.Request) {
	if h.sweeper != nil {
		go func() {
			if _, err := h.sweeper.Sweep(); err != nil {
				h.logger.Warn("sweep on index failed", "error", err)
			}
		}()
	}

	stats, err := h.store.GetStats()
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	recent, err := h.store.RecentSessions(10)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	sessions := make([]map[string]any, 0, len(recent))
	for _, s := range recent {
		sessions = append(sessions, map[string]any{
			"session_id": s.ID,
			"subject":    s.Subject,
			"created_at": s.CreatedAt.Format(time.RFC3339),
		})
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"service":  "examgen",
		"academy":  h.academy,
		"stats":    stats,
		"sessions": sessions,
	})
}

func (h *Handler) handleSubjects(w http.ResponseWriter, r *http.Request) {
	var subjects []map[string]any
	for _, p := range h.catalog.List() {
		subjects = append(subjects, map[string]any{
			"id":          p.ID,
			"name":        p.Name,
			"total_marks": p.TotalMarks,
		})
	}
	writeJSON(w, http.StatusOK, map[string]any{"subjects": subjects})
}

// handleUpload accepts images under the "images" field, stores them in a new
// session directory and runs OCR on each. Files that fail OCR are skipped;
// the request fails only when no file yields text.
func (h *Handler) handleUpload(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxUploadBytes)
	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		writeError(w, http.StatusBadRequest, "invalid multipart request")
		return
	}
	files := r.MultipartForm.File["images"]
	if len(files) == 0 {
		writeError(w, http.StatusBadRequest, "No images")
		return
	}

	sessionID := newSessionID()
	sessionDir := filepath.Join(h.dataDir, "uploads", sessionID)
	if err := os.MkdirAll(sessionDir, 0o755); err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	var allText strings.Builder
	for _, fh := range files {
		name := sanitizeFilename(fh.Filename)
		if !allowedExtensions[strings.ToLower(filepath.Ext(name))] {
			continue
		}
		src, err := fh.Open()
		if err != nil {
			h.logger.Warn("open uploaded file", "file", name, "error", err)
			continue
		}
		path := filepath.Join(sessionDir, name)
		if err := saveFile(path, src); err != nil {
			src.Close()
			h.logger.Warn("save uploaded file", "file", name, "error", err)
			continue
		}
		src.Close()

		stored, err := os.Open(path)
		if err != nil {
			continue
		}
		text, err := h.ocr.ParseImage(r.Context(), name, stored)
		stored.Close()
		if err != nil {
			h.logger.Warn("ocr failed", "file", name, "error", err)
			continue
		}
		if text != "" {
			allText.WriteString(text)
			allText.WriteString("\n\n")
		}
	}

	raw := strings.TrimSpace(allText.String())
	if raw == "" {
		writeError(w, http.StatusBadRequest, "Could not extract text")
		return
	}
	if err := h.store.UpsertSession(sessionID, ""); err != nil {
		h.logger.Warn("record session", "session", sessionID, "error", err)
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"session_id": sessionID,
		"raw_text":   raw,
		"word_count": len(strings.Fields(raw)),
	})
}

type cleanRequest struct {
	RawText string `json:"raw_text"`
	Subject string `json:"subject"`
}

// handleClean runs the language-model cleanup and falls back to the local
// deterministic cleanup on any failure. It never hard-fails.
func (h *Handler) handleClean(w http.ResponseWriter, r *http.Request) {
	var req cleanRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	if req.Subject == "" {
		req.Subject = "General"
	}

	cleaned, err := h.llm.Clean(r.Context(), req.Subject, req.RawText)
	if err != nil {
		h.logger.Warn("llm clean failed, using local cleanup", "error", err)
		cleaned = ocr.LocalClean(req.RawText)
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"cleaned_text": cleaned,
		"word_count":   len(strings.Fields(cleaned)),
	})
}

type generateRequest struct {
	CleanedText string `json:"cleaned_text"`
	Subject     string `json:"subject"`
	SessionID   string `json:"session_id"`
}

func (h *Handler) handleGenerate(w http.ResponseWriter, r *http.Request) {
	var req generateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	if req.Subject == "" {
		req.Subject = "chemistry"
	}
	if req.SessionID == "" {
		req.SessionID = newSessionID()
	}

	p, ok := h.catalog.Get(req.Subject)
	if !ok {
		writeError(w, http.StatusBadRequest, "Invalid subject")
		return
	}
	if req.CleanedText == "" {
		writeError(w, http.StatusBadRequest, "No text provided")
		return
	}

	output, err := h.llm.Generate(r.Context(), p, req.CleanedText)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "AI generation failed: "+err.Error())
		return
	}
	raw, err := exam.Extract(output)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to parse exam JSON from AI response")
		return
	}
	doc := exam.Repair(raw, p)

	if path, err := h.saveExamJSON(doc, req.SessionID); err != nil {
		h.logger.Warn("persist exam json", "session", req.SessionID, "error", err)
	} else {
		h.recordArtifact(req.SessionID, p.ID, "json", path)
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"session_id": req.SessionID,
		"exam":       doc,
	})
}

type downloadRequest struct {
	Exam      *exam.Exam `json:"exam"`
	SessionID string     `json:"session_id"`
}

func (h *Handler) handleDownloadPDF(w http.ResponseWriter, r *http.Request) {
	req, ok := h.decodeDownload(w, r)
	if !ok {
		return
	}
	pdfPath, err := h.renderPDF(*req.Exam, req.SessionID)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	h.recordArtifact(req.SessionID, req.Exam.Subject, "pdf", pdfPath)
	serveAttachment(w, r, pdfPath, downloadName(req.Exam.Subject, "pdf"))
}

func (h *Handler) handleDownloadDOCX(w http.ResponseWriter, r *http.Request) {
	req, ok := h.decodeDownload(w, r)
	if !ok {
		return
	}
	docxPath, err := h.renderDOCX(*req.Exam, req.SessionID)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	h.recordArtifact(req.SessionID, req.Exam.Subject, "docx", docxPath)
	serveAttachment(w, r, docxPath, downloadName(req.Exam.Subject, "docx"))
}

func (h *Handler) decodeDownload(w http.ResponseWriter, r *http.Request) (downloadRequest, bool) {
	var req downloadRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body")
		return req, false
	}
	if req.Exam == nil {
		writeError(w, http.StatusBadRequest, "No exam data")
		return req, false
	}
	if req.SessionID == "" {
		req.SessionID = newSessionID()
	}
	return req, true
}

func (h *Handler) handleDriveStatus(w http.ResponseWriter, r *http.Request) {
	enabled := h.drive != nil
	writeJSON(w, http.StatusOK, map[string]any{
		"enabled":           enabled,
		"folder_configured": enabled && h.drive.FolderConfigured(),
	})
}

type driveUploadRequest struct {
	Exam       *exam.Exam `json:"exam"`
	SessionID  string     `json:"session_id"`
	CustomName string     `json:"custom_name"`
	FileType   string     `json:"file_type"`
}

func (h *Handler) handleDriveUpload(w http.ResponseWriter, r *http.Request) {
	if h.drive == nil {
		writeError(w, http.StatusBadRequest, "Google Drive not configured")
		return
	}

	var req driveUploadRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	if req.Exam == nil {
		writeError(w, http.StatusBadRequest, "No exam data")
		return
	}
	if req.SessionID == "" {
		req.SessionID = newSessionID()
	}
	if req.FileType != "docx" {
		req.FileType = "pdf"
	}

	var path string
	var err error
	if req.FileType == "docx" {
		path, err = h.renderDOCX(*req.Exam, req.SessionID)
	} else {
		path, err = h.renderPDF(*req.Exam, req.SessionID)
	}
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	name := strings.TrimSpace(req.CustomName)
	if name == "" {
		name = fmt.Sprintf("%s_%s_%s", h.academy, req.Exam.Subject, time.Now().Format("20060102_1504"))
	}

	file, err := h.drive.Upload(r.Context(), path, name, req.FileType)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"success": true,
		"file":    file,
	})
}

// handleDriveFiles degrades to an empty listing with 200 when the
// integration is unavailable.
func (h *Handler) handleDriveFiles(w http.ResponseWriter, r *http.Request) {
	if h.drive == nil {
		writeJSON(w, http.StatusOK, map[string]any{
			"error": "Google Drive not configured",
			"files": []drive.File{},
		})
		return
	}
	files, err := h.drive.List(r.Context())
	if err != nil {
		writeJSON(w, http.StatusOK, map[string]any{
			"error": err.Error(),
			"files": []drive.File{},
		})
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"files": files})
}

func (h *Handler) handleDriveDelete(w http.ResponseWriter, r *http.Request) {
	if h.drive == nil {
		writeError(w, http.StatusBadRequest, "Google Drive not configured")
		return
	}
	fileID := chi.URLParam(r, "fileID")
	if err := h.drive.Delete(r.Context(), fileID); err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"success": true})
}

func (h *Handler) saveExamJSON(doc exam.Exam, sessionID string) (string, error) {
	dir := filepath.Join(h.dataDir, "outputs", "json")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", err
	}
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return "", err
	}
	path := filepath.Join(dir, sessionID+".json")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", err
	}
	return path, nil
}

func (h *Handler) renderPDF(doc exam.Exam, sessionID string) (string, error) {
	dir := filepath.Join(h.dataDir, "outputs", "pdf")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", err
	}
	htmlPath := filepath.Join(dir, sessionID+".html")
	pdfPath := filepath.Join(dir, sessionID+".pdf")
	if err := h.renderer.WritePDF(doc, htmlPath, pdfPath); err != nil {
		return "", err
	}
	return pdfPath, nil
}

func (h *Handler) renderDOCX(doc exam.Exam, sessionID string) (string, error) {
	dir := filepath.Join(h.dataDir, "outputs", "docx")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", err
	}
	path := filepath.Join(dir, sessionID+".docx")
	if err := h.renderer.WriteDOCX(doc, path); err != nil {
		return "", err
	}
	return path, nil
}

func (h *Handler) recordArtifact(sessionID, subject, kind, path string) {
	if err := h.store.UpsertSession(sessionID, subject); err != nil {
		h.logger.Warn("record session", "session", sessionID, "error", err)
		return
	}
	if _, err := h.store.AddArtifact(sessionID, kind, path); err != nil {
		h.logger.Warn("record artifact", "session", sessionID, "kind", kind, "error", err)
	}
}

func downloadName(subject, ext string) string {
	if subject == "" {
		subject = "exam"
	}
	return fmt.Sprintf("ghori_academy_%s_exam.%s", strings.ToLower(subject), ext)
}

func serveAttachment(w http.ResponseWriter, r *http.Request, path, name string) {
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", name))
	http.ServeFile(w, r, path)
}

// sanitizeFilename keeps only the base name and replaces path-hostile
// characters so uploads cannot escape their session directory.
func sanitizeFilename(name string) string {
	name = filepath.Base(name)
	name = strings.ReplaceAll(name, "..", "")
	var b strings.Builder
	for _, r := range name {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
			b.WriteRune(r)
		case r == '.' || r == '-' || r == '_':
			b.WriteRune(r)
		default:
			b.WriteRune('_')
		}
	}
	return b.String()
}

func saveFile(path string, src io.Reader) error {
	dst, err := os.Create(path)
	if err != nil {
		return err
	}
	if _, err := io.Copy(dst, src); err != nil {
		dst.Close()
		return err
	}
	return dst.Close()
}
