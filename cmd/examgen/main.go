package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/ghori-academy/examgen/internal/cleanup"
	"github.com/ghori-academy/examgen/internal/drive"
	"github.com/ghori-academy/examgen/internal/exam"
	"github.com/ghori-academy/examgen/internal/handler"
	"github.com/ghori-academy/examgen/internal/llm"
	"github.com/ghori-academy/examgen/internal/ocr"
	"github.com/ghori-academy/examgen/internal/pattern"
	"github.com/ghori-academy/examgen/internal/render"
	"github.com/ghori-academy/examgen/internal/store"
)

func main() {
	if err := rootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func rootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "examgen",
		Short: "Exam paper generator from photographed study material",
	}

	serve := serveCmd()
	root.AddCommand(serve, renderCmd(), sweepCmd())

	// Make "serve" the default when no subcommand is given.
	root.RunE = serve.RunE

	// Register serve flags on root so bare `examgen --addr ...` still works.
	root.Flags().AddFlagSet(serve.Flags())

	return root
}

func serveCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP exam generation server",
		RunE:  runServe,
	}
	f := cmd.Flags()
	f.StringP("addr", "a", ":8080", "HTTP listen address")
	f.String("data-dir", "data", "Directory for uploads and generated output")
	f.String("db", "examgen.db", "SQLite database path")
	f.String("ocr-key", "", "OCR.space API key")
	f.String("ocr-url", ocr.DefaultURL, "OCR.space endpoint URL")
	f.String("llm-url", "https://api.a4f.co/v1", "OpenAI-compatible API base URL")
	f.String("llm-key", "", "API key for LLM")
	f.String("llm-model", "provider-5/gemini-3-pro", "LLM model name")
	f.String("drive-credentials", filepath.Join("credentials", "google_drive_key.json"), "Google Drive service account credentials file")
	f.String("drive-folder", "", "Google Drive folder ID for uploads")
	f.Int("retention-days", 7, "Days to keep uploads and generated files")
	f.String("academy", "GHORI ACADEMY", "Academy name printed on papers")
	f.String("log-level", "info", "Log level (debug, info, warn, error)")
	f.String("log-format", "text", "Log format (text, json)")
	return cmd
}

func renderCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "render",
		Short: "Render a saved exam JSON file to PDF and DOCX",
		RunE:  runRender,
	}
	f := cmd.Flags()
	f.StringP("input", "i", "", "Exam JSON file (required)")
	f.StringP("output", "o", ".", "Output directory")
	f.String("academy", "GHORI ACADEMY", "Academy name printed on papers")
	f.Bool("pdf", true, "Write the PDF rendering")
	f.Bool("docx", true, "Write the DOCX rendering")
	f.String("log-level", "info", "Log level (debug, info, warn, error)")
	f.String("log-format", "text", "Log format (text, json)")

	_ = cmd.MarkFlagRequired("input")

	return cmd
}

func sweepCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "sweep",
		Short: "Run the retention sweep once and exit",
		RunE:  runSweep,
	}
	f := cmd.Flags()
	f.String("data-dir", "data", "Directory for uploads and generated output")
	f.Int("retention-days", 7, "Days to keep uploads and generated files")
	f.String("log-level", "info", "Log level (debug, info, warn, error)")
	f.String("log-format", "text", "Log format (text, json)")
	return cmd
}

func setupLogging(cmd *cobra.Command) {
	v := viperForCmd(cmd)

	var logLevel slog.Level
	switch strings.ToLower(v.GetString("log-level")) {
	case "debug":
		logLevel = slog.LevelDebug
	case "warn":
		logLevel = slog.LevelWarn
	case "error":
		logLevel = slog.LevelError
	default:
		logLevel = slog.LevelInfo
	}
	handlerOpts := &slog.HandlerOptions{Level: logLevel}
	var logHandler slog.Handler
	switch strings.ToLower(v.GetString("log-format")) {
	case "json":
		logHandler = slog.NewJSONHandler(os.Stderr, handlerOpts)
	default:
		logHandler = slog.NewTextHandler(os.Stderr, handlerOpts)
	}
	slog.SetDefault(slog.New(logHandler))
}

// viperForCmd binds a command's flags and environment to a fresh viper instance.
func viperForCmd(cmd *cobra.Command) *viper.Viper {
	v := viper.New()
	_ = v.BindPFlags(cmd.Flags())

	v.SetEnvPrefix("EXAMGEN")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	v.SetConfigName("examgen")
	v.AddConfigPath(".")
	v.AddConfigPath("$HOME/.config/examgen")
	v.AddConfigPath("/etc/examgen")
	v.AddConfigPath("/data")
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			slog.Warn("error reading config file", "error", err)
		}
	} else {
		slog.Info("loaded config file", "path", v.ConfigFileUsed())
	}

	return v
}

func runServe(cmd *cobra.Command, _ []string) error {
	setupLogging(cmd)
	v := viperForCmd(cmd)
	logger := slog.Default()

	dataDir := v.GetString("data-dir")
	for _, dir := range []string{
		filepath.Join(dataDir, "uploads"),
		filepath.Join(dataDir, "outputs", "pdf"),
		filepath.Join(dataDir, "outputs", "docx"),
		filepath.Join(dataDir, "outputs", "json"),
	} {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create data dir: %w", err)
		}
	}

	db, err := store.New(v.GetString("db"))
	if err != nil {
		return fmt.Errorf("open database: %w", err)
	}
	defer db.Close()

	catalog := pattern.Default()

	llmClient := llm.New(
		v.GetString("llm-url"),
		v.GetString("llm-key"),
		v.GetString("llm-model"),
	)
	ocrClient := ocr.NewClientWithURL(v.GetString("ocr-key"), v.GetString("ocr-url"))

	// Drive is optional; a missing credentials file just disables it.
	var drv *drive.Service
	drv, err = drive.New(context.Background(), v.GetString("drive-credentials"), v.GetString("drive-folder"))
	if err != nil {
		if !errors.Is(err, drive.ErrNotConfigured) {
			return fmt.Errorf("create drive service: %w", err)
		}
		slog.Info("google drive integration disabled", "reason", err)
		drv = nil
	}

	sweeper := cleanup.NewSweeper(dataDir, v.GetInt("retention-days"), logger)
	cronManager := cleanup.NewManager(sweeper, logger)
	if err := cronManager.Start(); err != nil {
		return fmt.Errorf("start cleanup schedule: %w", err)
	}
	defer cronManager.Stop()

	academy := v.GetString("academy")
	h := handler.New(catalog, db, llmClient, ocrClient, drv,
		render.NewRenderer(academy), sweeper, dataDir, academy, logger)

	r := chi.NewRouter()
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	h.Routes(r)

	addr := v.GetString("addr")
	slog.Info("starting server",
		"addr", addr,
		"data_dir", dataDir,
		"model", v.GetString("llm-model"),
		"llm_url", v.GetString("llm-url"),
		"drive_enabled", drv != nil,
		"retention_days", v.GetInt("retention-days"),
	)
	return http.ListenAndServe(addr, r)
}

func runRender(cmd *cobra.Command, _ []string) error {
	setupLogging(cmd)
	v := viperForCmd(cmd)

	data, err := os.ReadFile(v.GetString("input"))
	if err != nil {
		return fmt.Errorf("read exam file: %w", err)
	}
	var doc exam.Exam
	if err := json.Unmarshal(data, &doc); err != nil {
		return fmt.Errorf("parse exam file: %w", err)
	}

	outDir := v.GetString("output")
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return fmt.Errorf("create output dir: %w", err)
	}

	base := strings.TrimSuffix(filepath.Base(v.GetString("input")), filepath.Ext(v.GetString("input")))
	renderer := render.NewRenderer(v.GetString("academy"))

	if v.GetBool("pdf") {
		htmlPath := filepath.Join(outDir, base+".html")
		pdfPath := filepath.Join(outDir, base+".pdf")
		if err := renderer.WritePDF(doc, htmlPath, pdfPath); err != nil {
			return fmt.Errorf("render pdf: %w", err)
		}
		slog.Info("wrote pdf", "path", pdfPath)
	}
	if v.GetBool("docx") {
		docxPath := filepath.Join(outDir, base+".docx")
		if err := renderer.WriteDOCX(doc, docxPath); err != nil {
			return fmt.Errorf("render docx: %w", err)
		}
		slog.Info("wrote docx", "path", docxPath)
	}

	return nil
}

func runSweep(cmd *cobra.Command, _ []string) error {
	setupLogging(cmd)
	v := viperForCmd(cmd)

	sweeper := cleanup.NewSweeper(v.GetString("data-dir"), v.GetInt("retention-days"), slog.Default())
	removed, err := sweeper.Sweep()
	if err != nil {
		return fmt.Errorf("sweep: %w", err)
	}
	slog.Info("sweep finished", "removed", removed)
	return nil
}
