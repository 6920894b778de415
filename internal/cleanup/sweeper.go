// Package cleanup removes uploads and generated papers that have outlived the
// retention window, on demand and on a daily cron schedule.
package cleanup

import (
	"errors"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"time"
)

// Sweeper deletes expired files under the data directory.
type Sweeper struct {
	dataDir   string
	retention time.Duration
	logger    *slog.Logger
}

func NewSweeper(dataDir string, retentionDays int, logger *slog.Logger) *Sweeper {
	return &Sweeper{
		dataDir:   dataDir,
		retention: time.Duration(retentionDays) * 24 * time.Hour,
		logger:    logger,
	}
}

// Sweep removes upload session directories and output files older than the
// retention window. It returns the number of entries removed; missing
// directories are not an error.
func (s *Sweeper) Sweep() (int, error) {
	cutoff := time.Now().Add(-s.retention)
	removed := 0

	// Each upload session is a directory named by session id.
	uploads := filepath.Join(s.dataDir, "uploads")
	entries, err := os.ReadDir(uploads)
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return removed, err
	}
	for _, e := range entries {
		if !e.IsDir() {
			continue
		}
		info, err := e.Info()
		if err != nil {
			continue
		}
		if info.ModTime().Before(cutoff) {
			path := filepath.Join(uploads, e.Name())
			if err := os.RemoveAll(path); err != nil {
				s.logger.Warn("failed to remove upload session", "path", path, "error", err)
				continue
			}
			s.logger.Info("removed expired upload session", "session", e.Name())
			removed++
		}
	}

	// Outputs are flat files per kind; subdirectories are left alone.
	for _, kind := range []string{"pdf", "docx", "json"} {
		dir := filepath.Join(s.dataDir, "outputs", kind)
		entries, err := os.ReadDir(dir)
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				continue
			}
			return removed, err
		}
		for _, e := range entries {
			if e.IsDir() {
				continue
			}
			info, err := e.Info()
			if err != nil {
				continue
			}
			if info.ModTime().Before(cutoff) {
				path := filepath.Join(dir, e.Name())
				if err := os.Remove(path); err != nil {
					s.logger.Warn("failed to remove output", "path", path, "error", err)
					continue
				}
				s.logger.Info("removed expired output", "file", e.Name())
				removed++
			}
		}
	}

	return removed, nil
}
