package cleanup

import (
	"log/slog"

	"github.com/robfig/cron/v3"
)

// sweepSchedule runs the retention sweep daily at 03:00.
const sweepSchedule = "0 0 3 * * *"

// Manager owns the scheduled sweep job.
type Manager struct {
	cron    *cron.Cron
	sweeper *Sweeper
	logger  *slog.Logger
}

func NewManager(sweeper *Sweeper, logger *slog.Logger) *Manager {
	return &Manager{
		cron:    cron.New(cron.WithSeconds()),
		sweeper: sweeper,
		logger:  logger,
	}
}

// Start registers the sweep job and starts the scheduler.
func (m *Manager) Start() error {
	_, err := m.cron.AddFunc(sweepSchedule, func() {
		removed, err := m.sweeper.Sweep()
		if err != nil {
			m.logger.Error("scheduled sweep failed", "error", err)
			return
		}
		m.logger.Info("scheduled sweep finished", "removed", removed)
	})
	if err != nil {
		return err
	}
	m.cron.Start()
	m.logger.Info("retention sweep scheduled", "schedule", sweepSchedule)
	return nil
}

// Stop stops the scheduler and waits for a running job to finish.
func (m *Manager) Stop() {
	ctx := m.cron.Stop()
	<-ctx.Done()
	m.logger.Info("retention sweep stopped")
}
