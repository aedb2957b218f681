package jobs

import (
	"fmt"
	"log/slog"

	"haulage/internal/core/application/usecases/queries"
)

// JobManager coordinates all scheduled jobs in the application.
// Provides a unified interface to start and stop all background jobs.
type JobManager struct {
	documentExpiryJob *DocumentExpiryJob
}

// NewJobManager creates a new job manager with all required jobs.
func NewJobManager(
	expiringDocumentsHandler queries.GetExpiringDocumentsQueryHandler,
	logger *slog.Logger,
) *JobManager {
	return &JobManager{
		documentExpiryJob: NewDocumentExpiryJob(expiringDocumentsHandler, logger),
	}
}

// StartAll starts all scheduled jobs.
func (jm *JobManager) StartAll() error {
	if err := jm.documentExpiryJob.Start(); err != nil {
		return fmt.Errorf("failed to start document expiry job: %w", err)
	}
	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.documentExpiryJob.Stop()
}
