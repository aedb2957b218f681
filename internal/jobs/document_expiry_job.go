package jobs

import (
	"context"
	"log/slog"

	"haulage/internal/core/application/usecases/queries"

	"github.com/robfig/cron/v3"
)

// expiryWindowDays is how far ahead the watch looks for expiring documents.
const expiryWindowDays = 30

// DocumentExpiryJob scans driver and vehicle records for regulatory documents
// approaching their expiry date. Runs daily at 06:00 so the warnings land
// before dispatch plans the day's assignments.
type DocumentExpiryJob struct {
	handler queries.GetExpiringDocumentsQueryHandler
	cron    *cron.Cron
	logger  *slog.Logger
}

// NewDocumentExpiryJob creates a new job watching for expiring documents.
func NewDocumentExpiryJob(handler queries.GetExpiringDocumentsQueryHandler, logger *slog.Logger) *DocumentExpiryJob {
	return &DocumentExpiryJob{
		handler: handler,
		cron:    cron.New(cron.WithSeconds()),
		logger:  logger.With("component", "document_expiry_job"),
	}
}

// Start schedules the daily expiry scan.
func (j *DocumentExpiryJob) Start() error {
	_, err := j.cron.AddFunc("0 0 6 * * *", j.run)
	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Document expiry job started (running daily at 06:00)")
	return nil
}

// Stop stops the document expiry job.
func (j *DocumentExpiryJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Document expiry job stopped")
}

func (j *DocumentExpiryJob) run() {
	ctx := context.Background()

	query, err := queries.NewGetExpiringDocumentsQuery(expiryWindowDays)
	if err != nil {
		j.logger.ErrorContext(ctx, "Document expiry job failed to build query", "error", err)
		return
	}

	documents, err := j.handler.Handle(ctx, query)
	if err != nil {
		j.logger.ErrorContext(ctx, "Document expiry scan failed", "error", err)
		return
	}

	for _, doc := range documents {
		j.logger.WarnContext(ctx, "Regulatory document expiring soon",
			"subject_kind", doc.SubjectKind,
			"subject_id", doc.SubjectID.String(),
			"subject_ref", doc.SubjectRef,
			"document", doc.Document,
			"expires_on", doc.ExpiresOn.Format("2006-01-02"),
		)
	}
}
