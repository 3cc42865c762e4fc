package workers

import (
	"context"
	"time"

	"gorm.io/gorm"

	"stagelink_backend/internal/logger"
	"stagelink_backend/internal/models"
)

// CleanupWorker runs the periodic maintenance tasks: hiding internships
// whose application deadline has passed and purging soft-deleted rows
// past the retention window.
type CleanupWorker struct {
	db            *gorm.DB
	interval      time.Duration
	retentionDays int
}

func NewCleanupWorker(db *gorm.DB, interval time.Duration, retentionDays int) *CleanupWorker {
	return &CleanupWorker{
		db:            db,
		interval:      interval,
		retentionDays: retentionDays,
	}
}

// Start launches the worker loop until the context is cancelled.
func (w *CleanupWorker) Start(ctx context.Context) {
	go w.run(ctx)
}

func (w *CleanupWorker) run(ctx context.Context) {
	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			logger.Info("cleanup worker stopped")
			return
		case <-ticker.C:
			w.hideExpiredInternships()
			w.purgeDeleted()
		}
	}
}

func (w *CleanupWorker) hideExpiredInternships() {
	result := w.db.Model(&models.Internship{}).
		Where("is_visible = ? AND deadline IS NOT NULL AND deadline < NOW()", true).
		Update("is_visible", false)
	if result.Error != nil {
		logger.WithError(result.Error).Error("failed to hide expired internships")
	} else if result.RowsAffected > 0 {
		logger.Info("hid expired internships", "count", result.RowsAffected)
	}
}

func (w *CleanupWorker) purgeDeleted() {
	cutoff := time.Now().AddDate(0, 0, -w.retentionDays)

	for _, target := range []struct {
		name  string
		model interface{}
	}{
		{"internships", &models.Internship{}},
		{"messages", &models.Message{}},
	} {
		result := w.db.Unscoped().
			Where("deleted_at IS NOT NULL AND deleted_at < ?", cutoff).
			Delete(target.model)
		if result.Error != nil {
			logger.WithError(result.Error).Error("failed to purge soft-deleted rows", "table", target.name)
		} else if result.RowsAffected > 0 {
			logger.Info("purged soft-deleted rows", "table", target.name, "count", result.RowsAffected)
		}
	}
}
