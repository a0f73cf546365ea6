package logging

import (
	"context"
	"log/slog"
	"time"
)

// Pruner deletes system log rows older than cutoff.
type Pruner interface {
	DeleteBefore(ctx context.Context, cutoff time.Time) (int64, error)
}

// StartCleanup runs a daily goroutine that deletes system logs older than
// retentionDays. It stops when done is closed.
func StartCleanup(pruner Pruner, retentionDays int, done chan struct{}) {
	go func() {
		ticker := time.NewTicker(24 * time.Hour)
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				pruneOnce(pruner, retentionDays, time.Now())
			case <-done:
				return
			}
		}
	}()
}

func pruneOnce(pruner Pruner, retentionDays int, now time.Time) {
	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	cutoff := now.AddDate(0, 0, -retentionDays)
	deleted, err := pruner.DeleteBefore(ctx, cutoff)
	if err != nil {
		slog.Error("log cleanup failed", "error", err)
	} else if deleted > 0 {
		slog.Info("log cleanup completed", "deleted", deleted)
	}
}
