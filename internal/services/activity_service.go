package services

import (
	"context"
	"log/slog"
	"time"

	"github.com/ahmetcoskunkizilkaya/flowforge/internal/metrics"
	"github.com/ahmetcoskunkizilkaya/flowforge/internal/models"
	"github.com/google/uuid"
)

const activityFeedLimit = 50

// ActivityService writes and reads the per-user activity feed.
type ActivityService struct {
	store ActivityStore
	now   func() time.Time
}

func NewActivityService(store ActivityStore) *ActivityService {
	return &ActivityService{store: store, now: time.Now}
}

// Record appends an entry after the primary operation has committed. It never
// fails the caller: errors are logged, counted and dropped.
func (s *ActivityService) Record(ctx context.Context, userID uuid.UUID, action, detail string) {
	// The request may already be finishing; the write should not inherit its
	// cancellation.
	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), 5*time.Second)
	defer cancel()

	defer func() {
		if r := recover(); r != nil {
			metrics.ObserveActivityLogFailure()
			slog.Error("activity log panicked", "user_id", userID.String(), "action", action, "error", r)
		}
	}()

	entry := &models.ActivityLog{
		ID:        uuid.New(),
		UserID:    userID,
		Action:    action,
		Detail:    detail,
		Timestamp: s.now().UTC(),
	}
	if err := s.store.Append(ctx, entry); err != nil {
		metrics.ObserveActivityLogFailure()
		slog.Warn("failed to record activity", "user_id", userID.String(), "action", action, "error", err)
	}
}

// List returns the newest entries first, at most 50.
func (s *ActivityService) List(ctx context.Context, userID uuid.UUID) ([]models.ActivityLog, error) {
	entries, err := s.store.ListByOwner(ctx, userID, activityFeedLimit)
	if err != nil {
		return nil, err
	}
	if entries == nil {
		entries = []models.ActivityLog{}
	}
	return entries, nil
}
