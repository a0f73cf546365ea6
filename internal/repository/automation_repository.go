package repository

import (
	"context"
	"fmt"

	"github.com/ahmetcoskunkizilkaya/flowforge/internal/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// AutomationRepository persists automations. Every lookup is owner-scoped, so
// another user's row is indistinguishable from a missing one.
type AutomationRepository struct {
	db *gorm.DB
}

func NewAutomationRepository(db *gorm.DB) *AutomationRepository {
	return &AutomationRepository{db: db}
}

func (r *AutomationRepository) Create(ctx context.Context, a *models.Automation) error {
	if a.ID == uuid.Nil {
		a.ID = uuid.New()
	}
	if err := r.db.WithContext(ctx).Create(a).Error; err != nil {
		return fmt.Errorf("failed to create automation: %w", err)
	}
	return nil
}

// ListByOwner returns the owner's automations newest first. limit <= 0 means
// no limit.
func (r *AutomationRepository) ListByOwner(ctx context.Context, owner uuid.UUID, limit int) ([]models.Automation, error) {
	q := r.db.WithContext(ctx).Scopes(ForOwner(owner)).Order("created_at DESC")
	if limit > 0 {
		q = q.Limit(limit)
	}

	var automations []models.Automation
	if err := q.Find(&automations).Error; err != nil {
		return nil, fmt.Errorf("failed to list automations: %w", err)
	}
	return automations, nil
}

// ToggleStatus flips active/paused in a single UPDATE and returns the row as
// it is after the change.
func (r *AutomationRepository) ToggleStatus(ctx context.Context, owner, id uuid.UUID) (*models.Automation, error) {
	var a models.Automation
	result := r.db.WithContext(ctx).Model(&a).
		Clauses(clause.Returning{}).
		Scopes(ForOwner(owner)).
		Where("id = ?", id).
		Update("status", gorm.Expr("CASE WHEN status = ? THEN ? ELSE ? END",
			models.AutomationActive, models.AutomationPaused, models.AutomationActive))
	if result.Error != nil {
		return nil, fmt.Errorf("failed to toggle automation: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return nil, ErrNotFound
	}
	return &a, nil
}

func (r *AutomationRepository) DeleteForOwner(ctx context.Context, owner, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Scopes(ForOwner(owner)).Where("id = ?", id).Delete(&models.Automation{})
	if result.Error != nil {
		return fmt.Errorf("failed to delete automation: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
