package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

const (
	AutomationActive = "active"
	AutomationPaused = "paused"
)

// Automation is a stored trigger/action definition. Nothing executes it;
// TasksRun only changes if some future runner reports back.
type Automation struct {
	ID               uuid.UUID      `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	UserID           uuid.UUID      `gorm:"type:uuid;not null;index:idx_automations_user_created,priority:1" json:"user_id"`
	Name             string         `gorm:"size:255;not null" json:"name"`
	Description      string         `gorm:"type:text" json:"description"`
	Trigger          string         `gorm:"size:500" json:"trigger"`
	Action           string         `gorm:"size:500" json:"action"`
	Status           string         `gorm:"size:20;not null;default:'active'" json:"status"`
	Category         string         `gorm:"size:30;not null;default:'custom'" json:"category"`
	TemplateID       *string        `gorm:"size:20" json:"template_id"`
	Nodes            datatypes.JSON `gorm:"type:jsonb;default:'[]'" json:"nodes"`
	TasksRun         int            `gorm:"default:0" json:"tasks_run"`
	TimeSavedMinutes int            `gorm:"default:0" json:"time_saved_minutes"`
	CreatedAt        time.Time      `gorm:"index:idx_automations_user_created,priority:2,sort:desc" json:"created_at"`

	User User `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
}

// IsActive reports whether the automation is switched on.
func (a *Automation) IsActive() bool {
	return a.Status == AutomationActive
}
