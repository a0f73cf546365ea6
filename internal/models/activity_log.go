package models

import (
	"time"

	"github.com/google/uuid"
)

// Activity action tags.
const (
	ActivityAccountCreated     = "account_created"
	ActivityOnboardingComplete = "onboarding_complete"
	ActivityAutomationCreated  = "automation_created"
	ActivityAutomationToggled  = "automation_toggled"
	ActivityAutomationDeleted  = "automation_deleted"
	ActivityAISuggestion       = "ai_suggestion"
)

// ActivityLog is an append-only audit entry shown in the user's activity feed.
type ActivityLog struct {
	ID        uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	UserID    uuid.UUID `gorm:"type:uuid;not null;index:idx_activity_user_ts,priority:1" json:"user_id"`
	Action    string    `gorm:"size:50;not null" json:"action"`
	Detail    string    `gorm:"type:text" json:"detail"`
	Timestamp time.Time `gorm:"not null;index:idx_activity_user_ts,priority:2,sort:desc" json:"timestamp"`

	User User `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
}

func (ActivityLog) TableName() string {
	return "activity_log"
}
