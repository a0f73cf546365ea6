package models

import (
	"time"

	"github.com/google/uuid"
)

// User is a Flow-Forge account. Password holds the bcrypt digest and is never
// serialized.
type User struct {
	ID        uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	Name      string    `gorm:"size:255;not null" json:"name"`
	Email     string    `gorm:"size:255;not null;uniqueIndex:idx_users_email" json:"email"`
	Password  string    `gorm:"not null" json:"-"`
	JobTitle  string    `gorm:"size:255" json:"job_title"`
	Industry  string    `gorm:"size:255" json:"industry"`
	Onboarded bool      `gorm:"default:false" json:"onboarded"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"-"`
}
