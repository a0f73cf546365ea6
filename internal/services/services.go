package services

import (
	"context"
	"errors"
	"fmt"
	"unicode/utf8"

	"github.com/ahmetcoskunkizilkaya/flowforge/internal/models"
	"github.com/google/uuid"
)

var (
	ErrInvalidInput       = errors.New("invalid input")
	ErrEmailTaken         = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUserNotFound       = errors.New("user not found")
	ErrAutomationNotFound = errors.New("automation not found")
)

// Column sizes of the user-supplied text fields.
const (
	maxNameLength       = 255
	maxEmailLength      = 255
	maxProfileLength    = 255
	maxCategoryLength   = 30
	maxTemplateIDLength = 20
	maxStepLength       = 500
)

// checkLength rejects a value that would not fit its column.
func checkLength(field, value string, max int) error {
	if utf8.RuneCountInString(value) > max {
		return fmt.Errorf("%w: %s must be at most %d characters", ErrInvalidInput, field, max)
	}
	return nil
}

// UserStore is the credential store used by AuthService and the auth guard.
type UserStore interface {
	Create(ctx context.Context, user *models.User) error
	FindByID(ctx context.Context, id uuid.UUID) (*models.User, error)
	FindByEmail(ctx context.Context, email string) (*models.User, error)
	CompleteOnboarding(ctx context.Context, id uuid.UUID, jobTitle, industry string) error
}

type AutomationStore interface {
	Create(ctx context.Context, a *models.Automation) error
	ListByOwner(ctx context.Context, owner uuid.UUID, limit int) ([]models.Automation, error)
	ToggleStatus(ctx context.Context, owner, id uuid.UUID) (*models.Automation, error)
	DeleteForOwner(ctx context.Context, owner, id uuid.UUID) error
}

type ActivityStore interface {
	Append(ctx context.Context, entry *models.ActivityLog) error
	ListByOwner(ctx context.Context, owner uuid.UUID, limit int) ([]models.ActivityLog, error)
}

// TokenIssuer mints session tokens.
type TokenIssuer interface {
	Issue(userID string) (string, error)
}
