package services

import (
	"context"
	"errors"
	"fmt"
	"net/mail"
	"strings"

	"github.com/ahmetcoskunkizilkaya/flowforge/internal/auth"
	"github.com/ahmetcoskunkizilkaya/flowforge/internal/dto"
	"github.com/ahmetcoskunkizilkaya/flowforge/internal/models"
	"github.com/ahmetcoskunkizilkaya/flowforge/internal/repository"
	"github.com/google/uuid"
)

const minPasswordLength = 8

type AuthService struct {
	users    UserStore
	tokens   TokenIssuer
	activity *ActivityService
}

func NewAuthService(users UserStore, tokens TokenIssuer, activity *ActivityService) *AuthService {
	return &AuthService{users: users, tokens: tokens, activity: activity}
}

func (s *AuthService) Register(ctx context.Context, req *dto.RegisterRequest) (*dto.AuthResponse, error) {
	name := strings.TrimSpace(req.Name)
	email := normalizeEmail(req.Email)

	if name == "" {
		return nil, fmt.Errorf("%w: name is required", ErrInvalidInput)
	}
	if _, err := mail.ParseAddress(email); err != nil || email == "" {
		return nil, fmt.Errorf("%w: a valid email is required", ErrInvalidInput)
	}
	if err := checkLength("name", name, maxNameLength); err != nil {
		return nil, err
	}
	if err := checkLength("email", email, maxEmailLength); err != nil {
		return nil, err
	}
	jobTitle := strings.TrimSpace(req.JobTitle)
	industry := strings.TrimSpace(req.Industry)
	if err := checkLength("job_title", jobTitle, maxProfileLength); err != nil {
		return nil, err
	}
	if err := checkLength("industry", industry, maxProfileLength); err != nil {
		return nil, err
	}
	if len(req.Password) < minPasswordLength {
		return nil, fmt.Errorf("%w: password must be at least %d characters", ErrInvalidInput, minPasswordLength)
	}

	if _, err := s.users.FindByEmail(ctx, email); err == nil {
		return nil, ErrEmailTaken
	} else if !errors.Is(err, repository.ErrNotFound) {
		return nil, fmt.Errorf("failed to look up email: %w", err)
	}

	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	user := &models.User{
		ID:       uuid.New(),
		Name:     name,
		Email:    email,
		Password: hash,
		JobTitle: jobTitle,
		Industry: industry,
	}
	if err := s.users.Create(ctx, user); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, ErrEmailTaken
		}
		return nil, err
	}

	s.activity.Record(ctx, user.ID, models.ActivityAccountCreated, "Account created for "+user.Email)

	return s.authResponse(user)
}

func (s *AuthService) Login(ctx context.Context, req *dto.LoginRequest) (*dto.AuthResponse, error) {
	user, err := s.users.FindByEmail(ctx, normalizeEmail(req.Email))
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("failed to look up user: %w", err)
	}

	if !auth.VerifyPassword(req.Password, user.Password) {
		return nil, ErrInvalidCredentials
	}

	return s.authResponse(user)
}

// Onboard records the user's job title and industry.
func (s *AuthService) Onboard(ctx context.Context, user *models.User, req *dto.OnboardRequest) error {
	jobTitle := strings.TrimSpace(req.JobTitle)
	industry := strings.TrimSpace(req.Industry)
	if jobTitle == "" || industry == "" {
		return fmt.Errorf("%w: job_title and industry are required", ErrInvalidInput)
	}
	if err := checkLength("job_title", jobTitle, maxProfileLength); err != nil {
		return err
	}
	if err := checkLength("industry", industry, maxProfileLength); err != nil {
		return err
	}

	if err := s.users.CompleteOnboarding(ctx, user.ID, jobTitle, industry); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrUserNotFound
		}
		return err
	}

	s.activity.Record(ctx, user.ID, models.ActivityOnboardingComplete,
		fmt.Sprintf("Onboarded as %s in %s", jobTitle, industry))
	return nil
}

func (s *AuthService) authResponse(user *models.User) (*dto.AuthResponse, error) {
	token, err := s.tokens.Issue(user.ID.String())
	if err != nil {
		return nil, err
	}
	return &dto.AuthResponse{
		Token: token,
		User:  dto.NewUserResponse(user),
	}, nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
