package services

import (
	"context"
	"strings"
	"testing"

	"github.com/ahmetcoskunkizilkaya/flowforge/internal/dto"
	"github.com/ahmetcoskunkizilkaya/flowforge/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newAuthFixture() (*AuthService, *memUserStore, *memActivityStore) {
	users := newMemUserStore()
	activity := &memActivityStore{}
	return NewAuthService(users, fakeTokens{}, NewActivityService(activity)), users, activity
}

func TestRegisterAndLogin(t *testing.T) {
	ctx := context.Background()
	svc, users, activity := newAuthFixture()

	resp, err := svc.Register(ctx, &dto.RegisterRequest{
		Name: "Alex", Email: " Alex@Test.com ", Password: "password123", JobTitle: "Ops Lead",
	})
	require.NoError(t, err)
	assert.Equal(t, "alex@test.com", resp.User.Email)
	assert.Equal(t, "Ops Lead", resp.User.JobTitle)
	assert.False(t, resp.User.Onboarded)
	assert.Equal(t, "token-"+resp.User.ID.String(), resp.Token)

	stored, err := users.FindByID(ctx, resp.User.ID)
	require.NoError(t, err)
	assert.NotEqual(t, "password123", stored.Password)
	assert.Equal(t, []string{models.ActivityAccountCreated}, activity.actions(resp.User.ID))

	login, err := svc.Login(ctx, &dto.LoginRequest{Email: "alex@test.com", Password: "password123"})
	require.NoError(t, err)
	assert.Equal(t, resp.User.ID, login.User.ID)

	_, err = svc.Login(ctx, &dto.LoginRequest{Email: "alex@test.com", Password: "wrong-password"})
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = svc.Login(ctx, &dto.LoginRequest{Email: "nobody@test.com", Password: "password123"})
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestRegisterDuplicateEmail(t *testing.T) {
	ctx := context.Background()
	svc, _, _ := newAuthFixture()

	_, err := svc.Register(ctx, &dto.RegisterRequest{Name: "A", Email: "dup@test.com", Password: "password123"})
	require.NoError(t, err)

	_, err = svc.Register(ctx, &dto.RegisterRequest{Name: "B", Email: "DUP@test.com", Password: "password456"})
	assert.ErrorIs(t, err, ErrEmailTaken)
}

func TestRegisterValidation(t *testing.T) {
	svc, _, _ := newAuthFixture()

	cases := map[string]dto.RegisterRequest{
		"missing name":   {Email: "a@test.com", Password: "password123"},
		"bad email":      {Name: "A", Email: "not-an-email", Password: "password123"},
		"empty email":    {Name: "A", Password: "password123"},
		"short password": {Name: "A", Email: "a@test.com", Password: "short"},
		"long name":      {Name: strings.Repeat("n", 256), Email: "a@test.com", Password: "password123"},
		"long email":     {Name: "A", Email: strings.Repeat("a", 250) + "@test.com", Password: "password123"},
		"long job title": {Name: "A", Email: "a@test.com", Password: "password123", JobTitle: strings.Repeat("j", 256)},
		"long industry":  {Name: "A", Email: "a@test.com", Password: "password123", Industry: strings.Repeat("i", 256)},
	}
	for name, req := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := svc.Register(context.Background(), &req)
			assert.ErrorIs(t, err, ErrInvalidInput)
		})
	}
}

func TestOnboard(t *testing.T) {
	ctx := context.Background()
	svc, users, activity := newAuthFixture()

	resp, err := svc.Register(ctx, &dto.RegisterRequest{Name: "A", Email: "a@test.com", Password: "password123"})
	require.NoError(t, err)
	user, err := users.FindByID(ctx, resp.User.ID)
	require.NoError(t, err)

	err = svc.Onboard(ctx, user, &dto.OnboardRequest{JobTitle: ""})
	assert.ErrorIs(t, err, ErrInvalidInput)
	err = svc.Onboard(ctx, user, &dto.OnboardRequest{JobTitle: strings.Repeat("j", 256), Industry: "Technology"})
	assert.ErrorIs(t, err, ErrInvalidInput)

	require.NoError(t, svc.Onboard(ctx, user, &dto.OnboardRequest{JobTitle: "Software Engineer", Industry: "Technology"}))

	updated, err := users.FindByID(ctx, user.ID)
	require.NoError(t, err)
	assert.True(t, updated.Onboarded)
	assert.Equal(t, "Software Engineer", updated.JobTitle)
	assert.Equal(t, "Technology", updated.Industry)
	assert.Equal(t, []string{models.ActivityAccountCreated, models.ActivityOnboardingComplete}, activity.actions(user.ID))
}

func TestRegisterSurvivesActivityFailure(t *testing.T) {
	users := newMemUserStore()
	activity := &memActivityStore{err: errStoreDown}
	svc := NewAuthService(users, fakeTokens{}, NewActivityService(activity))

	resp, err := svc.Register(context.Background(), &dto.RegisterRequest{Name: "A", Email: "a@test.com", Password: "password123"})
	require.NoError(t, err)
	assert.NotEmpty(t, resp.Token)
}
