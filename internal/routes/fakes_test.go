package routes

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/ahmetcoskunkizilkaya/flowforge/internal/models"
	"github.com/ahmetcoskunkizilkaya/flowforge/internal/repository"
	"github.com/google/uuid"
)

// memDB is a minimal in-memory stand-in for the three PostgreSQL
// repositories the API depends on.
type memDB struct {
	mu          sync.Mutex
	users       map[uuid.UUID]models.User
	automations []models.Automation
	activity    []models.ActivityLog
	tick        time.Time
}

func newMemDB() *memDB {
	return &memDB{
		users: map[uuid.UUID]models.User{},
		tick:  time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC),
	}
}

func (m *memDB) next() time.Time {
	m.tick = m.tick.Add(time.Second)
	return m.tick
}

type userStore struct{ *memDB }

func (s userStore) Create(_ context.Context, u *models.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, existing := range s.users {
		if existing.Email == u.Email {
			return repository.ErrDuplicate
		}
	}
	u.CreatedAt = s.next()
	s.users[u.ID] = *u
	return nil
}

func (s userStore) FindByID(_ context.Context, id uuid.UUID) (*models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	u, ok := s.users[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return &u, nil
}

func (s userStore) FindByEmail(_ context.Context, email string) (*models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, u := range s.users {
		if u.Email == email {
			return &u, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (s userStore) CompleteOnboarding(_ context.Context, id uuid.UUID, jobTitle, industry string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	u, ok := s.users[id]
	if !ok {
		return repository.ErrNotFound
	}
	u.JobTitle, u.Industry, u.Onboarded = jobTitle, industry, true
	s.users[id] = u
	return nil
}

type automationStore struct{ *memDB }

func (s automationStore) Create(_ context.Context, a *models.Automation) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	a.CreatedAt = s.next()
	s.automations = append(s.automations, *a)
	return nil
}

func (s automationStore) ListByOwner(_ context.Context, owner uuid.UUID, limit int) ([]models.Automation, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []models.Automation
	for _, a := range s.automations {
		if a.UserID == owner {
			out = append(out, a)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (s automationStore) ToggleStatus(_ context.Context, owner, id uuid.UUID) (*models.Automation, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.automations {
		a := &s.automations[i]
		if a.ID == id && a.UserID == owner {
			a.Status = toggled(a)
			cp := *a
			return &cp, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (s automationStore) DeleteForOwner(_ context.Context, owner, id uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, a := range s.automations {
		if a.ID == id && a.UserID == owner {
			s.automations = append(s.automations[:i], s.automations[i+1:]...)
			return nil
		}
	}
	return repository.ErrNotFound
}

type activityStore struct{ *memDB }

func (s activityStore) Append(_ context.Context, e *models.ActivityLog) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.activity = append(s.activity, *e)
	return nil
}

func (s activityStore) ListByOwner(_ context.Context, owner uuid.UUID, limit int) ([]models.ActivityLog, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []models.ActivityLog
	for i := len(s.activity) - 1; i >= 0; i-- {
		if s.activity[i].UserID == owner {
			out = append(out, s.activity[i])
		}
	}
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func toggled(a *models.Automation) string {
	if a.IsActive() {
		return models.AutomationPaused
	}
	return models.AutomationActive
}
