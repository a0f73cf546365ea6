package services

import (
	"context"
	"errors"
	"sort"
	"sync"
	"time"

	"github.com/ahmetcoskunkizilkaya/flowforge/internal/models"
	"github.com/ahmetcoskunkizilkaya/flowforge/internal/repository"
	"github.com/google/uuid"
)

type memUserStore struct {
	mu   sync.Mutex
	byID map[uuid.UUID]*models.User
}

func newMemUserStore() *memUserStore {
	return &memUserStore{byID: map[uuid.UUID]*models.User{}}
}

func (m *memUserStore) Create(_ context.Context, u *models.User) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, existing := range m.byID {
		if existing.Email == u.Email {
			return repository.ErrDuplicate
		}
	}
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	u.CreatedAt = time.Now()
	cp := *u
	m.byID[u.ID] = &cp
	return nil
}

func (m *memUserStore) FindByID(_ context.Context, id uuid.UUID) (*models.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if u, ok := m.byID[id]; ok {
		cp := *u
		return &cp, nil
	}
	return nil, repository.ErrNotFound
}

func (m *memUserStore) FindByEmail(_ context.Context, email string) (*models.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, u := range m.byID {
		if u.Email == email {
			cp := *u
			return &cp, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (m *memUserStore) CompleteOnboarding(_ context.Context, id uuid.UUID, jobTitle, industry string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	u, ok := m.byID[id]
	if !ok {
		return repository.ErrNotFound
	}
	u.JobTitle = jobTitle
	u.Industry = industry
	u.Onboarded = true
	return nil
}

type memAutomationStore struct {
	mu    sync.Mutex
	rows  []*models.Automation
	clock time.Time
	err   error
}

func newMemAutomationStore() *memAutomationStore {
	return &memAutomationStore{clock: time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)}
}

func (m *memAutomationStore) Create(_ context.Context, a *models.Automation) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return m.err
	}
	m.clock = m.clock.Add(time.Second)
	a.CreatedAt = m.clock
	cp := *a
	m.rows = append(m.rows, &cp)
	return nil
}

func (m *memAutomationStore) ListByOwner(_ context.Context, owner uuid.UUID, limit int) ([]models.Automation, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return nil, m.err
	}
	var out []models.Automation
	for _, a := range m.rows {
		if a.UserID == owner {
			out = append(out, *a)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (m *memAutomationStore) ToggleStatus(_ context.Context, owner, id uuid.UUID) (*models.Automation, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, a := range m.rows {
		if a.ID == id && a.UserID == owner {
			a.Status = toggled(a)
			cp := *a
			return &cp, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (m *memAutomationStore) DeleteForOwner(_ context.Context, owner, id uuid.UUID) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i, a := range m.rows {
		if a.ID == id && a.UserID == owner {
			m.rows = append(m.rows[:i], m.rows[i+1:]...)
			return nil
		}
	}
	return repository.ErrNotFound
}

type memActivityStore struct {
	mu      sync.Mutex
	entries []models.ActivityLog
	err     error
}

func (m *memActivityStore) Append(_ context.Context, e *models.ActivityLog) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return m.err
	}
	m.entries = append(m.entries, *e)
	return nil
}

func (m *memActivityStore) ListByOwner(_ context.Context, owner uuid.UUID, limit int) ([]models.ActivityLog, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []models.ActivityLog
	for i := len(m.entries) - 1; i >= 0; i-- {
		if m.entries[i].UserID == owner {
			out = append(out, m.entries[i])
		}
	}
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (m *memActivityStore) actions(owner uuid.UUID) []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []string
	for _, e := range m.entries {
		if e.UserID == owner {
			out = append(out, e.Action)
		}
	}
	return out
}

type fakeTokens struct{}

func (fakeTokens) Issue(userID string) (string, error) {
	return "token-" + userID, nil
}

type fakeCompleter struct {
	reply   string
	err     error
	panics  bool
	system  string
	message string
}

func (f *fakeCompleter) Complete(_ context.Context, system, user string) (string, error) {
	f.system = system
	f.message = user
	if f.panics {
		panic("boom")
	}
	return f.reply, f.err
}

var errStoreDown = errors.New("store down")

func toggled(a *models.Automation) string {
	if a.IsActive() {
		return models.AutomationPaused
	}
	return models.AutomationActive
}
