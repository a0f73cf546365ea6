package services

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/ahmetcoskunkizilkaya/flowforge/internal/catalog"
	"github.com/ahmetcoskunkizilkaya/flowforge/internal/dto"
	"github.com/ahmetcoskunkizilkaya/flowforge/internal/models"
	"github.com/ahmetcoskunkizilkaya/flowforge/internal/repository"
	"github.com/google/uuid"
	"gorm.io/datatypes"
)

const (
	defaultTimeSavedMinutes = 10
	automationListLimit     = 100
)

type AutomationService struct {
	store    AutomationStore
	activity *ActivityService
}

func NewAutomationService(store AutomationStore, activity *ActivityService) *AutomationService {
	return &AutomationService{store: store, activity: activity}
}

// Create stores a new automation for owner. When the request names a catalog
// template, its trigger, action and time saved fill in whatever the caller
// left empty.
func (s *AutomationService) Create(ctx context.Context, owner uuid.UUID, req *dto.CreateAutomationRequest) (*models.Automation, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, fmt.Errorf("%w: name is required", ErrInvalidInput)
	}

	nodes, err := normalizeNodes(req.Nodes)
	if err != nil {
		return nil, err
	}

	category := req.Category
	if category == "" {
		category = "custom"
	}

	templateID := ""
	if req.TemplateID != nil {
		templateID = *req.TemplateID
	}
	for _, f := range []struct {
		field string
		value string
		max   int
	}{
		{"name", name, maxNameLength},
		{"category", category, maxCategoryLength},
		{"template_id", templateID, maxTemplateIDLength},
		{"trigger", req.Trigger, maxStepLength},
		{"action", req.Action, maxStepLength},
	} {
		if err := checkLength(f.field, f.value, f.max); err != nil {
			return nil, err
		}
	}

	a := &models.Automation{
		ID:               uuid.New(),
		UserID:           owner,
		Name:             name,
		Description:      req.Description,
		Trigger:          req.Trigger,
		Action:           req.Action,
		Status:           models.AutomationActive,
		Category:         category,
		Nodes:            nodes,
		TasksRun:         0,
		TimeSavedMinutes: defaultTimeSavedMinutes,
	}

	if templateID != "" {
		a.TemplateID = &templateID
		if tpl, ok := catalog.Find(templateID); ok {
			if a.Trigger == "" {
				a.Trigger = tpl.Trigger
			}
			if a.Action == "" {
				a.Action = tpl.Action
			}
			a.TimeSavedMinutes = tpl.TimeSaved
		}
	}

	if err := s.store.Create(ctx, a); err != nil {
		return nil, err
	}

	s.activity.Record(ctx, owner, models.ActivityAutomationCreated, "Created: "+a.Name)
	return a, nil
}

// List returns owner's automations, newest first.
func (s *AutomationService) List(ctx context.Context, owner uuid.UUID) ([]models.Automation, error) {
	automations, err := s.store.ListByOwner(ctx, owner, automationListLimit)
	if err != nil {
		return nil, err
	}
	if automations == nil {
		automations = []models.Automation{}
	}
	return automations, nil
}

// Toggle flips an automation between active and paused and returns the new
// status.
func (s *AutomationService) Toggle(ctx context.Context, owner uuid.UUID, id string) (string, error) {
	automationID, err := uuid.Parse(id)
	if err != nil {
		return "", ErrAutomationNotFound
	}

	a, err := s.store.ToggleStatus(ctx, owner, automationID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return "", ErrAutomationNotFound
		}
		return "", err
	}

	s.activity.Record(ctx, owner, models.ActivityAutomationToggled, fmt.Sprintf("%s → %s", a.Name, a.Status))
	return a.Status, nil
}

func (s *AutomationService) Delete(ctx context.Context, owner uuid.UUID, id string) error {
	automationID, err := uuid.Parse(id)
	if err != nil {
		return ErrAutomationNotFound
	}

	if err := s.store.DeleteForOwner(ctx, owner, automationID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrAutomationNotFound
		}
		return err
	}

	s.activity.Record(ctx, owner, models.ActivityAutomationDeleted, "Deleted automation "+automationID.String())
	return nil
}

// normalizeNodes accepts a JSON array (or nothing) and stores it verbatim.
func normalizeNodes(raw []byte) (datatypes.JSON, error) {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		return datatypes.JSON("[]"), nil
	}
	if trimmed[0] != '[' {
		return nil, fmt.Errorf("%w: nodes must be a list", ErrInvalidInput)
	}
	return datatypes.JSON(trimmed), nil
}
