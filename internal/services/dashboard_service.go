package services

import (
	"context"
	"math"

	"github.com/ahmetcoskunkizilkaya/flowforge/internal/dto"
	"github.com/ahmetcoskunkizilkaya/flowforge/internal/models"
	"github.com/google/uuid"
)

// hourlyValue is the dollar value assigned to one saved hour.
const hourlyValue = 150

type DashboardService struct {
	store AutomationStore
}

func NewDashboardService(store AutomationStore) *DashboardService {
	return &DashboardService{store: store}
}

// Stats recomputes the dashboard from the owner's current automations.
func (s *DashboardService) Stats(ctx context.Context, owner uuid.UUID) (*dto.DashboardStats, error) {
	automations, err := s.store.ListByOwner(ctx, owner, 0)
	if err != nil {
		return nil, err
	}
	stats := ComputeStats(automations)
	return &stats, nil
}

// ComputeStats derives dashboard figures from a set of automations.
func ComputeStats(automations []models.Automation) dto.DashboardStats {
	var stats dto.DashboardStats
	minutes := 0
	for i := range automations {
		a := &automations[i]
		if a.IsActive() {
			stats.ActiveAutomations++
		}
		stats.TasksRun += a.TasksRun
		minutes += a.TimeSavedMinutes
	}
	stats.TotalAutomations = len(automations)
	stats.HoursSaved = roundTo(float64(minutes)/60, 1)
	stats.ProductivityValue = roundTo(stats.HoursSaved*hourlyValue, 2)
	return stats
}

func roundTo(v float64, places int) float64 {
	p := math.Pow(10, float64(places))
	return math.Round(v*p) / p
}
