package dto

import "encoding/json"

type CreateAutomationRequest struct {
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Trigger     string          `json:"trigger"`
	Action      string          `json:"action"`
	TemplateID  *string         `json:"template_id"`
	Category    string          `json:"category"`
	Nodes       json.RawMessage `json:"nodes"`
}

type DashboardStats struct {
	ActiveAutomations int     `json:"active_automations"`
	TotalAutomations  int     `json:"total_automations"`
	TasksRun          int     `json:"tasks_run"`
	HoursSaved        float64 `json:"hours_saved"`
	ProductivityValue float64 `json:"productivity_value"`
}
