package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/ahmetcoskunkizilkaya/flowforge/internal/catalog"
	"github.com/ahmetcoskunkizilkaya/flowforge/internal/dto"
	"github.com/ahmetcoskunkizilkaya/flowforge/internal/llm"
	"github.com/ahmetcoskunkizilkaya/flowforge/internal/metrics"
	"github.com/ahmetcoskunkizilkaya/flowforge/internal/models"
	"github.com/google/uuid"
)

const (
	codeFence         = "```"
	fallbackNameRunes = 50
	fallbackPrefix    = "Automation from: "
	fallbackMessage   = "I created a basic automation from your description. You can customize the trigger and action."
)

var suggestionSystemPrompt = `You are Flow-Forge AI, an automation assistant. When the user describes a task they want automated, respond with a JSON object containing:
{
  "name": "Short automation name",
  "description": "Brief description of what it does",
  "trigger": "What triggers this automation",
  "action": "What action it performs",
  "category": "one of: ` + strings.Join(catalog.Categories, ", ") + `",
  "suggestion": "A friendly one-sentence explanation of how this helps"
}
Only respond with valid JSON. No markdown, no extra text.`

// SuggestionService turns a free-text description into an automation
// proposal. It has no failure path: when the model is unreachable or answers
// with something unparsable, a templated suggestion is returned instead.
type SuggestionService struct {
	llm      llm.Completer
	activity *ActivityService
}

func NewSuggestionService(completer llm.Completer, activity *ActivityService) *SuggestionService {
	return &SuggestionService{llm: completer, activity: activity}
}

func (s *SuggestionService) Suggest(ctx context.Context, owner uuid.UUID, message string) *dto.SuggestResponse {
	raw, err := s.complete(ctx, message)
	if err == nil {
		var suggestion dto.Suggestion
		if suggestion, err = ParseSuggestion(raw); err == nil {
			name := suggestion.Name
			if name == "" {
				name = "Unknown"
			}
			s.activity.Record(ctx, owner, models.ActivityAISuggestion, "AI suggested: "+name)
			metrics.ObserveSuggestion(metrics.SourceAI)
			return &dto.SuggestResponse{Suggestion: suggestion, Raw: raw, Source: metrics.SourceAI}
		}
	}

	slog.Warn("AI suggestion failed, using fallback", "user_id", owner.String(), "error", err)
	metrics.ObserveSuggestion(metrics.SourceFallback)
	return &dto.SuggestResponse{
		Suggestion: FallbackSuggestion(message),
		Raw:        err.Error(),
		Source:     metrics.SourceFallback,
	}
}

// complete calls the model and turns a panic inside the client into an error.
func (s *SuggestionService) complete(ctx context.Context, message string) (raw string, err error) {
	if s.llm == nil {
		return "", llm.ErrNotConfigured
	}
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("LLM client panicked: %v", r)
		}
	}()
	return s.llm.Complete(ctx, suggestionSystemPrompt, message)
}

// ParseSuggestion strips an optional markdown code fence from a model reply
// and decodes the JSON object inside it.
func ParseSuggestion(raw string) (dto.Suggestion, error) {
	var suggestion dto.Suggestion

	clean := strings.TrimSpace(StripCodeFence(raw))
	if !strings.HasPrefix(clean, "{") {
		return suggestion, errors.New("response is not a JSON object")
	}
	if err := json.Unmarshal([]byte(clean), &suggestion); err != nil {
		return suggestion, fmt.Errorf("failed to parse LLM response: %w", err)
	}
	return suggestion, nil
}

// StripCodeFence removes a leading ``` line (language tag included) and
// everything from the last ``` onward. Text without a leading fence is only
// trimmed.
func StripCodeFence(raw string) string {
	clean := strings.TrimSpace(raw)
	if !strings.HasPrefix(clean, codeFence) {
		return clean
	}
	if i := strings.IndexByte(clean, '\n'); i >= 0 {
		clean = clean[i+1:]
	} else {
		clean = clean[len(codeFence):]
	}
	if i := strings.LastIndex(clean, codeFence); i >= 0 {
		clean = clean[:i]
	}
	return clean
}

// FallbackSuggestion builds the deterministic suggestion used when the model
// cannot be.
func FallbackSuggestion(message string) dto.Suggestion {
	name := message
	if r := []rune(message); len(r) > fallbackNameRunes {
		name = string(r[:fallbackNameRunes])
	}
	return dto.Suggestion{
		Name:        fallbackPrefix + name,
		Description: message,
		Trigger:     "Custom trigger",
		Action:      "Custom action",
		Category:    "custom",
		Suggestion:  fallbackMessage,
	}
}
