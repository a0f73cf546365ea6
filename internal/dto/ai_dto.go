package dto

type SuggestRequest struct {
	Message string `json:"message"`
}

// Suggestion is a proposed automation, either produced by the model or
// synthesized when the model could not be used.
type Suggestion struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Trigger     string `json:"trigger"`
	Action      string `json:"action"`
	Category    string `json:"category"`
	Suggestion  string `json:"suggestion"`
}

// SuggestResponse carries the suggestion plus the raw model output, or the
// error text when the fallback was used.
type SuggestResponse struct {
	Suggestion Suggestion `json:"suggestion"`
	Raw        string     `json:"raw"`
	Source     string     `json:"source"`
}
