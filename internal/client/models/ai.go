package models

// Insights is the response of GET /ai/insights. Per-area fields are empty
// when the corresponding journal has no entries yet.
type Insights struct {
	DreamInsights   string `json:"dream_insights,omitempty"`
	GoalInsights    string `json:"goal_insights,omitempty"`
	SleepInsights   string `json:"sleep_insights,omitempty"`
	OverallInsights string `json:"overall_insights"`
}

// AIStatus reports whether the backend's AI integration is configured.
type AIStatus struct {
	Available bool   `json:"available"`
	Message   string `json:"message"`
}

// BrainstormRequest is the payload for POST /ai/brainstorm.
type BrainstormRequest struct {
	IdeaContent string `json:"idea_content"`
	Category    string `json:"category,omitempty"`
}

// BrainstormResponse carries AI suggestions for an idea.
type BrainstormResponse struct {
	Suggestions string `json:"suggestions"`
}
