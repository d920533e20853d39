package models

// Idea priority bounds. The range is 1–5; earlier web builds wrote only
// 1–3, which render as the lower labels unchanged.
const (
	IdeaPriorityMin = 1
	IdeaPriorityMax = 5
)

var ideaPriorityLabels = [...]string{"Lowest", "Low", "Medium", "High", "Urgent"}

// IdeaPriorityLabel returns a human label for a priority value, or
// "Unknown" for values outside 1–5.
func IdeaPriorityLabel(p int) string {
	if p < IdeaPriorityMin || p > IdeaPriorityMax {
		return "Unknown"
	}
	return ideaPriorityLabels[p-1]
}

// Idea is a captured thought with an optional category and tags.
type Idea struct {
	ID        int64    `json:"id"`
	UserID    int64    `json:"user_id"`
	Content   string   `json:"content"`
	Category  string   `json:"category,omitempty"`
	Tags      []string `json:"tags"`
	Priority  int      `json:"priority"`
	CreatedAt string   `json:"created_at"`
	UpdatedAt string   `json:"updated_at,omitempty"`
}

type IdeaCreate struct {
	Content  string   `json:"content"`
	Category string   `json:"category,omitempty"`
	Tags     []string `json:"tags,omitempty"`
	Priority int      `json:"priority,omitempty"`
}

// IdeaUpdate is a partial update: nil fields are left unchanged server-side.
type IdeaUpdate struct {
	Content  *string  `json:"content,omitempty"`
	Category *string  `json:"category,omitempty"`
	Tags     []string `json:"tags,omitempty"`
	Priority *int     `json:"priority,omitempty"`
}
