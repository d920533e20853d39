package models

// Dream is a journaled dream entry. Mood is constrained to 1–5 by the
// entry forms, not by the client.
type Dream struct {
	ID               int64    `json:"id"`
	UserID           int64    `json:"user_id"`
	Title            string   `json:"title"`
	Content          string   `json:"content"`
	Mood             int      `json:"mood"`
	Tags             []string `json:"tags"`
	AIInterpretation string   `json:"ai_interpretation,omitempty"`
	DreamDate        string   `json:"dream_date"`
	CreatedAt        string   `json:"created_at"`
	UpdatedAt        string   `json:"updated_at,omitempty"`
}

// DreamCreate is the creation payload. The server assigns id and owner.
type DreamCreate struct {
	Title     string   `json:"title"`
	Content   string   `json:"content"`
	Mood      int      `json:"mood,omitempty"`
	Tags      []string `json:"tags,omitempty"`
	DreamDate string   `json:"dream_date,omitempty"`
}

// DreamUpdate is a partial update: nil fields are left unchanged
// server-side.
type DreamUpdate struct {
	Title     *string  `json:"title,omitempty"`
	Content   *string  `json:"content,omitempty"`
	Mood      *int     `json:"mood,omitempty"`
	Tags      []string `json:"tags,omitempty"`
	DreamDate *string  `json:"dream_date,omitempty"`
}
