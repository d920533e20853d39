package models

// Goal statuses as the backend stores them.
const (
	GoalStatusNotStarted = "not_started"
	GoalStatusInProgress = "in_progress"
	GoalStatusCompleted  = "completed"
	GoalStatusPaused     = "paused"
	GoalStatusCancelled  = "cancelled"
)

// Goal categories as the backend stores them.
const (
	GoalCategoryPersonal  = "personal"
	GoalCategoryCareer    = "career"
	GoalCategoryHealth    = "health"
	GoalCategoryLearning  = "learning"
	GoalCategoryFinancial = "financial"
	GoalCategoryOther     = "other"
)

// Milestone is an embedded step of a goal. There is no standalone
// milestone resource; the list is replaced wholesale on update.
type Milestone struct {
	Title     string `json:"title"`
	Completed bool   `json:"completed"`
}

// Goal is a tracked objective with progress 0–100.
type Goal struct {
	ID            int64       `json:"id"`
	UserID        int64       `json:"user_id"`
	Title         string      `json:"title"`
	Description   string      `json:"description,omitempty"`
	Category      string      `json:"category"`
	Status        string      `json:"status"`
	Progress      int         `json:"progress"`
	TargetDate    string      `json:"target_date,omitempty"`
	Milestones    []Milestone `json:"milestones"`
	AISuggestions string      `json:"ai_suggestions,omitempty"`
	CreatedAt     string      `json:"created_at"`
	UpdatedAt     string      `json:"updated_at,omitempty"`
}

type GoalCreate struct {
	Title       string      `json:"title"`
	Description string      `json:"description,omitempty"`
	Category    string      `json:"category,omitempty"`
	TargetDate  string      `json:"target_date,omitempty"`
	Milestones  []Milestone `json:"milestones,omitempty"`
}

// GoalUpdate is a partial update: nil fields are left unchanged server-side.
type GoalUpdate struct {
	Title       *string     `json:"title,omitempty"`
	Description *string     `json:"description,omitempty"`
	Category    *string     `json:"category,omitempty"`
	Status      *string     `json:"status,omitempty"`
	Progress    *int        `json:"progress,omitempty"`
	TargetDate  *string     `json:"target_date,omitempty"`
	Milestones  []Milestone `json:"milestones,omitempty"`
}
