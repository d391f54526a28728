package entity

import (
	"time"

	"github.com/homequest/backend/pkg/dateutil"
)

// TaskCompletion is the per-task slice of a day summary. It is stored as a
// JSON column, not a separate table, because the engine only ever reads a
// whole day at a time.
type TaskCompletion struct {
	Completed   bool       `json:"completed"`
	CompletedAt *time.Time `json:"completed_at,omitempty"`
}

// DayTaskSummary aggregates one user's tasks for one calendar day. Rows are
// immutable from the badge engine's point of view; only the progress domain
// rewrites them when a task is toggled.
type DayTaskSummary struct {
	CreatedAt time.Time
	UpdatedAt time.Time

	UserID string `gorm:"primaryKey"`
	User   User   `gorm:"foreignKey:UserID"`

	Date dateutil.Date `gorm:"primaryKey;type:varchar(10)"`

	Total     int
	Completed int
	Tasks     Array[TaskCompletion]
}

// IsValid reports whether the summary satisfies its counting invariants.
func (s DayTaskSummary) IsValid() bool {
	if s.Total < 0 || s.Completed < 0 || s.Completed > s.Total {
		return false
	}

	completed := 0
	for _, task := range s.Tasks {
		if task.Completed {
			completed++
		}
	}

	return len(s.Tasks) == 0 || completed == s.Completed
}

// IsPerfect reports an all-complete day. A day with no tasks never counts.
func (s DayTaskSummary) IsPerfect() bool {
	return s.Total > 0 && s.Completed == s.Total
}

func (s DayTaskSummary) IsActive() bool {
	return s.Total > 0
}

// Rate returns completed/total in [0,1], or 0 for an empty day.
func (s DayTaskSummary) Rate() float64 {
	if s.Total == 0 {
		return 0
	}

	return float64(s.Completed) / float64(s.Total)
}
