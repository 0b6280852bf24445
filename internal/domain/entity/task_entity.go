package entity

import (
	"time"

	"github.com/projecttasks/backend/pkg/dates"
)

// Task belongs to exactly one project. DueDate is date-only and optional
// (zero value means no due date).
type Task struct {
	ID          int64
	Title       string
	Description string
	DueDate     dates.Date
	Completed   bool
	CreatedAt   time.Time
	ProjectID   int64
}
