package application

import (
	"github.com/projecttasks/backend/internal/domain/entity"
	"github.com/projecttasks/backend/internal/domain/repository"
	"github.com/projecttasks/backend/pkg/dates"
)

// ProjectView is the wire shape for a project, embedding the task aggregates.
type ProjectView struct {
	ID                 int64               `json:"id"`
	Title              string              `json:"title"`
	Description        string              `json:"description"`
	CreatedAt          dates.LocalDateTime `json:"createdAt"`
	TotalTasks         int                 `json:"totalTasks"`
	CompletedTasks     int                 `json:"completedTasks"`
	ProgressPercentage float64             `json:"progressPercentage"`
}

// TaskView is the wire shape for a task, carrying the owning project's id.
type TaskView struct {
	ID          int64               `json:"id"`
	Title       string              `json:"title"`
	Description string              `json:"description"`
	IsCompleted bool                `json:"isCompleted"`
	DueDate     dates.Date          `json:"dueDate"`
	ProjectID   int64               `json:"projectId"`
	CreatedAt   dates.LocalDateTime `json:"createdAt"`
}

// Progress returns the completion percentage. A project without tasks is
// exactly 0.0, never NaN.
func Progress(completed, total int) float64 {
	if total == 0 {
		return 0.0
	}
	return float64(completed) / float64(total) * 100
}

func toProjectView(rec *repository.ProjectRecord) ProjectView {
	return ProjectView{
		ID:                 rec.ID,
		Title:              rec.Title,
		Description:        rec.Description,
		CreatedAt:          dates.LocalDateTime{Time: rec.CreatedAt},
		TotalTasks:         rec.TotalTasks,
		CompletedTasks:     rec.CompletedTasks,
		ProgressPercentage: Progress(rec.CompletedTasks, rec.TotalTasks),
	}
}

func toTaskView(t *entity.Task) TaskView {
	return TaskView{
		ID:          t.ID,
		Title:       t.Title,
		Description: t.Description,
		IsCompleted: t.Completed,
		DueDate:     t.DueDate,
		ProjectID:   t.ProjectID,
		CreatedAt:   dates.LocalDateTime{Time: t.CreatedAt},
	}
}
