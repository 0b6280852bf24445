package repository

import (
	"context"

	"github.com/projecttasks/backend/internal/domain/entity"
	"github.com/projecttasks/backend/pkg/dates"
)

// TaskFilter holds the optional list predicates. Zero values mean "no
// predicate": a blank Query, a nil Completed and zero dates are all ignored.
// All present predicates are ANDed together.
type TaskFilter struct {
	Query       string
	Completed   *bool
	DueDateFrom dates.Date
	DueDateTo   dates.Date
}

// TaskUpdate is a full replace of a task's mutable fields, except Completed:
// nil leaves the current flag untouched.
type TaskUpdate struct {
	Title       string
	Description string
	DueDate     dates.Date
	Completed   *bool
}

// TaskRepository mirrors ProjectRepository's ownership scoping: a task is
// reachable only through its project's owning user.
type TaskRepository interface {
	// Create inserts the task and fills in the generated ID and creation
	// timestamp. Callers resolve project ownership first.
	Create(ctx context.Context, t *entity.Task) error

	FindOwned(ctx context.Context, id int64, ownerEmail string) (*entity.Task, error)

	// ListByProject pages through a project's tasks matching the filter,
	// newest first, and returns the total match count.
	ListByProject(ctx context.Context, projectID int64, f TaskFilter, offset, limit int) ([]entity.Task, int64, error)

	UpdateOwned(ctx context.Context, id int64, upd TaskUpdate, ownerEmail string) (*entity.Task, error)

	// CompleteOwned sets completed = true and nothing else. Idempotent.
	CompleteOwned(ctx context.Context, id int64, ownerEmail string) (*entity.Task, error)

	DeleteOwned(ctx context.Context, id int64, ownerEmail string) error
}
