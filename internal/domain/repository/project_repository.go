package repository

import (
	"context"

	"github.com/projecttasks/backend/internal/domain/entity"
)

// ProjectRecord is a project together with its task aggregates, computed by
// the store at read time.
type ProjectRecord struct {
	entity.Project
	TotalTasks     int
	CompletedTasks int
}

// ProjectRepository scopes every lookup and mutation to the owning user's
// email. Ownership is a query predicate, not a separate check: a project
// owned by someone else behaves exactly like a project that does not exist.
type ProjectRepository interface {
	// Create inserts a project for the user with the given email and fills
	// in the generated ID and creation timestamp.
	Create(ctx context.Context, p *entity.Project, ownerEmail string) error

	FindOwned(ctx context.Context, id int64, ownerEmail string) (*ProjectRecord, error)

	// ListOwned returns one page of the owner's projects, newest first,
	// along with the total project count.
	ListOwned(ctx context.Context, ownerEmail string, offset, limit int) ([]ProjectRecord, int64, error)

	// UpdateOwned replaces title and description. ErrNotFound when the
	// project is absent or owned by another user.
	UpdateOwned(ctx context.Context, id int64, title, description, ownerEmail string) error

	// DeleteOwned removes the project; the store cascades to its tasks.
	DeleteOwned(ctx context.Context, id int64, ownerEmail string) error
}
