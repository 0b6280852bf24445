package postgres

import (
	"fmt"
	"strings"

	"github.com/projecttasks/backend/internal/domain/repository"
)

// taskListWhere builds the WHERE clause for a filtered task listing. The
// project predicate is always present; each optional filter appends one more
// ANDed predicate with its positional argument.
func taskListWhere(projectID int64, f repository.TaskFilter) (string, []any) {
	where := []string{"t.project_id = $1"}
	args := []any{projectID}

	if q := strings.TrimSpace(f.Query); q != "" {
		args = append(args, "%"+strings.ToLower(q)+"%")
		n := len(args)
		where = append(where, fmt.Sprintf("(LOWER(t.title) LIKE $%d OR LOWER(t.description) LIKE $%d)", n, n))
	}
	if f.Completed != nil {
		args = append(args, *f.Completed)
		where = append(where, fmt.Sprintf("t.completed = $%d", len(args)))
	}
	if !f.DueDateFrom.IsZero() {
		args = append(args, f.DueDateFrom)
		where = append(where, fmt.Sprintf("t.due_date >= $%d", len(args)))
	}
	if !f.DueDateTo.IsZero() {
		args = append(args, f.DueDateTo)
		where = append(where, fmt.Sprintf("t.due_date <= $%d", len(args)))
	}

	return strings.Join(where, " AND "), args
}
