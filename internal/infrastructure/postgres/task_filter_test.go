package postgres

import (
	"strings"
	"testing"
	"time"

	"github.com/projecttasks/backend/internal/domain/repository"
	"github.com/projecttasks/backend/pkg/dates"
)

func boolPtr(b bool) *bool { return &b }

func date(s string) dates.Date {
	t, err := time.Parse(dates.DateLayout, s)
	if err != nil {
		panic(err)
	}
	return dates.NewDate(t)
}

func TestTaskListWhere(t *testing.T) {
	tests := []struct {
		name     string
		filter   repository.TaskFilter
		want     string
		wantArgs int
	}{
		{
			name:     "no filters keeps only the project predicate",
			filter:   repository.TaskFilter{},
			want:     "t.project_id = $1",
			wantArgs: 1,
		},
		{
			name:     "blank query is treated as absent",
			filter:   repository.TaskFilter{Query: "   "},
			want:     "t.project_id = $1",
			wantArgs: 1,
		},
		{
			name:     "text query matches title or description",
			filter:   repository.TaskFilter{Query: "Report"},
			want:     "t.project_id = $1 AND (LOWER(t.title) LIKE $2 OR LOWER(t.description) LIKE $2)",
			wantArgs: 2,
		},
		{
			name:     "completed flag",
			filter:   repository.TaskFilter{Completed: boolPtr(true)},
			want:     "t.project_id = $1 AND t.completed = $2",
			wantArgs: 2,
		},
		{
			name: "all predicates are conjoined in order",
			filter: repository.TaskFilter{
				Query:       "report",
				Completed:   boolPtr(false),
				DueDateFrom: date("2025-01-01"),
				DueDateTo:   date("2025-12-31"),
			},
			want: "t.project_id = $1 AND (LOWER(t.title) LIKE $2 OR LOWER(t.description) LIKE $2)" +
				" AND t.completed = $3 AND t.due_date >= $4 AND t.due_date <= $5",
			wantArgs: 5,
		},
		{
			name:     "only lower bound",
			filter:   repository.TaskFilter{DueDateFrom: date("2025-06-01")},
			want:     "t.project_id = $1 AND t.due_date >= $2",
			wantArgs: 2,
		},
		{
			name:     "only upper bound",
			filter:   repository.TaskFilter{DueDateTo: date("2025-06-30")},
			want:     "t.project_id = $1 AND t.due_date <= $2",
			wantArgs: 2,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			where, args := taskListWhere(42, tt.filter)
			if where != tt.want {
				t.Errorf("where = %q, want %q", where, tt.want)
			}
			if len(args) != tt.wantArgs {
				t.Errorf("len(args) = %d, want %d", len(args), tt.wantArgs)
			}
			if args[0] != int64(42) {
				t.Errorf("args[0] = %v, want project id 42", args[0])
			}
		})
	}
}

func TestTaskListWhereQueryIsCaseInsensitive(t *testing.T) {
	_, args := taskListWhere(1, repository.TaskFilter{Query: "  RePort  "})
	pattern, ok := args[1].(string)
	if !ok {
		t.Fatalf("args[1] is %T, want string", args[1])
	}
	if pattern != "%report%" {
		t.Errorf("pattern = %q, want %%report%% (trimmed, lowered, wrapped)", pattern)
	}
	if !strings.Contains(pattern, "report") {
		t.Errorf("pattern %q does not contain the lowered term", pattern)
	}
}
