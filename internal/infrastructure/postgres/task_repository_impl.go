package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/projecttasks/backend/internal/domain/entity"
	"github.com/projecttasks/backend/internal/domain/repository"
)

type TaskRepository struct {
	pool *pgxpool.Pool
}

func NewTaskRepository(pool *pgxpool.Pool) *TaskRepository {
	return &TaskRepository{pool: pool}
}

func (r *TaskRepository) Create(ctx context.Context, t *entity.Task) error {
	row := r.pool.QueryRow(ctx, `
		INSERT INTO tasks (title, description, due_date, completed, project_id)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at
	`, t.Title, t.Description, t.DueDate, t.Completed, t.ProjectID)

	return row.Scan(&t.ID, &t.CreatedAt)
}

func (r *TaskRepository) FindOwned(ctx context.Context, id int64, ownerEmail string) (*entity.Task, error) {
	row := r.pool.QueryRow(ctx, `
		SELECT t.id, t.title, t.description, t.due_date, t.completed, t.created_at, t.project_id
		FROM tasks t
		JOIN projects p ON p.id = t.project_id
		JOIN users u ON u.id = p.user_id
		WHERE t.id = $1 AND u.email = $2
	`, id, ownerEmail)

	return scanTask(row)
}

func (r *TaskRepository) ListByProject(ctx context.Context, projectID int64, f repository.TaskFilter, offset, limit int) ([]entity.Task, int64, error) {
	where, args := taskListWhere(projectID, f)

	var total int64
	if err := r.pool.QueryRow(ctx,
		"SELECT COUNT(*) FROM tasks t WHERE "+where, args...).Scan(&total); err != nil {
		return nil, 0, err
	}

	query := fmt.Sprintf(`
		SELECT t.id, t.title, t.description, t.due_date, t.completed, t.created_at, t.project_id
		FROM tasks t
		WHERE %s
		ORDER BY t.created_at DESC, t.id DESC
		LIMIT $%d OFFSET $%d
	`, where, len(args)+1, len(args)+2)
	args = append(args, limit, offset)

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var tasks []entity.Task
	for rows.Next() {
		t, err := scanTask(rows)
		if err != nil {
			return nil, 0, err
		}
		tasks = append(tasks, *t)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}
	return tasks, total, nil
}

func (r *TaskRepository) UpdateOwned(ctx context.Context, id int64, upd repository.TaskUpdate, ownerEmail string) (*entity.Task, error) {
	// COALESCE keeps the stored completed flag when the caller did not
	// supply one.
	row := r.pool.QueryRow(ctx, `
		UPDATE tasks t
		SET title = $1, description = $2, due_date = $3,
		    completed = COALESCE($4, t.completed)
		FROM projects p, users u
		WHERE t.id = $5 AND p.id = t.project_id AND u.id = p.user_id AND u.email = $6
		RETURNING t.id, t.title, t.description, t.due_date, t.completed, t.created_at, t.project_id
	`, upd.Title, upd.Description, upd.DueDate, upd.Completed, id, ownerEmail)

	return scanTask(row)
}

func (r *TaskRepository) CompleteOwned(ctx context.Context, id int64, ownerEmail string) (*entity.Task, error) {
	row := r.pool.QueryRow(ctx, `
		UPDATE tasks t
		SET completed = TRUE
		FROM projects p, users u
		WHERE t.id = $1 AND p.id = t.project_id AND u.id = p.user_id AND u.email = $2
		RETURNING t.id, t.title, t.description, t.due_date, t.completed, t.created_at, t.project_id
	`, id, ownerEmail)

	return scanTask(row)
}

func (r *TaskRepository) DeleteOwned(ctx context.Context, id int64, ownerEmail string) error {
	res, err := r.pool.Exec(ctx, `
		DELETE FROM tasks t
		USING projects p, users u
		WHERE t.id = $1 AND p.id = t.project_id AND u.id = p.user_id AND u.email = $2
	`, id, ownerEmail)
	if err != nil {
		return err
	}
	if res.RowsAffected() == 0 {
		return repository.ErrNotFound
	}
	return nil
}

func scanTask(row pgx.Row) (*entity.Task, error) {
	t := &entity.Task{}
	err := row.Scan(&t.ID, &t.Title, &t.Description, &t.DueDate, &t.Completed,
		&t.CreatedAt, &t.ProjectID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return t, nil
}

var _ repository.TaskRepository = (*TaskRepository)(nil)
