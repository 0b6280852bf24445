package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/projecttasks/backend/internal/domain/entity"
	"github.com/projecttasks/backend/internal/domain/repository"
)

// projectColumns selects a project with its task aggregates. Ownership is the
// `u.email` predicate appended by each caller.
const projectColumns = `
	SELECT p.id, p.title, p.description, p.created_at, p.user_id,
	       COUNT(t.id), COUNT(t.id) FILTER (WHERE t.completed)
	FROM projects p
	JOIN users u ON u.id = p.user_id
	LEFT JOIN tasks t ON t.project_id = p.id
`

type ProjectRepository struct {
	pool *pgxpool.Pool
}

func NewProjectRepository(pool *pgxpool.Pool) *ProjectRepository {
	return &ProjectRepository{pool: pool}
}

func (r *ProjectRepository) Create(ctx context.Context, p *entity.Project, ownerEmail string) error {
	row := r.pool.QueryRow(ctx, `
		INSERT INTO projects (title, description, user_id)
		SELECT $1, $2, u.id FROM users u WHERE u.email = $3
		RETURNING id, created_at, user_id
	`, p.Title, p.Description, ownerEmail)

	if err := row.Scan(&p.ID, &p.CreatedAt, &p.UserID); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			// Principal no longer exists; treat like any other missing resource.
			return repository.ErrNotFound
		}
		return err
	}
	return nil
}

func (r *ProjectRepository) FindOwned(ctx context.Context, id int64, ownerEmail string) (*repository.ProjectRecord, error) {
	row := r.pool.QueryRow(ctx, projectColumns+`
		WHERE p.id = $1 AND u.email = $2
		GROUP BY p.id
	`, id, ownerEmail)

	rec := &repository.ProjectRecord{}
	if err := scanProject(row, rec); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return rec, nil
}

func (r *ProjectRepository) ListOwned(ctx context.Context, ownerEmail string, offset, limit int) ([]repository.ProjectRecord, int64, error) {
	var total int64
	err := r.pool.QueryRow(ctx, `
		SELECT COUNT(*) FROM projects p
		JOIN users u ON u.id = p.user_id
		WHERE u.email = $1
	`, ownerEmail).Scan(&total)
	if err != nil {
		return nil, 0, err
	}

	rows, err := r.pool.Query(ctx, projectColumns+`
		WHERE u.email = $1
		GROUP BY p.id
		ORDER BY p.created_at DESC, p.id DESC
		LIMIT $2 OFFSET $3
	`, ownerEmail, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var recs []repository.ProjectRecord
	for rows.Next() {
		var rec repository.ProjectRecord
		if err := scanProject(rows, &rec); err != nil {
			return nil, 0, err
		}
		recs = append(recs, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}
	return recs, total, nil
}

func (r *ProjectRepository) UpdateOwned(ctx context.Context, id int64, title, description, ownerEmail string) error {
	res, err := r.pool.Exec(ctx, `
		UPDATE projects p
		SET title = $1, description = $2
		FROM users u
		WHERE p.id = $3 AND u.id = p.user_id AND u.email = $4
	`, title, description, id, ownerEmail)
	if err != nil {
		return err
	}
	if res.RowsAffected() == 0 {
		return repository.ErrNotFound
	}
	return nil
}

func (r *ProjectRepository) DeleteOwned(ctx context.Context, id int64, ownerEmail string) error {
	// Tasks go with the project via the ON DELETE CASCADE constraint; the
	// single statement keeps the cascade atomic.
	res, err := r.pool.Exec(ctx, `
		DELETE FROM projects p
		USING users u
		WHERE p.id = $1 AND u.id = p.user_id AND u.email = $2
	`, id, ownerEmail)
	if err != nil {
		return err
	}
	if res.RowsAffected() == 0 {
		return repository.ErrNotFound
	}
	return nil
}

func scanProject(row pgx.Row, rec *repository.ProjectRecord) error {
	return row.Scan(&rec.ID, &rec.Title, &rec.Description, &rec.CreatedAt,
		&rec.UserID, &rec.TotalTasks, &rec.CompletedTasks)
}

var _ repository.ProjectRepository = (*ProjectRepository)(nil)
