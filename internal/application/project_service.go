package application

import (
	"context"
	"errors"

	"github.com/sirupsen/logrus"

	"github.com/projecttasks/backend/internal/domain/entity"
	"github.com/projecttasks/backend/internal/domain/repository"
	"github.com/projecttasks/backend/pkg/response"
)

// ErrNotFound is returned for missing and not-owned resources alike.
var ErrNotFound = repository.ErrNotFound

// ProjectService owns the project lifecycle. Every call takes the principal's
// email explicitly; there is no ambient current-user state.
type ProjectService struct {
	Projects repository.ProjectRepository
	Logger   *logrus.Logger
}

func NewProjectService(projects repository.ProjectRepository, logger *logrus.Logger) *ProjectService {
	return &ProjectService{Projects: projects, Logger: logger}
}

type ProjectInput struct {
	Title       string
	Description string
}

func (s *ProjectService) Create(ctx context.Context, principal string, in ProjectInput) (*ProjectView, error) {
	p := &entity.Project{Title: in.Title, Description: in.Description}
	if err := s.Projects.Create(ctx, p, principal); err != nil {
		if !errors.Is(err, repository.ErrNotFound) {
			s.Logger.WithError(err).WithField("principal", principal).Error("project create failed")
		}
		return nil, err
	}
	// A fresh project has no tasks; skip the aggregate round trip.
	v := toProjectView(&repository.ProjectRecord{Project: *p})
	return &v, nil
}

func (s *ProjectService) List(ctx context.Context, principal string, page, size int) (response.Page[ProjectView], error) {
	recs, total, err := s.Projects.ListOwned(ctx, principal, page*size, size)
	if err != nil {
		s.Logger.WithError(err).WithField("principal", principal).Error("project list failed")
		return response.Page[ProjectView]{}, err
	}
	views := make([]ProjectView, 0, len(recs))
	for i := range recs {
		views = append(views, toProjectView(&recs[i]))
	}
	return response.NewPage(views, page, size, total), nil
}

func (s *ProjectService) Get(ctx context.Context, principal string, id int64) (*ProjectView, error) {
	rec, err := s.Projects.FindOwned(ctx, id, principal)
	if err != nil {
		return nil, err
	}
	v := toProjectView(rec)
	return &v, nil
}

func (s *ProjectService) Update(ctx context.Context, principal string, id int64, in ProjectInput) (*ProjectView, error) {
	if err := s.Projects.UpdateOwned(ctx, id, in.Title, in.Description, principal); err != nil {
		return nil, err
	}
	return s.Get(ctx, principal, id)
}

// Delete removes the project and, through the store's cascade, all of its
// tasks in one transaction.
func (s *ProjectService) Delete(ctx context.Context, principal string, id int64) error {
	return s.Projects.DeleteOwned(ctx, id, principal)
}
