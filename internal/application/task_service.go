package application

import (
	"context"

	"github.com/sirupsen/logrus"

	"github.com/projecttasks/backend/internal/domain/entity"
	"github.com/projecttasks/backend/internal/domain/repository"
	"github.com/projecttasks/backend/pkg/dates"
	"github.com/projecttasks/backend/pkg/response"
)

// TaskService routes every task operation through ownership resolution:
// either the task itself resolves through its project's owner, or, for
// creation and listing, the parent project does.
type TaskService struct {
	Tasks    repository.TaskRepository
	Projects repository.ProjectRepository
	Logger   *logrus.Logger
}

func NewTaskService(tasks repository.TaskRepository, projects repository.ProjectRepository, logger *logrus.Logger) *TaskService {
	return &TaskService{Tasks: tasks, Projects: projects, Logger: logger}
}

type TaskCreateInput struct {
	Title       string
	Description string
	DueDate     dates.Date
}

func (s *TaskService) Create(ctx context.Context, principal string, projectID int64, in TaskCreateInput) (*TaskView, error) {
	project, err := s.Projects.FindOwned(ctx, projectID, principal)
	if err != nil {
		return nil, err
	}
	// Completed is always false on creation, whatever the payload said.
	t := &entity.Task{
		Title:       in.Title,
		Description: in.Description,
		DueDate:     in.DueDate,
		Completed:   false,
		ProjectID:   project.ID,
	}
	if err := s.Tasks.Create(ctx, t); err != nil {
		s.Logger.WithError(err).WithField("project_id", projectID).Error("task create failed")
		return nil, err
	}
	v := toTaskView(t)
	return &v, nil
}

func (s *TaskService) List(ctx context.Context, principal string, projectID int64, f repository.TaskFilter, page, size int) (response.Page[TaskView], error) {
	project, err := s.Projects.FindOwned(ctx, projectID, principal)
	if err != nil {
		return response.Page[TaskView]{}, err
	}
	tasks, total, err := s.Tasks.ListByProject(ctx, project.ID, f, page*size, size)
	if err != nil {
		s.Logger.WithError(err).WithField("project_id", projectID).Error("task list failed")
		return response.Page[TaskView]{}, err
	}
	views := make([]TaskView, 0, len(tasks))
	for i := range tasks {
		views = append(views, toTaskView(&tasks[i]))
	}
	return response.NewPage(views, page, size, total), nil
}

type TaskUpdateInput struct {
	Title       string
	Description string
	DueDate     dates.Date
	Completed   *bool
}

func (s *TaskService) Update(ctx context.Context, principal string, taskID int64, in TaskUpdateInput) (*TaskView, error) {
	upd := repository.TaskUpdate{
		Title:       in.Title,
		Description: in.Description,
		DueDate:     in.DueDate,
		Completed:   in.Completed,
	}
	t, err := s.Tasks.UpdateOwned(ctx, taskID, upd, principal)
	if err != nil {
		return nil, err
	}
	v := toTaskView(t)
	return &v, nil
}

func (s *TaskService) Complete(ctx context.Context, principal string, taskID int64) (*TaskView, error) {
	t, err := s.Tasks.CompleteOwned(ctx, taskID, principal)
	if err != nil {
		return nil, err
	}
	v := toTaskView(t)
	return &v, nil
}

func (s *TaskService) Delete(ctx context.Context, principal string, taskID int64) error {
	return s.Tasks.DeleteOwned(ctx, taskID, principal)
}
