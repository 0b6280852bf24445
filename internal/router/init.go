package router

import (
	"github.com/projecttasks/backend/internal/application"
	"github.com/projecttasks/backend/internal/container"
	pginfra "github.com/projecttasks/backend/internal/infrastructure/postgres"
	handlers "github.com/projecttasks/backend/internal/interface/http"
	"github.com/projecttasks/backend/internal/router/modules"
)

// InitModules wires repositories, services and handlers from the container
// singletons and registers every feature module. Called once at startup.
func InitModules(r *Registry) {
	pool := container.GetPGPool()
	logger := container.GetLogger()

	users := pginfra.NewUserRepository(pool)
	projects := pginfra.NewProjectRepository(pool)
	tasks := pginfra.NewTaskRepository(pool)

	authSvc := application.NewAuthService(users, container.GetJWT(), logger)
	projectSvc := application.NewProjectService(projects, logger)
	taskSvc := application.NewTaskService(tasks, projects, logger)

	r.Add(modules.NewAuthModule(handlers.NewAuthHandler(authSvc, logger)))
	r.Add(modules.NewProjectModule(handlers.NewProjectHandler(projectSvc, logger), container.GetJWT()))
	r.Add(modules.NewTaskModule(handlers.NewTaskHandler(taskSvc, logger), container.GetJWT()))
}
