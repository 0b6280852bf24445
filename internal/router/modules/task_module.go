package modules

import (
	"github.com/gin-gonic/gin"

	handlers "github.com/projecttasks/backend/internal/interface/http"
	"github.com/projecttasks/backend/internal/interface/middleware"
	"github.com/projecttasks/backend/pkg/helpers"
)

// TaskModule wires the task routes behind bearer auth. Creation and listing
// are nested under the owning project; single-task mutations address the
// task directly.

type TaskModule struct {
	Handler *handlers.TaskHandler
	JWT     *helpers.JWTManager
}

func NewTaskModule(h *handlers.TaskHandler, jwt *helpers.JWTManager) *TaskModule {
	return &TaskModule{Handler: h, JWT: jwt}
}

func (m *TaskModule) Register(rg *gin.RouterGroup) {
	auth := rg.Group("/")
	auth.Use(middleware.Auth(m.JWT))
	{
		auth.POST("/projects/:projectId/tasks", m.Handler.Create)
		auth.GET("/projects/:projectId/tasks", m.Handler.List)
		auth.PUT("/tasks/:taskId", m.Handler.Update)
		auth.PATCH("/tasks/:taskId/complete", m.Handler.Complete)
		auth.DELETE("/tasks/:taskId", m.Handler.Delete)
	}
}
