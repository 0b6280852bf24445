package modules

import (
	"github.com/gin-gonic/gin"

	handlers "github.com/projecttasks/backend/internal/interface/http"
	"github.com/projecttasks/backend/internal/interface/middleware"
	"github.com/projecttasks/backend/pkg/helpers"
)

// ProjectModule wires the project CRUD routes behind bearer auth.
// Protected: POST/GET /api/projects, GET/PUT/DELETE /api/projects/:id

type ProjectModule struct {
	Handler *handlers.ProjectHandler
	JWT     *helpers.JWTManager
}

func NewProjectModule(h *handlers.ProjectHandler, jwt *helpers.JWTManager) *ProjectModule {
	return &ProjectModule{Handler: h, JWT: jwt}
}

func (m *ProjectModule) Register(rg *gin.RouterGroup) {
	auth := rg.Group("/projects")
	auth.Use(middleware.Auth(m.JWT))
	{
		auth.POST("", m.Handler.Create)
		auth.GET("", m.Handler.List)
		auth.GET("/:projectId", m.Handler.Get)
		auth.PUT("/:projectId", m.Handler.Update)
		auth.DELETE("/:projectId", m.Handler.Delete)
	}
}
