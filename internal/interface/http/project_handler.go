package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/projecttasks/backend/internal/application"
	"github.com/projecttasks/backend/internal/interface/middleware"
	"github.com/projecttasks/backend/pkg/response"
)

const projectNotFoundMsg = "Project not found or access denied"

type ProjectHandler struct {
	Svc    *application.ProjectService
	Logger *logrus.Logger
}

func NewProjectHandler(svc *application.ProjectService, logger *logrus.Logger) *ProjectHandler {
	return &ProjectHandler{Svc: svc, Logger: logger}
}

// Create POST /api/projects
func (h *ProjectHandler) Create(c *gin.Context) {
	var req projectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ValidationError(c, bindDetails(err))
		return
	}
	principal := c.GetString(middleware.CtxPrincipalKey)

	view, err := h.Svc.Create(c.Request.Context(), principal, application.ProjectInput{
		Title:       req.Title,
		Description: req.Description,
	})
	if err != nil {
		writeServiceError(c, err, projectNotFoundMsg)
		return
	}
	c.JSON(http.StatusCreated, view)
}

// List GET /api/projects?page&size
func (h *ProjectHandler) List(c *gin.Context) {
	principal := c.GetString(middleware.CtxPrincipalKey)
	page, size := parsePaging(c)

	res, err := h.Svc.List(c.Request.Context(), principal, page, size)
	if err != nil {
		writeServiceError(c, err, projectNotFoundMsg)
		return
	}
	c.JSON(http.StatusOK, res)
}

// Get GET /api/projects/:id
func (h *ProjectHandler) Get(c *gin.Context) {
	id, ok := pathID(c, "projectId")
	if !ok {
		writeInvalidID(c)
		return
	}
	principal := c.GetString(middleware.CtxPrincipalKey)

	view, err := h.Svc.Get(c.Request.Context(), principal, id)
	if err != nil {
		writeServiceError(c, err, projectNotFoundMsg)
		return
	}
	c.JSON(http.StatusOK, view)
}

// Update PUT /api/projects/:id
func (h *ProjectHandler) Update(c *gin.Context) {
	id, ok := pathID(c, "projectId")
	if !ok {
		writeInvalidID(c)
		return
	}
	var req projectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ValidationError(c, bindDetails(err))
		return
	}
	principal := c.GetString(middleware.CtxPrincipalKey)

	view, err := h.Svc.Update(c.Request.Context(), principal, id, application.ProjectInput{
		Title:       req.Title,
		Description: req.Description,
	})
	if err != nil {
		writeServiceError(c, err, projectNotFoundMsg)
		return
	}
	c.JSON(http.StatusOK, view)
}

// Delete DELETE /api/projects/:id — cascades to the project's tasks.
func (h *ProjectHandler) Delete(c *gin.Context) {
	id, ok := pathID(c, "projectId")
	if !ok {
		writeInvalidID(c)
		return
	}
	principal := c.GetString(middleware.CtxPrincipalKey)

	if err := h.Svc.Delete(c.Request.Context(), principal, id); err != nil {
		writeServiceError(c, err, projectNotFoundMsg)
		return
	}
	c.Status(http.StatusNoContent)
}
