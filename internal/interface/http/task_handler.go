package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/projecttasks/backend/internal/application"
	"github.com/projecttasks/backend/internal/interface/middleware"
	"github.com/projecttasks/backend/pkg/response"
)

const taskNotFoundMsg = "Task not found or access denied"

type TaskHandler struct {
	Svc    *application.TaskService
	Logger *logrus.Logger
}

func NewTaskHandler(svc *application.TaskService, logger *logrus.Logger) *TaskHandler {
	return &TaskHandler{Svc: svc, Logger: logger}
}

// Create POST /api/projects/:projectId/tasks
func (h *TaskHandler) Create(c *gin.Context) {
	projectID, ok := pathID(c, "projectId")
	if !ok {
		writeInvalidID(c)
		return
	}
	var req taskCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ValidationError(c, bindDetails(err))
		return
	}
	if fieldErrs := req.validate(); fieldErrs != nil {
		response.ValidationError(c, fieldErrs)
		return
	}
	principal := c.GetString(middleware.CtxPrincipalKey)

	view, err := h.Svc.Create(c.Request.Context(), principal, projectID, application.TaskCreateInput{
		Title:       req.Title,
		Description: req.Description,
		DueDate:     req.DueDate,
	})
	if err != nil {
		writeServiceError(c, err, projectNotFoundMsg)
		return
	}
	c.JSON(http.StatusCreated, view)
}

// List GET /api/projects/:projectId/tasks?query&completed&dueDateFrom&dueDateTo&page&size
func (h *TaskHandler) List(c *gin.Context) {
	projectID, ok := pathID(c, "projectId")
	if !ok {
		writeInvalidID(c)
		return
	}
	filter, fieldErrs := parseTaskFilter(c)
	if fieldErrs != nil {
		response.ValidationError(c, fieldErrs)
		return
	}
	page, size := parsePaging(c)
	principal := c.GetString(middleware.CtxPrincipalKey)

	res, err := h.Svc.List(c.Request.Context(), principal, projectID, filter, page, size)
	if err != nil {
		writeServiceError(c, err, projectNotFoundMsg)
		return
	}
	c.JSON(http.StatusOK, res)
}

// Update PUT /api/tasks/:taskId
func (h *TaskHandler) Update(c *gin.Context) {
	taskID, ok := pathID(c, "taskId")
	if !ok {
		writeInvalidID(c)
		return
	}
	var req taskUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ValidationError(c, bindDetails(err))
		return
	}
	if fieldErrs := req.validate(); fieldErrs != nil {
		response.ValidationError(c, fieldErrs)
		return
	}
	principal := c.GetString(middleware.CtxPrincipalKey)

	view, err := h.Svc.Update(c.Request.Context(), principal, taskID, application.TaskUpdateInput{
		Title:       req.Title,
		Description: req.Description,
		DueDate:     req.DueDate,
		Completed:   req.Completed,
	})
	if err != nil {
		writeServiceError(c, err, taskNotFoundMsg)
		return
	}
	c.JSON(http.StatusOK, view)
}

// Complete PATCH /api/tasks/:taskId/complete — idempotent.
func (h *TaskHandler) Complete(c *gin.Context) {
	taskID, ok := pathID(c, "taskId")
	if !ok {
		writeInvalidID(c)
		return
	}
	principal := c.GetString(middleware.CtxPrincipalKey)

	view, err := h.Svc.Complete(c.Request.Context(), principal, taskID)
	if err != nil {
		writeServiceError(c, err, taskNotFoundMsg)
		return
	}
	c.JSON(http.StatusOK, view)
}

// Delete DELETE /api/tasks/:taskId
func (h *TaskHandler) Delete(c *gin.Context) {
	taskID, ok := pathID(c, "taskId")
	if !ok {
		writeInvalidID(c)
		return
	}
	principal := c.GetString(middleware.CtxPrincipalKey)

	if err := h.Svc.Delete(c.Request.Context(), principal, taskID); err != nil {
		writeServiceError(c, err, taskNotFoundMsg)
		return
	}
	c.Status(http.StatusNoContent)
}
