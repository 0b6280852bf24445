package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/projecttasks/backend/internal/domain/repository"
	"github.com/projecttasks/backend/pkg/response"
)

// writeServiceError maps service failures to the uniform envelope. Missing
// and not-owned resources share the same 404.
func writeServiceError(c *gin.Context, err error, notFoundMsg string) {
	if errors.Is(err, repository.ErrNotFound) {
		response.Error(c, http.StatusNotFound, "Not Found", notFoundMsg)
		return
	}
	response.Error(c, http.StatusInternalServerError, "Server Error", err.Error())
}

func writeInvalidID(c *gin.Context) {
	response.Error(c, http.StatusBadRequest, "Bad Request", "invalid resource id")
}
