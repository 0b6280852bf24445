package response

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/projecttasks/backend/pkg/dates"
)

// ErrorResponse is the uniform error envelope for every non-validation
// failure: {timestamp, status, error, message}.
type ErrorResponse struct {
	Timestamp dates.LocalDateTime `json:"timestamp"`
	Status    int                 `json:"status"`
	Error     string              `json:"error"`
	Message   string              `json:"message"`
}

func NewError(status int, errLabel, message string) ErrorResponse {
	return ErrorResponse{
		Timestamp: dates.LocalDateTime{Time: time.Now()},
		Status:    status,
		Error:     errLabel,
		Message:   message,
	}
}

// Error writes the uniform envelope with the given status.
func Error(c *gin.Context, status int, errLabel, message string) {
	c.JSON(status, NewError(status, errLabel, message))
}

// AbortError writes the envelope and aborts the handler chain.
func AbortError(c *gin.Context, status int, errLabel, message string) {
	c.AbortWithStatusJSON(status, NewError(status, errLabel, message))
}

// ValidationError writes a bare field->message map with 400. Validation
// failures deliberately skip the envelope so clients can bind messages to
// form fields directly.
func ValidationError(c *gin.Context, fields map[string]string) {
	c.JSON(http.StatusBadRequest, fields)
}

// Page is the offset-based page envelope shared by project and task listings.
type Page[T any] struct {
	Content       []T   `json:"content"`
	PageNumber    int   `json:"pageNumber"`
	PageSize      int   `json:"pageSize"`
	TotalElements int64 `json:"totalElements"`
	TotalPages    int   `json:"totalPages"`
	IsLast        bool  `json:"isLast"`
}

// NewPage computes page metadata from a zero-based page index, page size and
// the total row count. An empty result set is a single, last page.
func NewPage[T any](content []T, pageNumber, pageSize int, total int64) Page[T] {
	if content == nil {
		content = []T{}
	}
	totalPages := 0
	if pageSize > 0 {
		totalPages = int((total + int64(pageSize) - 1) / int64(pageSize))
	}
	return Page[T]{
		Content:       content,
		PageNumber:    pageNumber,
		PageSize:      pageSize,
		TotalElements: total,
		TotalPages:    totalPages,
		IsLast:        pageNumber+1 >= totalPages,
	}
}
