package handlers

import (
	"errors"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/projecttasks/backend/internal/domain/repository"
	"github.com/projecttasks/backend/pkg/dates"
	"github.com/projecttasks/backend/pkg/validation"
)

type registerRequest struct {
	FullName string `json:"fullName" binding:"required,notblank"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,pwd"`
}

type loginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type projectRequest struct {
	Title       string `json:"title" binding:"required,notblank,min=4,max=50"`
	Description string `json:"description"`
}

type taskCreateRequest struct {
	Title       string     `json:"title" binding:"required,notblank"`
	Description string     `json:"description"`
	DueDate     dates.Date `json:"dueDate"`
}

// validate enforces the date rule the struct tags cannot express: a supplied
// due date must be today or later.
func (r *taskCreateRequest) validate() map[string]string {
	return dueDateFieldErrors(r.DueDate)
}

type taskUpdateRequest struct {
	Title       string     `json:"title" binding:"required,notblank"`
	Description string     `json:"description"`
	DueDate     dates.Date `json:"dueDate"`
	Completed   *bool      `json:"completed"`
}

func (r *taskUpdateRequest) validate() map[string]string {
	return dueDateFieldErrors(r.DueDate)
}

// bindDetails maps body binding failures to field errors. A date parse
// failure can only come from dueDate, the single date field in any request
// body.
func bindDetails(err error) map[string]string {
	var de *dates.ParseError
	if errors.As(err, &de) {
		return map[string]string{"dueDate": "must match datetime format: " + de.Layout}
	}
	return validation.ToDetails(err)
}

func dueDateFieldErrors(d dates.Date) map[string]string {
	if !d.IsZero() && d.Before(dates.Today()) {
		return map[string]string{"dueDate": "Due date must be in the present or future"}
	}
	return nil
}

// parseTaskFilter reads the optional filter query params. The strict
// from-before-to rule is enforced here, at the input boundary, not in the
// query engine.
func parseTaskFilter(c *gin.Context) (repository.TaskFilter, map[string]string) {
	f := repository.TaskFilter{Query: strings.TrimSpace(c.Query("query"))}
	fieldErrs := map[string]string{}

	if v := c.Query("completed"); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			fieldErrs["completed"] = "must be a boolean value"
		} else {
			f.Completed = &b
		}
	}
	if v := c.Query("dueDateFrom"); v != "" {
		t, err := time.Parse(dates.DateLayout, v)
		if err != nil {
			fieldErrs["dueDateFrom"] = "must match datetime format: " + dates.DateLayout
		} else {
			f.DueDateFrom = dates.NewDate(t)
		}
	}
	if v := c.Query("dueDateTo"); v != "" {
		t, err := time.Parse(dates.DateLayout, v)
		if err != nil {
			fieldErrs["dueDateTo"] = "must match datetime format: " + dates.DateLayout
		} else {
			f.DueDateTo = dates.NewDate(t)
		}
	}
	if !f.DueDateFrom.IsZero() && !f.DueDateTo.IsZero() && !f.DueDateFrom.Before(f.DueDateTo) {
		fieldErrs["dueDateFrom"] = "dueDateFrom must be before dueDateTo"
	}

	if len(fieldErrs) == 0 {
		return f, nil
	}
	return f, fieldErrs
}

// maxPage caps the page index so page*size can never overflow into a
// negative offset.
const maxPage = 1_000_000

// parsePaging reads zero-based page and size query params with defaults.
func parsePaging(c *gin.Context) (page, size int) {
	page, size = 0, 10
	if v, err := strconv.Atoi(c.DefaultQuery("page", "0")); err == nil && v >= 0 && v <= maxPage {
		page = v
	}
	if v, err := strconv.Atoi(c.DefaultQuery("size", "10")); err == nil && v > 0 && v <= 100 {
		size = v
	}
	return page, size
}

func pathID(c *gin.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}
