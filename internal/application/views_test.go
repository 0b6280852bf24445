package application

import (
	"math"
	"testing"
	"time"

	"github.com/projecttasks/backend/internal/domain/entity"
	"github.com/projecttasks/backend/internal/domain/repository"
	"github.com/projecttasks/backend/pkg/dates"
)

func TestProgress(t *testing.T) {
	tests := []struct {
		name      string
		completed int
		total     int
		want      float64
	}{
		{"no tasks is exactly zero", 0, 0, 0.0},
		{"none completed", 0, 4, 0.0},
		{"half completed", 2, 4, 50.0},
		{"all completed", 5, 5, 100.0},
		{"one of three", 1, 3, 100.0 / 3.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Progress(tt.completed, tt.total)
			if math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("Progress(%d, %d) = %v, want %v", tt.completed, tt.total, got, tt.want)
			}
		})
	}
}

func TestProgressNeverNaN(t *testing.T) {
	if got := Progress(0, 0); math.IsNaN(got) || got != 0.0 {
		t.Fatalf("Progress(0, 0) = %v, want exactly 0.0", got)
	}
}

func TestToProjectViewEmbedsAggregates(t *testing.T) {
	created := time.Date(2025, 3, 14, 9, 26, 53, 0, time.UTC)
	rec := &repository.ProjectRecord{
		Project: entity.Project{
			ID:          7,
			Title:       "Side Project",
			Description: "weekend work",
			CreatedAt:   created,
			UserID:      1,
		},
		TotalTasks:     3,
		CompletedTasks: 1,
	}

	v := toProjectView(rec)
	if v.ID != 7 || v.Title != "Side Project" {
		t.Fatalf("unexpected identity fields: %+v", v)
	}
	if v.TotalTasks != 3 || v.CompletedTasks != 1 {
		t.Errorf("counts = %d/%d, want 3/1", v.CompletedTasks, v.TotalTasks)
	}
	if math.Abs(v.ProgressPercentage-100.0/3.0) > 1e-9 {
		t.Errorf("progress = %v, want 33.33...", v.ProgressPercentage)
	}
	if !v.CreatedAt.Equal(created) {
		t.Errorf("createdAt = %v, want %v", v.CreatedAt, created)
	}
}

func TestToTaskViewCarriesProjectID(t *testing.T) {
	task := &entity.Task{
		ID:          11,
		Title:       "write tests",
		Completed:   true,
		DueDate:     dates.NewDate(time.Date(2030, 1, 2, 0, 0, 0, 0, time.UTC)),
		CreatedAt:   time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC),
		ProjectID:   7,
		Description: "",
	}

	v := toTaskView(task)
	if v.ProjectID != 7 {
		t.Errorf("projectId = %d, want 7", v.ProjectID)
	}
	if !v.IsCompleted {
		t.Error("isCompleted = false, want true")
	}
	if v.DueDate.Format(dates.DateLayout) != "2030-01-02" {
		t.Errorf("dueDate = %v, want 2030-01-02", v.DueDate)
	}
}
