package repository

import (
	"context"

	"github.com/projecttasks/backend/internal/domain/entity"
)

// UserRepository defines the interface for user-related database operations.
type UserRepository interface {
	// Create inserts the user and fills in the generated ID. Returns
	// ErrEmailTaken when the email is already registered.
	Create(ctx context.Context, u *entity.User) error
	GetByEmail(ctx context.Context, email string) (*entity.User, error)
}
