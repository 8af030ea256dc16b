package repositories

import (
	"context"

	"github.com/aithreya/learning-service/internal/models"
	"github.com/google/uuid"
)

// UserRepository provides access to user identity and gamification state.
type UserRepository interface {
	Create(ctx context.Context, user *models.User) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	Update(ctx context.Context, user *models.User) error

	ExistsByEmail(ctx context.Context, email string) (bool, error)

	// Deactivate soft-disables the account; users are never hard-deleted.
	Deactivate(ctx context.Context, id uuid.UUID) error
}
