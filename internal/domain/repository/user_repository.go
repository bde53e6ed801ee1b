package repository

import (
	"context"

	"github.com/aryaduta/go-blog-api/internal/domain/entity"
)

// UserRepository defines the interface for account-related database operations.
type UserRepository interface {
	Create(ctx context.Context, u *entity.User) error
	GetByID(ctx context.Context, id int64) (*entity.User, error)
	GetByUsername(ctx context.Context, username string) (*entity.User, error)
}
