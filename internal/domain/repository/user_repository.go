package repository

import (
	"context"

	"github.com/pakwerk/magazijn-api/internal/domain/entity"
)

// UserRepository stores API accounts.
type UserRepository interface {
	Create(ctx context.Context, user *entity.User) error
	// FindByEmail returns nil, nil when no user has that email.
	FindByEmail(ctx context.Context, email string) (*entity.User, error)
}
