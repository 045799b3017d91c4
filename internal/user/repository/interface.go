package repository

import (
	"context"

	"bbip/internal/user"
)

// Repository is the composed interface for the user domain data store.
type Repository interface {
	UserRepository
}

// UserRepository defines all data access methods for the User entity.
type UserRepository interface {
	CreateUser(ctx context.Context, opt CreateUserOptions) (user.User, error)
	GetOneUser(ctx context.Context, opt GetOneUserOptions) (user.User, error)
	UpdateUser(ctx context.Context, opt UpdateUserOptions) (user.User, error)
}
