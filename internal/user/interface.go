package user

import (
	"context"

	"bbip/internal/model"
)

//go:generate mockery --name UseCase
type UseCase interface {
	// Auth
	Register(ctx context.Context, input RegisterInput) (AuthOutput, error)
	Login(ctx context.Context, input LoginInput) (AuthOutput, error)

	// Profile
	Me(ctx context.Context, sc model.Scope) (MeOutput, error)
	UpdateProfile(ctx context.Context, sc model.Scope, input UpdateProfileInput) (UpdateProfileOutput, error)
}
