package usecase

import (
	"context"
	"strings"

	"bbip/internal/model"
	"bbip/internal/user"
	repo "bbip/internal/user/repository"
)

// Me returns the account behind the scope. Returns ErrUserNotFound when it was removed.
func (uc *implUseCase) Me(ctx context.Context, sc model.Scope) (user.MeOutput, error) {
	u, err := uc.repo.GetOneUser(ctx, repo.GetOneUserOptions{ID: sc.UserID})
	if err != nil {
		uc.l.Errorf(ctx, "user.usecase.Me.GetOneUser: %v", err)
		return user.MeOutput{}, err
	}
	if u.ID == "" {
		return user.MeOutput{}, user.ErrUserNotFound
	}
	return user.MeOutput{User: u}, nil
}

// UpdateProfile changes the name and/or emoji. Blank values are rejected.
func (uc *implUseCase) UpdateProfile(ctx context.Context, sc model.Scope, input user.UpdateProfileInput) (user.UpdateProfileOutput, error) {
	name, ok := trimmed(input.Name)
	if !ok {
		return user.UpdateProfileOutput{}, user.ErrInvalidPayload
	}
	emoji, ok := trimmed(input.Emoji)
	if !ok {
		return user.UpdateProfileOutput{}, user.ErrInvalidPayload
	}

	u, err := uc.repo.UpdateUser(ctx, repo.UpdateUserOptions{
		ID:    sc.UserID,
		Name:  name,
		Emoji: emoji,
	})
	if err != nil {
		uc.l.Errorf(ctx, "user.usecase.UpdateProfile.UpdateUser: %v", err)
		return user.UpdateProfileOutput{}, err
	}
	if u.ID == "" {
		return user.UpdateProfileOutput{}, user.ErrUserNotFound
	}
	return user.UpdateProfileOutput{User: u}, nil
}

// trimmed returns the trimmed value of an optional field; ok is false for a present but blank value.
func trimmed(s *string) (*string, bool) {
	if s == nil {
		return nil, true
	}
	v := strings.TrimSpace(*s)
	if v == "" {
		return nil, false
	}
	return &v, true
}
