package usecase

import (
	"context"
	"errors"
	"strings"
	"unicode/utf8"

	"bbip/internal/user"
	repo "bbip/internal/user/repository"
)

// Register creates an account and signs the user in.
func (uc *implUseCase) Register(ctx context.Context, input user.RegisterInput) (user.AuthOutput, error) {
	name := strings.TrimSpace(input.Name)
	email := normalizeEmail(input.Email)
	if name == "" || email == "" || input.Password == "" || !validEmail(email) {
		return user.AuthOutput{}, user.ErrInvalidPayload
	}
	if utf8.RuneCountInString(input.Password) < user.MinPasswordLength || len(input.Password) > user.MaxPasswordBytes {
		return user.AuthOutput{}, user.ErrInvalidPayload
	}

	existing, err := uc.repo.GetOneUser(ctx, repo.GetOneUserOptions{Email: email})
	if err != nil {
		uc.l.Errorf(ctx, "user.usecase.Register.GetOneUser: %v", err)
		return user.AuthOutput{}, err
	}
	if existing.ID != "" {
		return user.AuthOutput{}, user.ErrEmailTaken
	}

	hash, err := uc.encrypter.HashPassword(input.Password)
	if err != nil {
		uc.l.Errorf(ctx, "user.usecase.Register.HashPassword: %v", err)
		return user.AuthOutput{}, err
	}

	emoji := strings.TrimSpace(input.Emoji)
	if emoji == "" {
		emoji = user.DefaultEmoji
	}

	u, err := uc.repo.CreateUser(ctx, repo.CreateUserOptions{
		Name:         name,
		Email:        email,
		PasswordHash: hash,
		Emoji:        emoji,
	})
	if err != nil {
		if errors.Is(err, repo.ErrDuplicateEmail) {
			return user.AuthOutput{}, user.ErrEmailTaken
		}
		uc.l.Errorf(ctx, "user.usecase.Register.CreateUser: %v", err)
		return user.AuthOutput{}, err
	}

	token, err := uc.issueToken(u)
	if err != nil {
		uc.l.Errorf(ctx, "user.usecase.Register.issueToken: %v", err)
		return user.AuthOutput{}, err
	}

	uc.l.Infof(ctx, "user.usecase.Register: registered user_id=%s", u.ID)
	return user.AuthOutput{Token: token, User: u}, nil
}

// Login checks the credentials and issues a fresh token.
// Unknown emails and wrong passwords are indistinguishable to the caller.
func (uc *implUseCase) Login(ctx context.Context, input user.LoginInput) (user.AuthOutput, error) {
	email := normalizeEmail(input.Email)
	if email == "" || input.Password == "" {
		return user.AuthOutput{}, user.ErrInvalidPayload
	}

	u, err := uc.repo.GetOneUser(ctx, repo.GetOneUserOptions{Email: email})
	if err != nil {
		uc.l.Errorf(ctx, "user.usecase.Login.GetOneUser: %v", err)
		return user.AuthOutput{}, err
	}
	if u.ID == "" || !uc.encrypter.CheckPasswordHash(input.Password, u.PasswordHash) {
		return user.AuthOutput{}, user.ErrInvalidCredentials
	}

	token, err := uc.issueToken(u)
	if err != nil {
		uc.l.Errorf(ctx, "user.usecase.Login.issueToken: %v", err)
		return user.AuthOutput{}, err
	}
	return user.AuthOutput{Token: token, User: u}, nil
}
