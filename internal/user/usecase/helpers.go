package usecase

import (
	"net/mail"
	"strings"

	"bbip/internal/user"
	"bbip/pkg/scope"
)

// issueToken signs an access token carrying the public profile of u.
func (uc *implUseCase) issueToken(u user.User) (string, error) {
	return uc.scope.CreateToken(scope.Payload{
		UserID: u.ID,
		Name:   u.Name,
		Email:  u.Email,
		Emoji:  u.Emoji,
	})
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func validEmail(email string) bool {
	addr, err := mail.ParseAddress(email)
	return err == nil && addr.Address == email
}
