package scope

import (
	"github.com/golang-jwt/jwt/v5"

	"bbip/internal/model"
)

// Payload is the claim set carried by an access token.
type Payload struct {
	UserID string `json:"id"`
	Name   string `json:"name"`
	Email  string `json:"email"`
	Emoji  string `json:"emoji"`
	jwt.RegisteredClaims
}

// NewScope converts a verified payload into a request scope.
func NewScope(p Payload) model.Scope {
	return model.Scope{
		UserID: p.UserID,
		Name:   p.Name,
		Email:  p.Email,
		Emoji:  p.Emoji,
	}
}
