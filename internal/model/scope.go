package model

// Scope identifies the authenticated user of a request.
type Scope struct {
	UserID string
	Name   string
	Email  string
	Emoji  string
}
