package user

import "time"

// DefaultEmoji is assigned when registration leaves the avatar empty.
const DefaultEmoji = "🐔"

// MinPasswordLength is the shortest accepted password, in characters.
const MinPasswordLength = 4

// MaxPasswordBytes is the longest password bcrypt accepts, in bytes.
const MaxPasswordBytes = 72

// User is an account owning plans.
type User struct {
	ID           string
	Name         string
	Email        string
	PasswordHash string
	Emoji        string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// --- UseCase Inputs ---

type RegisterInput struct {
	Name     string
	Email    string
	Password string
	Emoji    string
}

type LoginInput struct {
	Email    string
	Password string
}

// UpdateProfileInput is a partial update: nil fields keep the stored value.
type UpdateProfileInput struct {
	Name  *string
	Emoji *string
}

// --- UseCase Outputs ---

type AuthOutput struct {
	Token string
	User  User
}

type MeOutput struct {
	User User
}

type UpdateProfileOutput struct {
	User User
}
