package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"bbip/internal/user"
	repo "bbip/internal/user/repository"
)

type rowScanner interface {
	Scan(dest ...any) error
}

func scanUser(row rowScanner) (user.User, error) {
	var (
		u                    user.User
		createdAt, updatedAt string
	)
	if err := row.Scan(&u.ID, &u.Name, &u.Email, &u.PasswordHash, &u.Emoji, &createdAt, &updatedAt); err != nil {
		return user.User{}, err
	}
	u.CreatedAt, _ = time.Parse(time.RFC3339Nano, createdAt)
	u.UpdatedAt, _ = time.Parse(time.RFC3339Nano, updatedAt)
	return u, nil
}

// CreateUser inserts a new User row and returns the created entity.
// Emails are stored lower-cased; a duplicate returns ErrDuplicateEmail.
func (r *implRepository) CreateUser(ctx context.Context, opt repo.CreateUserOptions) (user.User, error) {
	const query = `
		INSERT INTO users (id, name, email, password_hash, emoji, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)
		RETURNING ` + userColumns

	now := r.now().UTC().Format(time.RFC3339Nano)
	u, err := scanUser(r.db.QueryRowContext(ctx, query,
		uuid.NewString(), opt.Name, strings.ToLower(opt.Email), opt.PasswordHash, opt.Emoji, now, now,
	))
	if err != nil {
		if strings.Contains(err.Error(), "UNIQUE constraint failed") {
			return user.User{}, repo.ErrDuplicateEmail
		}
		r.l.Errorf(ctx, "%s: %v", r.dsn("CreateUser"), err)
		return user.User{}, repo.ErrFailedToInsert
	}
	return u, nil
}

// GetOneUser retrieves a single User by the provided filters (AND condition).
// Returns zero-value User (ID == "") when not found.
func (r *implRepository) GetOneUser(ctx context.Context, opt repo.GetOneUserOptions) (user.User, error) {
	mods, args := r.buildGetOneQuery(opt)
	query := fmt.Sprintf("SELECT %s FROM users WHERE %s LIMIT 1", userColumns, mods)

	u, err := scanUser(r.db.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return user.User{}, nil
	}
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("GetOneUser"), err)
		return user.User{}, repo.ErrFailedToGet
	}
	return u, nil
}

// UpdateUser applies a partial update and returns the updated entity.
// Returns zero-value User when the ID does not exist.
func (r *implRepository) UpdateUser(ctx context.Context, opt repo.UpdateUserOptions) (user.User, error) {
	const query = `
		UPDATE users
		SET name = COALESCE(?, name), emoji = COALESCE(?, emoji), updated_at = ?
		WHERE id = ?
		RETURNING ` + userColumns

	u, err := scanUser(r.db.QueryRowContext(ctx, query,
		nullable(opt.Name), nullable(opt.Emoji), r.now().UTC().Format(time.RFC3339Nano), opt.ID,
	))
	if errors.Is(err, sql.ErrNoRows) {
		return user.User{}, nil
	}
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("UpdateUser"), err)
		return user.User{}, repo.ErrFailedToUpdate
	}
	return u, nil
}

func nullable(s *string) sql.NullString {
	if s == nil {
		return sql.NullString{}
	}
	return sql.NullString{String: *s, Valid: true}
}
