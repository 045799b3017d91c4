package sqlite

import (
	"strings"

	repo "bbip/internal/user/repository"
)

const userColumns = `id, name, email, password_hash, emoji, created_at, updated_at`

// buildGetOneQuery builds WHERE clause + args for GetOneUser.
// All non-empty fields are applied as AND conditions.
func (r *implRepository) buildGetOneQuery(opt repo.GetOneUserOptions) (string, []any) {
	var conditions []string
	var args []any

	if opt.ID != "" {
		conditions = append(conditions, "id = ?")
		args = append(args, opt.ID)
	}
	if opt.Email != "" {
		conditions = append(conditions, "email = ?")
		args = append(args, strings.ToLower(opt.Email))
	}

	if len(conditions) == 0 {
		return "1=1", args
	}
	return strings.Join(conditions, " AND "), args
}
