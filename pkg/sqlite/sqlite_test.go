package sqlite_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bbip/pkg/sqlite"
)

func TestConnect_Memory(t *testing.T) {
	ctx := context.Background()

	db, err := sqlite.Connect(ctx, sqlite.Config{Path: ":memory:"})
	require.NoError(t, err)
	defer db.Close()

	for _, table := range []string{"users", "plans"} {
		var name string
		err := db.QueryRowContext(ctx, `SELECT name FROM sqlite_master WHERE type = 'table' AND name = ?`, table).Scan(&name)
		require.NoError(t, err, "table %s", table)
		assert.Equal(t, table, name)
	}

	// Running the schema twice is harmless.
	require.NoError(t, sqlite.Migrate(ctx, db))
}

func TestConnect_ForeignKeys(t *testing.T) {
	ctx := context.Background()

	db, err := sqlite.Connect(ctx, sqlite.Config{Path: ":memory:"})
	require.NoError(t, err)
	defer db.Close()

	_, err = db.ExecContext(ctx,
		`INSERT INTO plans (id, user_id, title, date, created_at, updated_at) VALUES ('p1', 'missing', 't', '2026-10-17', '', '')`)
	assert.Error(t, err)
}

func TestConnect_EmptyPath(t *testing.T) {
	_, err := sqlite.Connect(context.Background(), sqlite.Config{})
	assert.Error(t, err)
}
