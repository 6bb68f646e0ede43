package sqlite_test

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/fwojciec/adgen"
	"github.com/fwojciec/adgen/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDB_Open(t *testing.T) {
	t.Parallel()

	t.Run("migrates new database", func(t *testing.T) {
		t.Parallel()

		db := sqlite.NewDB(":memory:")
		require.NoError(t, db.Open())
		defer db.Close()

		ctx := context.Background()

		version, err := db.SchemaVersion(ctx)
		require.NoError(t, err)
		assert.Equal(t, 1, version)

		var count int
		require.NoError(t, db.QueryRowContext(ctx, "SELECT COUNT(*) FROM runs").Scan(&count))
		assert.Zero(t, count)
	})

	t.Run("reopens migrated database and keeps runs", func(t *testing.T) {
		t.Parallel()

		ctx := context.Background()
		path := filepath.Join(t.TempDir(), "adgen.db")

		db := sqlite.NewDB(path)
		require.NoError(t, db.Open())
		run := &adgen.Run{URL: "https://acme.com", Response: "CALLOUTS:\n- Free Estimates"}
		require.NoError(t, sqlite.NewRunService(db).CreateRun(ctx, run))
		require.NoError(t, db.Close())

		db = sqlite.NewDB(path)
		require.NoError(t, db.Open())
		defer db.Close()

		got, err := sqlite.NewRunService(db).FindRunByID(ctx, run.ID)
		require.NoError(t, err)
		assert.Equal(t, run.Response, got.Response)

		version, err := db.SchemaVersion(ctx)
		require.NoError(t, err)
		assert.Equal(t, 1, version)
	})

	t.Run("rejects newer schema", func(t *testing.T) {
		t.Parallel()

		ctx := context.Background()
		path := filepath.Join(t.TempDir(), "adgen.db")

		db := sqlite.NewDB(path)
		require.NoError(t, db.Open())
		_, err := db.ExecContext(ctx, "PRAGMA user_version = 99")
		require.NoError(t, err)
		require.NoError(t, db.Close())

		err = sqlite.NewDB(path).Open()

		require.Error(t, err)
		assert.Contains(t, err.Error(), "newer")
	})

	t.Run("returns error for invalid path", func(t *testing.T) {
		t.Parallel()

		err := sqlite.NewDB("/nonexistent/path/db.sqlite").Open()

		require.Error(t, err)
	})

	t.Run("enables WAL mode for file-based databases", func(t *testing.T) {
		t.Parallel()

		db := sqlite.NewDB(filepath.Join(t.TempDir(), "test.db"))
		require.NoError(t, db.Open())
		defer db.Close()

		var journalMode string
		require.NoError(t, db.QueryRowContext(context.Background(), "PRAGMA journal_mode").Scan(&journalMode))
		assert.Equal(t, "wal", journalMode)
	})
}
