package postgresql_test

import (
	"context"
	"os"
	"testing"

	"github.com/cmlabs-hris/attendance-tracker-go/internal/pkg/database"
	"github.com/stretchr/testify/require"
)

// newTestDatabase connects to TEST_DATABASE_URL and empties kv_store. The
// test is skipped when no database is configured.
func newTestDatabase(t *testing.T) *database.DB {
	t.Helper()

	dsn := os.Getenv("TEST_DATABASE_URL")
	if dsn == "" {
		t.Skip("TEST_DATABASE_URL not set")
	}

	ctx := context.Background()
	db, err := database.NewPostgreSQLDB(ctx, dsn)
	require.NoError(t, err)
	t.Cleanup(db.Close)

	_, err = db.Exec(ctx, "DROP TABLE IF EXISTS kv_store")
	require.NoError(t, err)
	return db
}
