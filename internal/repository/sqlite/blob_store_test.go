package sqlite_test

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/cmlabs-hris/attendance-tracker-go/internal/pkg/database"
	"github.com/cmlabs-hris/attendance-tracker-go/internal/pkg/storage"
	"github.com/cmlabs-hris/attendance-tracker-go/internal/repository/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newStore(t *testing.T, path string) storage.BlobStore {
	t.Helper()
	ctx := context.Background()

	db, err := database.NewSQLiteDB(ctx, path)
	require.NoError(t, err)

	store, err := sqlite.NewBlobStore(ctx, db)
	require.NoError(t, err)
	return store
}

func TestBlobStore_GetPut(t *testing.T) {
	ctx := context.Background()
	store := newStore(t, filepath.Join(t.TempDir(), "tracker.db"))
	defer store.Close()

	_, err := store.Get(ctx, "employeeManagementSystem")
	assert.ErrorIs(t, err, storage.ErrNotFound)

	require.NoError(t, store.Put(ctx, "employeeManagementSystem", []byte(`{"revision":1}`)))
	require.NoError(t, store.Put(ctx, "employeeManagementSystem", []byte(`{"revision":2}`)))

	got, err := store.Get(ctx, "employeeManagementSystem")
	require.NoError(t, err)
	assert.Equal(t, `{"revision":2}`, string(got))
}

func TestBlobStore_PersistsAcrossReopen(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "nested", "tracker.db")

	store := newStore(t, path)
	require.NoError(t, store.PutAll(ctx, map[string][]byte{
		"autoBackup":     []byte(`{"data":{}}`),
		"lastAutoBackup": []byte(`"2025-03-10T00:00:00Z"`),
	}))
	require.NoError(t, store.Close())

	store = newStore(t, path)
	defer store.Close()

	got, err := store.Get(ctx, "autoBackup")
	require.NoError(t, err)
	assert.Equal(t, `{"data":{}}`, string(got))
}
