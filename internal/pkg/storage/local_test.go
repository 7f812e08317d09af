package storage

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocalStorage_GetPut(t *testing.T) {
	ctx := context.Background()
	s, err := NewLocalStorage(filepath.Join(t.TempDir(), "data"))
	require.NoError(t, err)

	_, err = s.Get(ctx, "missing")
	assert.ErrorIs(t, err, ErrNotFound)

	require.NoError(t, s.Put(ctx, "doc", []byte(`{"a":1}`)))
	got, err := s.Get(ctx, "doc")
	require.NoError(t, err)
	assert.JSONEq(t, `{"a":1}`, string(got))

	require.NoError(t, s.Put(ctx, "doc", []byte(`{"a":2}`)))
	got, err = s.Get(ctx, "doc")
	require.NoError(t, err)
	assert.JSONEq(t, `{"a":2}`, string(got))
}

func TestLocalStorage_PutAll(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()
	s, err := NewLocalStorage(dir)
	require.NoError(t, err)

	require.NoError(t, s.PutAll(ctx, map[string][]byte{
		"autoBackup":     []byte(`{"data":{}}`),
		"lastAutoBackup": []byte(`"2025-03-10T00:00:00Z"`),
	}))

	got, err := s.Get(ctx, "lastAutoBackup")
	require.NoError(t, err)
	assert.Equal(t, `"2025-03-10T00:00:00Z"`, string(got))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 2, "no temp files left behind")
}

func TestLocalStorage_RejectsTraversal(t *testing.T) {
	ctx := context.Background()
	s, err := NewLocalStorage(t.TempDir())
	require.NoError(t, err)

	for _, key := range []string{"", "../escape", "a/b", `a\b`} {
		assert.Error(t, s.Put(ctx, key, []byte("x")), key)
	}
	assert.Error(t, s.PutAll(ctx, map[string][]byte{"ok": []byte("1"), "../bad": []byte("2")}))
	_, err = s.Get(ctx, "ok")
	assert.ErrorIs(t, err, ErrNotFound)
}
