package storage

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/Faisal-badshah/pathan-fitness/internal/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	logger.Init()

	code := m.Run()
	os.Exit(code)
}

type testRecord struct {
	Email        string `json:"email"`
	SubscribedAt string `json:"subscribedAt"`
}

func TestKey(t *testing.T) {
	assert.Equal(t, "pathan-progress", Key("pathan", "progress"))
	assert.Equal(t, "progress", Key("", "progress"))
}

func TestMemoryStoreRoundTrip(t *testing.T) {
	s := NewMemoryStore()
	ctx := context.Background()

	in := testRecord{Email: "user@example.com", SubscribedAt: "2025-01-01T00:00:00Z"}
	require.NoError(t, s.Set(ctx, "pathan-newsletter", in))

	var out testRecord
	require.NoError(t, s.Get(ctx, "pathan-newsletter", &out))
	assert.Equal(t, in, out)
}

func TestMemoryStoreMissingKey(t *testing.T) {
	s := NewMemoryStore()

	var out testRecord
	err := s.Get(context.Background(), "pathan-missing", &out)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestMemoryStoreDelete(t *testing.T) {
	s := NewMemoryStore()
	ctx := context.Background()

	require.NoError(t, s.Set(ctx, "k", testRecord{Email: "a@b.c"}))
	require.NoError(t, s.Delete(ctx, "k"))

	var out testRecord
	assert.ErrorIs(t, s.Get(ctx, "k", &out), ErrNotFound)
}

func TestFileStoreRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "store.json")
	ctx := context.Background()

	s, err := NewFileStore(path)
	require.NoError(t, err)

	in := testRecord{Email: "user@example.com"}
	require.NoError(t, s.Set(ctx, "pathan-newsletter", in))

	// Reopen to prove the value survived the write-back.
	s2, err := NewFileStore(path)
	require.NoError(t, err)

	var out testRecord
	require.NoError(t, s2.Get(ctx, "pathan-newsletter", &out))
	assert.Equal(t, in, out)
}

func TestFileStoreMissingFileIsEmpty(t *testing.T) {
	s, err := NewFileStore(filepath.Join(t.TempDir(), "absent.json"))
	require.NoError(t, err)

	var out testRecord
	assert.ErrorIs(t, s.Get(context.Background(), "k", &out), ErrNotFound)
}

func TestFileStoreCorruptFileDegradesToEmpty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "store.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o644))

	s, err := NewFileStore(path)
	require.NoError(t, err)

	var out testRecord
	assert.ErrorIs(t, s.Get(context.Background(), "k", &out), ErrNotFound)
}

func TestFileStoreDeletePersists(t *testing.T) {
	path := filepath.Join(t.TempDir(), "store.json")
	ctx := context.Background()

	s, err := NewFileStore(path)
	require.NoError(t, err)
	require.NoError(t, s.Set(ctx, "k", testRecord{Email: "a@b.c"}))
	require.NoError(t, s.Delete(ctx, "k"))

	s2, err := NewFileStore(path)
	require.NoError(t, err)

	var out testRecord
	assert.ErrorIs(t, s2.Get(ctx, "k", &out), ErrNotFound)
}
