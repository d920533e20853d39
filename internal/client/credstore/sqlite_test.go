package credstore

import (
	"context"
	"database/sql"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/dreamcatcher/dreamcatcher-go/internal/common"
)

func openTestStore(t *testing.T, dir string) *SQLiteStore {
	t.Helper()
	store, err := Open(context.Background(), dir)
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })
	return store
}

func TestSetGetDeleteRoundTrip(t *testing.T) {
	ctx := context.Background()
	store := openTestStore(t, t.TempDir())

	require.NoError(t, store.Set(ctx, "token", []byte("secret")))

	value, err := store.Get(ctx, "token")
	require.NoError(t, err)
	require.Equal(t, []byte("secret"), value)

	require.NoError(t, store.Delete(ctx, "token"))

	_, err = store.Get(ctx, "token")
	require.ErrorIs(t, err, common.ErrNotFound)
}

func TestGetMissingKey(t *testing.T) {
	store := openTestStore(t, t.TempDir())

	_, err := store.Get(context.Background(), "nope")
	require.ErrorIs(t, err, common.ErrNotFound)
}

func TestSetOverwritesExistingValue(t *testing.T) {
	ctx := context.Background()
	store := openTestStore(t, t.TempDir())

	require.NoError(t, store.Set(ctx, "token", []byte("old")))
	require.NoError(t, store.Set(ctx, "token", []byte("new")))

	value, err := store.Get(ctx, "token")
	require.NoError(t, err)
	require.Equal(t, []byte("new"), value)
}

func TestDeleteMissingKeyIsNoError(t *testing.T) {
	store := openTestStore(t, t.TempDir())
	require.NoError(t, store.Delete(context.Background(), "nope"))
}

func TestValuesSurviveReopen(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()

	first, err := Open(ctx, dir)
	require.NoError(t, err)
	require.NoError(t, first.Set(ctx, "token", []byte("persisted")))
	require.NoError(t, first.Close())

	second := openTestStore(t, dir)
	value, err := second.Get(ctx, "token")
	require.NoError(t, err)
	require.Equal(t, []byte("persisted"), value)
}

func TestValuesAreSealedAtRest(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()
	store := openTestStore(t, dir)

	require.NoError(t, store.Set(ctx, "token", []byte("plainly visible secret")))

	db, err := sql.Open("sqlite", filepath.Join(dir, dbFileName))
	require.NoError(t, err)
	defer db.Close()

	var raw []byte
	require.NoError(t, db.QueryRow(`SELECT value FROM credentials WHERE key = 'token'`).Scan(&raw))
	require.NotContains(t, string(raw), "plainly visible secret")
}

func TestTamperedValueBehavesAsMissing(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()
	store := openTestStore(t, dir)

	require.NoError(t, store.Set(ctx, "token", []byte("secret")))

	_, err := store.db.ExecContext(ctx, `UPDATE credentials SET value = X'00010203' WHERE key = 'token'`)
	require.NoError(t, err)

	_, err = store.Get(ctx, "token")
	require.ErrorIs(t, err, common.ErrNotFound)
}
