package cryptox

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSealOpenRoundTrip(t *testing.T) {
	key, err := LoadOrCreateKey(filepath.Join(t.TempDir(), "master.key"))
	require.NoError(t, err)

	sealed, err := Seal(key, []byte("token"), []byte("secret value"))
	require.NoError(t, err)
	require.NotContains(t, string(sealed), "secret value")

	plain, err := Open(key, []byte("token"), sealed)
	require.NoError(t, err)
	require.Equal(t, []byte("secret value"), plain)
}

func TestOpenRejectsWrongAdditionalData(t *testing.T) {
	key, err := LoadOrCreateKey(filepath.Join(t.TempDir(), "master.key"))
	require.NoError(t, err)

	sealed, err := Seal(key, []byte("token"), []byte("secret value"))
	require.NoError(t, err)

	_, err = Open(key, []byte("other-key"), sealed)
	require.ErrorIs(t, err, ErrInvalidCiphertext)
}

func TestOpenRejectsTamperedBlob(t *testing.T) {
	key, err := LoadOrCreateKey(filepath.Join(t.TempDir(), "master.key"))
	require.NoError(t, err)

	sealed, err := Seal(key, []byte("token"), []byte("secret value"))
	require.NoError(t, err)

	sealed[len(sealed)-1] ^= 0x01
	_, err = Open(key, []byte("token"), sealed)
	require.ErrorIs(t, err, ErrInvalidCiphertext)
}

func TestOpenRejectsTruncatedBlob(t *testing.T) {
	key, err := LoadOrCreateKey(filepath.Join(t.TempDir(), "master.key"))
	require.NoError(t, err)

	_, err = Open(key, []byte("token"), []byte("short"))
	require.ErrorIs(t, err, ErrInvalidCiphertext)
}

func TestLoadOrCreateKeyIsStable(t *testing.T) {
	path := filepath.Join(t.TempDir(), "master.key")

	first, err := LoadOrCreateKey(path)
	require.NoError(t, err)
	require.Len(t, first, MasterKeySize)

	second, err := LoadOrCreateKey(path)
	require.NoError(t, err)
	require.Equal(t, first, second)

	info, err := os.Stat(path)
	require.NoError(t, err)
	require.Equal(t, os.FileMode(0o600), info.Mode().Perm())
}

func TestLoadOrCreateKeyRejectsWrongSize(t *testing.T) {
	path := filepath.Join(t.TempDir(), "master.key")
	require.NoError(t, os.WriteFile(path, []byte("too short"), 0o600))

	_, err := LoadOrCreateKey(path)
	require.Error(t, err)
}
