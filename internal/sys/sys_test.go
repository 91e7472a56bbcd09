package sys

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestOpenCreatesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "new.lock")

	h, err := Open(path)
	require.NoError(t, err)
	defer Close(h)

	_, err = os.Stat(path)
	require.NoError(t, err, "Open must create an absent file")
}

func TestOpenMissingParentFails(t *testing.T) {
	path := filepath.Join(t.TempDir(), "no-such-dir", "x.lock")

	_, err := Open(path)
	require.Error(t, err)
}

func TestLockUnlockRoundTrip(t *testing.T) {
	h, err := Open(filepath.Join(t.TempDir(), "rt.lock"))
	require.NoError(t, err)
	defer Close(h)

	require.NoError(t, Lock(h))
	require.NoError(t, Unlock(h))

	ok, err := TryLock(h)
	require.NoError(t, err)
	require.True(t, ok)
	require.NoError(t, Unlock(h))
}

func TestWriteSyncTruncate(t *testing.T) {
	path := filepath.Join(t.TempDir(), "w.lock")
	h, err := Open(path)
	require.NoError(t, err)
	defer Close(h)

	require.NoError(t, Write(h, []byte("12345\n")))
	require.NoError(t, Sync(h))

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Equal(t, "12345\n", string(content))

	require.NoError(t, Truncate(h))
	content, err = os.ReadFile(path)
	require.NoError(t, err)
	require.Empty(t, content)

	// Writes after a truncate land at the start, not at the old offset.
	require.NoError(t, Write(h, []byte("6")))
	require.NoError(t, Sync(h))
	content, err = os.ReadFile(path)
	require.NoError(t, err)
	require.Equal(t, "6", string(content))
}

func TestRemove(t *testing.T) {
	path := filepath.Join(t.TempDir(), "rm.lock")
	h, err := Open(path)
	require.NoError(t, err)
	Close(h)

	require.NoError(t, Remove(path))
	_, err = os.Stat(path)
	require.True(t, os.IsNotExist(err))
}

func TestGetpid(t *testing.T) {
	require.Equal(t, os.Getpid(), Getpid())
}
