//go:build !fslock_lockf

package fslock

import (
	"path/filepath"
	"testing"

	"github.com/gofrs/flock"
	"github.com/stretchr/testify/require"
)

// The default build locks in the same kernel domain as gofrs/flock, so locks
// taken by either library must be visible to the other. The lockf build is a
// different domain and is excluded.

func TestForeignHolderBlocksTryLock(t *testing.T) {
	path := filepath.Join(t.TempDir(), "interop.lock")

	foreign := flock.New(path)
	held, err := foreign.TryLock()
	require.NoError(t, err)
	require.True(t, held)

	lf, err := Open(path)
	require.NoError(t, err)
	defer lf.Close()

	ok, err := lf.TryLock()
	require.NoError(t, err)
	require.False(t, ok, "a gofrs/flock holder must block our TryLock")

	require.NoError(t, foreign.Unlock())

	ok, err = lf.TryLock()
	require.NoError(t, err)
	require.True(t, ok)
	require.NoError(t, lf.Unlock())
}

func TestOurHolderBlocksForeignTryLock(t *testing.T) {
	path := filepath.Join(t.TempDir(), "interop.lock")

	lf, err := Open(path)
	require.NoError(t, err)
	defer lf.Close()
	require.NoError(t, lf.Lock())

	foreign := flock.New(path)
	held, err := foreign.TryLock()
	require.NoError(t, err)
	require.False(t, held, "our lock must be visible to gofrs/flock")

	require.NoError(t, lf.Unlock())

	held, err = foreign.TryLock()
	require.NoError(t, err)
	require.True(t, held)
	require.NoError(t, foreign.Unlock())
}
