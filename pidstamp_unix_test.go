//go:build !windows

package fslock

import (
	"os"
	"testing"
	"unicode"

	"github.com/stretchr/testify/require"
)

// Reading the file back while the lock is held is a Unix-only test: the
// Windows exclusive lock denies access to the locked range through any other
// handle, including the reader's.
func TestLockWithPIDStampsFile(t *testing.T) {
	path := lockPath(t)

	lf, err := Open(path)
	require.NoError(t, err)
	defer lf.Close()

	require.NoError(t, lf.LockWithPID())

	first, err := os.ReadFile(path)
	require.NoError(t, err)
	second, err := os.ReadFile(path)
	require.NoError(t, err)

	require.Equal(t, first, second, "reading back the stamp must be idempotent")
	require.NotEmpty(t, first)
	require.Equal(t, byte('\n'), first[len(first)-1])

	digits := first[:len(first)-1]
	require.NotEmpty(t, digits)
	pid := 0
	for _, b := range digits {
		require.True(t, unicode.IsDigit(rune(b)), "stamp must be all ASCII digits, got %q", digits)
		pid = pid*10 + int(b-'0')
	}
	require.Equal(t, os.Getpid(), pid)

	require.NoError(t, lf.Unlock())
}
