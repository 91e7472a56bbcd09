package fslock

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"os/exec"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

// TestCrossProcessContention re-runs the test binary as a child process that
// grabs the lock and holds it until its stdin closes, then checks that the
// lock is contested across the process boundary and released on child exit.
func TestCrossProcessContention(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cross.lock")

	cmd := exec.Command(os.Args[0], "-test.run=TestHelperHoldLock$")
	cmd.Env = append(os.Environ(),
		"FSLOCK_HELPER=1",
		"FSLOCK_HELPER_PATH="+path,
	)
	stdin, err := cmd.StdinPipe()
	require.NoError(t, err)
	stdout, err := cmd.StdoutPipe()
	require.NoError(t, err)
	cmd.Stderr = os.Stderr
	require.NoError(t, cmd.Start())
	defer func() {
		stdin.Close()
		_ = cmd.Wait()
	}()

	// The helper prints LOCKED once it owns the lock.
	line, err := bufio.NewReader(stdout).ReadString('\n')
	require.NoError(t, err)
	require.Equal(t, "LOCKED\n", line)

	lf, err := Open(path)
	require.NoError(t, err)
	defer lf.Close()

	ok, err := lf.TryLock()
	require.NoError(t, err)
	require.False(t, ok, "lock held by another process must not be granted")

	// Let the helper exit; process death releases its lock.
	require.NoError(t, stdin.Close())
	require.NoError(t, cmd.Wait())

	ok, err = lf.TryLock()
	require.NoError(t, err)
	require.True(t, ok, "lock must be free after the holding process exits")
	require.NoError(t, lf.Unlock())
}

// TestHelperHoldLock is not a test: it is the child half of
// TestCrossProcessContention and does nothing unless spawned by it.
func TestHelperHoldLock(t *testing.T) {
	if os.Getenv("FSLOCK_HELPER") != "1" {
		t.Skip("helper process for TestCrossProcessContention")
	}

	lf, err := Open(os.Getenv("FSLOCK_HELPER_PATH"))
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	if err := lf.Lock(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	fmt.Println("LOCKED")

	// Hold until the parent closes our stdin.
	_, _ = io.Copy(io.Discard, os.Stdin)
	_ = lf.Close()
}
