//go:build !windows && !fslock_lockf

package sys

import "golang.org/x/sys/unix"

// This build uses flock(2). Locks live in the BSD flock domain: they are
// attached to the open file description and do not interact with fcntl/lockf
// record locks on the same file. The alternate lockf build (fslock_lockf tag)
// is a separate, incompatible locking domain; a deployment must pick one.

// Lock acquires an exclusive advisory lock on the whole file, blocking until
// it is available. The runtime's signal-based preemption can interrupt a
// parked flock, so EINTR restarts the wait.
func Lock(h Handle) error {
	for {
		err := unix.Flock(int(h), unix.LOCK_EX)
		if err != unix.EINTR {
			return err
		}
	}
}

// TryLock attempts to acquire an exclusive advisory lock without blocking.
// It returns false, not an error, when the lock is held elsewhere.
func TryLock(h Handle) (bool, error) {
	err := unix.Flock(int(h), unix.LOCK_EX|unix.LOCK_NB)
	if err == nil {
		return true, nil
	}
	if wouldBlock(err) {
		return false, nil
	}
	return false, err
}

// Unlock releases the advisory lock. The descriptor stays open.
func Unlock(h Handle) error {
	return unix.Flock(int(h), unix.LOCK_UN)
}
