//go:build !windows && fslock_lockf

package sys

import "golang.org/x/sys/unix"

// This build uses fcntl record locks (the lockf domain) instead of flock(2).
// Record locks are owned by the process, released when any descriptor for the
// file is closed, and do not mix with flock locks on the same file. A
// deployment must pick one domain; the tag selects this one.

func wholeFile() unix.Flock_t {
	return unix.Flock_t{
		Type:   unix.F_WRLCK,
		Whence: unix.SEEK_SET,
		Start:  0,
		Len:    0,
	}
}

// Lock acquires an exclusive advisory record lock on the whole file,
// blocking until it is available. The runtime's signal-based preemption can
// interrupt a parked F_SETLKW, so EINTR restarts the wait.
func Lock(h Handle) error {
	for {
		lk := wholeFile()
		err := unix.FcntlFlock(uintptr(h), unix.F_SETLKW, &lk)
		if err != unix.EINTR {
			return err
		}
	}
}

// TryLock attempts to acquire an exclusive record lock without blocking.
// It returns false, not an error, when the lock is held elsewhere.
func TryLock(h Handle) (bool, error) {
	lk := wholeFile()
	err := unix.FcntlFlock(uintptr(h), unix.F_SETLK, &lk)
	if err == nil {
		return true, nil
	}
	if wouldBlock(err) {
		return false, nil
	}
	return false, err
}

// Unlock releases the record lock. The descriptor stays open.
func Unlock(h Handle) error {
	lk := wholeFile()
	lk.Type = unix.F_UNLCK
	return unix.FcntlFlock(uintptr(h), unix.F_SETLK, &lk)
}
