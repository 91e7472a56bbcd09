// Package fslock provides advisory, cross-platform, exclusive locking on a
// single local file.
//
// A lock file is opened purely to serve as an exclusion primitive between
// processes and, by default, between handles within the same process. The
// lock is advisory: only callers that go through an advisory locking API are
// constrained; plain readers and writers of the file are not blocked.
//
//	lf, err := fslock.Open("app.lock")
//	if err != nil {
//		return err
//	}
//	defer lf.Close()
//
//	if err := lf.Lock(); err != nil {
//		return err
//	}
//	doStuff()
//	return lf.Unlock()
//
// On Unix the kernel grants the underlying lock per process, so a second
// handle opened by the same process would be handed the lock immediately
// even though a sibling handle owns it. fslock refines ownership to the
// handle by arbitrating same-process handles against a shared table keyed by
// file identity (device plus inode). OSDependent opts out of that refinement
// and exposes the raw platform semantics.
//
// The Unix build locks via flock(2) by default; building with the
// fslock_lockf tag switches to fcntl record locks. The two are incompatible
// locking domains on the same file, so all cooperating programs must use the
// same build. Windows uses LockFileEx, which is per-handle natively.
package fslock
