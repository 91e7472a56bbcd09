package fslock

import (
	"context"
	"time"

	"github.com/brunoczim/fslock/internal/fileid"
	"github.com/brunoczim/fslock/internal/sys"
)

// LockFile is a handle to a file used purely as an exclusion primitive. A
// handle is unlocked when opened, moves between unlocked and locked through
// Lock/TryLock/Unlock, and is terminally closed by Close.
//
// Calling Lock or TryLock on a handle that already owns the lock, or Unlock
// on one that does not, is a bug in the caller and panics. Environmental
// failures (open, I/O, lock syscalls) are returned as ordinary errors.
//
// A LockFile must not be used from multiple goroutines concurrently; it is a
// handle, not a shared lock object. Open one handle per would-be owner.
type LockFile struct {
	handle   sys.Handle
	id       fileid.ID
	locked   bool
	closed   bool
	preserve bool
}

// Open opens (creating if absent) the file at path for locking and returns
// an unlocked handle to it.
//
// By default two handles of the same process contend with each other exactly
// like handles of two different processes would. See OSDependent for the
// legacy per-process behavior.
func Open(path string, opts ...Option) (*LockFile, error) {
	cfg := applyOptions(opts)

	h, err := sys.Open(path)
	if err != nil {
		return nil, err
	}

	id := fileid.None
	if !cfg.osDependent {
		id, err = fileid.Resolve(h)
		if err != nil {
			sys.Close(h)
			return nil, err
		}
	}

	return &LockFile{handle: h, id: id, preserve: cfg.preserveContent}, nil
}

// Lock acquires the lock, blocking the calling goroutine until it is
// available. There is no timeout and no cancellation; the only way a waiter
// unblocks is the current holder releasing. Callers that need a bound should
// use TryLockContext.
//
// Panics if the handle already owns the lock or has been closed.
func (f *LockFile) Lock() error {
	f.mustBeOpen()
	if f.locked {
		panic("fslock: Lock called on a handle that already owns the lock")
	}

	fileid.Take(f.id)
	if err := sys.Lock(f.handle); err != nil {
		fileid.Release(f.id)
		return err
	}
	f.locked = true
	return nil
}

// TryLock attempts to acquire the lock without blocking. It returns false,
// not an error, when the lock is held elsewhere (by another handle of this
// process or by another process).
//
// Panics if the handle already owns the lock or has been closed.
func (f *LockFile) TryLock() (bool, error) {
	f.mustBeOpen()
	if f.locked {
		panic("fslock: TryLock called on a handle that already owns the lock")
	}

	if !fileid.TryTake(f.id) {
		return false, nil
	}
	ok, err := sys.TryLock(f.handle)
	if err != nil || !ok {
		fileid.Release(f.id)
		return false, err
	}
	f.locked = true
	return true, nil
}

// TryLockContext repeatedly calls TryLock, sleeping retryDelay between
// attempts, until the lock is acquired, an error occurs, or ctx is done.
// When ctx expires the context error is returned alongside false.
func (f *LockFile) TryLockContext(ctx context.Context, retryDelay time.Duration) (bool, error) {
	for {
		if ok, err := f.TryLock(); ok || err != nil {
			return ok, err
		}
		select {
		case <-ctx.Done():
			return false, ctx.Err()
		case <-time.After(retryDelay):
		}
	}
}

// LockWithPID acquires the lock like Lock and then writes the current
// process id, newline-terminated, into the file. If the write fails the
// lock is released before the error is returned, so an error always leaves
// the handle unlocked.
func (f *LockFile) LockWithPID() error {
	if err := f.Lock(); err != nil {
		return err
	}
	if err := f.stampPID(); err != nil {
		f.releaseBestEffort()
		return err
	}
	return nil
}

// TryLockWithPID is the non-blocking variant of LockWithPID.
func (f *LockFile) TryLockWithPID() (bool, error) {
	ok, err := f.TryLock()
	if err != nil || !ok {
		return false, err
	}
	if err := f.stampPID(); err != nil {
		f.releaseBestEffort()
		return false, err
	}
	return true, nil
}

// Unlock releases the lock. Unless the handle was opened with
// PreserveContent, the file is truncated to erase a PID stamp. The handle
// stays open and can lock again.
//
// Panics if the handle does not own the lock or has been closed.
func (f *LockFile) Unlock() error {
	f.mustBeOpen()
	if !f.locked {
		panic("fslock: Unlock called on a handle that does not own the lock")
	}

	if err := sys.Unlock(f.handle); err != nil {
		// The OS lock is still held, so both layers stay consistent.
		return err
	}

	var truncErr error
	if !f.preserve {
		truncErr = sys.Truncate(f.handle)
	}

	// The OS lock is gone; the arbitration entry must go with it even if
	// the truncate failed, or a sibling handle would block forever.
	fileid.Release(f.id)
	f.locked = false
	return truncErr
}

// OwnsLock reports whether this handle currently owns the lock. It has no
// side effects.
func (f *LockFile) OwnsLock() bool {
	return f.locked
}

// WriteContent replaces the file's contents with b, writing through the
// lock's own handle and syncing to stable storage. Writing through the
// locked handle matters on Windows, where the exclusive lock denies access
// to the range through any other handle. Pair with PreserveContent, or
// Unlock will erase what was written.
//
// Panics if the handle does not own the lock or has been closed.
func (f *LockFile) WriteContent(b []byte) error {
	f.mustBeOpen()
	if !f.locked {
		panic("fslock: WriteContent called on a handle that does not own the lock")
	}
	if err := sys.Truncate(f.handle); err != nil {
		return err
	}
	if err := sys.Write(f.handle, b); err != nil {
		return err
	}
	return sys.Sync(f.handle)
}

// Raw exposes the underlying descriptor or handle. The handle remains owned
// by the LockFile; callers must not close it.
func (f *LockFile) Raw() uintptr {
	return uintptr(f.handle)
}

// Close releases the lock if this handle owns it (best effort, errors
// swallowed) and closes the underlying handle. It is the teardown that every
// exit path should run, typically via defer, so that no OS lock or
// arbitration entry outlives the handle. Closing twice is a no-op.
func (f *LockFile) Close() error {
	if f.closed {
		return nil
	}
	f.closed = true
	if f.locked {
		f.releaseBestEffort()
	}
	sys.Close(f.handle)
	return nil
}

// releaseBestEffort drops both lock layers, swallowing errors. Used on
// rollback paths and teardown, where failing is not an option.
func (f *LockFile) releaseBestEffort() {
	_ = sys.Unlock(f.handle)
	fileid.Release(f.id)
	f.locked = false
}

func (f *LockFile) mustBeOpen() {
	if f.closed {
		panic("fslock: use of closed lock handle")
	}
}
