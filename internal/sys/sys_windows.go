//go:build windows

package sys

import (
	"os"

	"golang.org/x/sys/windows"
)

// Handle is a raw Windows file handle.
type Handle windows.Handle

// allBytes is the byte-range length used for whole-file locks: LockFileEx has
// no "entire file" mode, so the maximum range is locked instead.
const allBytes = ^uint32(0)

// Open opens the file at path for read/write, creating it if it does not
// exist. The handle is opened with full sharing so other processes can open
// (and contend for) the same lock file.
func Open(path string) (Handle, error) {
	p, err := windows.UTF16PtrFromString(path)
	if err != nil {
		return Handle(windows.InvalidHandle), err
	}
	h, err := windows.CreateFile(
		p,
		windows.GENERIC_READ|windows.GENERIC_WRITE,
		windows.FILE_SHARE_READ|windows.FILE_SHARE_WRITE|windows.FILE_SHARE_DELETE,
		nil,
		windows.OPEN_ALWAYS,
		windows.FILE_ATTRIBUTE_NORMAL,
		0,
	)
	if err != nil {
		return Handle(windows.InvalidHandle), err
	}
	return Handle(h), nil
}

// Lock acquires an exclusive lock over the whole byte range, blocking until
// it is available. Windows locks are per-handle, so no extra in-process
// arbitration is needed on this platform.
func Lock(h Handle) error {
	var ol windows.Overlapped
	return windows.LockFileEx(windows.Handle(h), windows.LOCKFILE_EXCLUSIVE_LOCK, 0, allBytes, allBytes, &ol)
}

// TryLock attempts the same lock without blocking. ERROR_LOCK_VIOLATION is
// the "held elsewhere" answer and maps to false, not an error.
func TryLock(h Handle) (bool, error) {
	var ol windows.Overlapped
	err := windows.LockFileEx(
		windows.Handle(h),
		windows.LOCKFILE_EXCLUSIVE_LOCK|windows.LOCKFILE_FAIL_IMMEDIATELY,
		0, allBytes, allBytes, &ol,
	)
	if err == nil {
		return true, nil
	}
	if err == windows.ERROR_LOCK_VIOLATION {
		return false, nil
	}
	return false, err
}

// Unlock releases the lock. The handle stays open.
func Unlock(h Handle) error {
	var ol windows.Overlapped
	return windows.UnlockFileEx(windows.Handle(h), 0, allBytes, allBytes, &ol)
}

// Write writes all of b to the file, retrying on short writes.
func Write(h Handle, b []byte) error {
	for len(b) > 0 {
		var done uint32
		if err := windows.WriteFile(windows.Handle(h), b, &done, nil); err != nil {
			return err
		}
		b = b[done:]
	}
	return nil
}

// Sync flushes the file's contents to stable storage.
func Sync(h Handle) error {
	return windows.FlushFileBuffers(windows.Handle(h))
}

// Truncate seeks the file to the start and truncates it to zero length.
func Truncate(h Handle) error {
	if _, err := windows.SetFilePointer(windows.Handle(h), 0, nil, windows.FILE_BEGIN); err != nil {
		return err
	}
	return windows.SetEndOfFile(windows.Handle(h))
}

// Close releases the handle. Errors are discarded; there is no sane recovery
// from a failed close on a lock file.
func Close(h Handle) {
	_ = windows.CloseHandle(windows.Handle(h))
}

// Remove deletes the file at path.
func Remove(path string) error {
	return os.Remove(path)
}

// Getpid returns the current process id.
func Getpid() int {
	return os.Getpid()
}
