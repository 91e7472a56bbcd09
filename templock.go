package fslock

import "github.com/brunoczim/fslock/internal/sys"

// TempLockFile is a LockFile that deletes its backing file when closed. The
// removal is best effort: on platforms where the file cannot be unlinked
// while other handles are open, the error is ignored and the file stays.
type TempLockFile struct {
	*LockFile
	path string
}

// OpenTemp opens (creating if absent) the file at path for locking, like
// Open, and remembers the path so Close can remove it.
func OpenTemp(path string, opts ...Option) (*TempLockFile, error) {
	inner, err := Open(path, opts...)
	if err != nil {
		return nil, err
	}
	return &TempLockFile{LockFile: inner, path: path}, nil
}

// Close runs the inner handle's teardown (releasing the lock if held, closing
// the handle) and then removes the backing file from disk.
func (t *TempLockFile) Close() error {
	err := t.LockFile.Close()
	_ = sys.Remove(t.path)
	return err
}
