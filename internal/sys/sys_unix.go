//go:build !windows

package sys

import (
	"os"

	"golang.org/x/sys/unix"
)

// Handle is a raw Unix file descriptor.
type Handle int

// Open opens the file at path for read/write, creating it if it does not
// exist. The descriptor is opened close-on-exec so it does not leak into
// child processes.
func Open(path string) (Handle, error) {
	fd, err := unix.Open(path, unix.O_RDWR|unix.O_CREAT|unix.O_CLOEXEC, 0o644)
	if err != nil {
		return -1, err
	}
	return Handle(fd), nil
}

// Write writes all of b to the file, retrying on short writes and EAGAIN.
func Write(h Handle, b []byte) error {
	for len(b) > 0 {
		n, err := unix.Write(int(h), b)
		if err != nil {
			if err == unix.EAGAIN {
				continue
			}
			return err
		}
		b = b[n:]
	}
	return nil
}

// Sync flushes the file's contents to stable storage.
func Sync(h Handle) error {
	return unix.Fsync(int(h))
}

// Truncate seeks the file to the start and truncates it to zero length.
func Truncate(h Handle) error {
	if _, err := unix.Seek(int(h), 0, unix.SEEK_SET); err != nil {
		return err
	}
	return unix.Ftruncate(int(h), 0)
}

// Close releases the descriptor. Errors are discarded; there is no sane
// recovery from a failed close on a lock file.
func Close(h Handle) {
	_ = unix.Close(int(h))
}

// Remove deletes the file at path.
func Remove(path string) error {
	return os.Remove(path)
}

// Getpid returns the current process id.
func Getpid() int {
	return os.Getpid()
}
