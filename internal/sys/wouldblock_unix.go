//go:build !windows

package sys

import "golang.org/x/sys/unix"

// wouldBlock reports whether err is one of the errno values the kernel uses
// to say "someone else holds the lock". EWOULDBLOCK and EAGAIN are the same
// value on most platforms but not all; EACCES is what some fcntl
// implementations return instead; EINTR is treated as contention rather than
// failure, matching a try that simply did not get the lock.
func wouldBlock(err error) bool {
	return err == unix.EWOULDBLOCK || err == unix.EAGAIN ||
		err == unix.EACCES || err == unix.EINTR
}
