package fslock

import (
	"strconv"

	"github.com/brunoczim/fslock/internal/sys"
)

// stampBufSize is the stamp writer's buffer size. A PID is at most ten
// decimal digits plus the trailing newline, so a single flush is the normal
// case; the chunking loop exists so the writer never degrades to per-byte
// syscalls even if the buffer were smaller than the payload.
const stampBufSize = 16

// stampWriter accumulates small formatted payloads in a fixed buffer and
// flushes them to the handle in chunks.
type stampWriter struct {
	handle sys.Handle
	buf    [stampBufSize]byte
	cursor int
}

func (w *stampWriter) writeString(s string) error {
	for len(s) > 0 {
		n := copy(w.buf[w.cursor:], s)
		w.cursor += n
		s = s[n:]
		if len(s) > 0 {
			if err := w.flush(); err != nil {
				return err
			}
		}
	}
	return nil
}

func (w *stampWriter) flush() error {
	if w.cursor == 0 {
		return nil
	}
	err := sys.Write(w.handle, w.buf[:w.cursor])
	w.cursor = 0
	return err
}

// finish flushes what remains and syncs the file to stable storage, so the
// stamp is durable before lock ownership is reported to the caller.
func (w *stampWriter) finish() error {
	if err := w.flush(); err != nil {
		return err
	}
	return sys.Sync(w.handle)
}

// stampPID replaces the file's contents with the current process id in
// decimal, newline-terminated. The handle must own the lock.
func (f *LockFile) stampPID() error {
	if err := sys.Truncate(f.handle); err != nil {
		return err
	}
	w := stampWriter{handle: f.handle}
	if err := w.writeString(strconv.Itoa(sys.Getpid())); err != nil {
		return err
	}
	if err := w.writeString("\n"); err != nil {
		return err
	}
	return w.finish()
}
