//go:build windows

package fileid

import "github.com/brunoczim/fslock/internal/sys"

// Resolve returns the no-arbitration identity: LockFileEx is already
// exclusive per handle, so the kernel does the per-handle bookkeeping the
// table exists to provide on Unix.
func Resolve(_ sys.Handle) (ID, error) {
	return None, nil
}
