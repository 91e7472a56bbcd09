//go:build !windows

package fileid

import (
	"golang.org/x/sys/unix"

	"github.com/brunoczim/fslock/internal/sys"
)

// Resolve stats the open descriptor and packages (device, inode) as its
// stable identity.
func Resolve(h sys.Handle) (ID, error) {
	var st unix.Stat_t
	if err := unix.Fstat(int(h), &st); err != nil {
		return None, err
	}
	return ID{dev: uint64(st.Dev), ino: uint64(st.Ino), exclusive: true}, nil
}
