// Package fileid derives process-local identities for open files and
// arbitrates exclusive ownership of those identities between handles of the
// same process.
//
// The OS-level advisory lock on Unix is granted per process: a second handle
// opened by the same process to the same file is handed the lock immediately
// by the kernel, even though a sibling handle already owns it logically. The
// table in this package closes that gap by tracking, per file identity, which
// handle currently owns the lock inside this process.
package fileid

import "sync"

// ID identifies an open file on stable storage (device plus inode on Unix).
// Two handles referring to the same underlying file, even via different paths
// or hard links, resolve to the same ID. The zero ID is the "no arbitration"
// identity: handles carrying it are never tracked by the table and get the
// raw OS lock semantics.
type ID struct {
	dev, ino  uint64
	exclusive bool
}

// None is the identity used when OS-dependent semantics were requested, or on
// platforms where the OS lock is already per-handle.
var None = ID{}

// Arbitrated reports whether the table tracks this identity.
func (id ID) Arbitrated() bool { return id.exclusive }

// Table maps file identities to wait/notify primitives. An entry being
// present means some handle within the process currently owns that identity.
// The mutex guards only O(1) map operations and is never held across a
// blocking OS call.
type Table struct {
	mu   sync.Mutex
	held map[ID]*sync.Cond
}

// NewTable returns an empty arbitration table.
func NewTable() *Table {
	return &Table{held: make(map[ID]*sync.Cond)}
}

// shared is the process-wide table backing the package-level functions. Its
// lifetime is the process; there is no teardown.
var shared = NewTable()

// Take blocks until id is unowned, then claims it for the caller.
func Take(id ID) { shared.Take(id) }

// TryTake claims id if it is unowned, without blocking. It reports whether
// the claim succeeded.
func TryTake(id ID) bool { return shared.TryTake(id) }

// Release gives up ownership of id and wakes one waiter, if any.
func Release(id ID) { shared.Release(id) }

// Take blocks until id is unowned, then claims it. Waiters are woken one at a
// time in no particular order; wake order is scheduler-defined, not FIFO.
func (t *Table) Take(id ID) {
	if !id.Arbitrated() {
		return
	}
	t.mu.Lock()
	defer t.mu.Unlock()
	var c *sync.Cond
	for {
		occupant, held := t.held[id]
		if !held {
			// Reuse the cond this caller waited on, if any, so that
			// waiters still parked on it stay attached to the entry.
			if c == nil {
				c = sync.NewCond(&t.mu)
			}
			t.held[id] = c
			return
		}
		c = occupant
		c.Wait()
	}
}

// TryTake claims id if it is unowned. It never blocks.
func (t *Table) TryTake(id ID) bool {
	if !id.Arbitrated() {
		return true
	}
	t.mu.Lock()
	defer t.mu.Unlock()
	if _, held := t.held[id]; held {
		return false
	}
	t.held[id] = sync.NewCond(&t.mu)
	return true
}

// Release removes the entry for id and signals exactly one waiter.
func (t *Table) Release(id ID) {
	if !id.Arbitrated() {
		return
	}
	t.mu.Lock()
	defer t.mu.Unlock()
	if c, held := t.held[id]; held {
		delete(t.held, id)
		c.Signal()
	}
}

// Len reports how many identities are currently owned. Used by tests.
func (t *Table) Len() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return len(t.held)
}
