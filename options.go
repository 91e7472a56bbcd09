package fslock

// config is the open-time configuration of a handle. Exclusivity and
// truncation behavior are fixed when the file is opened, not per lock call.
type config struct {
	osDependent     bool
	preserveContent bool
}

// Option configures a handle at open time.
type Option func(*config)

// OSDependent bypasses in-process arbitration and exposes the raw semantics
// of the platform's lock primitive. On Unix that means the kernel grants the
// lock per process, so a second handle of the same process may be handed the
// lock immediately even though a sibling handle owns it. On Windows this
// option changes nothing; locks there are per-handle either way.
func OSDependent() Option {
	return func(c *config) { c.osDependent = true }
}

// PreserveContent disables the truncation that Unlock normally performs to
// erase a PID stamp. Use it when the locked file carries content of its own.
func PreserveContent() Option {
	return func(c *config) { c.preserveContent = true }
}

func applyOptions(opts []Option) config {
	var cfg config
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}
