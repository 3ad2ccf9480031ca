package clipboard

import "golang.org/x/sys/unix"

// lockMemory keeps b out of swap. Failure (e.g. RLIMIT_MEMLOCK) is not
// fatal; the secret is still wiped on release.
func lockMemory(b []byte) func() {
	if len(b) == 0 {
		return func() {}
	}
	if err := unix.Mlock(b); err != nil {
		return func() {}
	}
	return func() { _ = unix.Munlock(b) }
}
