package cthex

import "runtime"

// Wipe sets every byte in p to zero.
//
// The loop is kept out of line so the compiler can't observe that
// the cleared bytes are never read again and elide the stores.
//
//go:noinline
func Wipe(p []byte) {
	for i := range p {
		p[i] = 0
	}
	// KeepAlive should (hopefully) nudge the compiler away from
	// DCEing the loop above.
	runtime.KeepAlive(p)
}
