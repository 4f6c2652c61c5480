//go:build unix

package reforge

import (
	"os"

	"golang.org/x/sys/unix"
)

// defaultSignals returns the reload-request signals installed when no
// explicit set is configured.
func defaultSignals() []os.Signal {
	return []os.Signal{unix.SIGUSR1}
}

// lookupSignal resolves a signal name like "SIGUSR1" to a signal.
func lookupSignal(name string) (os.Signal, bool) {
	sig := unix.SignalNum(name)
	if sig == 0 {
		return nil, false
	}
	return sig, true
}
