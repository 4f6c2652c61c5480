//go:build !unix

package reforge

import "os"

// defaultSignals returns no signals: there is no portable reload-request
// signal outside unix systems, so the signal trigger fails installation
// and the reloader runs on filesystem triggers alone.
func defaultSignals() []os.Signal {
	return nil
}

// lookupSignal never resolves outside unix systems.
func lookupSignal(string) (os.Signal, bool) {
	return nil, false
}
