package reforge

import "sync/atomic"

// Flag is a sticky one-bit change accumulator shared by any number of
// producer goroutines and a single consumer. Once any producer marks it,
// it stays set until the consumer explicitly consumes it; concurrent marks
// coalesce into a single pending change.
//
// The zero value is ready to use.
type Flag struct {
	set atomic.Bool
}

// Mark records that a change occurred. Safe to call from any goroutine;
// never blocks. A Mark that completes before a Consume is always observed
// by that Consume.
func (f *Flag) Mark() {
	f.set.Store(true)
}

// Consume atomically reads and clears the flag, returning whether any
// change was marked since the previous Consume. Only the single designated
// consumer goroutine should call this.
func (f *Flag) Consume() bool {
	return f.set.Swap(false)
}
