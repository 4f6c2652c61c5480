package reforge

import "github.com/zoobzio/capitan"

// Field keys for Reloader events.
var (
	// KeyDir is the watched directory.
	KeyDir = capitan.NewStringKey("dir")

	// KeyConfig is the build configuration path.
	KeyConfig = capitan.NewStringKey("config")

	// KeyDebounce is the configured debounce interval.
	KeyDebounce = capitan.NewDurationKey("debounce")

	// KeyError is the error message when an operation fails.
	KeyError = capitan.NewStringKey("error")

	// KeySignal is the name of a received OS signal.
	KeySignal = capitan.NewStringKey("signal")
)
