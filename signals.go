package reforge

import "github.com/zoobzio/capitan"

// Reloader lifecycle signals.
var (
	// ReloaderStarted is emitted when a Reloader begins watching.
	ReloaderStarted = capitan.NewSignal(
		"reforge.reloader.started",
		"Reloader watching started",
	)

	// TriggerInstallFailed is emitted when an auxiliary change trigger
	// cannot be installed. The reloader continues without it.
	TriggerInstallFailed = capitan.NewSignal(
		"reforge.trigger.install.failed",
		"Auxiliary trigger installation failed",
	)
)

// Change detection signals.
var (
	// ChangeDetected is emitted when a poll consumes a pending change.
	ChangeDetected = capitan.NewSignal(
		"reforge.change.detected",
		"Pending change consumed by poll",
	)

	// SignalReceived is emitted when a reload-request OS signal arrives.
	SignalReceived = capitan.NewSignal(
		"reforge.signal.received",
		"Reload-request signal received",
	)

	// WatchError is emitted when the filesystem watch reports a delivery
	// error after successful setup. The watch keeps running.
	WatchError = capitan.NewSignal(
		"reforge.watch.error",
		"Filesystem watch delivery error",
	)
)

// Rebuild signals.
var (
	// RebuildSucceeded is emitted when the artifact is rebuilt successfully.
	RebuildSucceeded = capitan.NewSignal(
		"reforge.rebuild.succeeded",
		"Artifact rebuilt",
	)

	// RebuildFailed is emitted when a rebuild attempt fails. The previous
	// artifact remains in use.
	RebuildFailed = capitan.NewSignal(
		"reforge.rebuild.failed",
		"Artifact rebuild failed",
	)
)
