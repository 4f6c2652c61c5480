// Package reforge provides hot-reload coordination for artifacts built
// from files on disk.
//
// The core type is Reloader, which watches a directory and an OS signal
// for changes and rebuilds an in-memory artifact on the consumer's
// cadence, while protecting the consumer from partial rebuilds, transient
// build failures, and rebuild storms caused by bursty filesystem events.
//
// # Reloader
//
// A Reloader owns a builder, the paths it builds from, and the last
// successfully built artifact:
//
//	Triggers → Flag → Poll → debounce → rebuild → Artifact
//
// Background triggers coalesce all change notifications into a single
// sticky flag. The consumer polls; when a change is pending and the
// debounce interval has elapsed since the last attempt, the builder runs.
// If it fails, the previous artifact stays in use and the failure is
// reported, never fatal.
//
// # Outcomes
//
// Every consult produces one of three outcomes:
//
//   - OutcomeNoChange: nothing to do, artifact unchanged
//   - OutcomeRebuilt: change detected, artifact rebuilt
//   - OutcomeFailed: rebuild attempted and failed, previous artifact kept
//
// # Triggers
//
// The Trigger interface abstracts change sources. The package provides:
//
//   - DirTrigger: recursive filesystem watch using fsnotify (the default)
//   - SignalTrigger: reload on an OS signal, SIGUSR1 by default
//   - ChannelTrigger: change notifications from a channel
//
// Triggers never touch the artifact or the builder; their only interaction
// with the Reloader is marking its flag. Artifact, Poll, and ForceReload
// belong to a single consumer goroutine and must not be called
// concurrently with each other.
//
// # Example
//
//	type ShaderGraph struct {
//	    // ...
//	}
//
//	func buildGraph(ctx context.Context, dir, config string) (*ShaderGraph, error) {
//	    // parse dir + config into a graph
//	}
//
//	reloader := reforge.New("shaders", "shaders/graph.cfg", buildGraph).
//	    Debounce(300 * time.Millisecond).
//	    HistorySize(8)
//
//	if err := reloader.Start(ctx); err != nil {
//	    log.Fatalf("initial build failed: %v", err)
//	}
//
//	for frame := range frames {
//	    graph, outcome, err := reloader.Poll(ctx)
//	    if outcome == reforge.OutcomeFailed {
//	        log.Printf("rebuild failed, keeping old graph: %v", err)
//	    }
//	    render(frame, *graph)
//	}
package reforge
