package reforge

import (
	"context"
	"fmt"
	"os"
	"sync"
	"time"

	"github.com/zoobzio/capitan"
	"github.com/zoobzio/clockz"
)

// DefaultDebounce is the minimum interval between automatic rebuild
// attempts triggered by Poll.
const DefaultDebounce = 300 * time.Millisecond

// BuildFunc constructs an artifact from a watched directory and a build
// configuration path. It must be synchronous, safe to call repeatedly with
// identical inputs, and side-effect-free on failure.
//
// The context is passed through from the calling operation; the Reloader
// never cancels a running build.
type BuildFunc[T any] func(ctx context.Context, dir, config string) (T, error)

// Reloader watches a directory and an OS signal for changes and rebuilds
// an artifact of type T on demand, debounced against event storms. A
// failed rebuild never replaces the previously built artifact.
//
// Background triggers only ever set a shared change flag; the artifact,
// the debounce clock, and the builder are touched exclusively by the
// goroutine calling Artifact, Poll, and ForceReload. Those methods must
// not be called concurrently with each other.
type Reloader[T any] struct {
	build    BuildFunc[T]
	dir      string
	config   string
	debounce time.Duration
	clock    clockz.Clock
	metrics  MetricsProvider
	watch    Trigger
	aux      []Trigger
	signals  []os.Signal
	noSignal bool

	flag        Flag
	lastAttempt time.Time
	artifact    T
	lastError   error
	failures    *failureLog

	mu      sync.Mutex
	started bool
}

// New creates a Reloader that rebuilds artifacts from dir and config using
// build. Configure with chainable methods, then call Start.
//
// Example:
//
//	reloader := reforge.New("shaders", "shaders/graph.cfg", buildGraph).
//	    Debounce(300 * time.Millisecond)
//
//	if err := reloader.Start(ctx); err != nil {
//	    return err
//	}
//	for {
//	    graph, outcome, err := reloader.Poll(ctx)
//	    ...
//	}
func New[T any](dir, config string, build BuildFunc[T]) *Reloader[T] {
	return &Reloader[T]{
		build:    build,
		dir:      dir,
		config:   config,
		debounce: DefaultDebounce,
		clock:    clockz.RealClock,
	}
}

// -----------------------------------------------------------------------------
// Chainable Instance Configuration
// -----------------------------------------------------------------------------

// Debounce sets the minimum interval between automatic rebuild attempts.
// Changes marked within this interval of the last attempt stay pending
// until a later Poll. Default: 300ms. Must be called before Start().
func (r *Reloader[T]) Debounce(d time.Duration) *Reloader[T] {
	r.debounce = d
	return r
}

// Clock sets a custom clock for time operations.
// Use this with clockz.FakeClock for deterministic debounce testing.
// Must be called before Start().
func (r *Reloader[T]) Clock(clock clockz.Clock) *Reloader[T] {
	r.clock = clock
	return r
}

// Metrics sets a metrics provider for observability integration.
// The provider receives callbacks on change detection and on rebuild
// success and failure. Must be called before Start().
func (r *Reloader[T]) Metrics(provider MetricsProvider) *Reloader[T] {
	r.metrics = provider
	return r
}

// HistorySize sets the number of recent build failures to retain.
// Use 0 (default) to only retain the most recent error via LastError().
// Must be called before Start().
func (r *Reloader[T]) HistorySize(n int) *Reloader[T] {
	r.failures = newFailureLog(n)
	return r
}

// WatchTrigger replaces the default recursive filesystem trigger. The
// watch trigger is required: if its installation fails, Start fails.
// Must be called before Start().
func (r *Reloader[T]) WatchTrigger(t Trigger) *Reloader[T] {
	r.watch = t
	return r
}

// AuxTrigger adds auxiliary change triggers. Auxiliary triggers are
// best-effort: installation failure is reported via TriggerInstallFailed
// and the reloader continues without them. Must be called before Start().
func (r *Reloader[T]) AuxTrigger(triggers ...Trigger) *Reloader[T] {
	r.aux = append(r.aux, triggers...)
	return r
}

// Signals replaces the default reload-request signal set (SIGUSR1 on unix
// systems). Must be called before Start().
func (r *Reloader[T]) Signals(signals ...os.Signal) *Reloader[T] {
	r.signals = signals
	return r
}

// NoSignals disables the OS signal trigger entirely.
// Must be called before Start().
func (r *Reloader[T]) NoSignals() *Reloader[T] {
	r.noSignal = true
	return r
}

// Apply overlays file-loaded settings onto the reloader. Zero-valued
// settings fields leave the corresponding configuration untouched.
// Must be called before Start().
func (r *Reloader[T]) Apply(s Settings) *Reloader[T] {
	if s.Debounce > 0 {
		r.debounce = time.Duration(s.Debounce)
	}
	if len(s.Signals) > 0 {
		if signals, err := signalsFromNames(s.Signals); err == nil {
			r.signals = signals
		}
	}
	if s.History > 0 {
		r.failures = newFailureLog(s.History)
	}
	return r
}

// -----------------------------------------------------------------------------
// Lifecycle
// -----------------------------------------------------------------------------

// Start installs the change triggers and performs the first build. It
// fails if the filesystem trigger cannot be installed or the first build
// fails; a Reloader whose Start failed must not be used. Auxiliary trigger
// failures are reported and skipped.
//
// Triggers run until the context is canceled. Start can only be called
// once.
func (r *Reloader[T]) Start(ctx context.Context) error {
	r.mu.Lock()
	if r.started {
		r.mu.Unlock()
		return fmt.Errorf("reloader already started")
	}
	r.started = true
	r.mu.Unlock()

	capitan.Emit(ctx, ReloaderStarted,
		KeyDir.Field(r.dir),
		KeyConfig.Field(r.config),
		KeyDebounce.Field(r.debounce),
	)

	watch := r.watch
	if watch == nil {
		watch = NewDirTrigger(r.dir)
	}
	if err := watch.Start(ctx, &r.flag); err != nil {
		return fmt.Errorf("failed to install watch trigger: %w", err)
	}

	for _, t := range r.auxTriggers() {
		if err := t.Start(ctx, &r.flag); err != nil {
			capitan.Emit(ctx, TriggerInstallFailed,
				KeyError.Field(err.Error()),
			)
		}
	}

	artifact, err := r.build(ctx, r.dir, r.config)
	if err != nil {
		return fmt.Errorf("initial build failed: %w", err)
	}
	r.artifact = artifact
	r.lastAttempt = r.clock.Now()

	return nil
}

// auxTriggers assembles the best-effort triggers: the signal listener
// (unless disabled) plus any user-supplied auxiliaries.
func (r *Reloader[T]) auxTriggers() []Trigger {
	var triggers []Trigger
	if !r.noSignal {
		signals := r.signals
		if signals == nil {
			signals = defaultSignals()
		}
		triggers = append(triggers, NewSignalTrigger(signals...))
	}
	return append(triggers, r.aux...)
}

// -----------------------------------------------------------------------------
// Consumer API
// -----------------------------------------------------------------------------

// Artifact returns a mutable view of the held artifact without consulting
// the change flag or attempting any rebuild. A pending change stays
// pending. Use this for fine-grained control together with ForceReload.
func (r *Reloader[T]) Artifact() *T {
	return &r.artifact
}

// ForceReload rebuilds the artifact unconditionally, ignoring debounce
// timing and the change flag. On success the held artifact is replaced; on
// failure it is kept and the builder's error is returned alongside
// OutcomeFailed. Either way the debounce clock resets to now, so a failed
// attempt still counts as an attempt.
//
// Do not call this in a tight loop: every call runs a full synchronous
// build. Poll is the steady-state entry point.
func (r *Reloader[T]) ForceReload(ctx context.Context) (*T, Outcome, error) {
	start := r.clock.Now()
	artifact, err := r.build(ctx, r.dir, r.config)
	r.lastAttempt = r.clock.Now()

	if err != nil {
		r.setError(err)
		capitan.Emit(ctx, RebuildFailed,
			KeyError.Field(err.Error()),
		)
		if r.metrics != nil {
			r.metrics.OnRebuildFailure(r.clock.Since(start))
		}
		return &r.artifact, OutcomeFailed, err
	}

	r.artifact = artifact
	r.lastError = nil
	r.failures.clear()
	capitan.Emit(ctx, RebuildSucceeded,
		KeyDir.Field(r.dir),
	)
	if r.metrics != nil {
		r.metrics.OnRebuildSuccess(r.clock.Since(start))
	}
	return &r.artifact, OutcomeRebuilt, nil
}

// Poll returns the held artifact, rebuilding it first when a change is
// pending and the debounce interval has elapsed since the last attempt.
// Intended to be called once per frame or loop iteration.
//
// Within the debounce interval the change flag is not consulted, so an
// early pending change survives until a later Poll. The returned error is
// non-nil only alongside OutcomeFailed, in which case the previous
// artifact remains in use.
func (r *Reloader[T]) Poll(ctx context.Context) (*T, Outcome, error) {
	if r.clock.Since(r.lastAttempt) > r.debounce && r.flag.Consume() {
		capitan.Emit(ctx, ChangeDetected)
		if r.metrics != nil {
			r.metrics.OnChangeDetected()
		}
		return r.ForceReload(ctx)
	}
	return &r.artifact, OutcomeNoChange, nil
}

// Mark records an external change request, as if a watched file had
// changed. Safe to call from any goroutine.
func (r *Reloader[T]) Mark() {
	r.flag.Mark()
}

// LastError returns the most recent build error, or nil if the last
// rebuild attempt succeeded.
func (r *Reloader[T]) LastError() error {
	return r.lastError
}

// History returns recent build failures, oldest first. Returns nil unless
// retention was enabled with HistorySize. Cleared on the next successful
// rebuild.
func (r *Reloader[T]) History() []BuildFailure {
	return r.failures.all()
}

// setError records a build failure for LastError and History.
func (r *Reloader[T]) setError(err error) {
	r.lastError = err
	r.failures.push(BuildFailure{Err: err, At: r.clock.Now()})
}
