package stick

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/zoobzio/capitan"
	"github.com/zoobzio/clockz"
)

// DefaultDebounce is the default debounce duration for manifest changes.
const DefaultDebounce = 100 * time.Millisecond

// Reloader watches a binding manifest and keeps a document's bindings in
// step with it.
//
//	Source → Decode → Validate → Apply → Swap
//
// Each accepted manifest registers a fresh set of bindings and then closes
// the previous set. A manifest that fails to decode, validate or apply is
// rejected and the previous bindings stay registered.
type Reloader struct {
	doc      Document
	watcher  Watcher
	codec    Codec
	debounce time.Duration
	frame    time.Duration
	syncMode bool
	clock    clockz.Clock
	metrics  MetricsProvider
	onStop   func(ReloadState)

	state     atomic.Int32
	current   atomic.Pointer[Manifest]
	lastError atomic.Pointer[error]
	history   *errorHistory

	mu      sync.Mutex
	started bool
	applied *Applied

	// For sync mode: channel to receive changes
	changes <-chan []byte
}

// NewReloader creates a Reloader that registers manifests from watcher
// against doc. Instance configuration uses chainable methods before
// calling Start().
//
// Example:
//
//	r := stick.NewReloader(doc, stick.NewFileWatcher("bindings.yaml")).
//	    Codec(stick.YAMLCodec{}).
//	    Frame(stick.DefaultFrame)
//	if err := r.Start(ctx); err != nil {
//	    log.Printf("initial manifest rejected: %v", err)
//	}
//	defer r.Close()
func NewReloader(doc Document, watcher Watcher) *Reloader {
	r := &Reloader{
		doc:      doc,
		watcher:  watcher,
		codec:    JSONCodec{},
		debounce: DefaultDebounce,
		clock:    clockz.RealClock,
	}
	r.state.Store(int32(ReloadLoading))
	return r
}

// Codec sets the manifest codec. Default: JSONCodec. Must be called before Start().
func (r *Reloader) Codec(codec Codec) *Reloader {
	r.codec = codec
	return r
}

// Debounce sets the debounce duration for manifest changes.
// Changes arriving within this duration are coalesced into a single reload.
// Default: 100ms. Must be called before Start().
func (r *Reloader) Debounce(d time.Duration) *Reloader {
	r.debounce = d
	return r
}

// Frame makes every registered binding coalesce scroll bursts to one
// evaluation per frame. Zero (the default) evaluates every notification.
// Must be called before Start().
func (r *Reloader) Frame(d time.Duration) *Reloader {
	r.frame = d
	return r
}

// SyncMode enables synchronous processing for testing.
// In sync mode, changes are processed immediately without debouncing
// or async goroutines, making tests deterministic. Must be called before Start().
func (r *Reloader) SyncMode() *Reloader {
	r.syncMode = true
	return r
}

// Clock sets a custom clock for debouncing.
// Use this with clockz.FakeClock for deterministic tests.
// Must be called before Start().
func (r *Reloader) Clock(clock clockz.Clock) *Reloader {
	r.clock = clock
	return r
}

// Metrics sets a metrics provider for the Reloader and every binding it
// registers. Must be called before Start().
func (r *Reloader) Metrics(provider MetricsProvider) *Reloader {
	r.metrics = provider
	return r
}

// OnStop sets a callback invoked with the final state when the Reloader
// stops watching. Must be called before Start().
func (r *Reloader) OnStop(fn func(ReloadState)) *Reloader {
	r.onStop = fn
	return r
}

// ErrorHistorySize sets the number of recent errors to retain.
// Use 0 (default) to only retain the most recent error via LastError().
// Must be called before Start().
func (r *Reloader) ErrorHistorySize(n int) *Reloader {
	r.history = newErrorHistory(n)
	return r
}

// State returns the current state of the Reloader.
func (r *Reloader) State() ReloadState {
	return ReloadState(r.state.Load())
}

// Current returns the last applied manifest and true, or the zero value and
// false if none has been applied.
func (r *Reloader) Current() (Manifest, bool) {
	ptr := r.current.Load()
	if ptr == nil {
		return Manifest{}, false
	}
	return *ptr, true
}

// Bindings returns the number of bindings currently registered.
func (r *Reloader) Bindings() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.applied == nil {
		return 0
	}
	return len(r.applied.Bindings)
}

// LastError returns the last error encountered, or nil if the last
// manifest was applied.
func (r *Reloader) LastError() error {
	ptr := r.lastError.Load()
	if ptr == nil {
		return nil
	}
	return *ptr
}

// ErrorHistory returns the recent error history, oldest first.
// Returns nil if error history is not enabled (see ErrorHistorySize).
func (r *Reloader) ErrorHistory() []error {
	return r.history.snapshot()
}

// Start begins watching. It blocks until the first manifest is processed
// (success or failure), then continues watching asynchronously.
//
// If the initial manifest is rejected, Start returns the error but keeps
// watching in the background for a valid one.
//
// In sync mode, Start only processes the initial value. Use Process() to
// manually trigger processing of subsequent values.
//
// Start can only be called once. Subsequent calls return an error.
func (r *Reloader) Start(ctx context.Context) error {
	r.mu.Lock()
	if r.started {
		r.mu.Unlock()
		return fmt.Errorf("reloader already started")
	}
	r.started = true
	r.mu.Unlock()

	capitan.Emit(ctx, ReloaderStarted,
		KeyDebounce.Field(r.debounce),
		KeyFrame.Field(r.frame),
	)

	changes, err := r.watcher.Watch(ctx)
	if err != nil {
		return fmt.Errorf("failed to start watcher: %w", err)
	}

	var initialErr error
	select {
	case <-ctx.Done():
		return ctx.Err()
	case raw, ok := <-changes:
		if !ok {
			return fmt.Errorf("watcher closed before emitting initial manifest")
		}
		capitan.Emit(ctx, ManifestReceived)
		initialErr = r.process(ctx, raw)
	}

	if r.syncMode {
		r.changes = changes
		return initialErr
	}

	go r.watch(ctx, changes)

	return initialErr
}

// Process reads and processes the next manifest from the watcher.
// This is only available in sync mode and is used for deterministic testing.
// Returns false if no value is available or the channel is closed.
func (r *Reloader) Process(ctx context.Context) bool {
	if !r.syncMode {
		return false
	}

	select {
	case raw, ok := <-r.changes:
		if !ok {
			return false
		}
		capitan.Emit(ctx, ManifestReceived)
		_ = r.process(ctx, raw) //nolint:errcheck // Errors stored via fail
		return true
	default:
		return false
	}
}

// Close disposes the currently registered bindings. Watching continues
// until the Start context is canceled.
func (r *Reloader) Close() error {
	r.mu.Lock()
	applied := r.applied
	r.applied = nil
	r.mu.Unlock()
	return applied.Close()
}

// process decodes, validates and applies a single manifest.
func (r *Reloader) process(ctx context.Context, raw []byte) error {
	start := r.clock.Now()
	oldState := r.State()

	var m Manifest
	if err := r.codec.Unmarshal(raw, &m); err != nil {
		r.fail(ctx, oldState, "decode", start, err)
		capitan.Emit(ctx, ManifestDecodeFailed, KeyError.Field(err.Error()))
		return fmt.Errorf("decode failed: %w", err)
	}

	if err := m.Validate(); err != nil {
		r.fail(ctx, oldState, "validate", start, err)
		capitan.Emit(ctx, ManifestValidationFailed, KeyError.Field(err.Error()))
		return fmt.Errorf("validation failed: %w", err)
	}

	var opts []func(Binding)
	if r.metrics != nil {
		opts = append(opts, WithBindingMetrics(r.metrics))
	}
	next, err := Apply(ctx, r.doc, m, r.frame, opts...)
	if err != nil {
		r.fail(ctx, oldState, "apply", start, err)
		capitan.Emit(ctx, ManifestApplyFailed, KeyError.Field(err.Error()))
		return fmt.Errorf("apply failed: %w", err)
	}

	r.mu.Lock()
	prev := r.applied
	r.applied = next
	r.mu.Unlock()
	_ = prev.Close() //nolint:errcheck // Bindings close without error

	r.current.Store(&m)
	r.lastError.Store(nil)
	r.history.reset()
	r.transitionState(ctx, oldState, ReloadHealthy)
	capitan.Emit(ctx, ManifestApplied,
		KeyBindings.Field(len(next.Bindings)),
		KeySkipped.Field(next.Skipped),
	)
	if r.metrics != nil {
		r.metrics.OnReloadSuccess(len(next.Bindings), r.clock.Since(start))
	}
	return nil
}

// fail records a rejected manifest. The previous bindings stay registered.
func (r *Reloader) fail(ctx context.Context, oldState ReloadState, stage string, start time.Time, err error) {
	e := err
	r.lastError.Store(&e)
	r.history.record(err)
	r.transitionState(ctx, oldState, r.failureState())
	if r.metrics != nil {
		r.metrics.OnReloadFailure(stage, r.clock.Since(start))
	}
}

// failureState returns Empty until a manifest has ever been applied.
func (r *Reloader) failureState() ReloadState {
	if r.current.Load() == nil {
		return ReloadEmpty
	}
	return ReloadDegraded
}

// transitionState updates the state and emits a state change event if changed.
func (r *Reloader) transitionState(ctx context.Context, oldState, newState ReloadState) {
	if oldState == newState {
		return
	}
	r.state.Store(int32(newState))
	capitan.Emit(ctx, ReloaderStateChanged,
		KeyOldState.Field(oldState.String()),
		KeyNewState.Field(newState.String()),
	)
}

// watch processes manifests from the watcher channel with debouncing.
func (r *Reloader) watch(ctx context.Context, changes <-chan []byte) {
	defer func() {
		final := r.State()
		capitan.Emit(ctx, ReloaderStopped,
			KeyState.Field(final.String()),
		)
		if r.onStop != nil {
			r.onStop(final)
		}
	}()

	var (
		timer      clockz.Timer
		pending    []byte
		hasPending bool
	)

	for {
		var timerC <-chan time.Time
		if timer != nil {
			timerC = timer.C()
		}

		select {
		case <-ctx.Done():
			if timer != nil {
				timer.Stop()
			}
			return

		case raw, ok := <-changes:
			if !ok {
				// Channel closed, apply the last pending manifest
				if hasPending {
					_ = r.process(ctx, pending) //nolint:errcheck // Errors stored via fail
				}
				return
			}

			capitan.Emit(ctx, ManifestReceived)
			pending = raw
			hasPending = true

			if timer == nil {
				timer = r.clock.NewTimer(r.debounce)
			} else {
				if !timer.Stop() {
					select {
					case <-timer.C():
					default:
					}
				}
				timer.Reset(r.debounce)
			}

		case <-timerC:
			if hasPending {
				_ = r.process(ctx, pending) //nolint:errcheck // Errors stored via fail
				hasPending = false
			}
		}
	}
}
