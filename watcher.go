package stick

import "context"

// Watcher observes a manifest source and emits its raw bytes on a channel.
// Implementations must emit the current value immediately upon Watch()
// being called so the Reloader can register the initial bindings.
type Watcher interface {
	// Watch begins observing the source. The returned channel is closed when
	// ctx is canceled or the source fails unrecoverably.
	Watch(ctx context.Context) (<-chan []byte, error)
}

// ChannelWatcher adapts a byte channel the caller already feeds, such as an
// embedded manifest or a test fixture.
type ChannelWatcher struct {
	src    <-chan []byte
	direct bool
}

// NewChannelWatcher forwards values from src through a goroutine that stops
// when the Watch context is canceled.
func NewChannelWatcher(src <-chan []byte) *ChannelWatcher {
	return &ChannelWatcher{src: src}
}

// NewSyncChannelWatcher hands src to the Reloader as is.
// Pair it with Reloader.SyncMode() for deterministic tests.
func NewSyncChannelWatcher(src <-chan []byte) *ChannelWatcher {
	return &ChannelWatcher{src: src, direct: true}
}

// Watch returns a channel carrying the values read from the source.
func (w *ChannelWatcher) Watch(ctx context.Context) (<-chan []byte, error) {
	if w.direct {
		return w.src, nil
	}

	out := make(chan []byte)
	go func() {
		defer close(out)
		for {
			var (
				v  []byte
				ok bool
			)
			select {
			case <-ctx.Done():
				return
			case v, ok = <-w.src:
			}
			if !ok {
				return
			}
			select {
			case out <- v:
			case <-ctx.Done():
				return
			}
		}
	}()
	return out, nil
}
