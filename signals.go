package stick

import "github.com/zoobzio/capitan"

// Binding lifecycle signals.
var (
	// BindingRegistered is emitted when a binding subscribes to scroll
	// notifications.
	BindingRegistered = capitan.NewSignal(
		"stick.binding.registered",
		"Binding registered on the scroll channel",
	)

	// BindingDisabled is emitted when the viewport is narrower than a sticky
	// binding's threshold and nothing is registered.
	BindingDisabled = capitan.NewSignal(
		"stick.binding.disabled",
		"Binding disabled for this viewport width",
	)

	// BindingClosed is emitted when a binding is disposed.
	BindingClosed = capitan.NewSignal(
		"stick.binding.closed",
		"Binding deregistered",
	)

	// ElementUnresolved is emitted when a binding target cannot be found.
	ElementUnresolved = capitan.NewSignal(
		"stick.element.unresolved",
		"Not a valid element or id",
	)
)

// Presentation signals.
var (
	// StickyStateChanged is emitted when an element enters or leaves the
	// stuck state.
	StickyStateChanged = capitan.NewSignal(
		"stick.state.changed",
		"Sticky state transition",
	)

	// ActiveStateChanged is emitted when a target gains or loses its
	// active class.
	ActiveStateChanged = capitan.NewSignal(
		"stick.active.changed",
		"Active state transition",
	)
)

// Manifest reload signals.
var (
	// ReloaderStarted is emitted when a Reloader begins watching.
	ReloaderStarted = capitan.NewSignal(
		"stick.reloader.started",
		"Reloader watching started",
	)

	// ReloaderStopped is emitted when a Reloader stops watching.
	ReloaderStopped = capitan.NewSignal(
		"stick.reloader.stopped",
		"Reloader watching stopped",
	)

	// ReloaderStateChanged is emitted when a Reloader transitions between states.
	ReloaderStateChanged = capitan.NewSignal(
		"stick.reloader.state.changed",
		"Reloader state transition",
	)

	// ManifestReceived is emitted when raw manifest data arrives from the watcher.
	ManifestReceived = capitan.NewSignal(
		"stick.manifest.received",
		"Raw manifest received from watcher",
	)

	// ManifestDecodeFailed is emitted when the codec rejects manifest data.
	ManifestDecodeFailed = capitan.NewSignal(
		"stick.manifest.decode.failed",
		"Manifest decode failed",
	)

	// ManifestValidationFailed is emitted when a decoded manifest is invalid.
	ManifestValidationFailed = capitan.NewSignal(
		"stick.manifest.validation.failed",
		"Manifest validation failed",
	)

	// ManifestApplyFailed is emitted when registering a manifest's bindings fails.
	ManifestApplyFailed = capitan.NewSignal(
		"stick.manifest.apply.failed",
		"Manifest apply failed",
	)

	// ManifestApplied is emitted when a manifest's bindings replace the
	// previous set.
	ManifestApplied = capitan.NewSignal(
		"stick.manifest.applied",
		"Manifest applied",
	)
)
