package stick

import "github.com/zoobzio/capitan"

// Field keys for binding and reloader events.
var (
	// KeyElement identifies the bound element ("#id" or the handle's type).
	KeyElement = capitan.NewStringKey("element")

	// KeySubject identifies the element a membership binding observes.
	KeySubject = capitan.NewStringKey("subject")

	// KeyDirection is a sticky binding's tested edge.
	KeyDirection = capitan.NewStringKey("direction")

	// KeyAxis is a membership binding's axis.
	KeyAxis = capitan.NewStringKey("axis")

	// KeyClass is the class a membership binding toggles.
	KeyClass = capitan.NewStringKey("class")

	// KeyOffset is the published offset, formatted as a pixel length.
	KeyOffset = capitan.NewStringKey("offset")

	// KeyViewport describes the viewport gate, e.g. "800px < 1200px".
	KeyViewport = capitan.NewStringKey("viewport")

	// KeyOldState is the previous state before a transition.
	KeyOldState = capitan.NewStringKey("old_state")

	// KeyNewState is the new state after a transition.
	KeyNewState = capitan.NewStringKey("new_state")

	// KeyState is the current state of a Reloader.
	KeyState = capitan.NewStringKey("state")

	// KeyError is the error message when an operation fails.
	KeyError = capitan.NewStringKey("error")

	// KeyFrame is a binding's coalescing frame, zero when uncoalesced.
	KeyFrame = capitan.NewDurationKey("frame")

	// KeyDebounce is a Reloader's debounce duration.
	KeyDebounce = capitan.NewDurationKey("debounce")

	// KeyBindings is the number of bindings a manifest registered.
	KeyBindings = capitan.NewIntKey("bindings")

	// KeySkipped is the number of manifest rules skipped.
	KeySkipped = capitan.NewIntKey("skipped")
)
