package stick

// State is the presentation state a binding last applied. It is derived
// from class membership on the element and reported through signals and
// metrics; the class itself is the source of truth.
type State int32

const (
	// StateUnstuck indicates a sticky binding's element lacks StickyClass.
	StateUnstuck State = iota

	// StateStuck indicates a sticky binding's element carries StickyClass.
	StateStuck

	// StateInactive indicates a membership binding's target lacks its class.
	StateInactive

	// StateActive indicates a membership binding's target carries its class.
	StateActive
)

// String returns the string representation of the state.
func (s State) String() string {
	switch s {
	case StateUnstuck:
		return "unstuck"
	case StateStuck:
		return "stuck"
	case StateInactive:
		return "inactive"
	case StateActive:
		return "active"
	default:
		return "unknown"
	}
}

// ReloadState represents the current state of a Reloader.
type ReloadState int32

const (
	// ReloadLoading indicates the Reloader has not yet processed a manifest.
	ReloadLoading ReloadState = iota

	// ReloadHealthy indicates the last manifest was applied.
	ReloadHealthy

	// ReloadDegraded indicates the last manifest was rejected. Bindings from
	// the previous manifest remain registered.
	ReloadDegraded

	// ReloadEmpty indicates the initial manifest was rejected and no
	// bindings have ever been registered. The Reloader keeps watching.
	ReloadEmpty
)

// String returns the string representation of the reload state.
func (s ReloadState) String() string {
	switch s {
	case ReloadLoading:
		return "loading"
	case ReloadHealthy:
		return "healthy"
	case ReloadDegraded:
		return "degraded"
	case ReloadEmpty:
		return "empty"
	default:
		return "unknown"
	}
}
