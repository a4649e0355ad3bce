package stick

import "testing"

func TestState_String(t *testing.T) {
	tests := map[State]string{
		StateUnstuck:  "unstuck",
		StateStuck:    "stuck",
		StateInactive: "inactive",
		StateActive:   "active",
		State(999):    "unknown",
	}
	for s, want := range tests {
		if got := s.String(); got != want {
			t.Errorf("expected %q, got %q", want, got)
		}
	}
}

func TestReloadState_String_Loading(t *testing.T) {
	if s := ReloadLoading.String(); s != "loading" {
		t.Errorf("expected 'loading', got %q", s)
	}
}

func TestReloadState_String_Healthy(t *testing.T) {
	if s := ReloadHealthy.String(); s != "healthy" {
		t.Errorf("expected 'healthy', got %q", s)
	}
}

func TestReloadState_String_Degraded(t *testing.T) {
	if s := ReloadDegraded.String(); s != "degraded" {
		t.Errorf("expected 'degraded', got %q", s)
	}
}

func TestReloadState_String_Empty(t *testing.T) {
	if s := ReloadEmpty.String(); s != "empty" {
		t.Errorf("expected 'empty', got %q", s)
	}
}

func TestReloadState_String_Unknown(t *testing.T) {
	if s := ReloadState(999).String(); s != "unknown" {
		t.Errorf("expected 'unknown', got %q", s)
	}
}

func TestReloadState_Values(t *testing.T) {
	// Verify iota ordering
	if ReloadLoading != 0 {
		t.Errorf("expected ReloadLoading=0, got %d", ReloadLoading)
	}
	if ReloadHealthy != 1 {
		t.Errorf("expected ReloadHealthy=1, got %d", ReloadHealthy)
	}
	if ReloadDegraded != 2 {
		t.Errorf("expected ReloadDegraded=2, got %d", ReloadDegraded)
	}
	if ReloadEmpty != 3 {
		t.Errorf("expected ReloadEmpty=3, got %d", ReloadEmpty)
	}
}
