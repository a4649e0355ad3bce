package stick

import "testing"

func TestIsOverOffset_Directions(t *testing.T) {
	doc := newFakeDoc(1024, 768)

	tests := []struct {
		name string
		dir  Direction
		off  float64
		rect Rect
		want bool
	}{
		{"top crossed", DirectionTop, 50, Rect{Top: 50, Bottom: 90}, true},
		{"top above", DirectionTop, 50, Rect{Top: 49, Bottom: 89}, true},
		{"top below", DirectionTop, 50, Rect{Top: 51, Bottom: 91}, false},
		{"top negative offset", DirectionTop, -20, Rect{Top: -10}, false},
		{"top negative offset crossed", DirectionTop, -20, Rect{Top: -20}, true},
		{"left crossed", DirectionLeft, 10, Rect{Left: 5}, true},
		{"left not crossed", DirectionLeft, 10, Rect{Left: 15}, false},
		{"right crossed", DirectionRight, 24, Rect{Right: 1000}, true},
		{"right not crossed", DirectionRight, 30, Rect{Right: 1000}, false},
		{"bottom crossed", DirectionBottom, 68, Rect{Bottom: 700}, true},
		{"bottom not crossed", DirectionBottom, 70, Rect{Bottom: 700}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Config{Direction: tt.dir, Offset: tt.off}
			if got := IsOverOffset(doc, tt.rect, Anchor{}, cfg); got != tt.want {
				t.Errorf("IsOverOffset() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestIsOverOffset_UnknownDirection(t *testing.T) {
	doc := newFakeDoc(1024, 768)
	cfg := Config{Direction: "diagonal", Offset: 1000}

	if IsOverOffset(doc, Rect{Top: -500, Left: -500}, Anchor{}, cfg) {
		t.Error("expected unknown direction to never cross")
	}
}

func TestIsOverOffset_AnchorGuards(t *testing.T) {
	doc := newFakeDoc(1024, 768)
	cfg := Config{Direction: DirectionTop}
	rect := Rect{Top: -10}

	doc.top = 100
	if IsOverOffset(doc, rect, AnchorAt(100), cfg) {
		t.Error("expected scroll at anchor to block")
	}

	doc.top = 80
	if IsOverOffset(doc, rect, AnchorAt(100), cfg) {
		t.Error("expected scroll behind anchor to block")
	}

	doc.top = 101
	if !IsOverOffset(doc, rect, AnchorAt(100), cfg) {
		t.Error("expected scroll past anchor to defer to geometry")
	}
}

func TestIsOverOffset_AnchorUsesDirectionAxis(t *testing.T) {
	doc := newFakeDoc(1024, 768)
	doc.top = 0
	doc.left = 300
	cfg := Config{Direction: DirectionLeft}

	if IsOverOffset(doc, Rect{Left: -5}, AnchorAt(300), cfg) {
		t.Error("expected horizontal scroll at anchor to block")
	}
	doc.left = 301
	if !IsOverOffset(doc, Rect{Left: -5}, AnchorAt(300), cfg) {
		t.Error("expected horizontal scroll past anchor to cross")
	}
}

func TestIsOverOffset_ZeroAnchorDoesNotGuard(t *testing.T) {
	doc := newFakeDoc(1024, 768)
	cfg := Config{Direction: DirectionTop}

	if !IsOverOffset(doc, Rect{Top: -10}, AnchorAt(0), cfg) {
		t.Error("expected anchor latched at origin not to block")
	}
}

func TestSetAnchor(t *testing.T) {
	doc := newFakeDoc(1024, 768)
	doc.top = 120
	doc.left = 40

	a := SetAnchor(doc, Anchor{}, DirectionTop)
	if v, ok := a.Value(); !ok || v != 120 {
		t.Errorf("expected anchor 120, got %v (set=%v)", v, ok)
	}

	doc.top = 500
	if v, _ := SetAnchor(doc, a, DirectionTop).Value(); v != 120 {
		t.Errorf("expected set anchor to be kept, got %v", v)
	}

	if v, _ := SetAnchor(doc, Anchor{}, DirectionRight).Value(); v != 40 {
		t.Errorf("expected horizontal anchor 40, got %v", v)
	}

	if SetAnchor(doc, Anchor{}, "diagonal").IsSet() {
		t.Error("expected unknown direction to leave anchor unset")
	}
}

func TestAnchor_ZeroValue(t *testing.T) {
	var a Anchor
	if a.IsSet() {
		t.Error("expected zero anchor to be unset")
	}
	if !AnchorAt(0).IsSet() {
		t.Error("expected AnchorAt(0) to be set")
	}
}
