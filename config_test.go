package stick

import (
	"errors"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	if cfg.Direction != DirectionTop {
		t.Errorf("expected top, got %q", cfg.Direction)
	}
	if cfg.Offset != 0 || cfg.Viewport != 0 {
		t.Errorf("expected zero offset and viewport, got %v/%v", cfg.Offset, cfg.Viewport)
	}
	if !cfg.KeepWidth || !cfg.KeepHeight {
		t.Error("expected width and height kept by default")
	}
}

func TestConfig_Validate(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Offset = -40
	if err := cfg.Validate(); err != nil {
		t.Errorf("expected negative offset to be valid, got %v", err)
	}

	cfg.Direction = "diagonal"
	if err := cfg.Validate(); err != nil {
		t.Errorf("expected unknown direction to be accepted, got %v", err)
	}

	cfg.Viewport = -1
	err := cfg.Validate()
	if !errors.Is(err, ErrInvalidConfig) {
		t.Errorf("expected ErrInvalidConfig, got %v", err)
	}
}

func TestConfig_WithDefaults(t *testing.T) {
	cfg := Config{}.withDefaults()
	if cfg.Direction != DirectionTop {
		t.Errorf("expected empty direction to become top, got %q", cfg.Direction)
	}
	cfg = Config{Direction: DirectionBottom}.withDefaults()
	if cfg.Direction != DirectionBottom {
		t.Errorf("expected bottom to be kept, got %q", cfg.Direction)
	}
}

func TestPx(t *testing.T) {
	tests := map[float64]string{
		0:     "0px",
		50:    "50px",
		-20:   "-20px",
		12.5:  "12.5px",
		768.0: "768px",
	}
	for in, want := range tests {
		if got := px(in); got != want {
			t.Errorf("px(%v) = %q, want %q", in, got, want)
		}
	}
}

func TestDirection_PropertyName(t *testing.T) {
	tests := map[Direction]string{
		DirectionTop:    "--offsetTOP",
		DirectionLeft:   "--offsetLEFT",
		DirectionRight:  "--offsetRIGHT",
		DirectionBottom: "--offsetBOTTOM",
	}
	for dir, want := range tests {
		if got := dir.PropertyName(); got != want {
			t.Errorf("%s.PropertyName() = %q, want %q", dir, got, want)
		}
	}
}

func TestDirection_Known(t *testing.T) {
	for _, d := range []Direction{DirectionTop, DirectionLeft, DirectionRight, DirectionBottom} {
		if !d.Known() {
			t.Errorf("expected %q to be known", d)
		}
	}
	if Direction("diagonal").Known() {
		t.Error("expected diagonal to be unknown")
	}
}
