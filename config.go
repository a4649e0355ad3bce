package stick

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/go-playground/validator/v10"
)

// validate is the shared validator instance.
var validate = validator.New()

// ErrInvalidConfig wraps validation failures for Config and Manifest values.
var ErrInvalidConfig = errors.New("invalid config")

// Config configures a sticky binding.
//
// Use DefaultConfig and override fields; a zero Direction is treated as
// DirectionTop. An unrecognized Direction is accepted and yields a binding
// that never sticks. Only Direction is defaulted: in a Config literal the
// zero KeepWidth and KeepHeight turn size freezing off.
type Config struct {
	// Direction is the edge tested against Offset.
	Direction Direction `json:"direction" yaml:"direction" toml:"direction"`

	// Offset is the threshold in pixels from the edge. May be negative.
	Offset float64 `json:"offset" yaml:"offset" toml:"offset"`

	// Viewport is the minimum viewport width for the binding to register.
	Viewport float64 `json:"viewport" yaml:"viewport" toml:"viewport" validate:"gte=0"`

	// KeepWidth and KeepHeight freeze the measured size as inline
	// overrides while stuck.
	KeepWidth  bool `json:"keep_width" yaml:"keep_width" toml:"keep_width"`
	KeepHeight bool `json:"keep_height" yaml:"keep_height" toml:"keep_height"`
}

// DefaultConfig returns the default sticky configuration: top edge, zero
// offset, no viewport gate, width and height kept.
func DefaultConfig() Config {
	return Config{
		Direction:  DirectionTop,
		KeepWidth:  true,
		KeepHeight: true,
	}
}

// Validate checks the config's field constraints.
func (c Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	return nil
}

// withDefaults fills in the zero Direction.
func (c Config) withDefaults() Config {
	if c.Direction == "" {
		c.Direction = DirectionTop
	}
	return c
}

// px formats a pixel length the way stylesheets expect it: "50px", "12.5px".
func px(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64) + "px"
}
