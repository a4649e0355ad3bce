package stick

import (
	"context"
	"errors"
	"fmt"
	"time"
)

// Manifest declares a page's bindings by element identifier.
//
//	sticky:
//	  - id: header
//	    offset: 50
//	    viewport: 768
//	active:
//	  - id: nav-intro
//	    subject: intro
type Manifest struct {
	Sticky []StickyRule `json:"sticky" yaml:"sticky" toml:"sticky" validate:"dive"`
	Active []ActiveRule `json:"active" yaml:"active" toml:"active" validate:"dive"`
}

// StickyRule declares one sticky binding. Unset KeepWidth/KeepHeight
// default to true.
type StickyRule struct {
	ID         string    `json:"id" yaml:"id" toml:"id" validate:"required"`
	Direction  Direction `json:"direction" yaml:"direction" toml:"direction" validate:"omitempty,oneof=top left right bottom"`
	Offset     float64   `json:"offset" yaml:"offset" toml:"offset"`
	Viewport   float64   `json:"viewport" yaml:"viewport" toml:"viewport" validate:"gte=0"`
	KeepWidth  *bool     `json:"keep_width" yaml:"keep_width" toml:"keep_width"`
	KeepHeight *bool     `json:"keep_height" yaml:"keep_height" toml:"keep_height"`
}

// Config merges the rule over DefaultConfig.
func (r StickyRule) Config() Config {
	cfg := DefaultConfig()
	if r.Direction != "" {
		cfg.Direction = r.Direction
	}
	cfg.Offset = r.Offset
	cfg.Viewport = r.Viewport
	if r.KeepWidth != nil {
		cfg.KeepWidth = *r.KeepWidth
	}
	if r.KeepHeight != nil {
		cfg.KeepHeight = *r.KeepHeight
	}
	return cfg
}

// ActiveRule declares one membership binding. An empty Subject observes
// the target itself.
type ActiveRule struct {
	ID      string `json:"id" yaml:"id" toml:"id" validate:"required"`
	Subject string `json:"subject" yaml:"subject" toml:"subject"`
	Axis    Axis   `json:"axis" yaml:"axis" toml:"axis" validate:"omitempty,oneof=x y"`
	Class   string `json:"class" yaml:"class" toml:"class"`
}

// Validate checks every rule in the manifest.
func (m Manifest) Validate() error {
	if err := validate.Struct(m); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	return nil
}

// Len returns the number of rules in the manifest.
func (m Manifest) Len() int {
	return len(m.Sticky) + len(m.Active)
}

// Applied is the set of bindings a manifest registered.
type Applied struct {
	Bindings []Binding
	// Skipped counts rules whose element was missing or whose viewport
	// gate was not met.
	Skipped int
}

// Close disposes every binding in the set.
func (a *Applied) Close() error {
	if a == nil {
		return nil
	}
	var errs []error
	for _, b := range a.Bindings {
		if err := b.Close(); err != nil {
			errs = append(errs, err)
		}
	}
	a.Bindings = nil
	return errors.Join(errs...)
}

// Apply registers every rule in m against doc. Rules that cannot bind on
// this page (missing element, narrow viewport) are skipped; any other
// failure closes what was registered and returns the error.
func Apply(ctx context.Context, doc Document, m Manifest, frame time.Duration, opts ...func(Binding)) (*Applied, error) {
	out := &Applied{}

	for _, rule := range m.Sticky {
		s := NewSticky(doc, ID(rule.ID), rule.Config())
		if frame > 0 {
			s.Coalesce(frame)
		}
		for _, opt := range opts {
			opt(s)
		}
		if err := s.Start(ctx); err != nil {
			if skippable(err) {
				out.Skipped++
				continue
			}
			_ = out.Close() //nolint:errcheck // Bindings close without error
			return nil, fmt.Errorf("sticky #%s: %w", rule.ID, err)
		}
		out.Bindings = append(out.Bindings, s)
	}

	for _, rule := range m.Active {
		var subject Target
		if rule.Subject != "" {
			subject = ID(rule.Subject)
		}
		a := NewActive(doc, ID(rule.ID), subject, rule.Axis, rule.Class)
		if frame > 0 {
			a.Coalesce(frame)
		}
		for _, opt := range opts {
			opt(a)
		}
		if err := a.Start(ctx); err != nil {
			if skippable(err) {
				out.Skipped++
				continue
			}
			_ = out.Close() //nolint:errcheck // Bindings close without error
			return nil, fmt.Errorf("active #%s: %w", rule.ID, err)
		}
		out.Bindings = append(out.Bindings, a)
	}

	return out, nil
}

// WithBindingMetrics returns an Apply option that attaches provider to
// every binding before it starts.
func WithBindingMetrics(provider MetricsProvider) func(Binding) {
	return func(b Binding) {
		switch v := b.(type) {
		case *Sticky:
			v.Metrics(provider)
		case *Active:
			v.Metrics(provider)
		}
	}
}

func skippable(err error) bool {
	return errors.Is(err, ErrElementNotFound) || errors.Is(err, ErrViewportTooNarrow)
}
