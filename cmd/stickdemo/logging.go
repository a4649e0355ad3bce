package main

import (
	"context"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/zoobzio/capitan"
	"github.com/zoobzio/stick"
)

// newLogger writes JSON logs to path. The terminal belongs to the UI, so
// there is no console sink; an unopenable path discards logs.
func newLogger(path, rawLevel string) (*slog.Logger, func()) {
	levelVar := &slog.LevelVar{}
	levelVar.Set(parseLevel(rawLevel))

	var (
		w       io.Writer = io.Discard
		closeFn           = func() {}
	)
	if path != "" {
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err == nil {
			if f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644); err == nil {
				w = f
				closeFn = func() { f.Close() }
			}
		}
	}

	handler := slog.NewJSONHandler(w, &slog.HandlerOptions{Level: levelVar})
	return slog.New(handler), closeFn
}

func parseLevel(raw string) slog.Level {
	switch strings.ToLower(raw) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// hookSignals forwards binding and reloader signals to logger.
func hookSignals(logger *slog.Logger) {
	capitan.Hook(stick.BindingRegistered, func(_ context.Context, e *capitan.Event) {
		el, _ := stick.KeyElement.From(e)
		logger.Info("binding registered", "element", el)
	})
	capitan.Hook(stick.BindingDisabled, func(_ context.Context, e *capitan.Event) {
		el, _ := stick.KeyElement.From(e)
		gate, _ := stick.KeyViewport.From(e)
		logger.Info("binding disabled", "element", el, "viewport", gate)
	})
	capitan.Hook(stick.ElementUnresolved, func(_ context.Context, e *capitan.Event) {
		el, _ := stick.KeyElement.From(e)
		errMsg, _ := stick.KeyError.From(e)
		logger.Warn("not a valid element or id", "element", el, "error", errMsg)
	})
	capitan.Hook(stick.StickyStateChanged, func(_ context.Context, e *capitan.Event) {
		el, _ := stick.KeyElement.From(e)
		oldState, _ := stick.KeyOldState.From(e)
		newState, _ := stick.KeyNewState.From(e)
		logger.Debug("sticky state", "element", el, "from", oldState, "to", newState)
	})
	capitan.Hook(stick.ActiveStateChanged, func(_ context.Context, e *capitan.Event) {
		el, _ := stick.KeyElement.From(e)
		newState, _ := stick.KeyNewState.From(e)
		logger.Debug("active state", "element", el, "to", newState)
	})
	capitan.Hook(stick.ReloaderStateChanged, func(_ context.Context, e *capitan.Event) {
		oldState, _ := stick.KeyOldState.From(e)
		newState, _ := stick.KeyNewState.From(e)
		logger.Info("reloader state", "from", oldState, "to", newState)
	})
	capitan.Hook(stick.ManifestValidationFailed, func(_ context.Context, e *capitan.Event) {
		errMsg, _ := stick.KeyError.From(e)
		logger.Error("manifest rejected", "error", errMsg)
	})
	capitan.Hook(stick.ManifestDecodeFailed, func(_ context.Context, e *capitan.Event) {
		errMsg, _ := stick.KeyError.From(e)
		logger.Error("manifest undecodable", "error", errMsg)
	})
	capitan.Hook(stick.ManifestApplied, func(_ context.Context, e *capitan.Event) {
		n, _ := stick.KeyBindings.From(e)
		skipped, _ := stick.KeySkipped.From(e)
		logger.Info("manifest applied", "bindings", n, "skipped", skipped)
	})
}
