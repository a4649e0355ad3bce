// Command stickdemo scrolls a virtual page in the terminal with a sticky
// header and nav markers that track the section under the top edge.
//
// Usage:
//
//	stickdemo [-manifest bindings.yaml] [-frame 16ms] [-log stickdemo.log] [-level debug]
//
// Without -manifest the header and nav bindings are registered directly.
// With it, bindings come from the manifest and are re-registered whenever
// the file changes.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/zoobzio/capitan"

	"github.com/zoobzio/stick"
	"github.com/zoobzio/stick/page"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, "stickdemo:", err)
		os.Exit(1)
	}
}

func run() error {
	fs := flag.NewFlagSet("stickdemo", flag.ExitOnError)
	manifest := fs.String("manifest", "", "binding manifest (.json, .yaml or .toml)")
	frame := fs.Duration("frame", 0, "coalesce scroll notifications to one evaluation per frame (0 = every notification)")
	logPath := fs.String("log", "stickdemo.log", "log file path")
	level := fs.String("level", "info", "log level: debug, info, warn, error")
	if err := fs.Parse(os.Args[1:]); err != nil {
		return err
	}

	logger, closeLog := newLogger(*logPath, *level)
	defer closeLog()
	hookSignals(logger)
	defer capitan.Shutdown()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	doc, lines := buildPage(pageWidth, 22)

	if *manifest != "" {
		r := stick.NewReloader(doc, stick.NewFileWatcher(*manifest)).
			Codec(stick.CodecFor(*manifest)).
			Frame(*frame)
		if err := r.Start(ctx); err != nil {
			logger.Error("initial manifest rejected", "path", *manifest, "error", err)
		}
		defer r.Close()
	} else {
		applied, err := registerDefaults(ctx, doc, *frame)
		if err != nil {
			return err
		}
		defer applied.Close()
	}

	p := tea.NewProgram(newModel(doc, lines, *frame), tea.WithAltScreen())
	_, err := p.Run()
	return err
}

// registerDefaults binds the header and one nav marker per section.
func registerDefaults(ctx context.Context, doc *page.Document, frame time.Duration) (*stick.Applied, error) {
	m := stick.Manifest{
		Sticky: []stick.StickyRule{{ID: "header"}},
	}
	for i := 1; i <= sectionCount; i++ {
		m.Active = append(m.Active, stick.ActiveRule{ID: navID(i), Subject: sectionID(i)})
	}
	if err := m.Validate(); err != nil {
		return nil, err
	}
	return stick.Apply(ctx, doc, m, frame)
}
