package main

import (
	"fmt"
	"strings"

	"github.com/zoobzio/stick/page"
)

// Page geometry in terminal cells: one row is one pixel.
const (
	pageWidth    = 80
	heroHeight   = 6
	headerY      = heroHeight
	sectionY     = headerY + 2
	sectionRows  = 20
	sectionCount = 5
)

// buildPage lays out a hero block, a one-row header carrying a nav marker
// per section, and the sections themselves.
func buildPage(width, height float64) (*page.Document, []string) {
	doc := page.New(width, height)
	doc.Add("hero", page.Box{Width: pageWidth, Height: heroHeight})
	doc.Add("header", page.Box{Y: headerY, Width: pageWidth, Height: 1})

	lines := make([]string, 0, sectionY+sectionCount*sectionRows)
	lines = append(lines,
		"",
		"  stick demo",
		"",
		"  scroll with ↑/↓ or j/k; the header sticks once it reaches the top",
		"  and each nav marker lights up while its section spans the top row",
		"",
	)
	lines = append(lines, "", "") // header row, spacer

	for i := 1; i <= sectionCount; i++ {
		id := sectionID(i)
		y := float64(sectionY + (i-1)*sectionRows)
		doc.Add(id, page.Box{Y: y, Width: pageWidth, Height: sectionRows})
		doc.Add(navID(i), page.Box{X: float64(10 * i), Y: headerY, Width: 6, Height: 1})

		lines = append(lines, fmt.Sprintf("  ── section %d %s", i, strings.Repeat("─", pageWidth-16)))
		for row := 1; row < sectionRows; row++ {
			lines = append(lines, fmt.Sprintf("  §%d line %02d", i, row))
		}
	}
	return doc, lines
}

func navID(i int) string {
	return fmt.Sprintf("nav-%d", i)
}

func sectionID(i int) string {
	return fmt.Sprintf("sec-%d", i)
}
