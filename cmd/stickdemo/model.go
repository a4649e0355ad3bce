package main

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/zoobzio/stick"
	"github.com/zoobzio/stick/page"
)

var (
	headerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#FFFFFF")).Background(lipgloss.Color("#3D6DFF"))
	stuckStyle  = headerStyle.Bold(true)
	navStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#6C757D"))
	activeStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#2AA876")).Bold(true)
	statusStyle = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "240", Dark: "245"})
)

type keyMap struct {
	Up       key.Binding
	Down     key.Binding
	PageUp   key.Binding
	PageDown key.Binding
	Top      key.Binding
	Bottom   key.Binding
	Quit     key.Binding
}

func defaultKeys() keyMap {
	return keyMap{
		Up:       key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		Down:     key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		PageUp:   key.NewBinding(key.WithKeys("pgup", "b"), key.WithHelp("pgup", "page up")),
		PageDown: key.NewBinding(key.WithKeys("pgdown", " ", "f"), key.WithHelp("pgdn", "page down")),
		Top:      key.NewBinding(key.WithKeys("home", "g"), key.WithHelp("g", "top")),
		Bottom:   key.NewBinding(key.WithKeys("end", "G"), key.WithHelp("G", "bottom")),
		Quit:     key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

func (k keyMap) short() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.PageDown, k.Top, k.Quit}
}

// frameMsg repaints while coalesced bindings settle off the UI goroutine.
type frameMsg time.Time

type model struct {
	doc   *page.Document
	lines []string
	keys  keyMap
	help  help.Model
	frame time.Duration

	width  int
	height int
}

func newModel(doc *page.Document, lines []string, frame time.Duration) model {
	return model{
		doc:    doc,
		lines:  lines,
		keys:   defaultKeys(),
		help:   help.New(),
		frame:  frame,
		width:  int(doc.ViewportWidth()),
		height: int(doc.ViewportHeight()) + 2,
	}
}

func (m model) tick() tea.Cmd {
	if m.frame <= 0 {
		return nil
	}
	return tea.Tick(m.frame, func(t time.Time) tea.Msg { return frameMsg(t) })
}

func (m model) Init() tea.Cmd {
	return m.tick()
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.doc.Resize(float64(msg.Width), float64(m.rows()))
		m.help.Width = msg.Width
		return m, nil

	case frameMsg:
		return m, m.tick()

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.Up):
			m.scrollBy(-1)
		case key.Matches(msg, m.keys.Down):
			m.scrollBy(1)
		case key.Matches(msg, m.keys.PageUp):
			m.scrollBy(-m.rows())
		case key.Matches(msg, m.keys.PageDown):
			m.scrollBy(m.rows())
		case key.Matches(msg, m.keys.Top):
			m.doc.ScrollTo(0, 0)
		case key.Matches(msg, m.keys.Bottom):
			m.doc.ScrollTo(0, float64(m.maxScroll()))
		}
		return m, nil
	}
	return m, nil
}

// rows is the number of page rows visible above the status lines.
func (m model) rows() int {
	return max(m.height-2, 1)
}

func (m model) maxScroll() int {
	return max(len(m.lines)-m.rows(), 0)
}

func (m model) scrollBy(n int) {
	top := int(m.doc.ScrollTop()) + n
	top = min(max(top, 0), m.maxScroll())
	m.doc.ScrollTo(0, float64(top))
}

func (m model) View() string {
	var b strings.Builder

	top := int(m.doc.ScrollTop())
	header, _ := m.doc.Get("header")
	stuck := header != nil && header.HasClass(stick.StickyClass)

	for r := 0; r < m.rows(); r++ {
		row := top + r
		switch {
		case r == 0 && stuck:
			b.WriteString(stuckStyle.Width(m.width).Render(m.headerLine(true)))
		case row == headerY && !stuck:
			b.WriteString(headerStyle.Width(m.width).Render(m.headerLine(false)))
		case row < len(m.lines):
			b.WriteString(m.lines[row])
		}
		b.WriteByte('\n')
	}

	state := stick.StateUnstuck
	if stuck {
		state = stick.StateStuck
	}
	b.WriteString(statusStyle.Render(fmt.Sprintf("scroll %d/%d  header %s", top, m.maxScroll(), state)))
	b.WriteByte('\n')
	b.WriteString(m.help.ShortHelpView(m.keys.short()))
	return b.String()
}

// headerLine renders the nav markers, highlighting active ones.
func (m model) headerLine(stuck bool) string {
	parts := make([]string, 0, sectionCount)
	for i := 1; i <= sectionCount; i++ {
		label := fmt.Sprintf("[%d]", i)
		if nav, ok := m.doc.Get(navID(i)); ok && nav.HasClass(stick.DefaultActiveClass) {
			parts = append(parts, activeStyle.Render(label))
			continue
		}
		parts = append(parts, navStyle.Render(label))
	}
	pin := " "
	if stuck {
		pin = "▲"
	}
	return pin + " " + strings.Join(parts, " ")
}
