// Package tui replays a propagated trajectory in the terminal: the playhead
// sweeps through the samples while the recent history scrolls through an
// ASCII plot.
package tui

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"

	"github.com/san-kum/ivpsol/internal/traj"
)

const (
	graphWidth  = 80
	graphHeight = 14
	tickRate    = time.Second / 30
)

var (
	headerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("86")).Bold(true).MarginBottom(1)
	labelStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Width(10)
	valueStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
	graphStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("49")).Padding(1, 0)
	helpStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("240")).MarginTop(1)
)

type TickMsg time.Time

// Model holds the trajectory under replay and the view state.
type Model struct {
	system string
	g      *traj.Trajectory

	head     int // newest visible sample
	dim      int // state dimension on display
	showQuad bool
	playing  bool
	speed    int // samples advanced per tick
}

func NewModel(system string, g *traj.Trajectory) Model {
	return Model{
		system:  system,
		g:       g,
		head:    1,
		playing: true,
		speed:   1,
	}
}

func (m Model) Init() tea.Cmd {
	return tick()
}

func tick() tea.Cmd {
	return tea.Tick(tickRate, func(t time.Time) tea.Msg { return TickMsg(t) })
}

// Update handles input events and advances the playhead.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case " ":
			m.playing = !m.playing
		case "r":
			m.head = 1
		case "[":
			m.scrub(-m.speed)
		case "]":
			m.scrub(m.speed)
		case "tab":
			m.dim = (m.dim + 1) % len(m.g.Y[0])
		case "g":
			if m.g.Q != nil {
				m.showQuad = !m.showQuad
			}
		case "+", "=":
			if m.speed < 64 {
				m.speed *= 2
			}
		case "-":
			if m.speed > 1 {
				m.speed /= 2
			}
		}
		return m, nil

	case TickMsg:
		if m.playing {
			m.scrub(m.speed)
		}
		return m, tick()
	}
	return m, nil
}

func (m *Model) scrub(delta int) {
	m.head += delta
	if m.head < 1 {
		m.head = 1
	}
	if m.head > m.g.Len()-1 {
		m.head = m.g.Len() - 1
	}
}

// View renders the scrolling plot and the sample under the playhead.
func (m Model) View() string {
	if m.g.Len() < 2 {
		return "trajectory too short to replay\n"
	}

	start := 0
	if m.head+1 > graphWidth {
		start = m.head + 1 - graphWidth
	}
	data := make([]float64, 0, m.head+1-start)
	for i := start; i <= m.head; i++ {
		if m.showQuad {
			data = append(data, m.g.Q[i][m.dim%len(m.g.Q[0])])
		} else {
			data = append(data, m.g.Y[i][m.dim])
		}
	}

	series := fmt.Sprintf("y%d", m.dim)
	if m.showQuad {
		series = fmt.Sprintf("q%d", m.dim%len(m.g.Q[0]))
	}

	var b strings.Builder
	b.WriteString(headerStyle.Render(fmt.Sprintf("%s — %s", m.system, series)) + "\n")
	b.WriteString(graphStyle.Render(asciigraph.Plot(data,
		asciigraph.Height(graphHeight),
		asciigraph.Width(graphWidth),
	)) + "\n")

	tv, y, qv, _ := m.g.Sample(m.head)
	b.WriteString(labelStyle.Render("t") + valueStyle.Render(fmt.Sprintf("%.4f", tv)) + "\n")
	b.WriteString(labelStyle.Render("y") + valueStyle.Render(fmtVec(y)) + "\n")
	if qv != nil {
		b.WriteString(labelStyle.Render("q") + valueStyle.Render(fmtVec(qv)) + "\n")
	}

	status := "playing"
	if !m.playing {
		status = "paused"
	}
	b.WriteString(helpStyle.Render(fmt.Sprintf(
		"%s ×%d  ·  space pause  [ ] scrub  tab dim  g quads  +/- speed  r rewind  q quit",
		status, m.speed)) + "\n")
	return b.String()
}

func fmtVec(v traj.State) string {
	parts := make([]string, len(v))
	for i, x := range v {
		parts[i] = fmt.Sprintf("%.4f", x)
	}
	return "[" + strings.Join(parts, " ") + "]"
}

// Run replays the trajectory until the user quits.
func Run(system string, g *traj.Trajectory) error {
	_, err := tea.NewProgram(NewModel(system, g)).Run()
	return err
}
