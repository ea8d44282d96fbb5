package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4")).
			Padding(0, 1)

	nameStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#98FB98"))

	kindStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#87CEEB"))

	selectedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4"))

	stepStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#90EE90"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B"))

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#666666"))
)

type modelState int

const (
	stateSelectFixture modelState = iota
	stateNarrow
)

type inspectModel struct {
	err      error
	tr       tracer
	fixtures []fixture
	trail    []string
	input    textinput.Model
	selected int
	state    modelState
}

func newInspectModel(fixtures []fixture) *inspectModel {
	return &inspectModel{
		fixtures: fixtures,
		state:    stateSelectFixture,
	}
}

func (m *inspectModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m *inspectModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			m.closeTracer()
			return m, tea.Quit

		case "q":
			if m.state == stateSelectFixture {
				m.closeTracer()
				return m, tea.Quit
			}

		case "up", "k":
			if m.state == stateSelectFixture && m.selected > 0 {
				m.selected--
			}

		case "down", "j":
			if m.state == stateSelectFixture && m.selected < len(m.fixtures)-1 {
				m.selected++
			}

		case "enter":
			switch m.state {
			case stateSelectFixture:
				tr, err := newTracer(m.fixtures[m.selected])
				if err != nil {
					m.err = err
					return m, nil
				}
				m.tr = tr
				m.trail = []string{"wrap    " + tr.current()}
				m.prepareInput()
				m.state = stateNarrow

			case stateNarrow:
				step := strings.TrimSpace(m.input.Value())
				if step == "" {
					return m, nil
				}
				line, err := m.tr.apply(step)
				if err != nil {
					m.trail = append(m.trail, errorStyle.Render(fmt.Sprintf("%-7s %v", step, err)))
				} else {
					m.trail = append(m.trail, fmt.Sprintf("%-7s %s", step, stepStyle.Render(line)))
				}
				m.input.SetValue("")
			}

		case "esc":
			if m.state == stateNarrow {
				m.closeTracer()
				m.trail = nil
				m.state = stateSelectFixture
			}
		}
	}

	if m.state == stateNarrow {
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd
	}

	return m, nil
}

func (m *inspectModel) prepareInput() {
	ti := textinput.New()
	ti.Placeholder = stepPlaceholder(m.fixtures[m.selected].Kind)
	ti.Prompt = "step: "
	ti.Width = 40
	ti.Focus()
	m.input = ti
}

func (m *inspectModel) closeTracer() {
	if m.tr != nil {
		m.tr.close()
		m.tr = nil
	}
}

func stepPlaceholder(kind string) string {
	switch kind {
	case "record":
		return "field (tag, x, y, z)"
	case "buffer":
		return "lo:hi range or index"
	default:
		return "lo:hi range"
	}
}

func (m *inspectModel) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("ownref inspect"))
	b.WriteString("\n\n")

	if m.err != nil {
		b.WriteString(errorStyle.Render(fmt.Sprintf("Error: %v", m.err)))
		b.WriteString("\n\n")
	}

	switch m.state {
	case stateSelectFixture:
		b.WriteString("Select a fixture to narrow:\n\n")
		for i, fx := range m.fixtures {
			line := nameStyle.Render(fx.Name) + "  " + kindStyle.Render(describeFixture(fx))
			if i == m.selected {
				b.WriteString(selectedStyle.Render("> " + fx.Name + "  " + describeFixture(fx)))
			} else {
				b.WriteString("  " + line)
			}
			b.WriteString("\n")
		}
		b.WriteString("\n")
		b.WriteString(helpStyle.Render("↑/↓ select • enter open • q quit"))

	case stateNarrow:
		fx := m.fixtures[m.selected]
		b.WriteString(fmt.Sprintf("Narrowing %s\n\n", nameStyle.Render(fx.Name)))
		for _, line := range m.trail {
			b.WriteString("  ")
			b.WriteString(line)
			b.WriteString("\n")
		}
		b.WriteString("\n")
		b.WriteString(m.input.View())
		b.WriteString("\n\n")
		b.WriteString(helpStyle.Render("enter apply • esc back • ctrl+c quit"))
	}

	return b.String()
}

func runInteractive(fixtures []fixture) error {
	if !term.IsTerminal(int(os.Stdout.Fd())) {
		return fmt.Errorf("interactive mode requires a terminal")
	}

	p := tea.NewProgram(newInspectModel(fixtures), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
