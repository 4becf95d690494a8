package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/alignlab/structlayout"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4")).
			Padding(0, 1)

	fieldStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#98FB98"))

	dimStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#87CEEB"))

	selectedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4"))

	resultStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#90EE90"))

	warnStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFB86C"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B"))

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#666666"))
)

type interactiveModel struct {
	err      error
	layout   *structlayout.Layout
	fields   []structlayout.FieldSpec
	input    textinput.Model
	selected int
	state    modelState
}

type modelState int

const (
	stateBrowse modelState = iota
	stateAddField
)

func newInteractiveModel(fields []structlayout.FieldSpec) *interactiveModel {
	m := &interactiveModel{
		fields: fields,
		state:  stateBrowse,
	}
	m.recompute()
	return m
}

func (m *interactiveModel) recompute() {
	if len(m.fields) == 0 {
		m.layout = nil
		m.err = nil
		return
	}
	m.layout, m.err = structlayout.Compute(m.fields)
}

func (m *interactiveModel) Init() tea.Cmd {
	return nil
}

func (m *interactiveModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	if m.state == stateAddField {
		switch keyMsg.String() {
		case "ctrl+c":
			return m, tea.Quit

		case "enter":
			parsed, err := parseFields(m.input.Value())
			if err != nil {
				m.err = err
				return m, nil
			}
			m.fields = append(m.fields, parsed...)
			m.selected = len(m.fields) - 1
			m.state = stateBrowse
			m.recompute()
			return m, nil

		case "esc":
			m.state = stateBrowse
			m.recompute()
			return m, nil
		}

		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd
	}

	switch keyMsg.String() {
	case "ctrl+c", "q":
		return m, tea.Quit

	case "up", "k":
		if m.selected > 0 {
			m.selected--
		}

	case "down", "j":
		if m.selected < len(m.fields)-1 {
			m.selected++
		}

	case "K", "shift+up":
		if m.selected > 0 {
			m.fields[m.selected-1], m.fields[m.selected] = m.fields[m.selected], m.fields[m.selected-1]
			m.selected--
			m.recompute()
		}

	case "J", "shift+down":
		if m.selected < len(m.fields)-1 {
			m.fields[m.selected+1], m.fields[m.selected] = m.fields[m.selected], m.fields[m.selected+1]
			m.selected++
			m.recompute()
		}

	case "d", "x":
		if len(m.fields) > 0 {
			m.fields = append(m.fields[:m.selected], m.fields[m.selected+1:]...)
			if m.selected >= len(m.fields) && m.selected > 0 {
				m.selected--
			}
			m.recompute()
		}

	case "r":
		m.fields = structlayout.Repack(m.fields)
		m.selected = 0
		m.recompute()

	case "a", "enter":
		ti := textinput.New()
		ti.Placeholder = "name:size[:align]"
		ti.Prompt = "field: "
		ti.Width = 40
		ti.Focus()
		m.input = ti
		m.state = stateAddField
	}

	return m, nil
}

func (m *interactiveModel) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("Struct Layout Explorer"))
	b.WriteString("\n\n")

	if len(m.fields) == 0 {
		b.WriteString(helpStyle.Render("No fields yet. Press a to add one."))
		b.WriteString("\n\n")
	}

	for i, f := range m.fields {
		line := fmt.Sprintf("%s  %d bytes, align %d", f.Name, f.Size, f.Align)
		if i == m.selected && m.state == stateBrowse {
			b.WriteString(selectedStyle.Render("> " + line))
		} else {
			b.WriteString("  " + fieldStyle.Render(f.Name) + dimStyle.Render(
				fmt.Sprintf("  %d bytes, align %d", f.Size, f.Align)))
		}
		b.WriteString("\n")
	}
	b.WriteString("\n")

	if m.state == stateAddField {
		b.WriteString(m.input.View())
		b.WriteString("\n\n")
		b.WriteString(helpStyle.Render("enter add • esc cancel"))
		if m.err != nil {
			b.WriteString("\n")
			b.WriteString(errorStyle.Render(fmt.Sprintf("Error: %v", m.err)))
		}
		return b.String()
	}

	switch {
	case m.err != nil:
		b.WriteString(errorStyle.Render(fmt.Sprintf("Error: %v", m.err)))
		b.WriteString("\n")
	case m.layout != nil:
		b.WriteString(resultStyle.Render(fmt.Sprintf(
			"size %d • align %d • padding %d", m.layout.Size, m.layout.Align, m.layout.TotalPadding())))
		b.WriteString("\n\n")
		if m.layout.Size <= byteMapLimit {
			b.WriteString(dimStyle.Render(renderByteMap(m.layout)))
		}
	}

	b.WriteString("\n")
	b.WriteString(helpStyle.Render("↑/↓ select • K/J move • a add • d delete • r repack • q quit"))

	return b.String()
}

func runInteractive(fields []structlayout.FieldSpec) error {
	p := tea.NewProgram(newInteractiveModel(fields), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
