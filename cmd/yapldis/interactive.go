package main

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/wippyai/yapl-disasm/disasm"
	"github.com/wippyai/yapl-disasm/yapl"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4")).
			Padding(0, 1)

	funcStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#98FB98"))

	offsetStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#87CEEB"))

	selectedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B"))

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#666666"))
)

type modelState int

const (
	stateSelectFunc modelState = iota
	stateViewListing
)

type funcEntry struct {
	name   string
	offset uint32
	length uint32
}

type interactiveModel struct {
	err      error
	loader   *yapl.Loader
	filename string
	funcs    []funcEntry
	visible  []int
	filter   textinput.Model
	view     viewport.Model
	selected int
	width    int
	height   int
	ready    bool
	mixed    bool
	state    modelState
}

type loadedMsg struct {
	err    error
	loader *yapl.Loader
	funcs  []funcEntry
	mixed  bool
}

func newInteractiveModel(filename string) *interactiveModel {
	filter := textinput.New()
	filter.Placeholder = "filter"
	filter.Prompt = "/"
	filter.CharLimit = 64

	return &interactiveModel{
		filename: filename,
		filter:   filter,
		state:    stateSelectFunc,
	}
}

func runInteractive(filename string) error {
	m := newInteractiveModel(filename)
	p := tea.NewProgram(m, tea.WithAltScreen())
	_, err := p.Run()
	return err
}

func (m *interactiveModel) Init() tea.Cmd {
	return m.loadModule
}

func (m *interactiveModel) loadModule() tea.Msg {
	l, err := yapl.Open(m.filename)
	if err != nil {
		return loadedMsg{err: err}
	}
	if err := l.Load(); err != nil {
		l.Close()
		return loadedMsg{err: err}
	}

	if l.Mixed() {
		return loadedMsg{
			loader: l,
			mixed:  true,
			funcs:  []funcEntry{{name: "<template body>", length: l.CodeSize()}},
		}
	}

	var funcs []funcEntry
	for _, name := range l.Functions() {
		span, err := l.ResolveSpan(name)
		if err != nil {
			l.Close()
			return loadedMsg{err: err}
		}
		funcs = append(funcs, funcEntry{name: name, offset: span.Offset, length: span.Length})
	}
	return loadedMsg{loader: l, funcs: funcs}
}

func (m *interactiveModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case loadedMsg:
		m.err = msg.err
		m.loader = msg.loader
		m.funcs = msg.funcs
		m.mixed = msg.mixed
		m.refilter()
		return m, nil

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.view = viewport.New(msg.Width, msg.Height-4)
		m.ready = true
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m, nil
}

func (m *interactiveModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.filter.Focused() {
		switch msg.String() {
		case "enter", "esc":
			m.filter.Blur()
		case "ctrl+c":
			return m.quit()
		default:
			var cmd tea.Cmd
			m.filter, cmd = m.filter.Update(msg)
			m.refilter()
			return m, cmd
		}
		return m, nil
	}

	// The viewport handles its own scrolling keys.
	if m.state == stateViewListing {
		switch msg.String() {
		case "ctrl+c", "q":
			return m.quit()
		case "esc":
			m.state = stateSelectFunc
			return m, nil
		}
		var cmd tea.Cmd
		m.view, cmd = m.view.Update(msg)
		return m, cmd
	}

	switch msg.String() {
	case "ctrl+c", "q":
		return m.quit()

	case "up", "k":
		if m.selected > 0 {
			m.selected--
		}

	case "down", "j":
		if m.selected < len(m.visible)-1 {
			m.selected++
		}

	case "/":
		m.filter.Focus()
		return m, textinput.Blink

	case "enter":
		if len(m.visible) > 0 {
			m.showListing(m.funcs[m.visible[m.selected]])
		}

	case "esc":
		if m.filter.Value() != "" {
			m.filter.SetValue("")
			m.refilter()
		}
	}

	return m, nil
}

func (m *interactiveModel) quit() (tea.Model, tea.Cmd) {
	if m.loader != nil {
		m.loader.Close()
	}
	return m, tea.Quit
}

// refilter recomputes the visible entries from the filter text.
func (m *interactiveModel) refilter() {
	needle := strings.ToLower(m.filter.Value())
	m.visible = m.visible[:0]
	for i, fn := range m.funcs {
		if needle == "" || strings.Contains(strings.ToLower(fn.name), needle) {
			m.visible = append(m.visible, i)
		}
	}
	if m.selected >= len(m.visible) {
		m.selected = 0
	}
}

func (m *interactiveModel) showListing(fn funcEntry) {
	var buf bytes.Buffer
	d := disasm.New(m.loader)

	var err error
	if m.mixed {
		err = d.All(&buf)
	} else {
		fmt.Fprintln(&buf, disasm.Banner(fn.name))
		err = d.Function(fn.name, &buf)
	}
	if err != nil {
		m.view.SetContent(errorStyle.Render(err.Error()))
	} else if buf.Len() == 0 {
		m.view.SetContent(helpStyle.Render("(empty function)"))
	} else {
		m.view.SetContent(buf.String())
	}

	m.view.GotoTop()
	m.state = stateViewListing
}

func (m *interactiveModel) View() string {
	if !m.ready {
		return "loading..."
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render("yapldis — " + m.filename))
	b.WriteString("\n\n")

	if m.err != nil {
		b.WriteString(errorStyle.Render("Error: " + m.err.Error()))
		b.WriteString("\n\n")
		b.WriteString(helpStyle.Render("q: quit"))
		return b.String()
	}

	switch m.state {
	case stateSelectFunc:
		m.viewSelect(&b)
	case stateViewListing:
		b.WriteString(m.view.View())
		b.WriteString("\n")
		b.WriteString(helpStyle.Render("↑/↓: scroll • esc: back • q: quit"))
	}

	return b.String()
}

func (m *interactiveModel) viewSelect(b *strings.Builder) {
	if m.filter.Focused() || m.filter.Value() != "" {
		b.WriteString(m.filter.View())
		b.WriteString("\n\n")
	}

	if len(m.visible) == 0 {
		b.WriteString(helpStyle.Render("(no functions)"))
		b.WriteString("\n")
	}

	for row, i := range m.visible {
		fn := m.funcs[i]
		line := fmt.Sprintf("%-24s %s", fn.name,
			offsetStyle.Render(fmt.Sprintf("offset %d, %d bytes", fn.offset, fn.length)))
		if row == m.selected {
			b.WriteString(selectedStyle.Render("> " + fn.name))
			b.WriteString(" ")
			b.WriteString(offsetStyle.Render(fmt.Sprintf("offset %d, %d bytes", fn.offset, fn.length)))
		} else {
			b.WriteString("  ")
			b.WriteString(funcStyle.Render(line))
		}
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(helpStyle.Render("↑/↓: select • enter: disassemble • /: filter • q: quit"))
}
