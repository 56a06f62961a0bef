// Package tui implements the interactive symbol picker, a text box bound to
// a scrollable list of ranked matches.
package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/etnz/tickpick"
)

// Run opens the picker over the directory and blocks until the user confirms
// or aborts. It returns the chosen symbol, or "" when nothing was chosen.
func Run(dir *tickpick.Directory) (string, error) {
	p := tea.NewProgram(newModel(dir), tea.WithAltScreen())
	out, err := p.Run()
	if err != nil {
		return "", err
	}
	m, ok := out.(model)
	if !ok || m.aborted {
		return "", nil
	}
	return m.choice, nil
}

type model struct {
	theme Theme
	dir   *tickpick.Directory

	input   textinput.Model
	matches []tickpick.Listing
	cursor  int // highlighted row, -1 when none
	offset  int // first visible row
	height  int // visible rows

	choice  string
	aborted bool
}

func newModel(dir *tickpick.Directory) model {
	ti := textinput.New()
	ti.Placeholder = "symbol or name"
	ti.Prompt = "> "
	ti.CharLimit = 64
	ti.Focus()

	return model{
		theme:   DefaultTheme(),
		dir:     dir,
		input:   ti,
		matches: dir.Search(""),
		cursor:  -1,
		height:  10,
	}
}

func (m model) Init() tea.Cmd { return textinput.Blink }

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		// borders, title, query box and help lines take the rest.
		m.height = max(msg.Height-9, 1)
		m.scroll()
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			m.aborted = true
			return m, tea.Quit

		case "up":
			if m.cursor > 0 {
				m.cursor--
			}
			m.scroll()
			return m, nil

		case "down":
			if m.cursor < len(m.matches)-1 {
				m.cursor++
			}
			m.scroll()
			return m, nil

		case "tab":
			// Fill the query with the highlighted symbol, like a single
			// click in a list box.
			if m.cursor >= 0 && m.cursor < len(m.matches) {
				m.input.SetValue(m.matches[m.cursor].Symbol)
				m.input.CursorEnd()
			}
			return m, nil

		case "enter":
			m.choice = m.selected()
			if m.choice == "" {
				return m, nil
			}
			return m, tea.Quit
		}
	}

	var cmd tea.Cmd
	before := m.input.Value()
	m.input, cmd = m.input.Update(msg)
	if m.input.Value() != before {
		m.refresh()
	}
	return m, cmd
}

// selected returns the symbol to confirm: the highlighted row when there is
// one, the typed text otherwise.
func (m model) selected() string {
	if m.cursor >= 0 && m.cursor < len(m.matches) {
		return m.matches[m.cursor].Symbol
	}
	return strings.ToUpper(strings.TrimSpace(m.input.Value()))
}

// refresh re-runs the search for the current query and resets the selection.
func (m *model) refresh() {
	m.matches = m.dir.Search(m.input.Value())
	m.cursor = -1
	m.offset = 0
}

// scroll keeps the highlighted row inside the visible window.
func (m *model) scroll() {
	if m.cursor < 0 {
		m.offset = 0
		return
	}
	if m.cursor < m.offset {
		m.offset = m.cursor
	}
	if m.cursor >= m.offset+m.height {
		m.offset = m.cursor - m.height + 1
	}
}

func (m model) View() string {
	var b strings.Builder
	b.WriteString(m.theme.Title.Render("Stock Search"))
	b.WriteString("\n")
	b.WriteString(m.theme.Help.Render(fmt.Sprintf("%d symbols, directory of %s", m.dir.Len(), m.dir.On())))
	b.WriteString("\n\n")
	b.WriteString(m.input.View())
	b.WriteString("\n\n")

	end := min(m.offset+m.height, len(m.matches))
	for i := m.offset; i < end; i++ {
		label := m.matches[i].Label()
		if i == m.cursor {
			b.WriteString(m.theme.Selected.Render("▸ " + label))
		} else {
			b.WriteString("  " + label)
		}
		b.WriteString("\n")
	}
	if len(m.matches) == 0 {
		b.WriteString(m.theme.Help.Render("  no match"))
		b.WriteString("\n")
	}

	help := m.theme.Help.Render("↑/↓ select • tab fill • enter confirm • esc quit")
	return m.theme.Card.Render(b.String() + "\n" + help)
}
