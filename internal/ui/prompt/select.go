package prompt

import (
	"fmt"
	"strings"

	"charm.land/bubbles/v2/textinput"
	tea "charm.land/bubbletea/v2"
	"github.com/sahilm/fuzzy"

	"github.com/bask185/forgeport/internal/ui/styles"
)

// SelectResult holds the result of a selection prompt.
type SelectResult struct {
	Value     string
	Cancelled bool
}

// maxVisible limits how many options are rendered at once.
const maxVisible = 12

type selectModel struct {
	prompt    string
	options   []string
	filter    textinput.Model
	matches   []string
	cursor    int
	done      bool
	cancelled bool
	selected  string
}

// filterOptions ranks options against the query with fuzzy matching.
// An empty query returns all options in their original order.
func filterOptions(options []string, query string) []string {
	if strings.TrimSpace(query) == "" {
		return options
	}
	ranked := fuzzy.Find(query, options)
	matches := make([]string, len(ranked))
	for i, m := range ranked {
		matches[i] = m.Str
	}
	return matches
}

func (m selectModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m selectModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyPressMsg:
		switch msg.String() {
		case "enter":
			if len(m.matches) > 0 {
				m.selected = m.matches[m.cursor]
			}
			m.done = true
			return m, tea.Quit
		case "ctrl+c", "esc":
			m.cancelled = true
			m.done = true
			return m, tea.Quit
		case "up", "ctrl+p":
			if m.cursor > 0 {
				m.cursor--
			}
			return m, nil
		case "down", "ctrl+n":
			if m.cursor < len(m.matches)-1 {
				m.cursor++
			}
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.filter, cmd = m.filter.Update(msg)
	m.matches = filterOptions(m.options, m.filter.Value())
	if m.cursor >= len(m.matches) {
		m.cursor = 0
	}
	return m, cmd
}

func (m selectModel) View() tea.View {
	if m.done {
		return tea.NewView("")
	}

	var b strings.Builder
	fmt.Fprintf(&b, "%s\n%s\n", m.prompt, m.filter.View())

	visible := m.matches
	if len(visible) > maxVisible {
		visible = visible[:maxVisible]
	}
	for i, option := range visible {
		if i == m.cursor {
			b.WriteString(styles.AccentStyle.Render("> "+option) + "\n")
		} else {
			b.WriteString("  " + option + "\n")
		}
	}
	if len(m.matches) > maxVisible {
		b.WriteString(styles.MutedStyle.Render(fmt.Sprintf("  … %d more", len(m.matches)-maxVisible)) + "\n")
	}
	if len(m.matches) == 0 {
		b.WriteString(styles.MutedStyle.Render("  no matches") + "\n")
	}

	return tea.NewView(b.String())
}

// Select shows a fuzzy-filterable list selection prompt.
func Select(prompt string, options []string) (SelectResult, error) {
	if len(options) == 0 {
		return SelectResult{Cancelled: true}, nil
	}

	ti := textinput.New()
	ti.Placeholder = "type to filter"
	ti.Focus()
	ti.SetWidth(40)

	model := selectModel{
		prompt:  prompt,
		options: options,
		filter:  ti,
		matches: options,
	}
	finalModel, err := runProgram(model)
	if err != nil {
		return SelectResult{}, err
	}
	m := finalModel.(selectModel)
	if m.cancelled || m.selected == "" {
		return SelectResult{Cancelled: true}, nil
	}
	return SelectResult{Value: m.selected}, nil
}
