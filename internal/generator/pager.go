package generator

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// PagerThreshold is the number of diff lines above which ShowDiff opens
// the pager instead of printing inline.
const PagerThreshold = 20

var (
	borderStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	titleStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("white")).Bold(true)
)

// ShowDiff prints diff to w. Long diffs open a full-screen pager when
// interactive is true.
func ShowDiff(w io.Writer, name, diff string, interactive bool) error {
	if diff == "" {
		return nil
	}

	width := TerminalWidth()
	if !interactive || strings.Count(diff, "\n") <= PagerThreshold {
		_, err := fmt.Fprint(w, Colorize(diff, width-2))
		return err
	}

	p := tea.NewProgram(newPagerModel(name, Colorize(diff, width-6)), tea.WithAltScreen(), tea.WithOutput(w))
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("failed to show diff: %w", err)
	}
	return nil
}

// pagerModel is a read-only scrollable view of one diff.
type pagerModel struct {
	name     string
	content  string
	viewport viewport.Model
	ready    bool
}

func newPagerModel(name, content string) pagerModel {
	return pagerModel{name: name, content: content}
}

func (m pagerModel) Init() tea.Cmd {
	return nil
}

func (m pagerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q", "esc", "enter":
			return m, tea.Quit
		}

	case tea.WindowSizeMsg:
		const chrome = 4 // header and footer lines
		if !m.ready {
			m.viewport = viewport.New(msg.Width, max(1, msg.Height-chrome))
			m.viewport.SetContent(m.content)
			m.ready = true
		} else {
			m.viewport.Width = msg.Width
			m.viewport.Height = max(1, msg.Height-chrome)
		}
	}

	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

func (m pagerModel) View() string {
	if !m.ready {
		return "Initializing..."
	}

	rule := borderStyle.Render(strings.Repeat("─", max(0, m.viewport.Width)))
	footer := fmt.Sprintf(" %3.f%%  [↑/↓/pgup/pgdn] Scroll    [q] Close", m.viewport.ScrollPercent()*100)

	var b strings.Builder
	b.WriteString(titleStyle.Render("Diff: "+m.name) + "\n")
	b.WriteString(rule + "\n")
	b.WriteString(m.viewport.View() + "\n")
	b.WriteString(borderStyle.Render(footer))
	return b.String()
}
