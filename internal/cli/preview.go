package cli

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/gerbilkit/distill/pkg/models"
)

// Preview view modes.
const (
	viewList = iota
	viewDetail
)

type previewModel struct {
	entries []models.FlatEntry
	cursor  int
	top     int
	mode    int
	width   int
	height  int

	loading bool
	err     error
}

// entriesLoadedMsg carries loaded entries back to the model.
type entriesLoadedMsg struct {
	entries []models.FlatEntry
	err     error
}

// Style definitions.
var (
	previewTitleStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(lipgloss.Color("230")).
				Background(lipgloss.Color("62")).
				Padding(0, 1)

	selectedRowStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(lipgloss.Color("230")).
				Background(lipgloss.Color("240"))

	sourceStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("141"))

	detailHeaderStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(lipgloss.Color("62")).
				MarginBottom(1)

	previewHelpStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
)

func newPreviewModel() previewModel {
	return previewModel{loading: true}
}

func (m previewModel) Init() tea.Cmd {
	return loadEntries
}

func loadEntries() tea.Msg {
	if Reader == nil {
		return entriesLoadedMsg{err: fmt.Errorf("dataset reader not initialized")}
	}
	entries, err := Reader.ReadFlats()
	if err != nil {
		return entriesLoadedMsg{err: fmt.Errorf("loading dataset: %w", err)}
	}
	return entriesLoadedMsg{entries: entries}
}

func (m previewModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case "esc":
			if m.mode == viewDetail {
				m.mode = viewList
				return m, nil
			}
			return m, tea.Quit
		case "up", "k":
			if m.mode == viewList && m.cursor > 0 {
				m.cursor--
				if m.cursor < m.top {
					m.top = m.cursor
				}
			}
			return m, nil
		case "down", "j":
			if m.mode == viewList && m.cursor < len(m.entries)-1 {
				m.cursor++
				if m.cursor >= m.top+m.listRows() {
					m.top = m.cursor - m.listRows() + 1
				}
			}
			return m, nil
		case "enter":
			if m.mode == viewList && len(m.entries) > 0 {
				m.mode = viewDetail
			}
			return m, nil
		case "r":
			m.loading = true
			return m, loadEntries
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case entriesLoadedMsg:
		m.loading = false
		if msg.err != nil {
			m.err = msg.err
			return m, nil
		}
		m.entries = msg.entries
		m.err = nil
		if m.cursor >= len(m.entries) {
			m.cursor = 0
			m.top = 0
		}
		return m, nil
	}

	return m, nil
}

// listRows is the number of entry rows visible in the list view.
func (m previewModel) listRows() int {
	rows := m.height - 5
	if rows < 1 {
		rows = 1
	}
	return rows
}

func (m previewModel) View() string {
	title := previewTitleStyle.Render(" Training Data Preview ")

	if m.loading {
		return fmt.Sprintf("%s\n\n  Loading dataset...\n", title)
	}
	if m.err != nil {
		return fmt.Sprintf("%s\n\n  Error: %s\n\n%s", title, m.err,
			previewHelpStyle.Render("q: quit"))
	}
	if len(m.entries) == 0 {
		return fmt.Sprintf("%s\n\n  Dataset is empty.\n\n%s", title,
			previewHelpStyle.Render("r: reload | q: quit"))
	}

	if m.mode == viewDetail {
		return m.detailView(title)
	}
	return m.listView(title)
}

func (m previewModel) listView(title string) string {
	var b strings.Builder
	b.WriteString(title)
	b.WriteString("\n\n")

	end := m.top + m.listRows()
	if end > len(m.entries) {
		end = len(m.entries)
	}
	for i := m.top; i < end; i++ {
		e := m.entries[i]
		row := fmt.Sprintf("%s  %s", sourceStyle.Render(fmt.Sprintf("%-40s", truncateLine(e.Source, 40))),
			truncateLine(e.Instruction, m.width-45))
		if i == m.cursor {
			row = selectedRowStyle.Render("> " + row)
		} else {
			row = "  " + row
		}
		b.WriteString(row)
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(previewHelpStyle.Render(fmt.Sprintf(
		"%d/%d | j/k: move | enter: view | r: reload | q: quit",
		m.cursor+1, len(m.entries))))
	return b.String()
}

func (m previewModel) detailView(title string) string {
	e := m.entries[m.cursor]

	var b strings.Builder
	b.WriteString(title)
	b.WriteString("\n\n")
	b.WriteString(sourceStyle.Render(e.Source))
	b.WriteString("\n\n")
	b.WriteString(detailHeaderStyle.Render("Instruction"))
	b.WriteString("\n")
	b.WriteString(e.Instruction)
	b.WriteString("\n\n")
	b.WriteString(detailHeaderStyle.Render("Output"))
	b.WriteString("\n")
	b.WriteString(truncateLine(e.Output, 4000))
	b.WriteString("\n\n")
	b.WriteString(previewHelpStyle.Render("esc: back | q: quit"))
	return b.String()
}

// truncateLine shortens s to at most max characters on a rune boundary.
func truncateLine(s string, max int) string {
	if max <= 0 || len(s) <= max {
		return s
	}
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max-1]) + "…"
}

var previewCmd = &cobra.Command{
	Use:   "preview",
	Short: "Interactively browse a compiled dataset",
	Long: `Launch an interactive terminal browser over the flat training data
file. Navigate entries with j/k, open one with Enter.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if Reader == nil {
			return fmt.Errorf("dataset reader not initialized")
		}
		p := tea.NewProgram(newPreviewModel(), tea.WithAltScreen())
		_, err := p.Run()
		return err
	},
}

func init() {
	rootCmd.AddCommand(previewCmd)
}
