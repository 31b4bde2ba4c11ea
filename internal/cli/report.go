package cli

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/gerbilkit/distill/internal/core"
	"github.com/gerbilkit/distill/internal/storage"
)

// Style definitions.
var (
	reportTitleStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(lipgloss.Color("230")).
				Background(lipgloss.Color("62")).
				Padding(0, 1)

	reportHeaderStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(lipgloss.Color("62"))

	categoryStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("141"))
	countStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("46"))
	fileStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
)

// renderReport formats the run summary: entries per category and, when
// files is non-nil, the written files with their sizes.
func renderReport(result *core.Result, files []storage.WrittenFile) string {
	var b strings.Builder

	b.WriteString(reportTitleStyle.Render(" Training Data Summary "))
	b.WriteString("\n\n")

	b.WriteString(reportHeaderStyle.Render("Entries by category"))
	b.WriteString("\n")
	for _, cc := range result.CategoryCounts() {
		b.WriteString(fmt.Sprintf("  %s %s\n",
			categoryStyle.Render(fmt.Sprintf("%-12s", cc.Category)),
			countStyle.Render(fmt.Sprintf("%5d", cc.Count)),
		))
	}
	b.WriteString(fmt.Sprintf("\n  Total: %d entries\n", len(result.Conversations)))

	if len(files) > 0 {
		b.WriteString("\n")
		b.WriteString(reportHeaderStyle.Render("Written files"))
		b.WriteString("\n")
		for _, f := range files {
			b.WriteString(fmt.Sprintf("  %s (%.1f MB)\n",
				fileStyle.Render(f.Path), float64(f.Size)/(1024*1024)))
		}
	}

	return b.String()
}
