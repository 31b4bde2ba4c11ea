package cli

import (
	"fmt"
	"sort"
	"strings"

	"github.com/spf13/cobra"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Summarize a previously compiled dataset",
	Long: `Read the flat training data file from the output directory and print
entry counts per category, without re-running the extractors.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if Reader == nil {
			return fmt.Errorf("dataset reader not initialized")
		}

		entries, err := Reader.ReadFlats()
		if err != nil {
			return fmt.Errorf("reading dataset: %w", err)
		}

		counts := make(map[string]int)
		for _, e := range entries {
			category, _, _ := strings.Cut(e.Source, ":")
			if category == "" {
				category = "unknown"
			}
			counts[category]++
		}

		categories := make([]string, 0, len(counts))
		for c := range counts {
			categories = append(categories, c)
		}
		sort.Slice(categories, func(i, j int) bool {
			if counts[categories[i]] != counts[categories[j]] {
				return counts[categories[i]] > counts[categories[j]]
			}
			return categories[i] < categories[j]
		})

		fmt.Println(reportTitleStyle.Render(" Dataset Stats "))
		fmt.Println()
		for _, c := range categories {
			fmt.Printf("  %s %s\n",
				categoryStyle.Render(fmt.Sprintf("%-12s", c)),
				countStyle.Render(fmt.Sprintf("%5d", counts[c])),
			)
		}
		fmt.Printf("\n  Total: %d entries\n", len(entries))

		return nil
	},
}

func init() {
	rootCmd.AddCommand(statsCmd)
}
