package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

var (
	appVersion = "dev"
	appCommit  = "none"
	appDate    = "unknown"
)

// SetVersionInfo sets the version information injected via ldflags.
func SetVersionInfo(version, commit, date string) {
	appVersion = version
	appCommit = commit
	appDate = date
}

var rootCmd = &cobra.Command{
	Use:   "distill",
	Short: "Distill a Gerbil Scheme knowledge corpus into LoRA training data",
	Long: `Distill mines a Gerbil Scheme knowledge corpus (recipe collections,
security rules, error fixes, documentation, and source trees) into
supervised fine-tuning pairs.

Each run emits the same dataset in two formats: ChatML-style
conversations and flat instruction/output records, plus an indented
JSON array for tools that cannot stream JSONL.`,
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("distill %s\ncommit: %s\nbuilt:  %s\n", appVersion, appCommit, appDate)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}
