package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/gerbilkit/distill/internal/core"
	"github.com/gerbilkit/distill/internal/storage"
)

var (
	compileDryRun bool
	compileOutput string
)

var compileCmd = &cobra.Command{
	Use:   "compile",
	Short: "Compile the corpus into training data files",
	Long: `Run every extractor over the configured corpus roots and write the
deduplicated training data files to the output directory.

Extractors over optional inputs (documentation trees, source trees)
contribute nothing when their root is missing; the three structured
corpus collections are required.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if Cfg == nil || Corpus == nil {
			return fmt.Errorf("pipeline not initialized")
		}
		if err := ConfigMgr.Validate(Cfg); err != nil {
			return err
		}

		outputDir := Cfg.Roots.Output
		if compileOutput != "" {
			outputDir = compileOutput
		}

		registry, err := core.DefaultRegistry(Corpus, Cfg, Catalog)
		if err != nil {
			return err
		}

		fmt.Printf("Compiling training data from %s\n\n", Cfg.Roots.Corpus)
		progress := func(adapter string, pairs int) {
			fmt.Printf("  %-12s %5d pairs\n", adapter, pairs)
		}

		pipeline := core.NewPipeline(registry, Cfg.Persona, Events, progress)
		result, err := pipeline.Run()
		if err != nil {
			return err
		}

		removed := result.TotalBeforeDedup - len(result.Conversations)
		fmt.Printf("\nDeduplicated %d entries (%d removed)\n", result.TotalBeforeDedup, removed)

		if compileDryRun {
			fmt.Println()
			fmt.Println(renderReport(result, nil))
			fmt.Println("Dry run: no files written.")
			return nil
		}

		writer := Writer
		if compileOutput != "" {
			writer = storage.NewDatasetWriter(outputDir)
		}

		var written []storage.WrittenFile
		conv, err := writer.WriteConversations(result.Conversations)
		if err != nil {
			return err
		}
		written = append(written, conv)

		flat, err := writer.WriteFlats(result.Flats)
		if err != nil {
			return err
		}
		written = append(written, flat)

		arr, err := writer.WriteFlatArray(result.Flats)
		if err != nil {
			return err
		}
		written = append(written, arr)

		fmt.Println()
		fmt.Println(renderReport(result, written))
		return nil
	},
}

func init() {
	compileCmd.Flags().BoolVar(&compileDryRun, "dry-run", false, "extract and report without writing output files")
	compileCmd.Flags().StringVarP(&compileOutput, "output", "o", "", "override the output directory")
	rootCmd.AddCommand(compileCmd)
}
