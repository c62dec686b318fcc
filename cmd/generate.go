package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/harwatch/hardiff/hargen"
)

var (
	genEntryCount int
	genSeed       int64
	genHost       string
	genBefore     string
	genAfter      string
	genRegress    float64
	genDrift      float64
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate a matched before/after HAR capture pair",
	Long: `Generate a pair of HAR captures sharing the same URL set, where the
"after" capture carries drifted timings and a configurable fraction of
deliberately regressed requests. Useful for trying out the comparison
pipeline without real browser recordings.

Examples:
  hardiff generate -c 50 -o before.har -a after.har
  hardiff generate --seed 42 --regress 0.5 --host shop.example.com`,
	RunE: runGenerate,
}

func init() {
	rootCmd.AddCommand(generateCmd)

	generateCmd.Flags().IntVarP(&genEntryCount, "entries", "c", 25, "Number of entries per capture")
	generateCmd.Flags().Int64Var(&genSeed, "seed", 0, "Random seed for reproducibility (0 = use current time)")
	generateCmd.Flags().StringVar(&genHost, "host", "api.example.com", "Host used in generated URLs")
	generateCmd.Flags().StringVarP(&genBefore, "before", "o", "before.har", "Before capture destination")
	generateCmd.Flags().StringVarP(&genAfter, "after", "a", "after.har", "After capture destination")
	generateCmd.Flags().Float64Var(&genRegress, "regress", 0.3, "Fraction of URLs to deliberately slow down")
	generateCmd.Flags().Float64Var(&genDrift, "drift", 0.1, "Maximum random per-phase timing drift")
}

func runGenerate(cmd *cobra.Command, args []string) error {
	opts := hargen.PairOptions{
		EntryCount:      genEntryCount,
		Seed:            genSeed,
		Host:            genHost,
		RegressionRatio: genRegress,
		DriftPercent:    genDrift,
	}

	fmt.Printf("Generating capture pair with %d entries...\n", genEntryCount)

	result, err := hargen.GeneratePair(genBefore, genAfter, opts)
	if err != nil {
		return fmt.Errorf("failed to generate capture pair: %w", err)
	}

	fmt.Printf("\n✓ Generated %s and %s\n", result.BeforePath, result.AfterPath)
	fmt.Printf("  Entries per capture: %d\n", result.TotalEntries)
	fmt.Printf("  Regressed URLs:      %d\n", len(result.Regressed))
	for _, url := range result.Regressed {
		fmt.Printf("    • %s\n", url)
	}

	return nil
}
