package cmd

import (
	"fmt"
	"io"

	tea "github.com/charmbracelet/bubbletea/v2"
	"github.com/spf13/cobra"

	"github.com/harwatch/hardiff/capture"
	"github.com/harwatch/hardiff/delta"
	"github.com/harwatch/hardiff/tui"
)

var tuiCmd = &cobra.Command{
	Use:   "tui <before.har> <after.har>",
	Short: "Browse a comparison report in the terminal UI",
	Long: `Run the comparison and browse the ranked rows interactively instead of
writing artifacts. Navigate the table with the arrow keys, press enter
for the per-phase breakdown of the selected URL, esc to close it and
q to quit.`,
	Args: cobra.ExactArgs(2),
	Example: `  hardiff tui before.har after.har
  hardiff tui before.har after.har --domain api.example.com`,
	RunE: runTUI,
}

func init() {
	rootCmd.AddCommand(tuiCmd)

	tuiCmd.Flags().IntVarP(&topN, "top", "n", delta.DefaultTopN, "Number of ranked rows to browse")
	tuiCmd.Flags().StringVarP(&domainFilter, "domain", "d", "", "Keep only entries whose URL contains this substring")
	tuiCmd.Flags().IntVarP(&statusFilter, "status", "s", 0, "Keep only entries with this exact response status (0 = all)")
}

func runTUI(cmd *cobra.Command, args []string) error {
	for _, path := range args {
		if err := ValidateCaptureFile(path); err != nil {
			return err
		}
	}

	opts, err := buildOptions(cmd)
	if err != nil {
		return err
	}
	opts.SkipArtifacts = true

	// the summary goes to the TUI, not the terminal scrollback
	comparator := delta.NewComparator(capture.NewFileLoader(), nil, io.Discard)
	report, err := comparator.Compare(args[0], args[1], opts)
	if err != nil {
		return err
	}

	if report.Empty() {
		fmt.Println("No common URLs found between the two captures.")
		return nil
	}

	return LaunchTUI(report)
}

// LaunchTUI opens the interactive report browser.
func LaunchTUI(report *delta.Report) error {
	model := tui.NewReportModel(report)

	p := tea.NewProgram(model, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("error running TUI: %w", err)
	}

	return nil
}
