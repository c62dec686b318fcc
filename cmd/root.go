package cmd

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/harwatch/hardiff/capture"
	"github.com/harwatch/hardiff/delta"
	"github.com/harwatch/hardiff/export"
)

var (
	verbose      bool
	topN         int
	domainFilter string
	statusFilter int
	chartPath    string
	csvPath      string
	jsonPath     string
	noArtifacts  bool
	Logger       *slog.Logger

	rootCmd = &cobra.Command{
		Use:   "hardiff <before.har> <after.har>",
		Short: "Compare request latency between two HAR captures",
		Long: `Hardiff ingests two HAR captures of the same set of requests taken at
different points in time and produces a comparative latency report:
per-URL timing deltas, a ranked list of the most regressed and improved
requests, and exported artifacts (chart, CSV, JSON) for review.`,
		Args: cobra.ExactArgs(2),
		Example: `  hardiff before.har after.har
  hardiff before.har after.har --top 10 --domain api.example.com
  hardiff before.har after.har -s 200 --csv /tmp/slowest.csv`,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			setupLogger()
		},
		RunE:         runCompare,
		SilenceUsage: true,
	}
)

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose logging")

	rootCmd.Flags().IntVarP(&topN, "top", "n", delta.DefaultTopN, "Number of ranked rows to report")
	rootCmd.Flags().StringVarP(&domainFilter, "domain", "d", "", "Keep only entries whose URL contains this substring")
	rootCmd.Flags().IntVarP(&statusFilter, "status", "s", 0, "Keep only entries with this exact response status (0 = all)")
	rootCmd.Flags().StringVar(&chartPath, "chart", delta.DefaultChartPath, "Chart artifact destination")
	rootCmd.Flags().StringVar(&csvPath, "csv", delta.DefaultCSVPath, "CSV artifact destination")
	rootCmd.Flags().StringVar(&jsonPath, "json", delta.DefaultJSONPath, "JSON artifact destination")
	rootCmd.Flags().BoolVar(&noArtifacts, "no-artifacts", false, "Print the summary only, write no files")

	// will be reconfigured in PersistentPreRun based on flags
	setupLogger()
}

func runCompare(cmd *cobra.Command, args []string) error {
	for _, path := range args {
		if err := ValidateCaptureFile(path); err != nil {
			return err
		}
	}

	opts, err := buildOptions(cmd)
	if err != nil {
		return err
	}

	logger := GetLogger()
	logger.Debug("comparing captures",
		"before", args[0],
		"after", args[1],
		"top", opts.TopN,
		"domain_filter", opts.DomainFilter,
		"status_filter", opts.StatusFilter)

	comparator := delta.NewComparator(capture.NewFileLoader(), export.NewWriter(), os.Stdout)
	report, err := comparator.Compare(args[0], args[1], opts)
	if err != nil {
		return err
	}

	if report.Empty() {
		logger.Info("no common URLs between captures, no artifacts written")
		return nil
	}

	logger.Info("comparison complete",
		"run_id", report.RunID,
		"shared_urls", report.SharedURLs,
		"reported_rows", len(report.Rows),
		"artifacts", report.Artifacts)

	return nil
}

// buildOptions merges built-in defaults, the optional config file and
// any flags the user actually set, in that order.
func buildOptions(cmd *cobra.Command) (delta.Options, error) {
	opts := delta.DefaultOptions()

	cfg, err := LoadConfig(ConfigFileName)
	if err != nil {
		return opts, err
	}
	if cfg != nil {
		cfg.Apply(&opts)
	}

	flags := cmd.Flags()
	if flags.Changed("top") {
		opts.TopN = topN
	}
	if flags.Changed("domain") {
		opts.DomainFilter = domainFilter
	}
	if flags.Changed("status") {
		opts.StatusFilter = statusFilter
	}
	if flags.Changed("chart") {
		opts.ChartPath = chartPath
	}
	if flags.Changed("csv") {
		opts.CSVPath = csvPath
	}
	if flags.Changed("json") {
		opts.JSONPath = jsonPath
	}
	if noArtifacts {
		opts.SkipArtifacts = true
	}

	return opts, nil
}

// setupLogger configures the global slog logger based on the verbose flag
func setupLogger() {
	var opts *slog.HandlerOptions

	if verbose {
		opts = &slog.HandlerOptions{
			Level:     slog.LevelDebug,
			AddSource: true,
		}
	} else {
		opts = &slog.HandlerOptions{
			Level: slog.LevelInfo,
		}
	}

	handler := slog.NewTextHandler(os.Stderr, opts)
	Logger = slog.New(handler)
	slog.SetDefault(Logger)
}

// GetLogger returns the global logger instance
func GetLogger() *slog.Logger {
	if Logger == nil {
		setupLogger()
	}
	return Logger
}

// ValidateCaptureFile checks if the provided capture file exists and is
// accessible. Checks the file exists, and it is not a directory.
func ValidateCaptureFile(path string) error {
	if path == "" {
		return fmt.Errorf("capture file path is required")
	}

	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return &capture.NotFoundError{Path: path}
		}
		return fmt.Errorf("error accessing capture file: %w", err)
	}

	if info.IsDir() {
		return fmt.Errorf("provided path is a directory, not a file: %s", path)
	}

	return nil
}
