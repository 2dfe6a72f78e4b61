package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/veridex/veridex/internal/pipeline"
	"github.com/veridex/veridex/internal/worker"
)

var (
	batchConcurrency int
	batchOutputDir   string
)

var batchCmd = &cobra.Command{
	Use:   "batch <file>",
	Short: "Classify many inputs from a file",
	Long: `Batch reads inputs from a file, one per line (blank lines and lines
starting with # are skipped), and classifies them concurrently. Each line is
either an article URL or a claim.`,
	Args: cobra.ExactArgs(1),
	RunE: runBatch,
}

func init() {
	batchCmd.Flags().IntVarP(&batchConcurrency, "concurrency", "c", 0, "concurrent checks (default from config)")
	batchCmd.Flags().StringVar(&batchOutputDir, "output-dir", "", "write one JSON report per input to this directory")

	rootCmd.AddCommand(batchCmd)
}

func runBatch(cmd *cobra.Command, args []string) error {
	config, err := loadConfig()
	if err != nil {
		return err
	}

	concurrency := batchConcurrency
	if concurrency <= 0 {
		concurrency = config.Concurrency.Workers
	}

	p, err := pipeline.New(config)
	if err != nil {
		return err
	}

	if batchOutputDir != "" {
		if err := os.MkdirAll(batchOutputDir, 0755); err != nil {
			return fmt.Errorf("create output dir: %w", err)
		}
	}

	processor := worker.NewBatchProcessor(p, concurrency)

	logVerbose("processing %s with %d workers\n", args[0], concurrency)

	results, err := processor.ProcessFile(cmd.Context(), args[0])
	if err != nil {
		return err
	}

	var failed int
	for i, result := range results {
		if result.Error != nil {
			failed++
			fmt.Fprintf(os.Stderr, "FAIL  %s: %v\n", truncateInput(result.Input), result.Error)
			continue
		}

		v := result.Report.Verdict
		fmt.Printf("%-13s true %3.0f%% / fake %3.0f%%  %s\n",
			v.Label, v.ConfidenceTrue*100, v.ConfidenceFake*100, truncateInput(result.Input))

		if batchOutputDir != "" {
			path := filepath.Join(batchOutputDir, fmt.Sprintf("report-%03d.json", i+1))
			if err := pipeline.RenderJSON(result.Report, path); err != nil {
				fmt.Fprintf(os.Stderr, "write %s: %v\n", path, err)
			}
		}
	}

	fmt.Printf("\n%d checked, %d failed\n", len(results), failed)

	if failed == len(results) && len(results) > 0 {
		return fmt.Errorf("all %d checks failed", failed)
	}
	return nil
}

func truncateInput(input string) string {
	runes := []rune(input)
	if len(runes) <= 60 {
		return input
	}
	return string(runes[:57]) + "..."
}
