package cli

import (
	"context"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/veridex/veridex/internal/pipeline"
)

var (
	checkJSON     bool
	checkOutput   string
	checkTimeout  time.Duration
	checkNoCache  bool
	checkInsecure bool
	checkProvider string
	checkModel    string
	checkUA       string
	checkMaxBytes int64
)

var checkCmd = &cobra.Command{
	Use:   "check <text-or-url>",
	Short: "Classify a single article or claim",
	Long: `Check classifies one input. An absolute http(s) URL is fetched and
reduced to article text; anything else is treated as the claim itself.`,
	Args: cobra.ExactArgs(1),
	RunE: runCheck,
}

func init() {
	checkCmd.Flags().BoolVar(&checkJSON, "json", false, "print the full report as JSON")
	checkCmd.Flags().StringVarP(&checkOutput, "output", "o", "", "write the JSON report to a file")
	checkCmd.Flags().DurationVar(&checkTimeout, "timeout", 2*time.Minute, "overall timeout for the check")
	checkCmd.Flags().BoolVar(&checkNoCache, "no-cache", false, "bypass the verdict cache")
	checkCmd.Flags().BoolVar(&checkInsecure, "insecure", false, "skip TLS certificate verification on fetches")
	checkCmd.Flags().StringVar(&checkProvider, "provider", "", "LLM provider (groq, openai, anthropic, ollama)")
	checkCmd.Flags().StringVar(&checkModel, "model", "", "model name override")
	checkCmd.Flags().StringVar(&checkUA, "user-agent", "", "User-Agent for article fetches")
	checkCmd.Flags().Int64Var(&checkMaxBytes, "max-bytes", 0, "maximum page size to download")

	rootCmd.AddCommand(checkCmd)
}

func runCheck(cmd *cobra.Command, args []string) error {
	config, err := loadConfig()
	if err != nil {
		return err
	}

	if checkProvider != "" {
		config.LLM.Provider = checkProvider
		config.LLM.APIKey = resolveAPIKey(checkProvider)
	}
	if checkModel != "" {
		config.LLM.Model = checkModel
	}
	if checkUA != "" {
		config.HTTP.UserAgent = checkUA
	}
	if checkMaxBytes > 0 {
		config.HTTP.MaxBodyBytes = checkMaxBytes
	}
	if checkNoCache {
		config.Cache.Enabled = false
	}
	if checkInsecure {
		config.HTTP.InsecureTLS = true
	}

	p, err := pipeline.New(config)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(cmd.Context(), checkTimeout)
	defer cancel()

	logVerbose("checking input with provider %s\n", config.LLM.Provider)

	report, err := p.Check(ctx, args[0])
	if err != nil {
		return err
	}

	if checkJSON || checkOutput != "" {
		return pipeline.RenderJSON(report, checkOutput)
	}

	pipeline.RenderSummary(report, os.Stdout)

	if !report.Verdict.Parsed {
		logVerbose("raw model response: %s\n", report.Verdict.RawResponse)
	}

	return nil
}
