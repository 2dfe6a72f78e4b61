package pipeline

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/veridex/veridex/internal/model"
)

const rounding = time.Millisecond

// RenderJSON writes the report as indented JSON, to stdout when path is
// empty or "-".
func RenderJSON(report *model.Report, path string) error {
	data, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal report: %w", err)
	}
	data = append(data, '\n')

	if path == "" || path == "-" {
		_, err := os.Stdout.Write(data)
		return err
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("write report: %w", err)
	}
	return nil
}

// RenderSummary writes a short human-readable summary of the report
func RenderSummary(report *model.Report, w io.Writer) {
	v := report.Verdict

	fmt.Fprintf(w, "Verdict:    %s\n", v.Label)
	fmt.Fprintf(w, "Confidence: true %.0f%% / fake %.0f%%\n", v.ConfidenceTrue*100, v.ConfidenceFake*100)

	if !v.Parsed {
		fmt.Fprintf(w, "Note:       model response could not be parsed; verdict degraded\n")
	}
	if report.Title != "" {
		fmt.Fprintf(w, "Title:      %s\n", report.Title)
	}
	if report.SourceURL != "" {
		fmt.Fprintf(w, "Source:     %s", report.SourceURL)
		if report.SourceTier != "" {
			fmt.Fprintf(w, " (%s source)", report.SourceTier)
		}
		fmt.Fprintln(w)
	}
	if report.Truncated {
		fmt.Fprintf(w, "Note:       input was truncated before classification\n")
	}
	if v.Model != "" {
		fmt.Fprintf(w, "Model:      %s (%d tokens)\n", v.Model, v.TokensUsed)
	}
	fmt.Fprintf(w, "Elapsed:    %s\n", report.Elapsed.Round(rounding))
}
