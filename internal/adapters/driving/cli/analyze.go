package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/sehat-labs/gapscan/internal/core/domain"
)

var (
	analyzeJSON bool
	analyzeOut  string
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze",
	Short: "Run one gap analysis pass over the current snapshot",
	Long: `Scores every catalog topic against the scraped questions and videos,
classifies opportunities, detects correction targets, and prints a
ranked summary. Use --json for the full report or --out to write it
to a file.`,
	Args: cobra.NoArgs,
	RunE: runAnalyze,
}

func init() {
	analyzeCmd.Flags().BoolVar(&analyzeJSON, "json", false, "print the full report as JSON")
	analyzeCmd.Flags().StringVarP(&analyzeOut, "out", "o", "", "write the full JSON report to a file")
	rootCmd.AddCommand(analyzeCmd)
}

func runAnalyze(cmd *cobra.Command, _ []string) error {
	if err := initServices(); err != nil {
		return err
	}

	report, err := analysisService.Analyze(context.Background())
	if err != nil {
		return fmt.Errorf("analysis failed: %w", err)
	}

	outPath := analyzeOut
	if outPath == "" && configStore != nil {
		outPath = configStore.GetString(cfgReportOut)
	}
	if outPath != "" {
		if err := writeReportFile(outPath, report); err != nil {
			return err
		}
		cmd.Printf("Report written to %s\n", outPath)
		return nil
	}

	if analyzeJSON {
		return outputReportJSON(cmd, report)
	}

	return outputReportSummary(cmd, report)
}

func writeReportFile(path string, report *domain.Report) error {
	data, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal report: %w", err)
	}
	if err := os.WriteFile(path, data, 0600); err != nil {
		return fmt.Errorf("writing report: %w", err)
	}
	return nil
}

func outputReportJSON(cmd *cobra.Command, report *domain.Report) error {
	data, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal report: %w", err)
	}
	cmd.Println(string(data))
	return nil
}

func outputReportSummary(cmd *cobra.Command, report *domain.Report) error {
	cmd.Printf("Run %s\n", report.RunID)
	cmd.Printf("Scored %d topics\n", report.TotalGaps)
	cmd.Println()

	if len(report.Top50Gaps) == 0 {
		cmd.Println("No gaps found.")
		return nil
	}

	cmd.Println("Top gaps:")
	for i, gap := range report.Top50Gaps {
		if i >= 10 {
			cmd.Printf("  ... and %d more (use --json for the full report)\n", len(report.Top50Gaps)-10)
			break
		}
		cmd.Printf("  [%d] %s (%.2f) %s\n", i+1, gap.TopicText, gap.GapScore, gap.OpportunityType)
	}
	cmd.Println()

	cmd.Printf("Quick wins: %d  Strategic bets: %d  Corrections: %d\n",
		len(report.QuickWins), len(report.StrategicBets), len(report.CorrectionOpportunities))

	for i, c := range report.CorrectionOpportunities {
		if i >= 5 {
			break
		}
		cmd.Printf("  debunk %q (%s), priority %.1f\n", c.SourceVideo.Title, c.SourceVideo.ChannelName, c.PriorityScore)
	}

	return nil
}
