package cli

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/sehat-labs/gapscan/internal/core/domain"
)

var reportsLimit int

var reportsCmd = &cobra.Command{
	Use:   "reports [run-id]",
	Short: "List saved run reports, or print one by run ID",
	Long: `Without arguments, lists the most recent saved reports. With a run
ID, prints that report as JSON. Reports are saved only when analysis
runs against the SQLite database (--db).`,
	Args: cobra.MaximumNArgs(1),
	RunE: runReports,
}

func init() {
	reportsCmd.Flags().IntVarP(&reportsLimit, "limit", "n", 10, "maximum number of reports to list")
	rootCmd.AddCommand(reportsCmd)
}

func runReports(cmd *cobra.Command, args []string) error {
	if err := initServices(); err != nil {
		return err
	}
	if reportStore == nil {
		return errors.New("no report store: reports require the SQLite database (--db)")
	}

	ctx := context.Background()

	if len(args) == 1 {
		report, err := reportStore.GetReport(ctx, args[0])
		if err != nil {
			if errors.Is(err, domain.ErrNotFound) {
				return fmt.Errorf("no report with run ID %s", args[0])
			}
			return fmt.Errorf("loading report: %w", err)
		}
		data, err := json.MarshalIndent(report, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal report: %w", err)
		}
		cmd.Println(string(data))
		return nil
	}

	reports, err := reportStore.ListReports(ctx, reportsLimit)
	if err != nil {
		return fmt.Errorf("listing reports: %w", err)
	}

	if len(reports) == 0 {
		cmd.Println("No saved reports.")
		return nil
	}

	for _, r := range reports {
		cmd.Printf("  %s  %s  %d topics, %d corrections\n",
			r.RunID, r.GeneratedAt.Format("2006-01-02 15:04"), r.TotalGaps, len(r.CorrectionOpportunities))
	}
	return nil
}
