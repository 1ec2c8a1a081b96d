package cli

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"golang.org/x/time/rate"

	"github.com/sehat-labs/gapscan/internal/watch"
)

var watchInterval float64

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Re-run analysis whenever the snapshot directory changes",
	Long: `Watches the scraper snapshot directory and re-runs the analysis each
time its JSON files change, throttled so a scraper rewriting several
files triggers one run. Stops on Ctrl-C.`,
	Args: cobra.NoArgs,
	RunE: runWatch,
}

func init() {
	watchCmd.Flags().Float64Var(&watchInterval, "interval", 2.0, "minimum seconds between runs")
	rootCmd.AddCommand(watchCmd)
}

func runWatch(cmd *cobra.Command, _ []string) error {
	if flagDB {
		return fmt.Errorf("watch reads JSON snapshots; not available with --db")
	}
	if err := initServices(); err != nil {
		return err
	}

	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	dir := snapshotDir(cfg)

	runOnce := func(ctx context.Context) error {
		report, err := analysisService.Analyze(ctx)
		if err != nil {
			return err
		}
		return outputReportSummary(cmd, report)
	}

	watcher, err := watch.New(dir, runOnce)
	if err != nil {
		return err
	}
	defer watcher.Close()

	if watchInterval > 0 {
		watcher.SetRefreshRate(rate.Limit(1 / watchInterval))
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// First pass before any change arrives.
	if err := runOnce(ctx); err != nil {
		return err
	}
	cmd.Printf("Watching %s for changes...\n", dir)

	if err := watcher.Run(ctx); err != nil && ctx.Err() == nil {
		return err
	}
	return nil
}
