// Package cli implements the gapscan command line interface. Commands
// are a thin surface over the core analysis service; all wiring of
// stores and services happens here.
package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	configfile "github.com/sehat-labs/gapscan/internal/adapters/driven/config/file"
	storagefile "github.com/sehat-labs/gapscan/internal/adapters/driven/storage/file"
	"github.com/sehat-labs/gapscan/internal/adapters/driven/storage/sqlite"
	"github.com/sehat-labs/gapscan/internal/core/ports/driven"
	"github.com/sehat-labs/gapscan/internal/core/ports/driving"
	"github.com/sehat-labs/gapscan/internal/core/services"
	"github.com/sehat-labs/gapscan/internal/logger"
)

// Config keys recognised in ~/.gapscan/config.toml.
const (
	cfgSnapshotDir        = "snapshot_dir"
	cfgDataDir            = "data_dir"
	cfgReportOut          = "report.out"
	cfgCorrectionMinViews = "correction.min_views"
	cfgLimitTopGaps       = "limits.top_gaps"
	cfgLimitQuickWins     = "limits.quick_wins"
	cfgLimitStrategicBets = "limits.strategic_bets"
	cfgLimitCorrections   = "limits.corrections"
)

var version = "dev"

// Persistent flags.
var (
	flagVerbose     bool
	flagSnapshotDir string
	flagConfigDir   string
	flagDB          bool
	flagDataDir     string
)

// Wired services. Tests inject fakes here; initServices fills in the
// real adapters only when nil.
var (
	analysisService driving.AnalysisService
	signalStore     driven.SignalStore
	reportStore     driven.ReportStore
	configStore     *configfile.ConfigStore
	sqliteStore     *sqlite.Store
)

var rootCmd = &cobra.Command{
	Use:   "gapscan",
	Short: "Content gap analysis for Hindi health content",
	Long: `Scores audience demand against existing supply for every topic in
the seed catalog, classifies the resulting opportunities, and flags
misinformation narratives worth correcting. Reads scraped JSON
snapshots (or an imported SQLite database) and emits a ranked report.`,
	SilenceUsage: true,
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		logger.SetVerbose(flagVerbose)
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "enable verbose logging")
	rootCmd.PersistentFlags().StringVar(&flagSnapshotDir, "snapshot-dir", "", "scraper snapshot directory (default ./data)")
	rootCmd.PersistentFlags().StringVar(&flagConfigDir, "config", "", "config directory (default ~/.gapscan)")
	rootCmd.PersistentFlags().BoolVar(&flagDB, "db", false, "read signals from the SQLite database instead of JSON snapshots")
	rootCmd.PersistentFlags().StringVar(&flagDataDir, "data-dir", "", "SQLite data directory (default ~/.gapscan/data)")
}

// Execute runs the root command with the given build version.
func Execute(v string) error {
	version = v
	defer closeStores()
	return rootCmd.Execute()
}

// initServices wires the real adapters behind the service variables.
// Precedence for locations: flag, environment, config file, default.
func initServices() error {
	if analysisService != nil {
		return nil
	}

	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	if signalStore == nil {
		if flagDB {
			store, err := sqlite.NewStore(dataDir(cfg))
			if err != nil {
				return fmt.Errorf("opening database: %w", err)
			}
			sqliteStore = store
			signalStore = store.SignalStore()
			reportStore = store.ReportStore()
		} else {
			store, err := storagefile.NewSignalStore(snapshotDir(cfg))
			if err != nil {
				return err
			}
			signalStore = store
		}
	}

	analysis := services.NewAnalysis(signalStore)
	if reportStore != nil {
		analysis.SetReportStore(reportStore)
	}
	applyConfig(analysis, cfg)

	analysisService = analysis
	return nil
}

// loadConfig opens the TOML config store once.
func loadConfig() (*configfile.ConfigStore, error) {
	if configStore != nil {
		return configStore, nil
	}
	cfg, err := configfile.NewConfigStore(flagConfigDir)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}
	configStore = cfg
	return cfg, nil
}

// applyConfig overrides detector thresholds and report caps from the
// config file, keeping defaults for unset keys.
func applyConfig(analysis *services.Analysis, cfg *configfile.ConfigStore) {
	if minViews := cfg.GetInt(cfgCorrectionMinViews); minViews > 0 {
		correction := services.DefaultCorrectionConfig()
		correction.MinViews = minViews
		analysis.SetCorrectionConfig(correction)
	}

	limits := services.DefaultReportLimits()
	changed := false
	if n := cfg.GetInt(cfgLimitTopGaps); n > 0 {
		limits.TopGaps = n
		changed = true
	}
	if n := cfg.GetInt(cfgLimitQuickWins); n > 0 {
		limits.QuickWins = n
		changed = true
	}
	if n := cfg.GetInt(cfgLimitStrategicBets); n > 0 {
		limits.StrategicBets = n
		changed = true
	}
	if n := cfg.GetInt(cfgLimitCorrections); n > 0 {
		limits.Corrections = n
		changed = true
	}
	if changed {
		analysis.SetLimits(limits)
	}
}

// snapshotDir resolves the scraper snapshot directory.
func snapshotDir(cfg *configfile.ConfigStore) string {
	if flagSnapshotDir != "" {
		return flagSnapshotDir
	}
	if dir := os.Getenv("GAPSCAN_SNAPSHOT_DIR"); dir != "" {
		return dir
	}
	if dir := cfg.GetString(cfgSnapshotDir); dir != "" {
		return dir
	}
	return "data"
}

// dataDir resolves the SQLite data directory. Empty means the store
// default (~/.gapscan/data).
func dataDir(cfg *configfile.ConfigStore) string {
	if flagDataDir != "" {
		return flagDataDir
	}
	if dir := os.Getenv("GAPSCAN_DATA_DIR"); dir != "" {
		return dir
	}
	return cfg.GetString(cfgDataDir)
}

func closeStores() {
	if sqliteStore != nil {
		if err := sqliteStore.Close(); err != nil {
			logger.Warn("closing database: %v", err)
		}
		sqliteStore = nil
	}
}
