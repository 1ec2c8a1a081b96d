package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	storagefile "github.com/sehat-labs/gapscan/internal/adapters/driven/storage/file"
	"github.com/sehat-labs/gapscan/internal/adapters/driven/storage/sqlite"
)

var importCmd = &cobra.Command{
	Use:   "import [snapshot-dir]",
	Short: "Import a JSON snapshot into the SQLite database",
	Long: `Reads a scraper snapshot directory and replaces the signal
collections in the SQLite database with its contents. Later runs can
then use --db instead of the JSON files.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runImport,
}

func init() {
	rootCmd.AddCommand(importCmd)
}

func runImport(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	dir := snapshotDir(cfg)
	if len(args) == 1 {
		dir = args[0]
	}

	source, err := storagefile.NewSignalStore(dir)
	if err != nil {
		return err
	}

	if sqliteStore == nil {
		store, err := sqlite.NewStore(dataDir(cfg))
		if err != nil {
			return fmt.Errorf("opening database: %w", err)
		}
		sqliteStore = store
	}
	importer := sqliteStore.Importer()

	ctx := context.Background()

	topics, err := source.Topics(ctx)
	if err != nil {
		return err
	}
	if err := importer.ReplaceTopics(ctx, topics); err != nil {
		return err
	}

	modifiers, err := source.Modifiers(ctx)
	if err != nil {
		return err
	}
	if err := importer.ReplaceModifiers(ctx, modifiers); err != nil {
		return err
	}

	videos, err := source.Videos(ctx)
	if err != nil {
		return err
	}
	if err := importer.ReplaceVideos(ctx, videos); err != nil {
		return err
	}

	questions, err := source.Questions(ctx)
	if err != nil {
		return err
	}
	if err := importer.ReplaceQuestions(ctx, questions); err != nil {
		return err
	}

	channels, err := source.Channels(ctx)
	if err != nil {
		return err
	}
	if err := importer.ReplaceChannels(ctx, channels); err != nil {
		return err
	}

	cmd.Printf("Imported %d topics, %d modifiers, %d videos, %d questions from %s\n",
		len(topics), len(modifiers), len(videos), len(questions), dir)
	return nil
}
