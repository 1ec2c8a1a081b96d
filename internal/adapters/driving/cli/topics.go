package cli

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
)

var topicsJSON bool

var topicsCmd = &cobra.Command{
	Use:   "topics",
	Short: "List the seed topic catalog",
	Args:  cobra.NoArgs,
	RunE:  runTopics,
}

func init() {
	topicsCmd.Flags().BoolVar(&topicsJSON, "json", false, "output topics as JSON")
	rootCmd.AddCommand(topicsCmd)
}

func runTopics(cmd *cobra.Command, _ []string) error {
	if err := initServices(); err != nil {
		return err
	}

	topics, err := signalStore.Topics(context.Background())
	if err != nil {
		return fmt.Errorf("loading topics: %w", err)
	}

	if topicsJSON {
		data, err := json.MarshalIndent(topics, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal topics: %w", err)
		}
		cmd.Println(string(data))
		return nil
	}

	if len(topics) == 0 {
		cmd.Println("No topics in catalog.")
		return nil
	}

	cmd.Printf("%d topics:\n", len(topics))
	for _, t := range topics {
		category := t.Category
		if category == "" {
			category = "-"
		}
		cmd.Printf("  %-10s %-16s %s\n", t.ID, category, t.Text)
	}

	return nil
}
