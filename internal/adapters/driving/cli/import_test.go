package cli

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestImportCmd_Use(t *testing.T) {
	assert.Equal(t, "import [snapshot-dir]", importCmd.Use)
}

func TestImportCmd_EndToEnd(t *testing.T) {
	snapDir := t.TempDir()
	dataDir := t.TempDir()
	cfgDir := t.TempDir()

	err := os.WriteFile(filepath.Join(snapDir, "topics.json"), []byte(`[
		{"id": "seed-001", "text": "diabetes reversal diet", "category": "diabetes"}
	]`), 0600)
	require.NoError(t, err)
	err = os.WriteFile(filepath.Join(snapDir, "questions.json"), []byte(`[
		{"text": "kya sugar reverse ho sakti hai?", "likes": 12}
	]`), 0600)
	require.NoError(t, err)

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetArgs([]string{"import", snapDir, "--data-dir", dataDir, "--config", cfgDir})
	defer func() {
		rootCmd.SetArgs(nil)
		flagDataDir = ""
		flagConfigDir = ""
		configStore = nil
	}()

	err = rootCmd.Execute()
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "Imported 1 topics")

	require.NotNil(t, sqliteStore)
	defer closeStores()

	topics, err := sqliteStore.SignalStore().Topics(context.Background())
	require.NoError(t, err)
	require.Len(t, topics, 1)
	assert.Equal(t, "seed-001", topics[0].ID)

	questions, err := sqliteStore.SignalStore().Questions(context.Background())
	require.NoError(t, err)
	require.Len(t, questions, 1)
	assert.Equal(t, 12, questions[0].Likes)
}
