package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sehat-labs/gapscan/internal/core/domain"
)

func TestAnalyzeCmd_Use(t *testing.T) {
	assert.Equal(t, "analyze", analyzeCmd.Use)
}

func TestAnalyzeCmd_HasJSONFlag(t *testing.T) {
	flag := analyzeCmd.Flags().Lookup("json")
	require.NotNil(t, flag)
	assert.Equal(t, "false", flag.DefValue)
}

func TestAnalyzeCmd_HasOutFlag(t *testing.T) {
	flag := analyzeCmd.Flags().Lookup("out")
	require.NotNil(t, flag)
	assert.Equal(t, "o", flag.Shorthand)
}

func TestAnalyzeCmd_PrintsSummary(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetArgs([]string{"analyze"})
	defer rootCmd.SetArgs(nil)

	err := rootCmd.Execute()

	require.NoError(t, err)
	assert.Contains(t, buf.String(), "Scored 2 topics")
	assert.Contains(t, buf.String(), "diabetes reversal diet")
	assert.Contains(t, buf.String(), "LANGUAGE_GAP")
}

func TestAnalyzeCmd_JSONOutput(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetArgs([]string{"analyze", "--json"})
	defer func() {
		rootCmd.SetArgs(nil)
		analyzeJSON = false
	}()

	err := rootCmd.Execute()
	require.NoError(t, err)

	var report domain.Report
	require.NoError(t, json.Unmarshal(buf.Bytes(), &report))
	assert.Equal(t, 2, report.TotalGaps)
	assert.NotEmpty(t, report.RunID)
}

func TestAnalyzeCmd_WritesOutFile(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()

	outPath := filepath.Join(t.TempDir(), "report.json")

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetArgs([]string{"analyze", "--out", outPath})
	defer func() {
		rootCmd.SetArgs(nil)
		analyzeOut = ""
	}()

	err := rootCmd.Execute()
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "Report written to")

	data, err := os.ReadFile(outPath)
	require.NoError(t, err)

	var report domain.Report
	require.NoError(t, json.Unmarshal(data, &report))
	assert.Equal(t, 2, report.TotalGaps)
}

func TestAnalyzeCmd_SavesReport(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetArgs([]string{"analyze"})
	defer rootCmd.SetArgs(nil)

	err := rootCmd.Execute()
	require.NoError(t, err)

	// Analysis runs with a report store attached persist the run.
	saved, err := reportStore.ListReports(context.Background(), 10)
	require.NoError(t, err)
	assert.Len(t, saved, 1)
}
