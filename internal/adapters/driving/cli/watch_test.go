package cli

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWatchCmd_Use(t *testing.T) {
	assert.Equal(t, "watch", watchCmd.Use)
}

func TestWatchCmd_HasIntervalFlag(t *testing.T) {
	flag := watchCmd.Flags().Lookup("interval")
	require.NotNil(t, flag)
	assert.Equal(t, "2", flag.DefValue)
}

func TestWatchCmd_RejectsDB(t *testing.T) {
	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs([]string{"watch", "--db"})
	defer func() {
		rootCmd.SetArgs(nil)
		flagDB = false
	}()

	err := rootCmd.Execute()

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "not available with --db")
}
