package main

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVersionCommand_Short(t *testing.T) {
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetArgs([]string{"version", "--short"})
	t.Cleanup(func() {
		rootCmd.SetArgs(nil)
		rootCmd.SetOut(nil)
	})

	require.NoError(t, rootCmd.Execute())
	assert.Equal(t, resolveVersion()+"\n", out.String())
}

func TestRootCommand_Flags(t *testing.T) {
	for _, name := range []string{"config", "quiet-period", "fullscreen", "log-level"} {
		assert.NotNil(t, rootCmd.Flags().Lookup(name), name)
	}
}
