package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRootCommand_SubcomandosHeredanFlags(t *testing.T) {
	root := newRootCommand()
	for _, name := range []string{"up", "down", "status"} {
		cmd, _, err := root.Find([]string{name})
		require.NoError(t, err)
		assert.NotNil(t, cmd.InheritedFlags().Lookup(databaseURLFlag), name)
		assert.NotNil(t, cmd.InheritedFlags().Lookup(timeoutFlag), name)
	}
}

func TestRootCommand_TimeoutInvalido(t *testing.T) {
	root := newRootCommand()
	root.SetArgs([]string{"status", "--database-url", "postgres://u@localhost:1/x", "--timeout", "bad"})

	err := root.Execute()
	require.Error(t, err)
	assert.NotContains(t, err.Error(), "unknown flag")
	assert.Contains(t, err.Error(), "--timeout")
}
