package cli

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCompletionCommand(t *testing.T) {
	tests := []struct {
		shell string
		want  string
	}{
		{"bash", "bash completion"},
		{"zsh", "#compdef widgetmon"},
		{"fish", "complete -c widgetmon"},
		{"powershell", "Register-ArgumentCompleter"},
	}

	for _, tt := range tests {
		t.Run(tt.shell, func(t *testing.T) {
			var buf bytes.Buffer
			completionCmd.SetOut(&buf)
			t.Cleanup(func() { completionCmd.SetOut(nil) })

			require.NoError(t, completionCmd.RunE(completionCmd, []string{tt.shell}))
			assert.Contains(t, buf.String(), tt.want)
		})
	}
}

func TestCompletionCommand_RejectsUnknownShell(t *testing.T) {
	err := completionCmd.Args(completionCmd, []string{"tcsh"})
	assert.Error(t, err)
}

func TestRootCommand_Subcommands(t *testing.T) {
	names := make(map[string]bool)
	for _, c := range rootCmd.Commands() {
		names[c.Name()] = true
	}
	for _, want := range []string{"run", "serve", "snapshot", "config", "version", "completion"} {
		assert.True(t, names[want], "missing subcommand %s", want)
	}
}

func TestRootCommand_SharedRunFlags(t *testing.T) {
	for _, cmd := range []string{"interval", "orientation", "disk"} {
		assert.NotNil(t, rootCmd.Flags().Lookup(cmd), "root --%s", cmd)
		assert.NotNil(t, runCmd.Flags().Lookup(cmd), "run --%s", cmd)
		assert.NotNil(t, snapshotCmd.Flags().Lookup(cmd), "snapshot --%s", cmd)
	}
	assert.NotNil(t, rootCmd.PersistentFlags().Lookup("config"))
	assert.NotNil(t, serveCmd.Flags().Lookup("addr"))
}
