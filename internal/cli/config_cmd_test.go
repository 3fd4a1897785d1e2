package cli

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestShowConfig_Defaults(t *testing.T) {
	isolate(t)

	var buf bytes.Buffer
	require.NoError(t, showConfig(&buf))

	out := buf.String()
	assert.Contains(t, out, "# source: defaults")
	assert.Contains(t, out, "orientation: horizontal")
	assert.Contains(t, out, "127.0.0.1:8787")
}

func TestShowConfig_FromFile(t *testing.T) {
	_, cwd := isolate(t)
	writeConfig(t, cwd, `version: 1
widget:
  orientation: vertical
`)

	var buf bytes.Buffer
	require.NoError(t, showConfig(&buf))

	out := buf.String()
	assert.Contains(t, out, "# source: ")
	assert.Contains(t, out, ".widgetmon.yaml")
	assert.Contains(t, out, "orientation: vertical")
}

func TestShowConfig_EnvOverride(t *testing.T) {
	isolate(t)
	t.Setenv("WIDGETMON_SERVER_ADDR", "0.0.0.0:9000")

	var buf bytes.Buffer
	require.NoError(t, showConfig(&buf))
	assert.Contains(t, buf.String(), "0.0.0.0:9000")
}
