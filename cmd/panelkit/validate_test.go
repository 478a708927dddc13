package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

const minimalDefinition = `
version: "1.0"
name: minimal
panels:
  - id: home
    variants:
      - id: base
        bounds: [0, 0, 10, 5]
    transitions:
      items:
        - on_event: noop
          to: base
`

func writeDefinition(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "panels.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	root := newRootCmd()
	buf := &bytes.Buffer{}
	root.SetOut(buf)
	root.SetErr(buf)
	root.SetArgs(args)
	err := root.Execute()
	return buf.String(), err
}

func TestValidateAcceptsGoodDefinition(t *testing.T) {
	path := writeDefinition(t, minimalDefinition)

	output, err := execute(t, "validate", path)
	require.NoError(t, err)
	require.Contains(t, output, "✓")
	require.Contains(t, output, "1 panel(s)")
}

func TestValidateRejectsBrokenDefinition(t *testing.T) {
	good := writeDefinition(t, minimalDefinition)
	bad := writeDefinition(t, "version: [broken")

	output, err := execute(t, "validate", good, bad)
	require.Error(t, err)
	require.Contains(t, err.Error(), "1 of 2")
	require.Contains(t, output, "✗")
}

func TestValidateRequiresArguments(t *testing.T) {
	_, err := execute(t, "validate")
	require.Error(t, err)
}
