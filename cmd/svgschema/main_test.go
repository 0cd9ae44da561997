package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/NestorMonroy/svgo"
)

func runCLI(t *testing.T, args ...string) (int, string, string) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	code := runWithArgs(args, &stdout, &stderr)
	return code, stdout.String(), stderr.String()
}

func TestElements(t *testing.T) {
	code, out, errOut := runCLI(t, "elements")
	require.Equal(t, 0, code, errOut)

	names := strings.Fields(out)
	assert.Contains(t, names, "svg")
	assert.Contains(t, names, "foreignObject")
	assert.IsIncreasing(t, names)
}

func TestShow(t *testing.T) {
	code, out, errOut := runCLI(t, "show", "rect", "g")
	require.Equal(t, 0, code, errOut)

	var infos []svgo.ElementInfo
	require.NoError(t, yaml.Unmarshal([]byte(out), &infos))
	require.Len(t, infos, 2)
	assert.Equal(t, "rect", infos[0].Name)
	assert.Equal(t, "0", infos[0].Defaults["x"])
	assert.Equal(t, "g", infos[1].Name)
	assert.Contains(t, infos[1].Content, "rect")
}

func TestShowUnknownElement(t *testing.T) {
	code, _, errOut := runCLI(t, "show", "blink")
	assert.Equal(t, 1, code)
	assert.Contains(t, errOut, `unknown element "blink"`)
}

func TestArgumentCountErrors(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{name: "show without element", args: []string{"show"}},
		{name: "elements with argument", args: []string{"elements", "svg"}},
		{name: "options with argument", args: []string{"options", "extra"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			code, stdout, errOut := runCLI(t, tt.args...)
			assert.Equal(t, 2, code)
			assert.Empty(t, stdout)
			assert.Contains(t, errOut, "error:")
		})
	}
}

func TestOptions(t *testing.T) {
	code, out, errOut := runCLI(t, "options")
	require.Equal(t, 0, code, errOut)

	var opts svgo.Options
	require.NoError(t, yaml.Unmarshal([]byte(out), &opts))
	assert.Equal(t, svgo.DefaultOptions(), opts)
}

func TestOptionsConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "options.yaml")
	require.NoError(t, os.WriteFile(path, []byte("keepRoleAttr: true\nunknownContent: false\n"), 0o600))

	code, out, errOut := runCLI(t, "options", "--config", path)
	require.Equal(t, 0, code, errOut)

	var opts svgo.Options
	require.NoError(t, yaml.Unmarshal([]byte(out), &opts))
	assert.True(t, opts.KeepRoleAttr)
	assert.False(t, opts.UnknownContent)
	assert.True(t, opts.UnknownAttrs)
}

func TestAlternativeSchema(t *testing.T) {
	path := filepath.Join(t.TempDir(), "schema.yaml")
	kb := "elements:\n  box:\n    attrs: [size]\n    content: []\n"
	require.NoError(t, os.WriteFile(path, []byte(kb), 0o600))

	code, out, errOut := runCLI(t, "--schema", path, "elements")
	require.Equal(t, 0, code, errOut)
	assert.Equal(t, "box\n", out)
}

func TestBadSchemaPath(t *testing.T) {
	code, _, errOut := runCLI(t, "--schema", filepath.Join(t.TempDir(), "missing.yaml"), "elements")
	assert.Equal(t, 1, code)
	assert.Contains(t, errOut, "error:")
}

func TestUsageErrors(t *testing.T) {
	code, _, _ := runCLI(t, "--no-such-flag", "elements")
	assert.Equal(t, 2, code)

	code, _, errOut := runCLI(t, "--log-level", "loud", "elements")
	assert.Equal(t, 2, code)
	assert.Contains(t, errOut, "invalid --log-level")
}

func TestDebugLogging(t *testing.T) {
	code, _, errOut := runCLI(t, "--log-level", "debug", "elements")
	require.Equal(t, 0, code)
	assert.Contains(t, errOut, "using embedded schema")
}
