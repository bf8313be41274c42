package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// execute runs the root command with a private settings file.
func execute(t *testing.T, stdin string, args ...string) (stdout, stderr string, err error) {
	t.Helper()
	var out, errOut bytes.Buffer
	cmd := newRootCmd()
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cfg := filepath.Join(t.TempDir(), "config.toml")
	cmd.SetArgs(append([]string{"--config", cfg}, args...))
	err = cmd.Execute()
	return out.String(), errOut.String(), err
}

func writeFile(t *testing.T, text string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "doc.md")
	require.NoError(t, os.WriteFile(path, []byte(text), 0o600))
	return path
}

func TestToggleFile(t *testing.T) {
	path := writeFile(t, "one two\n")
	out, _, err := execute(t, "", "toggle", path, "-s", "0:3")
	require.NoError(t, err)
	assert.Equal(t, "_one_ two\n", out)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "one two\n", string(data))
}

func TestToggleStdin(t *testing.T) {
	out, _, err := execute(t, "one two", "toggle", "-", "-s", "5", "-d", "asterisk")
	require.NoError(t, err)
	assert.Equal(t, "one *two*", out)

	out, _, err = execute(t, "one _two_", "toggle", "-", "-s", "5")
	require.NoError(t, err)
	assert.Equal(t, "one two", out)
}

func TestToggleWrite(t *testing.T) {
	path := writeFile(t, "alpha beta gamma")
	_, _, err := execute(t, "", "toggle", path, "-w", "-s", "0:5", "-s", "13")
	require.NoError(t, err)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "_alpha_ beta _gamma_", string(data))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())
}

func TestToggleDiff(t *testing.T) {
	out, _, err := execute(t, "one two", "toggle", "-", "--diff", "-s", "0:3")
	require.NoError(t, err)
	assert.Equal(t, "{+_+}one{+_+} two\n", out)
}

func TestToggleErrors(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{"missing selection", []string{"toggle", "-"}},
		{"bad selection", []string{"toggle", "-", "-s", "x:1"}},
		{"bad delimiter", []string{"toggle", "-", "-s", "0", "-d", "~"}},
		{"bad structure", []string{"toggle", "-", "-s", "0", "--structure", "ast"}},
		{"write stdin", []string{"toggle", "-", "-s", "0", "-w"}},
		{"overlap", []string{"toggle", "-", "-s", "0:4", "-s", "2:6"}},
		{"missing file", []string{"toggle", filepath.Join(t.TempDir(), "none.md"), "-s", "0"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := execute(t, "one two", tt.args...)
			assert.Error(t, err)
		})
	}
}

func TestToggleLogs(t *testing.T) {
	_, stderr, err := execute(t, "one two", "--log-level", "info", "toggle", "-", "-s", "0:3")
	require.NoError(t, err)
	assert.Contains(t, stderr, `"message":"toggled"`)
	assert.Contains(t, stderr, `"selections":["1:4"]`)
}

func TestParseSelection(t *testing.T) {
	sel, err := parseSelection("4:1")
	require.NoError(t, err)
	assert.Equal(t, "4:1", formatSelection(sel))

	sel, err = parseSelection(" 7 ")
	require.NoError(t, err)
	assert.True(t, sel.IsEmpty())
	assert.Equal(t, "7", formatSelection(sel))

	_, err = parseSelection("1:")
	assert.Error(t, err)
}

func TestServe(t *testing.T) {
	in := `{"id":1,"text":"one two","selections":[{"anchor":0,"head":3}]}` + "\n" +
		`{"id":2,"text":"x"}` + "\n"
	out, _, err := execute(t, in, "serve", "--watch=false")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 2)
	assert.Contains(t, lines[0], `"text":"_one_ two"`)
	assert.Contains(t, lines[1], `"error"`)
}

func TestScript(t *testing.T) {
	dir := t.TempDir()
	script := filepath.Join(dir, "toggle.lua")
	require.NoError(t, os.WriteFile(script, []byte(`
local ks = require("ks")
local text = ks.emphasis.toggle("one two", {{anchor = 0, head = 3}})
print(text)
`), 0o600))

	out, _, err := execute(t, "", "script", script)
	require.NoError(t, err)
	assert.Equal(t, "_one_ two\n", out)
}

func TestConfigCommands(t *testing.T) {
	cfg := filepath.Join(t.TempDir(), "config.toml")
	run := func(stdin string, args ...string) string {
		var out bytes.Buffer
		cmd := newRootCmd()
		cmd.SetIn(strings.NewReader(stdin))
		cmd.SetOut(&out)
		cmd.SetErr(&bytes.Buffer{})
		cmd.SetArgs(append([]string{"--config", cfg}, args...))
		require.NoError(t, cmd.Execute())
		return out.String()
	}

	assert.Contains(t, run("", "config", "show"), "underscore")
	assert.Contains(t, run("", "config", "set-delimiter", "*"), "delimiter set to asterisk")
	assert.Contains(t, run("", "config", "show"), "asterisk")
	assert.Equal(t, "*one* two", run("one two", "toggle", "-", "-s", "0:3"))
}

func TestToggleRender(t *testing.T) {
	out, _, err := execute(t, "one two", "toggle", "-", "--render", "-s", "0:3")
	require.NoError(t, err)
	assert.Contains(t, out, "one")
	assert.Contains(t, out, "two")
}

func TestTerminalDetection(t *testing.T) {
	var buf bytes.Buffer
	assert.False(t, isTerminal(&buf))
	assert.Equal(t, "notty", glamourStyle(&buf))

	f, err := os.CreateTemp(t.TempDir(), "out")
	require.NoError(t, err)
	defer f.Close()
	assert.False(t, isTerminal(f))

	logger := newLogger(&buf, zerolog.InfoLevel, false)
	logger.Info().Msg("plain")
	assert.Contains(t, buf.String(), `"message":"plain"`)
}
