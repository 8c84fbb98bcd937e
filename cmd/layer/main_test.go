package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"layer/examples"
)

func init() {
	color.NoColor = true
}

func execute(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	viper.Reset()

	var stdout, stderr bytes.Buffer
	cmd := newRootCmd()
	cmd.SetArgs(args)
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetIn(strings.NewReader(""))

	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

func TestRunCode(t *testing.T) {
	out, _, err := execute(t, "run", "-c", "cvar x = 4\nwrite(\"x is\", x * 2)")
	require.NoError(t, err)
	assert.Equal(t, "x is 8\n", out)
}

func TestRootRunsFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "prog.layer")
	require.NoError(t, os.WriteFile(path, []byte("write(1 + 1)\n"), 0o644))

	out, _, err := execute(t, path)
	require.NoError(t, err)
	assert.Equal(t, "2\n", out)
}

func TestRunFromStdin(t *testing.T) {
	viper.Reset()
	var stdout bytes.Buffer
	cmd := newRootCmd()
	cmd.SetArgs([]string{"run", "--stdin"})
	cmd.SetOut(&stdout)
	cmd.SetIn(strings.NewReader("write(\"piped\")\n"))

	require.NoError(t, cmd.Execute())
	assert.Equal(t, "piped\n", stdout.String())
}

func TestMultipleInputSources(t *testing.T) {
	_, _, err := execute(t, "run", "-c", "write(1)", "file.layer")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "multiple input sources")
}

func TestNoInput(t *testing.T) {
	_, _, err := execute(t, "run")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no input")
}

func TestCheckReportsSemanticErrors(t *testing.T) {
	_, stderr, err := execute(t, "check", "-c", "write(y)\ncvar x\ncvar x")
	require.ErrorIs(t, err, errReported)
	assert.Contains(t, stderr, "error[E0101]")
	assert.Contains(t, stderr, "error[E0102]")
	assert.Contains(t, stderr, "Check failed with 2 error(s)")
}

func TestCheckSuccess(t *testing.T) {
	out, _, err := execute(t, "check", "-c", "cvar x = 1")
	require.NoError(t, err)
	assert.Contains(t, out, "Successfully checked <code>")
}

func TestParseErrorHeading(t *testing.T) {
	_, stderr, err := execute(t, "run", "-c", "write(")
	require.ErrorIs(t, err, errReported)
	assert.Contains(t, stderr, "error[E0001]")
	assert.Contains(t, stderr, "Parsing failed")
}

func TestRuntimeErrorHeading(t *testing.T) {
	out, stderr, err := execute(t, "run", "-c", "write(\"a\")\nwrite(1 / 0)")
	require.ErrorIs(t, err, errReported)
	assert.Equal(t, "a\n", out)
	assert.Contains(t, stderr, "error[E0302]")
	assert.Contains(t, stderr, "Execution failed")
}

func TestIRCommand(t *testing.T) {
	src := "cvar x = 1 + 2\nwrite(x)"

	out, _, err := execute(t, "ir", "-c", src)
	require.NoError(t, err)
	assert.Contains(t, out, "ADD")
	assert.Contains(t, out, "STORE_VAR")

	out, _, err = execute(t, "ir", "--both", "-c", src)
	require.NoError(t, err)
	assert.Contains(t, out, "generated")
	assert.Contains(t, out, "optimized")
}

func TestTokensCommand(t *testing.T) {
	out, _, err := execute(t, "tokens", "-c", "cvar x = \"hi\" # note\nwrite(x)")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSuffix(out, "\n"), "\n")
	require.Len(t, lines, 10)
	assert.Equal(t, []string{"TYPE", "VALUE", "POSITION"}, strings.Fields(lines[0]))
	assert.Equal(t, []string{"Keyword", "cvar", "1:1"}, strings.Fields(lines[1]))
	assert.Equal(t, []string{"String", `"\"hi\""`, "1:10"}, strings.Fields(lines[4]))
	assert.Equal(t, []string{"Comment", "#", "note", "1:15"}, strings.Fields(lines[5]))
	assert.Equal(t, []string{"Ident", "x", "2:7"}, strings.Fields(lines[8]))
}

func TestTokensCommandLexError(t *testing.T) {
	out, stderr, err := execute(t, "tokens", "-c", "cvar x = \"open")
	require.ErrorIs(t, err, errReported)
	assert.Contains(t, out, "Ident")
	assert.Contains(t, stderr, "error[E0001]")
	assert.Contains(t, stderr, "Parsing failed")
}

func TestASTCommand(t *testing.T) {
	out, _, err := execute(t, "ast", "-c", "cvar x = 1")
	require.NoError(t, err)
	assert.Contains(t, out, "VarDecl")
}

func TestExamplesCommand(t *testing.T) {
	out, _, err := execute(t, "examples")
	require.NoError(t, err)
	for _, name := range examples.List() {
		assert.Contains(t, out, name)
	}

	out, _, err = execute(t, "examples", "factorial", "--run")
	require.NoError(t, err)
	expected, err := examples.Expected("factorial")
	require.NoError(t, err)
	assert.Equal(t, expected, out)

	_, _, err = execute(t, "examples", "nope")
	assert.Error(t, err)
}

func TestFwriteFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.txt")

	out, _, err := execute(t, "run", "--fwrite-file", path, "-c", "write(\"screen\")\nfwrite(\"disk\", 1)")
	require.NoError(t, err)
	assert.Equal(t, "screen\n", out)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "disk 1\n", string(data))
}

func TestStepLimitFromEnv(t *testing.T) {
	t.Setenv("LAYER_MAX_STEPS", "20")

	_, stderr, err := execute(t, "run", "-c", "cvar x = 0\nloop while true -> x = x + 1")
	require.ErrorIs(t, err, errReported)
	assert.Contains(t, stderr, "error[E0305]")
}

func TestConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "layer.yaml")
	require.NoError(t, os.WriteFile(path, []byte("max-steps: 20\n"), 0o644))

	_, stderr, err := execute(t, "run", "--config", path, "-c", "loop while true -> write(1)")
	require.ErrorIs(t, err, errReported)
	assert.Contains(t, stderr, "error[E0305]")
}

func TestTrace(t *testing.T) {
	_, stderr, err := execute(t, "run", "--trace", "-c", "write(1)")
	require.NoError(t, err)
	assert.Contains(t, stderr, "CALL_WRITE")
}

func TestReplCommand(t *testing.T) {
	viper.Reset()
	var stdout bytes.Buffer
	cmd := newRootCmd()
	cmd.SetArgs([]string{"repl"})
	cmd.SetOut(&stdout)
	cmd.SetIn(strings.NewReader("cvar x = 3\nwrite(x)\n"))

	require.NoError(t, cmd.Execute())
	assert.Contains(t, stdout.String(), "3\n")
}

func TestReplFwriteFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "repl.txt")

	viper.Reset()
	var stdout bytes.Buffer
	cmd := newRootCmd()
	cmd.SetArgs([]string{"repl", "--fwrite-file", path})
	cmd.SetOut(&stdout)
	cmd.SetIn(strings.NewReader("fwrite(\"saved\")\nwrite(\"shown\")\nfwrite(\"again\")\n"))

	require.NoError(t, cmd.Execute())
	assert.Contains(t, stdout.String(), "shown\n")
	assert.NotContains(t, stdout.String(), "saved")

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "saved\nagain\n", string(data))
}

func TestVersion(t *testing.T) {
	out, _, err := execute(t, "version")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "layer "))
}

func TestFormatDuration(t *testing.T) {
	tests := []struct {
		d        time.Duration
		expected string
	}{
		{500 * time.Nanosecond, "500ns"},
		{1500 * time.Nanosecond, "1.5μs"},
		{2500 * time.Microsecond, "2.5ms"},
		{3 * time.Second, "3.00s"},
		{90 * time.Second, "1.50min"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, formatDuration(tt.d))
	}
}
