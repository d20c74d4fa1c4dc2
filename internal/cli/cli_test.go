package cli

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// run executes the root command with args and returns stdout and stderr.
func run(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	root := newRootCmd()
	var out, errOut bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&errOut)
	root.SetArgs(args)
	err := root.ExecuteContext(context.Background())

	return out.String(), errOut.String(), err
}

func writeFile(t *testing.T, dir, name, body string) string {
	t.Helper()
	p := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(p, []byte(body), 0o644))

	return p
}

const c5 = "p tw 5 5\n1 2\n2 3\n3 4\n4 5\n5 1\n"

func TestNewLogger(t *testing.T) {
	var buf bytes.Buffer
	l := newLogger(&buf, log.InfoLevel)
	l.Debug("hidden")
	assert.Zero(t, buf.Len())
	l.Info("shown")
	assert.Contains(t, buf.String(), "shown")

	ctx := withLogger(context.Background(), l)
	assert.Same(t, l, loggerFromContext(ctx))
	assert.NotNil(t, loggerFromContext(context.Background()))
}

func TestLoadConfig(t *testing.T) {
	dir := t.TempDir()
	cfg, err := loadConfig("")
	require.NoError(t, err)
	assert.Equal(t, -1, cfg.UpperBound)

	p := writeFile(t, dir, "ok.toml", "verbose = true\nlower_bound = 2\npmc_only = true\nsvg = \"x.svg\"\n")
	cfg, err = loadConfig(p)
	require.NoError(t, err)
	assert.True(t, cfg.Verbose)
	assert.Equal(t, 2, cfg.LowerBound)
	assert.Equal(t, -1, cfg.UpperBound)
	assert.True(t, cfg.PMCOnly)
	assert.Equal(t, "x.svg", cfg.SVG)

	p = writeFile(t, dir, "bad.toml", "colour = 3\n")
	_, err = loadConfig(p)
	assert.ErrorIs(t, err, ErrUnknownConfigKey)

	_, err = loadConfig(filepath.Join(dir, "missing.toml"))
	assert.Error(t, err)
}

func TestSolveCmd(t *testing.T) {
	dir := t.TempDir()
	gr := writeFile(t, dir, "c5.gr", c5)

	out, _, err := run(t, "solve", gr, "--validate")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "s td "), out)
	assert.Contains(t, out, " 3 5\n")

	tdPath := filepath.Join(dir, "c5.td")
	out, _, err = run(t, "solve", gr, "-o", tdPath)
	require.NoError(t, err)
	assert.Contains(t, out, "treewidth 2")
	assert.Contains(t, out, tdPath)

	out, _, err = run(t, "validate", gr, tdPath)
	require.NoError(t, err)
	assert.Contains(t, out, "valid tree decomposition")

	_, _, err = run(t, "solve", gr, "--upper-bound", "1")
	assert.Error(t, err)
}

func TestSolveCmd_ConfigAndVerbose(t *testing.T) {
	dir := t.TempDir()
	gr := writeFile(t, dir, "c5.gr", c5)
	cfg := writeFile(t, dir, "tw.toml", "verbose = true\nupper_bound = 1\n")

	_, stderr, err := run(t, "--config", cfg, "solve", gr)
	assert.Error(t, err, "upper bound from the file applies")
	assert.Contains(t, stderr, "DEBU")

	// the flag wins over the file
	_, _, err = run(t, "--config", cfg, "solve", gr, "--upper-bound", "2")
	assert.NoError(t, err)
}

func TestDecideCmd(t *testing.T) {
	dir := t.TempDir()
	gr := writeFile(t, dir, "c5.gr", c5)

	out, _, err := run(t, "decide", gr, "--width", "1")
	require.NoError(t, err)
	assert.Contains(t, out, "infeasible")

	out, _, err = run(t, "decide", gr, "-k", "2")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "s td "), out)

	_, _, err = run(t, "decide", gr)
	assert.Error(t, err, "width is required")
}

func TestMinsepsCmd(t *testing.T) {
	dir := t.TempDir()
	gr := writeFile(t, dir, "c5.gr", c5)

	out, _, err := run(t, "minseps", gr, "--width", "2")
	require.NoError(t, err)
	assert.Equal(t, "1 3\n1 4\n2 4\n2 5\n3 5\n", out)
}

func TestValidateCmd_Rejects(t *testing.T) {
	dir := t.TempDir()
	gr := writeFile(t, dir, "c5.gr", c5)
	bad := writeFile(t, dir, "bad.td", "s td 2 3 5\nb 1 1 2 3\nb 2 3 4 5\n1 2\n")

	_, _, err := run(t, "validate", gr, bad)
	assert.Error(t, err)
}

func TestGenCmd(t *testing.T) {
	out, _, err := run(t, "gen", "grid", "--rows", "2", "--cols", "2")
	require.NoError(t, err)
	assert.Equal(t, "p tw 4 4\n1 2\n1 3\n2 4\n3 4\n", out)

	a, _, err := run(t, "gen", "random", "--n", "8", "--seed", "4")
	require.NoError(t, err)
	b, _, err := run(t, "gen", "random", "--n", "8", "--seed", "4")
	require.NoError(t, err)
	assert.Equal(t, a, b)

	_, _, err = run(t, "gen", "petersen")
	assert.ErrorIs(t, err, ErrUnknownFamily)

	_, _, err = run(t, "gen", "cycle", "--n", "2")
	assert.Error(t, err)
}
