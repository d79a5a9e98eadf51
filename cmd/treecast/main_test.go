package main

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// runApp executes the CLI with args and returns what it wrote to stdout.
func runApp(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	err := newApp(&out, io.Discard).Run(append([]string{"treecast"}, args...))

	return out.String(), err
}

func writeFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "tree.txt")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	return path
}

func TestDemo(t *testing.T) {
	out, err := runApp(t, "demo")
	require.NoError(t, err)
	assert.Equal(t, "13\n7\n", out)
}

func TestMerge(t *testing.T) {
	tests := []struct {
		args []string
		want string
	}{
		{[]string{"1", "1", "1"}, "3\n"},
		{[]string{"3", "3", "3"}, "5\n"},
		{[]string{"10", "10", "10", "3", "3", "3", "3", "3"}, "12\n"},
		{nil, "0\n"},
	}

	for _, tc := range tests {
		out, err := runApp(t, append([]string{"merge"}, tc.args...)...)
		require.NoError(t, err)
		assert.Equal(t, tc.want, out, "merge %v", tc.args)
	}

	_, err := runApp(t, "merge", "1", "x")
	assert.ErrorContains(t, err, `invalid value "x"`)
}

func TestEval(t *testing.T) {
	path := writeFile(t, "root: hq\nhq north\nhq south\nsouth s1\ns1 s2\n")

	out, err := runApp(t, "eval", path)
	require.NoError(t, err)
	assert.Equal(t, "3\n", out)

	out, err = runApp(t, "eval", "--root", "s2", path)
	require.NoError(t, err)
	assert.Equal(t, "4\n", out)

	out, err = runApp(t, "eval", "--schedule", path)
	require.NoError(t, err)
	assert.Equal(t, "3\nstep 1: hq -> south\nstep 2: hq -> north\nstep 2: south -> s1\nstep 3: s1 -> s2\n", out)

	out, err = runApp(t, "eval", "--tree", "--recursive", path)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "3\nhq (t=0, value=4)\n"), out)
	assert.Contains(t, out, "s2 (t=3, value=1)")
}

func TestEval_Errors(t *testing.T) {
	_, err := runApp(t, "eval")
	assert.ErrorContains(t, err, "exactly one input file")

	_, err = runApp(t, "eval", writeFile(t, "a b\n"))
	assert.ErrorContains(t, err, "no root")

	_, err = runApp(t, "eval", "--validate", writeFile(t, "root: a\na b\nb c\nc a\n"))
	assert.ErrorContains(t, err, "edge count")

	_, err = runApp(t, "eval", "--strict", writeFile(t, "root: a\na b\nb a\n"))
	assert.ErrorContains(t, err, "duplicate edge")

	_, err = runApp(t, "eval", writeFile(t, "root: a\na b c\n"))
	assert.ErrorContains(t, err, "malformed line")
}

func TestGen(t *testing.T) {
	out, err := runApp(t, "gen", "--n", "4", "path")
	require.NoError(t, err)
	assert.Equal(t, "root: 0\n0 1\n1 2\n2 3\n", out)

	out, err = runApp(t, "gen", "--n", "4", "--ids", "letter", "--root", "B", "star")
	require.NoError(t, err)
	assert.Equal(t, "root: B\nA B\nA C\nA D\n", out)

	out, err = runApp(t, "gen", "--n", "3", "--ids", "v", "kary")
	require.NoError(t, err)
	assert.Equal(t, "root: v0\nv0 v1\nv0 v2\n", out)

	_, err = runApp(t, "gen", "hexagon")
	assert.ErrorIs(t, err, errUnknownShape)

	_, err = runApp(t, "gen", "--n", "30", "--ids", "letter", "path")
	assert.ErrorContains(t, err, "at most 26")
}

func TestGenThenEval(t *testing.T) {
	out, err := runApp(t, "gen", "--n", "15", "kary")
	require.NoError(t, err)

	res, err := runApp(t, "eval", "--validate", writeFile(t, out))
	require.NoError(t, err)
	assert.Equal(t, "6\n", res)
}

func TestSetupSlog(t *testing.T) {
	var buf bytes.Buffer
	logger, err := setupSlog("debug", "json", &buf)
	require.NoError(t, err)
	logger.Debug("hello", "k", 1)
	assert.Contains(t, buf.String(), `"msg":"hello"`)

	_, err = setupSlog("loud", "text", &buf)
	assert.ErrorContains(t, err, "unknown log level")

	_, err = setupSlog("info", "xml", &buf)
	assert.ErrorContains(t, err, "invalid log format")
}

func TestBadLogLevelFlag(t *testing.T) {
	_, err := runApp(t, "--log-level", "loud", "demo")
	assert.ErrorContains(t, err, "unknown log level")
}
