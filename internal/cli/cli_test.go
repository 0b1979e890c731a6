package cli

import (
	"bytes"
	"encoding/json"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/milden6/dawg-anagram/anagram"
	"github.com/milden6/dawg-anagram/errors"
	"github.com/milden6/dawg-anagram/internal/dawgtest"
)

// execute runs the root command with args and returns what it printed.
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	c := New(io.Discard, LogInfo)
	root := c.RootCommand()

	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(io.Discard)
	root.SetArgs(args)

	err := root.Execute()
	return out.String(), err
}

func writeGraph(t *testing.T, words ...string) string {
	t.Helper()
	return dawgtest.WriteFile(t, "words.dat", dawgtest.Build(words...))
}

func TestSolveCommand(t *testing.T) {
	graph := writeGraph(t, "AT", "TA", "ACT", "CAT")

	out, err := execute(t, "--graph", graph, "solve", "c", "at")
	require.NoError(t, err)
	assert.Equal(t, "ACT\nAT\nCAT\nTA\nA\n_EOR\n", out)
}

func TestSolveCommandJSON(t *testing.T) {
	graph := writeGraph(t, "CAT")

	out, err := execute(t, "--graph", graph, "solve", "--json", "c?t")
	require.NoError(t, err)

	var body struct {
		Letters string          `json:"letters"`
		Words   []string        `json:"words"`
		Groups  []anagram.Group `json:"groups"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &body))
	assert.Equal(t, "?CT", body.Letters)
	assert.Equal(t, []string{"CaT"}, body.Words)
	assert.Equal(t, []anagram.Group{{Length: 3, Words: []string{"CaT"}}}, body.Groups)
}

func TestSolveCommandGroup(t *testing.T) {
	graph := writeGraph(t, "AT", "TA", "ACT", "CAT")

	out, err := execute(t, "--graph", graph, "solve", "--group", "cat")
	require.NoError(t, err)
	assert.Contains(t, out, "1 letter")
	assert.Contains(t, out, "2 letters")
	assert.Contains(t, out, "ACT CAT")

	out, err = execute(t, "--graph", graph, "solve", "--group", "xyz")
	require.NoError(t, err)
	assert.Contains(t, out, "No results found!")
}

func TestSolveCommandErrors(t *testing.T) {
	graph := writeGraph(t, "CAT")

	_, err := execute(t, "--graph", graph, "solve", strings.Repeat("a", anagram.MaxInputLength+1))
	assert.True(t, errors.Is(err, errors.ErrCodeInputTooLong), "got %v", err)

	_, err = execute(t, "--graph", filepath.Join(t.TempDir(), "missing.dat"), "solve", "cat")
	assert.True(t, errors.Is(err, errors.ErrCodeIO), "got %v", err)

	_, err = execute(t, "--graph", graph, "solve")
	assert.Error(t, err)
}

func TestConfigGraphDir(t *testing.T) {
	graph := writeGraph(t, "AT", "TA")
	cfg := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(cfg, []byte(`
graph = "words.dat"
graph_dir = "`+filepath.ToSlash(filepath.Dir(graph))+`"
`), 0o644))

	out, err := execute(t, "--config", cfg, "solve", "ta")
	require.NoError(t, err)
	assert.Equal(t, "AT\nTA\nA\n_EOR\n", out)
}

func TestDumpCommand(t *testing.T) {
	graph := writeGraph(t, "AT", "TA", "ACT", "CAT")
	dir := t.TempDir()
	words := filepath.Join(dir, "words.txt")
	nodes := filepath.Join(dir, "nodes.txt")
	decoded := filepath.Join(dir, "decoded.txt")

	out, err := execute(t, "--graph", graph, "dump", "--words", words, "--nodes", nodes, "--decoded", decoded)
	require.NoError(t, err)
	assert.Contains(t, out, "is valid")
	assert.Contains(t, out, "4")

	data, err := os.ReadFile(words)
	require.NoError(t, err)
	assert.Equal(t, "ACT\nAT\nCAT\nTA\n", string(data))

	data, err = os.ReadFile(nodes)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(data), "[00000000] NodeCount="), "node dump starts with %q", data)

	data, err = os.ReadFile(decoded)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(data), "[     1] 'A' eow=false eol="), "decoded dump starts with %q", data)
	assert.Contains(t, string(data), "'T' eow=true")
}

func TestDumpCommandRejectsBadGraph(t *testing.T) {
	graph := dawgtest.WriteFile(t, "bad.dat", []byte{1, 2})

	_, err := execute(t, "--graph", graph, "dump")
	assert.True(t, errors.Is(err, errors.ErrCodeFormat), "got %v", err)

	// a node whose child is its own list
	cyclic := dawgtest.WriteFile(t, "cyclic.dat", dawgtest.Raw(0, dawgtest.Record('A', true, true, 1)))
	_, err = execute(t, "--graph", cyclic, "dump")
	assert.True(t, errors.Is(err, errors.ErrCodeFormat), "got %v", err)
}

func TestGraphsCommand(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "a.dat"), dawgtest.Build("CAT"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "b.dat"), []byte{1}, 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "readme.txt"), nil, 0o644))

	out, err := execute(t, "graphs", "--dir", dir)
	require.NoError(t, err)
	assert.Contains(t, out, "a.dat")
	assert.Contains(t, out, "b.dat")
	assert.NotContains(t, out, "readme.txt")

	out, err = execute(t, "graphs", "--dir", dir, "--long")
	require.NoError(t, err)
	assert.Contains(t, out, "nodes)")
	assert.Contains(t, out, "b.dat: ")

	out, err = execute(t, "graphs", "--dir", t.TempDir())
	require.NoError(t, err)
	assert.Contains(t, out, "No graphs")
}

func TestBadConfig(t *testing.T) {
	cfg := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(cfg, []byte(`log_level = "loud"`), 0o644))

	_, err := execute(t, "--config", cfg, "graphs")
	assert.True(t, errors.Is(err, errors.ErrCodeInvalidInput), "got %v", err)
}
