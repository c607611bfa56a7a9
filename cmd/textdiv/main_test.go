package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fixture writes the four-file corpus used by the CLI tests.
func fixture(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	files := map[string]string{
		"a.txt": "the quick brown fox",
		"b.txt": "the quick brown fix",
		"c.txt": "lorem ipsum dolor sit amet",
		"d.md":  "ignored by the extension filter",
	}
	for name, content := range files {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644))
	}

	return dir
}

func runCLI(t *testing.T, args ...string) (int, string, string) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	code := run(args, &stdout, &stderr)

	return code, stdout.String(), stderr.String()
}

func TestRun_Usage(t *testing.T) {
	code, _, stderr := runCLI(t)
	assert.Equal(t, exitConfig, code)
	assert.Contains(t, stderr, "usage: textdiv")

	code, _, stderr = runCLI(t, "frobnicate")
	assert.Equal(t, exitConfig, code)
	assert.Contains(t, stderr, "unknown command")
}

func TestRun_Metrics(t *testing.T) {
	code, stdout, _ := runCLI(t, "metrics")
	require.Equal(t, exitOK, code)
	for _, want := range []string{"levenshtein", "diff_lines", "ncd_zstd", "token_sort", "brotli"} {
		assert.Contains(t, stdout, want)
	}
}

func TestRun_DistancesThenDivseq(t *testing.T) {
	dir := fixture(t)
	out := filepath.Join(t.TempDir(), "m.csv")

	code, _, stderr := runCLI(t, "distances", "-metric", "levenshtein", "-ext", "txt",
		"-log-level", "disabled", "-o", out, dir)
	require.Equal(t, exitOK, code, stderr)

	data, err := os.ReadFile(out)
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	require.Len(t, lines, 4)
	assert.Equal(t, "File,a.txt,b.txt,c.txt", lines[0])
	assert.Equal(t, "a.txt,0,1,", lines[1][:len("a.txt,0,1,")])

	code, stdout, stderr := runCLI(t, "divseq", "-matrix", out, "-log-level", "disabled")
	require.Equal(t, exitOK, code, stderr)
	rows := strings.Split(strings.TrimSpace(stdout), "\n")
	require.Len(t, rows, 4)
	assert.Equal(t, "File,Rank_MaxiMin", rows[0])
	assert.Equal(t, "c.txt,1", rows[1], "the outlier has the largest row sum")
}

func TestRun_DivseqJSON(t *testing.T) {
	dir := fixture(t)
	code, stdout, stderr := runCLI(t, "divseq", "-metric", "ncd_zlib", "-strategy", "maximean",
		"-format", "json", "-ext", ".TXT", "-log-level", "disabled", dir)
	require.Equal(t, exitOK, code, stderr)
	assert.Contains(t, stdout, `"strategy": "MaxiMean"`)
	assert.Contains(t, stdout, `"metric": "ncd_zlib"`)
}

func TestRun_Pair(t *testing.T) {
	code, stdout, stderr := runCLI(t, "pair", "-text", "-metric", "levenstein", "kitten", "sitting")
	require.Equal(t, exitOK, code, stderr)
	assert.Equal(t, "levenshtein\t3\n", stdout)
	assert.Contains(t, stderr, "metric name resolved")

	code, _, _ = runCLI(t, "pair", "-text", "only-one")
	assert.Equal(t, exitConfig, code)

	code, _, _ = runCLI(t, "pair", "-log-level", "disabled", "/does/not/exist", "/nor/this")
	assert.Equal(t, exitCompute, code)
}

func TestRun_LiteralSamples(t *testing.T) {
	code, stdout, stderr := runCLI(t, "distances", "-text", "-metric", "levenshtein",
		"-log-level", "disabled", "kitten", "sitting", "mitten")
	require.Equal(t, exitOK, code, stderr)
	assert.Equal(t, "File,0,1,2\n0,0,3,1\n1,3,0,3\n2,1,3,0\n", stdout)
}

func TestRun_OutOfRangeLevelIsClamped(t *testing.T) {
	code, stdout, stderr := runCLI(t, "pair", "-text", "-metric", "ncd_zlib", "-level", "-5",
		"-log-level", "info", "abcabcabc", "abcabcabd")
	require.Equal(t, exitOK, code, stderr)
	assert.True(t, strings.HasPrefix(stdout, "ncd_zlib\t"), stdout)
	assert.Contains(t, stderr, "compression level")

	t.Setenv("TEXTDIV_LEVEL", "42")
	code, _, stderr = runCLI(t, "pair", "-text", "-metric", "ncd_zstd", "-log-level", "disabled", "a", "b")
	assert.Equal(t, exitOK, code, stderr)
}

func TestRun_Query(t *testing.T) {
	dir := fixture(t)
	code, stdout, stderr := runCLI(t, "query", "-q", filepath.Join(dir, "a.txt"), "-metric", "levenshtein",
		"-top", "1", "-ext", "txt", "-log-level", "disabled", dir)
	require.Equal(t, exitOK, code, stderr)
	assert.True(t, strings.HasPrefix(stdout, "# nearest\nFile,Distance\na.txt,0\n\n# farthest\nFile,Distance\nc.txt,"), stdout)
}

func TestRun_ConfigurationErrors(t *testing.T) {
	dir := fixture(t)
	tests := map[string][]string{
		"bad strategy": {"divseq", "-strategy", "maxisum", dir},
		"no files":     {"distances", "-ext", "csv", dir},
		"no paths":     {"distances"},
		"bad flag":     {"distances", "-nope"},
		"bad format":   {"distances", "-format", "xml", dir},
	}
	for name, args := range tests {
		code, _, _ := runCLI(t, append(args[:1:1], append([]string{"-log-level", "disabled"}, args[1:]...)...)...)
		assert.Equal(t, exitConfig, code, name)
	}
}
