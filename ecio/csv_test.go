package ecio

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/eqcol/descent"
	"github.com/katalvlaran/eqcol/tabu"
)

func TestAppendRowWritesHeaderOnceForNewFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "results.csv")

	cfg := tabu.NewConfig()
	res := descent.Result{InitialK: 4, BestK: 2, DevPercent: 50, TotalIter: 123}

	require.NoError(t, AppendRow(path, "inst1.txt", 1, cfg, res, 1.2345))
	require.NoError(t, AppendRow(path, "inst1.txt", 1, cfg, res, 1.2345))

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	lines := splitLines(string(data))
	require.Len(t, lines, 3) // header + 2 rows
	require.Equal(t, "Instance;Seed;Alpha;Beta;P_Limit;P_Str;Asp;SI;SF;Dev(%);Time(s);TotalIter", lines[0])
	require.Contains(t, lines[1], "inst1.txt;1;")
	require.Contains(t, lines[1], ";4;2;50.00;1.2345;123")
}

func TestAppendRowSkipsHeaderForNonEmptyFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "results.csv")
	require.NoError(t, os.WriteFile(path, []byte("preexisting\n"), 0o644))

	cfg := tabu.NewConfig()
	res := descent.Result{InitialK: 1, BestK: 1, DevPercent: 0, TotalIter: 0}
	require.NoError(t, AppendRow(path, "inst2.txt", 0, cfg, res, 0.0001))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	lines := splitLines(string(data))
	require.Len(t, lines, 2)
	require.Equal(t, "preexisting", lines[0])
}

func splitLines(s string) []string {
	var lines []string
	start := 0
	for i := 0; i < len(s); i++ {
		if s[i] == '\n' {
			lines = append(lines, s[start:i])
			start = i + 1
		}
	}
	if start < len(s) {
		lines = append(lines, s[start:])
	}
	return lines
}
