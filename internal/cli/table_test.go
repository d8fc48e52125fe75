package cli

import (
	"strings"
	"testing"
)

func TestTable_AlignsColumns(t *testing.T) {
	out := Table(
		[]string{"Topic", "Level"},
		[][]string{
			{"Friction", "2"},
			{"Work and Energy", "3"},
		},
	)

	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	if len(lines) != 3 {
		t.Fatalf("lines = %d, want 3", len(lines))
	}
	// Both data rows put the level in the same column.
	if strings.Index(lines[1], "2") != strings.Index(lines[2], "3") {
		t.Errorf("columns misaligned:\n%s", out)
	}
}

func TestTable_ShortRow(t *testing.T) {
	out := Table([]string{"A", "B", "C"}, [][]string{{"x"}})
	if !strings.Contains(out, "x") {
		t.Errorf("missing cell in:\n%s", out)
	}
}
