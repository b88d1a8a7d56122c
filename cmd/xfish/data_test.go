package main

import (
	"strings"
	"testing"

	"github.com/makeafish/xfish/internal/geometry"
)

func TestRasterize_EmptySet(t *testing.T) {
	lines := rasterize(nil, 10, 5)
	if len(lines) != 1 || lines[0] != "(no drawing data)" {
		t.Fatalf("unexpected output %v", lines)
	}
}

func TestRasterize_HorizontalLineFillsRow(t *testing.T) {
	set := geometry.Parse("0,0,100,0")
	lines := rasterize(set, 10, 3)
	if len(lines) != 3 {
		t.Fatalf("expected 3 rows, got %d", len(lines))
	}
	if lines[0] != strings.Repeat("*", 10) {
		t.Fatalf("expected a full first row, got %q", lines[0])
	}
	if lines[1] != "" || lines[2] != "" {
		t.Fatalf("expected remaining rows empty, got %q / %q", lines[1], lines[2])
	}
}

func TestRasterize_DiagonalTouchesCorners(t *testing.T) {
	set := geometry.Parse("0,0,100,100")
	lines := rasterize(set, 5, 5)
	if lines[0][0] != '*' {
		t.Fatalf("expected top-left corner set, got %q", lines[0])
	}
	if lines[4][4] != '*' {
		t.Fatalf("expected bottom-right corner set, got %q", lines[4])
	}
}

func TestRasterize_SinglePoint(t *testing.T) {
	set := geometry.Parse("7,7")
	lines := rasterize(set, 4, 4)
	total := 0
	for _, l := range lines {
		total += strings.Count(l, "*")
	}
	if total != 1 {
		t.Fatalf("expected exactly one plotted cell, got %d", total)
	}
}

func TestRasterize_DegenerateGrid(t *testing.T) {
	set := geometry.Parse("0,0,1,1")
	if lines := rasterize(set, 0, 5); lines != nil {
		t.Fatalf("expected nil for zero columns, got %v", lines)
	}
}
