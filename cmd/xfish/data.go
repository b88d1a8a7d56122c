package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/term"

	"github.com/makeafish/xfish/internal/config"
	"github.com/makeafish/xfish/internal/fishdata"
	"github.com/makeafish/xfish/internal/geometry"
)

func printDataUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: xfish data <command>")
	fmt.Fprintln(w, "")
	fmt.Fprintln(w, "Commands:")
	fmt.Fprintln(w, "  preview    Render the drawing data as ASCII in the terminal")
}

func runData(args []string) int {
	if len(args) == 0 {
		printDataUsage(os.Stderr)
		return 2
	}

	switch args[0] {
	case "preview":
		return runDataPreview(args[1:])
	case "help", "-h", "--help":
		printDataUsage(os.Stdout)
		return 0
	default:
		fmt.Fprintf(os.Stderr, "Unknown data command: %s\n\n", args[0])
		printDataUsage(os.Stderr)
		return 2
	}
}

func runDataPreview(args []string) int {
	fs := flag.NewFlagSet("data preview", flag.ContinueOnError)
	fs.SetOutput(os.Stderr)
	mode := fs.String("mode", "", "Drawing-data mode ('bad' selects the embedded fallback set)")
	cols := fs.Int("cols", 0, "Output width in columns (default: terminal width)")
	rows := fs.Int("rows", 0, "Output height in rows (default: terminal height)")
	fs.Usage = func() {
		fmt.Fprintln(os.Stderr, "Usage: xfish data preview [-mode bad] [-cols n] [-rows n]")
		fmt.Fprintln(os.Stderr, "")
		fmt.Fprintln(os.Stderr, "Show the drawing data without contacting an X server.")
	}
	if err := fs.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return 0
		}
		return 2
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	m := *mode
	if m == "" {
		m = cfg.DataMode
	}

	c, r := *cols, *rows
	if c == 0 || r == 0 {
		tc, tr := terminalSize()
		if c == 0 {
			c = tc
		}
		if r == 0 {
			r = tr
		}
	}

	set := geometry.Parse(fishdata.Select(m))
	for _, line := range rasterize(set, c, r) {
		fmt.Println(line)
	}
	return 0
}

// terminalSize returns the stdout terminal dimensions, or a conservative
// default when stdout is not a terminal.
func terminalSize() (cols, rows int) {
	fd := int(os.Stdout.Fd())
	if term.IsTerminal(fd) {
		if c, r, err := term.GetSize(fd); err == nil && c > 2 && r > 2 {
			// Leave a row for the shell prompt.
			return c, r - 1
		}
	}
	return 80, 24
}

// rasterize scales the drawing set to fit a cols x rows character grid and
// plots each polyline with line segments.
func rasterize(set geometry.DrawingSet, cols, rows int) []string {
	if cols < 1 || rows < 1 {
		return nil
	}

	minX, minY, maxX, maxY, ok := set.Bounds()
	if !ok {
		return []string{"(no drawing data)"}
	}

	spanX := int(maxX) - int(minX)
	spanY := int(maxY) - int(minY)
	if spanX == 0 {
		spanX = 1
	}
	if spanY == 0 {
		spanY = 1
	}

	grid := make([][]byte, rows)
	for i := range grid {
		grid[i] = []byte(strings.Repeat(" ", cols))
	}

	scale := func(p geometry.Point) (int, int) {
		x := (int(p.X) - int(minX)) * (cols - 1) / spanX
		y := (int(p.Y) - int(minY)) * (rows - 1) / spanY
		return x, y
	}

	for _, pl := range set {
		x0, y0 := scale(pl[0])
		plot(grid, x0, y0)
		for _, p := range pl[1:] {
			x1, y1 := scale(p)
			segment(grid, x0, y0, x1, y1)
			x0, y0 = x1, y1
		}
	}

	lines := make([]string, rows)
	for i, row := range grid {
		lines[i] = strings.TrimRight(string(row), " ")
	}
	return lines
}

func plot(grid [][]byte, x, y int) {
	if y >= 0 && y < len(grid) && x >= 0 && x < len(grid[y]) {
		grid[y][x] = '*'
	}
}

// segment draws a line with the integer midpoint variant of Bresenham.
func segment(grid [][]byte, x0, y0, x1, y1 int) {
	dx := abs(x1 - x0)
	dy := -abs(y1 - y0)
	sx, sy := 1, 1
	if x0 > x1 {
		sx = -1
	}
	if y0 > y1 {
		sy = -1
	}
	err := dx + dy

	for {
		plot(grid, x0, y0)
		if x0 == x1 && y0 == y1 {
			return
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x0 += sx
		}
		if e2 <= dx {
			err += dx
			y0 += sy
		}
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
