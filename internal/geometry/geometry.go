// Package geometry converts row-oriented coordinate text into polylines.
//
// The input format is plain positional CSV: newline-separated rows, each row a
// comma-separated list of numeric tokens grouped into (x, y) pairs. There is no
// header, quoting, or escaping. Parsing is deliberately permissive: a token
// that does not parse as a number (or does not fit the X11 coordinate range)
// is skipped, and an unpaired trailing value is discarded.
package geometry

import (
	"math"
	"strconv"
	"strings"
)

// Point is one coordinate pair. X11 drawing coordinates are signed 16-bit, so
// the parser rejects anything outside that range instead of wrapping.
type Point struct {
	X int16
	Y int16
}

// Polyline is an ordered sequence of points rendered as a connected line strip.
type Polyline []Point

// DrawingSet is the ordered collection of polylines produced from one input
// text. Order defines draw sequence only; polylines are independent strokes on
// a shared canvas. A parsed set is never mutated by the renderer.
type DrawingSet []Polyline

// Parse converts coordinate text into a DrawingSet. Each non-empty row becomes
// one polyline; rows that yield no points are dropped. Parse never fails: the
// permissive skip policy means the worst input produces an empty set.
func Parse(text string) DrawingSet {
	var set DrawingSet
	for _, row := range strings.Split(text, "\n") {
		coords := parseRow(row)
		if pl := pair(coords); len(pl) > 0 {
			set = append(set, pl)
		}
	}
	return set
}

// parseRow extracts the numeric tokens of one row, in order. Tokens are parsed
// as floats then truncated toward zero, matching the source data which carries
// fractional coordinates.
func parseRow(row string) []int16 {
	var coords []int16
	for _, tok := range strings.Split(row, ",") {
		f, err := strconv.ParseFloat(strings.TrimSpace(tok), 64)
		if err != nil {
			continue
		}
		v := math.Trunc(f)
		if v < math.MinInt16 || v > math.MaxInt16 {
			continue
		}
		coords = append(coords, int16(v))
	}
	return coords
}

func pair(coords []int16) Polyline {
	n := len(coords) / 2
	if n == 0 {
		return nil
	}
	pl := make(Polyline, 0, n)
	for i := 0; i+1 < len(coords); i += 2 {
		pl = append(pl, Point{X: coords[i], Y: coords[i+1]})
	}
	return pl
}

// PointCount returns the total number of points across all polylines.
func (s DrawingSet) PointCount() int {
	n := 0
	for _, pl := range s {
		n += len(pl)
	}
	return n
}

// Bounds returns the bounding box of the set. ok is false for an empty set.
func (s DrawingSet) Bounds() (minX, minY, maxX, maxY int16, ok bool) {
	for _, pl := range s {
		for _, p := range pl {
			if !ok {
				minX, maxX, minY, maxY, ok = p.X, p.X, p.Y, p.Y, true
				continue
			}
			if p.X < minX {
				minX = p.X
			}
			if p.X > maxX {
				maxX = p.X
			}
			if p.Y < minY {
				minY = p.Y
			}
			if p.Y > maxY {
				maxY = p.Y
			}
		}
	}
	return minX, minY, maxX, maxY, ok
}

// String serializes the set back to the row-oriented text form. Parsing the
// result yields an identical set.
func (s DrawingSet) String() string {
	var b strings.Builder
	for i, pl := range s {
		if i > 0 {
			b.WriteByte('\n')
		}
		for j, p := range pl {
			if j > 0 {
				b.WriteByte(',')
			}
			b.WriteString(strconv.Itoa(int(p.X)))
			b.WriteByte(',')
			b.WriteString(strconv.Itoa(int(p.Y)))
		}
	}
	return b.String()
}
