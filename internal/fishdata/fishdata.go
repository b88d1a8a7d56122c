// Package fishdata supplies the drawing-data text consumed by the geometry
// parser: either the embedded fallback set or a freshly generated fish.
package fishdata

import (
	_ "embed"
	"math"
	"math/rand"
	"strconv"
	"strings"
)

// ModeFallback selects the embedded "come back" data set instead of a
// generated fish. Any other mode value generates.
const ModeFallback = "bad"

//go:embed comeback.csv
var fallback string

// Select returns the drawing-data text for the given mode. A missing mode is
// treated as a request for a fresh fish.
func Select(mode string) string {
	if mode == ModeFallback {
		return fallback
	}
	return Generate()
}

// Fallback returns the embedded data set.
func Fallback() string {
	return fallback
}

// Generate produces a fish as row-oriented coordinate text, sized for the
// default 520x320 window. Proportions vary a little per call so repeated
// requests do not draw the identical fish.
func Generate() string {
	const cx, cy = 230.0, 170.0
	rx := 110 + rand.Float64()*40
	ry := 45 + rand.Float64()*20

	var rows []string
	rows = append(rows, body(cx, cy, rx, ry))
	rows = append(rows, tail(cx-rx, cy, ry))
	rows = append(rows, eye(cx+rx*0.68, cy-ry*0.3))
	rows = append(rows, gill(cx+rx*0.45, cy, ry))
	return strings.Join(rows, "\n") + "\n"
}

func body(cx, cy, rx, ry float64) string {
	const steps = 24
	pts := make([]float64, 0, (steps+1)*2)
	for i := 0; i <= steps; i++ {
		t := 2 * math.Pi * float64(i) / steps
		// Taper the belly toward the tail for a fish-ish silhouette.
		pts = append(pts, cx+rx*math.Cos(t), cy+ry*math.Sin(t)*(0.75+0.25*math.Cos(t)))
	}
	return row(pts)
}

func tail(tipX, cy, ry float64) string {
	spread := ry*0.7 + rand.Float64()*10
	back := tipX - 40 - rand.Float64()*15
	return row([]float64{tipX, cy, back, cy - spread, back + 8, cy, back, cy + spread, tipX, cy})
}

func eye(x, y float64) string {
	const r = 6
	return row([]float64{x - r, y, x, y - r, x + r, y, x, y + r, x - r, y})
}

func gill(x, cy, ry float64) string {
	const steps = 8
	pts := make([]float64, 0, (steps+1)*2)
	for i := 0; i <= steps; i++ {
		t := math.Pi * (0.65 + 0.7*float64(i)/steps)
		pts = append(pts, x+30*math.Cos(t), cy-ry*0.8*math.Sin(t))
	}
	return row(pts)
}

func row(pts []float64) string {
	parts := make([]string, len(pts))
	for i, v := range pts {
		parts[i] = strconv.Itoa(int(v))
	}
	return strings.Join(parts, ",")
}
