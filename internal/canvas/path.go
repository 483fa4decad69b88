package canvas

import (
	"strconv"
	"strings"
)

// SmoothingRatio places the two control points of each curve segment at 40%
// and 60% of the horizontal gap between neighbouring points, at the height
// of the point they leave from and arrive at respectively.
const SmoothingRatio = 0.4

func fmtCoord(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func writePair(b *strings.Builder, p Point) {
	b.WriteString(fmtCoord(p.X))
	b.WriteByte(' ')
	b.WriteString(fmtCoord(p.Y))
}

// Polyline returns "M x0 y0 L x1 y1 ...". Fewer than two points yield "".
func Polyline(points []Point) string {
	if len(points) < 2 {
		return ""
	}
	var b strings.Builder
	b.WriteString("M ")
	writePair(&b, points[0])
	for _, p := range points[1:] {
		b.WriteString(" L ")
		writePair(&b, p)
	}
	return b.String()
}

// SmoothPath returns a cubic Bezier path through points using horizontal
// tangents at every sample. Fewer than two points yield "".
func SmoothPath(points []Point) string {
	if len(points) < 2 {
		return ""
	}
	var b strings.Builder
	b.WriteString("M ")
	writePair(&b, points[0])
	for i := 1; i < len(points); i++ {
		c1, c2 := ControlPoints(points[i-1], points[i])
		b.WriteString(" C ")
		writePair(&b, c1)
		b.WriteString(", ")
		writePair(&b, c2)
		b.WriteString(", ")
		writePair(&b, points[i])
	}
	return b.String()
}

// ControlPoints returns the two cubic control points for the segment from
// prev to next.
func ControlPoints(prev, next Point) (Point, Point) {
	dx := next.X - prev.X
	return Point{X: prev.X + dx*SmoothingRatio, Y: prev.Y},
		Point{X: next.X - dx*SmoothingRatio, Y: next.Y}
}

// FilledArea closes SmoothPath down to baselineY for the area fill.
func FilledArea(points []Point, baselineY float64) string {
	if len(points) < 2 {
		return ""
	}
	first, last := points[0], points[len(points)-1]
	var b strings.Builder
	b.WriteString(SmoothPath(points))
	b.WriteString(" L ")
	writePair(&b, Point{X: last.X, Y: baselineY})
	b.WriteString(" L ")
	writePair(&b, Point{X: first.X, Y: baselineY})
	b.WriteString(" Z")
	return b.String()
}

// SampleCurve flattens the smoothed curve into straight segments, steps per
// cubic segment. It is used by renderers that cannot draw Bezier curves.
func SampleCurve(points []Point, steps int) []Point {
	if len(points) < 2 {
		out := make([]Point, len(points))
		copy(out, points)
		return out
	}
	if steps < 1 {
		steps = 1
	}
	out := make([]Point, 0, (len(points)-1)*steps+1)
	out = append(out, points[0])
	for i := 1; i < len(points); i++ {
		p0, p3 := points[i-1], points[i]
		p1, p2 := ControlPoints(p0, p3)
		for s := 1; s <= steps; s++ {
			if s == steps {
				out = append(out, p3)
				continue
			}
			t := float64(s) / float64(steps)
			out = append(out, cubicAt(p0, p1, p2, p3, t))
		}
	}
	return out
}

func cubicAt(p0, p1, p2, p3 Point, t float64) Point {
	mt := 1 - t
	a := mt * mt * mt
	b := 3 * mt * mt * t
	c := 3 * mt * t * t
	d := t * t * t
	return Point{
		X: a*p0.X + b*p1.X + c*p2.X + d*p3.X,
		Y: a*p0.Y + b*p1.Y + c*p2.Y + d*p3.Y,
	}
}
