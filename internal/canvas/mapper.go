package canvas

import (
	"fmt"
	"math"
)

// Viewport is the pixel size of the chart and the uniform margin around the
// plot area.
type Viewport struct {
	Width  float64 `json:"width" mapstructure:"width"`
	Height float64 `json:"height" mapstructure:"height"`
	Margin float64 `json:"margin" mapstructure:"margin"`
}

// DefaultViewport matches the size the chart was designed at.
var DefaultViewport = Viewport{Width: 900, Height: 500, Margin: 80}

// Validate reports whether the viewport leaves a non-empty plot area.
func (v Viewport) Validate() error {
	if v.Width <= 0 || v.Height <= 0 {
		return fmt.Errorf("viewport dimensions must be positive, got %vx%v", v.Width, v.Height)
	}
	if v.Margin <= 0 {
		return fmt.Errorf("viewport margin must be positive, got %v", v.Margin)
	}
	if 2*v.Margin >= v.Width || 2*v.Margin >= v.Height {
		return fmt.Errorf("viewport margin %v leaves no plot area in %vx%v", v.Margin, v.Width, v.Height)
	}
	return nil
}

// PlotWidth is the horizontal extent inside the margins.
func (v Viewport) PlotWidth() float64 { return v.Width - 2*v.Margin }

// PlotHeight is the vertical extent inside the margins.
func (v Viewport) PlotHeight() float64 { return v.Height - 2*v.Margin }

// Point is a pixel coordinate with the origin at the top-left of the chart.
type Point struct {
	X float64
	Y float64
}

// Mapper converts between factor index/score and chart pixels for a fixed
// viewport and factor count.
type Mapper struct {
	vp Viewport
	n  int
}

// NewMapper returns a mapper for n factors drawn into vp.
func NewMapper(vp Viewport, n int) Mapper {
	return Mapper{vp: vp, n: n}
}

// Viewport returns the viewport the mapper was built for.
func (m Mapper) Viewport() Viewport { return m.vp }

// XOf returns the horizontal position of the factor at index. With one or
// zero factors every point sits on the left margin.
func (m Mapper) XOf(index int) float64 {
	steps := math.Max(1, float64(m.n-1))
	return m.vp.Margin + float64(index)*m.vp.PlotWidth()/steps
}

// YOf returns the vertical position of score. 100 is the top of the plot
// area and 0 the bottom.
func (m Mapper) YOf(score float64) float64 {
	return m.vp.Margin + m.vp.PlotHeight()*(1-score/100)
}

// ScoreOfY inverts YOf and clamps the result to [0, 100].
func (m Mapper) ScoreOfY(y float64) float64 {
	return ClampScore((1 - (y-m.vp.Margin)/m.vp.PlotHeight()) * 100)
}

// Baseline is the y coordinate of the bottom of the plot area.
func (m Mapper) Baseline() float64 {
	return m.vp.Height - m.vp.Margin
}

// PlotRect returns the top-left and bottom-right corners of the plot area.
func (m Mapper) PlotRect() (Point, Point) {
	return Point{X: m.vp.Margin, Y: m.vp.Margin},
		Point{X: m.vp.Width - m.vp.Margin, Y: m.vp.Height - m.vp.Margin}
}

// Point maps one factor position.
func (m Mapper) Point(index int, score float64) Point {
	return Point{X: m.XOf(index), Y: m.YOf(score)}
}

// Points maps an ordered factor snapshot to chart coordinates.
func (m Mapper) Points(factors []Factor) []Point {
	pts := make([]Point, len(factors))
	for i, f := range factors {
		pts[i] = m.Point(i, f.Score)
	}
	return pts
}
