// Package chart renders the strategy canvas as an SVG document.
package chart

import (
	"fmt"
	"html"
	"io"
	"math"

	svg "github.com/ajstarks/svgo/float"

	"github.com/banshee-data/strategy.canvas/internal/canvas"
	"github.com/banshee-data/strategy.canvas/internal/i18n"
)

// Options carries the session state the view depends on. Nothing is read
// from globals.
type Options struct {
	Viewport canvas.Viewport
	Theme    Theme
	Language i18n.Language
	ShowGrid bool
	// Active is the id of the factor being dragged, if any.
	Active string
}

// Layout constants in pixels.
const (
	gridCellW    = 50
	gridCellH    = 40
	tickHalf     = 8
	tickLabelGap = 15
	nameOffset   = 25
	valueOffset  = 18
	pointRadius  = 8
	activeRadius = 10
	hitRadius    = 25
	glowRadius   = 15
)

var tickScores = []float64{0, 25, 50, 75, 100}

// Render writes the chart for factors as a standalone SVG document.
func Render(w io.Writer, factors []canvas.Factor, opts Options) error {
	vp := opts.Viewport
	if err := vp.Validate(); err != nil {
		return err
	}
	pal := opts.Theme.Palette()
	msg := i18n.Catalog(opts.Language)
	m := canvas.NewMapper(vp, len(factors))
	pts := m.Points(factors)
	tl, br := m.PlotRect()
	plotW, plotH := vp.PlotWidth(), vp.PlotHeight()

	ew := &errWriter{w: w}
	c := svg.New(ew)
	c.Start(vp.Width, vp.Height,
		fmt.Sprintf(`direction="%s"`, opts.Language.Dir()),
		fmt.Sprintf(`data-theme="%s"`, opts.Theme),
		`font-family="system-ui, sans-serif"`)
	c.Title(msg.Title)

	c.Def()
	if opts.ShowGrid {
		fmt.Fprintf(c.Writer, `<pattern id="grid" width="%d" height="%d" patternUnits="userSpaceOnUse">`+"\n",
			gridCellW, gridCellH)
		c.Path(fmt.Sprintf("M %d 0 L 0 0 0 %d", gridCellW, gridCellH),
			`fill="none"`, fmt.Sprintf(`stroke="%s"`, pal.Grid), `stroke-width="1"`)
		fmt.Fprintln(c.Writer, `</pattern>`)
	}
	c.LinearGradient("areaGradient", 0, 0, 0, 100, []svg.Offcolor{
		{Offset: 0, Color: pal.Line, Opacity: 0.2},
		{Offset: 100, Color: pal.Line, Opacity: 0.05},
	})
	c.DefEnd()

	c.Rect(0, 0, vp.Width, vp.Height, fmt.Sprintf(`fill="%s"`, pal.Background))
	if opts.ShowGrid {
		c.Rect(0, 0, vp.Width, vp.Height, `fill="url(#grid)"`)
	}

	// Performance zones, strong at the top.
	c.Group(`opacity="0.3"`, `class="zones"`)
	c.Rect(tl.X, tl.Y, plotW, plotH*0.25, fmt.Sprintf(`fill="%s"`, pal.Strong), `opacity="0.1"`)
	c.Rect(tl.X, tl.Y+plotH*0.25, plotW, plotH*0.5, fmt.Sprintf(`fill="%s"`, pal.Moderate), `opacity="0.1"`)
	c.Rect(tl.X, tl.Y+plotH*0.75, plotW, plotH*0.25, fmt.Sprintf(`fill="%s"`, pal.Weak), `opacity="0.1"`)
	c.Gend()

	axis := fmt.Sprintf(`stroke="%s"`, pal.Axis)
	c.Line(tl.X, tl.Y, tl.X, br.Y, axis, `stroke-width="2"`)
	c.Line(tl.X, br.Y, br.X, br.Y, axis, `stroke-width="2"`)

	anchor := "end"
	if opts.Language.IsRTL() {
		anchor = "start"
	}
	for _, s := range tickScores {
		y := m.YOf(s)
		c.Line(tl.X, y, br.X, y, fmt.Sprintf(`stroke="%s"`, pal.GuideLine),
			`stroke-width="1"`, `stroke-dasharray="2,4"`, `opacity="0.5"`)
		c.Line(tl.X-tickHalf, y, tl.X+tickHalf, y, axis, `stroke-width="2"`)
		c.Text(tl.X-tickLabelGap, y, fmt.Sprintf("%.0f%%", s),
			fmt.Sprintf(`text-anchor="%s"`, anchor), `dy=".35em"`,
			fmt.Sprintf(`fill="%s"`, pal.Text), `font-size="14"`)
	}

	c.Text(25, vp.Height/2, msg.PerformanceLabel,
		`text-anchor="middle"`, fmt.Sprintf(`transform="rotate(-90 25 %s)"`, fmtNum(vp.Height/2)),
		fmt.Sprintf(`fill="%s"`, pal.Heading), `font-size="14"`, `font-weight="600"`)

	if len(pts) > 1 {
		c.Path(canvas.FilledArea(pts, m.Baseline()), `fill="url(#areaGradient)"`, `class="area"`)
		c.Path(canvas.SmoothPath(pts), `fill="none"`, fmt.Sprintf(`stroke="%s"`, pal.Line),
			`stroke-width="4"`, `stroke-linejoin="round"`, `stroke-linecap="round"`, `class="strategy-line"`)
	}

	for i, f := range factors {
		p := pts[i]
		active := f.ID == opts.Active
		c.Group(`class="factor"`, fmt.Sprintf(`data-factor-id="%s"`, attrEscape(f.ID)),
			fmt.Sprintf(`data-index="%d"`, i))
		c.Circle(p.X, p.Y, hitRadius, `fill="transparent"`, `class="hit"`)
		r := float64(pointRadius)
		if active {
			c.Circle(p.X, p.Y, glowRadius, fmt.Sprintf(`fill="%s"`, pal.Line), `opacity="0.2"`)
			r = activeRadius
		}
		c.Circle(p.X, p.Y, r, fmt.Sprintf(`fill="%s"`, pal.Line),
			fmt.Sprintf(`stroke="%s"`, pal.PointRing), `stroke-width="3"`, `class="point"`)
		c.Text(p.X, br.Y+nameOffset, f.Name, `text-anchor="middle"`,
			fmt.Sprintf(`fill="%s"`, pal.Heading), `font-size="14"`, `font-weight="600"`)
		c.Text(p.X, p.Y-valueOffset, fmt.Sprintf("%d%%", int(math.Round(f.Score))),
			`text-anchor="middle"`, fmt.Sprintf(`fill="%s"`, pal.Value), `font-size="14"`, `font-weight="700"`)
		c.Gend()
	}

	c.Text(vp.Width/2, vp.Height-20, msg.FactorsLabel, `text-anchor="middle"`,
		fmt.Sprintf(`fill="%s"`, pal.Heading), `font-size="14"`, `font-weight="600"`)
	c.End()

	return ew.err
}

func attrEscape(s string) string {
	return html.EscapeString(s)
}

func fmtNum(v float64) string {
	return fmt.Sprintf("%g", v)
}

// errWriter records the first write error so Render can report it after
// svgo, which ignores write errors, has finished.
type errWriter struct {
	w   io.Writer
	err error
}

func (e *errWriter) Write(p []byte) (int, error) {
	if e.err != nil {
		return len(p), nil
	}
	n, err := e.w.Write(p)
	if err != nil {
		e.err = err
	}
	return n, err
}
