// Package export produces downloadable renditions of the chart: a PNG
// raster and an interactive HTML preview.
package export

import (
	"errors"
	"fmt"
	"image/color"
	"io"
	"strconv"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/text"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	"github.com/banshee-data/strategy.canvas/internal/canvas"
	"github.com/banshee-data/strategy.canvas/internal/chart"
	"github.com/banshee-data/strategy.canvas/internal/i18n"
	"github.com/banshee-data/strategy.canvas/internal/monitoring"
)

// FileName is the download name of the PNG export.
const FileName = "strategy-canvas.png"

// ErrExport wraps every export failure.
var ErrExport = errors.New("export failed")

// pngDPI is the resolution vgimg renders PNGs at.
const pngDPI = 96

// curveSteps is the number of straight segments used per curve segment.
const curveSteps = 24

// PNG rasterizes the chart for factors into w. It only reads factors.
func PNG(w io.Writer, factors []canvas.Factor, opts chart.Options) error {
	p, err := buildPlot(factors, opts)
	if err != nil {
		return err
	}

	width := vg.Length(opts.Viewport.Width) * vg.Inch / pngDPI
	height := vg.Length(opts.Viewport.Height) * vg.Inch / pngDPI
	wt, err := p.WriterTo(width, height, "png")
	if err != nil {
		return fmt.Errorf("%w: %v", ErrExport, err)
	}
	if _, err := wt.WriteTo(w); err != nil {
		return fmt.Errorf("%w: %v", ErrExport, err)
	}
	monitoring.Debugf("exported png with %d factors", len(factors))
	return nil
}

func buildPlot(factors []canvas.Factor, opts chart.Options) (*plot.Plot, error) {
	if len(factors) == 0 {
		return nil, fmt.Errorf("%w: no factors to draw", ErrExport)
	}
	if err := opts.Viewport.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrExport, err)
	}

	pal := opts.Theme.Palette()
	msg := i18n.Catalog(opts.Language)

	p := plot.New()
	p.BackgroundColor = hexColor(pal.Background, 0xff)
	p.Title.Text = msg.Title
	p.Title.TextStyle.Color = hexColor(pal.Heading, 0xff)
	p.X.Label.Text = msg.FactorsLabel
	p.Y.Label.Text = msg.PerformanceLabel
	for _, ax := range []*plot.Axis{&p.X, &p.Y} {
		ax.Color = hexColor(pal.Axis, 0xff)
		ax.Label.TextStyle.Color = hexColor(pal.Heading, 0xff)
		ax.Tick.LineStyle.Color = hexColor(pal.Axis, 0xff)
		ax.Tick.Label.Color = hexColor(pal.Text, 0xff)
	}

	xMax := float64(len(factors) - 1)
	if xMax < 1 {
		xMax = 1
	}
	p.X.Min, p.X.Max = 0, xMax
	p.Y.Min, p.Y.Max = canvas.MinScore, canvas.MaxScore
	p.Y.Tick.Marker = plot.ConstantTicks(scoreTicks())

	names := make([]string, len(factors))
	for i, f := range factors {
		names[i] = f.Name
	}
	p.NominalX(names...)

	if err := addZones(p, xMax, pal); err != nil {
		return nil, err
	}
	if opts.ShowGrid {
		grid := plotter.NewGrid()
		grid.Vertical.Color = hexColor(pal.GuideLine, 0xff)
		grid.Horizontal.Color = hexColor(pal.GuideLine, 0xff)
		grid.Horizontal.Dashes = []vg.Length{vg.Points(2), vg.Points(4)}
		p.Add(grid)
	}

	points := make(plotter.XYs, len(factors))
	labels := make([]string, len(factors))
	for i, f := range factors {
		points[i] = plotter.XY{X: float64(i), Y: f.Score}
		labels[i] = strconv.Itoa(int(f.Score+0.5)) + "%"
	}

	if len(factors) > 1 {
		line, err := plotter.NewLine(smoothData(factors, opts.Viewport))
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrExport, err)
		}
		line.Color = hexColor(pal.Line, 0xff)
		line.Width = vg.Points(3)
		p.Add(line)
	}

	scatter, err := plotter.NewScatter(points)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrExport, err)
	}
	scatter.GlyphStyle.Shape = draw.CircleGlyph{}
	scatter.GlyphStyle.Radius = vg.Points(5)
	scatter.GlyphStyle.Color = hexColor(pal.Line, 0xff)
	p.Add(scatter)

	valueLabels, err := plotter.NewLabels(plotter.XYLabels{XYs: points, Labels: labels})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrExport, err)
	}
	for i := range valueLabels.TextStyle {
		valueLabels.TextStyle[i].Color = hexColor(pal.Value, 0xff)
		valueLabels.TextStyle[i].XAlign = text.XCenter
	}
	valueLabels.Offset = vg.Point{Y: vg.Points(8)}
	p.Add(valueLabels)

	if opts.Language.IsRTL() && arabicFontLoaded.Load() {
		useArabicFont(p, valueLabels)
	}

	return p, nil
}

// smoothData samples the chart's smoothed curve and maps it back into
// factor-index/score space, so the raster matches the SVG line.
func smoothData(factors []canvas.Factor, vp canvas.Viewport) plotter.XYs {
	m := canvas.NewMapper(vp, len(factors))
	samples := canvas.SampleCurve(m.Points(factors), curveSteps)
	steps := float64(len(factors) - 1)
	xys := make(plotter.XYs, len(samples))
	for i, s := range samples {
		xys[i] = plotter.XY{
			X: (s.X - vp.Margin) / vp.PlotWidth() * steps,
			Y: m.ScoreOfY(s.Y),
		}
	}
	return xys
}

func addZones(p *plot.Plot, xMax float64, pal chart.Palette) error {
	zones := []struct {
		lo, hi float64
		fill   string
	}{
		{75, 100, pal.Strong},
		{25, 75, pal.Moderate},
		{0, 25, pal.Weak},
	}
	for _, z := range zones {
		poly, err := plotter.NewPolygon(plotter.XYs{
			{X: 0, Y: z.lo}, {X: xMax, Y: z.lo}, {X: xMax, Y: z.hi}, {X: 0, Y: z.hi},
		})
		if err != nil {
			return fmt.Errorf("%w: %v", ErrExport, err)
		}
		poly.Color = hexColor(z.fill, 0x10)
		poly.LineStyle.Width = 0
		p.Add(poly)
	}
	return nil
}

func scoreTicks() []plot.Tick {
	ticks := make([]plot.Tick, 0, 5)
	for s := 0; s <= 100; s += 25 {
		ticks = append(ticks, plot.Tick{Value: float64(s), Label: strconv.Itoa(s) + "%"})
	}
	return ticks
}

// hexColor parses "#rrggbb". Malformed input yields black at the
// given alpha.
func hexColor(hex string, alpha uint8) color.Color {
	if len(hex) != 7 || hex[0] != '#' {
		return color.NRGBA{A: alpha}
	}
	v, err := strconv.ParseUint(hex[1:], 16, 32)
	if err != nil {
		return color.NRGBA{A: alpha}
	}
	return color.NRGBA{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v), A: alpha}
}
