package export

import (
	"fmt"
	"io"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"

	"github.com/banshee-data/strategy.canvas/internal/canvas"
	"github.com/banshee-data/strategy.canvas/internal/chart"
	"github.com/banshee-data/strategy.canvas/internal/i18n"
)

// Preview writes a standalone HTML page with the factors drawn as a
// smoothed echarts line. It is a read-only second view of the session.
func Preview(w io.Writer, factors []canvas.Factor, o chart.Options) error {
	msg := i18n.Catalog(o.Language)
	stats := chart.Summarize(factors)

	theme := "white"
	if o.Theme == chart.Dark {
		theme = "dark"
	}

	line := charts.NewLine()
	line.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{
			PageTitle: msg.Title,
			Theme:     theme,
			Width:     fmt.Sprintf("%.0fpx", o.Viewport.Width),
			Height:    fmt.Sprintf("%.0fpx", o.Viewport.Height),
		}),
		charts.WithTitleOpts(opts.Title{
			Title:    msg.Title,
			Subtitle: fmt.Sprintf("%s %.0f%%", msg.Average, stats.Average),
		}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true)}),
		charts.WithXAxisOpts(opts.XAxis{Name: msg.FactorsLabel, NameLocation: "middle", NameGap: 30}),
		charts.WithYAxisOpts(opts.YAxis{Name: msg.PerformanceLabel, Min: canvas.MinScore, Max: canvas.MaxScore}),
	)

	names := make([]string, len(factors))
	data := make([]opts.LineData, len(factors))
	for i, f := range factors {
		names[i] = f.Name
		data[i] = opts.LineData{Value: f.Score, Name: f.Name}
	}
	line.SetXAxis(names).AddSeries(msg.PerformanceLabel, data,
		charts.WithLineChartOpts(opts.LineChart{Smooth: opts.Bool(true), ShowSymbol: opts.Bool(true)}),
	)

	if err := line.Render(w); err != nil {
		return fmt.Errorf("%w: %v", ErrExport, err)
	}
	return nil
}
