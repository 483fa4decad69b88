package main

import (
	"fmt"
	"io"
	"strconv"

	"github.com/fatih/color"
	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"
	"github.com/spf13/cobra"

	"github.com/banshee-data/strategy.canvas/internal/canvas"
	"github.com/banshee-data/strategy.canvas/internal/chart"
	"github.com/banshee-data/strategy.canvas/internal/fsutil"
	"github.com/banshee-data/strategy.canvas/internal/i18n"
	"github.com/banshee-data/strategy.canvas/internal/security"
)

var zoneColors = map[chart.Zone]*color.Color{
	chart.ZoneStrong:   color.New(color.FgGreen, color.Bold),
	chart.ZoneModerate: color.New(color.FgYellow),
	chart.ZoneWeak:     color.New(color.FgRed, color.Bold),
}

func (a *app) renderCmd() *cobra.Command {
	var in, out string
	cmd := &cobra.Command{
		Use:   "render",
		Short: "Render a factor file to SVG and print a summary table.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			factors, lang, err := loadFactors(a.fsys, in)
			if err != nil {
				return err
			}
			if err := security.ValidateOutputPath(out); err != nil {
				return err
			}
			w, err := fsutil.CreateOutput(a.fsys, out)
			if err != nil {
				return err
			}
			if err := chart.Render(w, factors, a.chartOptions(lang)); err != nil {
				_ = w.Close()
				return err
			}
			if err := w.Close(); err != nil {
				return err
			}
			if err := writeFactorTable(cmd.OutOrStdout(), factors, lang); err != nil {
				return err
			}
			cmd.Printf("wrote %s\n", out)
			return nil
		},
	}
	cmd.Flags().StringVarP(&in, "file", "f", "", "YAML factor file")
	cmd.Flags().StringVarP(&out, "output", "o", "strategy-canvas.svg", "SVG output path")
	_ = cmd.MarkFlagRequired("file")
	return cmd
}

// writeFactorTable prints one row per factor followed by the summary.
func writeFactorTable(w io.Writer, factors []canvas.Factor, lang i18n.Language) error {
	msg := i18n.Catalog(lang)
	table := tablewriter.NewWriter(w)
	defer func() { _ = table.Close() }()

	table.Header([]string{"#", msg.FactorsLabel, msg.PerformanceLabel, "Zone"})
	table.Configure(func(cfg *tablewriter.Config) {
		cfg.Row.Alignment.Global = tw.AlignRight
	})

	data := make([][]string, 0, len(factors))
	for i, f := range factors {
		zone := chart.ZoneOf(f.Score)
		data = append(data, []string{
			strconv.Itoa(i + 1),
			f.Name,
			strconv.FormatFloat(f.Score, 'f', 0, 64),
			zoneColors[zone].Sprint(zoneLabel(msg, zone)),
		})
	}
	if err := table.Bulk(data); err != nil {
		return err
	}
	if err := table.Render(); err != nil {
		return err
	}

	stats := chart.Summarize(factors)
	if _, err := fmt.Fprintf(w, "%s: %.1f\n", msg.Average, stats.Average); err != nil {
		return err
	}
	if stats.Highest != nil {
		if _, err := fmt.Fprintf(w, "%s: %s\n%s: %s\n", msg.Highest, stats.Highest.Name, msg.Lowest, stats.Lowest.Name); err != nil {
			return err
		}
	}
	return nil
}

func zoneLabel(msg i18n.Messages, z chart.Zone) string {
	switch z {
	case chart.ZoneStrong:
		return msg.Strong
	case chart.ZoneModerate:
		return msg.Moderate
	default:
		return msg.Weak
	}
}
