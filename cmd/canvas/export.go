package main

import (
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/banshee-data/strategy.canvas/internal/canvas"
	"github.com/banshee-data/strategy.canvas/internal/chart"
	"github.com/banshee-data/strategy.canvas/internal/export"
	"github.com/banshee-data/strategy.canvas/internal/fsutil"
	"github.com/banshee-data/strategy.canvas/internal/security"
)

type renderFunc func(io.Writer, []canvas.Factor, chart.Options) error

// exporters picks a renderer by output extension.
var exporters = map[string]renderFunc{
	".png":  export.PNG,
	".svg":  chart.Render,
	".html": export.Preview,
}

func (a *app) exportCmd() *cobra.Command {
	var in, out string
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export a factor file as PNG, SVG or an HTML preview.",
		Long:  `Export picks the format from the output extension: .png, .svg or .html.`,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			render, ok := exporters[strings.ToLower(filepath.Ext(out))]
			if !ok {
				return fmt.Errorf("unsupported output %q: use .png, .svg or .html", out)
			}
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
			if err := render(w, factors, a.chartOptions(lang)); err != nil {
				_ = w.Close()
				return err
			}
			if err := w.Close(); err != nil {
				return err
			}
			cmd.Printf("wrote %s\n", out)
			return nil
		},
	}
	cmd.Flags().StringVarP(&in, "file", "f", "", "YAML factor file")
	cmd.Flags().StringVarP(&out, "output", "o", export.FileName, "output path")
	_ = cmd.MarkFlagRequired("file")
	return cmd
}
