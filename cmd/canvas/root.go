package main

import (
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/banshee-data/strategy.canvas/internal/config"
	"github.com/banshee-data/strategy.canvas/internal/export"
	"github.com/banshee-data/strategy.canvas/internal/fsutil"
	"github.com/banshee-data/strategy.canvas/internal/monitoring"
	"github.com/banshee-data/strategy.canvas/internal/version"
)

// app carries what every subcommand shares once flags are parsed.
type app struct {
	fsys       fsutil.FileSystem
	configFile string
	cfg        *config.Config
}

// flagKeys maps command-line flags onto configuration keys.
var flagKeys = map[string]string{
	"listen":   "listen",
	"db-path":  "db_path",
	"dev":      "dev",
	"verbose":  "verbose",
	"theme":    "theme",
	"grid":     "show_grid",
	"png-font": "png_font",
}

func newRootCmd(fsys fsutil.FileSystem) *cobra.Command {
	a := &app{fsys: fsys}

	root := &cobra.Command{
		Use:                "canvas",
		Short:              "Draw and edit strategy canvases.",
		Long:               `Canvas plots competitive factors on a 0-100 performance curve, serves an editable chart over HTTP and renders it to SVG, PNG or HTML.`,
		Version:            version.Version,
		SilenceErrors:      true,
		SilenceUsage:       true,
		DisableSuggestions: true,
		PersistentPreRunE:  a.setup,
		Run: func(cmd *cobra.Command, _ []string) {
			_ = cmd.Help()
		},
	}

	flags := root.PersistentFlags()
	flags.StringVar(&a.configFile, "config", "", "config file (yaml, json or toml)")
	flags.String("db-path", "", "preferences database path")
	flags.String("theme", "", "chart theme: light or dark")
	flags.Bool("grid", true, "draw the background grid")
	flags.String("png-font", "", "TrueType font with Arabic glyphs for PNG exports")
	flags.BoolP("verbose", "v", false, "log drag and export detail")

	root.AddCommand(
		a.serveCmd(),
		a.renderCmd(),
		a.exportCmd(),
		a.migrateCmd(),
		versionCmd(),
	)
	return root
}

// setup resolves defaults, the config file, CANVAS_* variables and any
// flags the user set, in increasing precedence.
func (a *app) setup(cmd *cobra.Command, _ []string) error {
	v, err := config.New(a.configFile)
	if err != nil {
		return err
	}
	var bindErr error
	cmd.Flags().VisitAll(func(f *pflag.Flag) {
		if key, ok := flagKeys[f.Name]; ok && bindErr == nil {
			bindErr = v.BindPFlag(key, f)
		}
	})
	if bindErr != nil {
		return bindErr
	}

	cfg, err := config.Load(v)
	if err != nil {
		return err
	}
	monitoring.SetVerbose(cfg.Verbose)
	a.cfg = cfg
	return a.loadFont()
}

// loadFont registers the configured PNG font, or the first system font with
// Arabic glyphs. A missing system font only costs Arabic labels.
func (a *app) loadFont() error {
	if a.cfg.PNGFont != "" {
		return export.LoadFont(a.fsys, a.cfg.PNGFont)
	}
	path, err := export.LoadFirstFont(a.fsys, export.FontCandidates)
	if err != nil {
		monitoring.Logf("png exports fall back to the bundled font: %v", err)
		return nil
	}
	if path != "" {
		monitoring.Debugf("png exports draw arabic with %s", path)
	}
	return nil
}
