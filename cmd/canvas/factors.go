package main

import (
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/banshee-data/strategy.canvas/internal/canvas"
	"github.com/banshee-data/strategy.canvas/internal/chart"
	"github.com/banshee-data/strategy.canvas/internal/fsutil"
	"github.com/banshee-data/strategy.canvas/internal/i18n"
)

// factorFile is the YAML document the render and export commands read.
//
//	language: en
//	factors:
//	  - name: Price
//	    score: 30
type factorFile struct {
	Language string        `yaml:"language"`
	Factors  []canvas.Seed `yaml:"factors"`
}

// loadFactors reads path and builds the factor list through the store so
// names and scores are validated the same way the server does it.
func loadFactors(fsys fsutil.FileSystem, path string) ([]canvas.Factor, i18n.Language, error) {
	data, err := fsys.ReadFile(path)
	if err != nil {
		return nil, "", fmt.Errorf("failed to read factors: %w", err)
	}
	var doc factorFile
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, "", fmt.Errorf("failed to parse %s: %w", path, err)
	}

	lang := i18n.Default
	if doc.Language != "" {
		if lang, err = i18n.Parse(doc.Language); err != nil {
			return nil, "", fmt.Errorf("%s: %w", path, err)
		}
	}

	store := canvas.NewStore()
	if err := store.Reset(doc.Factors); err != nil {
		return nil, "", fmt.Errorf("%s: %w", path, err)
	}
	return store.List(), lang, nil
}

// chartOptions builds render options from the resolved configuration.
func (a *app) chartOptions(lang i18n.Language) chart.Options {
	return chart.Options{
		Viewport: a.cfg.Viewport,
		Theme:    a.cfg.ChartTheme(),
		Language: lang,
		ShowGrid: a.cfg.ShowGrid,
	}
}
