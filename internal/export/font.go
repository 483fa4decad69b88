package export

import (
	"fmt"
	"sync/atomic"

	"golang.org/x/image/font/opentype"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/font"
	"gonum.org/v1/plot/plotter"

	"github.com/banshee-data/strategy.canvas/internal/fsutil"
)

// arabicFont is the descriptor a loaded font is registered under in
// gonum/plot's font cache.
var arabicFont = font.Font{Typeface: "CanvasArabic", Variant: "Sans"}

// FontCandidates are system fonts with Arabic glyphs, tried in order when no
// font file is configured.
var FontCandidates = []string{
	"/usr/share/fonts/truetype/dejavu/DejaVuSans.ttf",
	"/usr/share/fonts/TTF/DejaVuSans.ttf",
	"/usr/share/fonts/dejavu/DejaVuSans.ttf",
	"/usr/share/fonts/dejavu-sans-fonts/DejaVuSans.ttf",
	"/usr/share/fonts/truetype/noto/NotoSansArabic-Regular.ttf",
	"/usr/share/fonts/noto/NotoSansArabic-Regular.ttf",
	"/System/Library/Fonts/Supplemental/Arial Unicode.ttf",
	"/Library/Fonts/Arial Unicode.ttf",
	`C:\Windows\Fonts\arial.ttf`,
}

// arabicFontLoaded is set once LoadFont has registered a face.
var arabicFontLoaded atomic.Bool

// LoadFont parses the TrueType or OpenType file at path and registers it
// for right-to-left PNG exports. Letters are drawn unjoined.
func LoadFont(fsys fsutil.FileSystem, path string) error {
	data, err := fsys.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read font %s: %w", path, err)
	}
	face, err := opentype.Parse(data)
	if err != nil {
		return fmt.Errorf("failed to parse font %s: %w", path, err)
	}
	font.DefaultCache.Add(font.Collection{{Font: arabicFont, Face: face}})
	arabicFontLoaded.Store(true)
	return nil
}

// LoadFirstFont loads the first of paths that exists and returns it. It
// returns "" when none exist.
func LoadFirstFont(fsys fsutil.FileSystem, paths []string) (string, error) {
	for _, path := range paths {
		if !fsys.Exists(path) {
			continue
		}
		if err := LoadFont(fsys, path); err != nil {
			return "", err
		}
		return path, nil
	}
	return "", nil
}

// useArabicFont points every text style of p, and of the value labels, at
// the loaded font. Sizes are kept.
func useArabicFont(p *plot.Plot, labels *plotter.Labels) {
	set := func(f *font.Font) {
		f.Typeface = arabicFont.Typeface
		f.Variant = arabicFont.Variant
	}
	set(&p.Title.TextStyle.Font)
	for _, ax := range []*plot.Axis{&p.X, &p.Y} {
		set(&ax.Label.TextStyle.Font)
		set(&ax.Tick.Label.Font)
	}
	for i := range labels.TextStyle {
		set(&labels.TextStyle[i].Font)
	}
}
