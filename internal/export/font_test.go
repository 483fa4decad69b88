package export

import (
	"bytes"
	"image/png"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/banshee-data/strategy.canvas/internal/fsutil"
	"github.com/banshee-data/strategy.canvas/internal/i18n"
)

func TestLoadFont_Errors(t *testing.T) {
	fsys := fsutil.NewMemoryFileSystem()
	fsys.WriteFile("/fonts/broken.ttf", []byte("not a font"))

	assert.Error(t, LoadFont(fsys, "/fonts/missing.ttf"))
	assert.Error(t, LoadFont(fsys, "/fonts/broken.ttf"))

	path, err := LoadFirstFont(fsys, []string{"/fonts/missing.ttf"})
	require.NoError(t, err)
	assert.Empty(t, path)
}

func TestArabicExportUsesLoadedFont(t *testing.T) {
	fsys := fsutil.NewMemoryFileSystem()
	fsys.WriteFile("/fonts/sans.ttf", goregular.TTF)

	path, err := LoadFirstFont(fsys, []string{"/fonts/missing.ttf", "/fonts/sans.ttf"})
	require.NoError(t, err)
	assert.Equal(t, "/fonts/sans.ttf", path)

	opts := testOptions()
	opts.Language = i18n.Arabic
	p, err := buildPlot(testFactors, opts)
	require.NoError(t, err)
	assert.Equal(t, arabicFont.Typeface, p.Title.TextStyle.Font.Typeface)
	assert.Equal(t, arabicFont.Typeface, p.X.Tick.Label.Font.Typeface)
	assert.Equal(t, arabicFont.Typeface, p.Y.Label.TextStyle.Font.Typeface)

	p, err = buildPlot(testFactors, testOptions())
	require.NoError(t, err)
	assert.NotEqual(t, arabicFont.Typeface, p.Title.TextStyle.Font.Typeface, "left-to-right exports keep the default font")

	var buf bytes.Buffer
	require.NoError(t, PNG(&buf, testFactors, opts))
	_, err = png.Decode(&buf)
	require.NoError(t, err)
}
