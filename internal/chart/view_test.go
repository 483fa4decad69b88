package chart

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/banshee-data/strategy.canvas/internal/canvas"
	"github.com/banshee-data/strategy.canvas/internal/i18n"
)

var testFactors = []canvas.Factor{
	{ID: "a", Name: "Price", Score: 30},
	{ID: "b", Name: "Quality", Score: 70},
	{ID: "c", Name: "Service", Score: 50},
}

func render(t *testing.T, factors []canvas.Factor, opts Options) string {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, Render(&buf, factors, opts))
	return buf.String()
}

func defaultOptions() Options {
	return Options{
		Viewport: canvas.DefaultViewport,
		Theme:    Light,
		Language: i18n.English,
		ShowGrid: true,
	}
}

func TestRender_ContainsCurveAndPoints(t *testing.T) {
	out := render(t, testFactors, defaultOptions())

	m := canvas.NewMapper(canvas.DefaultViewport, len(testFactors))
	pts := m.Points(testFactors)
	assert.Contains(t, out, canvas.SmoothPath(pts))
	assert.Contains(t, out, canvas.FilledArea(pts, m.Baseline()))
	for _, f := range testFactors {
		assert.Contains(t, out, `data-factor-id="`+f.ID+`"`)
		assert.Contains(t, out, f.Name)
	}
	assert.Contains(t, out, "30%")
	assert.Contains(t, out, "Competitive Factors")
	assert.Contains(t, out, `fill="url(#grid)"`)
	assert.Contains(t, out, `text-anchor="end"`)
	assert.True(t, strings.HasSuffix(strings.TrimSpace(out), "</svg>"))
}

func TestRender_SinglePointHasNoLine(t *testing.T) {
	out := render(t, testFactors[:1], defaultOptions())
	assert.NotContains(t, out, `class="strategy-line"`)
	assert.Contains(t, out, `data-factor-id="a"`)
}

func TestRender_ArabicAndDark(t *testing.T) {
	opts := defaultOptions()
	opts.Language = i18n.Arabic
	opts.Theme = Dark
	opts.ShowGrid = false
	out := render(t, testFactors, opts)

	assert.Contains(t, out, `direction="rtl"`)
	assert.Contains(t, out, `text-anchor="start"`)
	assert.Contains(t, out, i18n.Catalog(i18n.Arabic).FactorsLabel)
	assert.Contains(t, out, Dark.Palette().Background)
	assert.NotContains(t, out, `url(#grid)`)
}

func TestRender_ActivePointHighlighted(t *testing.T) {
	opts := defaultOptions()
	out := render(t, testFactors, opts)
	assert.NotContains(t, out, `opacity="0.2"`)

	opts.Active = "b"
	out = render(t, testFactors, opts)
	assert.Contains(t, out, `opacity="0.2"`)
}

func TestRender_EscapesNames(t *testing.T) {
	factors := []canvas.Factor{{ID: `x"y`, Name: "<R&D>", Score: 10}}
	out := render(t, factors, defaultOptions())
	assert.NotContains(t, out, "<R&D>")
	assert.Contains(t, out, "&lt;R&amp;D&gt;")
	assert.Contains(t, out, `data-factor-id="x&#34;y"`)
}

func TestRender_InvalidViewport(t *testing.T) {
	opts := defaultOptions()
	opts.Viewport = canvas.Viewport{Width: 100, Height: 100, Margin: 60}
	var buf bytes.Buffer
	assert.Error(t, Render(&buf, testFactors, opts))
	assert.Zero(t, buf.Len())
}

type failingWriter struct{}

func (failingWriter) Write(p []byte) (int, error) { return 0, errors.New("disk full") }

func TestRender_WriteError(t *testing.T) {
	err := Render(failingWriter{}, testFactors, defaultOptions())
	assert.EqualError(t, err, "disk full")
}

func TestParseTheme(t *testing.T) {
	th, err := ParseTheme("dark")
	require.NoError(t, err)
	assert.Equal(t, Dark, th)
	assert.Equal(t, Light, th.Toggle())
	assert.Equal(t, Dark, Light.Toggle())

	_, err = ParseTheme("sepia")
	assert.Error(t, err)
	assert.Equal(t, Light.Palette(), Theme("sepia").Palette())
}
