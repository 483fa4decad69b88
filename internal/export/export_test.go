package export

import (
	"bytes"
	"errors"
	"image/color"
	"image/png"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/banshee-data/strategy.canvas/internal/canvas"
	"github.com/banshee-data/strategy.canvas/internal/chart"
	"github.com/banshee-data/strategy.canvas/internal/i18n"
)

var testFactors = []canvas.Factor{
	{ID: "a", Name: "Price", Score: 30},
	{ID: "b", Name: "Quality", Score: 70},
	{ID: "c", Name: "Service", Score: 50},
	{ID: "d", Name: "Marketing", Score: 80},
}

func testOptions() chart.Options {
	return chart.Options{
		Viewport: canvas.DefaultViewport,
		Theme:    chart.Light,
		Language: i18n.English,
		ShowGrid: true,
	}
}

func TestPNG_DecodesAtViewportSize(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, PNG(&buf, testFactors, testOptions()))

	img, err := png.Decode(&buf)
	require.NoError(t, err)
	b := img.Bounds()
	assert.InDelta(t, canvas.DefaultViewport.Width, float64(b.Dx()), 1)
	assert.InDelta(t, canvas.DefaultViewport.Height, float64(b.Dy()), 1)
}

func TestPNG_SingleFactor(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, PNG(&buf, testFactors[:1], testOptions()))
	assert.NotZero(t, buf.Len())
}

func TestPNG_Failures(t *testing.T) {
	var buf bytes.Buffer
	err := PNG(&buf, nil, testOptions())
	assert.ErrorIs(t, err, ErrExport)

	opts := testOptions()
	opts.Viewport = canvas.Viewport{Width: 10, Height: 10, Margin: 10}
	err = PNG(&buf, testFactors, opts)
	assert.ErrorIs(t, err, ErrExport)
	assert.Zero(t, buf.Len())
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, errors.New("pipe closed") }

func TestPNG_WriteFailure(t *testing.T) {
	err := PNG(failingWriter{}, testFactors, testOptions())
	assert.ErrorIs(t, err, ErrExport)
}

func TestPNG_DoesNotMutateFactors(t *testing.T) {
	in := append([]canvas.Factor(nil), testFactors...)
	var buf bytes.Buffer
	require.NoError(t, PNG(&buf, in, testOptions()))
	assert.Equal(t, testFactors, in)
}

func TestSmoothData_EndpointsMatchScores(t *testing.T) {
	xys := smoothData(testFactors, canvas.DefaultViewport)
	require.Len(t, xys, (len(testFactors)-1)*curveSteps+1)
	for i, f := range testFactors {
		p := xys[i*curveSteps]
		assert.InDelta(t, float64(i), p.X, 1e-9)
		assert.InDelta(t, f.Score, p.Y, 1e-9)
	}
}

func TestHexColor(t *testing.T) {
	assert.Equal(t, color.NRGBA{R: 0x3b, G: 0x82, B: 0xf6, A: 0xff}, hexColor("#3b82f6", 0xff))
	assert.Equal(t, color.NRGBA{A: 0x10}, hexColor("3b82f6", 0x10))
	assert.Equal(t, color.NRGBA{A: 0xff}, hexColor("#zzzzzz", 0xff))
	assert.Equal(t, color.NRGBA{A: 0x10}, hexColor("#12345", 0x10), "malformed input keeps the caller's alpha")
}

func TestPreview(t *testing.T) {
	var buf bytes.Buffer
	opts := testOptions()
	opts.Theme = chart.Dark
	require.NoError(t, Preview(&buf, testFactors, opts))

	out := buf.String()
	assert.Contains(t, out, "<html")
	assert.Contains(t, out, "Strategy Canvas")
	assert.Contains(t, out, "Marketing")
}
