package canvas

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPolyline(t *testing.T) {
	assert.Equal(t, "", Polyline(nil))
	assert.Equal(t, "", Polyline([]Point{{1, 2}}))
	assert.Equal(t, "M 1 2 L 3 4", Polyline([]Point{{1, 2}, {3, 4}}))
	assert.Equal(t, "M 0 0 L 10.5 20 L 30 5", Polyline([]Point{{0, 0}, {10.5, 20}, {30, 5}}))
}

func TestSmoothPath(t *testing.T) {
	assert.Equal(t, "", SmoothPath(nil))
	assert.Equal(t, "", SmoothPath([]Point{{1, 2}}))

	got := SmoothPath([]Point{{0, 10}, {100, 50}})
	assert.Equal(t, "M 0 10 C 40 10, 60 50, 100 50", got)
}

func TestSmoothPath_EndpointsExact(t *testing.T) {
	m := NewMapper(testViewport, 4)
	pts := m.Points([]Factor{{Score: 30}, {Score: 70}, {Score: 50}, {Score: 80}})
	path := SmoothPath(pts)

	require.True(t, strings.HasPrefix(path, "M "+fmtCoord(pts[0].X)+" "+fmtCoord(pts[0].Y)+" "))
	last := pts[len(pts)-1]
	assert.True(t, strings.HasSuffix(path, ", "+fmtCoord(last.X)+" "+fmtCoord(last.Y)))
	assert.Equal(t, len(pts)-1, strings.Count(path, " C "))
}

func TestControlPoints(t *testing.T) {
	c1, c2 := ControlPoints(Point{100, 20}, Point{200, 80})
	assert.Equal(t, Point{140, 20}, c1)
	assert.Equal(t, Point{160, 80}, c2)
}

func TestFilledArea(t *testing.T) {
	assert.Equal(t, "", FilledArea([]Point{{1, 1}}, 100))

	pts := []Point{{0, 10}, {100, 50}}
	got := FilledArea(pts, 420)
	assert.Equal(t, SmoothPath(pts)+" L 100 420 L 0 420 Z", got)
}

func TestSampleCurve(t *testing.T) {
	pts := []Point{{0, 10}, {100, 50}, {200, 30}}
	samples := SampleCurve(pts, 8)
	require.Len(t, samples, 17)
	assert.Equal(t, pts[0], samples[0])
	assert.Equal(t, pts[1], samples[8])
	assert.Equal(t, pts[2], samples[16])

	for i := 1; i < len(samples); i++ {
		assert.Greater(t, samples[i].X, samples[i-1].X)
	}
	// Horizontal tangents keep each segment within its endpoints' band.
	for _, p := range samples[:9] {
		assert.GreaterOrEqual(t, p.Y, 10.0)
		assert.LessOrEqual(t, p.Y, 50.0)
	}

	assert.Equal(t, []Point{{1, 1}}, SampleCurve([]Point{{1, 1}}, 4))
}
