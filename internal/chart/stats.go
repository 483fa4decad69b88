package chart

import (
	"github.com/banshee-data/strategy.canvas/internal/canvas"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// Zone buckets a score for the chart legend.
type Zone string

const (
	ZoneWeak     Zone = "weak"
	ZoneModerate Zone = "moderate"
	ZoneStrong   Zone = "strong"
)

// Zone boundaries, as scores.
const (
	weakUpper     = 25.0
	moderateUpper = 75.0
)

// ZoneOf classifies score. Boundary values belong to the higher zone.
func ZoneOf(score float64) Zone {
	switch {
	case score >= moderateUpper:
		return ZoneStrong
	case score >= weakUpper:
		return ZoneModerate
	default:
		return ZoneWeak
	}
}

// Stats summarises a factor snapshot.
type Stats struct {
	Average float64        `json:"average"`
	Highest *canvas.Factor `json:"highest,omitempty"`
	Lowest  *canvas.Factor `json:"lowest,omitempty"`
}

// Summarize computes the average score and the highest and lowest factors.
// Ties resolve to the earliest factor.
func Summarize(factors []canvas.Factor) Stats {
	if len(factors) == 0 {
		return Stats{}
	}
	scores := make([]float64, len(factors))
	for i, f := range factors {
		scores[i] = f.Score
	}
	hi := factors[floats.MaxIdx(scores)]
	lo := factors[floats.MinIdx(scores)]
	return Stats{
		Average: stat.Mean(scores, nil),
		Highest: &hi,
		Lowest:  &lo,
	}
}
