// Package scoring derives a spot's danger score from the severities of
// its reports. The score is recomputed inside the persistence
// transaction every time a report is attached, never lazily on read.
package scoring

import (
	"fmt"
	"math"

	"github.com/vietts/insicuri/pkg/e"
)

const (
	ScoreMax = 10.0

	ThresholdCritico = 9.0
	ThresholdAlto    = 7.0
	ThresholdMedio   = 4.0
)

// Compute maps report severities (1..5 each) to a score in [0, ScoreMax]:
//
//	score = clamp(avg_severity * 2 * damp(n), 0, 10)
//	damp(n) = min(0.6 + 0.15*(n-1), 1.2)
//
// The dampening keeps a lone severity-5 report at 6.0, below the Alto
// threshold, while three severity-5 reports reach 9.0 (Critico). It
// saturates at five reports. Adding a report of equal-or-higher severity
// never lowers the score.
func Compute(severities []int) (float64, error) {
	n := len(severities)
	if n == 0 {
		return 0, fmt.Errorf("scoring.Compute: %w", e.ErrEmptyReportSet)
	}

	sum := 0
	for _, s := range severities {
		sum += s
	}
	avg := float64(sum) / float64(n)

	damp := math.Min(0.6+0.15*float64(n-1), 1.2)
	score := avg * 2 * damp

	return math.Max(0, math.Min(score, ScoreMax)), nil
}

func Label(score float64) string {
	switch {
	case score >= ThresholdCritico:
		return "Critico"
	case score >= ThresholdAlto:
		return "Alto"
	case score >= ThresholdMedio:
		return "Medio"
	default:
		return "Basso"
	}
}

// Color is the map-marker hex color for a score band.
func Color(score float64) string {
	switch {
	case score >= ThresholdCritico:
		return "#dc2626"
	case score >= ThresholdAlto:
		return "#ea580c"
	case score >= ThresholdMedio:
		return "#ca8a04"
	default:
		return "#16a34a"
	}
}
