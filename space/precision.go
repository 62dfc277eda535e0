package space

import (
	"fmt"
	"math"

	"github.com/montanaflynn/stats"
)

// PrecisionStats is a struct storing statistics about the distance between an
// element and a reference function, sampled on a set of points.
// Deltas are absolute errors; precisions are log2(1/delta), in bits.
type PrecisionStats struct {
	MaxDelta, MinDelta, MeanDelta, MedianDelta float64
	MinPrecision, MaxPrecision                 float64
	MeanPrecision, MedianPrecision             float64
	STD                                        float64
	Points                                     int
}

func (prec PrecisionStats) String() string {
	return fmt.Sprintf(`
┌─────────┬───────────┬────────┐
│         │ DELTA     │ LOG2   │
├─────────┼───────────┼────────┤
│MIN Prec │ %9.3e │ %6.2f │
│MAX Prec │ %9.3e │ %6.2f │
│AVG Prec │ %9.3e │ %6.2f │
│MED Prec │ %9.3e │ %6.2f │
└─────────┴───────────┴────────┘
Err STD : %6.2f Log2 (%d points)
`,
		prec.MaxDelta, prec.MinPrecision,
		prec.MinDelta, prec.MaxPrecision,
		prec.MeanDelta, prec.MeanPrecision,
		prec.MedianDelta, prec.MedianPrecision,
		math.Log2(prec.STD), prec.Points)
}

// GetPrecisionStats evaluates el and want on each point of xs and returns
// statistics on the absolute error |el(x) - want(x)|.
// It returns an error if xs is empty or if el cannot be evaluated on one of the points.
func GetPrecisionStats(el *Element, want Function, xs []float64) (prec PrecisionStats, err error) {

	if len(xs) == 0 {
		return PrecisionStats{}, fmt.Errorf("cannot GetPrecisionStats: no evaluation point")
	}

	var have []float64
	if have, err = el.EvaluateMany(xs); err != nil {
		return PrecisionStats{}, fmt.Errorf("cannot GetPrecisionStats: %w", err)
	}

	deltas := make(stats.Float64Data, len(xs))
	for i, x := range xs {
		deltas[i] = math.Abs(have[i] - want(x))
	}

	prec.Points = len(xs)

	if prec.MaxDelta, err = deltas.Max(); err != nil {
		return PrecisionStats{}, fmt.Errorf("cannot GetPrecisionStats: %w", err)
	}

	if prec.MinDelta, err = deltas.Min(); err != nil {
		return PrecisionStats{}, fmt.Errorf("cannot GetPrecisionStats: %w", err)
	}

	if prec.MeanDelta, err = deltas.Mean(); err != nil {
		return PrecisionStats{}, fmt.Errorf("cannot GetPrecisionStats: %w", err)
	}

	if prec.MedianDelta, err = deltas.Median(); err != nil {
		return PrecisionStats{}, fmt.Errorf("cannot GetPrecisionStats: %w", err)
	}

	if prec.STD, err = deltas.StandardDeviation(); err != nil {
		return PrecisionStats{}, fmt.Errorf("cannot GetPrecisionStats: %w", err)
	}

	prec.MinPrecision = deltaToPrecision(prec.MaxDelta)
	prec.MaxPrecision = deltaToPrecision(prec.MinDelta)
	prec.MeanPrecision = deltaToPrecision(prec.MeanDelta)
	prec.MedianPrecision = deltaToPrecision(prec.MedianDelta)

	return
}

func deltaToPrecision(delta float64) float64 {
	return math.Log2(1 / delta)
}
