package sla

import (
	"math"
	"sort"

	"gonum.org/v1/gonum/stat"
)

// Distribution summarizes a set of response times in minutes.
type Distribution struct {
	Count  int     `json:"count"`
	Mean   float64 `json:"mean"`
	Std    float64 `json:"std"`
	Min    float64 `json:"min"`
	Q1     float64 `json:"q1"`
	Median float64 `json:"median"`
	Q3     float64 `json:"q3"`
	Max    float64 `json:"max"`
}

// Summarize computes the distribution of xs. An empty input yields the zero
// value; a single value has zero spread.
func Summarize(xs []float64) Distribution {
	if len(xs) == 0 {
		return Distribution{}
	}
	sorted := make([]float64, len(xs))
	copy(sorted, xs)
	sort.Float64s(sorted)

	d := Distribution{
		Count:  len(sorted),
		Mean:   stat.Mean(sorted, nil),
		Min:    sorted[0],
		Max:    sorted[len(sorted)-1],
		Q1:     quantile(sorted, 0.25),
		Median: quantile(sorted, 0.5),
		Q3:     quantile(sorted, 0.75),
	}
	if len(sorted) > 1 {
		d.Std = stat.StdDev(sorted, nil)
	}
	return d
}

// Median returns the middle of sorted values, averaging the middle pair for
// even counts. It returns 0 for an empty slice.
func Median(sorted []float64) float64 {
	return quantile(sorted, 0.5)
}

// quantile interpolates linearly between the order statistics around
// position (n-1)*p of sorted.
func quantile(sorted []float64, p float64) float64 {
	n := len(sorted)
	if n == 0 {
		return 0
	}
	h := float64(n-1) * p
	lo := int(math.Floor(h))
	if lo >= n-1 {
		return sorted[n-1]
	}
	return sorted[lo] + (h-float64(lo))*(sorted[lo+1]-sorted[lo])
}
