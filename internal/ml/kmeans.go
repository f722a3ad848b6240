package ml

import (
	"fmt"
	"math"

	"github.com/algohertz/silhouette/internal/silhouette"
	"github.com/cdipaolo/goml/cluster"
	"github.com/rs/zerolog/log"
)

// KMeans wraps a k-means model so its output can be scored by the engine.
type KMeans struct {
	k          int
	iterations int
	model      *cluster.KMeans
}

// NewKMeans creates a new k-means wrapper for the given cluster count.
func NewKMeans(k int, iterations int) *KMeans {
	return &KMeans{
		k:          k,
		iterations: iterations,
	}
}

// Fit clusters the given points and returns the assigned labels.
func (km *KMeans) Fit(points [][]float64) ([]int, error) {
	if len(points) < km.k {
		return nil, fmt.Errorf("not enough points for %d clusters [ %d ]", km.k, len(points))
	}
	km.model = cluster.NewKMeans(km.k, km.iterations, points)
	if err := km.model.Learn(); err != nil {
		log.Error().
			Err(err).
			Int("k", km.k).
			Int("points", len(points)).
			Msg("error during training on k-means")
		return nil, fmt.Errorf("could not train: %w", err)
	}
	guesses := km.model.Guesses()
	if len(guesses) != len(points) {
		return nil, fmt.Errorf("could not align guesses with data [ %d | %d ]", len(guesses), len(points))
	}
	return guesses, nil
}

// Predict assigns the given point to one of the learned clusters.
func (km *KMeans) Predict(x []float64) (int, error) {
	if km.model == nil {
		return 0, fmt.Errorf("no model present")
	}
	guess, err := km.model.Predict(x)
	if err != nil {
		return 0, fmt.Errorf("could not predict: %w", err)
	}
	return int(math.Round(guess[0])), nil
}

// Sweep is the mean silhouette score observed for one candidate k.
type Sweep struct {
	K    int     `json:"k"`
	Mean float64 `json:"mean"`
}

// BestK clusters the points for each k in [kMin, kMax] and picks the k
// with the highest mean silhouette score.
func BestK(points [][]float64, kMin, kMax, iterations int, engine *silhouette.Engine) (int, []Sweep, error) {
	if kMin < 2 {
		return 0, nil, fmt.Errorf("k sweep must start at 2 or above: %d", kMin)
	}
	if kMax < kMin {
		return 0, nil, fmt.Errorf("invalid k range [ %d | %d ]", kMin, kMax)
	}

	best := 0
	bestMean := math.Inf(-1)
	sweeps := make([]Sweep, 0, kMax-kMin+1)

	for k := kMin; k <= kMax; k++ {
		labels, err := NewKMeans(k, iterations).Fit(points)
		if err != nil {
			return 0, nil, fmt.Errorf("k=%d: %w", k, err)
		}
		ds, err := silhouette.NewDataset(points, labels)
		if err != nil {
			return 0, nil, fmt.Errorf("k=%d: %w", k, err)
		}
		result, err := engine.Evaluate(ds)
		if err != nil {
			// k-means can collapse onto fewer clusters than requested
			log.Warn().Err(err).Int("k", k).Msg("skipping degenerate clustering")
			continue
		}
		sweeps = append(sweeps, Sweep{K: k, Mean: result.Mean})
		if result.Mean > bestMean {
			best = k
			bestMean = result.Mean
		}
	}

	if best == 0 {
		return 0, nil, fmt.Errorf("no valid clustering found in [ %d | %d ]", kMin, kMax)
	}
	return best, sweeps, nil
}
