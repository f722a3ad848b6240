package silhouette

import (
	"fmt"
	"math"
	"sync"
	"time"

	"github.com/algohertz/silhouette/internal/buffer"
	"github.com/algohertz/silhouette/internal/metrics"
	"github.com/rs/zerolog/log"
)

// Mode selects how the cohesion and separation of a point are estimated.
type Mode int

const (
	// Exact computes a and b from full pairwise distances. O(n^2), ground truth.
	Exact Mode = iota
	// CentroidMean replaces the pairwise means with distances to the
	// arithmetic-mean centroid of each cluster. O(n*k), biased estimator.
	CentroidMean
	// CentroidMedian is like CentroidMean with coordinate-wise median centroids.
	CentroidMedian
)

func (m Mode) String() string {
	switch m {
	case Exact:
		return "exact"
	case CentroidMean:
		return "centroid_mean"
	case CentroidMedian:
		return "centroid_median"
	}
	return fmt.Sprintf("unknown(%d)", int(m))
}

// ParseMode resolves a mode from its string representation.
func ParseMode(s string) (Mode, error) {
	switch s {
	case "exact":
		return Exact, nil
	case "centroid_mean":
		return CentroidMean, nil
	case "centroid_median":
		return CentroidMedian, nil
	}
	return Exact, fmt.Errorf("unknown mode: %s", s)
}

// Config carries the strategy for an Engine.
// The zero value evaluates in exact mode with the Euclidean metric
// on a single worker.
type Config struct {
	Mode    Mode
	Metric  Metric
	Workers int
}

// Engine computes silhouette scores for labeled datasets.
type Engine struct {
	config Config
}

// New creates a new Engine for the given config.
func New(config Config) *Engine {
	if config.Metric == nil {
		config.Metric = Euclidean
	}
	if config.Workers < 1 {
		config.Workers = 1
	}
	return &Engine{config: config}
}

// Evaluate computes the per-point silhouette scores and their mean.
// It fails fast with SingleClusterErr when the dataset holds a single
// cluster, since the separation b is undefined for every point.
func (e *Engine) Evaluate(ds Dataset) (Result, error) {
	start := time.Now()

	switch e.config.Mode {
	case Exact, CentroidMean, CentroidMedian:
	default:
		return Result{}, fmt.Errorf("invalid mode: %s", e.config.Mode)
	}

	clustering, err := Group(ds)
	if err != nil {
		return Result{}, err
	}
	if clustering.Size() < 2 {
		return Result{}, fmt.Errorf("cannot evaluate %d points: %w", ds.Len(), SingleClusterErr)
	}

	var centroids map[int][]float64
	switch e.config.Mode {
	case CentroidMean:
		centroids, err = clustering.Centroids(ds, Mean)
	case CentroidMedian:
		centroids, err = clustering.Centroids(ds, Median)
	}
	if err != nil {
		return Result{}, fmt.Errorf("could not compute centroids: %w", err)
	}

	scores, err := e.score(ds, clustering, centroids)
	if err != nil {
		return Result{}, err
	}

	stats := buffer.NewStats()
	excluded := 0
	for _, s := range scores {
		if math.IsNaN(s.Silhouette) {
			excluded++
			continue
		}
		stats.Push(s.Silhouette)
	}

	// with no defined per-point score the aggregate itself is undefined
	mean := math.NaN()
	if stats.Count() > 0 {
		mean = stats.Avg()
	}

	result := Result{
		Mode:     e.config.Mode.String(),
		Scores:   scores,
		Mean:     mean,
		Excluded: excluded,
	}

	metrics.Observer.IncrementEvaluations(result.Mode)
	metrics.Observer.ObserveDuration(time.Since(start).Seconds(), result.Mode)

	log.Debug().
		Str("mode", result.Mode).
		Int("points", ds.Len()).
		Int("clusters", clustering.Size()).
		Int("excluded", excluded).
		Float64("mean", result.Mean).
		Dur("duration", time.Since(start)).
		Msg("evaluated silhouette")

	return result, nil
}

// score runs the per-point (a,b) computation, splitting the points across
// the configured workers. The clustering and centroids are shared read-only,
// each worker writes only its own output slots.
func (e *Engine) score(ds Dataset, clustering Clustering, centroids map[int][]float64) ([]Score, error) {
	n := ds.Len()
	scores := make([]Score, n)

	workers := e.config.Workers
	if workers > n {
		workers = n
	}

	errs := make([]error, workers)
	wg := new(sync.WaitGroup)
	wg.Add(workers)
	for w := 0; w < workers; w++ {
		go func(w int) {
			defer wg.Done()
			for i := w; i < n; i += workers {
				score, err := e.pointScore(ds, clustering, centroids, i)
				if err != nil {
					errs[w] = fmt.Errorf("point %d: %w", i, err)
					return
				}
				scores[i] = score
			}
		}(w)
	}
	wg.Wait()

	for _, err := range errs {
		if err != nil {
			return nil, err
		}
	}
	return scores, nil
}

func (e *Engine) pointScore(ds Dataset, clustering Clustering, centroids map[int][]float64, i int) (Score, error) {
	var a, b float64
	var err error

	switch e.config.Mode {
	case Exact:
		a, b, err = e.exact(ds, clustering, i)
	default:
		a, b, err = e.centroid(ds, clustering, centroids, i)
	}
	if err != nil {
		return Score{}, err
	}

	s := math.NaN()
	switch max := math.Max(a, b); {
	case math.IsNaN(max):
		// undefined dissimilarities give an undefined coefficient
	case max > 0:
		s = (b - a) / max
	default:
		// a point identical to both reference clusters scores 0
		s = 0
	}

	return Score{Index: i, A: a, B: b, Silhouette: s}, nil
}

// exact computes a as the mean distance to the other members of the point's
// own cluster (0 for a singleton cluster) and b as the minimum over the other
// clusters of the mean distance to their members.
func (e *Engine) exact(ds Dataset, clustering Clustering, i int) (float64, float64, error) {
	p := ds.Point(i)
	own := ds.Label(i)

	a := 0.0
	if members := clustering.Members(own); len(members) > 1 {
		sum := 0.0
		for _, j := range members {
			if j == i {
				continue
			}
			d, err := e.config.Metric(p, ds.Point(j))
			if err != nil {
				return 0, 0, err
			}
			sum += d
		}
		a = sum / float64(len(members)-1)
	}

	b := math.MaxFloat64
	for _, label := range clustering.Labels() {
		if label == own {
			continue
		}
		members := clustering.Members(label)
		sum := 0.0
		for _, j := range members {
			d, err := e.config.Metric(p, ds.Point(j))
			if err != nil {
				return 0, 0, err
			}
			sum += d
		}
		if mean := sum / float64(len(members)); mean < b {
			b = mean
		}
	}

	return a, b, nil
}

// centroid approximates a with the distance to the point's own cluster
// centroid and b with the distance to the nearest other cluster centroid.
func (e *Engine) centroid(ds Dataset, clustering Clustering, centroids map[int][]float64, i int) (float64, float64, error) {
	p := ds.Point(i)
	own := ds.Label(i)

	a, err := e.config.Metric(p, centroids[own])
	if err != nil {
		return 0, 0, err
	}

	b := math.MaxFloat64
	for _, label := range clustering.Labels() {
		if label == own {
			continue
		}
		d, err := e.config.Metric(p, centroids[label])
		if err != nil {
			return 0, 0, err
		}
		if d < b {
			b = d
		}
	}

	return a, b, nil
}
