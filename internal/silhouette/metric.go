package silhouette

import (
	"errors"
	"fmt"

	"gonum.org/v1/gonum/floats"
)

var (
	// DimensionMismatchErr signals that two points of different dimension were compared.
	DimensionMismatchErr = errors.New("dimension mismatch")
)

// Metric computes the dissimilarity of two points of equal dimension.
// It must be symmetric and non-negative, with zero distance for identical points.
type Metric func(p, q []float64) (float64, error)

// Euclidean is the default L2 metric.
func Euclidean(p, q []float64) (float64, error) {
	if len(p) != len(q) {
		return 0, fmt.Errorf("euclidean: %d vs %d: %w", len(p), len(q), DimensionMismatchErr)
	}
	return floats.Distance(p, q, 2), nil
}

// Manhattan is the L1 metric.
func Manhattan(p, q []float64) (float64, error) {
	if len(p) != len(q) {
		return 0, fmt.Errorf("manhattan: %d vs %d: %w", len(p), len(q), DimensionMismatchErr)
	}
	return floats.Distance(p, q, 1), nil
}

// Cosine is the cosine distance, e.g. 1 - cos(p,q).
// A zero vector has no direction, so the distance to it is NaN.
func Cosine(p, q []float64) (float64, error) {
	if len(p) != len(q) {
		return 0, fmt.Errorf("cosine: %d vs %d: %w", len(p), len(q), DimensionMismatchErr)
	}
	var dot float64
	for i := range p {
		dot += p[i] * q[i]
	}
	np := floats.Norm(p, 2)
	nq := floats.Norm(q, 2)
	return 1 - dot/(np*nq), nil
}
