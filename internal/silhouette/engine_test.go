package silhouette

import (
	"fmt"
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEvaluate_TwoSeparatedPairs(t *testing.T) {
	// 4 points in 1 dimension, two tight pairs far apart
	ds := mustDataset(t,
		[][]float64{{0.0}, {1.0}, {10.0}, {11.0}},
		[]int{0, 0, 1, 1},
	)

	result, err := New(Config{Mode: Exact}).Evaluate(ds)
	require.NoError(t, err)

	require.Len(t, result.Scores, 4)
	assert.Equal(t, 0, result.Excluded)

	for _, s := range result.Scores {
		assert.InDelta(t, 1.0, s.A, 1e-12)
	}
	assert.InDelta(t, 10.5, result.Scores[0].B, 1e-12)
	assert.InDelta(t, 9.5, result.Scores[1].B, 1e-12)
	assert.InDelta(t, 9.5, result.Scores[2].B, 1e-12)
	assert.InDelta(t, 10.5, result.Scores[3].B, 1e-12)

	assert.InDelta(t, (10.5-1)/10.5, result.Scores[0].Silhouette, 1e-12)
	assert.InDelta(t, (9.5-1)/9.5, result.Scores[1].Silhouette, 1e-12)

	assert.Greater(t, result.Mean, 0.8)
}

func TestEvaluate_EmptyDataset(t *testing.T) {
	_, err := New(Config{}).Evaluate(Dataset{})
	assert.ErrorIs(t, err, EmptyDatasetErr)
}

func TestEvaluate_SingleCluster(t *testing.T) {
	ds := mustDataset(t,
		[][]float64{{0}, {1}, {2}},
		[]int{5, 5, 5},
	)
	for _, mode := range []Mode{Exact, CentroidMean, CentroidMedian} {
		t.Run(mode.String(), func(t *testing.T) {
			_, err := New(Config{Mode: mode}).Evaluate(ds)
			assert.ErrorIs(t, err, SingleClusterErr)
		})
	}
}

func TestEvaluate_DimensionMismatch(t *testing.T) {
	ds := mustDataset(t,
		[][]float64{{0, 0}, {1, 1, 1}},
		[]int{0, 1},
	)
	for _, mode := range []Mode{Exact, CentroidMean, CentroidMedian} {
		t.Run(mode.String(), func(t *testing.T) {
			_, err := New(Config{Mode: mode}).Evaluate(ds)
			assert.ErrorIs(t, err, DimensionMismatchErr)
		})
	}
}

func TestEvaluate_CoincidentClusters(t *testing.T) {
	// two clusters occupying the exact same spot: a = b = 0 for every
	// point, the coefficient resolves to 0 by convention
	ds := mustDataset(t,
		[][]float64{{2, 2}, {2, 2}, {2, 2}, {2, 2}},
		[]int{0, 0, 1, 1},
	)

	result, err := New(Config{Mode: Exact}).Evaluate(ds)
	require.NoError(t, err)

	assert.Equal(t, 0, result.Excluded)
	for _, s := range result.Scores {
		assert.Equal(t, 0.0, s.Silhouette)
	}
	assert.Equal(t, 0.0, result.Mean)
}

func TestEvaluate_SingletonCluster(t *testing.T) {
	// a singleton cluster is not an error, its cohesion is 0 by convention
	ds := mustDataset(t,
		[][]float64{{0}, {1}, {10}},
		[]int{0, 0, 1},
	)

	result, err := New(Config{Mode: Exact}).Evaluate(ds)
	require.NoError(t, err)

	assert.Equal(t, 0.0, result.Scores[2].A)
	assert.InDelta(t, 9.5, result.Scores[2].B, 1e-12)
	assert.InDelta(t, 1.0, result.Scores[2].Silhouette, 1e-12)
}

func TestEvaluate_SeparationApproachesOne(t *testing.T) {
	// growing the gap between two tight clusters drives the score towards 1
	previous := -1.0
	for _, sep := range []float64{5, 50, 500, 5000} {
		ds := mustDataset(t,
			[][]float64{{0}, {1}, {sep}, {sep + 1}},
			[]int{0, 0, 1, 1},
		)
		result, err := New(Config{Mode: Exact}).Evaluate(ds)
		require.NoError(t, err)

		assert.Greater(t, result.Mean, previous, fmt.Sprintf("separation %v", sep))
		assert.Less(t, result.Mean, 1.0)
		previous = result.Mean
	}
	assert.Greater(t, previous, 0.999)
}

func TestEvaluate_ScoreWithinBounds(t *testing.T) {
	rnd := rand.New(rand.NewSource(11))
	points := make([][]float64, 300)
	labels := make([]int, 300)
	for i := range points {
		points[i] = []float64{rnd.Float64() * 10, rnd.Float64() * 10}
		labels[i] = i % 3
	}
	ds := mustDataset(t, points, labels)

	for _, mode := range []Mode{Exact, CentroidMean, CentroidMedian} {
		t.Run(mode.String(), func(t *testing.T) {
			result, err := New(Config{Mode: mode}).Evaluate(ds)
			require.NoError(t, err)
			assert.GreaterOrEqual(t, result.Mean, -1.0)
			assert.LessOrEqual(t, result.Mean, 1.0)
			for _, s := range result.Scores {
				assert.GreaterOrEqual(t, s.Silhouette, -1.0)
				assert.LessOrEqual(t, s.Silhouette, 1.0)
			}
		})
	}
}

func TestEvaluate_SingletonClustersModesAgree(t *testing.T) {
	// with one point per cluster the centroid of each cluster is the point
	// itself, so the approximation collapses onto the exact computation
	ds := mustDataset(t,
		[][]float64{{0, 0}, {3, 1}, {7, 2}, {1, 9}},
		[]int{0, 1, 2, 3},
	)

	exact, err := New(Config{Mode: Exact}).Evaluate(ds)
	require.NoError(t, err)
	approx, err := New(Config{Mode: CentroidMean}).Evaluate(ds)
	require.NoError(t, err)

	for i := range exact.Scores {
		assert.InDelta(t, exact.Scores[i].A, approx.Scores[i].A, 1e-12)
		assert.InDelta(t, exact.Scores[i].B, approx.Scores[i].B, 1e-12)
		assert.InDelta(t, exact.Scores[i].Silhouette, approx.Scores[i].Silhouette, 1e-12)
	}
	assert.InDelta(t, exact.Mean, approx.Mean, 1e-12)
}

// gaussianBlobs builds well separated clusters with gaussian spread.
func gaussianBlobs(t *testing.T, centers [][]float64, size int, std float64, seed int64) Dataset {
	rnd := rand.New(rand.NewSource(seed))
	points := make([][]float64, 0, len(centers)*size)
	labels := make([]int, 0, len(centers)*size)
	for c, center := range centers {
		for i := 0; i < size; i++ {
			point := make([]float64, len(center))
			for d := range center {
				point[d] = center[d] + rnd.NormFloat64()*std
			}
			points = append(points, point)
			labels = append(labels, c)
		}
	}
	return mustDataset(t, points, labels)
}

func TestEvaluate_CentroidApproximationDivergence(t *testing.T) {
	// the centroid approximation is biased: it underestimates the
	// intra-cluster spread. On a well separated gaussian fixture both
	// modes must score high and stay within a small analytic bound.
	ds := gaussianBlobs(t, [][]float64{{0, 0}, {20, 0}, {0, 20}}, 40, 0.5, 7)

	exact, err := New(Config{Mode: Exact}).Evaluate(ds)
	require.NoError(t, err)
	approx, err := New(Config{Mode: CentroidMean}).Evaluate(ds)
	require.NoError(t, err)

	assert.Greater(t, exact.Mean, 0.8)
	assert.Greater(t, approx.Mean, 0.8)
	// centroid mode shrinks a by up to a factor sqrt(2) for gaussian
	// clusters, which with b ~ 20 and std 0.5 keeps the gap well below 0.1
	assert.InDelta(t, exact.Mean, approx.Mean, 0.1)
	assert.NotEqual(t, exact.Mean, approx.Mean)
}

func TestEvaluate_Parallel(t *testing.T) {
	ds := gaussianBlobs(t, [][]float64{{0, 0}, {10, 10}}, 50, 1.0, 3)

	sequential, err := New(Config{Mode: Exact, Workers: 1}).Evaluate(ds)
	require.NoError(t, err)
	parallel, err := New(Config{Mode: Exact, Workers: 4}).Evaluate(ds)
	require.NoError(t, err)

	require.Len(t, parallel.Scores, len(sequential.Scores))
	for i := range sequential.Scores {
		assert.Equal(t, sequential.Scores[i], parallel.Scores[i])
	}
	assert.Equal(t, sequential.Mean, parallel.Mean)
}

func TestEvaluate_ManhattanMetric(t *testing.T) {
	ds := mustDataset(t,
		[][]float64{{0, 0}, {1, 1}, {10, 10}, {11, 11}},
		[]int{0, 0, 1, 1},
	)
	result, err := New(Config{Mode: Exact, Metric: Manhattan}).Evaluate(ds)
	require.NoError(t, err)
	assert.InDelta(t, 2.0, result.Scores[0].A, 1e-12)
	assert.Greater(t, result.Mean, 0.8)
}

func TestParseMode(t *testing.T) {

	type test struct {
		input  string
		output Mode
		err    bool
	}

	tests := map[string]test{
		"exact": {
			input:  "exact",
			output: Exact,
		},
		"centroid_mean": {
			input:  "centroid_mean",
			output: CentroidMean,
		},
		"centroid_median": {
			input:  "centroid_median",
			output: CentroidMedian,
		},
		"unknown": {
			input: "medoid",
			err:   true,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			m, err := ParseMode(tt.input)
			if tt.err {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.output, m)
			assert.Equal(t, tt.input, m.String())
		})
	}
}

func TestEvaluate_InvalidMode(t *testing.T) {
	ds := mustDataset(t,
		[][]float64{{0}, {1}},
		[]int{0, 1},
	)
	_, err := New(Config{Mode: Mode(7)}).Evaluate(ds)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid mode")
}

func TestEvaluate_AllScoresUndefined(t *testing.T) {
	// NaN coordinates make every dissimilarity undefined: the points are
	// excluded and the aggregate mean must not pretend to be a valid 0
	ds := mustDataset(t,
		[][]float64{{math.NaN()}, {math.NaN()}},
		[]int{0, 1},
	)

	result, err := New(Config{Mode: Exact}).Evaluate(ds)
	require.NoError(t, err)

	assert.Equal(t, 2, result.Excluded)
	assert.True(t, math.IsNaN(result.Mean))
	for _, s := range result.Scores {
		assert.True(t, math.IsNaN(s.Silhouette))
	}
}

func TestEvaluate_NoNaNOnDegenerateInput(t *testing.T) {
	result, err := New(Config{Mode: Exact}).Evaluate(mustDataset(t,
		[][]float64{{0}, {0}},
		[]int{0, 1},
	))
	require.NoError(t, err)
	assert.False(t, math.IsNaN(result.Mean))
	assert.Equal(t, 0.0, result.Mean)
}
