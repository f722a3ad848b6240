package silhouette

import (
	"errors"
	"fmt"
	"sort"

	"gonum.org/v1/gonum/stat"
)

var (
	// EmptyDatasetErr signals that a dataset with no points was given.
	EmptyDatasetErr = errors.New("empty dataset")
	// EmptyClusterErr signals a cluster with no members.
	// It should be unreachable for a clustering produced by Group.
	EmptyClusterErr = errors.New("empty cluster")
	// SingleClusterErr signals that all points share one label,
	// in which case the separation b is undefined for every point.
	SingleClusterErr = errors.New("single cluster dataset")
)

// Dataset is an ordered set of points, each tagged with a cluster label.
// Labels do not need to be contiguous or start at zero.
// The dataset is owned by the caller and never mutated.
type Dataset struct {
	points [][]float64
	labels []int
}

// NewDataset pairs up the given points with their cluster labels.
func NewDataset(points [][]float64, labels []int) (Dataset, error) {
	if len(points) != len(labels) {
		return Dataset{}, fmt.Errorf("points and labels do not align [ %d | %d ]", len(points), len(labels))
	}
	return Dataset{points: points, labels: labels}, nil
}

// Len returns the number of points.
func (ds Dataset) Len() int {
	return len(ds.points)
}

// Dim returns the dimension of the first point.
// Dimension consistency across points is checked lazily by the Metric.
func (ds Dataset) Dim() int {
	if len(ds.points) == 0 {
		return 0
	}
	return len(ds.points[0])
}

// Point returns the point at the given index.
func (ds Dataset) Point(i int) []float64 {
	return ds.points[i]
}

// Points returns the underlying points in dataset order.
func (ds Dataset) Points() [][]float64 {
	return ds.points
}

// Labels returns the underlying labels in dataset order.
func (ds Dataset) Labels() []int {
	return ds.labels
}

// Label returns the cluster label of the point at the given index.
func (ds Dataset) Label(i int) int {
	return ds.labels[i]
}

// Clustering is a read-only view of a dataset grouped by cluster label.
// Every dataset index appears in exactly one cluster.
type Clustering struct {
	labels  []int
	members map[int][]int
}

// Group partitions the dataset by cluster label in a single pass.
// Member indices keep the dataset order, labels keep first-seen order.
func Group(ds Dataset) (Clustering, error) {
	if ds.Len() == 0 {
		return Clustering{}, fmt.Errorf("cannot group: %w", EmptyDatasetErr)
	}
	members := make(map[int][]int)
	labels := make([]int, 0)
	for i := 0; i < ds.Len(); i++ {
		l := ds.Label(i)
		if _, ok := members[l]; !ok {
			labels = append(labels, l)
		}
		members[l] = append(members[l], i)
	}
	return Clustering{labels: labels, members: members}, nil
}

// Size returns the number of distinct clusters.
func (c Clustering) Size() int {
	return len(c.labels)
}

// Labels returns the distinct cluster labels in first-seen order.
func (c Clustering) Labels() []int {
	return c.labels
}

// Members returns the dataset indices belonging to the given label.
func (c Clustering) Members(label int) []int {
	return c.members[label]
}

// Centroids reduces each cluster to one representative point,
// coordinate by coordinate, using the given reducer.
func (c Clustering) Centroids(ds Dataset, reduce func([]float64) float64) (map[int][]float64, error) {
	centroids := make(map[int][]float64, len(c.labels))
	dim := ds.Dim()
	for _, label := range c.labels {
		mm := c.members[label]
		if len(mm) == 0 {
			return nil, fmt.Errorf("cluster %d: %w", label, EmptyClusterErr)
		}
		centroid := make([]float64, dim)
		column := make([]float64, len(mm))
		for _, i := range mm {
			if len(ds.Point(i)) != dim {
				return nil, fmt.Errorf("point %d: %d vs %d: %w", i, len(ds.Point(i)), dim, DimensionMismatchErr)
			}
		}
		for d := 0; d < dim; d++ {
			for j, i := range mm {
				column[j] = ds.Point(i)[d]
			}
			centroid[d] = reduce(column)
		}
		centroids[label] = centroid
	}
	return centroids, nil
}

// Mean is the arithmetic mean reducer for centroid computation.
func Mean(values []float64) float64 {
	return stat.Mean(values, nil)
}

// Median is the median reducer for centroid computation.
// For an even number of values the two middle values are averaged.
func Median(values []float64) float64 {
	sorted := make([]float64, len(values))
	copy(sorted, values)
	sort.Float64s(sorted)
	n := len(sorted)
	return (sorted[(n-1)/2] + sorted[n/2]) / 2
}
