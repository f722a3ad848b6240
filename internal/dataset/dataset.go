package dataset

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"

	"github.com/algohertz/silhouette/internal/buffer"
	"github.com/algohertz/silhouette/internal/silhouette"
	"github.com/algohertz/silhouette/internal/storage"
)

// LabelColumn is the conventional name of the leading label column.
const LabelColumn = "cluster"

// LoadCSV reads a labeled dataset from a columnar csv file.
// The first column holds the cluster label, the remaining columns the
// point coordinates. Dimension consistency across rows is not validated
// here, the metric surfaces it on first use.
func LoadCSV(path string) (silhouette.Dataset, error) {
	f, err := os.Open(path)
	if err != nil {
		return silhouette.Dataset{}, fmt.Errorf("could not open dataset '%s': %w", path, err)
	}
	defer f.Close()

	reader := csv.NewReader(f)
	reader.FieldsPerRecord = -1
	rows, err := reader.ReadAll()
	if err != nil {
		return silhouette.Dataset{}, fmt.Errorf("could not read dataset '%s': %w", path, err)
	}
	if len(rows) < 2 {
		return silhouette.Dataset{}, fmt.Errorf("dataset '%s' has no rows", path)
	}

	header := rows[0]
	if len(header) < 2 || header[0] != LabelColumn {
		return silhouette.Dataset{}, fmt.Errorf("dataset '%s' must start with a '%s' column followed by coordinates", path, LabelColumn)
	}

	points := make([][]float64, 0, len(rows)-1)
	labels := make([]int, 0, len(rows)-1)
	for r, row := range rows[1:] {
		label, err := strconv.Atoi(row[0])
		if err != nil {
			return silhouette.Dataset{}, fmt.Errorf("row %d: could not parse label '%s': %w", r+1, row[0], err)
		}
		point := make([]float64, len(row)-1)
		for c, v := range row[1:] {
			point[c], err = strconv.ParseFloat(v, 64)
			if err != nil {
				return silhouette.Dataset{}, fmt.Errorf("row %d: could not parse coordinate '%s': %w", r+1, v, err)
			}
		}
		labels = append(labels, label)
		points = append(points, point)
	}

	return silhouette.NewDataset(points, labels)
}

// SaveCSV writes the dataset in the columnar csv layout read by LoadCSV.
func SaveCSV(path string, ds silhouette.Dataset) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("could not create dataset file '%s': %w", path, err)
	}
	defer f.Close()

	writer := csv.NewWriter(f)
	header := make([]string, ds.Dim()+1)
	header[0] = LabelColumn
	for d := 0; d < ds.Dim(); d++ {
		header[d+1] = fmt.Sprintf("ax%d", d)
	}
	if err := writer.Write(header); err != nil {
		return fmt.Errorf("could not write header: %w", err)
	}

	row := make([]string, ds.Dim()+1)
	for i := 0; i < ds.Len(); i++ {
		row[0] = strconv.Itoa(ds.Label(i))
		for d, v := range ds.Point(i) {
			row[d+1] = strconv.FormatFloat(v, 'f', -1, 64)
		}
		if err := writer.Write(row); err != nil {
			return fmt.Errorf("could not write row %d: %w", i, err)
		}
	}

	writer.Flush()
	return writer.Error()
}

// blob is the persisted form of a dataset.
type blob struct {
	Points [][]float64 `json:"points"`
	Labels []int       `json:"labels"`
}

// Store persists the dataset under the given name.
func Store(store storage.Persistence, name string, ds silhouette.Dataset) error {
	k := storage.Key{Name: name, Label: "dataset"}
	if err := store.Store(k, blob{Points: ds.Points(), Labels: ds.Labels()}); err != nil {
		return fmt.Errorf("could not store dataset '%s': %w", name, err)
	}
	return nil
}

// Load retrieves a dataset previously persisted under the given name.
func Load(store storage.Persistence, name string) (silhouette.Dataset, error) {
	k := storage.Key{Name: name, Label: "dataset"}
	var b blob
	if err := store.Load(k, &b); err != nil {
		return silhouette.Dataset{}, fmt.Errorf("could not load dataset '%s': %w", name, err)
	}
	return silhouette.NewDataset(b.Points, b.Labels)
}

// Describe collects per-dimension stats over the dataset points.
func Describe(ds silhouette.Dataset) *buffer.StatsCollector {
	collector := buffer.NewStatsCollector(ds.Dim())
	for i := 0; i < ds.Len(); i++ {
		collector.Push(ds.Point(i)...)
	}
	return collector
}
