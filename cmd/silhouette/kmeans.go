package main

import (
	"fmt"

	"github.com/algohertz/silhouette/internal/dataset"
	xmath "github.com/algohertz/silhouette/internal/math"
	"github.com/algohertz/silhouette/internal/ml"
	"github.com/algohertz/silhouette/internal/silhouette"
	"github.com/spf13/cobra"
)

func kmeansCmd() *cobra.Command {
	var (
		kMin       int
		kMax       int
		iterations int
		mode       string
		metric     string
		workers    int
	)

	cmd := &cobra.Command{
		Use:   "kmeans <dataset.csv>",
		Short: "Cluster raw points with k-means and pick k by silhouette",
		Long: `kmeans ignores the label column of the input and re-clusters the points
for every k in the sweep range, scoring each clustering by its mean
silhouette and reporting the best k.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ds, err := dataset.LoadCSV(args[0])
			if err != nil {
				return err
			}

			m, err := silhouette.ParseMode(mode)
			if err != nil {
				return err
			}
			dist, err := metricFor(metric)
			if err != nil {
				return err
			}
			engine := silhouette.New(silhouette.Config{Mode: m, Metric: dist, Workers: workers})

			best, sweeps, err := ml.BestK(ds.Points(), kMin, kMax, iterations, engine)
			if err != nil {
				return err
			}

			for _, s := range sweeps {
				fmt.Printf("k = %d , mean silhouette = %s\n", s.K, xmath.Format(s.Mean))
			}
			fmt.Printf("best k = %d\n", best)

			return nil
		},
	}

	cmd.Flags().IntVar(&kMin, "k-min", 2, "smallest cluster count to try")
	cmd.Flags().IntVar(&kMax, "k-max", 10, "largest cluster count to try")
	cmd.Flags().IntVar(&iterations, "iterations", 30, "k-means training iterations")
	cmd.Flags().StringVar(&mode, "mode", "exact", "evaluation mode: exact|centroid_mean|centroid_median")
	cmd.Flags().StringVar(&metric, "metric", "euclidean", "distance metric: euclidean|manhattan|cosine")
	cmd.Flags().IntVar(&workers, "workers", 1, "parallel workers for the per-point computation")

	return cmd
}
