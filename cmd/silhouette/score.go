package main

import (
	"fmt"

	"github.com/algohertz/silhouette/internal/dataset"
	xmath "github.com/algohertz/silhouette/internal/math"
	"github.com/algohertz/silhouette/internal/silhouette"
	"github.com/algohertz/silhouette/internal/storage"
	"github.com/algohertz/silhouette/internal/storage/file/json"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

func metricFor(name string) (silhouette.Metric, error) {
	switch name {
	case "euclidean":
		return silhouette.Euclidean, nil
	case "manhattan":
		return silhouette.Manhattan, nil
	case "cosine":
		return silhouette.Cosine, nil
	}
	return nil, fmt.Errorf("unknown metric: %s", name)
}

func scoreCmd() *cobra.Command {
	var (
		mode     string
		metric   string
		workers  int
		perPoint bool
		store    bool
	)

	cmd := &cobra.Command{
		Use:   "score <dataset.csv>",
		Short: "Score an existing clustering",
		Args:  cobra.ExactArgs(1),
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
			result, err := engine.Evaluate(ds)
			if err != nil {
				return err
			}

			fmt.Printf("mode = %s\n", result.Mode)
			fmt.Printf("points = %d , excluded = %d\n", ds.Len(), result.Excluded)
			fmt.Printf("mean silhouette = %s\n", xmath.Format(result.Mean))
			if perPoint {
				for _, s := range result.Scores {
					fmt.Printf("%d a = %s , b = %s , s = %s\n",
						s.Index, xmath.Format(s.A), xmath.Format(s.B), xmath.Format(s.Silhouette))
				}
			}

			var persistence storage.Persistence = storage.NewVoidStorage()
			if store {
				persistence = json.NewJsonBlob(storage.ResultsDir, result.Mode, false)
			}
			run := uuid.New().String()
			k := storage.Key{Name: args[0], Run: run, Label: "result"}
			if err := persistence.Store(k, result); err != nil {
				return fmt.Errorf("could not store result: %w", err)
			}
			if store {
				log.Info().Str("run", run).Str("dataset", args[0]).Msg("stored result")
			}

			return nil
		},
	}

	cmd.Flags().StringVar(&mode, "mode", "exact", "evaluation mode: exact|centroid_mean|centroid_median")
	cmd.Flags().StringVar(&metric, "metric", "euclidean", "distance metric: euclidean|manhattan|cosine")
	cmd.Flags().IntVar(&workers, "workers", 1, "parallel workers for the per-point computation")
	cmd.Flags().BoolVar(&perPoint, "per-point", false, "print the per-point scores")
	cmd.Flags().BoolVar(&store, "store", false, "persist the result as a json blob")

	return cmd
}
