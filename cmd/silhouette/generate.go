package main

import (
	"fmt"

	"github.com/algohertz/silhouette/infra/config"
	"github.com/algohertz/silhouette/internal/dataset"
	"github.com/algohertz/silhouette/internal/gen"
	"github.com/algohertz/silhouette/internal/storage"
	"github.com/algohertz/silhouette/internal/storage/file/json"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

func generateCmd() *cobra.Command {
	var (
		configFile string
		store      bool
	)

	cmd := &cobra.Command{
		Use:   "generate <out.csv>",
		Short: "Generate a synthetic gaussian cluster dataset",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var cfg gen.Config
			if configFile != "" {
				if err := config.Load(configFile, &cfg); err != nil {
					return err
				}
			} else {
				config.MustLoad("clusters", &cfg)
			}

			ds, err := gen.New(cfg)
			if err != nil {
				return err
			}

			if err := dataset.SaveCSV(args[0], ds); err != nil {
				return err
			}

			if store {
				blob, err := json.BlobShard(storage.DatasetsDir)("generated")
				if err != nil {
					return fmt.Errorf("could not open dataset storage: %w", err)
				}
				if err := dataset.Store(blob, cfg.Name, ds); err != nil {
					return err
				}
				log.Info().Str("name", cfg.Name).Msg("stored dataset")
			}

			describe := dataset.Describe(ds)
			for d, stats := range describe.Stats() {
				log.Info().
					Int("dim", d).
					Float64("min", stats.Min()).
					Float64("max", stats.Max()).
					Float64("avg", stats.Avg()).
					Msg("dimension stats")
			}

			fmt.Printf("wrote %d points to %s\n", ds.Len(), args[0])
			return nil
		},
	}

	cmd.Flags().StringVar(&configFile, "config", "", "toml config file (defaults to infra/config/clusters.toml)")
	cmd.Flags().BoolVar(&store, "store", false, "also persist the dataset as a json blob")

	return cmd
}
