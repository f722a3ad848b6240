package main

import (
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

var verbose bool

func init() {
	zerolog.SetGlobalLevel(zerolog.InfoLevel)
}

func main() {
	root := &cobra.Command{
		Use:   "silhouette",
		Short: "Silhouette clustering-quality scoring",
		Long: `Silhouette computes the silhouette coefficient for labeled datasets.

Commands:
  score     score an existing clustering from a csv dataset
  kmeans    cluster raw points with k-means and pick k by silhouette
  generate  generate a synthetic gaussian cluster dataset`,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if verbose {
				zerolog.SetGlobalLevel(zerolog.DebugLevel)
			}
		},
	}

	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")

	root.AddCommand(scoreCmd())
	root.AddCommand(kmeansCmd())
	root.AddCommand(generateCmd())

	if err := root.Execute(); err != nil {
		log.Error().Err(err).Msg("command failed")
		os.Exit(1)
	}
}
