package gen

import (
	"fmt"
	"math/rand"

	"github.com/algohertz/silhouette/internal/silhouette"
	"github.com/rs/zerolog/log"
)

// Config drives the synthetic cluster generation.
// Each cluster gets a uniform random center and per-dimension spread,
// its points are sampled with gaussian noise around the center.
type Config struct {
	Name           string  `toml:"name"`
	ClusterCount   int     `toml:"cluster_count"`
	MinClusterSize int     `toml:"min_cluster_size"`
	MaxClusterSize int     `toml:"max_cluster_size"`
	DimCount       int     `toml:"dim_count"`
	CenterMin      float64 `toml:"center_min"`
	CenterMax      float64 `toml:"center_max"`
	StdMin         float64 `toml:"std_min"`
	StdMax         float64 `toml:"std_max"`
	Seed           int64   `toml:"seed"`
}

func (c Config) validate() error {
	if c.ClusterCount < 1 {
		return fmt.Errorf("cluster_count must be positive: %d", c.ClusterCount)
	}
	if c.DimCount < 1 {
		return fmt.Errorf("dim_count must be positive: %d", c.DimCount)
	}
	if c.MinClusterSize < 1 || c.MaxClusterSize < c.MinClusterSize {
		return fmt.Errorf("invalid cluster size range [ %d | %d ]", c.MinClusterSize, c.MaxClusterSize)
	}
	if c.StdMin < 0 || c.StdMax < c.StdMin {
		return fmt.Errorf("invalid std range [ %v | %v ]", c.StdMin, c.StdMax)
	}
	return nil
}

// New generates a labeled gaussian cluster dataset from the given config.
func New(cfg Config) (silhouette.Dataset, error) {
	if err := cfg.validate(); err != nil {
		return silhouette.Dataset{}, fmt.Errorf("invalid generator config: %w", err)
	}

	rnd := rand.New(rand.NewSource(cfg.Seed))

	points := make([][]float64, 0)
	labels := make([]int, 0)

	for c := 0; c < cfg.ClusterCount; c++ {
		size := cfg.MinClusterSize
		if cfg.MaxClusterSize > cfg.MinClusterSize {
			size += rnd.Intn(cfg.MaxClusterSize - cfg.MinClusterSize + 1)
		}

		center := make([]float64, cfg.DimCount)
		std := make([]float64, cfg.DimCount)
		for d := 0; d < cfg.DimCount; d++ {
			center[d] = cfg.CenterMin + rnd.Float64()*(cfg.CenterMax-cfg.CenterMin)
			std[d] = cfg.StdMin + rnd.Float64()*(cfg.StdMax-cfg.StdMin)
		}

		for i := 0; i < size; i++ {
			point := make([]float64, cfg.DimCount)
			for d := 0; d < cfg.DimCount; d++ {
				point[d] = center[d] + rnd.NormFloat64()*std[d]
			}
			points = append(points, point)
			labels = append(labels, c)
		}

		log.Debug().
			Int("cluster", c).
			Int("size", size).
			Floats64("center", center).
			Msg("generated cluster")
	}

	return silhouette.NewDataset(points, labels)
}
