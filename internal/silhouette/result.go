package silhouette

// Score is the silhouette breakdown for a single point.
// A is the cohesion to the point's own cluster, B the separation
// from the nearest other cluster.
type Score struct {
	Index      int     `json:"index"`
	A          float64 `json:"a"`
	B          float64 `json:"b"`
	Silhouette float64 `json:"silhouette"`
}

// Result is the outcome of one evaluation run.
// Mean is the arithmetic mean over all defined per-point scores.
// Excluded counts points whose coefficient was undefined and
// therefore left out of the mean.
type Result struct {
	Mode     string  `json:"mode"`
	Scores   []Score `json:"scores"`
	Mean     float64 `json:"mean"`
	Excluded int     `json:"excluded"`
}
