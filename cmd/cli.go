package cmd

import (
	"flag"
	"fmt"
	"math/rand"
	"time"

	"github.com/patrikhermansson/lpmetric/core"
	"github.com/rs/zerolog/log"
)

// Execute runs the CLI. It generates seeded random vectors and computes the
// full pairwise distance matrix for the selected metric, reporting timing and
// summary statistics.
func Execute() {
	var (
		metricName = flag.String("metric", "euclidean",
			"metric name: euclidean, squared_euclidean, or manhattan")
		power = flag.Int("power", 0,
			"L-p power; overrides -metric when positive")
		takeRoot = flag.Bool("root", false,
			"apply the 1/p root to the accumulated sum (with -power)")
		count   = flag.Int("n", 1000, "number of random vectors")
		dim     = flag.Int("dim", 64, "vector dimensionality")
		threads = flag.Int("threads", 0, "worker count (0 = LPMETRIC_NTRD or GOMAXPROCS)")
	)
	flag.Parse()

	metric, err := selectMetric(*metricName, *power, *takeRoot)
	if err != nil {
		log.Fatal().Err(err).Msg("Invalid metric selection")
	}

	rng := rand.New(rand.NewSource(core.GetSeed()))
	vectors := make([][]float32, *count)
	for i := range vectors {
		vec := make([]float32, *dim)
		for j := range vec {
			vec[j] = rng.Float32()
		}
		vectors[i] = vec
	}
	log.Info().Msgf("Generated %d random vectors with %d dimensions", *count, *dim)

	fmt.Printf("Computing %dx%d pairwise distances (metric: %s)\n", *count, *count, metric)
	start := time.Now()
	matrix, err := core.PairwiseMatrix(vectors, metric.Func(), *threads)
	if err != nil {
		log.Fatal().Err(err).Msg("Pairwise computation failed")
	}
	elapsed := time.Since(start)

	mean, max := summarize(matrix)
	fmt.Printf("Done in %.2fs (%.0f distances/s)\n",
		elapsed.Seconds(), float64(*count)*float64(*count)/elapsed.Seconds())
	fmt.Printf("Mean distance: %.4f, max distance: %.4f\n", mean, max)
}

// selectMetric resolves the metric from the -power/-root flags when a power
// is given, otherwise from the named presets.
func selectMetric(name string, power int, takeRoot bool) (core.LMetric, error) {
	if power > 0 {
		return core.NewLMetric(power, takeRoot)
	}
	metric, ok := core.Metrics[name]
	if !ok {
		return core.LMetric{}, fmt.Errorf("unknown metric %q", name)
	}
	return metric, nil
}

// summarize returns the mean and maximum of the off-diagonal matrix entries.
func summarize(matrix [][]float64) (mean, max float64) {
	var sum float64
	var n int
	for i := range matrix {
		for j := range matrix[i] {
			if i == j {
				continue
			}
			sum += matrix[i][j]
			if matrix[i][j] > max {
				max = matrix[i][j]
			}
			n++
		}
	}
	if n > 0 {
		mean = sum / float64(n)
	}
	return mean, max
}
