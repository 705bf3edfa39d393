package core

import (
	"fmt"
	"os"
	"runtime"
	"strconv"
	"sync"

	"github.com/rs/zerolog/log"
	"github.com/schollz/progressbar/v3"
)

// NumThreads returns the worker count for bulk operations from the
// LPMETRIC_NTRD environment variable, falling back to GOMAXPROCS.
func NumThreads() int {
	if env := os.Getenv("LPMETRIC_NTRD"); env != "" {
		if t, err := strconv.Atoi(env); err == nil && t > 0 {
			log.Info().Msgf("Using %d threads for bulk operations", t)
			return t
		}
		log.Warn().Msgf("Failed to parse LPMETRIC_NTRD value: %s", env)
	}
	return runtime.GOMAXPROCS(0)
}

// PairwiseMatrix computes the full distance matrix for the given vectors
// using the provided distance function. All vectors must share the same
// dimension. Rows are distributed over threads workers; pass 0 to size the
// pool with NumThreads.
func PairwiseMatrix(vectors [][]float32, distance DistanceFunc, threads int) ([][]float64, error) {
	for i, vec := range vectors {
		if len(vec) != len(vectors[0]) {
			return nil, fmt.Errorf("vector dimension %d does not match dimension %d for vector %d",
				len(vec), len(vectors[0]), i)
		}
	}
	if threads <= 0 {
		threads = NumThreads()
	}
	if threads > len(vectors) {
		threads = len(vectors)
	}

	log.Debug().Msgf("Computing %dx%d pairwise matrix with %d threads",
		len(vectors), len(vectors), threads)

	matrix := make([][]float64, len(vectors))

	// Create a progress bar over rows with a newline on completion.
	bar := progressbar.NewOptions(len(vectors),
		progressbar.OptionOnCompletion(func() { fmt.Print("\n") }),
	)

	// Create a channel to feed row indices.
	tasks := make(chan int, len(vectors))
	var wg sync.WaitGroup

	// Worker function: processes rows from the task channel.
	worker := func() {
		defer wg.Done()
		for i := range tasks {
			row := make([]float64, len(vectors))
			for j := range vectors {
				row[j] = distance(vectors[i], vectors[j])
			}
			matrix[i] = row
			if err := bar.Add(1); err != nil {
				return
			}
		}
	}

	wg.Add(threads)
	for w := 0; w < threads; w++ {
		go worker()
	}
	for i := range vectors {
		tasks <- i
	}
	close(tasks)
	wg.Wait()

	return matrix, nil
}
