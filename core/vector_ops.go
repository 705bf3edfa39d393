package core

import "math"

// NormalizeVector scales a single float32 slice to unit L2 norm in place.
// Zero vectors are left unchanged.
func NormalizeVector(vec []float32) {
	if len(vec) == 0 {
		return
	}
	var norm float64
	for _, v := range vec {
		norm += float64(v) * float64(v)
	}
	if norm == 0 {
		return
	}
	inv := float32(1 / math.Sqrt(norm))
	for i := range vec {
		vec[i] *= inv
	}
}

// NormalizeBatch normalizes multiple vectors in a batch using goroutines.
func NormalizeBatch(vecs [][]float32) {
	if len(vecs) == 0 || len(vecs[0]) == 0 {
		return
	}

	// Create a channel to synchronize the goroutines.
	done := make(chan struct{})
	for i := range vecs {
		go func(i int) {
			NormalizeVector(vecs[i])
			done <- struct{}{}
		}(i)
	}

	// Wait for all go routines to finish.
	for range vecs {
		<-done
	}

	close(done)
}
