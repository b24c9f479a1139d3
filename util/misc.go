package util

import (
	"gonum.org/v1/gonum/floats"
)

// ArgMax returns the lowest index holding the maximum value. It returns -1
// for an empty slice.
func ArgMax(s []float64) int {
	if len(s) == 0 {
		return -1
	}
	return floats.MaxIdx(s)
}

// IncrementalMean folds the k-th observation into the mean of the first k-1.
func IncrementalMean(old, value float64, k int) float64 {
	n := float64(k)
	return ((n-1)*old + value) / n
}

func CopyFloatSlice(s []float64) []float64 {
	out := make([]float64, len(s))
	copy(out, s)
	return out
}

func CopyIntSlice(s []int) []int {
	out := make([]int, len(s))
	copy(out, s)
	return out
}
