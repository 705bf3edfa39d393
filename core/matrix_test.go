package core

import (
	"math"
	"testing"
)

func TestPairwiseMatrixKnownValues(t *testing.T) {
	vectors := [][]float32{
		{0, 0},
		{3, 4},
		{6, 8},
	}

	matrix, err := PairwiseMatrix(vectors, Euclidean, 2)
	if err != nil {
		t.Fatalf("PairwiseMatrix returned error: %v", err)
	}

	expected := [][]float64{
		{0, 5, 10},
		{5, 0, 5},
		{10, 5, 0},
	}

	for i := range expected {
		for j := range expected[i] {
			if math.Abs(matrix[i][j]-expected[i][j]) > 1e-6 {
				t.Errorf("matrix[%d][%d] = %v; want %v", i, j, matrix[i][j], expected[i][j])
			}
		}
	}
}

func TestPairwiseMatrixSymmetryAndZeroDiagonal(t *testing.T) {
	vectors := [][]float32{
		{1, -2, 3},
		{0.5, 4, -1},
		{7, 0, 2.5},
		{-3, -3, -3},
	}

	matrix, err := PairwiseMatrix(vectors, ManhattanDistance().Func(), 0)
	if err != nil {
		t.Fatalf("PairwiseMatrix returned error: %v", err)
	}

	for i := range matrix {
		if matrix[i][i] != 0 {
			t.Errorf("matrix[%d][%d] = %v; want 0", i, i, matrix[i][i])
		}
		for j := range matrix[i] {
			if matrix[i][j] != matrix[j][i] {
				t.Errorf("matrix[%d][%d] = %v; matrix[%d][%d] = %v; want equal",
					i, j, matrix[i][j], j, i, matrix[j][i])
			}
		}
	}
}

func TestPairwiseMatrixDimensionMismatch(t *testing.T) {
	vectors := [][]float32{
		{1, 2, 3},
		{1, 2},
	}

	if _, err := PairwiseMatrix(vectors, Euclidean, 1); err == nil {
		t.Errorf("Expected error for mismatched vector dimensions")
	}
}

func TestPairwiseMatrixEmptyInput(t *testing.T) {
	matrix, err := PairwiseMatrix(nil, Euclidean, 4)
	if err != nil {
		t.Fatalf("PairwiseMatrix returned error: %v", err)
	}
	if len(matrix) != 0 {
		t.Errorf("PairwiseMatrix(nil) returned %d rows; want 0", len(matrix))
	}
}
