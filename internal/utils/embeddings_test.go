package utils

import (
	"math"
	"testing"
)

func TestCosineSimilaritySymmetry(t *testing.T) {
	a := []float32{0.3, -1.2, 4.5, 0.0}
	b := []float32{1.1, 0.4, -0.9, 2.2}

	ab, err := CosineSimilarity(a, b)
	if err != nil {
		t.Fatalf("CosineSimilarity(a, b) failed: %v", err)
	}
	ba, err := CosineSimilarity(b, a)
	if err != nil {
		t.Fatalf("CosineSimilarity(b, a) failed: %v", err)
	}
	if ab != ba {
		t.Errorf("similarity not symmetric: %v vs %v", ab, ba)
	}
}

func TestCosineSimilaritySelf(t *testing.T) {
	a := []float32{0.5, 2.5, -3.0}

	got, err := CosineSimilarity(a, a)
	if err != nil {
		t.Fatalf("CosineSimilarity(a, a) failed: %v", err)
	}
	if math.Abs(float64(got)-1.0) > 1e-6 {
		t.Errorf("self-similarity = %v, want 1", got)
	}
}

func TestCosineSimilarityOrthogonal(t *testing.T) {
	got, err := CosineSimilarity([]float32{1, 0}, []float32{0, 1})
	if err != nil {
		t.Fatalf("CosineSimilarity failed: %v", err)
	}
	if got != 0 {
		t.Errorf("orthogonal similarity = %v, want 0", got)
	}
}

func TestCosineSimilarityKnownValue(t *testing.T) {
	// dot = 11, |a| = 5, |b| = sqrt(5): 11 / (5 * sqrt(5))
	got, err := CosineSimilarity([]float32{3, 4}, []float32{1, 2})
	if err != nil {
		t.Fatalf("CosineSimilarity failed: %v", err)
	}
	want := 11.0 / (5.0 * math.Sqrt(5))
	if math.Abs(float64(got)-want) > 1e-6 {
		t.Errorf("similarity = %v, want %v", got, want)
	}
}

func TestCosineSimilarityDimensionMismatch(t *testing.T) {
	if _, err := CosineSimilarity([]float32{1, 2}, []float32{1, 2, 3}); err == nil {
		t.Error("expected error for mismatched dimensions")
	}
}

func TestCosineSimilarityEmpty(t *testing.T) {
	if _, err := CosineSimilarity(nil, []float32{1}); err == nil {
		t.Error("expected error for empty vector")
	}
}

func TestCosineSimilarityZeroVector(t *testing.T) {
	got, err := CosineSimilarity([]float32{0, 0}, []float32{1, 1})
	if err != nil {
		t.Fatalf("CosineSimilarity failed: %v", err)
	}
	if got != 0 {
		t.Errorf("zero-vector similarity = %v, want 0", got)
	}
}
