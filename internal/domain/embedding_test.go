package domain

import (
	"errors"
	"math"
	"testing"

	"github.com/artlens-app/go-backend/pkg/e"
)

func TestNormalizeEmbedding(t *testing.T) {
	normalized, err := NormalizeEmbedding([]float32{3, 4})
	if err != nil {
		t.Fatalf("NormalizeEmbedding failed: %v", err)
	}

	var sum float64
	for _, v := range normalized {
		sum += float64(v) * float64(v)
	}
	if math.Abs(math.Sqrt(sum)-1) > 1e-6 {
		t.Errorf("norm after normalization = %f; want 1", math.Sqrt(sum))
	}

	if math.Abs(float64(normalized[0])-0.6) > 1e-6 || math.Abs(float64(normalized[1])-0.8) > 1e-6 {
		t.Errorf("normalized = %v; want [0.6 0.8]", normalized)
	}
}

func TestNormalizeEmbeddingIdempotent(t *testing.T) {
	once, err := NormalizeEmbedding([]float32{1, 2, 2})
	if err != nil {
		t.Fatalf("first normalization failed: %v", err)
	}

	twice, err := NormalizeEmbedding(once)
	if err != nil {
		t.Fatalf("second normalization failed: %v", err)
	}

	for i := range once {
		if math.Abs(float64(once[i]-twice[i])) > 1e-6 {
			t.Errorf("component %d changed after re-normalization: %f != %f", i, once[i], twice[i])
		}
	}
}

func TestNormalizeEmbeddingRejectsDegenerate(t *testing.T) {
	_, err := NormalizeEmbedding(nil)
	if !errors.Is(err, e.ErrEmptyVector) {
		t.Errorf("empty vector: got %v; want ErrEmptyVector", err)
	}

	_, err = NormalizeEmbedding([]float32{0, 0, 0})
	if !errors.Is(err, e.ErrZeroVector) {
		t.Errorf("zero vector: got %v; want ErrZeroVector", err)
	}
}

func TestCosineDistance(t *testing.T) {
	tests := []struct {
		name     string
		a        []float32
		b        []float32
		expected float64
	}{
		{"identical direction", []float32{1, 0}, []float32{1, 0}, 0},
		{"scaled copy", []float32{1, 2}, []float32{2, 4}, 0},
		{"orthogonal", []float32{1, 0}, []float32{0, 1}, 1},
		{"opposite", []float32{1, 0}, []float32{-1, 0}, 2},
		{"dimension mismatch", []float32{1, 0}, []float32{1, 0, 0}, 2},
		{"empty input", nil, nil, 2},
		{"zero norm operand", []float32{0, 0}, []float32{1, 0}, 2},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			result := CosineDistance(tc.a, tc.b)
			if math.Abs(result-tc.expected) > 1e-6 {
				t.Errorf("CosineDistance = %f; want %f", result, tc.expected)
			}
		})
	}
}

func TestCosineDistanceSymmetry(t *testing.T) {
	a := []float32{0.3, -0.5, 0.8, 0.1}
	b := []float32{-0.2, 0.9, 0.4, -0.6}

	if d1, d2 := CosineDistance(a, b), CosineDistance(b, a); math.Abs(d1-d2) > 1e-9 {
		t.Errorf("distance is not symmetric: %f != %f", d1, d2)
	}
}

func TestCosineDistanceClamped(t *testing.T) {
	// Большие значения провоцируют накопление погрешности плавающей точки
	a := make([]float32, EmbeddingDim)
	for i := range a {
		a[i] = 1e6
	}

	d := CosineDistance(a, a)
	if d < 0 || d > 2 {
		t.Errorf("distance %f outside [0, 2]", d)
	}
	if math.Abs(d) > 1e-6 {
		t.Errorf("self distance = %f; want 0", d)
	}
}

func TestNewArtworkPayload(t *testing.T) {
	siteID := int64(7)

	withSite := NewArtworkPayload(42, &siteID)
	if withSite["artwork_id"] != int64(42) {
		t.Errorf("artwork_id = %v; want 42", withSite["artwork_id"])
	}
	if withSite["site_id"] != int64(7) {
		t.Errorf("site_id = %v; want 7", withSite["site_id"])
	}

	global := NewArtworkPayload(42, nil)
	if _, ok := global["site_id"]; ok {
		t.Error("site_id must be omitted for global artworks")
	}
}

func TestMatchCandidateSimilarity(t *testing.T) {
	candidate := NewMatchCandidate(&Artwork{ID: 1}, 0.05)
	if math.Abs(candidate.Similarity()-0.95) > 1e-9 {
		t.Errorf("Similarity = %f; want 0.95", candidate.Similarity())
	}
}
