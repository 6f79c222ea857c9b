package embedder

import (
	"context"
	"encoding/json"
	"errors"
	"math"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/artlens-app/go-backend/internal/cfg"
	"github.com/artlens-app/go-backend/internal/domain"
	"github.com/artlens-app/go-backend/internal/usecase"
	"github.com/artlens-app/go-backend/pkg/e"
)

type nopLogger struct{}

func (nopLogger) Debugf(string, ...interface{})        {}
func (nopLogger) Infof(string, ...interface{})         {}
func (nopLogger) Warnf(string, ...interface{})         {}
func (nopLogger) Errorf(error, string, ...interface{}) {}

func newTestEmbedder(serverURL string) *EmbedderService {
	return NewEmbedderService(&cfg.EmbedderCfg{
		BaseURL:    serverURL,
		MaxRetries: 1,
		Timeout:    2 * time.Second,
	}, nopLogger{})
}

func embeddingHandler(t *testing.T, vector []float32) http.HandlerFunc {
	t.Helper()
	return func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/embed/image" {
			t.Errorf("path = %q, want /embed/image", r.URL.Path)
		}
		json.NewEncoder(w).Encode(embeddingResponse{
			Dim:       len(vector),
			Embedding: vector,
			Model:     "clip-test",
		})
	}
}

func testImage() *usecase.ScanImage {
	return usecase.NewScanImage([]byte("jpeg-bytes"), "image/jpeg", 10, "scan.jpg")
}

func TestEmbedNormalizesVector(t *testing.T) {
	raw := make([]float32, domain.EmbeddingDim)
	for i := range raw {
		raw[i] = 2.0
	}

	srv := httptest.NewServer(embeddingHandler(t, raw))
	defer srv.Close()

	vector, err := newTestEmbedder(srv.URL).Embed(context.Background(), testImage())
	if err != nil {
		t.Fatalf("Embed: %v", err)
	}

	var norm float64
	for _, v := range vector {
		norm += float64(v) * float64(v)
	}
	if math.Abs(math.Sqrt(norm)-1.0) > 1e-5 {
		t.Errorf("norm = %f, want 1.0", math.Sqrt(norm))
	}
}

func TestEmbedRejectsWrongDimension(t *testing.T) {
	srv := httptest.NewServer(embeddingHandler(t, []float32{0.1, 0.2, 0.3}))
	defer srv.Close()

	_, err := newTestEmbedder(srv.URL).Embed(context.Background(), testImage())
	if !errors.Is(err, e.ErrVectorDimension) {
		t.Fatalf("err = %v, want %v", err, e.ErrVectorDimension)
	}
}

func TestEmbedRejectsEmptyVector(t *testing.T) {
	srv := httptest.NewServer(embeddingHandler(t, []float32{}))
	defer srv.Close()

	_, err := newTestEmbedder(srv.URL).Embed(context.Background(), testImage())
	if !errors.Is(err, e.ErrEmptyVector) {
		t.Fatalf("err = %v, want %v", err, e.ErrEmptyVector)
	}
}
