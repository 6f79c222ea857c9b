package embedder

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/textproto"
	"strings"
	"time"

	"github.com/artlens-app/go-backend/internal/cfg"
	"github.com/artlens-app/go-backend/internal/domain"
	"github.com/artlens-app/go-backend/internal/usecase"
	"github.com/artlens-app/go-backend/pkg/e"
	"github.com/artlens-app/go-backend/pkg/jitter"
	"github.com/artlens-app/go-backend/pkg/logger"
)

// EmbedderService — HTTP-клиент сервиса векторизации изображений (CLIP).
// Единственная жёсткая зависимость пайплайна сканирования: повторяет
// неудачные запросы с экспоненциальной задержкой и jitter, после чего
// отдаёт ошибку наверх.
type EmbedderService struct {
	baseURL    string
	maxRetries int
	client     *http.Client
	logger     logger.Logger
}

func NewEmbedderService(cfg *cfg.EmbedderCfg, logger logger.Logger) *EmbedderService {
	return &EmbedderService{
		baseURL:    strings.TrimSuffix(cfg.BaseURL, "/"),
		maxRetries: cfg.MaxRetries,
		client:     &http.Client{Timeout: cfg.Timeout},
		logger:     logger,
	}
}

// embeddingResponse — ответ embedding-сервера на POST /embed/image.
type embeddingResponse struct {
	Dim       int       `json:"dim"`
	Embedding []float32 `json:"embedding"`
	Model     string    `json:"model"`
}

// Embed вычисляет вектор изображения с retry-логикой и экспоненциальной задержкой.
func (s *EmbedderService) Embed(ctx context.Context, image *usecase.ScanImage) ([]float32, error) {
	const (
		op         = "EmbedderService.Embed"
		baseJitter = 1 * time.Second
		maxJitter  = 30 * time.Second
	)

	var lastErr error
	for attempt := 0; attempt < s.maxRetries; attempt++ {
		vector, err := s.embedOnce(ctx, image)
		if err == nil {
			return vector, nil
		}
		lastErr = err

		if attempt == s.maxRetries-1 {
			break
		}

		sleepTime := jitter.ExponentialBackoff(
			baseJitter,
			maxJitter,
			attempt,
			jitter.DefaultJitter,
		)

		s.logger.Warnf("embedding failed, retrying in %v (attempt %d): %v", sleepTime, attempt+1, err)
		select {
		case <-time.After(sleepTime):
		case <-ctx.Done():
			return nil, e.Wrap(op, ctx.Err())
		}
	}

	return nil, e.Wrap(op, fmt.Errorf("all %d attempts failed: %w", s.maxRetries, lastErr))
}

// embedOnce выполняет один multipart-запрос к embedding-серверу.
func (s *EmbedderService) embedOnce(ctx context.Context, image *usecase.ScanImage) ([]float32, error) {
	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)

	h := make(textproto.MIMEHeader)
	h.Set("Content-Disposition", `form-data; name="file"; filename="image.jpg"`)
	h.Set("Content-Type", image.MimeType)
	part, err := writer.CreatePart(h)
	if err != nil {
		return nil, fmt.Errorf("failed to create form file: %w", err)
	}

	if _, err := part.Write(image.Data); err != nil {
		return nil, fmt.Errorf("failed to write image data: %w", err)
	}

	if err := writer.Close(); err != nil {
		return nil, fmt.Errorf("failed to close multipart writer: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.baseURL+"/embed/image", &buf)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("embedder error (status %d): %s", resp.StatusCode, string(body))
	}

	var embResp embeddingResponse
	if err := json.Unmarshal(body, &embResp); err != nil {
		return nil, fmt.Errorf("failed to parse response: %w", err)
	}

	if len(embResp.Embedding) == 0 {
		return nil, e.ErrEmptyVector
	}

	if len(embResp.Embedding) != domain.EmbeddingDim {
		return nil, e.Wrap(fmt.Sprintf("got %d, want %d", len(embResp.Embedding), domain.EmbeddingDim), e.ErrVectorDimension)
	}

	// Единичная норма до записи и поиска: косинусные операции становятся
	// чистым скалярным произведением, повторная нормализация идемпотентна.
	normalized, err := domain.NormalizeEmbedding(embResp.Embedding)
	if err != nil {
		return nil, fmt.Errorf("embedder returned degenerate vector: %w", err)
	}

	return normalized, nil
}
