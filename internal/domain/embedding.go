package domain

import (
	"math"

	"github.com/artlens-app/go-backend/pkg/e"
)

// EmbeddingDim — размерность векторов CLIP-модели.
const EmbeddingDim = 512

// Payload описывает дополнительную информацию вектора в Qdrant
type Payload map[string]any

// Embedding представляет вектор одного изображения для векторного хранилища
type Embedding struct {
	ID      string
	Vector  []float32
	Payload Payload
}

func NewEmbedding(id string, vector []float32, payload Payload) *Embedding {
	return &Embedding{
		ID:      id,
		Vector:  vector,
		Payload: payload,
	}
}

func NewArtworkPayload(artworkID int64, siteID *int64) Payload {
	payload := Payload{
		"artwork_id": artworkID,
	}
	if siteID != nil {
		payload["site_id"] = *siteID
	}
	return payload
}

// NormalizeEmbedding приводит вектор к единичной евклидовой норме.
// Вырожденный (нулевой) вектор отклоняется с ошибкой e.ErrZeroVector,
// а не делится на ноль. Повторная нормализация идемпотентна.
func NormalizeEmbedding(vector []float32) ([]float32, error) {
	if len(vector) == 0 {
		return nil, e.ErrEmptyVector
	}

	var sum float64
	for _, v := range vector {
		sum += float64(v) * float64(v)
	}

	norm := math.Sqrt(sum)
	if norm == 0 {
		return nil, e.ErrZeroVector
	}

	normalized := make([]float32, len(vector))
	for i, v := range vector {
		normalized[i] = float32(float64(v) / norm)
	}

	return normalized, nil
}

// CosineDistance вычисляет косинусную дистанцию между двумя векторами:
// 0 — идентичное направление, 2 — противоположное.
// Для некорректного входа (разная длина, нулевая норма) возвращает
// максимальную дистанцию 2.0, чтобы такой кандидат никогда не прошёл порог.
func CosineDistance(a, b []float32) float64 {
	if len(a) != len(b) || len(a) == 0 {
		return 2.0
	}

	var dotProduct, normA, normB float64
	for i := range a {
		dotProduct += float64(a[i]) * float64(b[i])
		normA += float64(a[i]) * float64(a[i])
		normB += float64(b[i]) * float64(b[i])
	}

	if normA == 0 || normB == 0 {
		return 2.0
	}

	similarity := dotProduct / (math.Sqrt(normA) * math.Sqrt(normB))
	// Ограничиваем диапазон [-1, 1] из-за погрешностей плавающей точки
	if similarity > 1 {
		similarity = 1
	}
	if similarity < -1 {
		similarity = -1
	}

	return 1 - similarity
}
