package domain

import "time"

// ArtworkSource — происхождение записи каталога.
type ArtworkSource string

const (
	SourceCurated     ArtworkSource = "curated"
	SourceAIGenerated ArtworkSource = "ai_generated"
)

// ArtworkDescription — структурированное описание произведения.
// Хранится в PostgreSQL как JSONB (description_json).
type ArtworkDescription struct {
	Text        string `json:"description"`
	Year        *int   `json:"year,omitempty"`
	Style       string `json:"style,omitempty"`
	AIGenerated bool   `json:"ai_generated"`
}

// Artwork описывает запись каталога произведений.
// Записи с Source = curated создаются только административным сидингом;
// ядро сканирования создаёт исключительно ai_generated-записи и никогда
// не снимает флаг IsVerified.
type Artwork struct {
	ID          int64
	VectorID    string // uuid точки в Qdrant
	Title       string
	Artist      string
	Description ArtworkDescription
	ImageURL    string
	Embedding   []float32
	SiteID      *int64
	IsVerified  bool
	Source      ArtworkSource
	// ConfidenceScore имеет смысл только для Source = ai_generated.
	ConfidenceScore float64
	CreatedAt       time.Time
	UpdatedAt       *time.Time
}

// MatchCandidate — лучший кандидат поиска по векторному сходству.
type MatchCandidate struct {
	Artwork  *Artwork
	Distance float64 // косинусная дистанция: 0 — идентичные, 2 — противоположные
}

// Similarity возвращает производное сходство кандидата.
func (m *MatchCandidate) Similarity() float64 {
	return 1 - m.Distance
}

func NewMatchCandidate(artwork *Artwork, distance float64) *MatchCandidate {
	return &MatchCandidate{
		Artwork:  artwork,
		Distance: distance,
	}
}
