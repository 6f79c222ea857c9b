package converter

import (
	"time"

	"github.com/pgvector/pgvector-go"
)

// ArtworkModel представляет запись таблицы artworks в PostgreSQL.
type ArtworkModel struct {
	ID              int64           `db:"id"`
	VectorID        string          `db:"vector_id"`
	Title           string          `db:"title"`
	Artist          string          `db:"artist"`
	DescriptionJSON []byte          `db:"description_json"`
	ImageURL        string          `db:"image_url"`
	Embedding       pgvector.Vector `db:"embedding"`
	SiteID          *int64          `db:"site_id"`
	IsVerified      bool            `db:"is_verified"`
	Source          string          `db:"source"`
	ConfidenceScore float64         `db:"confidence_score"`
	CreatedAt       time.Time       `db:"created_at"`
	UpdatedAt       *time.Time      `db:"updated_at"`
}

// SiteModel представляет запись таблицы sites в PostgreSQL.
type SiteModel struct {
	ID           int64      `db:"id"`
	Name         string     `db:"name"`
	Latitude     float64    `db:"latitude"`
	Longitude    float64    `db:"longitude"`
	RadiusMeters float64    `db:"radius_meters"`
	CreatedAt    time.Time  `db:"created_at"`
	UpdatedAt    *time.Time `db:"updated_at"`
	IsActive     bool       `db:"is_active"`
}

// OutboxEventModel представляет запись таблицы outbox_events в PostgreSQL.
type OutboxEventModel struct {
	ID          int64      `db:"id"`
	EventID     string     `db:"event_id"`
	EventType   string     `db:"event_type"`
	ArtworkID   int64      `db:"artwork_id"`
	Payload     []byte     `db:"payload"`
	Status      string     `db:"status"`
	CreatedAt   time.Time  `db:"created_at"`
	ProcessedAt *time.Time `db:"processed_at"`
}
