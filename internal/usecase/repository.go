package usecase

import (
	"context"

	"github.com/artlens-app/go-backend/internal/domain"
)

type ArtworkRepository interface {
	Create(ctx context.Context, artwork *domain.Artwork) (*domain.Artwork, error)
	GetByID(ctx context.Context, id int64) (*domain.Artwork, error)
	FetchAll(ctx context.Context, siteID *int64) ([]domain.Artwork, error)
}

type SiteRepository interface {
	ListSites(ctx context.Context) ([]domain.Site, error)
}

// VectorIndexRepository — нативный примитив поиска по сходству (Qdrant).
type VectorIndexRepository interface {
	QueryNearest(ctx context.Context, vector []float32, siteID *int64) (*NearestHit, error)
	Upsert(ctx context.Context, vectors []domain.Embedding) error
}

type CacheRepository interface {
	GetSites(ctx context.Context) ([]domain.Site, error)
	SetSites(ctx context.Context, sites []domain.Site) error
	GetArtwork(ctx context.Context, id int64) (*ArtworkInfo, error)
	SetArtwork(ctx context.Context, info *ArtworkInfo) error
}

type ImageRepository interface {
	Upload(ctx context.Context, image *domain.Image) (string, error)
	Delete(ctx context.Context, key string) error
}

type ScanLogRepository interface {
	Create(ctx context.Context, entry *ScanLogEntry) error
}

type IssueRepository interface {
	Create(ctx context.Context, report *ReportIssueReq) error
}

type OutboxRepository interface {
	Create(ctx context.Context, event *OutboxEvent) (*OutboxEvent, error)
	GetAndMarkAsProcessing(ctx context.Context, limit int) ([]*OutboxEvent, error)
	MarkAsProcessed(ctx context.Context, id int64) error
}

// CatalogWriter атомарно сохраняет новую запись каталога вместе с
// outbox-событием и актуализирует векторный индекс.
type CatalogWriter interface {
	CreateCatalogEntry(ctx context.Context, artwork *domain.Artwork) (*domain.Artwork, error)
}
