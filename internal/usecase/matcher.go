package usecase

import (
	"context"

	"github.com/artlens-app/go-backend/internal/domain"
	"github.com/artlens-app/go-backend/pkg/e"
	"github.com/artlens-app/go-backend/pkg/logger"
)

// SimilarityMatcher ищет ближайшую каталожную запись к вектору запроса.
// Основной путь — нативный примитив векторного индекса; при его
// недоступности выполняется полный линейный проход по каталогу.
type SimilarityMatcher struct {
	vectorIndex VectorIndexRepository
	artworkRepo ArtworkRepository
	threshold   float64 // порог косинусной дистанции T
	logger      logger.Logger
}

func NewSimilarityMatcher(
	vectorIndex VectorIndexRepository,
	artworkRepo ArtworkRepository,
	threshold float64,
	logger logger.Logger,
) *SimilarityMatcher {
	return &SimilarityMatcher{
		vectorIndex: vectorIndex,
		artworkRepo: artworkRepo,
		threshold:   threshold,
		logger:      logger,
	}
}

// FindBest возвращает лучшего кандидата со строгим порогом distance < T
// либо nil. Ошибки примитива не поднимаются наверх: они логируются и
// молча переключают поиск на резервный линейный проход. Оба пути
// применяют один и тот же строгий порог.
func (m *SimilarityMatcher) FindBest(ctx context.Context, query []float32, siteID *int64) *domain.MatchCandidate {
	const op = "SimilarityMatcher.FindBest"

	hit, err := m.vectorIndex.QueryNearest(ctx, query, siteID)
	if err != nil {
		m.logger.Warnf("vector index unavailable, falling back to linear scan: %v", e.Wrap(op, err))
		return m.scanAll(ctx, query, siteID)
	}

	if hit == nil {
		// Примитив жив, но пригодной дистанции не вернул: пустая область
		// либо индекс отстал от каталога. Резервный проход решает оба случая.
		return m.scanAll(ctx, query, siteID)
	}

	if hit.Distance >= m.threshold {
		return nil
	}

	artwork, err := m.artworkRepo.GetByID(ctx, hit.ArtworkID)
	if err != nil {
		m.logger.Warnf("indexed hit %d has no catalog row, falling back to linear scan: %v", hit.ArtworkID, e.Wrap(op, err))
		return m.scanAll(ctx, query, siteID)
	}

	return domain.NewMatchCandidate(artwork, hit.Distance)
}

// scanAll выполняет полный проход по каталогу в заданной области поиска.
// Записи с нулевой нормой эмбеддинга пропускаются (CosineDistance даёт для
// них максимальную дистанцию). При равных минимумах побеждает первая
// запись в порядке, возвращённом хранилищем.
func (m *SimilarityMatcher) scanAll(ctx context.Context, query []float32, siteID *int64) *domain.MatchCandidate {
	const op = "SimilarityMatcher.scanAll"

	artworks, err := m.artworkRepo.FetchAll(ctx, siteID)
	if err != nil {
		m.logger.Warnf("catalog scan failed, treating as no match: %v", e.Wrap(op, err))
		return nil
	}

	var best *domain.MatchCandidate
	for i := range artworks {
		distance := domain.CosineDistance(query, artworks[i].Embedding)
		if best == nil || distance < best.Distance {
			best = domain.NewMatchCandidate(&artworks[i], distance)
		}
	}

	if best == nil || best.Distance >= m.threshold {
		return nil
	}

	return best
}
