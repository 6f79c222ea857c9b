package pgdb

import (
	"context"
	"errors"

	"github.com/artlens-app/go-backend/internal/domain"
	"github.com/artlens-app/go-backend/internal/repository/pgdb/converter"
	"github.com/artlens-app/go-backend/pkg/e"
	"github.com/artlens-app/go-backend/pkg/tr"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jimlawless/whereami"
)

// ArtworkRepo реализует репозиторий каталога произведений поверх PostgreSQL.
type ArtworkRepo struct {
	pool *pgxpool.Pool
	conv converter.ArtworkConverter
}

func NewArtworkRepo(pool *pgxpool.Pool, conv converter.ArtworkConverter) *ArtworkRepo {
	return &ArtworkRepo{
		pool: pool,
		conv: conv,
	}
}

// Create сохраняет новую каталожную запись в рамках активной транзакции.
func (a *ArtworkRepo) Create(ctx context.Context, artwork *domain.Artwork) (*domain.Artwork, error) {
	tx, err := tr.TxFromCtx(ctx)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	model := a.conv.ToModel(artwork)
	query := `
		INSERT INTO artworks (
			vector_id, title, artist, description_json, image_url,
			embedding, site_id, is_verified, source, confidence_score
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING id, created_at;
	`

	if err := tx.QueryRow(ctx, query,
		model.VectorID,
		model.Title,
		model.Artist,
		model.DescriptionJSON,
		model.ImageURL,
		model.Embedding,
		model.SiteID,
		model.IsVerified,
		model.Source,
		model.ConfidenceScore,
	).Scan(&model.ID, &model.CreatedAt); err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return a.conv.ToEntity(model), nil
}

// GetByID возвращает каталожную запись по идентификатору.
func (a *ArtworkRepo) GetByID(ctx context.Context, id int64) (*domain.Artwork, error) {
	query := `
		SELECT id, vector_id, title, artist, description_json, image_url,
		       embedding, site_id, is_verified, source, confidence_score,
		       created_at, updated_at
		FROM artworks
		WHERE id = $1;
	`

	var model converter.ArtworkModel
	err := a.pool.QueryRow(ctx, query, id).Scan(
		&model.ID, &model.VectorID, &model.Title, &model.Artist,
		&model.DescriptionJSON, &model.ImageURL, &model.Embedding,
		&model.SiteID, &model.IsVerified, &model.Source, &model.ConfidenceScore,
		&model.CreatedAt, &model.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, e.Wrap(whereami.WhereAmI(), e.ErrArtworkNotFound)
		}
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return a.conv.ToEntity(&model), nil
}

// FetchAll возвращает записи каталога в заданной области поиска:
// для площадки — только её записи, без площадки — весь каталог.
// Область совпадает с фильтром нативного примитива, чтобы резервный
// линейный проход давал те же кандидаты. Используется резервным поиском.
func (a *ArtworkRepo) FetchAll(ctx context.Context, siteID *int64) ([]domain.Artwork, error) {
	query := `
		SELECT id, vector_id, title, artist, description_json, image_url,
		       embedding, site_id, is_verified, source, confidence_score,
		       created_at, updated_at
		FROM artworks
		WHERE $1::bigint IS NULL OR site_id = $1
		ORDER BY id;
	`

	rows, err := a.pool.Query(ctx, query, siteID)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}
	defer rows.Close()

	result := make([]domain.Artwork, 0)
	for rows.Next() {
		var model converter.ArtworkModel
		if err := rows.Scan(
			&model.ID, &model.VectorID, &model.Title, &model.Artist,
			&model.DescriptionJSON, &model.ImageURL, &model.Embedding,
			&model.SiteID, &model.IsVerified, &model.Source, &model.ConfidenceScore,
			&model.CreatedAt, &model.UpdatedAt,
		); err != nil {
			return nil, e.Wrap(whereami.WhereAmI(), err)
		}

		result = append(result, *a.conv.ToEntity(&model))
	}

	if err := rows.Err(); err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return result, nil
}
