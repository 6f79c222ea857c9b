package pgdb

import (
	"context"

	"github.com/artlens-app/go-backend/internal/domain"
	"github.com/artlens-app/go-backend/internal/repository/pgdb/converter"
	"github.com/artlens-app/go-backend/pkg/e"
	"github.com/artlens-app/go-backend/pkg/tr"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jimlawless/whereami"
)

// SiteRepo реализует репозиторий площадок поверх PostgreSQL.
type SiteRepo struct {
	pool *pgxpool.Pool
	conv converter.SiteConverter
}

func NewSiteRepo(pool *pgxpool.Pool, conv converter.SiteConverter) *SiteRepo {
	return &SiteRepo{
		pool: pool,
		conv: conv,
	}
}

// ListSites возвращает активные площадки в стабильном порядке создания.
// Порядок значим: при пересекающихся геозаборах побеждает первая площадка.
func (s *SiteRepo) ListSites(ctx context.Context) ([]domain.Site, error) {
	query := `
		SELECT id, name, latitude, longitude, radius_meters,
		       created_at, updated_at, is_active
		FROM sites
		WHERE is_active = true
		ORDER BY id;
	`

	rows, err := s.pool.Query(ctx, query)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}
	defer rows.Close()

	models := make([]*converter.SiteModel, 0)
	for rows.Next() {
		var model converter.SiteModel
		if err := rows.Scan(
			&model.ID, &model.Name, &model.Latitude, &model.Longitude,
			&model.RadiusMeters, &model.CreatedAt, &model.UpdatedAt, &model.IsActive,
		); err != nil {
			return nil, e.Wrap(whereami.WhereAmI(), err)
		}

		models = append(models, &model)
	}

	if err := rows.Err(); err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return s.conv.ToArrEntity(models), nil
}

// Create сохраняет новую площадку в рамках активной транзакции.
// Используется административным сидингом, ядро сканирования площадки не создаёт.
func (s *SiteRepo) Create(ctx context.Context, site *domain.Site) (*domain.Site, error) {
	tx, err := tr.TxFromCtx(ctx)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	model := s.conv.ToModel(site)
	query := `
		INSERT INTO sites (name, latitude, longitude, radius_meters)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (name) DO UPDATE SET
			latitude = EXCLUDED.latitude,
			longitude = EXCLUDED.longitude,
			radius_meters = EXCLUDED.radius_meters,
			updated_at = NOW()
		RETURNING id, created_at, is_active;
	`

	if err := tx.QueryRow(ctx, query,
		model.Name, model.Latitude, model.Longitude, model.RadiusMeters,
	).Scan(&model.ID, &model.CreatedAt, &model.IsActive); err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return s.conv.ToEntity(model), nil
}
