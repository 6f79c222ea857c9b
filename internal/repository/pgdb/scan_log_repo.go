package pgdb

import (
	"context"

	"github.com/artlens-app/go-backend/internal/usecase"
	"github.com/artlens-app/go-backend/pkg/e"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jimlawless/whereami"
)

// ScanLogRepo реализует журнал активности сканирований поверх PostgreSQL.
type ScanLogRepo struct {
	pool *pgxpool.Pool
}

func NewScanLogRepo(pool *pgxpool.Pool) *ScanLogRepo {
	return &ScanLogRepo{pool: pool}
}

// Create добавляет запись журнала. Пишет напрямую в пул: журнал ведётся
// best-effort вне транзакций сканирования.
func (s *ScanLogRepo) Create(ctx context.Context, entry *usecase.ScanLogEntry) error {
	query := `
		INSERT INTO user_scans (user_id, artwork_id, image_url, created_at)
		VALUES ($1, $2, $3, $4);
	`

	_, err := s.pool.Exec(ctx, query, entry.UserID, entry.ArtworkID, entry.ImageURL, entry.CreatedAt)
	if err != nil {
		return e.Wrap(whereami.WhereAmI(), err)
	}

	return nil
}
