package pgdb

import (
	"context"

	"github.com/artlens-app/go-backend/internal/usecase"
	"github.com/artlens-app/go-backend/pkg/e"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jimlawless/whereami"
)

// IssueRepo реализует хранилище жалоб на каталожные записи поверх PostgreSQL.
type IssueRepo struct {
	pool *pgxpool.Pool
}

func NewIssueRepo(pool *pgxpool.Pool) *IssueRepo {
	return &IssueRepo{pool: pool}
}

// Create сохраняет жалобу пользователя на каталожную запись.
func (i *IssueRepo) Create(ctx context.Context, report *usecase.ReportIssueReq) error {
	query := `
		INSERT INTO artwork_issues (artwork_id, user_id, issue_type, description)
		VALUES ($1, $2, $3, $4);
	`

	_, err := i.pool.Exec(ctx, query, report.ArtworkID, report.UserID, report.IssueType, report.Description)
	if err != nil {
		return e.Wrap(whereami.WhereAmI(), err)
	}

	return nil
}
