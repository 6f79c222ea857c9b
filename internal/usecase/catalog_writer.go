package usecase

import (
	"context"
	"encoding/json"

	"github.com/artlens-app/go-backend/internal/domain"
	"github.com/artlens-app/go-backend/pkg/e"
	"github.com/artlens-app/go-backend/pkg/logger"
	transaction "github.com/avito-tech/go-transaction-manager/drivers/pgxv5/v2"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// TxCatalogWriter транзакционно создаёт каталожную запись и outbox-событие,
// после чего best-effort публикует вектор в поисковый индекс.
type TxCatalogWriter struct {
	artworkRepo ArtworkRepository
	outboxRepo  OutboxRepository
	vectorIndex VectorIndexRepository
	dbPool      transaction.Transactional
	logger      logger.Logger
}

func NewTxCatalogWriter(
	artworkRepo ArtworkRepository,
	outboxRepo OutboxRepository,
	vectorIndex VectorIndexRepository,
	dbPool transaction.Transactional,
	logger logger.Logger,
) *TxCatalogWriter {
	return &TxCatalogWriter{
		artworkRepo: artworkRepo,
		outboxRepo:  outboxRepo,
		vectorIndex: vectorIndex,
		dbPool:      dbPool,
		logger:      logger,
	}
}

// CreateCatalogEntry сохраняет запись и событие artwork_cataloged в одной
// транзакции. Публикация вектора в индекс выполняется после коммита: её сбой
// не откатывает запись, рассинхронизацию покрывает резервный линейный поиск.
func (w *TxCatalogWriter) CreateCatalogEntry(ctx context.Context, artwork *domain.Artwork) (*domain.Artwork, error) {
	const op = "TxCatalogWriter.CreateCatalogEntry"

	ctx, tx, err := transaction.NewTransaction(ctx, pgx.TxOptions{}, w.dbPool)
	if err != nil {
		return nil, e.Wrap(op, err)
	}
	// Откат транзакции при любой ошибке до коммита
	defer func() {
		if err != nil {
			if tx.IsActive() {
				tx.Rollback(ctx)
			}
		}
	}()
	ctx = context.WithValue(ctx, "tx", tx.Transaction())

	created, err := w.artworkRepo.Create(ctx, artwork)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	payload, err := json.Marshal(NewCatalogedEventPayload(created))
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	_, err = w.outboxRepo.Create(ctx, NewOutboxEvent(uuid.NewString(), EventArtworkCataloged, created.ID, payload))
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	err = tx.Commit(ctx)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	// Публикация в поисковый индекс вне транзакции
	embedding := domain.Embedding{
		ID:      created.VectorID,
		Vector:  created.Embedding,
		Payload: domain.NewArtworkPayload(created.ID, created.SiteID),
	}
	if err := w.vectorIndex.Upsert(ctx, []domain.Embedding{embedding}); err != nil {
		w.logger.Warnf("Failed to index cataloged artwork %d: %v", created.ID, e.Wrap(op, err))
	}

	return created, nil
}
