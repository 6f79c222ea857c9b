package qdrant

import (
	"context"

	"github.com/artlens-app/go-backend/internal/cfg"
	"github.com/artlens-app/go-backend/internal/domain"
	"github.com/artlens-app/go-backend/internal/usecase"
	"github.com/artlens-app/go-backend/pkg/e"
	"github.com/jimlawless/whereami"
	"github.com/qdrant/go-client/qdrant"
)

// VectorRepo — репозиторий векторного индекса произведений в Qdrant.
// Служит нативным примитивом поиска по сходству; каноническим хранилищем
// каталога остаётся PostgreSQL.
type VectorRepo struct {
	client *qdrant.Client
	cfg    *cfg.QdrantCfg
}

func NewVectorRepo(client *qdrant.Client, cfg *cfg.QdrantCfg) *VectorRepo {
	return &VectorRepo{
		client: client,
		cfg:    cfg,
	}
}

// Upsert сохраняет или обновляет векторы произведений в коллекции Qdrant.
func (q *VectorRepo) Upsert(ctx context.Context, vectors []domain.Embedding) error {
	reqVectors := make([]*qdrant.PointStruct, 0, len(vectors))
	for _, vector := range vectors {
		reqVectors = append(reqVectors, &qdrant.PointStruct{
			Id:      qdrant.NewIDUUID(vector.ID),
			Vectors: qdrant.NewVectors(vector.Vector...),
			Payload: qdrant.NewValueMap(vector.Payload),
		})
	}

	_, err := q.client.Upsert(ctx, &qdrant.UpsertPoints{
		CollectionName: q.cfg.CollectionName,
		Points:         reqVectors,
	})
	if err != nil {
		return e.Wrap(whereami.WhereAmI(), err)
	}

	return nil
}

// QueryNearest возвращает ближайшую точку коллекции к вектору запроса,
// при siteID дополнительно ограничивая поиск площадкой через payload-фильтр.
// Пустой результат (nil, nil) означает, что пригодной дистанции нет.
// Score коллекции с косинусной метрикой — сходство, дистанция = 1 - score.
func (q *VectorRepo) QueryNearest(ctx context.Context, vector []float32, siteID *int64) (*usecase.NearestHit, error) {
	var filter *qdrant.Filter
	if siteID != nil {
		filter = &qdrant.Filter{
			Must: []*qdrant.Condition{
				qdrant.NewMatchInt("site_id", *siteID),
			},
		}
	}

	limit := uint64(1)
	points, err := q.client.Query(ctx, &qdrant.QueryPoints{
		CollectionName: q.cfg.CollectionName,
		Query:          qdrant.NewQuery(vector...),
		Filter:         filter,
		Limit:          &limit,
		WithPayload:    qdrant.NewWithPayloadInclude("artwork_id"),
	})
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	if len(points) == 0 {
		return nil, nil
	}

	point := points[0]
	artworkID := point.GetPayload()["artwork_id"].GetIntegerValue()
	if artworkID == 0 {
		// Точка без обратной ссылки на каталог непригодна для выдачи
		return nil, nil
	}

	return usecase.NewNearestHit(artworkID, 1-float64(point.GetScore())), nil
}
