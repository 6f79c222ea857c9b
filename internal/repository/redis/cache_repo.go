package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/artlens-app/go-backend/internal/cfg"
	"github.com/artlens-app/go-backend/internal/domain"
	"github.com/artlens-app/go-backend/internal/repository/redis/converter"
	"github.com/artlens-app/go-backend/internal/usecase"
	"github.com/artlens-app/go-backend/pkg/clients"
	"github.com/artlens-app/go-backend/pkg/e"
	"github.com/artlens-app/go-backend/pkg/logger"
	"github.com/jimlawless/whereami"
	goredis "github.com/redis/go-redis/v9"
)

const sitesKey = "sites:all"

// CacheRepo кэширует список площадок и карточки произведений в Redis.
// Промах кэша не является ошибкой и возвращается как (nil, nil).
type CacheRepo struct {
	client   *clients.RedisClient
	infoConv converter.ArtworkInfoConverter
	siteConv converter.SiteConverter
	cfg      *cfg.RedisCfg
	logger   logger.Logger
}

func NewCacheRepo(client *clients.RedisClient, infoConv converter.ArtworkInfoConverter,
	siteConv converter.SiteConverter, cfg *cfg.RedisCfg, logger logger.Logger) *CacheRepo {
	return &CacheRepo{
		client:   client,
		infoConv: infoConv,
		siteConv: siteConv,
		cfg:      cfg,
		logger:   logger,
	}
}

// GetSites возвращает закэшированный список площадок либо (nil, nil) при промахе.
func (r *CacheRepo) GetSites(ctx context.Context) ([]domain.Site, error) {
	data, err := r.client.Client.Get(ctx, sitesKey).Bytes()
	if err != nil {
		if errors.Is(err, goredis.Nil) {
			return nil, nil // cache miss
		}
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	var models []converter.SiteRedisModel
	if err := json.Unmarshal(data, &models); err != nil {
		r.logger.Warnf("Corrupted sites cache, dropping key: %v", e.Wrap(whereami.WhereAmI(), err))
		if err := r.client.Client.Del(context.Background(), sitesKey).Err(); err != nil {
			r.logger.Warnf("Redis del failed: %v", e.Wrap(whereami.WhereAmI(), err))
		}
		return nil, nil
	}

	return r.siteConv.ToArrEntity(models), nil
}

// SetSites кэширует список площадок целиком с заданным TTL.
func (r *CacheRepo) SetSites(ctx context.Context, sites []domain.Site) error {
	data, err := json.Marshal(r.siteConv.ToArrRedisModel(sites))
	if err != nil {
		return e.Wrap(whereami.WhereAmI(), err)
	}

	if err := r.client.Client.Set(ctx, sitesKey, data, r.cfg.SiteTTL).Err(); err != nil {
		return e.Wrap(whereami.WhereAmI(), err)
	}

	return nil
}

// GetArtwork возвращает закэшированную карточку произведения либо (nil, nil) при промахе.
func (r *CacheRepo) GetArtwork(ctx context.Context, id int64) (*usecase.ArtworkInfo, error) {
	data, err := r.client.Client.Get(ctx, r.artworkKey(id)).Bytes()
	if err != nil {
		if errors.Is(err, goredis.Nil) {
			return nil, nil // cache miss
		}
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	var model converter.ArtworkInfoRedisModel
	if err := json.Unmarshal(data, &model); err != nil {
		r.logger.Warnf("Redis unmarshal failed: %v", e.Wrap(whereami.WhereAmI(), err))
		return nil, nil
	}

	if model.ID != id {
		r.logger.Warnf("Cache ID mismatch: key_id: %d, model_id: %d", id, model.ID)
		if err := r.client.Client.Del(context.Background(), r.artworkKey(id)).Err(); err != nil {
			r.logger.Warnf("Redis del failed: %v", e.Wrap(whereami.WhereAmI(), err))
		}
		return nil, nil // cache miss
	}

	return r.infoConv.ToUseCase(&model), nil
}

// SetArtwork кэширует карточку произведения с заданным TTL.
func (r *CacheRepo) SetArtwork(ctx context.Context, info *usecase.ArtworkInfo) error {
	data, err := json.Marshal(r.infoConv.ToRedisModel(info))
	if err != nil {
		return e.Wrap(whereami.WhereAmI(), err)
	}

	if err := r.client.Client.Set(ctx, r.artworkKey(info.ID), data, r.cfg.ArtworkTTL).Err(); err != nil {
		return e.Wrap(whereami.WhereAmI(), err)
	}

	return nil
}

// artworkKey возвращает Redis-ключ карточки произведения
func (r *CacheRepo) artworkKey(id int64) string {
	return fmt.Sprintf("artwork:%d", id)
}
