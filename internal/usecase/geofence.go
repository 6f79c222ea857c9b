package usecase

import (
	"context"
	"math"
	"time"

	"github.com/artlens-app/go-backend/internal/domain"
	"github.com/artlens-app/go-backend/pkg/e"
	"github.com/artlens-app/go-backend/pkg/logger"
)

// earthRadiusMeters — радиус Земли для формулы гаверсинусов.
const earthRadiusMeters = 6371000.0

// GeofenceResolver определяет, находится ли точка сканирования внутри
// геозабора одной из известных площадок.
type GeofenceResolver struct {
	siteRepo SiteRepository
	cache    CacheRepository
	logger   logger.Logger
}

func NewGeofenceResolver(siteRepo SiteRepository, cache CacheRepository, logger logger.Logger) *GeofenceResolver {
	return &GeofenceResolver{
		siteRepo: siteRepo,
		cache:    cache,
		logger:   logger,
	}
}

// Resolve возвращает первую площадку (в порядке перечисления хранилища),
// чей радиус покрывает точку; граница считается попаданием (нестрогое <=).
// Пересекающиеся геозаборы — ошибка конфигурации, дополнительного
// разрешения конфликтов нет. Недоступность списка площадок деградирует
// до nil (глобальная область поиска), а не прерывает скан.
func (g *GeofenceResolver) Resolve(ctx context.Context, lat, lng float64) *domain.Site {
	sites := g.loadSites(ctx)

	for i := range sites {
		site := &sites[i]
		distance := haversineMeters(lat, lng, site.Latitude, site.Longitude)
		if distance <= site.RadiusMeters {
			return site
		}
	}

	return nil
}

// loadSites возвращает список площадок из кэша, при промахе — из хранилища
// с фоновым обновлением кэша. Любая ошибка деградирует до пустого списка.
func (g *GeofenceResolver) loadSites(ctx context.Context) []domain.Site {
	const op = "GeofenceResolver.loadSites"

	cached, err := g.cache.GetSites(ctx)
	if err != nil {
		g.logger.Warnf("site cache lookup failed: %v", e.Wrap(op, err))
	} else if cached != nil {
		return cached
	}

	sites, err := g.siteRepo.ListSites(ctx)
	if err != nil {
		g.logger.Warnf("site list unavailable, degrading to global scope: %v", e.Wrap(op, err))
		return nil
	}

	// Фоновое обновление кэша площадок
	go func() {
		bgCtx, cancel := context.WithTimeout(context.Background(), 500*time.Millisecond)
		defer cancel()

		if err := g.cache.SetSites(bgCtx, sites); err != nil {
			g.logger.Warnf("failed to cache sites in background: %v", e.Wrap(op, err))
		}
	}()

	return sites
}

// haversineMeters вычисляет дистанцию большого круга между двумя точками.
func haversineMeters(lat1, lon1, lat2, lon2 float64) float64 {
	dLat := toRadians(lat2 - lat1)
	dLon := toRadians(lon2 - lon1)

	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(toRadians(lat1))*math.Cos(toRadians(lat2))*math.Sin(dLon/2)*math.Sin(dLon/2)
	c := 2 * math.Asin(math.Sqrt(a))

	return earthRadiusMeters * c
}

func toRadians(degrees float64) float64 {
	return degrees * math.Pi / 180
}
