package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/artlens-app/go-backend/internal/domain"
)

// Лувр и Орсе — реальные координаты, дистанция между ними около 1.1 км.
var (
	louvre = domain.Site{ID: 1, Name: "Louvre", Latitude: 48.8606, Longitude: 2.3376, RadiusMeters: 500}
	orsay  = domain.Site{ID: 2, Name: "Orsay", Latitude: 48.8600, Longitude: 2.3266, RadiusMeters: 400}
)

func TestGeofenceResolveInsideRadius(t *testing.T) {
	resolver := NewGeofenceResolver(
		&stubSiteRepo{sites: []domain.Site{louvre, orsay}},
		newStubCacheRepo(),
		nopLogger{},
	)

	site := resolver.Resolve(context.Background(), 48.8610, 2.3380)
	if site == nil || site.ID != louvre.ID {
		t.Fatalf("Resolve = %+v; want Louvre", site)
	}
}

func TestGeofenceResolveOutsideAllRadii(t *testing.T) {
	resolver := NewGeofenceResolver(
		&stubSiteRepo{sites: []domain.Site{louvre, orsay}},
		newStubCacheRepo(),
		nopLogger{},
	)

	// Берлин далеко за пределами обоих геозаборов
	if site := resolver.Resolve(context.Background(), 52.5200, 13.4050); site != nil {
		t.Fatalf("Resolve = %+v; want nil for a point outside every geofence", site)
	}
}

func TestGeofenceResolveBoundaryIsInside(t *testing.T) {
	// Площадка в начале координат: точка ровно на границе радиуса
	site := domain.Site{ID: 3, Name: "Equator Gallery", RadiusMeters: haversineMeters(0, 0, 0, 0.01)}

	resolver := NewGeofenceResolver(
		&stubSiteRepo{sites: []domain.Site{site}},
		newStubCacheRepo(),
		nopLogger{},
	)

	got := resolver.Resolve(context.Background(), 0, 0.01)
	if got == nil || got.ID != site.ID {
		t.Fatalf("point exactly on the boundary must resolve to the site, got %+v", got)
	}
}

func TestGeofenceResolveFirstMatchWins(t *testing.T) {
	// Две площадки с одинаковым центром и радиусом: побеждает первая в списке
	a := domain.Site{ID: 10, Name: "A", Latitude: 10, Longitude: 10, RadiusMeters: 1000}
	b := domain.Site{ID: 11, Name: "B", Latitude: 10, Longitude: 10, RadiusMeters: 1000}

	resolver := NewGeofenceResolver(
		&stubSiteRepo{sites: []domain.Site{a, b}},
		newStubCacheRepo(),
		nopLogger{},
	)

	site := resolver.Resolve(context.Background(), 10, 10)
	if site == nil || site.ID != a.ID {
		t.Fatalf("Resolve = %+v; want first site in listing order", site)
	}
}

func TestGeofenceResolveDegradesOnRepoFailure(t *testing.T) {
	resolver := NewGeofenceResolver(
		&stubSiteRepo{err: errors.New("connection refused")},
		newStubCacheRepo(),
		nopLogger{},
	)

	if site := resolver.Resolve(context.Background(), 48.8610, 2.3380); site != nil {
		t.Fatalf("Resolve = %+v; want nil (global scope) on repository failure", site)
	}
}

func TestGeofenceResolveUsesCache(t *testing.T) {
	cache := newStubCacheRepo()
	cache.sites = []domain.Site{louvre}
	repo := &stubSiteRepo{err: errors.New("must not be called")}

	resolver := NewGeofenceResolver(repo, cache, nopLogger{})

	site := resolver.Resolve(context.Background(), 48.8610, 2.3380)
	if site == nil || site.ID != louvre.ID {
		t.Fatalf("Resolve = %+v; want Louvre from cache", site)
	}
	if repo.calls != 0 {
		t.Errorf("repository called %d times on cache hit; want 0", repo.calls)
	}
}

func TestHaversineMeters(t *testing.T) {
	// Один градус долготы на экваторе ≈ 111.19 км
	d := haversineMeters(0, 0, 0, 1)
	if d < 111000 || d > 111400 {
		t.Errorf("haversineMeters(0,0 -> 0,1) = %f; want ~111195", d)
	}

	if d := haversineMeters(48.8606, 2.3376, 48.8606, 2.3376); d != 0 {
		t.Errorf("distance to self = %f; want 0", d)
	}
}
