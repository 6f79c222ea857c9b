package usecase

import (
	"context"
	"sync"

	"github.com/artlens-app/go-backend/internal/domain"
)

// nopLogger глушит логи в тестах.
type nopLogger struct{}

func (nopLogger) Debugf(format string, args ...any)            {}
func (nopLogger) Infof(format string, args ...any)             {}
func (nopLogger) Warnf(format string, args ...any)             {}
func (nopLogger) Errorf(err error, format string, args ...any) {}

type stubSiteRepo struct {
	sites []domain.Site
	err   error
	calls int
}

func (s *stubSiteRepo) ListSites(ctx context.Context) ([]domain.Site, error) {
	s.calls++
	return s.sites, s.err
}

// stubCacheRepo потокобезопасен: фоновые горутины пишут в него после ответа.
type stubCacheRepo struct {
	mu       sync.Mutex
	sites    []domain.Site
	sitesErr error
	artworks map[int64]*ArtworkInfo
	getErr   error
	setErr   error
}

func newStubCacheRepo() *stubCacheRepo {
	return &stubCacheRepo{artworks: make(map[int64]*ArtworkInfo)}
}

func (s *stubCacheRepo) GetSites(ctx context.Context) ([]domain.Site, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.sites, s.sitesErr
}

func (s *stubCacheRepo) SetSites(ctx context.Context, sites []domain.Site) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sites = sites
	return s.setErr
}

func (s *stubCacheRepo) GetArtwork(ctx context.Context, id int64) (*ArtworkInfo, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.getErr != nil {
		return nil, s.getErr
	}
	return s.artworks[id], nil
}

func (s *stubCacheRepo) SetArtwork(ctx context.Context, info *ArtworkInfo) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.setErr != nil {
		return s.setErr
	}
	s.artworks[info.ID] = info
	return nil
}

type stubArtworkRepo struct {
	artworks  []domain.Artwork
	byID      map[int64]*domain.Artwork
	fetchErr  error
	getErr    error
	createErr error
	created   []*domain.Artwork
	nextID    int64
}

func (s *stubArtworkRepo) Create(ctx context.Context, artwork *domain.Artwork) (*domain.Artwork, error) {
	if s.createErr != nil {
		return nil, s.createErr
	}
	s.nextID++
	saved := *artwork
	saved.ID = s.nextID
	s.created = append(s.created, &saved)
	return &saved, nil
}

func (s *stubArtworkRepo) GetByID(ctx context.Context, id int64) (*domain.Artwork, error) {
	if s.getErr != nil {
		return nil, s.getErr
	}
	if artwork, ok := s.byID[id]; ok {
		return artwork, nil
	}
	return nil, s.getErr
}

func (s *stubArtworkRepo) FetchAll(ctx context.Context, siteID *int64) ([]domain.Artwork, error) {
	if s.fetchErr != nil {
		return nil, s.fetchErr
	}
	if siteID == nil {
		return s.artworks, nil
	}
	var filtered []domain.Artwork
	for _, a := range s.artworks {
		if a.SiteID != nil && *a.SiteID == *siteID {
			filtered = append(filtered, a)
		}
	}
	return filtered, nil
}

type stubVectorIndex struct {
	hit       *NearestHit
	queryErr  error
	upsertErr error
	upserted  []domain.Embedding
	queries   int
}

func (s *stubVectorIndex) QueryNearest(ctx context.Context, vector []float32, siteID *int64) (*NearestHit, error) {
	s.queries++
	if s.queryErr != nil {
		return nil, s.queryErr
	}
	return s.hit, nil
}

func (s *stubVectorIndex) Upsert(ctx context.Context, vectors []domain.Embedding) error {
	if s.upsertErr != nil {
		return s.upsertErr
	}
	s.upserted = append(s.upserted, vectors...)
	return nil
}

type stubVision struct {
	result *AnalysisResult
	err    error
	calls  int
}

func (s *stubVision) Analyze(ctx context.Context, image *ScanImage) (*AnalysisResult, error) {
	s.calls++
	return s.result, s.err
}

type stubCatalogWriter struct {
	err     error
	created *domain.Artwork
}

func (s *stubCatalogWriter) CreateCatalogEntry(ctx context.Context, artwork *domain.Artwork) (*domain.Artwork, error) {
	if s.err != nil {
		return nil, s.err
	}
	saved := *artwork
	saved.ID = 101
	s.created = &saved
	return &saved, nil
}

type stubEmbedder struct {
	vector []float32
	err    error
}

func (s *stubEmbedder) Embed(ctx context.Context, image *ScanImage) ([]float32, error) {
	return s.vector, s.err
}

type stubImagesInfra struct {
	res        *UploadScanImageRes
	err        error
	cleanedUp  []string
	cleanupsMu sync.Mutex
}

func (s *stubImagesInfra) UploadScanImage(ctx context.Context, req *UploadScanImageReq) (*UploadScanImageRes, error) {
	return s.res, s.err
}

func (s *stubImagesInfra) CleanupImage(key string) {
	s.cleanupsMu.Lock()
	defer s.cleanupsMu.Unlock()
	s.cleanedUp = append(s.cleanedUp, key)
}

// stubScanLogRepo потокобезопасен: журнал пишется из фоновой горутины.
type stubScanLogRepo struct {
	mu      sync.Mutex
	entries []*ScanLogEntry
	err     error
	done    chan struct{}
}

func newStubScanLogRepo() *stubScanLogRepo {
	return &stubScanLogRepo{done: make(chan struct{}, 1)}
}

func (s *stubScanLogRepo) Create(ctx context.Context, entry *ScanLogEntry) error {
	s.mu.Lock()
	s.entries = append(s.entries, entry)
	s.mu.Unlock()
	select {
	case s.done <- struct{}{}:
	default:
	}
	return s.err
}

type stubIssueRepo struct {
	reports []*ReportIssueReq
	err     error
}

func (s *stubIssueRepo) Create(ctx context.Context, report *ReportIssueReq) error {
	if s.err != nil {
		return s.err
	}
	s.reports = append(s.reports, report)
	return nil
}

type stubGeoResolver struct {
	site *domain.Site
}

func (s *stubGeoResolver) Resolve(ctx context.Context, lat, lng float64) *domain.Site {
	return s.site
}

type stubMatcher struct {
	match *domain.MatchCandidate
}

func (s *stubMatcher) FindBest(ctx context.Context, query []float32, siteID *int64) *domain.MatchCandidate {
	return s.match
}

type stubDecisionEngine struct {
	outcome *ScanOutcome
	err     error
	lastReq *DecideReq
}

func (s *stubDecisionEngine) Decide(ctx context.Context, req *DecideReq) (*ScanOutcome, error) {
	s.lastReq = req
	if s.err != nil {
		return nil, s.err
	}
	return s.outcome, nil
}
