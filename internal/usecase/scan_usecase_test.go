package usecase

import (
	"context"
	"errors"
	"math"
	"testing"
	"time"

	"github.com/artlens-app/go-backend/internal/cfg"
	"github.com/artlens-app/go-backend/internal/domain"
	"github.com/artlens-app/go-backend/pkg/e"
)

type scanFixture struct {
	geo      *stubGeoResolver
	matcher  *stubMatcher
	decision *stubDecisionEngine
	embedder *stubEmbedder
	images   *stubImagesInfra
	artworks *stubArtworkRepo
	scanLog  *stubScanLogRepo
	issues   *stubIssueRepo
	cache    *stubCacheRepo
	uc       *ScanUseCase
}

func newScanFixture() *scanFixture {
	f := &scanFixture{
		geo:      &stubGeoResolver{},
		matcher:  &stubMatcher{},
		decision: &stubDecisionEngine{outcome: NewNotArtOutcome("not art")},
		embedder: &stubEmbedder{vector: []float32{1, 0, 0}},
		images:   &stubImagesInfra{res: NewUploadScanImageRes("scans/2026/08/key.jpg", "https://cdn.example.com/key.jpg")},
		artworks: &stubArtworkRepo{byID: map[int64]*domain.Artwork{}},
		scanLog:  newStubScanLogRepo(),
		issues:   &stubIssueRepo{},
		cache:    newStubCacheRepo(),
	}

	f.uc = NewScanUC(
		f.geo, f.matcher, f.decision, f.embedder, f.images,
		f.artworks, f.scanLog, f.issues, f.cache,
		&cfg.ScanCfg{DistanceThreshold: 0.15, AnonymousUserID: "anonymous"},
		nopLogger{},
	)

	return f
}

func validScanReq() *ScanReq {
	return NewScanReq(ScanImage{Data: []byte("jpeg bytes"), MimeType: "image/jpeg", Size: 10, Name: "scan.jpg"}, 48.86, 2.33, "user-1")
}

func TestScanValidation(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(req *ScanReq)
		wantErr error
	}{
		{"missing image", func(r *ScanReq) { r.Image.Data = nil }, e.ErrImageRequired},
		{"latitude too low", func(r *ScanReq) { r.Latitude = -90.1 }, e.ErrInvalidCoordinates},
		{"latitude too high", func(r *ScanReq) { r.Latitude = 90.1 }, e.ErrInvalidCoordinates},
		{"longitude too low", func(r *ScanReq) { r.Longitude = -180.1 }, e.ErrInvalidCoordinates},
		{"longitude too high", func(r *ScanReq) { r.Longitude = 180.1 }, e.ErrInvalidCoordinates},
		{"latitude NaN", func(r *ScanReq) { r.Latitude = math.NaN() }, e.ErrInvalidCoordinates},
		{"longitude NaN", func(r *ScanReq) { r.Longitude = math.NaN() }, e.ErrInvalidCoordinates},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			f := newScanFixture()
			req := validScanReq()
			tc.mutate(req)

			_, err := f.uc.Scan(context.Background(), req)
			if !errors.Is(err, tc.wantErr) {
				t.Errorf("err = %v; want %v", err, tc.wantErr)
			}
		})
	}
}

func TestScanBoundaryCoordinatesAccepted(t *testing.T) {
	f := newScanFixture()
	req := validScanReq()
	req.Latitude, req.Longitude = 90, -180

	if _, err := f.uc.Scan(context.Background(), req); err != nil {
		t.Fatalf("Scan rejected boundary coordinates: %v", err)
	}
}

func TestScanEmbeddingFailureIsFatal(t *testing.T) {
	f := newScanFixture()
	f.embedder.err = errors.New("embedder down")

	_, err := f.uc.Scan(context.Background(), validScanReq())
	if !errors.Is(err, e.ErrEmbeddingUnavailable) {
		t.Fatalf("err = %v; want ErrEmbeddingUnavailable", err)
	}
}

func TestScanUploadFailureIsTolerated(t *testing.T) {
	f := newScanFixture()
	f.images.res = nil
	f.images.err = errors.New("minio down")

	outcome, err := f.uc.Scan(context.Background(), validScanReq())
	if err != nil {
		t.Fatalf("Scan must survive upload failure: %v", err)
	}
	if outcome == nil {
		t.Fatal("expected an outcome despite upload failure")
	}
	if f.decision.lastReq.ImageURL != "" {
		t.Errorf("ImageURL = %q; want empty after failed upload", f.decision.lastReq.ImageURL)
	}
}

func TestScanPassesSiteScopeToDecision(t *testing.T) {
	f := newScanFixture()
	f.geo.site = &domain.Site{ID: 7, Name: "Louvre"}

	if _, err := f.uc.Scan(context.Background(), validScanReq()); err != nil {
		t.Fatalf("Scan failed: %v", err)
	}
	if f.decision.lastReq.SiteID == nil || *f.decision.lastReq.SiteID != 7 {
		t.Errorf("SiteID = %v; want 7", f.decision.lastReq.SiteID)
	}
}

func TestScanDefaultsAnonymousUser(t *testing.T) {
	f := newScanFixture()
	req := validScanReq()
	req.UserID = ""

	if _, err := f.uc.Scan(context.Background(), req); err != nil {
		t.Fatalf("Scan failed: %v", err)
	}

	select {
	case <-f.scanLog.done:
	case <-time.After(time.Second):
		t.Fatal("scan log entry was not written")
	}

	f.scanLog.mu.Lock()
	defer f.scanLog.mu.Unlock()
	if f.scanLog.entries[0].UserID != "anonymous" {
		t.Errorf("UserID = %q; want anonymous", f.scanLog.entries[0].UserID)
	}
}

func TestScanLogFailureIsSwallowed(t *testing.T) {
	f := newScanFixture()
	f.scanLog.err = errors.New("log table gone")

	outcome, err := f.uc.Scan(context.Background(), validScanReq())
	if err != nil {
		t.Fatalf("Scan must not fail on activity log error: %v", err)
	}
	if outcome == nil {
		t.Fatal("expected an outcome")
	}
}

func TestScanDecisionFailureCleansUpImage(t *testing.T) {
	f := newScanFixture()
	f.decision.outcome = nil
	f.decision.err = errors.New("analysis broke")

	_, err := f.uc.Scan(context.Background(), validScanReq())
	if err == nil {
		t.Fatal("expected error from decision engine")
	}

	f.images.cleanupsMu.Lock()
	defer f.images.cleanupsMu.Unlock()
	if len(f.images.cleanedUp) != 1 || f.images.cleanedUp[0] != "scans/2026/08/key.jpg" {
		t.Errorf("cleanedUp = %v; want the uploaded key", f.images.cleanedUp)
	}
}

func TestReportIssueSwallowsRepoFailure(t *testing.T) {
	f := newScanFixture()
	f.issues.err = errors.New("db down")

	err := f.uc.ReportIssue(context.Background(), &ReportIssueReq{ArtworkID: 1, IssueType: "wrong_title"})
	if err != nil {
		t.Fatalf("ReportIssue must always succeed, got %v", err)
	}
}

func TestGetArtworkInfoCacheMiss(t *testing.T) {
	f := newScanFixture()
	f.artworks.byID[5] = &domain.Artwork{ID: 5, Title: "Guernica", Artist: "Pablo Picasso"}

	info, err := f.uc.GetArtworkInfo(context.Background(), 5)
	if err != nil {
		t.Fatalf("GetArtworkInfo failed: %v", err)
	}
	if info.Title != "Guernica" {
		t.Errorf("Title = %q; want Guernica", info.Title)
	}
}

func TestGetArtworkInfoCacheHit(t *testing.T) {
	f := newScanFixture()
	f.cache.artworks[5] = &ArtworkInfo{ID: 5, Title: "Cached Guernica"}
	f.artworks.getErr = errors.New("must not reach the database")

	info, err := f.uc.GetArtworkInfo(context.Background(), 5)
	if err != nil {
		t.Fatalf("GetArtworkInfo failed: %v", err)
	}
	if info.Title != "Cached Guernica" {
		t.Errorf("Title = %q; want cached card", info.Title)
	}
}
