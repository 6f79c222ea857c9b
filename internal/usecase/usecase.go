package usecase

import (
	"context"

	"github.com/artlens-app/go-backend/internal/domain"
)

type ScanUC interface {
	Scan(ctx context.Context, req *ScanReq) (*ScanOutcome, error)
	ReportIssue(ctx context.Context, req *ReportIssueReq) error
	GetArtworkInfo(ctx context.Context, id int64) (*ArtworkInfo, error)
}

// GeoResolver определяет площадку по координатам сканирования.
// Отсутствие площадки (nil) означает глобальную область поиска.
type GeoResolver interface {
	Resolve(ctx context.Context, lat, lng float64) *domain.Site
}

// Matcher ищет лучший каталожный кандидат по векторному сходству.
// nil означает, что ни один кандидат не прошёл порог дистанции.
type Matcher interface {
	FindBest(ctx context.Context, query []float32, siteID *int64) *domain.MatchCandidate
}

// DecisionEngine принимает итоговое решение по результату поиска:
// классифицирует совпадение либо запускает vision-анализ и авто-каталогизацию.
type DecisionEngine interface {
	Decide(ctx context.Context, req *DecideReq) (*ScanOutcome, error)
}
