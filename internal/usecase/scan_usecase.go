package usecase

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/artlens-app/go-backend/internal/cfg"
	"github.com/artlens-app/go-backend/pkg/e"
	"github.com/artlens-app/go-backend/pkg/logger"
)

const scanLogTimeout = 2 * time.Second

// ScanUseCase реализует полный пайплайн идентификации: геозона → вектор →
// поиск → решение. Жёсткая зависимость одна — сервис векторизации; сохранение
// снимка и журнал активности выполняются best-effort.
type ScanUseCase struct {
	geoResolver GeoResolver
	matcher     Matcher
	decision    DecisionEngine
	embedder    EmbeddingService
	imagesInfra ImagesInfra
	artworkRepo ArtworkRepository
	scanLogRepo ScanLogRepository
	issueRepo   IssueRepository
	cacheRepo   CacheRepository
	scanCfg     *cfg.ScanCfg
	logger      logger.Logger
}

func NewScanUC(
	geoResolver GeoResolver,
	matcher Matcher,
	decision DecisionEngine,
	embedder EmbeddingService,
	imagesInfra ImagesInfra,
	artworkRepo ArtworkRepository,
	scanLogRepo ScanLogRepository,
	issueRepo IssueRepository,
	cacheRepo CacheRepository,
	scanCfg *cfg.ScanCfg,
	logger logger.Logger,
) *ScanUseCase {
	return &ScanUseCase{
		geoResolver: geoResolver,
		matcher:     matcher,
		decision:    decision,
		embedder:    embedder,
		imagesInfra: imagesInfra,
		artworkRepo: artworkRepo,
		scanLogRepo: scanLogRepo,
		issueRepo:   issueRepo,
		cacheRepo:   cacheRepo,
		scanCfg:     scanCfg,
		logger:      logger,
	}
}

// Scan обрабатывает один запрос идентификации и возвращает ровно один исход.
func (s *ScanUseCase) Scan(ctx context.Context, req *ScanReq) (*ScanOutcome, error) {
	const op = "ScanUseCase.Scan"

	// Валидация
	err := s.validateScan(req)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	if req.UserID == "" {
		req.UserID = s.scanCfg.AnonymousUserID
	}

	// Определение площадки по координатам; nil расширяет поиск до глобального
	site := s.geoResolver.Resolve(ctx, req.Latitude, req.Longitude)
	var siteID *int64
	if site != nil {
		siteID = &site.ID
	}

	// Векторизация изображения — единственный фатальный шаг пайплайна
	embedding, err := s.embedder.Embed(ctx, &req.Image)
	if err != nil {
		return nil, e.Wrap(op, fmt.Errorf("%w: %w", e.ErrEmbeddingUnavailable, err))
	}

	// Сохранение снимка в S3 best-effort: отказ не прерывает скан
	var imageKey, imageURL string
	uploadRes, err := s.imagesInfra.UploadScanImage(ctx, NewUploadScanImageReq(req.UserID, req.Image))
	if err != nil {
		s.logger.Warnf("Failed to upload scan image: %v", e.Wrap(op, err))
	} else {
		imageKey = uploadRes.Key
		imageURL = uploadRes.URL
	}

	// Поиск лучшего кандидата по сходству
	match := s.matcher.FindBest(ctx, embedding, siteID)

	outcome, err := s.decision.Decide(ctx, NewDecideReq(match, req.Image, embedding, siteID, imageURL))
	if err != nil {
		if imageKey != "" {
			s.imagesInfra.CleanupImage(imageKey)
		}
		return nil, e.Wrap(op, err)
	}

	// Журнал активности best-effort, вне критического пути ответа
	go s.logScan(req.UserID, outcome, imageURL)

	return outcome, nil
}

// ReportIssue сохраняет жалобу на каталожную запись. Отказ хранилища не
// считается ошибкой клиента: жалоба фиксируется в логе и теряется.
func (s *ScanUseCase) ReportIssue(ctx context.Context, req *ReportIssueReq) error {
	const op = "ScanUseCase.ReportIssue"

	if req.UserID == "" {
		req.UserID = s.scanCfg.AnonymousUserID
	}

	if err := s.issueRepo.Create(ctx, req); err != nil {
		s.logger.Warnf(
			"Failed to save issue report. artwork_id: %d, issue_type: %s, error: %v",
			req.ArtworkID, req.IssueType, e.Wrap(op, err),
		)
	}

	return nil
}

// GetArtworkInfo возвращает карточку произведения по идентификатору.
func (s *ScanUseCase) GetArtworkInfo(ctx context.Context, id int64) (*ArtworkInfo, error) {
	const op = "ScanUseCase.GetArtworkInfo"

	// Поиск карточки в кэше
	cached, err := s.cacheRepo.GetArtwork(ctx, id)
	if err != nil {
		s.logger.Warnf("Failed to get artwork from cache: %v", e.Wrap(op, err))
	}
	if cached != nil {
		return cached, nil
	}

	artwork, err := s.artworkRepo.GetByID(ctx, id)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	info := NewArtworkInfo(artwork)

	// Обновление кэша вне критического пути ответа
	go func() {
		cacheCtx, cancel := context.WithTimeout(context.Background(), 500*time.Millisecond)
		defer cancel()

		if err := s.cacheRepo.SetArtwork(cacheCtx, info); err != nil {
			s.logger.Warnf("Failed to cache artwork %d: %v", id, e.Wrap(op, err))
		}
	}()

	return info, nil
}

func (s *ScanUseCase) validateScan(req *ScanReq) error {
	if len(req.Image.Data) == 0 {
		return e.ErrImageRequired
	}

	// NaN проходит обе сравнительные проверки, отсекаем явно.
	if math.IsNaN(req.Latitude) || math.IsNaN(req.Longitude) {
		return e.ErrInvalidCoordinates
	}
	if req.Latitude < -90 || req.Latitude > 90 || req.Longitude < -180 || req.Longitude > 180 {
		return e.ErrInvalidCoordinates
	}

	return nil
}

func (s *ScanUseCase) logScan(userID string, outcome *ScanOutcome, imageURL string) {
	const op = "ScanUseCase.logScan"

	ctx, cancel := context.WithTimeout(context.Background(), scanLogTimeout)
	defer cancel()

	var artworkID *int64
	if outcome.Artwork != nil && outcome.Artwork.ID != 0 {
		artworkID = &outcome.Artwork.ID
	}

	if err := s.scanLogRepo.Create(ctx, NewScanLogEntry(userID, artworkID, imageURL)); err != nil {
		s.logger.Warnf("Failed to write scan log: %v", e.Wrap(op, err))
	}
}
