package usecase

import (
	"context"
	"fmt"

	"github.com/artlens-app/go-backend/internal/domain"
	"github.com/artlens-app/go-backend/pkg/e"
	"github.com/artlens-app/go-backend/pkg/logger"
	"github.com/google/uuid"
)

// confidenceScores — фиксированная таблица отображения меток уверенности
// vision-анализа в численную оценку. Неизвестная метка считается low.
var confidenceScores = map[string]float64{
	"high":   0.8,
	"medium": 0.5,
	"low":    0.3,
}

const fallbackConfidenceScore = 0.3

// CatalogDecisionEngine классифицирует результат поиска и при промахе
// запускает vision-анализ с авто-каталогизацией оценки.
type CatalogDecisionEngine struct {
	vision  VisionAnalysisService
	catalog CatalogWriter
	logger  logger.Logger
}

func NewCatalogDecisionEngine(vision VisionAnalysisService, catalog CatalogWriter, logger logger.Logger) *CatalogDecisionEngine {
	return &CatalogDecisionEngine{
		vision:  vision,
		catalog: catalog,
		logger:  logger,
	}
}

// Decide реализует машину состояний решения:
//   - совпадение есть → verified_result / community_result по is_verified,
//     без обращений к внешним сервисам;
//   - совпадения нет → vision-анализ; «не произведение» завершает скан без
//     мутаций каталога, иначе создаётся ai_generated-запись.
//
// Отказ сохранения новой записи не прерывает скан: наружу уходит оценка,
// собранная в памяти (с нулевым id), а сбой фиксируется предупреждением.
func (d *CatalogDecisionEngine) Decide(ctx context.Context, req *DecideReq) (*ScanOutcome, error) {
	const op = "CatalogDecisionEngine.Decide"

	if req.Match != nil {
		if req.Match.Artwork.IsVerified {
			return NewVerifiedMatchOutcome(req.Match), nil
		}
		return NewCommunityMatchOutcome(req.Match), nil
	}

	analysis, err := d.vision.Analyze(ctx, &req.Image)
	if err != nil {
		return nil, e.Wrap(op, fmt.Errorf("%w: %w", e.ErrAnalysisUnavailable, err))
	}

	if !analysis.IsArtwork {
		return NewNotArtOutcome(analysis.Message), nil
	}

	artwork := buildEstimatedArtwork(analysis, req)

	created, err := d.catalog.CreateCatalogEntry(ctx, artwork)
	if err != nil {
		d.logger.Warnf("auto-cataloging failed, returning in-memory estimate: %v", e.Wrap(op, err))
		return NewAIAnalysisOutcome(artwork, analysis.Confidence, false), nil
	}

	return NewAIAnalysisOutcome(created, analysis.Confidence, true), nil
}

// buildEstimatedArtwork собирает новую каталожную запись из vision-оценки.
func buildEstimatedArtwork(analysis *AnalysisResult, req *DecideReq) *domain.Artwork {
	return &domain.Artwork{
		VectorID: uuid.NewString(),
		Title:    analysis.Title,
		Artist:   analysis.Artist,
		Description: domain.ArtworkDescription{
			Text:        analysis.Description,
			Year:        analysis.Year,
			Style:       analysis.Style,
			AIGenerated: true,
		},
		ImageURL:        req.ImageURL,
		Embedding:       req.Embedding,
		SiteID:          req.SiteID,
		IsVerified:      false,
		Source:          domain.SourceAIGenerated,
		ConfidenceScore: confidenceScore(analysis.Confidence),
	}
}

func confidenceScore(label string) float64 {
	if score, ok := confidenceScores[label]; ok {
		return score
	}
	return fallbackConfidenceScore
}
