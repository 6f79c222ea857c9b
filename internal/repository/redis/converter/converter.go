//go:generate goverter gen github.com/artlens-app/go-backend/internal/repository/redis/converter

package converter

import (
	"github.com/artlens-app/go-backend/internal/domain"
	"github.com/artlens-app/go-backend/internal/usecase"
)

// goverter:converter
// goverter:extend ConvertSource
// goverter:extend ConvertSourceString
type ArtworkInfoConverter interface {
	// goverter:map Description.Text DescriptionText
	// goverter:map Description.Year DescriptionYear
	// goverter:map Description.Style Style
	// goverter:map Description.AIGenerated AIGenerated
	ToRedisModel(entity *usecase.ArtworkInfo) *ArtworkInfoRedisModel
	// goverter:map DescriptionText Description.Text
	// goverter:map DescriptionYear Description.Year
	// goverter:map Style Description.Style
	// goverter:map AIGenerated Description.AIGenerated
	ToUseCase(model *ArtworkInfoRedisModel) *usecase.ArtworkInfo
}

// goverter:converter
type SiteConverter interface {
	ToRedisModel(entity *domain.Site) *SiteRedisModel
	ToEntity(model *SiteRedisModel) *domain.Site
	ToArrRedisModel(entities []domain.Site) []SiteRedisModel
	ToArrEntity(models []SiteRedisModel) []domain.Site
}

func ConvertSource(s domain.ArtworkSource) string {
	return string(s)
}

func ConvertSourceString(s string) domain.ArtworkSource {
	return domain.ArtworkSource(s)
}
