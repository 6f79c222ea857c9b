//go:generate goverter gen github.com/artlens-app/go-backend/internal/repository/pgdb/converter
package converter

import (
	"encoding/json"
	"time"

	"github.com/artlens-app/go-backend/internal/domain"
	"github.com/artlens-app/go-backend/internal/usecase"
	"github.com/pgvector/pgvector-go"
)

// ArtworkConverter преобразует сущности Artwork между domain и моделью PostgreSQL.
// goverter:converter
// goverter:extend ConvertTime
// goverter:extend ConvertPointerTime
// goverter:extend ConvertDescription
// goverter:extend ConvertDescriptionJSON
// goverter:extend ConvertEmbedding
// goverter:extend ConvertVector
// goverter:extend ConvertSource
// goverter:extend ConvertSourceString
type ArtworkConverter interface {
	ToModel(entity *domain.Artwork) *ArtworkModel
	ToEntity(model *ArtworkModel) *domain.Artwork
	ToArrEntity(models []*ArtworkModel) []*domain.Artwork
}

// SiteConverter преобразует сущности Site между domain и моделью PostgreSQL.
// goverter:converter
// goverter:extend ConvertTime
// goverter:extend ConvertPointerTime
type SiteConverter interface {
	ToModel(entity *domain.Site) *SiteModel
	ToEntity(model *SiteModel) *domain.Site
	ToArrEntity(models []*SiteModel) []domain.Site
}

// OutboxEventConverter преобразует сущности OutboxEvent между usecase и моделью PostgreSQL.
// goverter:converter
// goverter:extend ConvertTime
// goverter:extend ConvertPointerTime
// goverter:extend ConvertOutBoxStatus
// goverter:extend ConvertOutBoxStatusString
// goverter:extend ConvertOutboxEventType
// goverter:extend ConvertOutboxEventTypeString
type OutboxEventConverter interface {
	ToModel(entity *usecase.OutboxEvent) *OutboxEventModel
	ToEntity(model *OutboxEventModel) *usecase.OutboxEvent
	ToArrEntity(models []*OutboxEventModel) []*usecase.OutboxEvent
}

func ConvertPointerTime(t *time.Time) *time.Time {
	return t
}

func ConvertTime(t time.Time) time.Time {
	return t
}

// ConvertDescription сериализует структурированное описание в JSONB.
// Структура состоит из примитивных полей, ошибка маршалинга невозможна.
func ConvertDescription(d domain.ArtworkDescription) []byte {
	data, _ := json.Marshal(d)
	return data
}

// ConvertDescriptionJSON восстанавливает описание из JSONB; повреждённое
// значение даёт пустое описание.
func ConvertDescriptionJSON(data []byte) domain.ArtworkDescription {
	var d domain.ArtworkDescription
	_ = json.Unmarshal(data, &d)
	return d
}

func ConvertEmbedding(v []float32) pgvector.Vector {
	return pgvector.NewVector(v)
}

func ConvertVector(v pgvector.Vector) []float32 {
	return v.Slice()
}

func ConvertSource(s domain.ArtworkSource) string {
	return string(s)
}

func ConvertSourceString(s string) domain.ArtworkSource {
	return domain.ArtworkSource(s)
}

func ConvertOutBoxStatus(s usecase.OutboxStatus) string {
	return string(s)
}

func ConvertOutBoxStatusString(s string) usecase.OutboxStatus {
	return usecase.OutboxStatus(s)
}

func ConvertOutboxEventType(t usecase.OutboxEventType) string {
	return string(t)
}

func ConvertOutboxEventTypeString(t string) usecase.OutboxEventType {
	return usecase.OutboxEventType(t)
}
