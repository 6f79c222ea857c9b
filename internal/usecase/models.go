package usecase

import (
	"time"

	"github.com/artlens-app/go-backend/internal/domain"
)

// SCAN USECASE

// ScanReq — запрос на идентификацию произведения по снимку и геопозиции.
type ScanReq struct {
	Image     ScanImage
	Latitude  float64
	Longitude float64
	UserID    string
}

// ScanImage представляет изображение, загруженное через multipart/form-data.
type ScanImage struct {
	Data     []byte // байты изображения
	MimeType string // Content-Type из multipart (image/jpeg)
	Size     int64  // фактический размер в байтах
	Name     string // оригинальное имя файла (для логов)
}

// ScanStatus — итоговая классификация одного скана.
type ScanStatus string

const (
	StatusVerifiedResult  ScanStatus = "verified_result"
	StatusCommunityResult ScanStatus = "community_result"
	StatusAIAnalysis      ScanStatus = "ai_analysis"
	StatusNotArt          ScanStatus = "not_art"
)

// ScanOutcome — единственный результат скана; ровно один вариант на запрос.
// После конструирования не изменяется.
type ScanOutcome struct {
	Status     ScanStatus
	Artwork    *domain.Artwork
	Similarity float64
	Distance   float64
	Confidence string // метка уверенности vision-анализа (low|medium|high)
	Cataloged  bool   // удалось ли сохранить новую ai_generated-запись
	Message    string // пояснение для not_art
}

// DecideReq — вход движка принятия решения.
type DecideReq struct {
	Match     *domain.MatchCandidate
	Image     ScanImage
	Embedding []float32
	SiteID    *int64
	ImageURL  string
}

// AnalysisResult — размеченный результат vision-анализа:
// либо «не произведение искусства» (IsArtwork=false, Message),
// либо оценка произведения с меткой уверенности.
type AnalysisResult struct {
	IsArtwork   bool
	Message     string
	Title       string
	Artist      string
	Description string
	Year        *int
	Style       string
	Confidence  string // low | medium | high
}

// NearestHit — типизированный результат нативного примитива поиска.
type NearestHit struct {
	ArtworkID int64
	Distance  float64
}

// ScanLogEntry — запись журнала активности сканирований.
type ScanLogEntry struct {
	UserID    string
	ArtworkID *int64
	ImageURL  string
	CreatedAt time.Time
}

// ReportIssueReq — жалоба пользователя на каталожную запись.
type ReportIssueReq struct {
	ArtworkID   int64
	UserID      string
	IssueType   string
	Description string
}

// ArtworkInfo — DTO карточки произведения для внешнего использования.
type ArtworkInfo struct {
	ID              int64
	Title           string
	Artist          string
	Description     domain.ArtworkDescription
	ImageURL        string
	IsVerified      bool
	Source          domain.ArtworkSource
	ConfidenceScore float64
}

// INFRASTRUCTURE

// UploadScanImageReq — запрос на сохранение снимка скана в S3.
type UploadScanImageReq struct {
	UserID string
	Image  ScanImage
}

// UploadScanImageRes — ключ объекта и публичная ссылка на снимок.
type UploadScanImageRes struct {
	Key string
	URL string
}

type WriteRawMessageReq struct {
	ArtworkID int64
	Payload   []byte
}

// OUTBOX

type OutboxStatus string

const (
	Pending    OutboxStatus = "pending"
	Processing OutboxStatus = "processing"
	Processed  OutboxStatus = "processed"
)

type OutboxEventType string

const EventArtworkCataloged OutboxEventType = "artwork_cataloged"

// CatalogedEventPayload — тело события artwork_cataloged для потребителей Kafka.
type CatalogedEventPayload struct {
	ArtworkID       int64                     `json:"artwork_id"`
	Title           string                    `json:"title"`
	Artist          string                    `json:"artist"`
	Description     domain.ArtworkDescription `json:"description"`
	ImageURL        string                    `json:"image_url"`
	SiteID          *int64                    `json:"site_id,omitempty"`
	Source          domain.ArtworkSource      `json:"source"`
	ConfidenceScore float64                   `json:"confidence_score"`
	CreatedAt       time.Time                 `json:"created_at"`
}

type OutboxEvent struct {
	ID          int64
	EventID     string
	EventType   OutboxEventType
	ArtworkID   int64
	Payload     []byte
	Status      OutboxStatus
	CreatedAt   time.Time
	ProcessedAt *time.Time
}

// MAPPERS

func NewScanImage(data []byte, mimeType string, size int64, name string) *ScanImage {
	return &ScanImage{
		Data:     data,
		MimeType: mimeType,
		Size:     size,
		Name:     name,
	}
}

func NewScanReq(image ScanImage, lat, lng float64, userID string) *ScanReq {
	return &ScanReq{
		Image:     image,
		Latitude:  lat,
		Longitude: lng,
		UserID:    userID,
	}
}

func NewVerifiedMatchOutcome(match *domain.MatchCandidate) *ScanOutcome {
	return &ScanOutcome{
		Status:     StatusVerifiedResult,
		Artwork:    match.Artwork,
		Similarity: match.Similarity(),
		Distance:   match.Distance,
	}
}

func NewCommunityMatchOutcome(match *domain.MatchCandidate) *ScanOutcome {
	return &ScanOutcome{
		Status:     StatusCommunityResult,
		Artwork:    match.Artwork,
		Similarity: match.Similarity(),
		Distance:   match.Distance,
	}
}

func NewAIAnalysisOutcome(artwork *domain.Artwork, confidence string, cataloged bool) *ScanOutcome {
	return &ScanOutcome{
		Status:     StatusAIAnalysis,
		Artwork:    artwork,
		Confidence: confidence,
		Cataloged:  cataloged,
	}
}

func NewNotArtOutcome(message string) *ScanOutcome {
	return &ScanOutcome{
		Status:  StatusNotArt,
		Message: message,
	}
}

func NewDecideReq(match *domain.MatchCandidate, image ScanImage, embedding []float32, siteID *int64, imageURL string) *DecideReq {
	return &DecideReq{
		Match:     match,
		Image:     image,
		Embedding: embedding,
		SiteID:    siteID,
		ImageURL:  imageURL,
	}
}

func NewNearestHit(artworkID int64, distance float64) *NearestHit {
	return &NearestHit{
		ArtworkID: artworkID,
		Distance:  distance,
	}
}

func NewScanLogEntry(userID string, artworkID *int64, imageURL string) *ScanLogEntry {
	return &ScanLogEntry{
		UserID:    userID,
		ArtworkID: artworkID,
		ImageURL:  imageURL,
		CreatedAt: time.Now().UTC(),
	}
}

func NewArtworkInfo(artwork *domain.Artwork) *ArtworkInfo {
	return &ArtworkInfo{
		ID:              artwork.ID,
		Title:           artwork.Title,
		Artist:          artwork.Artist,
		Description:     artwork.Description,
		ImageURL:        artwork.ImageURL,
		IsVerified:      artwork.IsVerified,
		Source:          artwork.Source,
		ConfidenceScore: artwork.ConfidenceScore,
	}
}

func NewUploadScanImageReq(userID string, image ScanImage) *UploadScanImageReq {
	return &UploadScanImageReq{
		UserID: userID,
		Image:  image,
	}
}

func NewUploadScanImageRes(key, url string) *UploadScanImageRes {
	return &UploadScanImageRes{
		Key: key,
		URL: url,
	}
}

func NewWriteRawMessageReq(artworkID int64, payload []byte) *WriteRawMessageReq {
	return &WriteRawMessageReq{
		ArtworkID: artworkID,
		Payload:   payload,
	}
}

func NewCatalogedEventPayload(artwork *domain.Artwork) *CatalogedEventPayload {
	return &CatalogedEventPayload{
		ArtworkID:       artwork.ID,
		Title:           artwork.Title,
		Artist:          artwork.Artist,
		Description:     artwork.Description,
		ImageURL:        artwork.ImageURL,
		SiteID:          artwork.SiteID,
		Source:          artwork.Source,
		ConfidenceScore: artwork.ConfidenceScore,
		CreatedAt:       artwork.CreatedAt,
	}
}

func NewOutboxEvent(eventID string, eventType OutboxEventType, artworkID int64, payload []byte) *OutboxEvent {
	return &OutboxEvent{
		EventID:   eventID,
		EventType: eventType,
		ArtworkID: artworkID,
		Payload:   payload,
		Status:    Pending,
		CreatedAt: time.Now().UTC(),
	}
}
