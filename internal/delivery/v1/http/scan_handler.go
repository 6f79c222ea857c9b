package http

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/artlens-app/go-backend/internal/domain"
	"github.com/artlens-app/go-backend/internal/usecase"
	"github.com/artlens-app/go-backend/pkg/e"
	"github.com/artlens-app/go-backend/pkg/logger"
	"github.com/go-chi/chi/v5"
)

const (
	badgeVerified   = "Verified"
	badgeCommunity  = "Community"
	badgeAIEstimate = "AI Estimate"
)

type ScanHandler struct {
	scanUsecase usecase.ScanUC
	logger      logger.Logger
}

func NewScanHandler(scanUsecase usecase.ScanUC, logger logger.Logger) *ScanHandler {
	return &ScanHandler{scanUsecase: scanUsecase, logger: logger}
}

// ArtworkView — представление произведения в ответе сканирования.
type ArtworkView struct {
	ID              int64                     `json:"id"`
	Title           string                    `json:"title"`
	Artist          string                    `json:"artist"`
	Description     domain.ArtworkDescription `json:"description"`
	ImageURL        string                    `json:"image_url"`
	Similarity      *float64                  `json:"similarity,omitempty"`
	Distance        *float64                  `json:"distance,omitempty"`
	IsVerified      bool                      `json:"is_verified"`
	Source          domain.ArtworkSource      `json:"source"`
	ConfidenceScore float64                   `json:"confidence_score"`
	Confidence      string                    `json:"confidence,omitempty"`
}

// ScanResponse — ответ POST /scan; набор полей зависит от статуса.
type ScanResponse struct {
	Status      usecase.ScanStatus `json:"status"`
	Artwork     *ArtworkView       `json:"artwork,omitempty"`
	Badge       string             `json:"badge,omitempty"`
	AIGenerated bool               `json:"ai_generated"`
	Cataloged   *bool              `json:"cataloged,omitempty"`
	Message     string             `json:"message,omitempty"`
}

func newScanResponse(outcome *usecase.ScanOutcome) *ScanResponse {
	switch outcome.Status {
	case usecase.StatusVerifiedResult, usecase.StatusCommunityResult:
		badge := badgeVerified
		if outcome.Status == usecase.StatusCommunityResult {
			badge = badgeCommunity
		}
		similarity, distance := outcome.Similarity, outcome.Distance
		return &ScanResponse{
			Status: outcome.Status,
			Artwork: &ArtworkView{
				ID:              outcome.Artwork.ID,
				Title:           outcome.Artwork.Title,
				Artist:          outcome.Artwork.Artist,
				Description:     outcome.Artwork.Description,
				ImageURL:        outcome.Artwork.ImageURL,
				Similarity:      &similarity,
				Distance:        &distance,
				IsVerified:      outcome.Artwork.IsVerified,
				Source:          outcome.Artwork.Source,
				ConfidenceScore: outcome.Artwork.ConfidenceScore,
			},
			Badge:       badge,
			AIGenerated: false,
		}
	case usecase.StatusAIAnalysis:
		cataloged := outcome.Cataloged
		return &ScanResponse{
			Status: outcome.Status,
			Artwork: &ArtworkView{
				ID:              outcome.Artwork.ID,
				Title:           outcome.Artwork.Title,
				Artist:          outcome.Artwork.Artist,
				Description:     outcome.Artwork.Description,
				ImageURL:        outcome.Artwork.ImageURL,
				IsVerified:      false,
				Source:          outcome.Artwork.Source,
				ConfidenceScore: outcome.Artwork.ConfidenceScore,
				Confidence:      outcome.Confidence,
			},
			Badge:       badgeAIEstimate,
			AIGenerated: true,
			Cataloged:   &cataloged,
		}
	default:
		return &ScanResponse{
			Status:      usecase.StatusNotArt,
			Message:     outcome.Message,
			AIGenerated: false,
		}
	}
}

// scanArtwork
//
//	@Summary		Идентификация произведения по снимку
//	@Description	Сопоставляет снимок с каталогом; при отсутствии совпадения выполняет AI-анализ и автокаталогизацию
//	@Tags			scan
//	@Accept			multipart/form-data
//	@Produce		json
//	@Param			image		formData	file			true	"Снимок произведения"
//	@Param			latitude	formData	number			true	"Широта"
//	@Param			longitude	formData	number			true	"Долгота"
//	@Param			user_id		formData	string			false	"Идентификатор пользователя"
//	@Success		200			{object}	ScanResponse	"Результат идентификации"
//	@Failure		400			{object}	ErrorResponse	"Ошибка валидации"
//	@Failure		503			{object}	ErrorResponse	"Недоступен embedding или vision сервис"
//	@Router			/scan [post]
func (h *ScanHandler) scanArtwork(w http.ResponseWriter, r *http.Request) {
	const (
		maxTotalRequestSize = 20 << 20
		maxMemory           = 32 << 20
	)

	r.Body = http.MaxBytesReader(w, r.Body, maxTotalRequestSize)

	if err := ensureMultipartForm(r, maxMemory); err != nil {
		h.logger.Warnf("%d %s: %s", http.StatusBadRequest, e.ErrStatusBadRequest.Error(), r.Header.Get("Content-Type"))
		WriteError(w, err)
		return
	}

	meta, err := parseScanForm(r)
	if err != nil {
		h.logger.Warnf("%d %s: %s", http.StatusBadRequest, e.ErrStatusBadRequest.Error(), err.Error())
		WriteError(w, err)
		return
	}

	image, err := parseScanImage(r.MultipartForm.File["image"])
	if err != nil {
		h.logger.Warnf("%d %s: %s", http.StatusBadRequest, e.ErrStatusBadRequest.Error(), err.Error())
		WriteError(w, err)
		return
	}

	outcome, err := h.scanUsecase.Scan(r.Context(), usecase.NewScanReq(*image, meta.Latitude, meta.Longitude, meta.UserID))
	if err != nil {
		h.logger.Warnf("%s", err.Error())
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusOK, newScanResponse(outcome))
}

// reportIssue
//
//	@Summary		Жалоба на каталожную запись
//	@Description	Принимает жалобу пользователя; всегда отвечает подтверждением
//	@Tags			scan
//	@Accept			x-www-form-urlencoded
//	@Produce		json
//	@Param			artwork_id	formData	integer					true	"Идентификатор произведения"
//	@Param			issue_type	formData	string					true	"Тип проблемы"
//	@Param			user_id		formData	string					false	"Идентификатор пользователя"
//	@Param			description	formData	string					false	"Описание проблемы"
//	@Success		200			{object}	map[string]interface{}	"Подтверждение"
//	@Failure		400			{object}	ErrorResponse			"Ошибка валидации"
//	@Router			/report-issue [post]
func (h *ScanHandler) reportIssue(w http.ResponseWriter, r *http.Request) {
	const maxMemory = 1 << 20

	if strings.HasPrefix(r.Header.Get("Content-Type"), "multipart/form-data") {
		if err := r.ParseMultipartForm(maxMemory); err != nil {
			WriteError(w, e.ErrStatusBadRequest)
			return
		}
	} else if err := r.ParseForm(); err != nil {
		WriteError(w, e.ErrStatusBadRequest)
		return
	}

	meta, err := parseReportIssueForm(r)
	if err != nil {
		h.logger.Warnf("%d %s: %s", http.StatusBadRequest, e.ErrStatusBadRequest.Error(), err.Error())
		WriteError(w, err)
		return
	}

	_ = h.scanUsecase.ReportIssue(r.Context(), &usecase.ReportIssueReq{
		ArtworkID:   meta.ArtworkID,
		UserID:      meta.UserID,
		IssueType:   meta.IssueType,
		Description: meta.Description,
	})

	WriteSuccess(w, http.StatusOK, map[string]interface{}{
		"status":  "reported",
		"message": "Thank you! Your report has been recorded.",
	})
}

// getArtwork
//
//	@Summary		Карточка произведения
//	@Tags			artworks
//	@Produce		json
//	@Param			id	path		integer			true	"Идентификатор произведения"
//	@Success		200	{object}	ArtworkView		"Карточка"
//	@Failure		404	{object}	ErrorResponse	"Не найдено"
//	@Router			/artworks/{id} [get]
func (h *ScanHandler) getArtwork(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		WriteError(w, e.ErrArtworkNotFound)
		return
	}

	info, err := h.scanUsecase.GetArtworkInfo(r.Context(), id)
	if err != nil {
		h.logger.Warnf("%s", err.Error())
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusOK, &ArtworkView{
		ID:              info.ID,
		Title:           info.Title,
		Artist:          info.Artist,
		Description:     info.Description,
		ImageURL:        info.ImageURL,
		IsVerified:      info.IsVerified,
		Source:          info.Source,
		ConfidenceScore: info.ConfidenceScore,
	})
}
