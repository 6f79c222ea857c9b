package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"strconv"
	"strings"

	"github.com/artlens-app/go-backend/internal/usecase"
	"github.com/artlens-app/go-backend/pkg/e"
	"github.com/jimlawless/whereami"
)

type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

type ScanMetadata struct {
	Latitude  float64
	Longitude float64
	UserID    string
}

type ReportIssueMetadata struct {
	ArtworkID   int64
	UserID      string
	IssueType   string
	Description string
}

func NewErrorResponse(code int, message string) *ErrorResponse {
	return &ErrorResponse{
		Code:    code,
		Message: message,
	}
}

func ToHTTPResponse(err error) (int, string) {
	switch {
	case errors.Is(err, e.ErrStatusBadRequest):
		return http.StatusBadRequest, e.ErrStatusBadRequest.Error()
	case errors.Is(err, e.ErrExpectedMultipart):
		return http.StatusBadRequest, e.ErrExpectedMultipart.Error()
	case errors.Is(err, e.ErrMissingFields):
		return http.StatusBadRequest, e.ErrMissingFields.Error()
	case errors.Is(err, e.ErrImageRequired):
		return http.StatusBadRequest, e.ErrImageRequired.Error()
	case errors.Is(err, e.ErrInvalidCoordinates):
		return http.StatusBadRequest, e.ErrInvalidCoordinates.Error()
	case errors.Is(err, e.ErrFileTooLarge):
		return http.StatusBadRequest, e.ErrFileTooLarge.Error()
	case errors.Is(err, e.ErrUnsupportedMediaType):
		return http.StatusBadRequest, e.ErrUnsupportedMediaType.Error()
	case errors.Is(err, e.ErrArtworkNotFound):
		return http.StatusNotFound, e.ErrArtworkNotFound.Error()
	case errors.Is(err, e.ErrEmbeddingUnavailable):
		return http.StatusServiceUnavailable, e.ErrEmbeddingUnavailable.Error()
	case errors.Is(err, e.ErrAnalysisUnavailable):
		return http.StatusServiceUnavailable, e.ErrAnalysisUnavailable.Error()
	default:
		return http.StatusInternalServerError, e.ErrInternalServerError.Error()
	}
}

func WriteError(w http.ResponseWriter, err error) {
	code, msg := ToHTTPResponse(err)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(NewErrorResponse(code, msg))
}

func WriteSuccess(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

func ensureMultipartForm(r *http.Request, maxMemory int64) error {
	if !strings.HasPrefix(r.Header.Get("Content-Type"), "multipart/form-data") {
		return e.Wrap(whereami.WhereAmI(), e.ErrExpectedMultipart)
	}
	if err := r.ParseMultipartForm(maxMemory); err != nil {
		var maxBytesErr *http.MaxBytesError
		if errors.As(err, &maxBytesErr) {
			return e.Wrap(whereami.WhereAmI(), e.ErrFileTooLarge)
		}
		return e.Wrap(whereami.WhereAmI(), e.ErrStatusBadRequest)
	}
	return nil
}

func parseScanForm(r *http.Request) (*ScanMetadata, error) {
	latStr := r.FormValue("latitude")
	lngStr := r.FormValue("longitude")

	if latStr == "" || lngStr == "" {
		return nil, e.Wrap(fmt.Sprintf("latitude: %s, longitude: %s", latStr, lngStr), e.ErrMissingFields)
	}

	lat, err := strconv.ParseFloat(latStr, 64)
	if err != nil {
		return nil, e.Wrap(latStr, e.ErrInvalidCoordinates)
	}
	lng, err := strconv.ParseFloat(lngStr, 64)
	if err != nil {
		return nil, e.Wrap(lngStr, e.ErrInvalidCoordinates)
	}

	return &ScanMetadata{
		Latitude:  lat,
		Longitude: lng,
		UserID:    r.FormValue("user_id"),
	}, nil
}

func parseReportIssueForm(r *http.Request) (*ReportIssueMetadata, error) {
	idStr := r.FormValue("artwork_id")
	issueType := r.FormValue("issue_type")

	if idStr == "" || issueType == "" {
		return nil, e.Wrap(fmt.Sprintf("artwork_id: %s, issue_type: %s", idStr, issueType), e.ErrMissingFields)
	}

	artworkID, err := strconv.ParseInt(idStr, 10, 64)
	if err != nil {
		return nil, e.Wrap(idStr, e.ErrMissingFields)
	}

	return &ReportIssueMetadata{
		ArtworkID:   artworkID,
		UserID:      r.FormValue("user_id"),
		IssueType:   issueType,
		Description: r.FormValue("description"),
	}, nil
}

func parseScanImage(files []*multipart.FileHeader) (*usecase.ScanImage, error) {
	const maxFileSize = 15 << 20

	if len(files) == 0 {
		return nil, e.ErrImageRequired
	}

	fh := files[0]
	data, mimeType, err := readFile(fh, maxFileSize)
	if err != nil {
		return nil, err
	}
	return usecase.NewScanImage(data, mimeType, int64(len(data)), fh.Filename), nil
}

func readFile(fh *multipart.FileHeader, maxSize int64) ([]byte, string, error) {
	src, err := fh.Open()
	if err != nil {
		return nil, "", e.ErrInternalServerError
	}
	defer src.Close()

	data, err := io.ReadAll(src)
	if err != nil {
		return nil, "", e.ErrInternalServerError
	}
	if int64(len(data)) > maxSize {
		return nil, "", e.Wrap(fh.Filename, e.ErrFileTooLarge)
	}

	mimeType := http.DetectContentType(data[:min(len(data), 512)])
	return data, mimeType, nil
}
