package http

import (
	"bytes"
	"context"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/artlens-app/go-backend/internal/domain"
	"github.com/artlens-app/go-backend/internal/usecase"
	"github.com/artlens-app/go-backend/pkg/e"
	"github.com/go-chi/chi/v5"
)

type nopLogger struct{}

func (nopLogger) Debugf(string, ...interface{})        {}
func (nopLogger) Infof(string, ...interface{})         {}
func (nopLogger) Warnf(string, ...interface{})         {}
func (nopLogger) Errorf(error, string, ...interface{}) {}

type stubScanUC struct {
	outcome  *usecase.ScanOutcome
	scanErr  error
	info     *usecase.ArtworkInfo
	infoErr  error
	lastScan *usecase.ScanReq
	reports  []*usecase.ReportIssueReq
}

func (s *stubScanUC) Scan(_ context.Context, req *usecase.ScanReq) (*usecase.ScanOutcome, error) {
	s.lastScan = req
	if s.scanErr != nil {
		return nil, s.scanErr
	}
	return s.outcome, nil
}

func (s *stubScanUC) ReportIssue(_ context.Context, req *usecase.ReportIssueReq) error {
	s.reports = append(s.reports, req)
	return nil
}

func (s *stubScanUC) GetArtworkInfo(_ context.Context, _ int64) (*usecase.ArtworkInfo, error) {
	if s.infoErr != nil {
		return nil, s.infoErr
	}
	return s.info, nil
}

func newTestRouter(uc usecase.ScanUC) *chi.Mux {
	mux := chi.NewRouter()
	scanHandler := NewScanHandler(uc, nopLogger{})
	mux.Route("/api/v1", func(v1 chi.Router) {
		registerScanRoutes(v1, scanHandler)
	})
	return mux
}

func newScanRequest(t *testing.T, fields map[string]string, image []byte) *http.Request {
	t.Helper()

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	for k, v := range fields {
		if err := mw.WriteField(k, v); err != nil {
			t.Fatalf("WriteField(%s): %v", k, err)
		}
	}
	if image != nil {
		fw, err := mw.CreateFormFile("image", "scan.jpg")
		if err != nil {
			t.Fatalf("CreateFormFile: %v", err)
		}
		if _, err := fw.Write(image); err != nil {
			t.Fatalf("write image: %v", err)
		}
	}
	mw.Close()

	req := httptest.NewRequest(http.MethodPost, "/api/v1/scan", &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	return req
}

func verifiedOutcome() *usecase.ScanOutcome {
	return &usecase.ScanOutcome{
		Status: usecase.StatusVerifiedResult,
		Artwork: &domain.Artwork{
			ID:         1,
			Title:      "Mona Lisa",
			Artist:     "Leonardo da Vinci",
			ImageURL:   "https://cdn.example.com/artworks/1.jpg",
			IsVerified: true,
			Source:     domain.SourceCurated,
		},
		Similarity: 0.95,
		Distance:   0.05,
	}
}

func TestScanRejectsNonMultipart(t *testing.T) {
	router := newTestRouter(&stubScanUC{})

	req := httptest.NewRequest(http.MethodPost, "/api/v1/scan", bytes.NewBufferString(`{}`))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusBadRequest)
	}
	var resp ErrorResponse
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("decode error response: %v", err)
	}
	if resp.Message != e.ErrExpectedMultipart.Error() {
		t.Errorf("message = %q, want %q", resp.Message, e.ErrExpectedMultipart.Error())
	}
}

func TestScanRejectsOversizedBody(t *testing.T) {
	router := newTestRouter(&stubScanUC{})

	// Тело больше лимита запроса в 20 МиБ.
	oversized := bytes.Repeat([]byte("x"), 21<<20)
	req := newScanRequest(t, map[string]string{"latitude": "48.86", "longitude": "2.33"}, oversized)
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusBadRequest)
	}
	var resp ErrorResponse
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("decode error response: %v", err)
	}
	if resp.Message != e.ErrFileTooLarge.Error() {
		t.Errorf("message = %q, want %q", resp.Message, e.ErrFileTooLarge.Error())
	}
}

func TestScanRejectsMissingImage(t *testing.T) {
	router := newTestRouter(&stubScanUC{})

	req := newScanRequest(t, map[string]string{"latitude": "48.86", "longitude": "2.33"}, nil)
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusBadRequest)
	}
}

func TestScanRejectsMissingCoordinates(t *testing.T) {
	router := newTestRouter(&stubScanUC{})

	req := newScanRequest(t, map[string]string{"latitude": "48.86"}, []byte("jpeg-bytes"))
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusBadRequest)
	}
}

func TestScanRejectsMalformedCoordinates(t *testing.T) {
	router := newTestRouter(&stubScanUC{})

	req := newScanRequest(t, map[string]string{"latitude": "north", "longitude": "2.33"}, []byte("jpeg-bytes"))
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusBadRequest)
	}
	var resp ErrorResponse
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("decode error response: %v", err)
	}
	if resp.Message != e.ErrInvalidCoordinates.Error() {
		t.Errorf("message = %q, want %q", resp.Message, e.ErrInvalidCoordinates.Error())
	}
}

func TestScanVerifiedResponseShape(t *testing.T) {
	uc := &stubScanUC{outcome: verifiedOutcome()}
	router := newTestRouter(uc)

	req := newScanRequest(t, map[string]string{"latitude": "48.86", "longitude": "2.33", "user_id": "u-1"}, []byte("jpeg-bytes"))
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d, body %s", rec.Code, http.StatusOK, rec.Body.String())
	}

	var resp map[string]interface{}
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp["status"] != "verified_result" {
		t.Errorf("status = %v, want verified_result", resp["status"])
	}
	if resp["badge"] != "Verified" {
		t.Errorf("badge = %v, want Verified", resp["badge"])
	}
	if resp["ai_generated"] != false {
		t.Errorf("ai_generated = %v, want false", resp["ai_generated"])
	}
	artwork, ok := resp["artwork"].(map[string]interface{})
	if !ok {
		t.Fatalf("artwork missing in response: %v", resp)
	}
	if artwork["similarity"] != 0.95 {
		t.Errorf("similarity = %v, want 0.95", artwork["similarity"])
	}
	if artwork["distance"] != 0.05 {
		t.Errorf("distance = %v, want 0.05", artwork["distance"])
	}
	if artwork["is_verified"] != true {
		t.Errorf("is_verified = %v, want true", artwork["is_verified"])
	}
	if uc.lastScan == nil || uc.lastScan.UserID != "u-1" {
		t.Errorf("usecase did not receive user_id, got %+v", uc.lastScan)
	}
}

func TestScanCommunityBadge(t *testing.T) {
	outcome := verifiedOutcome()
	outcome.Status = usecase.StatusCommunityResult
	outcome.Artwork.IsVerified = false
	router := newTestRouter(&stubScanUC{outcome: outcome})

	req := newScanRequest(t, map[string]string{"latitude": "48.86", "longitude": "2.33"}, []byte("jpeg-bytes"))
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	var resp map[string]interface{}
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp["badge"] != "Community" {
		t.Errorf("badge = %v, want Community", resp["badge"])
	}
}

func TestScanAIAnalysisResponseShape(t *testing.T) {
	outcome := &usecase.ScanOutcome{
		Status: usecase.StatusAIAnalysis,
		Artwork: &domain.Artwork{
			ID:              42,
			Title:           "Impressionist Landscape",
			Artist:          "Unknown",
			Source:          domain.SourceAIGenerated,
			ConfidenceScore: 0.5,
		},
		Confidence: "medium",
		Cataloged:  true,
	}
	router := newTestRouter(&stubScanUC{outcome: outcome})

	req := newScanRequest(t, map[string]string{"latitude": "48.86", "longitude": "2.33"}, []byte("jpeg-bytes"))
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	var resp map[string]interface{}
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp["status"] != "ai_analysis" {
		t.Errorf("status = %v, want ai_analysis", resp["status"])
	}
	if resp["badge"] != "AI Estimate" {
		t.Errorf("badge = %v, want AI Estimate", resp["badge"])
	}
	if resp["ai_generated"] != true {
		t.Errorf("ai_generated = %v, want true", resp["ai_generated"])
	}
	if resp["cataloged"] != true {
		t.Errorf("cataloged = %v, want true", resp["cataloged"])
	}
	artwork := resp["artwork"].(map[string]interface{})
	if artwork["confidence"] != "medium" {
		t.Errorf("confidence = %v, want medium", artwork["confidence"])
	}
	if artwork["confidence_score"] != 0.5 {
		t.Errorf("confidence_score = %v, want 0.5", artwork["confidence_score"])
	}
	if artwork["source"] != "ai_generated" {
		t.Errorf("source = %v, want ai_generated", artwork["source"])
	}
	if _, hasSimilarity := artwork["similarity"]; hasSimilarity {
		t.Error("similarity must be omitted for ai_analysis")
	}
}

func TestScanNotArtResponseShape(t *testing.T) {
	outcome := &usecase.ScanOutcome{
		Status:  usecase.StatusNotArt,
		Message: "This looks like a coffee cup, not an artwork.",
	}
	router := newTestRouter(&stubScanUC{outcome: outcome})

	req := newScanRequest(t, map[string]string{"latitude": "48.86", "longitude": "2.33"}, []byte("jpeg-bytes"))
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	var resp map[string]interface{}
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp["status"] != "not_art" {
		t.Errorf("status = %v, want not_art", resp["status"])
	}
	if resp["message"] != outcome.Message {
		t.Errorf("message = %v, want %q", resp["message"], outcome.Message)
	}
	if resp["ai_generated"] != false {
		t.Errorf("ai_generated = %v, want false", resp["ai_generated"])
	}
	if _, hasArtwork := resp["artwork"]; hasArtwork {
		t.Error("artwork must be omitted for not_art")
	}
}

func TestScanDependencyFailureMapsTo503(t *testing.T) {
	uc := &stubScanUC{scanErr: e.Wrap("ScanUseCase.Scan", e.ErrEmbeddingUnavailable)}
	router := newTestRouter(uc)

	req := newScanRequest(t, map[string]string{"latitude": "48.86", "longitude": "2.33"}, []byte("jpeg-bytes"))
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusServiceUnavailable {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusServiceUnavailable)
	}
}

func TestIdentifyAliasRoutesToScan(t *testing.T) {
	uc := &stubScanUC{outcome: verifiedOutcome()}
	router := newTestRouter(uc)

	req := newScanRequest(t, map[string]string{"latitude": "48.86", "longitude": "2.33"}, []byte("jpeg-bytes"))
	req.URL.Path = "/api/v1/identify"
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusOK)
	}
	if uc.lastScan == nil {
		t.Fatal("identify alias did not reach the scan usecase")
	}
}

func TestReportIssueAcknowledges(t *testing.T) {
	uc := &stubScanUC{}
	router := newTestRouter(uc)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/report-issue",
		bytes.NewBufferString("artwork_id=7&issue_type=wrong_title&description=artist+is+wrong"))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d, body %s", rec.Code, http.StatusOK, rec.Body.String())
	}
	if len(uc.reports) != 1 {
		t.Fatalf("reports = %d, want 1", len(uc.reports))
	}
	if uc.reports[0].ArtworkID != 7 || uc.reports[0].IssueType != "wrong_title" {
		t.Errorf("unexpected report: %+v", uc.reports[0])
	}
}

func TestReportIssueRequiresFields(t *testing.T) {
	router := newTestRouter(&stubScanUC{})

	req := httptest.NewRequest(http.MethodPost, "/api/v1/report-issue", bytes.NewBufferString("artwork_id=7"))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusBadRequest)
	}
}

func TestGetArtwork(t *testing.T) {
	uc := &stubScanUC{info: &usecase.ArtworkInfo{
		ID:         5,
		Title:      "Guernica",
		Artist:     "Pablo Picasso",
		IsVerified: true,
		Source:     domain.SourceCurated,
	}}
	router := newTestRouter(uc)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/artworks/5", nil)
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusOK)
	}
	var view ArtworkView
	if err := json.NewDecoder(rec.Body).Decode(&view); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if view.ID != 5 || view.Title != "Guernica" {
		t.Errorf("unexpected view: %+v", view)
	}
}

func TestGetArtworkNotFound(t *testing.T) {
	uc := &stubScanUC{infoErr: e.Wrap("ScanUseCase.GetArtworkInfo", e.ErrArtworkNotFound)}
	router := newTestRouter(uc)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/artworks/404", nil)
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusNotFound)
	}
}

func TestGetArtworkRejectsNonNumericID(t *testing.T) {
	router := newTestRouter(&stubScanUC{})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/artworks/abc", nil)
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusNotFound)
	}
}
