package http

import (
	"net/http"

	_ "github.com/artlens-app/go-backend/docs" // Импорт сгенерированных файлов
	"github.com/artlens-app/go-backend/internal/usecase"
	"github.com/artlens-app/go-backend/pkg/logger"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	httpSwagger "github.com/swaggo/http-swagger/v2"
)

type Router struct {
	router *chi.Mux
	logger logger.Logger
}

func NewRouter(router *chi.Mux, logger logger.Logger) *Router {
	return &Router{router: router, logger: logger}
}

func (r *Router) Init(scanUC usecase.ScanUC) {
	r.router.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"*"},
	}))

	r.router.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("http://localhost:8080/swagger/doc.json"), // ссылка на JSON
	))

	r.router.Get("/", func(w http.ResponseWriter, _ *http.Request) {
		WriteSuccess(w, http.StatusOK, map[string]interface{}{
			"message": "ArtLens API is running",
			"version": "1.0.0",
		})
	})
	r.router.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		WriteSuccess(w, http.StatusOK, map[string]interface{}{
			"status": "healthy",
		})
	})

	r.router.Route("/api/v1", func(v1 chi.Router) {
		scanHandler := NewScanHandler(scanUC, r.logger)
		registerScanRoutes(v1, scanHandler)
	})
}

func registerScanRoutes(router chi.Router, scanHandler *ScanHandler) {
	router.Post("/scan", scanHandler.scanArtwork)
	router.Post("/identify", scanHandler.scanArtwork)
	router.Post("/report-issue", scanHandler.reportIssue)
	router.Route("/artworks", func(ar chi.Router) {
		ar.Get("/{id}", scanHandler.getArtwork)
	})
}
