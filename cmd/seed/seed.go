package main

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"

	config "github.com/artlens-app/go-backend/internal/cfg"
	"github.com/artlens-app/go-backend/internal/domain"
	"github.com/artlens-app/go-backend/internal/infrastructure/embedder"
	"github.com/artlens-app/go-backend/internal/repository/pgdb"
	pgdbConv "github.com/artlens-app/go-backend/internal/repository/pgdb/converter/generated"
	qdrantRepo "github.com/artlens-app/go-backend/internal/repository/qdrant"
	"github.com/artlens-app/go-backend/internal/usecase"
	"github.com/artlens-app/go-backend/pkg/clients"
	"github.com/artlens-app/go-backend/pkg/logger"
	"github.com/artlens-app/go-backend/pkg/postgres"
	transaction "github.com/avito-tech/go-transaction-manager/drivers/pgxv5/v2"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/joho/godotenv"
)

// seedArtwork — известное произведение для первичного наполнения каталога.
type seedArtwork struct {
	Title       string
	Artist      string
	ImageURL    string
	Description string
	Year        int
	Style       string
}

// seedSite — площадка с геозабором для первичного наполнения.
type seedSite struct {
	Name         string
	Latitude     float64
	Longitude    float64
	RadiusMeters float64
}

var famousSites = []seedSite{
	{Name: "Louvre Museum", Latitude: 48.8606, Longitude: 2.3376, RadiusMeters: 400},
	{Name: "Van Gogh Museum", Latitude: 52.3584, Longitude: 4.8811, RadiusMeters: 250},
	{Name: "National Gallery of Norway", Latitude: 59.9161, Longitude: 10.7370, RadiusMeters: 250},
}

var famousArtworks = []seedArtwork{
	{
		Title:       "The Starry Night",
		Artist:      "Vincent van Gogh",
		ImageURL:    "https://upload.wikimedia.org/wikipedia/commons/thumb/e/ea/Van_Gogh_-_Starry_Night_-_Google_Art_Project.jpg/1280px-Van_Gogh_-_Starry_Night_-_Google_Art_Project.jpg",
		Description: "A famous post-impressionist painting depicting a swirling night sky over a village.",
		Year:        1889,
		Style:       "Post-Impressionism",
	},
	{
		Title:       "Mona Lisa",
		Artist:      "Leonardo da Vinci",
		ImageURL:    "https://upload.wikimedia.org/wikipedia/commons/thumb/e/ec/Mona_Lisa%2C_by_Leonardo_da_Vinci%2C_from_C2RMF_retouched.jpg/1200px-Mona_Lisa%2C_by_Leonardo_da_Vinci%2C_from_C2RMF_retouched.jpg",
		Description: "The world's most famous portrait, known for the subject's enigmatic smile.",
		Year:        1503,
		Style:       "Renaissance",
	},
	{
		Title:       "The Scream",
		Artist:      "Edvard Munch",
		ImageURL:    "https://upload.wikimedia.org/wikipedia/commons/thumb/c/c5/Edvard_Munch%2C_1893%2C_The_Scream%2C_oil%2C_tempera_and_pastel_on_cardboard%2C_91_x_73_cm%2C_National_Gallery_of_Norway.jpg/1200px-Edvard_Munch%2C_1893%2C_The_Scream%2C_oil%2C_tempera_and_pastel_on_cardboard%2C_91_x_73_cm%2C_National_Gallery_of_Norway.jpg",
		Description: "An iconic expressionist painting depicting a figure in distress against a dramatic sky.",
		Year:        1893,
		Style:       "Expressionism",
	},
}

func main() {
	_ = godotenv.Load()

	log := logger.NewSlogLogger()

	cfg, err := config.Load(log)
	if err != nil {
		log.Errorf(err, "failed to load config")
		os.Exit(1)
	}

	db, err := postgres.Connect(cfg.Db)
	if err != nil {
		log.Errorf(err, "failed to connect to database")
		os.Exit(1)
	}
	defer db.Close()

	if err := db.RunMigrations(log); err != nil {
		log.Errorf(err, "failed to run migrations")
		os.Exit(1)
	}

	qdrantClient, err := clients.NewQdrantClient(cfg.Qdrant)
	if err != nil {
		log.Errorf(err, "failed to initialize qdrant")
		os.Exit(1)
	}
	defer qdrantClient.Client.Close()

	ensureCtx, ensureCancel := context.WithTimeout(context.Background(), 10*time.Second)
	if err := clients.EnsureCollection(ensureCtx, qdrantClient); err != nil {
		ensureCancel()
		log.Errorf(err, "failed to initialize qdrant collection")
		os.Exit(1)
	}
	ensureCancel()

	siteRepo := pgdb.NewSiteRepo(db.Pool, pgdbConv.NewSiteConverterImpl())
	artworkRepo := pgdb.NewArtworkRepo(db.Pool, pgdbConv.NewArtworkConverterImpl())
	vectorRepo := qdrantRepo.NewVectorRepo(qdrantClient.Client, cfg.Qdrant)
	embedderSvc := embedder.NewEmbedderService(cfg.Embedder, log)

	seeder := &catalogSeeder{
		siteRepo:    siteRepo,
		artworkRepo: artworkRepo,
		vectorRepo:  vectorRepo,
		embedder:    embedderSvc,
		dbPool:      db.Pool,
		httpClient:  &http.Client{Timeout: 30 * time.Second},
		logger:      log,
	}

	ctx := context.Background()
	for _, site := range famousSites {
		if err := seeder.seedSite(ctx, site); err != nil {
			log.Errorf(err, "failed to seed site %q", site.Name)
			os.Exit(1)
		}
	}

	seeded := 0
	for _, artwork := range famousArtworks {
		if err := seeder.seed(ctx, artwork); err != nil {
			log.Errorf(err, "failed to seed %q", artwork.Title)
			continue
		}
		seeded++
	}

	log.Infof("seeding complete: %d/%d artworks", seeded, len(famousArtworks))
	if seeded != len(famousArtworks) {
		os.Exit(1)
	}
}

type catalogSeeder struct {
	siteRepo    *pgdb.SiteRepo
	artworkRepo usecase.ArtworkRepository
	vectorRepo  usecase.VectorIndexRepository
	embedder    usecase.EmbeddingService
	dbPool      transaction.Transactional
	httpClient  *http.Client
	logger      logger.Logger
}

// seedSite создаёт или обновляет геозабор площадки по имени.
func (s *catalogSeeder) seedSite(ctx context.Context, seed seedSite) (err error) {
	ctx, tx, err := transaction.NewTransaction(ctx, pgx.TxOptions{}, s.dbPool)
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			if tx.IsActive() {
				tx.Rollback(ctx)
			}
		}
	}()
	ctx = context.WithValue(ctx, "tx", tx.Transaction())

	site := domain.NewSite(seed.Name, seed.Latitude, seed.Longitude, seed.RadiusMeters)
	created, err := s.siteRepo.Create(ctx, site)
	if err != nil {
		return fmt.Errorf("upsert site %q: %w", seed.Name, err)
	}

	if err = tx.Commit(ctx); err != nil {
		return err
	}

	s.logger.Infof("seeded site %q with id %d", created.Name, created.ID)
	return nil
}

// seed скачивает снимок, векторизует его и создаёт проверенную каталожную
// запись. Записи сидинга курируются вручную, поэтому is_verified=true и
// confidence_score=1.0.
func (s *catalogSeeder) seed(ctx context.Context, seed seedArtwork) (err error) {
	s.logger.Infof("seeding %q by %s", seed.Title, seed.Artist)

	image, err := s.downloadImage(ctx, seed.ImageURL)
	if err != nil {
		return err
	}

	embedding, err := s.embedder.Embed(ctx, image)
	if err != nil {
		return fmt.Errorf("embed %q: %w", seed.Title, err)
	}

	year := seed.Year
	artwork := &domain.Artwork{
		VectorID: uuid.NewString(),
		Title:    seed.Title,
		Artist:   seed.Artist,
		Description: domain.ArtworkDescription{
			Text:        seed.Description,
			Year:        &year,
			Style:       seed.Style,
			AIGenerated: false,
		},
		ImageURL:        seed.ImageURL,
		Embedding:       embedding,
		SiteID:          nil,
		IsVerified:      true,
		Source:          domain.SourceCurated,
		ConfidenceScore: 1.0,
	}

	ctx, tx, err := transaction.NewTransaction(ctx, pgx.TxOptions{}, s.dbPool)
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			if tx.IsActive() {
				tx.Rollback(ctx)
			}
		}
	}()
	ctx = context.WithValue(ctx, "tx", tx.Transaction())

	created, err := s.artworkRepo.Create(ctx, artwork)
	if err != nil {
		return fmt.Errorf("insert %q: %w", seed.Title, err)
	}

	if err = tx.Commit(ctx); err != nil {
		return err
	}

	vector := domain.Embedding{
		ID:      created.VectorID,
		Vector:  created.Embedding,
		Payload: domain.NewArtworkPayload(created.ID, created.SiteID),
	}
	if err := s.vectorRepo.Upsert(ctx, []domain.Embedding{vector}); err != nil {
		return fmt.Errorf("index %q: %w", seed.Title, err)
	}

	s.logger.Infof("seeded %q with id %d", seed.Title, created.ID)
	return nil
}

func (s *catalogSeeder) downloadImage(ctx context.Context, url string) (*usecase.ScanImage, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("download %s: %w", url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("download %s: status %d", url, resp.StatusCode)
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("download %s: %w", url, err)
	}

	mimeType := http.DetectContentType(data[:min(len(data), 512)])
	return usecase.NewScanImage(data, mimeType, int64(len(data)), "seed.jpg"), nil
}
