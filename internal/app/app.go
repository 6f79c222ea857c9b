package app

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	config "github.com/artlens-app/go-backend/internal/cfg"
	v1Http "github.com/artlens-app/go-backend/internal/delivery/v1/http"
	"github.com/artlens-app/go-backend/internal/infrastructure/embedder"
	"github.com/artlens-app/go-backend/internal/infrastructure/kafka"
	minioInfra "github.com/artlens-app/go-backend/internal/infrastructure/minio"
	"github.com/artlens-app/go-backend/internal/infrastructure/vision"
	s3Repo "github.com/artlens-app/go-backend/internal/repository/minio"
	"github.com/artlens-app/go-backend/internal/repository/pgdb"
	pgdbConv "github.com/artlens-app/go-backend/internal/repository/pgdb/converter/generated"
	qdrantRepo "github.com/artlens-app/go-backend/internal/repository/qdrant"
	"github.com/artlens-app/go-backend/internal/repository/redis"
	redisConv "github.com/artlens-app/go-backend/internal/repository/redis/converter/generated"
	"github.com/artlens-app/go-backend/internal/usecase"
	"github.com/artlens-app/go-backend/pkg/clients"
	"github.com/artlens-app/go-backend/pkg/closer"
	"github.com/artlens-app/go-backend/pkg/e"
	"github.com/artlens-app/go-backend/pkg/logger"
	"github.com/artlens-app/go-backend/pkg/postgres"
	"github.com/go-chi/chi/v5"
	"github.com/jimlawless/whereami"
)

func Run() {
	logger := logger.NewSlogLogger()

	cfg, err := config.Load(logger)
	if err != nil {
		logger.Errorf(err, "failed to load config")
		os.Exit(1)
	}

	rootCtx, rootCancel := context.WithCancel(context.Background())
	defer rootCancel()

	c := closer.NewCloser(2 * time.Second)

	db, err := initPGDB(logger, cfg)
	if err != nil {
		logger.Errorf(err, "failed to initialize database")
		os.Exit(1)
	}
	c.Add(func(_ context.Context) error {
		db.Close()
		return nil
	})

	artworkConv := pgdbConv.NewArtworkConverterImpl()
	siteConv := pgdbConv.NewSiteConverterImpl()
	outboxConv := pgdbConv.NewOutboxEventConverterImpl()
	infoConv := redisConv.NewArtworkInfoConverterImpl()
	siteCacheConv := redisConv.NewSiteConverterImpl()

	artworkRepo := pgdb.NewArtworkRepo(db.Pool, artworkConv)
	siteRepo := pgdb.NewSiteRepo(db.Pool, siteConv)
	scanLogRepo := pgdb.NewScanLogRepo(db.Pool)
	issueRepo := pgdb.NewIssueRepo(db.Pool)
	outboxRepo := pgdb.NewOutboxEventRepo(db.Pool, outboxConv)

	minioClient, err := clients.NewMinIOClient(cfg)
	if err != nil {
		logger.Errorf(err, "failed to initialize minio client")
		os.Exit(1)
	}

	minioCtx, minioCancel := context.WithTimeout(context.Background(), 10*time.Second)
	if err := clients.EnsureBucket(minioCtx, minioClient, cfg.Minio.BucketName); err != nil {
		minioCancel()
		logger.Errorf(err, "failed to initialize MinIO bucket")
		os.Exit(1)
	}
	minioCancel()

	imageRepo := s3Repo.NewImageRepo(minioClient, cfg.Minio)
	imagesInfra := minioInfra.NewMinioInfrastructure(imageRepo, cfg.Minio, logger, rootCtx)
	c.Add(imagesInfra.WaitForCleanup)

	qdrantClient, err := clients.NewQdrantClient(cfg.Qdrant)
	if err != nil {
		logger.Errorf(err, "failed to initialize qdrant")
		os.Exit(1)
	}
	qdrantCtx, qdrantCancel := context.WithTimeout(context.Background(), 10*time.Second)
	if err := clients.EnsureCollection(qdrantCtx, qdrantClient); err != nil {
		qdrantCancel()
		logger.Errorf(err, "failed to initialize qdrant collection")
		os.Exit(1)
	}
	qdrantCancel()
	c.Add(func(_ context.Context) error {
		return qdrantClient.Client.Close()
	})

	vectorRepo := qdrantRepo.NewVectorRepo(qdrantClient.Client, cfg.Qdrant)

	redisClient := clients.NewRedisClient(cfg.Redis)
	redisCtx, redisCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer redisCancel()
	if err := redisClient.Ping(redisCtx); err != nil {
		logger.Errorf(err, "failed to connect to redis")
		os.Exit(1)
	}
	c.Add(func(_ context.Context) error {
		return redisClient.Client.Close()
	})
	cacheRepo := redis.NewCacheRepo(redisClient, infoConv, siteCacheConv, cfg.Redis, logger)

	embedderSvc := embedder.NewEmbedderService(cfg.Embedder, logger)
	visionSvc := vision.NewOpenAIVision(cfg.Vision, logger)

	producer, err := kafka.NewProducer(logger, cfg.Kafka)
	if err != nil {
		logger.Errorf(err, "failed to initialize kafka producer")
		os.Exit(1)
	}
	if err := producer.EnsureTopic(10 * time.Second); err != nil {
		logger.Errorf(err, "failed to ensure kafka topic")
		os.Exit(1)
	}
	c.Add(func(_ context.Context) error {
		return producer.Close()
	})

	outboxWorker := kafka.NewOutboxWorker(outboxRepo, logger, producer, db.Dsn)
	outboxWorker.Start(rootCtx)
	c.Add(func(_ context.Context) error {
		outboxWorker.Stop()
		return nil
	})

	catalogWriter := usecase.NewTxCatalogWriter(artworkRepo, outboxRepo, vectorRepo, db.Pool, logger)
	geoResolver := usecase.NewGeofenceResolver(siteRepo, cacheRepo, logger)
	matcher := usecase.NewSimilarityMatcher(vectorRepo, artworkRepo, cfg.Scan.DistanceThreshold, logger)
	decision := usecase.NewCatalogDecisionEngine(visionSvc, catalogWriter, logger)

	scanUC := usecase.NewScanUC(
		geoResolver,
		matcher,
		decision,
		embedderSvc,
		imagesInfra,
		artworkRepo,
		scanLogRepo,
		issueRepo,
		cacheRepo,
		cfg.Scan,
		logger,
	)

	r := chi.NewRouter()
	router := v1Http.NewRouter(r, logger)
	router.Init(scanUC)

	httpSrv := v1Http.NewServer(r, cfg.Http)

	errCh := make(chan error, 1)
	go func() {
		logger.Infof("HTTP server started on port %s", cfg.Http.Port)
		if err := httpSrv.Run(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Errorf(err, "HTTP server failed: %v", err)
			errCh <- err
		}
	}()

	// === Ожидание сигнала или ошибки ===
	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	var appErr error
	select {
	case appErr = <-errCh:
		logger.Errorf(appErr, "HTTP server fatal error")
	case <-shutdown:
		logger.Infof("Received shutdown signal, stopping gracefully...")
	}

	// === Graceful shutdown ===
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer shutdownCancel()

	if err := httpSrv.Stop(shutdownCtx); err != nil {
		logger.Errorf(err, "HTTP server shutdown error")
	} else {
		logger.Infof("HTTP server stopped")
	}

	rootCancel()

	if err := c.Close(shutdownCtx); err != nil {
		logger.Errorf(err, "resource shutdown error")
	}

	logger.Infof("Application shutdown complete")
	if appErr != nil {
		os.Exit(1)
	}
}

func initPGDB(logger logger.Logger, cfg *config.Config) (*postgres.PgDatabase, error) {
	db, err := postgres.Connect(cfg.Db)
	if err != nil {
		logger.Errorf(err, "failed to connect to database")
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	if err := db.RunMigrations(logger); err != nil {
		logger.Errorf(err, "failed to run migrations")
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	if err := db.Ping(); err != nil {
		logger.Errorf(err, "failed to ping database")
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return db, nil
}
