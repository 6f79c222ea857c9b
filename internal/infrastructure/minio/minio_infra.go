package minio

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/artlens-app/go-backend/internal/cfg"
	"github.com/artlens-app/go-backend/internal/domain"
	"github.com/artlens-app/go-backend/internal/infrastructure"
	"github.com/artlens-app/go-backend/internal/usecase"
	"github.com/artlens-app/go-backend/pkg/e"
	"github.com/artlens-app/go-backend/pkg/jitter"
	"github.com/artlens-app/go-backend/pkg/logger"

	"github.com/google/uuid"
)

// MinioInfrastructure управляет загрузкой и очисткой снимков сканирований в MinIO.
type MinioInfrastructure struct {
	minioRepo   usecase.ImageRepository
	cfg         *cfg.MinIOCfg
	logger      logger.Logger
	shutdownCtx context.Context
	wg          sync.WaitGroup
}

func NewMinioInfrastructure(minioRepo usecase.ImageRepository, cfg *cfg.MinIOCfg, logger logger.Logger, shutdownCtx context.Context) *MinioInfrastructure {
	return &MinioInfrastructure{
		minioRepo:   minioRepo,
		cfg:         cfg,
		logger:      logger,
		shutdownCtx: shutdownCtx,
		wg:          sync.WaitGroup{},
	}
}

// UploadScanImage загружает снимок скана и возвращает ключ объекта вместе
// с публичной ссылкой. Ключи группируются по месяцам: scans/YYYY/MM/<uuid>.<ext>.
func (m *MinioInfrastructure) UploadScanImage(ctx context.Context, req *usecase.UploadScanImageReq) (*usecase.UploadScanImageRes, error) {
	const op = "MinioInfrastructure.UploadScanImage"

	imageID := uuid.NewString()
	ext, err := infrastructure.GetExtensionFromMIME(req.Image.MimeType)
	if err != nil {
		return nil, e.Wrap(op, fmt.Errorf("invalid mime type %s for %s: %w", req.Image.MimeType, req.Image.Name, err))
	}

	now := time.Now().UTC()
	objKey := fmt.Sprintf("scans/%04d/%02d/%s.%s", now.Year(), now.Month(), imageID, ext)
	newImage := domain.NewImage(imageID, m.cfg.BucketName, objKey, req.Image.Data, &req.Image.Size, &req.Image.MimeType)

	key, err := m.minioRepo.Upload(ctx, newImage)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	return usecase.NewUploadScanImageRes(key, m.publicURL(key)), nil
}

// CleanupImage запускает фоновое удаление объекта по ключу.
func (m *MinioInfrastructure) CleanupImage(key string) {
	if key == "" {
		return
	}
	m.wg.Add(1)
	go m.cleanupUploadedKey(key)
}

// cleanupUploadedKey удаляет объект из MinIO с экспоненциальной задержкой и jitter.
func (m *MinioInfrastructure) cleanupUploadedKey(key string) {
	defer m.wg.Done()
	const op = "MinioInfrastructure.cleanupUploadedKey"

	ctx, cancel := context.WithTimeout(m.shutdownCtx, 30*time.Second)
	defer cancel()

	for attempt := 0; attempt < 3; attempt++ {
		if err := m.minioRepo.Delete(ctx, key); err == nil {
			return
		}

		select {
		case <-ctx.Done():
			m.logger.Warnf("cleanup interrupted by shutdown, key=%v", key)
			return
		default:
		}

		if attempt < 2 {
			sleepTime := jitter.ExponentialBackoff(time.Second, 10*time.Second, attempt, jitter.DefaultJitter)

			select {
			case <-time.After(sleepTime):
			case <-ctx.Done():
				m.logger.Warnf("cleanup interrupted by shutdown during backoff, key=%v", key)
				return
			}
		}
	}

	m.logger.Warnf("%s: giving up on key %s after retries", op, key)
}

// WaitForCleanup ожидает завершения всех фоновых задач очистки с учётом таймаута завершения приложения.
func (m *MinioInfrastructure) WaitForCleanup(shutdownTimeoutCtx context.Context) error {
	done := make(chan struct{})
	go func() {
		m.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		return nil
	case <-shutdownTimeoutCtx.Done():
		return fmt.Errorf("minio cleanup timeout during shutdown: %w", shutdownTimeoutCtx.Err())
	}
}

// publicURL собирает публичную ссылку на объект из базового URL конфигурации.
func (m *MinioInfrastructure) publicURL(key string) string {
	base := strings.TrimSuffix(m.cfg.PublicBaseURL, "/")
	return fmt.Sprintf("%s/%s/%s", base, m.cfg.BucketName, key)
}
