package usecase

import "context"

// EmbeddingService — внешний сервис векторизации изображений (CLIP).
// Единственная жёсткая зависимость пайплайна: его отказ прерывает скан.
type EmbeddingService interface {
	Embed(ctx context.Context, image *ScanImage) ([]float32, error)
}

// VisionAnalysisService — внешний vision-анализ несовпавших изображений.
type VisionAnalysisService interface {
	Analyze(ctx context.Context, image *ScanImage) (*AnalysisResult, error)
}

type ImagesInfra interface {
	UploadScanImage(ctx context.Context, req *UploadScanImageReq) (*UploadScanImageRes, error)
	CleanupImage(key string)
}

type MessageProducer interface {
	WriteRawMessage(ctx context.Context, req *WriteRawMessageReq) error
}
