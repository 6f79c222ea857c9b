package e

import "fmt"

var (
	// Внутренние ошибки с транзакциями
	ErrTransactionNotFound = fmt.Errorf("transaction not found")

	// Внутренние ошибки с векторами
	ErrZeroVector      = fmt.Errorf("embedding has zero norm")
	ErrVectorDimension = fmt.Errorf("unexpected embedding dimension")
	ErrEmptyVector     = fmt.Errorf("empty embedding returned")

	// 400 Bad Request
	ErrStatusBadRequest     = fmt.Errorf("bad request")
	ErrExpectedMultipart    = fmt.Errorf("expected multipart/form-data")
	ErrImageRequired        = fmt.Errorf("image is required")
	ErrMissingFields        = fmt.Errorf("missing required fields")
	ErrInvalidCoordinates   = fmt.Errorf("latitude must be in [-90, 90] and longitude in [-180, 180]")
	ErrFileTooLarge         = fmt.Errorf("file is too large")
	ErrUnsupportedMediaType = fmt.Errorf("unsupported media type")

	// 404 Not Found
	ErrArtworkNotFound = fmt.Errorf("artwork not found")

	// 5xx
	ErrInternalServerError  = fmt.Errorf("internal server error")
	ErrEmbeddingUnavailable = fmt.Errorf("embedding service unavailable")
	ErrAnalysisUnavailable  = fmt.Errorf("vision analysis service unavailable")
	ErrIncorrectEnvVariable = fmt.Errorf("incorrect environment variable")
)

// Wrap оборачивает ошибку
func Wrap(msg string, err error) error {
	return fmt.Errorf("%s: %w", msg, err)
}
