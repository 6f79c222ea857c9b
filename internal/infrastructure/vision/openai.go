package vision

import (
	"context"
	_ "embed"
	"encoding/base64"
	"encoding/json"
	"fmt"

	"github.com/artlens-app/go-backend/internal/cfg"
	"github.com/artlens-app/go-backend/internal/usecase"
	"github.com/artlens-app/go-backend/pkg/e"
	"github.com/artlens-app/go-backend/pkg/logger"
	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
	"github.com/openai/openai-go/shared"
)

//go:embed prompts/artwork_analysis.txt
var artworkAnalysisPrompt string

// OpenAIVision анализирует несовпавшие снимки через OpenAI Vision.
// Модель обязана вернуть JSON-объект; непарсибельный ответ возвращается
// модели вместе с текстом ошибки на исправление, число попыток ограничено.
type OpenAIVision struct {
	client     *openai.Client
	model      string
	maxRetries int
	logger     logger.Logger
}

func NewOpenAIVision(cfg *cfg.VisionCfg, logger logger.Logger) *OpenAIVision {
	client := openai.NewClient(option.WithAPIKey(cfg.APIKey))
	return &OpenAIVision{
		client:     &client,
		model:      cfg.Model,
		maxRetries: cfg.MaxRetries,
		logger:     logger,
	}
}

// visionResponse — JSON-контракт ответа модели.
type visionResponse struct {
	IsArtwork   bool   `json:"is_artwork"`
	Message     string `json:"message"`
	Title       string `json:"title"`
	Artist      string `json:"artist"`
	Description string `json:"description"`
	Year        *int   `json:"year"`
	Style       string `json:"style"`
	Confidence  string `json:"confidence"`
}

// Analyze классифицирует изображение и возвращает размеченную оценку.
func (v *OpenAIVision) Analyze(ctx context.Context, image *usecase.ScanImage) (*usecase.AnalysisResult, error) {
	const op = "OpenAIVision.Analyze"

	base64Image := base64.StdEncoding.EncodeToString(image.Data)
	imageURL := fmt.Sprintf("data:%s;base64,%s", image.MimeType, base64Image)

	messages := []openai.ChatCompletionMessageParamUnion{
		{
			OfSystem: &openai.ChatCompletionSystemMessageParam{
				Content: openai.ChatCompletionSystemMessageParamContentUnion{
					OfString: openai.String(artworkAnalysisPrompt),
				},
			},
		},
		{
			OfUser: &openai.ChatCompletionUserMessageParam{
				Content: openai.ChatCompletionUserMessageParamContentUnion{
					OfArrayOfContentParts: []openai.ChatCompletionContentPartUnionParam{
						openai.TextContentPart("Analyze this image."),
						openai.ImageContentPart(openai.ChatCompletionContentPartImageImageURLParam{
							URL:    imageURL,
							Detail: "low",
						}),
					},
				},
			},
		},
	}

	var lastErr error
	var lastResponse string

	for attempt := 0; attempt < v.maxRetries; attempt++ {
		resp, err := v.client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
			Model:    v.model,
			Messages: messages,
			ResponseFormat: openai.ChatCompletionNewParamsResponseFormatUnion{
				OfJSONObject: &shared.ResponseFormatJSONObjectParam{},
			},
			MaxTokens: openai.Int(500),
		})
		if err != nil {
			return nil, e.Wrap(op, fmt.Errorf("OpenAI API error: %w", err))
		}

		if len(resp.Choices) == 0 {
			return nil, e.Wrap(op, fmt.Errorf("no response from OpenAI"))
		}

		content := resp.Choices[0].Message.Content
		lastResponse = content

		var parsed visionResponse
		if err := json.Unmarshal([]byte(content), &parsed); err != nil {
			lastErr = err
			v.logger.Warnf("vision response is not valid JSON (attempt %d): %v", attempt+1, err)

			// Возвращаем модели её ответ вместе с ошибкой парсинга
			messages = append(messages,
				openai.ChatCompletionMessageParamUnion{
					OfAssistant: &openai.ChatCompletionAssistantMessageParam{
						Content: openai.ChatCompletionAssistantMessageParamContentUnion{
							OfString: openai.String(content),
						},
					},
				},
				openai.ChatCompletionMessageParamUnion{
					OfUser: &openai.ChatCompletionUserMessageParam{
						Content: openai.ChatCompletionUserMessageParamContentUnion{
							OfString: openai.String(fmt.Sprintf("JSON parse error: %v. Please fix the JSON and try again. Remember to escape quotes inside strings with backslash.", err)),
						},
					},
				},
			)
			continue
		}

		return &usecase.AnalysisResult{
			IsArtwork:   parsed.IsArtwork,
			Message:     parsed.Message,
			Title:       parsed.Title,
			Artist:      parsed.Artist,
			Description: parsed.Description,
			Year:        parsed.Year,
			Style:       parsed.Style,
			Confidence:  parsed.Confidence,
		}, nil
	}

	return nil, e.Wrap(op, fmt.Errorf("failed to parse analysis JSON after %d attempts: %w (last response: %s)", v.maxRetries, lastErr, lastResponse))
}
