package converter

// ArtworkInfoRedisModel — сериализуемая карточка произведения в кэше.
type ArtworkInfoRedisModel struct {
	ID              int64   `json:"id"`
	Title           string  `json:"title"`
	Artist          string  `json:"artist"`
	DescriptionText string  `json:"description"`
	DescriptionYear *int    `json:"year,omitempty"`
	Style           string  `json:"style,omitempty"`
	AIGenerated     bool    `json:"ai_generated"`
	ImageURL        string  `json:"image_url"`
	IsVerified      bool    `json:"is_verified"`
	Source          string  `json:"source"`
	ConfidenceScore float64 `json:"confidence_score"`
}

// SiteRedisModel — сериализуемая площадка в кэше списка геозаборов.
type SiteRedisModel struct {
	ID           int64   `json:"id"`
	Name         string  `json:"name"`
	Latitude     float64 `json:"latitude"`
	Longitude    float64 `json:"longitude"`
	RadiusMeters float64 `json:"radius_meters"`
	IsActive     bool    `json:"is_active"`
}
