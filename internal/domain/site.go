package domain

import "time"

// Site описывает площадку (музей, галерею) с круговым геозабором.
// Записи создаются и сопровождаются внешним административным процессом,
// ядро сканирования читает их только на время одного запроса.
type Site struct {
	ID           int64
	Name         string
	Latitude     float64
	Longitude    float64
	RadiusMeters float64
	CreatedAt    time.Time
	UpdatedAt    *time.Time
	IsActive     bool
}

func NewSite(name string, lat, lng, radiusMeters float64) *Site {
	return &Site{
		Name:         name,
		Latitude:     lat,
		Longitude:    lng,
		RadiusMeters: radiusMeters,
	}
}
