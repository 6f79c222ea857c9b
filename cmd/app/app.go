package main

import (
	"github.com/artlens-app/go-backend/internal/app"
	"github.com/joho/godotenv"
)

//	@title			ArtLens API
//	@version		1.0.0
//	@description	Идентификация произведений искусства по снимку и геопозиции.
//	@BasePath		/api/v1
func main() {
	// .env опционален: в контейнере переменные приходят из окружения.
	_ = godotenv.Load()

	app.Run()
}
