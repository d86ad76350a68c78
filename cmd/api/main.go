package main

import (
	"log"
	"log/slog"
	"os"

	"marketbrief/db"
	"marketbrief/internal/handler"
	"marketbrief/internal/repository"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func main() {

	godotenv.Load()

	err := db.Connect()
	if err != nil {
		log.Fatalf("error connecting to DB: %v", err)
	}
	defer db.Close()

	curationRepo := repository.NewCurationRepository(db.DB)
	articleRepo := repository.NewArticleRepository(db.DB)
	feedHandler := handler.NewFeedHandler(curationRepo, articleRepo)

	briefRepo := repository.NewBriefRepository(db.DB)
	marketRepo := repository.NewMarketRepository(db.DB)
	briefHandler := handler.NewBriefHandler(briefRepo, marketRepo)

	r := gin.Default()

	allowedOrigins := []string{"http://localhost:3000"}

	if frontendURL := os.Getenv("FRONTEND_URL"); frontendURL != "" {
		allowedOrigins = append(allowedOrigins, frontendURL)
	}

	slog.Info("AllowOrigins URL:", "urls", allowedOrigins)

	r.Use(cors.New(cors.Config{
		AllowOrigins: allowedOrigins,
		AllowMethods: []string{"GET", "OPTIONS"},
		AllowHeaders: []string{"Origin", "Content-Type"},
	}))

	r.GET("/feed", feedHandler.GetFeed)
	r.GET("/feed/:id", feedHandler.GetArticle)
	r.GET("/briefs/latest", briefHandler.GetLatestBrief)
	r.GET("/briefs", briefHandler.GetBriefs)
	r.GET("/quotes", briefHandler.GetQuotes)
	r.GET("/health", feedHandler.GetHealth)

	err = r.Run(":8080")
	if err != nil {
		log.Fatalf("error starting server: %v", err)
	}
}
