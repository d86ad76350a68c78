package main

import (
	"log"
	"log/slog"
	"os"
	"strings"

	"marketbrief/db"
	"marketbrief/internal/model"
	"marketbrief/internal/repository"
	"marketbrief/pkg/news"

	"github.com/joho/godotenv"
)

var defaultKeywords = []string{"S&P500", "KOSPI", "FOMC", "AI", "Bitcoin", "Tesla", "Apple", "NVIDIA"}

func main() {

	godotenv.Load()

	slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stdout, nil)))

	err := db.Connect()
	if err != nil {
		log.Fatalf("error connecting to DB: %v", err)
	}
	defer db.Close()

	var clients []news.Client
	if key := os.Getenv("FINNHUB_API_KEY"); key != "" {
		clients = append(clients, news.NewFinnhubClient(key))
	}
	if key := os.Getenv("NEWS_API_KEY"); key != "" {
		clients = append(clients, news.NewNewsAPIClient(key))
	}
	clients = append(clients, news.NewRedditClient(keywordsFromEnv(), os.Getenv("REDDIT_USER_AGENT")))

	repo := repository.NewArticleRepository(db.DB)

	for _, client := range clients {
		source := client.Name()

		items, err := client.Fetch(50)
		if err != nil {
			slog.Error("error fetching articles", "source", source, "error", err)
			continue
		}

		var saved, duplicated, errors int

		for _, item := range items {
			article := model.Article{
				Title:        item.Title,
				Body:         item.Body,
				URL:          item.URL,
				Source:       item.Source,
				Publisher:    item.Publisher,
				PublishedAt:  item.PublishedAt,
				ExternalID:   item.ExternalID,
				Upvotes:      item.Upvotes,
				CommentCount: item.CommentCount,
			}

			success, err := repo.SaveArticle(&article)
			if err != nil {
				slog.Error("error saving article", "source", source, "error", err)
				errors++
				continue
			}

			if !success {
				duplicated++
				continue
			}

			saved++
		}

		slog.Info("fetch complete", "source", source, "saved", saved, "duplicated", duplicated, "errors", errors)
	}
}

func keywordsFromEnv() []string {
	raw := os.Getenv("KEYWORDS")
	if raw == "" {
		return defaultKeywords
	}

	var keywords []string
	for _, k := range strings.Split(raw, ",") {
		if k = strings.TrimSpace(k); k != "" {
			keywords = append(keywords, k)
		}
	}
	if len(keywords) == 0 {
		return defaultKeywords
	}
	return keywords
}
