package main

import (
	"log"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"marketbrief/db"
	"marketbrief/internal/ranking"
	"marketbrief/internal/repository"

	"github.com/joho/godotenv"
)

const pendingBatchLimit = 200

var defaultKeywords = []string{"S&P500", "KOSPI", "FOMC", "AI", "Bitcoin", "Tesla", "Apple", "NVIDIA"}

func main() {

	godotenv.Load()

	slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stdout, nil)))

	err := db.Connect()
	if err != nil {
		log.Fatalf("error connecting to DB: %v", err)
	}
	defer db.Close()

	err = db.ConnectRedis()
	if err != nil {
		log.Fatalf("error connecting to Redis: %v", err)
	}
	defer db.CloseRedis()

	pipeline, err := ranking.New(configFromEnv())
	if err != nil {
		log.Fatalf("invalid curation config: %v", err)
	}

	articleRepo := repository.NewArticleRepository(db.DB)
	curationRepo := repository.NewCurationRepository(db.DB)

	pending, err := articleRepo.GetPendingArticles(pendingBatchLimit)
	if err != nil {
		log.Fatalf("error loading pending articles: %v", err)
	}

	if len(pending) == 0 {
		slog.Info("no pending articles to curate, exiting")
		return
	}

	ranked := pipeline.Rank(pending)

	selected := make(map[int64]bool, len(ranked))
	for _, ra := range ranked {
		selected[ra.ID] = true
	}

	var skippedIDs []int64
	for _, a := range pending {
		if !selected[a.ID] {
			skippedIDs = append(skippedIDs, a.ID)
		}
	}

	batchTag := time.Now().UTC().Format("2006-01-02-1504")

	err = curationRepo.SaveBatch(batchTag, ranked, skippedIDs)
	if err != nil {
		log.Fatalf("error saving curated batch: %v", err)
	}

	slog.Info("curation complete",
		"batch_tag", batchTag,
		"pending", len(pending),
		"selected", len(ranked),
		"skipped", len(skippedIDs))

	if len(ranked) == 0 {
		return
	}

	err = db.PushToQueue(db.SummarizeQueueKey, batchTag)
	if err != nil {
		slog.Error("error pushing batch to summarize queue", "error", err, "batch_tag", batchTag)
	}
}

func configFromEnv() ranking.Config {
	return ranking.Config{
		MinLength: intFromEnv("MIN_LENGTH", 200),
		Threshold: floatFromEnv("SIMILARITY_THRESHOLD", 0.8),
		TopK:      intFromEnv("TOP_K", 5),
		Keywords:  keywordsFromEnv(),
		TitleBand: ranking.Band{
			Min: intFromEnv("TITLE_BAND_MIN", 20),
			Max: intFromEnv("TITLE_BAND_MAX", 100),
		},
		BodyBand: ranking.Band{
			Min: intFromEnv("BODY_BAND_MIN", 200),
			Max: intFromEnv("BODY_BAND_MAX", 1000),
		},
	}
}

func intFromEnv(key string, fallback int) int {
	raw := os.Getenv(key)
	if raw == "" {
		return fallback
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		log.Fatalf("invalid %s: %q", key, raw)
	}
	return v
}

func floatFromEnv(key string, fallback float64) float64 {
	raw := os.Getenv(key)
	if raw == "" {
		return fallback
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		log.Fatalf("invalid %s: %q", key, raw)
	}
	return v
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
