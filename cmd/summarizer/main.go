package main

import (
	"log"
	"log/slog"
	"os"
	"strconv"
	"time"

	"marketbrief/db"
	"marketbrief/internal/model"
	"marketbrief/internal/repository"
	"marketbrief/pkg/llm"

	"github.com/joho/godotenv"
)

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

	curationRepo := repository.NewCurationRepository(db.DB)
	briefRepo := repository.NewBriefRepository(db.DB)
	marketRepo := repository.NewMarketRepository(db.DB)

	batchTag, err := db.PopFromQueue(db.SummarizeQueueKey, 5*time.Second)
	if err != nil {
		// nothing queued; fall back to the most recent curated batch
		batchTag, err = curationRepo.GetLatestBatchTag()
		if err != nil {
			log.Fatalf("error finding latest batch: %v", err)
		}
	}

	if batchTag == "" {
		slog.Info("no curated batch to summarize, exiting")
		return
	}

	ranked, err := curationRepo.GetBatch(batchTag)
	if err != nil {
		log.Fatalf("error loading curated batch: %v", err)
	}

	if len(ranked) == 0 {
		slog.Info("curated batch is empty, exiting", "batch_tag", batchTag)
		return
	}

	quotes, err := marketRepo.GetLatestQuotes()
	if err != nil {
		slog.Error("error loading market quotes, continuing without them", "error", err)
	}

	session := currentSession()

	input := llm.BriefInput{
		Session: session,
		Quotes:  quotes,
	}
	for _, ra := range ranked {
		input.Articles = append(input.Articles, llm.ArticleInput{
			Title:        ra.Title,
			Body:         ra.Body,
			Publisher:    ra.Publisher,
			PublishedAt:  ra.PublishedAt,
			Score:        ra.Score,
			Upvotes:      ra.Upvotes,
			CommentCount: ra.CommentCount,
		})
	}

	client := briefClient()

	slog.Info("generating brief", "batch_tag", batchTag, "session", session, "articles", len(input.Articles))

	result, err := client.GenerateBrief(input)
	if err != nil {
		log.Fatalf("error generating brief: %v", err)
	}

	brief := &model.Brief{
		Session:      session,
		Headline:     result.Headline,
		MainText:     result.MainText,
		CommentText:  result.CommentText,
		ArticleCount: len(ranked),
		ModelUsed:    result.ModelUsed,
	}

	err = briefRepo.SaveBrief(brief)
	if err != nil {
		log.Fatalf("error saving brief: %v", err)
	}

	err = db.PushToQueue(db.PublishQueueKey, strconv.FormatInt(brief.ID, 10))
	if err != nil {
		slog.Error("error pushing brief to publish queue", "error", err, "brief_id", brief.ID)
	}

	slog.Info("brief saved", "brief_id", brief.ID, "session", session, "article_count", brief.ArticleCount)
}

func briefClient() llm.BriefClient {
	if key := os.Getenv("ANTHROPIC_API_KEY"); key != "" {
		return llm.NewAnthropicClient(key)
	}
	return llm.NewOpenAIClient(os.Getenv("OPENAI_API_KEY"))
}

// currentSession maps Seoul local time to the posting session; the original
// schedule posts a US brief before the Korean open, a close recap in the
// afternoon and a wrap in the evening.
func currentSession() string {
	if s := os.Getenv("BRIEF_SESSION"); s != "" {
		return s
	}

	loc, err := time.LoadLocation("Asia/Seoul")
	if err != nil {
		loc = time.UTC
	}

	hour := time.Now().In(loc).Hour()
	switch {
	case hour < 12:
		return model.SessionMorning
	case hour < 18:
		return model.SessionMidday
	default:
		return model.SessionEvening
	}
}
