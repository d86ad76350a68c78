package main

import (
	"log"
	"log/slog"
	"os"
	"strconv"
	"time"

	"marketbrief/db"
	"marketbrief/internal/repository"
	"marketbrief/pkg/social"

	"github.com/joho/godotenv"
)

func main() {

	godotenv.Load()

	slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stdout, nil)))

	accessToken := os.Getenv("THREADS_ACCESS_TOKEN")
	userID := os.Getenv("THREADS_USER_ID")
	if accessToken == "" || userID == "" {
		log.Fatal("THREADS_ACCESS_TOKEN and THREADS_USER_ID must be set")
	}

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

	briefRepo := repository.NewBriefRepository(db.DB)
	threads := social.NewThreadsClient(accessToken, userID)

	for {
		id, err := db.PopFromQueue(db.PublishQueueKey, 10*time.Second)
		if err != nil {
			slog.Info("publish queue drained, exiting")
			break
		}

		briefID, err := strconv.ParseInt(id, 10, 64)
		if err != nil {
			slog.Error("invalid brief id in queue", "id", id, "error", err)
			continue
		}

		brief, err := briefRepo.GetBriefByID(briefID)
		if err != nil {
			slog.Error("error loading brief", "error", err, "brief_id", briefID)
			continue
		}

		if brief == nil {
			slog.Warn("brief not found", "brief_id", briefID)
			continue
		}

		if brief.ThreadsPostID != "" {
			slog.Warn("brief already posted, skipping", "brief_id", briefID, "post_id", brief.ThreadsPostID)
			continue
		}

		postID, err := threads.PostThread(brief.MainText, brief.CommentText)
		if err != nil {
			slog.Error("error posting brief", "error", err, "brief_id", briefID)
			db.PushToQueue(db.DeadLetterKey, id)
			continue
		}

		err = briefRepo.MarkPosted(briefID, postID, time.Now())
		if err != nil {
			slog.Error("error marking brief posted", "error", err, "brief_id", briefID)
			continue
		}

		slog.Info("brief published", "brief_id", briefID, "post_id", postID)
	}
}
