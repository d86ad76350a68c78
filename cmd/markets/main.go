package main

import (
	"log"
	"log/slog"
	"os"

	"marketbrief/db"
	"marketbrief/internal/repository"
	"marketbrief/pkg/markets"

	"github.com/joho/godotenv"
)

func main() {

	godotenv.Load()

	slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stdout, nil)))

	apiKey := os.Getenv("FINNHUB_API_KEY")
	if apiKey == "" {
		log.Fatal("FINNHUB_API_KEY is not set")
	}

	err := db.Connect()
	if err != nil {
		log.Fatalf("error connecting to DB: %v", err)
	}
	defer db.Close()

	fetcher := markets.NewQuoteFetcher(apiKey)
	repo := repository.NewMarketRepository(db.DB)

	var saved, errors int

	for _, inst := range markets.DefaultWatchlist() {
		quote, err := fetcher.FetchQuote(inst)
		if err != nil {
			slog.Error("error fetching quote", "symbol", inst.Symbol, "error", err)
			errors++
			continue
		}

		err = repo.SaveQuote(&quote)
		if err != nil {
			slog.Error("error saving quote", "symbol", inst.Symbol, "error", err)
			errors++
			continue
		}

		slog.Info("quote captured", "name", quote.Name, "price", quote.Price, "change_pct", quote.ChangePct)
		saved++
	}

	slog.Info("market capture complete", "saved", saved, "errors", errors)
}
