package markets

import (
	"context"
	"fmt"
	"time"

	finnhub "github.com/Finnhub-Stock-API/finnhub-go/v2"

	"marketbrief/internal/model"
)

// Instrument is one watched symbol with its display name.
type Instrument struct {
	Name   string
	Symbol string
}

// DefaultWatchlist covers the indicators the morning brief reports on.
func DefaultWatchlist() []Instrument {
	return []Instrument{
		{Name: "S&P 500", Symbol: "^GSPC"},
		{Name: "NASDAQ", Symbol: "^IXIC"},
		{Name: "DOW", Symbol: "^DJI"},
		{Name: "Dollar Index", Symbol: "DX-Y.NYB"},
		{Name: "WTI", Symbol: "CL=F"},
		{Name: "BTC", Symbol: "BINANCE:BTCUSDT"},
	}
}

type QuoteFetcher struct {
	client *finnhub.DefaultApiService
	now    func() time.Time
}

func NewQuoteFetcher(apiKey string) *QuoteFetcher {
	cfg := finnhub.NewConfiguration()
	cfg.AddDefaultHeader("X-Finnhub-Token", apiKey)
	client := finnhub.NewAPIClient(cfg).DefaultApi
	return &QuoteFetcher{client: client, now: time.Now}
}

func (f *QuoteFetcher) FetchQuote(inst Instrument) (model.MarketQuote, error) {
	res, _, err := f.client.Quote(context.Background()).Symbol(inst.Symbol).Execute()
	if err != nil {
		return model.MarketQuote{}, fmt.Errorf("quote %s: %w", inst.Symbol, err)
	}

	if res.C == nil || *res.C == 0 {
		return model.MarketQuote{}, fmt.Errorf("quote %s: no data", inst.Symbol)
	}

	q := model.MarketQuote{
		Name:       inst.Name,
		Symbol:     inst.Symbol,
		Price:      float64(*res.C),
		CapturedAt: f.now(),
	}

	if res.D != nil {
		q.ChangeAmount = float64(*res.D)
	}
	if res.Dp != nil {
		q.ChangePct = float64(*res.Dp)
	}

	return q, nil
}
