package news

import (
	"context"
	"strconv"
	"time"

	finnhub "github.com/Finnhub-Stock-API/finnhub-go/v2"
)

type FinnhubClient struct {
	client *finnhub.DefaultApiService
}

func NewFinnhubClient(apiKey string) *FinnhubClient {
	cfg := finnhub.NewConfiguration()
	cfg.AddDefaultHeader("X-Finnhub-Token", apiKey)
	client := finnhub.NewAPIClient(cfg).DefaultApi
	return &FinnhubClient{client: client}
}

func (c *FinnhubClient) Name() string {
	return "Finnhub"
}

func (c *FinnhubClient) Fetch(limit int) ([]Item, error) {
	res, _, err := c.client.MarketNews(context.Background()).Category("general").Execute()
	if err != nil {
		return nil, err
	}

	items := make([]Item, 0, len(res))
	for _, n := range res {
		if limit > 0 && len(items) >= limit {
			break
		}

		item := Item{Source: c.Name()}

		if n.Id != nil {
			item.ExternalID = strconv.FormatInt(*n.Id, 10)
		}
		if n.Headline != nil {
			item.Title = *n.Headline
		}
		if n.Summary != nil {
			item.Body = *n.Summary
		}
		if n.Url != nil {
			item.URL = *n.Url
		}
		if n.Datetime != nil {
			item.PublishedAt = time.Unix(*n.Datetime, 0)
		}
		if n.Source != nil {
			item.Publisher = *n.Source
		}

		items = append(items, item)
	}

	return items, nil
}
