package news

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"
)

var redditSubreddits = []string{"investing", "stocks", "wallstreetbets", "cryptocurrency", "economics"}

// RedditClient searches finance subreddits for the configured keywords via
// the public JSON API. No OAuth; the endpoint only needs a User-Agent.
type RedditClient struct {
	keywords   []string
	userAgent  string
	httpClient *http.Client
}

func NewRedditClient(keywords []string, userAgent string) *RedditClient {
	if userAgent == "" {
		userAgent = "marketbrief/1.0"
	}
	return &RedditClient{
		keywords:   keywords,
		userAgent:  userAgent,
		httpClient: &http.Client{Timeout: 30 * time.Second},
	}
}

func (c *RedditClient) Name() string {
	return "Reddit"
}

func (c *RedditClient) Fetch(limit int) ([]Item, error) {
	var items []Item
	seen := make(map[string]bool)

	for _, sub := range redditSubreddits {
		for _, keyword := range c.keywords {
			posts, err := c.search(sub, keyword, limit)
			if err != nil {
				return nil, err
			}

			for _, p := range posts {
				if seen[p.ExternalID] {
					continue
				}
				seen[p.ExternalID] = true
				items = append(items, p)
			}
		}
	}

	return items, nil
}

func (c *RedditClient) search(subreddit, keyword string, limit int) ([]Item, error) {
	endpoint := fmt.Sprintf(
		"https://www.reddit.com/r/%s/search.json?q=%s&sort=top&t=day&restrict_sr=1&limit=%d",
		subreddit, url.QueryEscape(keyword), limit,
	)

	req, err := http.NewRequest(http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("User-Agent", c.userAgent)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("reddit fetch r/%s: %w", subreddit, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("reddit fetch r/%s: status %d", subreddit, resp.StatusCode)
	}

	var raw redditListing
	if err := json.NewDecoder(resp.Body).Decode(&raw); err != nil {
		return nil, fmt.Errorf("reddit decode r/%s: %w", subreddit, err)
	}

	items := make([]Item, 0, len(raw.Data.Children))
	for _, child := range raw.Data.Children {
		p := child.Data

		var publishedAt time.Time
		if p.CreatedUTC > 0 {
			publishedAt = time.Unix(int64(p.CreatedUTC), 0)
		}

		items = append(items, Item{
			ExternalID:   p.ID,
			Title:        p.Title,
			Body:         p.Selftext,
			URL:          "https://www.reddit.com" + p.Permalink,
			Publisher:    "r/" + p.Subreddit,
			PublishedAt:  publishedAt,
			Upvotes:      p.Score,
			CommentCount: p.NumComments,
			Source:       c.Name(),
		})
	}

	return items, nil
}

type redditListing struct {
	Data struct {
		Children []struct {
			Data redditPost `json:"data"`
		} `json:"children"`
	} `json:"data"`
}

type redditPost struct {
	ID          string  `json:"id"`
	Title       string  `json:"title"`
	Selftext    string  `json:"selftext"`
	Permalink   string  `json:"permalink"`
	Subreddit   string  `json:"subreddit"`
	Score       int     `json:"score"`
	NumComments int     `json:"num_comments"`
	CreatedUTC  float64 `json:"created_utc"`
}
