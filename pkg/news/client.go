package news

import "time"

type Item struct {
	ExternalID   string
	Title        string
	Body         string
	URL          string
	Source       string
	Publisher    string
	PublishedAt  time.Time
	Upvotes      int
	CommentCount int
}

type Client interface {
	Fetch(limit int) ([]Item, error)
	Name() string
}
