package model

import "time"

const (
	StatusPending = "pending"
	StatusCurated = "curated"
	StatusSkipped = "skipped"
)

type Article struct {
	ID           int64
	Title        string
	Body         string
	URL          string
	Source       string
	Publisher    string
	PublishedAt  time.Time // zero when the source gave none or it failed to parse
	FetchedAt    time.Time
	ExternalID   string
	Upvotes      int
	CommentCount int
	Status       string
}

// RankedArticle is an Article that survived curation, together with the
// cleaned text it was compared on and the score it was ranked by.
type RankedArticle struct {
	Article
	CleanedTitle string
	CleanedBody  string
	Score        float64
	Rank         int
}
