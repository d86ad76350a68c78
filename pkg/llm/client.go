package llm

import (
	"time"

	"marketbrief/internal/model"
)

// BriefInput is everything the model sees for one session: the curated
// articles and the latest market quotes.
type BriefInput struct {
	Session  string
	Articles []ArticleInput
	Quotes   []model.MarketQuote
}

type ArticleInput struct {
	Title        string
	Body         string
	Publisher    string
	PublishedAt  time.Time
	Score        float64
	Upvotes      int
	CommentCount int
}

// BriefResult is a ready-to-post Threads brief: the main post and the
// follow-up comment, each capped at 500 characters by the prompt.
type BriefResult struct {
	Headline    string
	MainText    string
	CommentText string
	ModelUsed   string
}

type BriefClient interface {
	GenerateBrief(input BriefInput) (*BriefResult, error)
}
