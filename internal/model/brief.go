package model

import "time"

const (
	SessionMorning = "morning"
	SessionMidday  = "midday"
	SessionEvening = "evening"
)

type Brief struct {
	ID            int64
	Session       string
	Headline      string
	MainText      string
	CommentText   string
	ArticleCount  int
	ModelUsed     string
	CreatedAt     time.Time
	PostedAt      time.Time
	ThreadsPostID string
}

type MarketQuote struct {
	ID           int64
	Name         string
	Symbol       string
	Price        float64
	ChangePct    float64
	ChangeAmount float64
	CapturedAt   time.Time
}
