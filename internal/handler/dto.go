package handler

type RankedArticleResponse struct {
	ID           int64   `json:"id"`
	Title        string  `json:"title"`
	Body         string  `json:"body"`
	URL          string  `json:"url"`
	Source       string  `json:"source"`
	Publisher    string  `json:"publisher"`
	PublishedAt  string  `json:"published_at,omitempty"`
	Score        float64 `json:"score"`
	Rank         int     `json:"rank"`
	Upvotes      int     `json:"upvotes,omitempty"`
	CommentCount int     `json:"comment_count,omitempty"`
}

type ArticleResponse struct {
	ID           int64  `json:"id"`
	Title        string `json:"title"`
	Body         string `json:"body"`
	URL          string `json:"url"`
	Source       string `json:"source"`
	Publisher    string `json:"publisher"`
	PublishedAt  string `json:"published_at,omitempty"`
	FetchedAt    string `json:"fetched_at"`
	Status       string `json:"status"`
	Upvotes      int    `json:"upvotes,omitempty"`
	CommentCount int    `json:"comment_count,omitempty"`
}

type FeedResponse struct {
	Articles []RankedArticleResponse `json:"articles"`
	Total    int                     `json:"total"`
	Limit    int                     `json:"limit"`
	Offset   int                     `json:"offset"`
}

type BriefResponse struct {
	ID            int64  `json:"id"`
	Session       string `json:"session"`
	Headline      string `json:"headline"`
	MainText      string `json:"main_text"`
	CommentText   string `json:"comment_text"`
	ArticleCount  int    `json:"article_count"`
	ModelUsed     string `json:"model_used"`
	CreatedAt     string `json:"created_at"`
	PostedAt      string `json:"posted_at,omitempty"`
	ThreadsPostID string `json:"threads_post_id,omitempty"`
}

type BriefListResponse struct {
	Briefs []BriefResponse `json:"briefs"`
	Total  int             `json:"total"`
	Limit  int             `json:"limit"`
	Offset int             `json:"offset"`
}

type QuoteResponse struct {
	Name         string  `json:"name"`
	Symbol       string  `json:"symbol"`
	Price        float64 `json:"price"`
	ChangePct    float64 `json:"change_pct"`
	ChangeAmount float64 `json:"change_amount"`
	CapturedAt   string  `json:"captured_at"`
}
