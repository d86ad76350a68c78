package handler

import (
	"log/slog"
	"net/http"
	"time"

	"marketbrief/internal/model"

	"github.com/gin-gonic/gin"
)

type BriefStore interface {
	GetLatestBrief() (*model.Brief, error)
	GetBriefs(limit, offset int) ([]model.Brief, error)
	GetBriefTotal() (int, error)
}

type QuoteStore interface {
	GetLatestQuotes() ([]model.MarketQuote, error)
}

type BriefHandler struct {
	briefs BriefStore
	quotes QuoteStore
}

func NewBriefHandler(briefs BriefStore, quotes QuoteStore) *BriefHandler {
	return &BriefHandler{briefs: briefs, quotes: quotes}
}

func (h *BriefHandler) GetLatestBrief(c *gin.Context) {
	brief, err := h.briefs.GetLatestBrief()
	if err != nil {
		slog.Error("error fetching latest brief", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return
	}

	if brief == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "No brief yet"})
		return
	}

	c.JSON(http.StatusOK, toBriefResponse(brief))
}

func (h *BriefHandler) GetBriefs(c *gin.Context) {

	limit := getQueryLimit(c)
	offset := getQueryOffset(c)

	briefs, err := h.briefs.GetBriefs(limit, offset)
	if err != nil {
		slog.Error("error fetching briefs", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return
	}

	total, err := h.briefs.GetBriefTotal()
	if err != nil {
		slog.Error("error fetching brief total", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return
	}

	briefRes := make([]BriefResponse, 0, len(briefs))
	for i := range briefs {
		briefRes = append(briefRes, toBriefResponse(&briefs[i]))
	}

	c.JSON(http.StatusOK, BriefListResponse{
		Briefs: briefRes,
		Total:  total,
		Limit:  limit,
		Offset: offset,
	})
}

func (h *BriefHandler) GetQuotes(c *gin.Context) {
	quotes, err := h.quotes.GetLatestQuotes()
	if err != nil {
		slog.Error("error fetching quotes", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return
	}

	quoteRes := make([]QuoteResponse, 0, len(quotes))
	for _, q := range quotes {
		quoteRes = append(quoteRes, QuoteResponse{
			Name:         q.Name,
			Symbol:       q.Symbol,
			Price:        q.Price,
			ChangePct:    q.ChangePct,
			ChangeAmount: q.ChangeAmount,
			CapturedAt:   q.CapturedAt.Format(time.RFC3339),
		})
	}

	c.JSON(http.StatusOK, gin.H{"quotes": quoteRes})
}

func toBriefResponse(b *model.Brief) BriefResponse {
	res := BriefResponse{
		ID:            b.ID,
		Session:       b.Session,
		Headline:      b.Headline,
		MainText:      b.MainText,
		CommentText:   b.CommentText,
		ArticleCount:  b.ArticleCount,
		ModelUsed:     b.ModelUsed,
		CreatedAt:     b.CreatedAt.Format(time.RFC3339),
		ThreadsPostID: b.ThreadsPostID,
	}
	if !b.PostedAt.IsZero() {
		res.PostedAt = b.PostedAt.Format(time.RFC3339)
	}
	return res
}
