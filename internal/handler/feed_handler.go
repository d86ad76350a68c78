package handler

import (
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"marketbrief/internal/model"

	"github.com/gin-gonic/gin"
)

type FeedStore interface {
	GetRankedFeed(limit, offset int) ([]model.RankedArticle, error)
	GetRankedFeedTotal() (int, error)
}

type ArticleStore interface {
	GetArticleByID(id int64) (*model.Article, error)
}

type FeedHandler struct {
	repository FeedStore
	articles   ArticleStore
}

func NewFeedHandler(repository FeedStore, articles ArticleStore) *FeedHandler {
	return &FeedHandler{repository: repository, articles: articles}
}

func (h *FeedHandler) GetFeed(c *gin.Context) {

	limit := getQueryLimit(c)
	offset := getQueryOffset(c)

	articles, err := h.repository.GetRankedFeed(limit, offset)
	if err != nil {
		slog.Error("error fetching ranked feed", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return
	}

	total, err := h.repository.GetRankedFeedTotal()
	if err != nil {
		slog.Error("error fetching ranked feed total", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return
	}

	articleRes := make([]RankedArticleResponse, 0, len(articles))
	for _, a := range articles {
		res := RankedArticleResponse{
			ID:           a.ID,
			Title:        a.Title,
			Body:         a.Body,
			URL:          a.URL,
			Source:       a.Source,
			Publisher:    a.Publisher,
			Score:        a.Score,
			Rank:         a.Rank,
			Upvotes:      a.Upvotes,
			CommentCount: a.CommentCount,
		}
		if !a.PublishedAt.IsZero() {
			res.PublishedAt = a.PublishedAt.Format(time.RFC3339)
		}
		articleRes = append(articleRes, res)
	}

	c.JSON(http.StatusOK, FeedResponse{
		Articles: articleRes,
		Total:    total,
		Limit:    limit,
		Offset:   offset,
	})
}

func (h *FeedHandler) GetArticle(c *gin.Context) {
	id := c.Param("id")

	articleID, err := strconv.ParseInt(id, 10, 64)
	if err != nil {
		slog.Error("invalid article id", "id", id, "error", err)
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid article id"})
		return
	}

	article, err := h.articles.GetArticleByID(articleID)
	if err != nil {
		slog.Error("error fetching article", "error", err, "article_id", articleID)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return
	}

	if article == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Article not found"})
		return
	}

	res := ArticleResponse{
		ID:           article.ID,
		Title:        article.Title,
		Body:         article.Body,
		URL:          article.URL,
		Source:       article.Source,
		Publisher:    article.Publisher,
		FetchedAt:    article.FetchedAt.Format(time.RFC3339),
		Status:       article.Status,
		Upvotes:      article.Upvotes,
		CommentCount: article.CommentCount,
	}
	if !article.PublishedAt.IsZero() {
		res.PublishedAt = article.PublishedAt.Format(time.RFC3339)
	}

	c.JSON(http.StatusOK, res)
}

func (h *FeedHandler) GetHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func getQueryLimit(c *gin.Context) int {
	limit, err := strconv.Atoi(c.DefaultQuery("limit", "20"))
	if err != nil || limit < 1 || limit > 100 {
		return 20
	}
	return limit
}

func getQueryOffset(c *gin.Context) int {
	offset, err := strconv.Atoi(c.DefaultQuery("offset", "0"))
	if err != nil || offset < 0 {
		return 0
	}
	return offset
}
