package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"marketbrief/internal/model"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/assert/v2"
)

type fakeBriefStore struct {
	latest *model.Brief
	briefs []model.Brief
	total  int
	err    error
}

func (f *fakeBriefStore) GetLatestBrief() (*model.Brief, error) {
	return f.latest, f.err
}

func (f *fakeBriefStore) GetBriefs(limit, offset int) ([]model.Brief, error) {
	return f.briefs, f.err
}

func (f *fakeBriefStore) GetBriefTotal() (int, error) {
	return f.total, f.err
}

type fakeQuoteStore struct {
	quotes []model.MarketQuote
	err    error
}

func (f *fakeQuoteStore) GetLatestQuotes() ([]model.MarketQuote, error) {
	return f.quotes, f.err
}

func newBriefRouter(briefs BriefStore, quotes QuoteStore) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	h := NewBriefHandler(briefs, quotes)
	r.GET("/briefs/latest", h.GetLatestBrief)
	r.GET("/briefs", h.GetBriefs)
	r.GET("/quotes", h.GetQuotes)
	return r
}

func TestGetLatestBrief(t *testing.T) {
	store := &fakeBriefStore{
		latest: &model.Brief{
			ID:        7,
			Session:   model.SessionMorning,
			Headline:  "Rate cut hopes lift tech",
			MainText:  "🌅 Overnight Market Brief ...",
			CreatedAt: time.Date(2026, 3, 2, 7, 30, 0, 0, time.UTC),
		},
	}

	r := newBriefRouter(store, &fakeQuoteStore{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/briefs/latest", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var res BriefResponse
	json.Unmarshal(w.Body.Bytes(), &res)
	assert.Equal(t, int64(7), res.ID)
	assert.Equal(t, "morning", res.Session)
	assert.Equal(t, "Rate cut hopes lift tech", res.Headline)
	assert.Equal(t, "", res.PostedAt)
}

func TestGetLatestBrief_NoneYet(t *testing.T) {
	r := newBriefRouter(&fakeBriefStore{}, &fakeQuoteStore{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/briefs/latest", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestGetBriefs(t *testing.T) {
	store := &fakeBriefStore{
		briefs: []model.Brief{
			{ID: 2, Session: model.SessionMidday},
			{ID: 1, Session: model.SessionMorning},
		},
		total: 2,
	}

	r := newBriefRouter(store, &fakeQuoteStore{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/briefs", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var res BriefListResponse
	json.Unmarshal(w.Body.Bytes(), &res)
	assert.Equal(t, 2, res.Total)
	assert.Equal(t, 2, len(res.Briefs))
	assert.Equal(t, int64(2), res.Briefs[0].ID)
}

func TestGetQuotes(t *testing.T) {
	quotes := &fakeQuoteStore{
		quotes: []model.MarketQuote{
			{Name: "S&P 500", Symbol: "^GSPC", Price: 4850.25, ChangePct: 1.2, CapturedAt: time.Now()},
		},
	}

	r := newBriefRouter(&fakeBriefStore{}, quotes)

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/quotes", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var res struct {
		Quotes []QuoteResponse `json:"quotes"`
	}
	json.Unmarshal(w.Body.Bytes(), &res)
	assert.Equal(t, 1, len(res.Quotes))
	assert.Equal(t, "^GSPC", res.Quotes[0].Symbol)
}
