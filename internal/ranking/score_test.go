package ranking

import (
	"strings"
	"testing"
	"time"

	"marketbrief/internal/model"

	"github.com/go-playground/assert/v2"
)

var (
	testTitleBand = Band{Min: 20, Max: 100}
	testBodyBand  = Band{Min: 200, Max: 1000}
	testNow       = time.Date(2026, 3, 2, 7, 30, 0, 0, time.UTC)
)

func fixedClock() time.Time { return testNow }

func newTestScorer(keywords []string) *Scorer {
	return NewScorer(keywords, testTitleBand, testBodyBand, fixedClock)
}

func TestScoreBaseOnly(t *testing.T) {
	s := newTestScorer(nil)

	// short title, short body, no keywords, no timestamp
	got := s.Score(model.Article{Title: "brief", Body: "tiny"})
	assert.Equal(t, 10.0, got)
}

func TestScoreTitleBand(t *testing.T) {
	s := newTestScorer(nil)

	inBand := s.Score(model.Article{Title: strings.Repeat("t", 50)})
	overBand := s.Score(model.Article{Title: strings.Repeat("t", 150)})
	underBand := s.Score(model.Article{Title: strings.Repeat("t", 10)})

	assert.Equal(t, 15.0, inBand)
	assert.Equal(t, 12.0, overBand)
	assert.Equal(t, 10.0, underBand)

	// mid-band title strictly beats a below-band one
	if inBand <= underBand {
		t.Fatalf("in-band title score %v not above under-band %v", inBand, underBand)
	}
}

func TestScoreBodyBandAsymmetry(t *testing.T) {
	s := newTestScorer(nil)

	midBand := s.Score(model.Article{Body: strings.Repeat("b", 500)})
	overBand := s.Score(model.Article{Body: strings.Repeat("b", 1500)})

	assert.Equal(t, 20.0, midBand)
	assert.Equal(t, 25.0, overBand)

	// very long bodies must outscore mid-band ones, not the other way round
	if overBand <= midBand {
		t.Fatalf("over-band body score %v not above mid-band %v", overBand, midBand)
	}
}

func TestScoreKeywords(t *testing.T) {
	s := newTestScorer([]string{"Bitcoin", "Tesla"})

	got := s.Score(model.Article{
		Title: "tesla bitcoin bet",
		Body:  "Tesla disclosed a new bitcoin position.",
	})

	// base 10 + title hits (3+3) + body hits (1+1)
	assert.Equal(t, 18.0, got)
}

func TestScoreKeywordCaseInsensitive(t *testing.T) {
	s := newTestScorer([]string{"FOMC"})

	assert.Equal(t, 13.0, s.Score(model.Article{Title: "fomc preview"}))
	assert.Equal(t, 13.0, s.Score(model.Article{Title: "FOMC preview"}))
}

func TestScoreDecayLinear(t *testing.T) {
	s := newTestScorer(nil)

	// published 12 hours ago: factor 0.5
	got := s.Score(model.Article{
		Title:       "brief",
		PublishedAt: testNow.Add(-12 * time.Hour),
	})
	assert.Equal(t, 5.0, got)
}

func TestScoreDecayFloor(t *testing.T) {
	s := newTestScorer(nil)

	// published 48 hours ago: factor clamps at 0.1, never lower
	got := s.Score(model.Article{
		Title:       "brief",
		PublishedAt: testNow.Add(-48 * time.Hour),
	})
	assert.Equal(t, 1.0, got)

	weekOld := s.Score(model.Article{
		Title:       "brief",
		PublishedAt: testNow.Add(-7 * 24 * time.Hour),
	})
	assert.Equal(t, 1.0, weekOld)
}

func TestScoreNoTimestampSkipsDecay(t *testing.T) {
	s := newTestScorer(nil)

	got := s.Score(model.Article{Title: "brief"})
	assert.Equal(t, 10.0, got)
}

func TestScoreFreshArticleNoDecay(t *testing.T) {
	s := newTestScorer(nil)

	got := s.Score(model.Article{Title: "brief", PublishedAt: testNow})
	assert.Equal(t, 10.0, got)
}

func TestScoreRounding(t *testing.T) {
	s := newTestScorer(nil)

	// factor 1 - 5/24 = 0.791666..; 10 * factor = 7.9166.. -> 7.92
	got := s.Score(model.Article{
		Title:       "brief",
		PublishedAt: testNow.Add(-5 * time.Hour),
	})
	assert.Equal(t, 7.92, got)
}
