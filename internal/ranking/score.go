package ranking

import (
	"math"
	"strings"
	"time"
	"unicode/utf8"

	"marketbrief/internal/model"
)

const (
	baseScore         = 10.0
	titleBandBonus    = 5.0
	titleLongBonus    = 2.0
	bodyBandBonus     = 10.0
	bodyLongBonus     = 15.0
	keywordTitleBonus = 3.0
	keywordBodyBonus  = 1.0
	decayFloor        = 0.1
	decayWindowHours  = 24.0
)

// Band is an inclusive character-length range.
type Band struct {
	Min int
	Max int
}

func (b Band) contains(n int) bool {
	return n >= b.Min && n <= b.Max
}

// Scorer computes a relevance score from an article's structural features.
// The clock is injected so decay is testable.
type Scorer struct {
	keywords  []string
	titleBand Band
	bodyBand  Band
	now       func() time.Time
}

func NewScorer(keywords []string, titleBand, bodyBand Band, now func() time.Time) *Scorer {
	if now == nil {
		now = time.Now
	}
	return &Scorer{
		keywords:  keywords,
		titleBand: titleBand,
		bodyBand:  bodyBand,
		now:       now,
	}
}

// Score starts from a fixed base, adds length-band and keyword bonuses, and
// finally applies linear time decay down to a floor of 0.1 at 24 elapsed
// hours. Articles without a publication time skip decay. Bodies past the
// band maximum earn more than mid-band ones; that asymmetry is deliberate.
// The result is rounded to two decimals.
func (s *Scorer) Score(a model.Article) float64 {
	score := baseScore

	titleLen := utf8.RuneCountInString(a.Title)
	if s.titleBand.contains(titleLen) {
		score += titleBandBonus
	} else if titleLen > s.titleBand.Max {
		score += titleLongBonus
	}

	bodyLen := utf8.RuneCountInString(a.Body)
	if s.bodyBand.contains(bodyLen) {
		score += bodyBandBonus
	} else if bodyLen > s.bodyBand.Max {
		score += bodyLongBonus
	}

	titleLower := strings.ToLower(a.Title)
	bodyLower := strings.ToLower(a.Body)
	for _, kw := range s.keywords {
		k := strings.ToLower(kw)
		if k == "" {
			continue
		}
		if strings.Contains(titleLower, k) {
			score += keywordTitleBonus
		}
		if strings.Contains(bodyLower, k) {
			score += keywordBodyBonus
		}
	}

	if !a.PublishedAt.IsZero() {
		hours := s.now().Sub(a.PublishedAt).Hours()
		factor := 1 - hours/decayWindowHours
		if factor < decayFloor {
			factor = decayFloor
		}
		score *= factor
	}

	return math.Round(score*100) / 100
}
