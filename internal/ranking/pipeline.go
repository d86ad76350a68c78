package ranking

import (
	"fmt"
	"sort"
	"time"

	"marketbrief/internal/model"
)

// Config carries the curation knobs. A zero Now falls back to time.Now.
type Config struct {
	MinLength int
	Threshold float64
	TopK      int
	Keywords  []string
	TitleBand Band
	BodyBand  Band
	Now       func() time.Time
}

// Pipeline runs dedup, scoring, sorting and top-K selection over one batch
// of articles. It holds no mutable state across calls.
type Pipeline struct {
	cfg    Config
	scorer *Scorer
}

func New(cfg Config) (*Pipeline, error) {
	if cfg.Threshold < 0 || cfg.Threshold > 1 {
		return nil, fmt.Errorf("ranking: similarity threshold %v outside [0, 1]", cfg.Threshold)
	}
	if cfg.MinLength < 0 {
		return nil, fmt.Errorf("ranking: negative min length %d", cfg.MinLength)
	}
	if cfg.TopK < 0 {
		return nil, fmt.Errorf("ranking: negative top-k %d", cfg.TopK)
	}
	if cfg.TitleBand.Min > cfg.TitleBand.Max {
		return nil, fmt.Errorf("ranking: title band min %d above max %d", cfg.TitleBand.Min, cfg.TitleBand.Max)
	}
	if cfg.BodyBand.Min > cfg.BodyBand.Max {
		return nil, fmt.Errorf("ranking: body band min %d above max %d", cfg.BodyBand.Min, cfg.BodyBand.Max)
	}

	return &Pipeline{
		cfg:    cfg,
		scorer: NewScorer(cfg.Keywords, cfg.TitleBand, cfg.BodyBand, cfg.Now),
	}, nil
}

// Rank is the curation entry point: dedup the batch, score every survivor,
// sort descending by score (stable, so ties keep input order) and truncate
// to the configured cap. Rank numbers start at 1.
func (p *Pipeline) Rank(items []model.Article) []model.RankedArticle {
	survivors := Dedup(items, p.cfg.MinLength, p.cfg.Threshold)

	ranked := make([]model.RankedArticle, 0, len(survivors))
	for _, a := range survivors {
		ranked = append(ranked, model.RankedArticle{
			Article:      a,
			CleanedTitle: Normalize(a.Title),
			CleanedBody:  Normalize(a.Body),
			Score:        p.scorer.Score(a),
		})
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Score > ranked[j].Score
	})

	if len(ranked) > p.cfg.TopK {
		ranked = ranked[:p.cfg.TopK]
	}
	for i := range ranked {
		ranked[i].Rank = i + 1
	}

	return ranked
}
