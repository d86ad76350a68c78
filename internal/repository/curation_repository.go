package repository

import (
	"database/sql"

	"marketbrief/internal/model"
)

type CurationRepository struct {
	db *sql.DB
}

func NewCurationRepository(db *sql.DB) *CurationRepository {
	return &CurationRepository{db: db}
}

// SaveBatch stores one curation run: the ranked winners under a batch tag,
// curated status for them and skipped status for the rest, in a single
// transaction so a crash never leaves a half-curated batch.
func (r *CurationRepository) SaveBatch(batchTag string, ranked []model.RankedArticle, skippedIDs []int64) error {
	tx, err := r.db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	for _, ra := range ranked {
		_, err := tx.Exec(`
			INSERT INTO curated_article(article_id, batch_tag, rank, score, cleaned_title, cleaned_body)
			VALUES($1, $2, $3, $4, $5, $6)
		`, ra.ID, batchTag, ra.Rank, ra.Score, ra.CleanedTitle, ra.CleanedBody)
		if err != nil {
			return err
		}

		_, err = tx.Exec(`
			UPDATE article SET status = $1 WHERE id = $2
		`, model.StatusCurated, ra.ID)
		if err != nil {
			return err
		}
	}

	for _, id := range skippedIDs {
		_, err := tx.Exec(`
			UPDATE article SET status = $1 WHERE id = $2
		`, model.StatusSkipped, id)
		if err != nil {
			return err
		}
	}

	return tx.Commit()
}

func (r *CurationRepository) GetLatestBatchTag() (string, error) {
	var tag string
	err := r.db.QueryRow(`
		SELECT batch_tag FROM curated_article ORDER BY created_at DESC LIMIT 1
	`).Scan(&tag)

	if err == sql.ErrNoRows {
		return "", nil
	}

	return tag, err
}

func (r *CurationRepository) GetBatch(batchTag string) ([]model.RankedArticle, error) {
	rows, err := r.db.Query(`
		SELECT a.id, a.title, a.body, a.url, a.source, a.publisher, COALESCE(a.published_at, '0001-01-01'),
		       a.fetched_at, a.external_id, a.upvotes, a.comment_count, a.status,
		       c.cleaned_title, c.cleaned_body, c.score, c.rank
		FROM curated_article c
		JOIN article a ON a.id = c.article_id
		WHERE c.batch_tag = $1
		ORDER BY c.rank ASC
	`, batchTag)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var ranked []model.RankedArticle
	for rows.Next() {
		var ra model.RankedArticle
		err := rows.Scan(&ra.ID, &ra.Title, &ra.Body, &ra.URL, &ra.Source, &ra.Publisher, &ra.PublishedAt,
			&ra.FetchedAt, &ra.ExternalID, &ra.Upvotes, &ra.CommentCount, &ra.Status,
			&ra.CleanedTitle, &ra.CleanedBody, &ra.Score, &ra.Rank)
		if err != nil {
			return nil, err
		}
		ranked = append(ranked, ra)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return ranked, nil
}

func (r *CurationRepository) GetRankedFeed(limit, offset int) ([]model.RankedArticle, error) {
	rows, err := r.db.Query(`
		SELECT a.id, a.title, a.body, a.url, a.source, a.publisher, COALESCE(a.published_at, '0001-01-01'),
		       a.fetched_at, a.external_id, a.upvotes, a.comment_count, a.status,
		       c.cleaned_title, c.cleaned_body, c.score, c.rank
		FROM curated_article c
		JOIN article a ON a.id = c.article_id
		ORDER BY c.created_at DESC, c.rank ASC
		LIMIT $1 OFFSET $2
	`, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var ranked []model.RankedArticle
	for rows.Next() {
		var ra model.RankedArticle
		err := rows.Scan(&ra.ID, &ra.Title, &ra.Body, &ra.URL, &ra.Source, &ra.Publisher, &ra.PublishedAt,
			&ra.FetchedAt, &ra.ExternalID, &ra.Upvotes, &ra.CommentCount, &ra.Status,
			&ra.CleanedTitle, &ra.CleanedBody, &ra.Score, &ra.Rank)
		if err != nil {
			return nil, err
		}
		ranked = append(ranked, ra)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return ranked, nil
}

func (r *CurationRepository) GetRankedFeedTotal() (int, error) {
	var total int
	err := r.db.QueryRow(`SELECT COUNT(*) FROM curated_article`).Scan(&total)
	return total, err
}
