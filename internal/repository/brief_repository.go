package repository

import (
	"database/sql"
	"time"

	"marketbrief/internal/model"
)

type BriefRepository struct {
	db *sql.DB
}

func NewBriefRepository(db *sql.DB) *BriefRepository {
	return &BriefRepository{db: db}
}

func (r *BriefRepository) SaveBrief(brief *model.Brief) error {
	return r.db.QueryRow(`
		INSERT INTO brief(session, headline, main_text, comment_text, article_count, model_used)
		VALUES($1, $2, $3, $4, $5, $6)
		RETURNING id
	`, brief.Session, brief.Headline, brief.MainText, brief.CommentText, brief.ArticleCount, brief.ModelUsed).Scan(&brief.ID)
}

func (r *BriefRepository) GetBriefByID(id int64) (*model.Brief, error) {
	var b model.Brief
	err := r.db.QueryRow(`
		SELECT id, session, headline, main_text, comment_text, article_count, model_used, created_at,
		       COALESCE(posted_at, '0001-01-01'), COALESCE(threads_post_id, '')
		FROM brief
		WHERE id = $1
	`, id).Scan(&b.ID, &b.Session, &b.Headline, &b.MainText, &b.CommentText, &b.ArticleCount, &b.ModelUsed, &b.CreatedAt, &b.PostedAt, &b.ThreadsPostID)

	if err == sql.ErrNoRows {
		return nil, nil
	}

	if err != nil {
		return nil, err
	}

	return &b, nil
}

func (r *BriefRepository) GetLatestBrief() (*model.Brief, error) {
	var b model.Brief
	err := r.db.QueryRow(`
		SELECT id, session, headline, main_text, comment_text, article_count, model_used, created_at,
		       COALESCE(posted_at, '0001-01-01'), COALESCE(threads_post_id, '')
		FROM brief
		ORDER BY created_at DESC
		LIMIT 1
	`).Scan(&b.ID, &b.Session, &b.Headline, &b.MainText, &b.CommentText, &b.ArticleCount, &b.ModelUsed, &b.CreatedAt, &b.PostedAt, &b.ThreadsPostID)

	if err == sql.ErrNoRows {
		return nil, nil
	}

	if err != nil {
		return nil, err
	}

	return &b, nil
}

func (r *BriefRepository) GetBriefs(limit, offset int) ([]model.Brief, error) {
	rows, err := r.db.Query(`
		SELECT id, session, headline, main_text, comment_text, article_count, model_used, created_at,
		       COALESCE(posted_at, '0001-01-01'), COALESCE(threads_post_id, '')
		FROM brief
		ORDER BY created_at DESC
		LIMIT $1 OFFSET $2
	`, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var briefs []model.Brief
	for rows.Next() {
		var b model.Brief
		err := rows.Scan(&b.ID, &b.Session, &b.Headline, &b.MainText, &b.CommentText, &b.ArticleCount, &b.ModelUsed, &b.CreatedAt, &b.PostedAt, &b.ThreadsPostID)
		if err != nil {
			return nil, err
		}
		briefs = append(briefs, b)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return briefs, nil
}

func (r *BriefRepository) GetBriefTotal() (int, error) {
	var total int
	err := r.db.QueryRow(`SELECT COUNT(*) FROM brief`).Scan(&total)
	return total, err
}

func (r *BriefRepository) MarkPosted(id int64, postID string, postedAt time.Time) error {
	_, err := r.db.Exec(`
		UPDATE brief SET threads_post_id = $1, posted_at = $2 WHERE id = $3
	`, postID, postedAt, id)
	return err
}
