package repository

import (
	"database/sql"

	"marketbrief/internal/model"
)

type ArticleRepository struct {
	db *sql.DB
}

func NewArticleRepository(db *sql.DB) *ArticleRepository {
	return &ArticleRepository{db: db}
}

func (r *ArticleRepository) SaveArticle(article *model.Article) (bool, error) {
	var id int64
	err := r.db.QueryRow(`
		INSERT INTO article(title, body, url, source, publisher, published_at, external_id, upvotes, comment_count, status)
		VALUES($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		ON CONFLICT (url) DO NOTHING
		RETURNING id
	`, article.Title, article.Body, article.URL, article.Source, article.Publisher,
		nullableTime(article.PublishedAt), article.ExternalID, article.Upvotes, article.CommentCount, model.StatusPending).Scan(&id)

	if err == sql.ErrNoRows {
		return false, nil
	}

	if err != nil {
		return false, err
	}

	article.ID = id
	return true, nil
}

func (r *ArticleRepository) GetPendingArticles(limit int) ([]model.Article, error) {
	rows, err := r.db.Query(`
		SELECT id, title, body, url, source, publisher, COALESCE(published_at, '0001-01-01'), fetched_at, external_id, upvotes, comment_count, status
		FROM article
		WHERE status = $1
		ORDER BY fetched_at ASC
		LIMIT $2
	`, model.StatusPending, limit)

	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var articles []model.Article
	for rows.Next() {
		var a model.Article
		err := rows.Scan(&a.ID, &a.Title, &a.Body, &a.URL, &a.Source, &a.Publisher, &a.PublishedAt, &a.FetchedAt, &a.ExternalID, &a.Upvotes, &a.CommentCount, &a.Status)
		if err != nil {
			return nil, err
		}
		articles = append(articles, a)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return articles, nil
}

func (r *ArticleRepository) GetArticleByID(id int64) (*model.Article, error) {
	var a model.Article
	err := r.db.QueryRow(`
		SELECT id, title, body, url, source, publisher, COALESCE(published_at, '0001-01-01'), fetched_at, external_id, upvotes, comment_count, status
		FROM article
		WHERE id = $1
	`, id).Scan(&a.ID, &a.Title, &a.Body, &a.URL, &a.Source, &a.Publisher, &a.PublishedAt, &a.FetchedAt, &a.ExternalID, &a.Upvotes, &a.CommentCount, &a.Status)

	if err == sql.ErrNoRows {
		return nil, nil
	}

	if err != nil {
		return nil, err
	}

	return &a, nil
}
