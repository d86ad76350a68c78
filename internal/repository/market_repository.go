package repository

import (
	"database/sql"

	"marketbrief/internal/model"
)

type MarketRepository struct {
	db *sql.DB
}

func NewMarketRepository(db *sql.DB) *MarketRepository {
	return &MarketRepository{db: db}
}

func (r *MarketRepository) SaveQuote(q *model.MarketQuote) error {
	return r.db.QueryRow(`
		INSERT INTO market_quote(name, symbol, price, change_pct, change_amount, captured_at)
		VALUES($1, $2, $3, $4, $5, $6)
		RETURNING id
	`, q.Name, q.Symbol, q.Price, q.ChangePct, q.ChangeAmount, q.CapturedAt).Scan(&q.ID)
}

// GetLatestQuotes returns the most recent capture per symbol.
func (r *MarketRepository) GetLatestQuotes() ([]model.MarketQuote, error) {
	rows, err := r.db.Query(`
		SELECT DISTINCT ON (symbol) id, name, symbol, price, change_pct, change_amount, captured_at
		FROM market_quote
		ORDER BY symbol, captured_at DESC
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var quotes []model.MarketQuote
	for rows.Next() {
		var q model.MarketQuote
		err := rows.Scan(&q.ID, &q.Name, &q.Symbol, &q.Price, &q.ChangePct, &q.ChangeAmount, &q.CapturedAt)
		if err != nil {
			return nil, err
		}
		quotes = append(quotes, q)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return quotes, nil
}
