package ranking

import (
	"unicode/utf8"

	"marketbrief/internal/model"
)

// Dedup filters articles in input order. An article is dropped when its
// cleaned title plus body is shorter than minLength runes, or when either
// its title or body similarity against any already accepted article is
// strictly above threshold. The first occurrence of a near-duplicate
// cluster wins, so the result depends on input order. Cost is quadratic in
// the accepted set, which stays small for the batch sizes we run.
func Dedup(items []model.Article, minLength int, threshold float64) []model.Article {
	type cleaned struct {
		title string
		body  string
	}

	var accepted []cleaned
	var out []model.Article

	for _, item := range items {
		title := Normalize(item.Title)
		body := Normalize(item.Body)

		if utf8.RuneCountInString(title)+utf8.RuneCountInString(body) < minLength {
			continue
		}

		duplicate := false
		for _, prev := range accepted {
			if Similarity(title, prev.title) > threshold || Similarity(body, prev.body) > threshold {
				duplicate = true
				break
			}
		}
		if duplicate {
			continue
		}

		accepted = append(accepted, cleaned{title: title, body: body})
		out = append(out, item)
	}

	return out
}
