package llm

import (
	"fmt"
	"strings"

	"marketbrief/internal/model"
)

const promptVersion = "v1"

const maxBodyChars = 300

const briefSystemPrompt = `You are a financial analyst writing a short market brief for a Korean retail-investor audience on Threads.

Rules:
- Write in Korean, polite register (존댓말)
- Main post and comment each at most 500 characters
- Key figures as short bullet lines (• or ①②③), numbers mixed with emoji (e.g. +1.2% 🔥)
- End the main post with a question or call to action inviting comments
- The comment is a checklist or top-3 list for the next session
- Base everything strictly on the provided data; do not invent figures

Output as JSON only, no other text:
{
  "headline": "one-line theme of the session",
  "main": "threads main post text",
  "comment": "threads comment text"
}`

var sessionLabels = map[string]string{
	model.SessionMorning: "Overnight US market brief ahead of the Korean open",
	model.SessionMidday:  "Korean market close recap",
	model.SessionEvening: "Evening wrap before the US open",
}

func buildBriefPrompt(input BriefInput) string {
	var sb strings.Builder

	label, ok := sessionLabels[input.Session]
	if !ok {
		label = sessionLabels[model.SessionMorning]
	}
	sb.WriteString(fmt.Sprintf("Session: %s\n\n", label))

	if len(input.Quotes) > 0 {
		sb.WriteString("Market data:\n")
		for _, q := range input.Quotes {
			sb.WriteString(fmt.Sprintf("- %s (%s): %.2f (%+.2f%%, %+.2f)\n",
				q.Name, q.Symbol, q.Price, q.ChangePct, q.ChangeAmount))
		}
		sb.WriteString("\n")
	}

	if len(input.Articles) > 0 {
		sb.WriteString("Top stories, ranked:\n")
		for i, a := range input.Articles {
			sb.WriteString(fmt.Sprintf("[%d] %s (%s, score %.2f)\n", i+1, a.Title, a.Publisher, a.Score))
			if a.Body != "" {
				sb.WriteString(fmt.Sprintf("    %s\n", truncate(a.Body, maxBodyChars)))
			}
			if a.Upvotes > 0 || a.CommentCount > 0 {
				sb.WriteString(fmt.Sprintf("    engagement: %d upvotes, %d comments\n", a.Upvotes, a.CommentCount))
			}
		}
	}

	return sb.String()
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max] + "..."
}

func cleanJSONResponse(content string) string {
	content = strings.TrimSpace(content)
	content = strings.TrimPrefix(content, "```json")
	content = strings.TrimPrefix(content, "```")
	content = strings.TrimSuffix(content, "```")
	return strings.TrimSpace(content)
}
