package llm

import (
	"strings"
	"testing"
	"time"

	"marketbrief/internal/model"
)

func TestCleanJSONResponse(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "plain JSON unchanged",
			input: `{"headline":"test"}`,
			want:  `{"headline":"test"}`,
		},
		{
			name:  "strips json fenced block",
			input: "```json\n{\"headline\":\"test\"}\n```",
			want:  `{"headline":"test"}`,
		},
		{
			name:  "strips plain fenced block",
			input: "```\n{\"headline\":\"test\"}\n```",
			want:  `{"headline":"test"}`,
		},
		{
			name:  "trims surrounding whitespace",
			input: "  {\"headline\":\"test\"}  ",
			want:  `{"headline":"test"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := cleanJSONResponse(tt.input)
			if got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}
}

func TestBuildBriefPromptIncludesData(t *testing.T) {
	input := BriefInput{
		Session: model.SessionMorning,
		Quotes: []model.MarketQuote{
			{Name: "S&P 500", Symbol: "^GSPC", Price: 4850.25, ChangePct: 1.2, ChangeAmount: 57.3},
		},
		Articles: []ArticleInput{
			{
				Title:        "Fed signals rate cut",
				Body:         "The Federal Reserve signaled a cut at its next meeting.",
				Publisher:    "Reuters",
				PublishedAt:  time.Date(2026, 3, 2, 6, 0, 0, 0, time.UTC),
				Score:        23.5,
				Upvotes:      412,
				CommentCount: 87,
			},
		},
	}

	got := buildBriefPrompt(input)

	for _, want := range []string{"S&P 500", "4850.25", "+1.20%", "Fed signals rate cut", "Reuters", "score 23.50", "412 upvotes"} {
		if !strings.Contains(got, want) {
			t.Errorf("prompt missing %q:\n%s", want, got)
		}
	}
}

func TestBuildBriefPromptTruncatesBody(t *testing.T) {
	input := BriefInput{
		Session: model.SessionMidday,
		Articles: []ArticleInput{
			{Title: "Long one", Body: strings.Repeat("x", maxBodyChars+100)},
		},
	}

	got := buildBriefPrompt(input)
	if !strings.Contains(got, strings.Repeat("x", maxBodyChars)+"...") {
		t.Errorf("expected truncated body in prompt")
	}
	if strings.Contains(got, strings.Repeat("x", maxBodyChars+1)) {
		t.Errorf("body was not truncated")
	}
}

func TestBuildBriefPromptUnknownSession(t *testing.T) {
	got := buildBriefPrompt(BriefInput{Session: "weekend"})
	if !strings.Contains(got, sessionLabels[model.SessionMorning]) {
		t.Errorf("unknown session should fall back to morning label")
	}
}
