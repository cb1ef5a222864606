package render

import (
	"errors"
	"strings"
	"testing"

	"github.com/baalimago/go_away_boilerplate/pkg/testboil"
	"github.com/vokinneberg/askdesk/internal/types"
)

func TestAnswer(t *testing.T) {
	tests := []struct {
		name      string
		answer    string
		citations []types.Citation
		want      string
	}{
		{
			name:   "newlines become breaks",
			answer: "line1\nline2",
			want:   `<p class="answer">line1<br>line2</p>`,
		},
		{
			name:   "blank line between paragraphs",
			answer: "first\n\nsecond",
			want:   `<p class="answer">first<br><br>second</p>`,
		},
		{
			name:   "no answer",
			answer: "",
			want:   "",
		},
		{
			name:   "with citations",
			answer: "Use flexbox.",
			citations: []types.Citation{
				{Document: "css.pdf", Page: 3, Excerpt: "flex layout"},
			},
			want: `<p class="answer">Use flexbox.</p><ul class="citations"><li>css.pdf, p. 3: flex layout</li></ul>`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Answer(tt.answer, tt.citations)
			testboil.FailTestIfDiff(t, got, tt.want)
			if strings.Contains(got, "\n") {
				t.Errorf("Answer() = %q, contains a raw newline", got)
			}
		})
	}
}

func TestFailure(t *testing.T) {
	got := Failure("http://127.0.0.1:5000/", errors.New("Failed to fetch"))

	testboil.AssertStringContains(t, got, "Could not process your question.")
	testboil.AssertStringContains(t, got, "Check that the backend is running at http://127.0.0.1:5000/")
	testboil.AssertStringContains(t, got, "Technical error: Failed to fetch")
}

func TestFailure_NilError(t *testing.T) {
	testboil.AssertStringContains(t, Failure("http://localhost/", nil), "Technical error: unknown error")
}

func TestPlainText(t *testing.T) {
	tests := []struct {
		name     string
		fragment string
		want     string
	}{
		{
			name:     "empty",
			fragment: "",
			want:     "",
		},
		{
			name:     "answer with breaks",
			fragment: Answer("line1\nline2", nil),
			want:     "line1\nline2",
		},
		{
			name:     "loading",
			fragment: Loading(),
			want:     "🤖 Processing your question...",
		},
		{
			name:     "warning",
			fragment: Warning(),
			want:     "⚠️ Please enter a question before submitting.",
		},
		{
			name:     "failure keeps every paragraph on its own line",
			fragment: Failure("http://127.0.0.1:5000/", errors.New("HTTP error: 500")),
			want: "❌ Error: Could not process your question.\n" +
				"Check that the backend is running at http://127.0.0.1:5000/\n" +
				"Technical error: HTTP error: 500",
		},
		{
			name:     "citations are bulleted",
			fragment: Answer("Use grid.", []types.Citation{{Document: "a.pdf", Page: 1, Excerpt: "grid"}}),
			want:     "Use grid.\n• a.pdf, p. 1: grid",
		},
		{
			name:     "entities are decoded",
			fragment: "<p>a &amp; b</p>",
			want:     "a & b",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			testboil.FailTestIfDiff(t, PlainText(tt.fragment), tt.want)
		})
	}
}
