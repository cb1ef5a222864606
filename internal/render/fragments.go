// Package render builds the HTML fragments shown in the answer region.
//
// Fragments are not sanitized: the answer text is inserted as-is apart
// from newline-to-break substitution.
package render

import (
	"fmt"
	"strings"

	"github.com/vokinneberg/askdesk/internal/types"
)

const (
	loadingFragment = `<div class="loading"><p>🤖 Processing your question...</p></div>`
	warningFragment = `<div class="error"><p>⚠️ Please enter a question before submitting.</p></div>`
	failureFragment = `<div class="error">` +
		`<p>❌ <strong>Error:</strong> Could not process your question.</p>` +
		`<p><small>Check that the backend is running at %s</small></p>` +
		`<p><small>Technical error: %s</small></p>` +
		`</div>`
)

// Loading is shown while a question is in flight
func Loading() string {
	return loadingFragment
}

// Warning is shown when the question is empty
func Warning() string {
	return warningFragment
}

// Failure is shown when a question could not be answered.
// backendAddress is the address users should check.
func Failure(backendAddress string, err error) string {
	detail := "unknown error"
	if err != nil {
		detail = err.Error()
	}
	return fmt.Sprintf(failureFragment, backendAddress, detail)
}

// Breaks replaces every newline with a <br> directive
func Breaks(s string) string {
	return strings.ReplaceAll(s, "\n", "<br>")
}

// Answer renders the answer paragraph, or "" when there is no answer.
// Citations are listed below the paragraph when given.
func Answer(answer string, citations []types.Citation) string {
	if answer == "" {
		return ""
	}

	var b strings.Builder
	b.WriteString(`<p class="answer">`)
	b.WriteString(Breaks(answer))
	b.WriteString(`</p>`)

	if len(citations) > 0 {
		b.WriteString(`<ul class="citations">`)
		for _, c := range citations {
			fmt.Fprintf(&b, `<li>%s, p. %d: %s</li>`, c.Document, c.Page, Breaks(c.Excerpt))
		}
		b.WriteString(`</ul>`)
	}

	return b.String()
}
