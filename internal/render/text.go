package render

import (
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// blockElements end with a line break when flattened to text
var blockElements = map[string]bool{
	"p":   true,
	"div": true,
	"li":  true,
	"ul":  true,
}

// PlainText flattens an HTML fragment into terminal text.
// <br> becomes a newline, block elements end their line, list items are
// bulleted and all other markup is dropped.
func PlainText(fragment string) string {
	if fragment == "" {
		return ""
	}

	nodes, err := html.ParseFragment(strings.NewReader(fragment), &html.Node{
		Type:     html.ElementNode,
		Data:     "body",
		DataAtom: atom.Body,
	})
	if err != nil {
		return fragment
	}

	var b strings.Builder
	for _, n := range nodes {
		writeText(&b, n)
	}

	lines := strings.Split(b.String(), "\n")
	out := lines[:0]
	for _, line := range lines {
		line = strings.TrimSpace(line)
		if line == "" && (len(out) == 0 || out[len(out)-1] == "") {
			continue
		}
		out = append(out, line)
	}

	return strings.TrimSpace(strings.Join(out, "\n"))
}

func writeText(b *strings.Builder, n *html.Node) {
	switch n.Type {
	case html.TextNode:
		b.WriteString(n.Data)
		return
	case html.ElementNode:
		if n.Data == "br" {
			b.WriteString("\n")
			return
		}
		if n.Data == "li" {
			b.WriteString("• ")
		}
	}

	for c := n.FirstChild; c != nil; c = c.NextSibling {
		writeText(b, c)
	}

	if n.Type == html.ElementNode && blockElements[n.Data] {
		b.WriteString("\n")
	}
}
