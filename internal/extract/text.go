// Package extract turns HTML documents into plain text suitable for
// text analysis.
package extract

import (
	"fmt"
	"io"
	"strings"

	"golang.org/x/net/html"
)

// blockElements end the current line of text
var blockElements = map[string]bool{
	"address": true, "article": true, "aside": true, "blockquote": true,
	"br": true, "dd": true, "div": true, "dl": true, "dt": true,
	"figcaption": true, "footer": true, "form": true, "h1": true, "h2": true,
	"h3": true, "h4": true, "h5": true, "h6": true, "header": true, "hr": true,
	"li": true, "main": true, "nav": true, "ol": true, "p": true, "pre": true,
	"section": true, "table": true, "td": true, "th": true, "tr": true, "ul": true,
}

// VisibleText parses HTML from r and returns its visible text.
// Block elements become separate lines so paragraph structure survives;
// whitespace inside a line is collapsed to single spaces.
func VisibleText(r io.Reader) (string, error) {
	doc, err := html.Parse(r)
	if err != nil {
		return "", fmt.Errorf("parse html: %w", err)
	}
	return visibleText(doc), nil
}

// VisibleTextString is VisibleText for an in-memory document
func VisibleTextString(htmlContent string) (string, error) {
	return VisibleText(strings.NewReader(htmlContent))
}

// visibleText walks text nodes, skipping scripts and styles
func visibleText(n *html.Node) string {
	var lines []string
	var line []string

	flush := func() {
		if len(line) > 0 {
			lines = append(lines, strings.Join(line, " "))
			line = line[:0]
		}
	}

	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode {
			switch n.Data {
			case "script", "style", "noscript", "iframe", "template", "head":
				return
			}
		}

		if n.Type == html.TextNode {
			line = append(line, strings.Fields(n.Data)...)
		}

		block := n.Type == html.ElementNode && blockElements[n.Data]
		if block {
			flush()
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
		if block {
			flush()
		}
	}

	walk(n)
	flush()
	return strings.Join(lines, "\n")
}
