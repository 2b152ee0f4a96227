package extract

import (
	"fmt"
	"io"
	"strings"

	"golang.org/x/net/html"
)

// contentMatchers locate the main content of a page, most specific first
var contentMatchers = []func(*html.Node) bool{
	// Wikipedia article body
	func(n *html.Node) bool {
		return n.Data == "div" && (hasClass(n, "mw-parser-output") || attr(n, "id") == "mw-content-text")
	},
	func(n *html.Node) bool { return n.Data == "main" || attr(n, "role") == "main" },
	func(n *html.Node) bool { return n.Data == "article" },
}

// ArticleText parses HTML from r and returns the visible text of its main
// content region, or of the whole document when no region is marked up
func ArticleText(r io.Reader) (string, error) {
	doc, err := html.Parse(r)
	if err != nil {
		return "", fmt.Errorf("parse html: %w", err)
	}
	return visibleText(mainContent(doc)), nil
}

func mainContent(doc *html.Node) *html.Node {
	for _, match := range contentMatchers {
		found := findFirst(doc, func(n *html.Node) bool {
			return n.Type == html.ElementNode && match(n)
		})
		if found != nil {
			return found
		}
	}
	return doc
}

func findFirst(n *html.Node, predicate func(*html.Node) bool) *html.Node {
	if predicate(n) {
		return n
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if found := findFirst(c, predicate); found != nil {
			return found
		}
	}
	return nil
}

func hasClass(n *html.Node, className string) bool {
	for _, class := range strings.Fields(attr(n, "class")) {
		if class == className {
			return true
		}
	}
	return false
}

func attr(n *html.Node, key string) string {
	for _, a := range n.Attr {
		if a.Key == key {
			return a.Val
		}
	}
	return ""
}
