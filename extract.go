package tfidf

import (
	"bytes"
	"path/filepath"
	"strings"

	"golang.org/x/net/html"
)

// HTML handling modes for Config.HTML.
const (
	HTMLOff  = "off"  // raw text, the default
	HTMLAuto = "auto" // by file extension
	HTMLOn   = "on"
)

// ExtractText returns the visible text of an HTML page, one space between
// text nodes. Text under <script> or <style> is skipped.
func ExtractText(body []byte) (string, error) {
	root, err := html.Parse(bytes.NewReader(body))
	if err != nil {
		return "", err
	}

	var parts []string
	// track a "skip depth" to ignore text under <script> or <style>
	var skipDepth int

	var walk func(*html.Node)
	walk = func(n *html.Node) {
		skip := isSkipped(n)
		if skip {
			skipDepth++
		}
		if skipDepth == 0 && n.Type == html.TextNode {
			if t := strings.TrimSpace(n.Data); t != "" {
				parts = append(parts, t)
			}
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
		if skip {
			skipDepth--
		}
	}
	walk(root)
	return strings.Join(parts, " "), nil
}

func isSkipped(n *html.Node) bool {
	return n.Type == html.ElementNode &&
		(strings.EqualFold(n.Data, "script") || strings.EqualFold(n.Data, "style"))
}

// isHTML decides whether the document called name is parsed as HTML.
func isHTML(mode, name string) bool {
	switch mode {
	case HTMLOn:
		return true
	case HTMLAuto:
	default:
		return false
	}
	ext := strings.ToLower(filepath.Ext(name))
	return ext == ".html" || ext == ".htm"
}
