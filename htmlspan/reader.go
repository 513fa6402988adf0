// Package htmlspan produces outline-ready spans from HTML documents.
//
// HTML carries no font metadata, so the reader synthesizes it: each
// supported element maps to a representative font size (body text at 12pt,
// headings progressively larger), letting the same classification pipeline
// run over HTML and PDF input alike. The whole document becomes one page.
package htmlspan

import (
	"fmt"
	"io"
	"os"
	"strings"
	"unicode/utf8"

	"golang.org/x/net/html"

	"github.com/inkline/outliner/model"
	"github.com/inkline/outliner/text"
)

// elementFontSize maps HTML elements to synthetic font sizes. Body text
// sits at 12pt so the page baseline lands there in prose-heavy documents;
// heading sizes are chosen to land in the matching ratio bands.
var elementFontSize = map[string]float64{
	"h1": 24.0,
	"h2": 17.0,
	"h3": 14.0,
	"h4": 13.0,
	"h5": 13.0,
	"h6": 13.0,
	"p":  12.0,
	"li": 12.0,
}

// charsPerLine approximates how many characters fill one rendered line,
// used to estimate a span's line-width ratio.
const charsPerLine = 80.0

// Load opens an HTML file and extracts spans.
func Load(path string) (*model.Document, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("htmlspan: open %s: %w", path, err)
	}
	defer f.Close()
	return LoadReader(f)
}

// LoadReader parses HTML from an io.Reader and extracts spans.
func LoadReader(r io.Reader) (*model.Document, error) {
	root, err := html.Parse(r)
	if err != nil {
		return nil, fmt.Errorf("htmlspan: parse: %w", err)
	}

	page := &model.Page{}
	walk(root, page)

	doc := model.NewDocument()
	doc.AddPage(page)
	return doc, nil
}

// walk visits element nodes in document order, emitting one span per
// supported element. Nested block content inside a matched element is
// flattened into its text, matching how a PDF renderer would paint it.
func walk(n *html.Node, page *model.Page) {
	if n.Type == html.ElementNode {
		if size, ok := elementFontSize[n.Data]; ok {
			content := text.Normalize(textContent(n))
			if strings.TrimSpace(content) != "" {
				page.Spans = append(page.Spans, model.Span{
					Text:           content,
					FontSize:       size,
					X0:             0,
					LineWidthRatio: widthRatio(content),
					PageIndex:      0,
					Order:          len(page.Spans),
				})
			}
			return
		}
		if n.Data == "script" || n.Data == "style" || n.Data == "head" {
			return
		}
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		walk(c, page)
	}
}

// textContent concatenates all text nodes under n.
func textContent(n *html.Node) string {
	var b strings.Builder
	var visit func(*html.Node)
	visit = func(node *html.Node) {
		if node.Type == html.TextNode {
			b.WriteString(node.Data)
		}
		for c := node.FirstChild; c != nil; c = c.NextSibling {
			visit(c)
		}
	}
	visit(n)
	return strings.Join(strings.Fields(b.String()), " ")
}

func widthRatio(s string) float64 {
	ratio := float64(utf8.RuneCountInString(s)) / charsPerLine
	if ratio > 1 {
		return 1
	}
	return ratio
}
