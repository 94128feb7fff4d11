// Package parser reads the rendered HTML of a table: plain text for the
// similarity metrics and a structural summary for the feature mapping.
package parser

import (
	"bufio"
	"bytes"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"
)

// Structure summarizes the rows and cells of a rendered table.
type Structure struct {
	Caption     string
	Rows        int
	HeaderCells int
	DataCells   int
}

// StripTags replaces every tag, comment and doctype with a single space and
// keeps text exactly as written, entities included.
func StripTags(rawHTML string) string {
	var b bytes.Buffer
	b.Grow(len(rawHTML))

	z := html.NewTokenizer(strings.NewReader(rawHTML))
	for {
		switch z.Next() {
		case html.ErrorToken:
			return b.String()
		case html.TextToken:
			b.Write(z.Raw())
		default:
			b.WriteByte(' ')
		}
	}
}

// CaptionMatches reports whether the rendered caption equals caption after
// both are trimmed line by line and joined with single spaces.
func (s *Structure) CaptionMatches(caption string) bool {
	return s.Caption == normalizeText(caption)
}

// ParseStructure counts the rows, header cells and data cells of the first
// table in rawHTML. A fragment with no <table> is summarized as a whole.
func ParseStructure(rawHTML string) (*Structure, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(rawHTML))
	if err != nil {
		return nil, err
	}

	root := doc.Selection
	if table := doc.Find("table").First(); table.Length() > 0 {
		root = table
	}

	return &Structure{
		Caption:     normalizeText(root.Find("caption").First().Text()),
		Rows:        root.Find("tr").Length(),
		HeaderCells: root.Find("th").Length(),
		DataCells:   root.Find("td").Length(),
	}, nil
}

// normalizeText cleans up a string by trimming space and removing excess newlines.
func normalizeText(input string) string {
	var b strings.Builder
	b.Grow(len(input))
	scanner := bufio.NewScanner(strings.NewReader(input))
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line != "" {
			b.WriteString(line)
			b.WriteString(" ")
		}
	}
	return strings.TrimSpace(b.String())
}
