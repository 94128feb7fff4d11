// Package coverage measures how many tokens of the wiki markup reappear as
// cell values in the parsed table, bucketed by where the tokens sit in the
// markup.
package coverage

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/dtnitsch/wikitable-features/models"
	"github.com/dtnitsch/wikitable-features/pkg/binning"
	"github.com/dtnitsch/wikitable-features/pkg/markup"
)

var (
	lineBreak    = regexp.MustCompile(`\r?\n`)
	tableOpener  = regexp.MustCompile(`^\{\|\s?class=`)
	cellDelimits = regexp.MustCompile(`!+|\|+|-`)
)

const captionMarker = "|+"

// attributePrefixes mark tokens that are cell attributes rather than content.
var attributePrefixes = []string{"colspan", "rowspan", "bgcolor", "style", "class"}

// TokenCount tallies how often a token was found (Covered) or not found
// (Uncovered) among the parsed cell values.
type TokenCount struct {
	Covered   int
	Uncovered int
}

// Ratio is the share of occurrences that were covered.
func (c TokenCount) Ratio() float64 {
	return float64(c.Covered) / float64(c.Covered+c.Uncovered)
}

// Coverage holds the token counts of one table, keyed by line bucket.
type Coverage struct {
	bins   int
	Tokens map[int]map[string]*TokenCount
}

// Scan walks the unescaped markup line by line and counts, per line bucket
// and token, whether the token is one of the table's cell values. Table
// openers, caption lines, attribute tokens and tokens contained in the
// caption are skipped.
func Scan(t *models.TableRecord, bins int) *Coverage {
	lines := lineBreak.Split(markup.Unescape(t.TableMarkup), -1)
	edges := binning.Linspace(1, float64(len(lines)), bins)
	values := t.ValueSet()

	c := &Coverage{bins: bins, Tokens: make(map[int]map[string]*TokenCount)}
	for i, line := range lines {
		line = strings.TrimSpace(line)
		if line == "" || tableOpener.MatchString(line) || strings.HasPrefix(line, captionMarker) {
			continue
		}

		bucket := binning.Bucket(float64(i+1), edges)
		for _, token := range cellDelimits.Split(line, -1) {
			token = strings.TrimSpace(token)
			if token == "" || skipToken(token, t.TableCaption) {
				continue
			}

			tokens, ok := c.Tokens[bucket]
			if !ok {
				tokens = make(map[string]*TokenCount)
				c.Tokens[bucket] = tokens
			}
			count, ok := tokens[token]
			if !ok {
				count = &TokenCount{}
				tokens[token] = count
			}

			if _, found := values[token]; found {
				count.Covered++
			} else {
				count.Uncovered++
			}
		}
	}
	return c
}

// Histogram buckets each token's coverage ratio over [0, 1] and counts the
// tokens per "<line bucket>-<ratio bucket>" key, so the result has the same
// key space for every table regardless of its vocabulary.
func (c *Coverage) Histogram() map[string]float64 {
	edges := binning.Linspace(0, 1, c.bins)
	hist := make(map[string]float64)
	for line, tokens := range c.Tokens {
		for _, count := range tokens {
			key := fmt.Sprintf("%d-%d", line, binning.Bucket(count.Ratio(), edges))
			hist[key]++
		}
	}
	return hist
}

func skipToken(token, caption string) bool {
	if strings.Contains(caption, token) {
		return true
	}
	for _, prefix := range attributePrefixes {
		if strings.HasPrefix(token, prefix) {
			return true
		}
	}
	return false
}
