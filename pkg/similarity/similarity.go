// Package similarity compares the rendered HTML of a table with its cleaned
// wiki markup using bag-of-words models.
package similarity

import (
	"fmt"
	"math"
	"sort"

	"github.com/dtnitsch/wikitable-features/models"
	"github.com/dtnitsch/wikitable-features/pkg/analytics"
	"github.com/dtnitsch/wikitable-features/pkg/markup"
	"github.com/dtnitsch/wikitable-features/pkg/parser"
)

// Epsilon stands in for the count of a word seen on only one side. The
// smoothed values are not renormalized, so KLDivergence is an approximation
// of the true divergence; downstream models were trained on this behaviour.
const Epsilon = 0.001

// Jaccard returns |H ∩ M| / |H ∪ M| for the token sets of the tag-stripped
// HTML (H) and the cleaned markup (M).
func Jaccard(t *models.TableRecord) (float64, error) {
	return jaccard(parser.StripTags(t.TableHTML), markup.Clean(t.TableMarkup))
}

func jaccard(htmlText, markupText string) (float64, error) {
	h := analytics.TokenSet(htmlText)
	m := analytics.TokenSet(markupText)

	inter := 0
	for tok := range h {
		if _, ok := m[tok]; ok {
			inter++
		}
	}
	union := len(h) + len(m) - inter
	if union == 0 {
		return 0, fmt.Errorf("jaccard: %w", models.ErrUndefinedSimilarity)
	}
	return float64(inter) / float64(union), nil
}

// KLDivergence returns D(P_html || P_markup) over lower-cased unigrams.
// It fails with ErrUndefinedSimilarity when either text has no words, since
// that side has nothing to normalize by. This is stricter than Jaccard, which
// only fails when both sides are empty; the features command skips such
// records.
func KLDivergence(t *models.TableRecord) (float64, error) {
	return klDivergence(parser.StripTags(t.TableHTML), markup.Clean(t.TableMarkup))
}

func klDivergence(htmlText, markupText string) (float64, error) {
	p := analytics.Unigrams(htmlText)
	q := analytics.Unigrams(markupText)

	pTotal := float64(analytics.Total(p))
	qTotal := float64(analytics.Total(q))
	if pTotal == 0 || qTotal == 0 {
		return 0, fmt.Errorf("kl divergence: %w", models.ErrUndefinedSimilarity)
	}

	// summed in sorted order so repeated runs agree to the last bit
	vocab := make([]string, 0, len(p)+len(q))
	for w := range p {
		vocab = append(vocab, w)
	}
	for w := range q {
		if _, ok := p[w]; !ok {
			vocab = append(vocab, w)
		}
	}
	sort.Strings(vocab)

	kl := 0.0
	for _, w := range vocab {
		pw := smoothed(p, w) / pTotal
		qw := smoothed(q, w) / qTotal
		if pw == 0 {
			continue
		}
		kl += pw * math.Log(pw/qw)
	}
	return kl, nil
}

func smoothed(counts map[string]int, word string) float64 {
	if c, ok := counts[word]; ok && c > 0 {
		return float64(c)
	}
	return Epsilon
}
