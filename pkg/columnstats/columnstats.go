// Package columnstats describes the values observed under each header column:
// the share of numeric, alphabetic and other values per column bucket, and
// the rare words across all columns.
package columnstats

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/dtnitsch/wikitable-features/models"
	"github.com/dtnitsch/wikitable-features/pkg/binning"
)

// RareWordLimit is the exclusive upper bound on the frequency of words kept
// by WordDist.
const RareWordLimit = 3

const (
	numericPrefix    = "col-num-"
	alphabeticPrefix = "col-lt-"
	otherPrefix      = "col-ot-"
)

var valueNoise = strings.NewReplacer(" ", "", `"`, "", "&", "")

type valueKind int

const (
	kindOther valueKind = iota
	kindNumeric
	kindAlphabetic
)

// ratios collects the per-column shares that landed in one bucket.
type ratios struct {
	numeric, alphabetic, other []float64
}

// ValueDist buckets header columns by position and emits, per bucket, the
// average share of numeric (col-num-<b>), alphabetic (col-lt-<b>) and other
// (col-ot-<b>) values, weighted by each value's count.
//
// The 0-based column index is digitized against bins edges spread over
// [1, columnCount], so the first column always lands in bucket 0. Ids past
// the last edge are capped at bins-1.
//
// Header columns are not reconciled with the columns seen in the rows.
func ValueDist(t *models.TableRecord, bins int) (map[string]float64, error) {
	header, err := t.Header()
	if err != nil {
		return nil, fmt.Errorf("column value distribution: %w", err)
	}

	edges := binning.Linspace(1, float64(len(header)), bins)
	buckets := make(map[int]*ratios)
	var order []int

	for i, col := range header {
		var numbers, letters, other float64
		for _, v := range col.ValueDist {
			switch classify(v.Value) {
			case kindNumeric:
				numbers += v.Count
			case kindAlphabetic:
				letters += v.Count
			default:
				other += v.Count
			}
		}
		total := numbers + letters + other
		if total == 0 {
			total = 1
		}

		b := min(binning.Digitize(float64(i), edges), bins-1)
		r, ok := buckets[b]
		if !ok {
			r = &ratios{}
			buckets[b] = r
			order = append(order, b)
		}
		r.numeric = append(r.numeric, numbers/total)
		r.alphabetic = append(r.alphabetic, letters/total)
		r.other = append(r.other, other/total)
	}

	features := make(map[string]float64, 3*len(order))
	for _, b := range order {
		r := buckets[b]
		features[fmt.Sprintf("%s%d", numericPrefix, b)] = mean(r.numeric)
		features[fmt.Sprintf("%s%d", alphabeticPrefix, b)] = mean(r.alphabetic)
		features[fmt.Sprintf("%s%d", otherPrefix, b)] = mean(r.other)
	}
	return features, nil
}

// WordDist counts lower-cased words across every distinct header column value
// and keeps only the words seen fewer than RareWordLimit times.
func WordDist(t *models.TableRecord) (map[string]int, error) {
	header, err := t.Header()
	if err != nil {
		return nil, fmt.Errorf("column word distribution: %w", err)
	}

	counts := make(map[string]int)
	for _, col := range header {
		for _, v := range col.ValueDist {
			for _, word := range strings.Fields(strings.ToLower(asciiOnly(v.Value))) {
				counts[word]++
			}
		}
	}

	for word, c := range counts {
		if c >= RareWordLimit {
			delete(counts, word)
		}
	}
	return counts, nil
}

func classify(value string) valueKind {
	value = valueNoise.Replace(value)
	if value == "" {
		return kindOther
	}
	if allRunes(value, unicode.IsLetter) {
		return kindAlphabetic
	}
	if allRunes(value, unicode.IsDigit) {
		return kindNumeric
	}
	return kindOther
}

func allRunes(s string, fn func(rune) bool) bool {
	for _, r := range s {
		if !fn(r) {
			return false
		}
	}
	return true
}

func asciiOnly(s string) string {
	return strings.Map(func(r rune) rune {
		if r > unicode.MaxASCII {
			return -1
		}
		return r
	}, s)
}

func mean(xs []float64) float64 {
	if len(xs) == 0 {
		return 0
	}
	sum := 0.0
	for _, x := range xs {
		sum += x
	}
	return sum / float64(len(xs))
}
