// Package analytics builds bag-of-words models over table text.
package analytics

import "strings"

// Unigrams counts lower-cased whitespace-delimited words. Punctuation is kept
// so that markup and HTML text are compared token for token.
func Unigrams(text string) map[string]int {
	words := strings.Fields(strings.ToLower(text))
	frequencies := make(map[string]int, len(words))
	for _, word := range words {
		frequencies[word]++
	}
	return frequencies
}

// TokenSet returns the distinct whitespace-delimited tokens of text, case kept.
func TokenSet(text string) map[string]struct{} {
	words := strings.Fields(text)
	set := make(map[string]struct{}, len(words))
	for _, word := range words {
		set[word] = struct{}{}
	}
	return set
}

// Total sums the counts of a frequency map.
func Total(frequencies map[string]int) int {
	total := 0
	for _, c := range frequencies {
		total += c
	}
	return total
}
