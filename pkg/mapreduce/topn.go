package mapreduce

import (
	"fmt"
	"io"
	"sort"
)

// WordCount is a word and its aggregated frequency.
type WordCount struct {
	Word  string `json:"word" yaml:"word"`
	Count int    `json:"count" yaml:"count"`
}

// TopN returns up to n words ordered by count (descending), ties broken
// alphabetically. A negative n returns every word.
func TopN(wordCounts map[string]int, n int) []WordCount {
	ss := make([]WordCount, 0, len(wordCounts))
	for k, v := range wordCounts {
		ss = append(ss, WordCount{Word: k, Count: v})
	}

	sort.Slice(ss, func(i, j int) bool {
		if ss[i].Count != ss[j].Count {
			return ss[i].Count > ss[j].Count
		}
		return ss[i].Word < ss[j].Word
	})

	if n >= 0 && len(ss) > n {
		ss = ss[:n]
	}
	return ss
}

// PrintTopKeywords prints the top N words in a numbered list format.
func PrintTopKeywords(w io.Writer, wordCounts map[string]int, n int) {
	for i, wc := range TopN(wordCounts, n) {
		fmt.Fprintf(w, "%d. %s: %d\n", i+1, wc.Word, wc.Count)
	}
}
