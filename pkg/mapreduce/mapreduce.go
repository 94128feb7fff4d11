// Package mapreduce aggregates per-table word counts into corpus-wide counts.
package mapreduce

import (
	"github.com/dtnitsch/wikitable-features/models"
	"github.com/dtnitsch/wikitable-features/pkg/columnstats"
)

// Map returns the rare-word distribution of a single table's columns.
func Map(t *models.TableRecord) (map[string]int, error) {
	return columnstats.WordDist(t)
}

// Reduce aggregates a slice of word frequency maps into a single map.
func Reduce(intermediate []map[string]int) map[string]int {
	finalResults := make(map[string]int)

	for _, counts := range intermediate {
		for word, count := range counts {
			finalResults[word] += count
		}
	}

	return finalResults
}
