// Package features assembles the full feature mapping of a table record.
package features

import (
	"fmt"
	"strings"

	"github.com/dtnitsch/wikitable-features/models"
	"github.com/dtnitsch/wikitable-features/pkg/columnstats"
	"github.com/dtnitsch/wikitable-features/pkg/coverage"
	"github.com/dtnitsch/wikitable-features/pkg/parser"
	"github.com/dtnitsch/wikitable-features/pkg/similarity"
)

// Compute merges the markup coverage histogram, the HTML/markup similarity
// scores, the column value distribution, a few raw markup counts and the
// rendered table's structure into one sparse mapping. The record is not
// modified.
func Compute(t *models.TableRecord, bins int) (models.FeatureSet, error) {
	if bins < 2 {
		return nil, fmt.Errorf("bins must be at least 2, got %d", bins)
	}

	fs := models.FeatureSet{}
	fs.Merge(coverage.Scan(t, bins).Histogram())

	jacc, err := similarity.Jaccard(t)
	if err != nil {
		return nil, err
	}
	fs[models.FeatureJaccard] = jacc

	colDist, err := columnstats.ValueDist(t, bins)
	if err != nil {
		return nil, err
	}
	fs.Merge(colDist)

	kl, err := similarity.KLDivergence(t)
	if err != nil {
		return nil, err
	}
	fs[models.FeatureKL] = kl

	fs[models.FeatureNumCols] = float64(len(t.Columns))
	fs[models.FeatureDoubleExclaim] = float64(strings.Count(t.TableMarkup, "!!"))
	fs[models.FeatureSingleExclaim] = float64(strings.Count(t.TableMarkup, "!"))

	structure, err := parser.ParseStructure(t.TableHTML)
	if err != nil {
		return nil, fmt.Errorf("parse table html: %w", err)
	}
	fs[models.FeatureHTMLRows] = float64(structure.Rows)
	fs[models.FeatureHTMLHeaderCells] = float64(structure.HeaderCells)
	fs[models.FeatureHTMLDataCells] = float64(structure.DataCells)
	if structure.CaptionMatches(t.TableCaption) {
		fs[models.FeatureCaptionMatch] = 1
	} else {
		fs[models.FeatureCaptionMatch] = 0
	}

	return fs, nil
}
