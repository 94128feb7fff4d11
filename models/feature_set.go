package models

import "sort"

// Feature keys that are always present in a computed mapping.
const (
	FeatureJaccard         = "jacc"
	FeatureKL              = "kl"
	FeatureNumCols         = "num_cols"
	FeatureDoubleExclaim   = "markup_double_exlamanation"
	FeatureSingleExclaim   = "markup_single_exlamanation"
	FeatureHTMLRows        = "html_rows"
	FeatureHTMLHeaderCells = "html_header_cells"
	FeatureHTMLDataCells   = "html_data_cells"
	FeatureCaptionMatch    = "html_caption_match"
)

// FeatureSet is a sparse feature mapping. Missing keys read as zero.
type FeatureSet map[string]float64

// Get returns the value for key, or zero when absent.
func (f FeatureSet) Get(key string) float64 {
	return f[key]
}

// Merge copies every entry of other into f, overwriting duplicates.
func (f FeatureSet) Merge(other map[string]float64) {
	for k, v := range other {
		f[k] = v
	}
}

// Keys returns the feature keys in lexical order.
func (f FeatureSet) Keys() []string {
	keys := make([]string, 0, len(f))
	for k := range f {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
