package extract

import "github.com/dtnitsch/wikitable-features/models"

// Result is the feature mapping of one input record.
type Result struct {
	Line            int               `json:"line" yaml:"line"`
	Entity          string            `json:"entity" yaml:"entity"`
	Section         string            `json:"section" yaml:"section"`
	TableID         int               `json:"table_id" yaml:"table_id"`
	Label           string            `json:"label" yaml:"label"`
	LabelConfidence float64           `json:"label_confidence" yaml:"label_confidence"`
	Features        models.FeatureSet `json:"features" yaml:"features"`
}

// Skipped records a line that could not be turned into features.
type Skipped struct {
	Line  int    `json:"line" yaml:"line"`
	Error string `json:"error" yaml:"error"`
}

// FinalOutput is the structured output for the entire run.
type FinalOutput struct {
	RunID   string    `json:"run_id,omitempty" yaml:"run_id,omitempty"`
	Results []Result  `json:"results" yaml:"results"`
	Skipped []Skipped `json:"skipped,omitempty" yaml:"skipped,omitempty"`
	Stats   Stats     `json:"stats" yaml:"stats"`
}

// Stats provides summary statistics for the run.
type Stats struct {
	TotalRecords     int     `json:"total_records" yaml:"total_records"`
	Successful       int     `json:"successful" yaml:"successful"`
	Failed           int     `json:"failed" yaml:"failed"`
	TotalTimeSeconds float64 `json:"total_time_seconds" yaml:"total_time_seconds"`
}
