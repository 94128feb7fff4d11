package models

import (
	"encoding/json"
	"strings"
)

// tableDocument mirrors the consumed subset of the table JSON body.
type tableDocument struct {
	Caption json.RawMessage `json:"caption"`
	Rows    []tableRow      `json:"rows"`
}

// headerDocument is decoded separately so a malformed header only matters to
// callers that ask for it.
type headerDocument struct {
	Header []json.RawMessage `json:"header"`
}

type tableRow struct {
	Values []tableCell `json:"values"`
}

type tableCell struct {
	Column string          `json:"column"`
	Value  json.RawMessage `json:"value"`
}

type headerLevel struct {
	Columns []HeaderColumn `json:"columns"`
}

// HeaderColumn is one column of the most granular header level together with
// the distinct values observed under it.
type HeaderColumn struct {
	Name      string       `json:"name" yaml:"name"`
	ValueDist []ValueCount `json:"value_dist" yaml:"value_dist"`
}

// ValueCount is a distinct column value and how many cells hold it.
type ValueCount struct {
	Value string  `json:"value" yaml:"value"`
	Count float64 `json:"count" yaml:"count"`
}

// rawText renders a JSON scalar as plain text. Strings are unquoted, null is
// empty, anything else keeps its JSON spelling.
func rawText(raw json.RawMessage) string {
	trimmed := strings.TrimSpace(string(raw))
	if trimmed == "" || trimmed == "null" {
		return ""
	}
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return s
	}
	return trimmed
}
