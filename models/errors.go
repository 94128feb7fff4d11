package models

import "errors"

var (
	// ErrMalformedInputLine is returned when a tab-separated record line has the
	// wrong number of fields or a non-numeric table id / label confidence.
	ErrMalformedInputLine = errors.New("malformed input line")

	// ErrMalformedTable is returned when the table JSON is not an object, lacks
	// caption/rows, or lacks the header shape when column metadata is requested.
	ErrMalformedTable = errors.New("malformed table json")

	// ErrUndefinedSimilarity is returned when a similarity metric has nothing
	// to compare on one or both sides.
	ErrUndefinedSimilarity = errors.New("similarity undefined for empty token sets")
)
