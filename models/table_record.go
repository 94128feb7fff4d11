package models

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"sync"
)

// inputFieldCount is the number of tab-separated fields in a record line.
const inputFieldCount = 8

// TableRecord is one archived Wikipedia table: its identity, the three raw
// representations and the rows/columns parsed out of the JSON body.
// A record is populated by a single load call and is read-only afterwards.
type TableRecord struct {
	Entity          string  `json:"entity" yaml:"entity"`
	Section         string  `json:"section" yaml:"section"`
	TableID         int     `json:"table_id" yaml:"table_id"`
	Label           string  `json:"label" yaml:"label"`
	LabelConfidence float64 `json:"label_confidence" yaml:"label_confidence"`

	TableHTML   string `json:"-" yaml:"-"`
	TableJSON   string `json:"-" yaml:"-"`
	TableMarkup string `json:"-" yaml:"-"`

	TableCaption   string              `json:"caption" yaml:"caption"`
	Columns        []string            `json:"columns" yaml:"columns"`
	TableRows      []map[string]string `json:"rows" yaml:"rows"`
	ColumnMetaData map[string][]string `json:"column_meta_data,omitempty" yaml:"column_meta_data,omitempty"`

	headerOnce sync.Once
	header     []HeaderColumn
	headerErr  error
}

// LoadOption tweaks how the JSON body is parsed.
type LoadOption func(*loadOptions)

type loadOptions struct {
	columnMeta bool
}

// WithColumnMeta asks the loader to fill ColumnMetaData from the last header
// level. Loading then fails if the header is missing.
func WithColumnMeta() LoadOption {
	return func(o *loadOptions) { o.columnMeta = true }
}

// NewTableRecord returns an empty record with the default label and an unset
// table id.
func NewTableRecord() *TableRecord {
	return &TableRecord{
		Label:          "NA",
		TableID:        -1,
		ColumnMetaData: make(map[string][]string),
	}
}

// LoadLine builds a record from one tab-separated line:
// entity, section, table_id, label, label_confidence, html, json, markup.
func LoadLine(line string, opts ...LoadOption) (*TableRecord, error) {
	fields := strings.Split(strings.TrimRight(line, "\r\n"), "\t")
	if len(fields) != inputFieldCount {
		return nil, fmt.Errorf("%w: expected %d fields, got %d", ErrMalformedInputLine, inputFieldCount, len(fields))
	}

	tableID, err := strconv.Atoi(strings.TrimSpace(fields[2]))
	if err != nil {
		return nil, fmt.Errorf("%w: table id %q: %v", ErrMalformedInputLine, fields[2], err)
	}
	confidence, err := strconv.ParseFloat(strings.TrimSpace(fields[4]), 64)
	if err != nil {
		return nil, fmt.Errorf("%w: label confidence %q: %v", ErrMalformedInputLine, fields[4], err)
	}

	t := NewTableRecord()
	t.Entity = fields[0]
	t.Section = fields[1]
	t.TableID = tableID
	t.Label = fields[3]
	t.LabelConfidence = confidence
	t.TableHTML = strings.TrimSpace(fields[5])
	t.TableJSON = strings.TrimSpace(fields[6])
	t.TableMarkup = strings.TrimSpace(fields[7])

	if err := t.parseTableData(opts...); err != nil {
		return nil, err
	}
	return t, nil
}

// LoadJSON builds a record from a JSON body and its identity fields. The HTML
// and markup representations stay empty.
func LoadJSON(body, entity, section string, tableID int, opts ...LoadOption) (*TableRecord, error) {
	t := NewTableRecord()
	t.Entity = entity
	t.Section = section
	t.TableID = tableID
	t.TableJSON = body

	if err := t.parseTableData(opts...); err != nil {
		return nil, err
	}
	return t, nil
}

// parseTableData fills caption, columns and rows from TableJSON.
func (t *TableRecord) parseTableData(opts ...LoadOption) error {
	var o loadOptions
	for _, opt := range opts {
		opt(&o)
	}

	var keys map[string]json.RawMessage
	if err := json.Unmarshal([]byte(t.TableJSON), &keys); err != nil {
		return fmt.Errorf("%w: %v", ErrMalformedTable, err)
	}
	if _, ok := keys["caption"]; !ok {
		return fmt.Errorf("%w: missing caption", ErrMalformedTable)
	}
	if _, ok := keys["rows"]; !ok {
		return fmt.Errorf("%w: missing rows", ErrMalformedTable)
	}

	var doc tableDocument
	if err := json.Unmarshal([]byte(t.TableJSON), &doc); err != nil {
		return fmt.Errorf("%w: %v", ErrMalformedTable, err)
	}

	t.TableCaption = rawText(doc.Caption)

	seen := make(map[string]bool)
	t.TableRows = make([]map[string]string, 0, len(doc.Rows))
	for _, row := range doc.Rows {
		cells := make(map[string]string, len(row.Values))
		for _, cell := range row.Values {
			if !seen[cell.Column] {
				seen[cell.Column] = true
				t.Columns = append(t.Columns, cell.Column)
			}
			cells[cell.Column] = rawText(cell.Value)
		}
		t.TableRows = append(t.TableRows, cells)
	}

	if o.columnMeta {
		header, err := t.Header()
		if err != nil {
			return err
		}
		for _, col := range header {
			values := make([]string, 0, len(col.ValueDist))
			for _, v := range col.ValueDist {
				values = append(values, v.Value)
			}
			t.ColumnMetaData[col.Name] = values
		}
	}

	return nil
}

// Header returns the columns of the last (most granular) header level. The
// JSON body is decoded once; later calls return the cached result.
func (t *TableRecord) Header() ([]HeaderColumn, error) {
	t.headerOnce.Do(func() {
		t.header, t.headerErr = decodeHeader(t.TableJSON)
	})
	return t.header, t.headerErr
}

func decodeHeader(body string) ([]HeaderColumn, error) {
	var doc headerDocument
	if err := json.Unmarshal([]byte(body), &doc); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedTable, err)
	}
	if len(doc.Header) == 0 {
		return nil, fmt.Errorf("%w: missing header", ErrMalformedTable)
	}

	var level headerLevel
	if err := json.Unmarshal(doc.Header[len(doc.Header)-1], &level); err != nil {
		return nil, fmt.Errorf("%w: last header level: %v", ErrMalformedTable, err)
	}
	if level.Columns == nil {
		return nil, fmt.Errorf("%w: last header level has no columns", ErrMalformedTable)
	}
	return level.Columns, nil
}

// ValueSet returns every distinct cell value across all rows and columns.
func (t *TableRecord) ValueSet() map[string]struct{} {
	values := make(map[string]struct{})
	for _, row := range t.TableRows {
		for _, v := range row {
			values[v] = struct{}{}
		}
	}
	return values
}
