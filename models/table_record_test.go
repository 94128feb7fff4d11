package models

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const citiesJSON = `{
  "caption": "Largest cities",
  "rows": [
    {"values": [{"column": "City", "value": "Paris"}, {"column": "Population", "value": "2100000"}]},
    {"values": [{"column": "City", "value": "Lyon"}, {"column": "Region", "value": "Rhône"}]},
    {"values": [{"column": "Population", "value": 500000}, {"column": "City", "value": null}]}
  ],
  "header": [
    {"columns": [{"name": "Cities", "value_dist": []}]},
    {"columns": [
      {"name": "City", "value_dist": [{"value": "Paris", "count": 1}, {"value": "Lyon", "count": 1}]},
      {"name": "Population", "value_dist": [{"value": "2100000", "count": 1}]}
    ]}
  ]
}`

func line(fields ...string) string {
	return strings.Join(fields, "\t")
}

func TestNewTableRecord_Defaults(t *testing.T) {
	tbl := NewTableRecord()
	assert.Equal(t, "NA", tbl.Label)
	assert.Equal(t, -1, tbl.TableID)
	assert.Zero(t, tbl.LabelConfidence)
	assert.Empty(t, tbl.Columns)
}

func TestLoadJSON(t *testing.T) {
	tbl, err := LoadJSON(citiesJSON, "France", "Cities", 7)
	require.NoError(t, err)

	assert.Equal(t, "France", tbl.Entity)
	assert.Equal(t, "Cities", tbl.Section)
	assert.Equal(t, 7, tbl.TableID)
	assert.Equal(t, "Largest cities", tbl.TableCaption)
	assert.Equal(t, []string{"City", "Population", "Region"}, tbl.Columns)
	require.Len(t, tbl.TableRows, 3)
	assert.Equal(t, map[string]string{"City": "Lyon", "Region": "Rhône"}, tbl.TableRows[1])
	assert.Equal(t, map[string]string{"Population": "500000", "City": ""}, tbl.TableRows[2])
	assert.Empty(t, tbl.ColumnMetaData)
}

func TestLoadJSON_ColumnsMatchRowKeys(t *testing.T) {
	body := `{"caption": "", "rows": [
	  {"values": [{"column": "a", "value": "1"}, {"column": "b", "value": "2"}, {"column": "c", "value": "3"}]},
	  {"values": [{"column": "a", "value": "4"}, {"column": "b", "value": "5"}, {"column": "c", "value": "6"}]}
	]}`
	tbl, err := LoadJSON(body, "e", "s", 1)
	require.NoError(t, err)

	assert.Len(t, tbl.Columns, 3)
	for _, row := range tbl.TableRows {
		assert.Len(t, row, 3)
	}
}

func TestLoadJSON_ColumnMeta(t *testing.T) {
	tbl, err := LoadJSON(citiesJSON, "France", "Cities", 7, WithColumnMeta())
	require.NoError(t, err)

	assert.Equal(t, map[string][]string{
		"City":       {"Paris", "Lyon"},
		"Population": {"2100000"},
	}, tbl.ColumnMetaData)
}

func TestLoadJSON_Malformed(t *testing.T) {
	tests := []struct {
		name string
		body string
		opts []LoadOption
	}{
		{name: "not json", body: `{caption`},
		{name: "not an object", body: `[1, 2]`},
		{name: "missing caption", body: `{"rows": []}`},
		{name: "missing rows", body: `{"caption": "x"}`},
		{name: "rows not a list", body: `{"caption": "x", "rows": 3}`},
		{name: "header requested but absent", body: `{"caption": "x", "rows": []}`, opts: []LoadOption{WithColumnMeta()}},
		{name: "header requested but empty", body: `{"caption": "x", "rows": [], "header": []}`, opts: []LoadOption{WithColumnMeta()}},
		{name: "last header level without columns", body: `{"caption": "x", "rows": [], "header": [{"columns": []}, {}]}`, opts: []LoadOption{WithColumnMeta()}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadJSON(tt.body, "e", "s", 1, tt.opts...)
			assert.ErrorIs(t, err, ErrMalformedTable)
		})
	}
}

func TestLoadJSON_BadHeaderIgnoredUnlessRequested(t *testing.T) {
	body := `{"caption": "x", "rows": [], "header": "oops"}`
	tbl, err := LoadJSON(body, "e", "s", 1)
	require.NoError(t, err)

	_, err = tbl.Header()
	assert.ErrorIs(t, err, ErrMalformedTable)
}

func TestHeader_Memoized(t *testing.T) {
	tbl, err := LoadJSON(citiesJSON, "France", "Cities", 7)
	require.NoError(t, err)

	first, err := tbl.Header()
	require.NoError(t, err)
	require.Len(t, first, 2)
	assert.Equal(t, "City", first[0].Name)
	assert.Equal(t, ValueCount{Value: "Paris", Count: 1}, first[0].ValueDist[0])

	// the cached header survives changes to the raw body
	tbl.TableJSON = "{}"
	second, err := tbl.Header()
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestLoadLine(t *testing.T) {
	tbl, err := LoadLine(line("France", "Cities", "12", "correct", "0.75", " <table></table> ", citiesJSON+"  ", "{|\n|}\n"))
	require.NoError(t, err)

	assert.Equal(t, "France", tbl.Entity)
	assert.Equal(t, "Cities", tbl.Section)
	assert.Equal(t, 12, tbl.TableID)
	assert.Equal(t, "correct", tbl.Label)
	assert.Equal(t, 0.75, tbl.LabelConfidence)
	assert.Equal(t, "<table></table>", tbl.TableHTML)
	assert.Equal(t, "{|\n|}", tbl.TableMarkup)
	assert.Equal(t, strings.TrimSpace(citiesJSON), tbl.TableJSON)
	assert.Len(t, tbl.TableRows, 3)
}

func TestLoadLine_Malformed(t *testing.T) {
	tests := []struct {
		name string
		line string
		want error
	}{
		{"too few fields", line("a", "b", "1"), ErrMalformedInputLine},
		{"too many fields", line("a", "b", "1", "NA", "0", "h", "{}", "m", "extra"), ErrMalformedInputLine},
		{"non numeric id", line("a", "b", "x", "NA", "0", "h", citiesJSON, "m"), ErrMalformedInputLine},
		{"non numeric confidence", line("a", "b", "1", "NA", "high", "h", citiesJSON, "m"), ErrMalformedInputLine},
		{"bad table json", line("a", "b", "1", "NA", "0", "h", `{"rows": []}`, "m"), ErrMalformedTable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tbl, err := LoadLine(tt.line)
			assert.ErrorIs(t, err, tt.want)
			assert.Nil(t, tbl)
		})
	}
}

func TestValueSet(t *testing.T) {
	tbl, err := LoadJSON(citiesJSON, "France", "Cities", 7)
	require.NoError(t, err)

	values := tbl.ValueSet()
	assert.Contains(t, values, "Paris")
	assert.Contains(t, values, "500000")
	assert.NotContains(t, values, "City")
}
