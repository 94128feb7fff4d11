package words

import (
	"io"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dtnitsch/wikitable-features/pkg/mapreduce"
)

func line(values ...string) string {
	var dist []string
	for _, v := range values {
		dist = append(dist, `{"value": "`+v+`", "count": 1}`)
	}
	body := `{"caption": "", "rows": [], "header": [{"columns": [{"name": "a", "value_dist": [` + strings.Join(dist, ",") + `]}]}]}`
	return strings.Join([]string{"e", "s", "1", "NA", "0", "<p></p>", body, "|x"}, "\t")
}

func TestCollect(t *testing.T) {
	input := strings.Join([]string{
		line("red fox", "blue"),
		line("Red wolf"),
		"not a record",
		strings.Join([]string{"e", "s", "1", "NA", "0", "h", `{"caption": "", "rows": []}`, "m"}, "\t"),
	}, "\n")

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	out, err := collect(logger, strings.NewReader(input), 2)
	require.NoError(t, err)

	assert.Equal(t, 2, out.Tables)
	assert.Equal(t, []mapreduce.WordCount{{Word: "red", Count: 2}, {Word: "blue", Count: 1}}, out.Words)
}
