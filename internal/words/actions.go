package words

import (
	"io"
	"log/slog"
	"os"

	"github.com/dtnitsch/wikitable-features/internal/common"
	"github.com/dtnitsch/wikitable-features/internal/logging"
	"github.com/dtnitsch/wikitable-features/models"
	"github.com/dtnitsch/wikitable-features/pkg/mapreduce"
	"github.com/dtnitsch/wikitable-features/pkg/storage"
	"github.com/urfave/cli/v2"
)

// Output is the corpus-wide rare vocabulary.
type Output struct {
	Tables int                   `json:"tables" yaml:"tables"`
	Words  []mapreduce.WordCount `json:"words" yaml:"words"`
}

// WordsAction aggregates the rare column words of every record in --input.
func WordsAction(c *cli.Context) error {
	cfg, err := common.ResolveConfig(c)
	if err != nil {
		return err
	}

	logger, cleanup := logging.New(os.Stderr, logging.Level(c.Bool("quiet"), c.Bool("verbose")), cfg.SeqURL)
	defer cleanup()

	in, err := common.OpenInput(c.String("input"))
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := collect(logger, in, c.Int("top"))
	if err != nil {
		return err
	}

	if c.Bool("list") {
		mapreduce.PrintTopKeywords(c.App.Writer, wordMap(out.Words), len(out.Words))
		return nil
	}

	data, err := storage.Encode(out, cfg.OutputFormat)
	if err != nil {
		return err
	}
	s := &storage.Storage{Stdout: c.App.Writer}
	return s.SaveFile(c.String("output"), data)
}

// collect maps every record to its rare-word counts and reduces them.
func collect(logger *slog.Logger, in io.Reader, top int) (*Output, error) {
	var intermediate []map[string]int
	err := common.EachLine(in, func(n int, line string) error {
		t, err := models.LoadLine(line)
		if err != nil {
			logger.Warn("skipping record", "line", n, "error", err)
			return nil
		}
		counts, err := mapreduce.Map(t)
		if err != nil {
			logger.Warn("skipping record", "line", n, "entity", t.Entity, "table_id", t.TableID, "error", err)
			return nil
		}
		intermediate = append(intermediate, counts)
		return nil
	})
	if err != nil {
		return nil, err
	}

	logger.Info("word distribution collected", "tables", len(intermediate))
	return &Output{
		Tables: len(intermediate),
		Words:  mapreduce.TopN(mapreduce.Reduce(intermediate), top),
	}, nil
}

func wordMap(counts []mapreduce.WordCount) map[string]int {
	m := make(map[string]int, len(counts))
	for _, wc := range counts {
		m[wc.Word] = wc.Count
	}
	return m
}
