package main

import (
	"fmt"
	"os"

	dbactions "github.com/dtnitsch/wikitable-features/internal/db"
	"github.com/dtnitsch/wikitable-features/internal/extract"
	"github.com/dtnitsch/wikitable-features/internal/words"
	"github.com/dtnitsch/wikitable-features/models"
	"github.com/urfave/cli/v2"
)

func main() {
	if err := newApp().Run(os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func newApp() *cli.App {
	commonFlags := []cli.Flag{
		&cli.StringFlag{Name: "config", Aliases: []string{"c"}, Usage: "YAML config file"},
		&cli.StringFlag{Name: "format", Aliases: []string{"f"}, Value: models.DefaultOutputFormat, Usage: "output format: json or yaml"},
		&cli.StringFlag{Name: "output", Aliases: []string{"o"}, Usage: "write output to this file instead of stdout"},
		&cli.StringFlag{Name: "seq-url", Usage: "also ship logs to this Seq server"},
		&cli.BoolFlag{Name: "quiet", Aliases: []string{"q"}, Usage: "only log errors"},
		&cli.BoolFlag{Name: "verbose", Aliases: []string{"v"}, Usage: "log every record"},
	}
	inputFlag := &cli.StringFlag{Name: "input", Aliases: []string{"i"}, Value: "-", Usage: "tab-separated table records, - for stdin"}
	dbFlag := &cli.StringFlag{Name: "db", Usage: "SQLite feature store path"}

	return &cli.App{
		Name:  "wikitable-features",
		Usage: "Compute extraction-quality features for archived Wikipedia tables",
		Commands: []*cli.Command{
			{
				Name:   "features",
				Usage:  "Compute the feature mapping of every record",
				Action: extract.FeaturesAction,
				Flags: append([]cli.Flag{
					inputFlag,
					dbFlag,
					&cli.IntFlag{Name: "bins", Aliases: []string{"b"}, Value: models.DefaultBinCount, Usage: "number of position and coverage buckets"},
					&cli.BoolFlag{Name: "column-meta", Usage: "require and load per-column metadata from the header"},
				}, commonFlags...),
			},
			{
				Name:   "words",
				Usage:  "Aggregate the rare column vocabulary across records",
				Action: words.WordsAction,
				Flags: append([]cli.Flag{
					inputFlag,
					&cli.IntFlag{Name: "top", Aliases: []string{"n"}, Value: 25, Usage: "number of words to report, -1 for all"},
					&cli.BoolFlag{Name: "list", Usage: "print a numbered list instead of structured output"},
				}, commonFlags...),
			},
			{
				Name:   "runs",
				Usage:  "List stored extraction runs",
				Action: dbactions.RunsAction,
				Flags:  append([]cli.Flag{dbFlag}, commonFlags...),
			},
			{
				Name:      "run",
				Usage:     "Show the stored features of a run (latest by default)",
				ArgsUsage: "[run-id]",
				Action:    dbactions.RunAction,
				Flags:     append([]cli.Flag{dbFlag}, commonFlags...),
			},
		},
	}
}
