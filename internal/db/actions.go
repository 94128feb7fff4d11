package db

import (
	"fmt"
	"io"
	"strings"

	"github.com/dtnitsch/wikitable-features/internal/common"
	dbpkg "github.com/dtnitsch/wikitable-features/pkg/db"
	"github.com/dtnitsch/wikitable-features/pkg/storage"
	"github.com/urfave/cli/v2"
)

// RunsAction lists the stored extraction runs.
func RunsAction(c *cli.Context) error {
	cfg, err := common.ResolveConfig(c)
	if err != nil {
		return err
	}

	database, err := dbpkg.Open(cfg.DBPath)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer database.Close()

	runs, err := database.ListRuns()
	if err != nil {
		return err
	}
	printRuns(c.App.Writer, runs)
	return nil
}

func printRuns(w io.Writer, runs []dbpkg.Run) {
	if len(runs) == 0 {
		fmt.Fprintln(w, "No runs found")
		return
	}

	fmt.Fprintf(w, "%-36s %-20s %-6s %-8s %s\n", "Run", "Created", "Bins", "Records", "Source")
	fmt.Fprintln(w, strings.Repeat("-", 100))
	for _, r := range runs {
		fmt.Fprintf(w, "%-36s %-20s %-6d %-8d %s\n",
			r.RunID,
			r.CreatedAt.Format("2006-01-02 15:04:05"),
			r.Bins,
			r.Records,
			r.Source,
		)
	}
	fmt.Fprintf(w, "\nTotal: %d runs\n", len(runs))
}

// RunAction prints the stored features of one run, the latest by default.
func RunAction(c *cli.Context) error {
	cfg, err := common.ResolveConfig(c)
	if err != nil {
		return err
	}

	database, err := dbpkg.Open(cfg.DBPath)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer database.Close()

	runID, err := GetRunIDOrLatest(c, database)
	if err != nil {
		return err
	}

	records, err := database.GetRunFeatures(runID)
	if err != nil {
		return err
	}
	if len(records) == 0 {
		return fmt.Errorf("run %s has no records", runID)
	}

	data, err := storage.Encode(records, cfg.OutputFormat)
	if err != nil {
		return err
	}
	s := &storage.Storage{Stdout: c.App.Writer}
	return s.SaveFile(c.String("output"), data)
}
