package db

import (
	"fmt"

	dbpkg "github.com/dtnitsch/wikitable-features/pkg/db"
	"github.com/urfave/cli/v2"
)

// runLister is the part of the database needed to pick a default run.
type runLister interface {
	ListRuns() ([]dbpkg.Run, error)
}

// GetRunIDOrLatest returns the run ID from args, or the latest run if not provided
func GetRunIDOrLatest(c *cli.Context, database runLister) (string, error) {
	if c.NArg() > 0 {
		return c.Args().First(), nil
	}
	return latestRunID(database)
}

func latestRunID(database runLister) (string, error) {
	runs, err := database.ListRuns()
	if err != nil {
		return "", fmt.Errorf("failed to get latest run: %w", err)
	}
	if len(runs) == 0 {
		return "", fmt.Errorf("no runs found. Run 'wikitable-features features --db ...' first")
	}
	return runs[0].RunID, nil
}
