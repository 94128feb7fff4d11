package extract

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/dtnitsch/wikitable-features/internal/common"
	"github.com/dtnitsch/wikitable-features/internal/logging"
	"github.com/dtnitsch/wikitable-features/models"
	"github.com/dtnitsch/wikitable-features/pkg/db"
	"github.com/dtnitsch/wikitable-features/pkg/features"
	"github.com/dtnitsch/wikitable-features/pkg/storage"
	"github.com/urfave/cli/v2"
)

// featureStore is the subset of the database used while extracting.
type featureStore interface {
	CreateRun(source string, bins int) (string, error)
	SaveFeatures(runID string, t *models.TableRecord, contentHash string, fs models.FeatureSet) (int64, error)
}

// FeaturesAction computes the feature mapping of every record in --input.
func FeaturesAction(c *cli.Context) error {
	cfg, err := common.ResolveConfig(c)
	if err != nil {
		return err
	}

	logger, cleanup := logging.New(os.Stderr, logging.Level(c.Bool("quiet"), c.Bool("verbose")), cfg.SeqURL)
	defer cleanup()

	source := c.String("input")
	in, err := common.OpenInput(source)
	if err != nil {
		return err
	}
	defer in.Close()

	var store featureStore
	if cfg.DBPath != "" {
		database, err := db.Open(cfg.DBPath)
		if err != nil {
			return err
		}
		defer database.Close()
		store = database
		logger.Info("persisting features", "db", database.Path())
	}

	out, err := run(logger, cfg, in, source, store)
	if err != nil {
		return err
	}

	data, err := storage.Encode(out, cfg.OutputFormat)
	if err != nil {
		return err
	}
	s := &storage.Storage{Stdout: c.App.Writer}
	return s.SaveFile(c.String("output"), data)
}

// run loads and featurizes every line of in. Records that fail to load or
// featurize are logged and reported as skipped; read and store errors abort.
func run(logger *slog.Logger, cfg *models.Config, in io.Reader, source string, store featureStore) (*FinalOutput, error) {
	startTime := time.Now()
	out := &FinalOutput{Results: []Result{}}

	var opts []models.LoadOption
	if cfg.ColumnMeta {
		opts = append(opts, models.WithColumnMeta())
	}

	if store != nil {
		runID, err := store.CreateRun(source, cfg.Bins)
		if err != nil {
			return nil, err
		}
		out.RunID = runID
		logger = logger.With("run_id", runID)
	}

	err := common.EachLine(in, func(n int, line string) error {
		out.Stats.TotalRecords++

		t, err := models.LoadLine(line, opts...)
		if err != nil {
			logger.Warn("skipping record", "line", n, "error", err)
			out.Skipped = append(out.Skipped, Skipped{Line: n, Error: err.Error()})
			return nil
		}

		fs, err := features.Compute(t, cfg.Bins)
		if err != nil {
			logger.Warn("skipping record", "line", n, "entity", t.Entity, "table_id", t.TableID, "error", err)
			out.Skipped = append(out.Skipped, Skipped{Line: n, Error: err.Error()})
			return nil
		}

		if store != nil {
			if _, err := store.SaveFeatures(out.RunID, t, common.RecordHash(t), fs); err != nil {
				return fmt.Errorf("line %d: %w", n, err)
			}
		}

		logger.Debug("record processed", "line", n, "entity", t.Entity, "table_id", t.TableID, "features", len(fs))
		out.Results = append(out.Results, Result{
			Line:            n,
			Entity:          t.Entity,
			Section:         t.Section,
			TableID:         t.TableID,
			Label:           t.Label,
			LabelConfidence: t.LabelConfidence,
			Features:        fs,
		})
		return nil
	})
	if err != nil {
		return nil, err
	}

	out.Stats.Successful = len(out.Results)
	out.Stats.Failed = len(out.Skipped)
	out.Stats.TotalTimeSeconds = time.Since(startTime).Seconds()
	logger.Info("extraction finished",
		"records", out.Stats.TotalRecords,
		"successful", out.Stats.Successful,
		"failed", out.Stats.Failed,
	)
	return out, nil
}
