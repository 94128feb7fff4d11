package common

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/dtnitsch/wikitable-features/models"
	"github.com/urfave/cli/v2"
)

// ResolveConfig loads --config when given and applies explicitly set flags
// on top of it.
func ResolveConfig(c *cli.Context) (*models.Config, error) {
	cfg := models.DefaultConfig()
	if path := c.String("config"); path != "" {
		loaded, err := models.LoadConfig(path)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}

	if c.IsSet("bins") {
		cfg.Bins = c.Int("bins")
	}
	if c.IsSet("format") {
		cfg.OutputFormat = c.String("format")
	}
	if c.IsSet("db") {
		cfg.DBPath = c.String("db")
	}
	if c.IsSet("column-meta") {
		cfg.ColumnMeta = c.Bool("column-meta")
	}
	if c.IsSet("seq-url") {
		cfg.SeqURL = c.String("seq-url")
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// OpenInput opens path for reading; "" and "-" mean stdin.
func OpenInput(path string) (io.ReadCloser, error) {
	if path == "" || path == "-" {
		return io.NopCloser(os.Stdin), nil
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open input: %w", err)
	}
	return f, nil
}

// EachLine calls fn with every non-blank line of r and its 1-based number.
// Lines may be arbitrarily long.
func EachLine(r io.Reader, fn func(n int, line string) error) error {
	br := bufio.NewReader(r)
	n := 0
	for {
		line, err := br.ReadString('\n')
		if len(line) > 0 {
			n++
			if strings.TrimSpace(line) != "" {
				if ferr := fn(n, line); ferr != nil {
					return ferr
				}
			}
		}
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return fmt.Errorf("failed to read input: %w", err)
		}
	}
}
