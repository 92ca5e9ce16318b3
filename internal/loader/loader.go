// Package loader reads and validates the labeled post corpus from a CSV file.
package loader

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"unicode/utf8"

	"go.uber.org/zap"

	"github.com/selivandex/climate-sentiment/internal/errs"
	"github.com/selivandex/climate-sentiment/pkg/logger"
	"github.com/selivandex/climate-sentiment/pkg/models"
)

// Required columns. The tweet ID column is optional; when present it is
// used to deduplicate records.
const (
	columnText     = "message"
	columnCategory = "sentiment"
	columnTweetID  = "tweetid"
)

// Loader reads the corpus for one analysis run.
type Loader struct {
	path string
}

// New creates a loader for the given CSV file.
func New(path string) *Loader {
	return &Loader{path: path}
}

// Load reads, validates and cleans the corpus. Rows with labels outside
// the recognized category set, duplicate tweet IDs or a malformed shape
// are dropped and counted. Rows whose text is empty after trimming are
// kept: they count in category distribution but carry no analyzable text.
// Failure is fatal to the run; there are no retries.
func (l *Loader) Load() (*models.Corpus, error) {
	logger.Info("loading corpus", zap.String("file", l.path))

	file, err := os.Open(l.path)
	if err != nil {
		return nil, errs.NewDataError("load", l.path, err)
	}
	defer file.Close()

	reader := csv.NewReader(file)
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err != nil {
		if err == io.EOF {
			return nil, errs.NewDataError("load", l.path, fmt.Errorf("file is empty"))
		}
		return nil, errs.NewDataError("load", l.path, fmt.Errorf("failed to read header: %w", err))
	}

	cols, err := resolveColumns(header)
	if err != nil {
		return nil, errs.NewDataError("load", l.path, err)
	}

	corpus := &models.Corpus{Source: l.path}
	seen := make(map[string]struct{})

	for line := 2; ; line++ {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			var parseErr *csv.ParseError
			if errors.As(err, &parseErr) {
				corpus.Dropped++
				logger.Warn("dropping unparseable row", zap.Int("line", line), zap.Error(err))
				continue
			}
			return nil, errs.NewDataError("load", l.path, fmt.Errorf("read failed at line %d: %w", line, err))
		}

		if cols.maxIndex() >= len(row) {
			corpus.Dropped++
			logger.Warn("dropping short row", zap.Int("line", line), zap.Int("fields", len(row)))
			continue
		}

		category, err := models.ParseCategory(row[cols.category])
		if err != nil {
			corpus.Dropped++
			logger.Warn("dropping row with unrecognized category",
				zap.Int("line", line), zap.String("value", row[cols.category]))
			continue
		}

		if cols.tweetID >= 0 {
			id := strings.TrimSpace(row[cols.tweetID])
			if id != "" {
				if _, dup := seen[id]; dup {
					corpus.Deduped++
					continue
				}
				seen[id] = struct{}{}
			}
		}

		text := strings.TrimSpace(row[cols.text])
		record := models.Record{
			Text:       text,
			Category:   category,
			TextLength: utf8.RuneCountInString(text),
			WordCount:  len(strings.Fields(text)),
		}
		if cols.tweetID >= 0 {
			record.TweetID = strings.TrimSpace(row[cols.tweetID])
		}

		corpus.Records = append(corpus.Records, record)
	}

	if len(corpus.Records) == 0 {
		return nil, errs.NewDataError("load", l.path, fmt.Errorf("no valid records in dataset"))
	}

	logger.Info("corpus loaded",
		zap.Int("records", len(corpus.Records)),
		zap.Int("dropped", corpus.Dropped),
		zap.Int("deduplicated", corpus.Deduped),
	)

	return corpus, nil
}

// columns holds resolved header indices. tweetID is -1 when absent.
type columns struct {
	text     int
	category int
	tweetID  int
}

func (c columns) maxIndex() int {
	max := c.text
	if c.category > max {
		max = c.category
	}
	if c.tweetID > max {
		max = c.tweetID
	}
	return max
}

// resolveColumns locates required columns by name, case-insensitively,
// so column order in the file does not matter.
func resolveColumns(header []string) (columns, error) {
	cols := columns{text: -1, category: -1, tweetID: -1}

	for i, name := range header {
		switch strings.ToLower(strings.TrimSpace(name)) {
		case columnText:
			cols.text = i
		case columnCategory:
			cols.category = i
		case columnTweetID:
			cols.tweetID = i
		}
	}

	if cols.text < 0 {
		return cols, fmt.Errorf("missing required column %q", columnText)
	}
	if cols.category < 0 {
		return cols, fmt.Errorf("missing required column %q", columnCategory)
	}

	return cols, nil
}
