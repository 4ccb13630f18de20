// Copyright 2025 Poiesic Systems
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.


// Package loader parses the raw tabular watchlist source into core entries.
//
// The source is a delimited file with at least 12 positional fields per
// row: id, name, type, program, title, five unused fields, and remarks.
// The literal token "-0-" marks an absent value. Sub-fields (date of
// birth, nationality, place of birth, aliases) are extracted from the
// remarks blob once at load time; extraction is heuristic and absence is
// an expected outcome, not a defect.
package loader

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/poiesic/sdnscreen/core"
)

const (
	// minFields is the minimum column count for a parseable row.
	minFields = 12

	// absentToken marks an empty value in the source format.
	absentToken = "-0-"

	colID      = 0
	colName    = 1
	colType    = 2
	colProgram = 3
	colTitle   = 4
	colRemarks = 11
)

// Loader reads watchlist entries from a CSV source file.
type Loader struct {
	path   string
	logger *slog.Logger
}

// Option configures a Loader.
type Option func(*Loader)

// WithLogger sets a custom logger.
// Default is slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(l *Loader) {
		if logger == nil {
			logger = slog.Default()
		}
		l.logger = logger
	}
}

// NewLoader creates a loader for the given source path.
// Returns ErrSourceNotFound when the path does not resolve to a file.
func NewLoader(path string, opts ...Option) (*Loader, error) {
	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrSourceNotFound, path)
		}
		return nil, fmt.Errorf("%w: %w", ErrSourceRead, err)
	}
	if info.IsDir() {
		return nil, fmt.Errorf("%w: %s is a directory", ErrSourceNotFound, path)
	}

	l := &Loader{
		path:   path,
		logger: slog.Default().With("component", "loader"),
	}
	for _, opt := range opts {
		opt(l)
	}
	return l, nil
}

// Load parses all entries from the source file in row order.
// Rows with fewer than the minimum column count are skipped, as are rows
// the CSV reader cannot parse; both are counted and logged, never fatal.
func (l *Loader) Load(ctx context.Context) ([]*core.Entry, error) {
	f, err := os.Open(l.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrSourceNotFound, l.path)
		}
		return nil, fmt.Errorf("%w: %w", ErrSourceRead, err)
	}
	defer f.Close()

	reader := csv.NewReader(f)
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true

	var entries []*core.Entry
	skipped := 0

	for {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			var parseErr *csv.ParseError
			if errors.As(err, &parseErr) {
				skipped++
				l.logger.Debug("skipping malformed row", "line", parseErr.Line, "err", err)
				continue
			}
			return nil, fmt.Errorf("%w: %w", ErrSourceRead, err)
		}

		if len(row) < minFields {
			skipped++
			l.logger.Debug("skipping short row", "fields", len(row))
			continue
		}

		entries = append(entries, entryFromRow(row))
	}

	l.logger.Info("loaded watchlist entries",
		"path", l.path,
		"entries", len(entries),
		"skipped", skipped)
	return entries, nil
}

// entryFromRow builds an immutable Entry from one source row, extracting
// the derived sub-fields from remarks.
func entryFromRow(row []string) *core.Entry {
	entry := &core.Entry{
		ID:      field(row[colID]),
		Name:    field(row[colName]),
		Type:    field(row[colType]),
		Program: field(row[colProgram]),
		Title:   field(row[colTitle]),
		Remarks: field(row[colRemarks]),
	}

	// Rows without a source identifier get a content-derived one so they
	// remain addressable in results.
	if entry.ID == "" {
		entry.ID = strconv.FormatUint(uint64(core.IDFromContent(entry.Name+"\x1f"+entry.Remarks)), 10)
	}

	entry.DOB = extractDOB(entry.Remarks)
	entry.Nationality = extractNationality(entry.Remarks)
	entry.POB = extractPOB(entry.Remarks)
	entry.Aliases = extractAliases(entry.Remarks)

	return entry
}

// field normalizes one raw column: trims whitespace and stray quotes, and
// maps the absent-value sentinel to empty.
func field(raw string) string {
	s := strings.TrimSpace(raw)
	s = strings.Trim(s, `"`)
	if s == absentToken {
		return ""
	}
	return s
}
