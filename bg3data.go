// Copyright 2025 Ryan Muzzey
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

package bg3data

import (
	"compress/gzip"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/ianlewis/go-dictzip"

	"github.com/RyanMuzzey/bg3-data/internal/folding"
	"github.com/RyanMuzzey/bg3-data/internal/index"
	"github.com/RyanMuzzey/bg3-data/loca"
)

// ErrWrongExtension indicates that a path does not look like a
// localization table file.
var ErrWrongExtension = errors.New("bad extension")

// Loca is an opened localization table file.
type Loca struct {
	path  string
	table *loca.Table

	// idIndex is built lazily on first search.
	idIndex *index.Index[loca.Entry]
}

// OpenAll opens all localization tables under a directory. It returns all
// successfully opened tables along with any errors that occurred.
func OpenAll(path string) ([]*Loca, []error) {
	var tables []*Loca
	var errs []error
	if err := filepath.WalkDir(path, func(path string, info fs.DirEntry, err error) error {
		// Walking the file path will ignore errors.
		if err != nil {
			errs = append(errs, err)
			return nil
		}
		if info.IsDir() || !hasLocaExt(path) {
			return nil
		}
		l, err := Open(path)
		if err != nil {
			errs = append(errs, err)
			return nil
		}
		tables = append(tables, l)
		return nil
	}); err != nil {
		errs = append(errs, err)
		return nil, errs
	}
	return tables, errs
}

// Open opens and decodes the localization table at the given path. The
// path must have a .loca, .loca.gz, or .loca.dz extension
// (case-insensitive); compressed tables are decompressed transparently.
func Open(path string) (*Loca, error) {
	if !hasLocaExt(path) {
		return nil, fmt.Errorf("%w: %v", ErrWrongExtension, filepath.Ext(path))
	}

	b, err := readFile(path)
	if err != nil {
		return nil, err
	}

	table, err := loca.Decode(b)
	if err != nil {
		return nil, fmt.Errorf("decoding %q: %w", path, err)
	}

	return &Loca{
		path:  path,
		table: table,
	}, nil
}

// Path returns the path the table was opened from.
func (l *Loca) Path() string {
	return l.path
}

// Table returns the decoded localization table.
func (l *Loca) Table() *loca.Table {
	return l.table
}

// Len returns the number of entries in the table.
func (l *Loca) Len() int {
	return l.table.Len()
}

// Search returns the entries whose identifier matches the query under case
// folding. Handles are hex-like ASCII so this is effectively a
// case-insensitive exact lookup.
func (l *Loca) Search(query string) ([]loca.Entry, error) {
	if l.idIndex == nil {
		var buildErr error
		l.idIndex = index.New(l.table.Entries(), func(e loca.Entry) string {
			folded, err := folding.Fold(e.ID)
			if err != nil && buildErr == nil {
				buildErr = err
			}
			return folded
		})
		if buildErr != nil {
			l.idIndex = nil
			return nil, fmt.Errorf("folding identifiers: %w", buildErr)
		}
	}

	foldedQuery, err := folding.Fold(query)
	if err != nil {
		return nil, fmt.Errorf("folding query %q: %w", query, err)
	}

	return l.idIndex.Lookup(foldedQuery), nil
}

// hasLocaExt reports whether the path has a localization table extension.
func hasLocaExt(path string) bool {
	name := strings.ToLower(filepath.Base(path))
	return strings.HasSuffix(name, ".loca") ||
		strings.HasSuffix(name, ".loca.gz") ||
		strings.HasSuffix(name, ".loca.dz")
}

// readFile reads the full table image, decompressing if needed.
func readFile(path string) ([]byte, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening %q: %w", path, err)
	}
	defer f.Close()

	var r io.Reader = f
	switch strings.ToLower(filepath.Ext(path)) {
	case ".gz":
		zr, err := gzip.NewReader(f)
		if err != nil {
			return nil, fmt.Errorf("opening %q: %w", path, err)
		}
		defer zr.Close()
		r = zr
	case ".dz":
		zr, err := dictzip.NewReader(f)
		if err != nil {
			return nil, fmt.Errorf("opening %q: %w", path, err)
		}
		defer zr.Close()
		r = zr
	}

	b, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("reading %q: %w", path, err)
	}
	return b, nil
}
