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

package bg3data_test

import (
	"compress/gzip"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/ianlewis/go-dictzip"

	bg3data "github.com/RyanMuzzey/bg3-data"
	"github.com/RyanMuzzey/bg3-data/internal/testutil"
	"github.com/RyanMuzzey/bg3-data/loca"
)

var testEntries = []testutil.Entry{
	{
		ID:   "h00000000g0000g0000g0000g000000000001",
		Text: "Greetings, traveller.",
	},
	{
		ID:   "h00000000g0000g0000g0000g000000000002",
		Text: "Farewell.",
	},
}

var testEntriesMap = map[string]string{
	"h00000000g0000g0000g0000g000000000001": "Greetings, traveller.",
	"h00000000g0000g0000g0000g000000000002": "Farewell.",
}

// writeLoca writes a test .loca file and returns its path.
func writeLoca(t *testing.T, name string, entries []testutil.Entry) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, testutil.MakeLoca(entries), 0o600); err != nil {
		t.Fatal(err)
	}
	return path
}

// TestOpen tests Open on plain and compressed tables.
func TestOpen(t *testing.T) {
	t.Parallel()

	t.Run("plain", func(t *testing.T) {
		t.Parallel()

		l, err := bg3data.Open(writeLoca(t, "english.loca", testEntries))
		if err != nil {
			t.Fatalf("Open: %v", err)
		}
		if diff := cmp.Diff(testEntriesMap, l.Table().Map()); diff != "" {
			t.Fatalf("Open (-want, +got):\n%s", diff)
		}
	})

	t.Run("upper case extension", func(t *testing.T) {
		t.Parallel()

		l, err := bg3data.Open(writeLoca(t, "english.LOCA", testEntries))
		if err != nil {
			t.Fatalf("Open: %v", err)
		}
		if l.Len() != len(testEntries) {
			t.Fatalf("Open: got %d entries, want %d", l.Len(), len(testEntries))
		}
	})

	t.Run("gzip", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "english.loca.gz")
		f, err := os.Create(path)
		if err != nil {
			t.Fatal(err)
		}
		z := gzip.NewWriter(f)
		if _, err := z.Write(testutil.MakeLoca(testEntries)); err != nil {
			t.Fatal(err)
		}
		if err := z.Close(); err != nil {
			t.Fatal(err)
		}
		if err := f.Close(); err != nil {
			t.Fatal(err)
		}

		l, err := bg3data.Open(path)
		if err != nil {
			t.Fatalf("Open: %v", err)
		}
		if diff := cmp.Diff(testEntriesMap, l.Table().Map()); diff != "" {
			t.Fatalf("Open (-want, +got):\n%s", diff)
		}
	})

	t.Run("dictzip", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "english.loca.dz")
		f, err := os.Create(path)
		if err != nil {
			t.Fatal(err)
		}
		z, err := dictzip.NewWriter(f)
		if err != nil {
			t.Fatal(err)
		}
		if _, err := z.Write(testutil.MakeLoca(testEntries)); err != nil {
			t.Fatal(err)
		}
		if err := z.Close(); err != nil {
			t.Fatal(err)
		}
		if err := f.Close(); err != nil {
			t.Fatal(err)
		}

		l, err := bg3data.Open(path)
		if err != nil {
			t.Fatalf("Open: %v", err)
		}
		if diff := cmp.Diff(testEntriesMap, l.Table().Map()); diff != "" {
			t.Fatalf("Open (-want, +got):\n%s", diff)
		}
	})

	t.Run("wrong extension", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "english.dat")
		if err := os.WriteFile(path, testutil.MakeLoca(testEntries), 0o600); err != nil {
			t.Fatal(err)
		}

		_, err := bg3data.Open(path)
		if !errors.Is(err, bg3data.ErrWrongExtension) {
			t.Fatalf("Open: got %v, want %v", err, bg3data.ErrWrongExtension)
		}
	})

	t.Run("missing file", func(t *testing.T) {
		t.Parallel()

		_, err := bg3data.Open(filepath.Join(t.TempDir(), "missing.loca"))
		if !errors.Is(err, os.ErrNotExist) {
			t.Fatalf("Open: got %v, want %v", err, os.ErrNotExist)
		}
	})

	t.Run("corrupt table", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "corrupt.loca")
		if err := os.WriteFile(path, []byte("XXXXsome other format"), 0o600); err != nil {
			t.Fatal(err)
		}

		_, err := bg3data.Open(path)
		if !errors.Is(err, loca.ErrInvalidMagic) {
			t.Fatalf("Open: got %v, want %v", err, loca.ErrInvalidMagic)
		}
	})
}

// TestOpenAll tests opening all tables under a directory.
func TestOpenAll(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	for _, name := range []string{"english.loca", "french.loca"} {
		err := os.WriteFile(filepath.Join(dir, name), testutil.MakeLoca(testEntries), 0o600)
		if err != nil {
			t.Fatal(err)
		}
	}
	if err := os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("not a table"), 0o600); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "corrupt.loca"), []byte("XXXX"), 0o600); err != nil {
		t.Fatal(err)
	}

	tables, errs := bg3data.OpenAll(dir)
	if len(tables) != 2 {
		t.Fatalf("OpenAll: got %d tables, want 2", len(tables))
	}
	if len(errs) != 1 {
		t.Fatalf("OpenAll: got %d errors, want 1: %v", len(errs), errs)
	}
}

// TestLoca_Search tests case-folded handle lookup.
func TestLoca_Search(t *testing.T) {
	t.Parallel()

	l, err := bg3data.Open(writeLoca(t, "english.loca", []testutil.Entry{
		{
			ID:   "hABCDEF00g0000g0000g0000g000000000001",
			Text: "hello",
		},
		{
			ID:   "h00000000g0000g0000g0000g000000000002",
			Text: "goodbye",
		},
	}))
	if err != nil {
		t.Fatalf("Open: %v", err)
	}

	entries, err := l.Search("habcdef00g0000g0000g0000g000000000001")
	if err != nil {
		t.Fatalf("Search: %v", err)
	}
	expected := []loca.Entry{
		{
			ID:   "hABCDEF00g0000g0000g0000g000000000001",
			Text: "hello",
		},
	}
	if diff := cmp.Diff(expected, entries); diff != "" {
		t.Fatalf("Search (-want, +got):\n%s", diff)
	}

	entries, err = l.Search("h00000000g0000g0000g0000g000000000003")
	if err != nil {
		t.Fatalf("Search: %v", err)
	}
	if len(entries) != 0 {
		t.Fatalf("Search: got %d entries, want 0", len(entries))
	}
}
