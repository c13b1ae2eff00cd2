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
	"bytes"
	"encoding/json"
	"fmt"
	"os"

	"github.com/RyanMuzzey/bg3-data/loca"
)

// ExportOptions are options for JSON export.
type ExportOptions struct {
	// Indent is the indentation applied to each JSON level.
	Indent string

	// EscapeHTML escapes <, >, and & in text values. Localization text
	// carries game markup tags, so this is off by default.
	EscapeHTML bool
}

// DefaultExportOptions is the default options for JSON export.
var DefaultExportOptions = &ExportOptions{
	Indent: "  ",
}

// ExportJSON renders the table as a JSON object mapping identifiers to
// localized text. Keys are emitted in sorted order.
func ExportJSON(t *loca.Table, options *ExportOptions) ([]byte, error) {
	if options == nil {
		options = DefaultExportOptions
	}

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(options.EscapeHTML)
	enc.SetIndent("", options.Indent)
	if err := enc.Encode(t.Map()); err != nil {
		return nil, fmt.Errorf("encoding table: %w", err)
	}
	return buf.Bytes(), nil
}

// WriteFile exports the table as JSON to the given path. The table is
// encoded in full before the file is created so that no output file is
// left behind on failure.
func WriteFile(path string, t *loca.Table, options *ExportOptions) error {
	b, err := ExportJSON(t, options)
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, b, 0o644); err != nil {
		return fmt.Errorf("writing %q: %w", path, err)
	}
	return nil
}
