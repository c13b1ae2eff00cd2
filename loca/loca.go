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

package loca

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"unicode/utf8"
)

var (
	// ErrInvalidMagic indicates that the buffer does not start with the
	// "LOCA" magic bytes.
	ErrInvalidMagic = errors.New("invalid magic bytes")

	// ErrUnexpectedEOF indicates that a fixed-size read ran past the end of
	// the buffer.
	ErrUnexpectedEOF = errors.New("unexpected end of buffer")

	// ErrInvalidTextLength indicates that a record's cumulative offset
	// produced a negative or out-of-range text span.
	ErrInvalidTextLength = errors.New("invalid text length")

	// ErrInvalidUTF8 indicates that a text span is not valid UTF-8.
	ErrInvalidUTF8 = errors.New("invalid UTF-8 text")

	// ErrDuplicateIdentifier indicates that two records share an identifier.
	ErrDuplicateIdentifier = errors.New("duplicate identifier")
)

var locaMagic = []byte("LOCA")

const (
	// headerSize is the magic, the uninterpreted version/flags bytes, and
	// the text block base address.
	headerSize = 12

	// idWidth is the fixed width of the base identifier field.
	idWidth = 37

	// gapWidth is the inter-record gap. Suffix bytes borrow from the gap so
	// every record has the same total width.
	gapWidth = 29

	offsetSize = 4
)

// Entry is a single localization table entry.
type Entry struct {
	// ID is the string handle, including the suffix if one is present
	// (e.g. "h1a2b3c4...ff_1"). Identifier bytes are kept as-is and not
	// reinterpreted as UTF-8.
	ID string

	// Text is the localized UTF-8 text.
	Text string
}

// Table is a decoded localization table. Entries retain the order they
// appear in the index region.
type Table struct {
	entries []Entry
	byID    map[string]int
}

// Len returns the number of entries in the table.
func (t *Table) Len() int {
	return len(t.entries)
}

// Entries returns the table's entries in index order. The returned slice is
// owned by the table and must not be modified.
func (t *Table) Entries() []Entry {
	return t.entries
}

// Get returns the text for the given identifier.
func (t *Table) Get(id string) (string, bool) {
	i, ok := t.byID[id]
	if !ok {
		return "", false
	}
	return t.entries[i].Text, true
}

// Map returns the table as an identifier to text map.
func (t *Table) Map() map[string]string {
	m := make(map[string]string, len(t.entries))
	for _, e := range t.entries {
		m[e.ID] = e.Text
	}
	return m
}

// Decode reads a full .loca file image and returns the decoded table. The
// buffer is not retained; the returned table is independent of it. Decode
// fails on the first malformed record and never returns a partial table.
func Decode(b []byte) (*Table, error) {
	if len(b) < headerSize {
		return nil, fmt.Errorf("%w: reading header", ErrUnexpectedEOF)
	}
	if !bytes.Equal(b[:len(locaMagic)], locaMagic) {
		return nil, fmt.Errorf("%w: %q", ErrInvalidMagic, b[:len(locaMagic)])
	}

	// Bytes 4:8 are version/flags data and are not interpreted.
	base := int(int32(binary.LittleEndian.Uint32(b[8:headerSize])))

	t := &Table{
		byID: map[string]int{},
	}

	// pos tracks the index region; text spans are sliced by absolute
	// position so the two never share a cursor.
	pos := headerSize
	cumulative := 0
	for pos < base {
		if pos+idWidth > len(b) {
			return nil, fmt.Errorf("%w: reading identifier at %d", ErrUnexpectedEOF, pos)
		}
		id := string(b[pos : pos+idWidth])
		pos += idWidth

		// An optional suffix borrows bytes from the gap. The terminating
		// NUL is left in place as the first gap byte.
		extraLen := 0
		if pos < len(b) && b[pos] == '_' {
			start := pos
			pos++
			for {
				if pos >= len(b) {
					return nil, fmt.Errorf("%w: reading suffix for %q", ErrUnexpectedEOF, id)
				}
				if b[pos] == 0 {
					break
				}
				pos++
			}
			id += string(b[start:pos])
			extraLen = pos - start
			if extraLen > gapWidth {
				return nil, fmt.Errorf("%w: suffix overruns record for %q", ErrUnexpectedEOF, id)
			}
		}

		pos += gapWidth - extraLen
		if pos+offsetSize > len(b) {
			return nil, fmt.Errorf("%w: reading offset for %q", ErrUnexpectedEOF, id)
		}
		next := int(int32(binary.LittleEndian.Uint32(b[pos : pos+offsetSize])))
		pos += offsetSize

		// The cumulative offset counts a trailing NUL that is not part of
		// the text.
		textLen := next - 1
		textStart := base + cumulative
		if textLen < 0 || textStart < 0 || textStart+textLen > len(b) {
			return nil, fmt.Errorf("%w: %d bytes at %d for %q", ErrInvalidTextLength, textLen, textStart, id)
		}
		span := b[textStart : textStart+textLen]
		if !utf8.Valid(span) {
			return nil, fmt.Errorf("%w: text for %q", ErrInvalidUTF8, id)
		}

		if _, ok := t.byID[id]; ok {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateIdentifier, id)
		}
		t.byID[id] = len(t.entries)
		t.entries = append(t.entries, Entry{
			ID:   id,
			Text: string(span),
		})

		cumulative += next
	}

	return t, nil
}
