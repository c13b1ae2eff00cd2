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

// Package testutil provides test fixture builders for .loca data.
package testutil

import (
	"encoding/binary"
	"fmt"
	"strings"
)

const (
	headerSize = 12
	idWidth    = 37
	gapWidth   = 29
	recordSize = idWidth + gapWidth + 4
)

// Entry is a logical localization entry used to build test buffers.
type Entry struct {
	// ID is the base identifier. It is right-padded with '0' to the fixed
	// 37-byte field width and must not be longer than that.
	ID string

	// Suffix is an optional identifier suffix written after the base
	// identifier, e.g. "_1". It must start with '_' if non-empty.
	Suffix string

	// Text is the localized text stored in the text block.
	Text string
}

// PadID right-pads an identifier to the fixed field width.
func PadID(id string) string {
	if len(id) > idWidth {
		panic(fmt.Sprintf("identifier too long: %q", id))
	}
	return id + strings.Repeat("0", idWidth-len(id))
}

// MakeLoca builds a .loca file image from the given entries following the
// fixed record layout: 37-byte identifier, optional NUL-terminated suffix
// borrowing from the 29-byte gap, and a little-endian cumulative text
// end offset counting the text's NUL terminator. Text block strings are
// NUL-terminated.
func MakeLoca(entries []Entry) []byte {
	base := headerSize + recordSize*len(entries)

	b := []byte("LOCA")
	b = append(b, 0, 0, 0, 0) // version/flags, not interpreted
	b = binary.LittleEndian.AppendUint32(b, uint32(base))

	var text []byte
	for _, e := range entries {
		b = append(b, []byte(PadID(e.ID))...)

		if len(e.Suffix) > 0 {
			if e.Suffix[0] != '_' {
				panic(fmt.Sprintf("suffix must start with '_': %q", e.Suffix))
			}
			if len(e.Suffix) > gapWidth {
				panic(fmt.Sprintf("suffix too long: %q", e.Suffix))
			}
			b = append(b, []byte(e.Suffix)...)
		}
		// The gap's zero bytes double as the suffix's NUL terminator.
		b = append(b, make([]byte, gapWidth-len(e.Suffix))...)

		b = binary.LittleEndian.AppendUint32(b, uint32(int32(len(e.Text)+1)))

		text = append(text, []byte(e.Text)...)
		text = append(text, 0)
	}

	return append(b, text...)
}
