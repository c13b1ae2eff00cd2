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

// Package loca implements reading the binary .loca localization table
// format used by Baldur's Gate 3.
//
// A .loca file is a single flat table mapping string handles to localized
// UTF-8 text. All multi-byte integers are little-endian signed 32-bit. The
// layout is:
//
//  1. A 12-byte header: the ASCII magic "LOCA", 4 bytes of version/flags
//     data that are not interpreted, and baseTextAddr, the absolute offset
//     of the text block.
//  2. An index region of fixed-width records starting at offset 12 and
//     ending at baseTextAddr. Each record holds a 37-byte handle, an
//     optional '_'-prefixed NUL-terminated suffix that borrows bytes from
//     the following gap, a gap padding the record to a constant width, and
//     the cumulative end offset of the record's text within the text
//     block.
//  3. A text block of back-to-back NUL-terminated UTF-8 strings. Strings
//     are delimited by consecutive records' cumulative offsets rather than
//     explicit lengths.
package loca
