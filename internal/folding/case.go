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

// Package folding implements text folding for identifier lookup.
package folding

import (
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/transform"
)

// CaseFolder performs simple case folding on the input so that lookups are
// case-insensitive. Localization handles are hex-like ASCII but are
// sometimes written with mixed case by tools.
type CaseFolder struct{}

// Transform implements [transform.Transformer.Transform].
func (*CaseFolder) Transform(dst, src []byte, atEOF bool) (int, int, error) {
	var nSrc, nDst int
	for nSrc < len(src) {
		c, size := utf8.DecodeRune(src[nSrc:])
		if c == utf8.RuneError && !atEOF {
			return nDst, nSrc, transform.ErrShortSrc
		}

		f := unicode.SimpleFold(c)
		for f > c {
			f = unicode.SimpleFold(f)
		}

		// NOTE: c could be utf8.RuneError, in which case size is 1 but the
		// encoded length is 3.
		if nDst+utf8.RuneLen(f) > len(dst) {
			return nDst, nSrc, transform.ErrShortDst
		}
		nDst += utf8.EncodeRune(dst[nDst:], f)
		nSrc += size
	}

	return nDst, nSrc, nil
}

// Reset implements [transform.Transformer.Reset].
func (*CaseFolder) Reset() {}

// Fold folds s for use as a lookup key.
func Fold(s string) (string, error) {
	folded, _, err := transform.String(&CaseFolder{}, s)
	if err != nil {
		//nolint:wrapcheck // error is returned to callers that wrap it.
		return "", err
	}
	return folded, nil
}
