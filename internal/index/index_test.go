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

package index

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

// TestIndex_Lookup tests Lookup.
func TestIndex_Lookup(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		vals  []string
		query string

		expected []string
	}{
		{
			name:  "empty index",
			vals:  []string{},
			query: "foo",

			expected: nil,
		},
		{
			name:  "no match",
			vals:  []string{"bar", "baz", "foo"},
			query: "hoge",

			expected: nil,
		},
		{
			name:  "single match",
			vals:  []string{"foo", "bar", "baz"},
			query: "BAZ",

			expected: []string{"baz"},
		},
		{
			name:  "multiple matches keep original order",
			vals:  []string{"Foo", "bar", "foO", "foo"},
			query: "foo",

			expected: []string{"Foo", "foO", "foo"},
		},
	}

	for _, test := range tests {
		test := test
		t.Run(test.name, func(t *testing.T) {
			t.Parallel()

			idx := New(test.vals, strings.ToLower)

			result := idx.Lookup(strings.ToLower(test.query))
			if diff := cmp.Diff(test.expected, result); diff != "" {
				t.Fatalf("Index.Lookup (-want, +got):\n%s", diff)
			}
		})
	}
}
