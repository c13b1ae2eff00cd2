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

// Package index implements a generic sorted lookup index.
package index

import (
	"sort"
)

type keyed[V any] struct {
	key string
	val V
}

// Index is a sorted array index over values keyed by a caller-supplied key
// function.
type Index[V any] struct {
	entries []keyed[V]
}

// New creates an index from the given values. Values sharing a key are kept
// in their original relative order.
func New[V any](vals []V, key func(V) string) *Index[V] {
	entries := make([]keyed[V], 0, len(vals))
	for _, v := range vals {
		entries = append(entries, keyed[V]{
			key: key(v),
			val: v,
		})
	}
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].key < entries[j].key
	})

	return &Index[V]{
		entries: entries,
	}
}

// Lookup performs a binary search over the index and returns all values
// whose key equals the query.
func (idx *Index[V]) Lookup(query string) []V {
	i := sort.Search(len(idx.entries), func(i int) bool {
		return idx.entries[i].key >= query
	})

	var vals []V
	for ; i < len(idx.entries) && idx.entries[i].key == query; i++ {
		vals = append(vals, idx.entries[i].val)
	}
	return vals
}
