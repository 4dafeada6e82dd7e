// Copyright (c) 2022, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package ordmap provides a generic map that remembers insertion order.
// Items live in an append-only slice, and a map from key to slice index
// gives constant time lookup.
package ordmap

// KeyValue is one entry of a [Map].
type KeyValue[K comparable, V any] struct {
	Key   K
	Value V
}

// Map is an insertion-ordered map. The zero value is ready to use.
type Map[K comparable, V any] struct {

	// Order holds the entries in the order they were first added.
	Order []KeyValue[K, V]

	index map[K]int
}

// Add sets the value for key. A new key is appended at the end,
// while an existing key keeps its position and has its value replaced.
func (om *Map[K, V]) Add(key K, val V) {
	if i, ok := om.index[key]; ok {
		om.Order[i].Value = val
		return
	}
	if om.index == nil {
		om.index = make(map[K]int)
	}
	om.index[key] = len(om.Order)
	om.Order = append(om.Order, KeyValue[K, V]{key, val})
}

// Has reports whether key is present.
func (om *Map[K, V]) Has(key K) bool {
	_, ok := om.index[key]
	return ok
}

// ValueByKey returns the value for key, or the zero value if it is missing.
func (om *Map[K, V]) ValueByKey(key K) V {
	if i, ok := om.index[key]; ok {
		return om.Order[i].Value
	}
	var zero V
	return zero
}

// Len returns the number of entries.
func (om *Map[K, V]) Len() int {
	if om == nil {
		return 0
	}
	return len(om.Order)
}

// Values returns the values in order.
func (om *Map[K, V]) Values() []V {
	vs := make([]V, 0, om.Len())
	for _, kv := range om.Order {
		vs = append(vs, kv.Value)
	}
	return vs
}

// Reset removes all entries, keeping allocated storage.
func (om *Map[K, V]) Reset() {
	om.Order = om.Order[:0]
	clear(om.index)
}
