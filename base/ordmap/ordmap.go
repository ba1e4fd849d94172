// Copyright (c) 2026, Tiny Graphics Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

/*
Package ordmap implements an ordered map: a slice that retains the
order in which items were added, paired with a map for fast key-based
lookup of the slice index.

The API is a deliberately minimal subset of heavier ordered-map
implementations. Adding and lookup are fast; deletion is slower
because the index map above the deleted entry must be renumbered.
The ordered slice is exported so callers can range over entries
directly in insertion order.
*/
package ordmap

import "slices"

// KeyValue represents a key-value pair.
type KeyValue[K comparable, V any] struct {
	Key   K
	Value V
}

// Map is a generic insertion-ordered map. Order holds the entries in
// the order added; Map holds the index of each key within Order.
type Map[K comparable, V any] struct {

	// Order is the ordered list of entries, in the order added.
	Order []KeyValue[K, V]

	// Map is the key to index mapping.
	Map map[K]int
}

// New returns a new ordered map.
func New[K comparable, V any]() *Map[K, V] {
	return &Map[K, V]{
		Map: make(map[K]int),
	}
}

// Init initializes the map if it isn't already.
func (om *Map[K, V]) Init() {
	if om.Map == nil {
		om.Map = make(map[K]int)
	}
}

// Add adds a value for the given key. If the key already exists,
// its value is replaced in place, retaining the original order.
func (om *Map[K, V]) Add(key K, val V) {
	om.Init()
	if idx, has := om.Map[key]; has {
		om.Order[idx] = KeyValue[K, V]{Key: key, Value: val}
	} else {
		om.Map[key] = len(om.Order)
		om.Order = append(om.Order, KeyValue[K, V]{Key: key, Value: val})
	}
}

// ValueByKey returns the value for the given key, with a zero value
// returned for a missing key. See [Map.ValueByKeyTry] for one that
// returns a bool for missing keys.
func (om *Map[K, V]) ValueByKey(key K) V {
	if idx, ok := om.Map[key]; ok {
		return om.Order[idx].Value
	}
	var zv V
	return zv
}

// ValueByKeyTry returns the value for the given key,
// with false returned for a missing key.
func (om *Map[K, V]) ValueByKeyTry(key K) (V, bool) {
	if idx, ok := om.Map[key]; ok {
		return om.Order[idx].Value, true
	}
	var zv V
	return zv, false
}

// HasKey returns whether the map contains the given key.
func (om *Map[K, V]) HasKey(key K) bool {
	_, has := om.Map[key]
	return has
}

// IndexByKey returns the index of the given key, with -1 for a missing key.
func (om *Map[K, V]) IndexByKey(key K) int {
	idx, ok := om.Map[key]
	if !ok {
		return -1
	}
	return idx
}

// ValueByIndex returns the value at the given index in the ordered slice.
func (om *Map[K, V]) ValueByIndex(idx int) V {
	return om.Order[idx].Value
}

// KeyByIndex returns the key at the given index in the ordered slice.
func (om *Map[K, V]) KeyByIndex(idx int) K {
	return om.Order[idx].Key
}

// Keys returns all keys in insertion order.
func (om *Map[K, V]) Keys() []K {
	keys := make([]K, len(om.Order))
	for i, kv := range om.Order {
		keys[i] = kv.Key
	}
	return keys
}

// Len returns the number of items in the map.
func (om *Map[K, V]) Len() int {
	if om == nil {
		return 0
	}
	return len(om.Order)
}

// DeleteKey deletes the entry with the given key, renumbering the
// index map above it. It returns whether the key was present.
func (om *Map[K, V]) DeleteKey(key K) bool {
	idx, ok := om.Map[key]
	if !ok {
		return false
	}
	for o := idx + 1; o < len(om.Order); o++ {
		om.Map[om.Order[o].Key] = o - 1
	}
	delete(om.Map, key)
	om.Order = slices.Delete(om.Order, idx, idx+1)
	return true
}
