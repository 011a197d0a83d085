// Copyright 2016 The bergen authors
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

// Package label provides the flat name->value symbol tables used by the
// expression evaluator: one for global labels, one for local labels.
package label

// Value is the integer type stored against every label.
type Value = int64

// entry is a single name/value pair in insertion order.
type entry struct {
	name  string
	value Value
}

// SymbolTable is an append-only, order-preserving name->value mapping.
// Duplicate names are permitted; Find returns the first match.
type SymbolTable struct {
	entries []entry
}

// Append adds name/value as a new entry. It does not check for an existing
// entry with the same name: duplicate handling, if any, is the caller's
// responsibility.
func (t *SymbolTable) Append(name string, value Value) {
	t.entries = append(t.entries, entry{name, value})
}

// Find returns the value of the first entry inserted under name, and
// whether such an entry exists.
func (t *SymbolTable) Find(name string) (Value, bool) {
	for _, e := range t.entries {
		if e.name == name {
			return e.value, true
		}
	}
	return 0, false
}

// Len returns the number of entries, including duplicates.
func (t *SymbolTable) Len() int {
	return len(t.entries)
}
