// Licensed to Elasticsearch B.V. under one or more contributor
// license agreements. See the NOTICE file distributed with
// this work for additional information regarding copyright
// ownership. Elasticsearch B.V. licenses this file to you under
// the Apache License, Version 2.0 (the "License"); you may
// not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing,
// software distributed under the License is distributed on an
// "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY
// KIND, either express or implied.  See the License for the
// specific language governing permissions and limitations
// under the License.

package auparse

import "bytes"

// BodyEntry is one key/value pair inside a Body, in the order it was
// parsed (AVC's synthesized entries, if any, are appended last).
type BodyEntry struct {
	Key   Key
	Value Value
}

// Body holds every key/value pair parsed from one Audit message, each
// Str/Owned value's bytes homed in an arena private to this Body so the
// Body can outlive the input line it was parsed from.
type Body struct {
	entries []BodyEntry
	arena   arena
}

// Len returns the number of entries in the Body.
func (b *Body) Len() int { return len(b.entries) }

// Entries returns the Body's entries in parse order.
func (b *Body) Entries() []BodyEntry { return b.entries }

// Get returns the first entry with the given key rendering, if present.
func (b *Body) Get(name string) (Value, bool) {
	for _, e := range b.entries {
		if e.Key.String() == name {
			return e.Value, true
		}
	}
	return Value{}, false
}

// Reserve pre-allocates room for at least n additional entries.
func (b *Body) Reserve(n int) {
	if cap(b.entries)-len(b.entries) >= n {
		return
	}
	grown := make([]BodyEntry, len(b.entries), len(b.entries)+n)
	copy(grown, b.entries)
	b.entries = grown
}

// Push appends one key/value pair, transplanting any borrowed bytes in
// value into the Body's own arena so they remain valid for the Body's
// lifetime independent of the original input buffer.
func (b *Body) Push(key Key, value Value) {
	b.entries = append(b.entries, BodyEntry{Key: key, Value: b.transplantValue(value)})
}

// Extend appends every entry from other's already-homed storage,
// re-transplanting each value's bytes into this Body's own arena.
func (b *Body) Extend(entries []BodyEntry) {
	b.Reserve(len(entries))
	for _, e := range entries {
		b.Push(e.Key, e.Value)
	}
}

// Retain removes every entry for which keep returns false, in place.
func (b *Body) Retain(keep func(BodyEntry) bool) {
	out := b.entries[:0]
	for _, e := range b.entries {
		if keep(e) {
			out = append(out, e)
		}
	}
	b.entries = out
}

// MarshalJSON implements the external serialization contract of §4.2: a
// Body serializes as an object mapping each entry's rendered key to its
// value, in parse order.
func (b Body) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, e := range b.entries {
		if i > 0 {
			buf.WriteByte(',')
		}
		buf.Write(quoteJSON(e.Key.String()))
		buf.WriteByte(':')
		vb, err := e.Value.MarshalJSON()
		if err != nil {
			return nil, err
		}
		buf.Write(vb)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// transplantValue copies any bytes value borrows from parser input into
// the Body's arena, recursing into List/Map/StringifiedList children.
// Owned is folded into Str(QuoteNone) once homed: see DESIGN.md for why
// the original distinction doesn't survive past this point.
func (b *Body) transplantValue(v Value) Value {
	switch v.kind {
	case ValueStr:
		v.bytes = b.arena.transplant(v.bytes)
		return v
	case ValueOwned:
		homed := b.arena.transplant(v.bytes)
		return Str(homed, QuoteNone)
	case ValueList, ValueStringifiedList:
		items := make([]Value, len(v.list))
		for i, item := range v.list {
			items[i] = b.transplantValue(item)
		}
		v.list = items
		return v
	case ValueMap:
		entries := make([]MapEntry, len(v.entries))
		for i, e := range v.entries {
			entries[i] = MapEntry{Key: b.arena.transplant(e.Key), Value: b.transplantValue(e.Value)}
		}
		v.entries = entries
		return v
	case ValueSegments:
		parts := make([][]byte, len(v.segments))
		for i, part := range v.segments {
			parts[i] = b.arena.transplant(part)
		}
		v.segments = parts
		return v
	default:
		return v
	}
}
