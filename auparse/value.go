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

import (
	"bytes"
	"strconv"
)

// ValueKind tags the Value sum type described in spec §3/§4.2.
type ValueKind uint8

const (
	ValueEmpty ValueKind = iota
	ValueStr
	ValueOwned
	ValueNumber
	ValueList
	ValueMap
	ValueSegments
	ValueStringifiedList
	ValueSkipped
	ValueLiteral
)

// MapEntry is one ordered key/value pair inside a Value::Map (the msg='...'
// sub-map, §4.6).
type MapEntry struct {
	Key   []byte
	Value Value
}

// Value is the tagged union of body-value shapes. The zero Value is
// ValueEmpty.
type Value struct {
	kind ValueKind

	// ValueStr / ValueOwned
	quote Quote
	bytes []byte

	// ValueNumber
	number Number

	// ValueList / ValueStringifiedList
	list []Value

	// ValueMap
	entries []MapEntry

	// ValueSegments
	segments [][]byte

	// ValueSkipped
	skippedArgs  int
	skippedBytes int

	// ValueLiteral
	literal string
}

// Kind returns the tag of the Value.
func (v Value) Kind() ValueKind { return v.kind }

// Empty returns the empty Value, used for keys with no payload (e.g. a
// bare flag) and as the zero value.
func Empty() Value { return Value{kind: ValueEmpty} }

// Str constructs a Value that borrows bytes directly from parser input.
// It is transplanted into the owning Body's arena by Body.Push.
func Str(b []byte, q Quote) Value { return Value{kind: ValueStr, bytes: b, quote: q} }

// Owned constructs a Value whose bytes were synthesized by the parser
// itself (e.g. a hex-decoded blob) rather than borrowed from the input
// line. Body.Push arena-copies these bytes too and converts the variant
// to Str(QuoteNone), since once homed in the arena there is no remaining
// distinction worth keeping: see DESIGN.md for the grounding behind this.
func Owned(b []byte) Value { return Value{kind: ValueOwned, bytes: b} }

// NumberValue constructs a Value wrapping a parsed Number.
func NumberValue(n Number) Value { return Value{kind: ValueNumber, number: n} }

// List constructs a Value::List (e.g. a DNS resolution's address list).
func List(items []Value) Value { return Value{kind: ValueList, list: items} }

// Map constructs a Value::Map (the msg='...' sub-map, §4.6).
func Map(entries []MapEntry) Value { return Value{kind: ValueMap, entries: entries} }

// Segments constructs a Value::Segments: the reconstructed pieces of an
// EXECVE argument that was split across aN[0], aN[1], ... entries.
func Segments(parts [][]byte) Value { return Value{kind: ValueSegments, segments: parts} }

// StringifiedList constructs a Value::StringifiedList: a sequence whose
// members render individually but originated from one delimited field.
func StringifiedList(items []Value) Value { return Value{kind: ValueStringifiedList, list: items} }

// Skipped constructs a Value::Skipped, recording how many EXECVE
// arguments (and bytes) the kernel elided via "argc" > collected args.
func Skipped(args, bytes int) Value {
	return Value{kind: ValueSkipped, skippedArgs: args, skippedBytes: bytes}
}

// Literal constructs a Value::Literal: text synthesized by a downstream
// caller (e.g. a resolved syscall or signal name) rather than by the
// parser. The parser itself never produces this variant.
func Literal(s string) Value { return Value{kind: ValueLiteral, literal: s} }

// Bytes returns the underlying bytes of a Str or Owned Value.
func (v Value) Bytes() []byte { return v.bytes }

// Quote returns the quoting style of a Str Value.
func (v Value) Quote() Quote { return v.quote }

// Number returns the wrapped Number of a ValueNumber Value.
func (v Value) Number() Number { return v.number }

// List returns the items of a ValueList or ValueStringifiedList Value.
func (v Value) List() []Value { return v.list }

// Entries returns the ordered entries of a ValueMap Value.
func (v Value) Entries() []MapEntry { return v.entries }

// Segments returns the pieces of a ValueSegments Value.
func (v Value) Segments() [][]byte { return v.segments }

// Skipped returns the argument and byte counts of a ValueSkipped Value.
func (v Value) Skipped() (args, bytes int) { return v.skippedArgs, v.skippedBytes }

// Literal returns the text of a ValueLiteral Value.
func (v Value) Literal() string { return v.literal }

// String renders the Value approximately the way it would appear on the
// wire: quoted/braced strings keep their delimiters, numbers render in
// their original radix, lists and maps render bracketed/braced.
func (v Value) String() string {
	switch v.kind {
	case ValueEmpty:
		return ""
	case ValueStr, ValueOwned:
		return renderQuoted(v.bytes, v.quote)
	case ValueNumber:
		return v.number.String()
	case ValueList, ValueStringifiedList:
		var b bytes.Buffer
		b.WriteByte('[')
		for i, item := range v.list {
			if i > 0 {
				b.WriteByte(',')
			}
			b.WriteString(item.String())
		}
		b.WriteByte(']')
		return b.String()
	case ValueMap:
		var b bytes.Buffer
		b.WriteByte('{')
		for i, e := range v.entries {
			if i > 0 {
				b.WriteByte(' ')
			}
			b.Write(e.Key)
			b.WriteByte('=')
			b.WriteString(e.Value.String())
		}
		b.WriteByte('}')
		return b.String()
	case ValueSegments:
		var b bytes.Buffer
		for _, part := range v.segments {
			b.Write(part)
		}
		return b.String()
	case ValueSkipped:
		return "<skipped " + strconv.Itoa(v.skippedArgs) + " args, " + strconv.Itoa(v.skippedBytes) + " bytes>"
	case ValueLiteral:
		return v.literal
	default:
		return ""
	}
}

func renderQuoted(b []byte, q Quote) string {
	switch q {
	case QuoteSingle:
		return "'" + string(b) + "'"
	case QuoteDouble:
		return "\"" + string(b) + "\""
	case QuoteBraces:
		return "{ " + string(b) + " }"
	default:
		return string(b)
	}
}

// MarshalJSON implements the external serialization contract of §4.2.
func (v Value) MarshalJSON() ([]byte, error) {
	switch v.kind {
	case ValueEmpty:
		return []byte("null"), nil
	case ValueStr, ValueOwned:
		return quoteJSON(string(v.bytes)), nil
	case ValueNumber:
		return v.number.MarshalJSON()
	case ValueList, ValueStringifiedList:
		return marshalJSONList(v.list)
	case ValueMap:
		var b bytes.Buffer
		b.WriteByte('{')
		for i, e := range v.entries {
			if i > 0 {
				b.WriteByte(',')
			}
			b.Write(quoteJSON(string(e.Key)))
			b.WriteByte(':')
			vb, err := e.Value.MarshalJSON()
			if err != nil {
				return nil, err
			}
			b.Write(vb)
		}
		b.WriteByte('}')
		return b.Bytes(), nil
	case ValueSegments:
		return marshalJSONStringSlices(v.segments)
	case ValueSkipped:
		var b bytes.Buffer
		b.WriteString(`{"skipped_args":`)
		b.WriteString(strconv.Itoa(v.skippedArgs))
		b.WriteString(`,"skipped_bytes":`)
		b.WriteString(strconv.Itoa(v.skippedBytes))
		b.WriteByte('}')
		return b.Bytes(), nil
	case ValueLiteral:
		return quoteJSON(v.literal), nil
	default:
		return []byte("null"), nil
	}
}

func marshalJSONList(items []Value) ([]byte, error) {
	var b bytes.Buffer
	b.WriteByte('[')
	for i, item := range items {
		if i > 0 {
			b.WriteByte(',')
		}
		ib, err := item.MarshalJSON()
		if err != nil {
			return nil, err
		}
		b.Write(ib)
	}
	b.WriteByte(']')
	return b.Bytes(), nil
}

func marshalJSONStringSlices(parts [][]byte) ([]byte, error) {
	var b bytes.Buffer
	b.WriteByte('[')
	for i, part := range parts {
		if i > 0 {
			b.WriteByte(',')
		}
		b.Write(quoteJSON(string(part)))
	}
	b.WriteByte(']')
	return b.Bytes(), nil
}
