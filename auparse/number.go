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

import "strconv"

// NumberKind tags the radix a Number was rendered in, so String can
// render it back in the same radix.
type NumberKind uint8

const (
	NumberHex NumberKind = iota
	NumberDec
	NumberOct
)

// Number is a parsed numeric field value. Hex and octal values are
// unsigned; decimal values may be signed, since several decimal fields
// (e.g. exit codes) carry negative errno values.
type Number struct {
	Kind   NumberKind
	U      uint64
	I      int64
	Signed bool
}

// NewHex constructs an unsigned hexadecimal Number.
func NewHex(u uint64) Number { return Number{Kind: NumberHex, U: u} }

// NewOctal constructs an unsigned octal Number.
func NewOctal(u uint64) Number { return Number{Kind: NumberOct, U: u} }

// NewDecimal constructs an unsigned decimal Number.
func NewDecimal(u uint64) Number { return Number{Kind: NumberDec, U: u} }

// NewSignedDecimal constructs a signed decimal Number.
func NewSignedDecimal(i int64) Number { return Number{Kind: NumberDec, I: i, Signed: true} }

// String renders the Number in its original radix: "0x" + hex digits, a
// plain decimal, or "0o" + octal digits. The prefixes are added here; the
// kernel writes hex and octal fields without them.
func (n Number) String() string {
	switch n.Kind {
	case NumberHex:
		return "0x" + strconv.FormatUint(n.U, 16)
	case NumberOct:
		return "0o" + strconv.FormatUint(n.U, 8)
	default:
		if n.Signed {
			return strconv.FormatInt(n.I, 10)
		}
		return strconv.FormatUint(n.U, 10)
	}
}

// Int64 returns the Number's value as a signed 64bit integer.
func (n Number) Int64() int64 {
	if n.Signed {
		return n.I
	}
	return int64(n.U)
}

// MarshalJSON renders a Number as a bare JSON integer for decimal values,
// matching §4.2's "Number -> integer for decimal" rule; hex and octal
// values carry no natural JSON integer base, so they render as their
// display string ("0x...", "0o...") instead, per the same rule and
// original_source/src/value.rs's Serialize impl for Number.
func (n Number) MarshalJSON() ([]byte, error) {
	switch n.Kind {
	case NumberHex, NumberOct:
		return quoteJSON(n.String()), nil
	default:
		if n.Signed {
			return []byte(strconv.FormatInt(n.I, 10)), nil
		}
		return []byte(strconv.FormatUint(n.U, 10)), nil
	}
}

// Quote records which delimiter (if any) wrapped a Str value, so String
// can re-render it exactly as the original line had it.
type Quote uint8

const (
	QuoteNone Quote = iota
	QuoteSingle
	QuoteDouble
	QuoteBraces
)
