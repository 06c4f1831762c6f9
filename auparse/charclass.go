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

// Character classes from spec §4.7.

func isHexDigit(c byte) bool {
	return (c >= '0' && c <= '9') || (c >= 'a' && c <= 'f') || (c >= 'A' && c <= 'F')
}

func isOctDigit(c byte) bool {
	return c >= '0' && c <= '7'
}

func isDecDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

// isSeparator is the §4.7 "separator" character class: space, newline, or
// 0x1D (ASCII GS). This is the value-boundary sense used by every
// fixed-shape recognizer's "followed by a separator" check; it does not
// vary with the Enriched switch (original_source/src/parser.rs's is_sep
// doesn't either). The pair-separator sense used to walk between
// key=value entries is isPairSeparator, below.
func isSeparator(c byte) bool {
	return c == ' ' || c == '\n' || c == 0x1d
}

// isPairSeparator reports whether c separates key=value pairs in the
// top-level body loop. 0x1D only counts there when enrichment is enabled;
// with it disabled, a 0x1D marks the start of the enrichment suffix that
// parseKVLoop discards instead of stepping over.
func isPairSeparator(c byte, enriched bool) bool {
	return c == ' ' || c == '\n' || (enriched && c == 0x1d)
}

// isSafeChar is the set of characters the kernel leaves un-hex-encoded:
// '!' or anything in '#'-'~'.
func isSafeChar(c byte) bool {
	return c == '!' || (c >= '#' && c <= '~')
}

// isSafeUnquotedChar is isSafeChar minus the quote and brace characters,
// so that an unquoted safe run never swallows the start of a quoted or
// braced value.
func isSafeUnquotedChar(c byte) bool {
	return isSafeChar(c) && c != '\'' && c != '{' && c != '}'
}

func isAlpha(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

func isAlnum(c byte) bool {
	return isAlpha(c) || isDecDigit(c)
}

func isIdentStart(c byte) bool {
	return isAlpha(c) || c == '_'
}

func isIdentCont(c byte) bool {
	return isAlnum(c) || c == '_'
}

// isKeyCont matches the tail of the "key name" grammar:
// [A-Za-z]+([A-Za-z0-9]|[-_])*
func isKeyCont(c byte) bool {
	return isAlnum(c) || c == '-' || c == '_'
}

// scanKeyName consumes a key name per §4.7 ("[A-Za-z]+([A-Za-z0-9]|[-_])*")
// from the front of buf.
func scanKeyName(buf []byte) (name, rest []byte, ok bool) {
	i := 0
	for i < len(buf) && isAlpha(buf[i]) {
		i++
	}
	if i == 0 {
		return nil, buf, false
	}
	j := i
	for j < len(buf) && isKeyCont(buf[j]) {
		j++
	}
	return buf[:j], buf[j:], true
}

// scanIdentifier consumes an identifier per §4.7 ("[A-Za-z_][A-Za-z0-9_]*").
func scanIdentifier(buf []byte) (name, rest []byte, ok bool) {
	if len(buf) == 0 || !isIdentStart(buf[0]) {
		return nil, buf, false
	}
	j := 1
	for j < len(buf) && isIdentCont(buf[j]) {
		j++
	}
	return buf[:j], buf[j:], true
}

func skipSeparators(buf []byte, enriched bool) []byte {
	i := 0
	for i < len(buf) && isPairSeparator(buf[i], enriched) {
		i++
	}
	return buf[i:]
}
