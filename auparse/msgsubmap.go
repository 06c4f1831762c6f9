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

// msgValue recognizes the value of the Common "msg" key. When it is a
// single-quoted string and the Parser has SplitMsg enabled, its contents
// are parsed as an ordered sequence of their own key=value entries
// (§4.6, scenario (e)); otherwise the quoted text is kept verbatim.
func msgValue(p Parser, mtype MessageType, buf []byte) (Value, []byte, bool) {
	if len(buf) > 0 && buf[0] == '\'' {
		content, rest, ok := scanSingleQuoted(buf)
		if !ok {
			return Value{}, buf, false
		}
		if p.SplitMsg {
			if entries, ok := parseMsgSubMap(content); ok {
				return Map(entries), rest, true
			}
		}
		return Str(content, QuoteSingle), rest, true
	}
	if v, rest, ok := encodedValue(buf); ok {
		return v, rest, true
	}
	return unspecifiedValue(mtype, []byte("msg"), buf)
}

// parseMsgSubMap parses content as a space-separated sequence of
// key=value or key: value entries, preserving their original order. It
// fails (returning ok=false) on the first token that isn't a
// recognizable entry, so callers can fall back to treating the whole
// string as opaque.
func parseMsgSubMap(content []byte) ([]MapEntry, bool) {
	var entries []MapEntry
	buf := content
	for len(buf) > 0 {
		buf = skipSeparators(buf, false)
		if len(buf) == 0 {
			break
		}
		name, rest, ok := scanKeyName(buf)
		if !ok {
			return nil, false
		}
		buf = rest
		switch {
		case len(buf) > 0 && buf[0] == '=':
			buf = buf[1:]
		case len(buf) > 1 && buf[0] == ':' && buf[1] == ' ':
			buf = buf[2:]
		default:
			return nil, false
		}
		v, rest2, ok := msgEntryValue(buf)
		if !ok {
			return nil, false
		}
		buf = rest2
		entries = append(entries, MapEntry{Key: name, Value: v})
	}
	if len(entries) == 0 {
		return nil, false
	}
	return entries, true
}

// msgEntryValue recognizes one sub-map entry's value: first as Encoded
// (so "hostname=?" and "addr=?" become Empty, and a double-quoted safe
// string or hex blob is recognized the same way it is everywhere else),
// then as a run of words inside the enclosing single-quoted string (so a
// value like "terminal=/dev/pts/1" stops at the next "key=" rather than
// swallowing the rest of the line), then as a plain safe run.
// Single-quoting is deliberately not attempted here: the entries live
// inside an outer single-quoted string, so a nested "'" would instead
// have ended that outer string.
func msgEntryValue(buf []byte) (Value, []byte, bool) {
	if v, rest, ok := encodedValue(buf); ok {
		return v, rest, true
	}
	if content, rest, ok := wordsInsideSingleQuoted(buf); ok {
		return Str(content, QuoteNone), rest, true
	}
	if run, rest, ok := safeUnquotedRun(buf); ok {
		return Str(run, QuoteNone), rest, true
	}
	return Value{}, buf, false
}

// wordsInsideSingleQuoted consumes bytes up to (but not including) the
// next double quote or the next "SPACE identifier=" boundary, so a value
// containing embedded spaces is read in full while still stopping at the
// following entry.
func wordsInsideSingleQuoted(buf []byte) (content, rest []byte, ok bool) {
	i := 0
	for i < len(buf) {
		if buf[i] == '"' {
			break
		}
		if buf[i] == ' ' {
			j := i
			for j < len(buf) && buf[j] == ' ' {
				j++
			}
			if _, after, identOK := scanIdentifier(buf[j:]); identOK && len(after) > 0 && after[0] == '=' {
				break
			}
		}
		i++
	}
	if i == 0 {
		return nil, buf, false
	}
	return buf[:i], buf[i:], true
}
