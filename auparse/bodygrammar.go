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

// parseBody parses the key/value portion of a message following the
// per-type prefix handling of §4.4, then the generic key=value loop of
// §4.5/§4.6. AVC records get one synthetic entry, Name("granted"|"denied")
// -> List of the permission identifiers, built from their
// "avc:  denied  { perm } for" prefix; it is appended after every entry
// parsed from the rest of the line, which is the one documented exception
// to otherwise-preserved parse order (§7).
func parseBody(body *Body, mtype MessageType, buf []byte, p Parser) error {
	orig := buf
	var avcGranted bool
	var avcPerms [][]byte
	haveAVC := false

	switch mtype {
	case MessageTypeAVC:
		if rest, granted, perms, ok := parseAVCPrefix(buf); ok {
			buf = rest
			avcGranted = granted
			avcPerms = perms
			haveAVC = true
		}
	case MessageTypeTTY:
		if bytes.HasPrefix(buf, []byte("tty ")) {
			buf = buf[len("tty "):]
		}
	case MessageTypeMACPolicyLoad:
		if bytes.HasPrefix(buf, []byte("policy loaded ")) {
			buf = buf[len("policy loaded "):]
		}
	default:
		if bytes.HasPrefix(buf, []byte("netlabel: ")) {
			body.Push(KeyLiteral("netlabel"), Empty())
			buf = buf[len("netlabel: "):]
		}
	}

	if err := parseKVLoop(body, mtype, buf, p, orig); err != nil {
		return err
	}

	if haveAVC {
		verdict := "denied"
		if avcGranted {
			verdict = "granted"
		}
		items := make([]Value, len(avcPerms))
		for i, perm := range avcPerms {
			items[i] = Str(perm, QuoteNone)
		}
		body.Push(classifyGeneral([]byte(verdict)), List(items))
	}

	return nil
}

// parseAVCPrefix recognizes the "avc:  granted|denied  { perm ... } for "
// prefix particular to AVC records.
func parseAVCPrefix(buf []byte) (rest []byte, granted bool, perms [][]byte, ok bool) {
	if !bytes.HasPrefix(buf, []byte("avc:")) {
		return buf, false, nil, false
	}
	b := bytes.TrimLeft(buf[len("avc:"):], " ")
	switch {
	case bytes.HasPrefix(b, []byte("granted")):
		granted = true
		b = b[len("granted"):]
	case bytes.HasPrefix(b, []byte("denied")):
		granted = false
		b = b[len("denied"):]
	default:
		return buf, false, nil, false
	}
	b = bytes.TrimLeft(b, " ")
	if len(b) == 0 || b[0] != '{' {
		return buf, false, nil, false
	}
	closeIdx := bytes.IndexByte(b, '}')
	if closeIdx < 0 {
		return buf, false, nil, false
	}
	perms = bytes.Fields(bytes.TrimSpace(b[1:closeIdx]))
	b = bytes.TrimLeft(b[closeIdx+1:], " ")
	if bytes.HasPrefix(b, []byte("for ")) {
		b = b[len("for "):]
	}
	return b, granted, perms, true
}

// parseKVLoop consumes a run of "name=value" entries separated by
// isPairSeparator bytes. A failure before any entry has been pushed is
// ErrMalformedBody (the body never got off the ground); a failure after
// at least one entry parsed is ErrTrailingGarbage (the recognized prefix
// of the body was fine, what follows was not).
//
// When enrichment is disabled, a 0x1D byte doesn't separate pairs the way
// a space does: it marks the start of the enrichment section the daemon
// appended, which is discarded whole (§4.4) rather than parsed.
func parseKVLoop(body *Body, mtype MessageType, buf []byte, p Parser, orig []byte) error {
	if !p.Enriched {
		if idx := bytes.IndexByte(buf, 0x1d); idx >= 0 {
			buf = buf[:idx]
		}
	}
	buf = skipSeparators(buf, p.Enriched)
	for len(buf) > 0 {
		pairStart := buf
		name, rest, ok := scanKeyName(buf)
		if !ok {
			return bodyError(body, orig, pairStart)
		}
		// EXECVE split arguments carry an "[M]" index after the name.
		if mtype == MessageTypeEXECVE && len(rest) > 0 && rest[0] == '[' {
			if end := bytes.IndexByte(rest, ']'); end > 1 && allDecDigits(rest[1:end]) {
				name = buf[:len(name)+end+1]
				rest = rest[end+1:]
			}
		}
		buf = rest
		if len(buf) == 0 || buf[0] != '=' {
			return bodyError(body, orig, pairStart)
		}
		buf = buf[1:]

		key := classifyKey(mtype, name)
		value, rest2, ok := valueFor(p, mtype, key, buf)
		if !ok {
			return bodyError(body, orig, pairStart)
		}
		buf = rest2
		body.Push(key, value)

		buf = skipSeparators(buf, p.Enriched)
	}
	return nil
}

func bodyError(body *Body, orig, remainder []byte) error {
	if body.Len() == 0 {
		return newParseError(ErrMalformedBody, orig)
	}
	return newParseError(ErrTrailingGarbage, remainder)
}
