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

// classifyKey decides what shape a key name takes for a given message
// type, per §4.2/§4.5. EXECVE and SYSCALL attempt argument forms, but not
// the same ones: EXECVE input beginning with 'a' (and not "argc") tries
// aN_len, then aN[M], then aN; SYSCALL tries only aN. Every other message
// type, and anything that falls through the attempts above, goes through
// classifyGeneral, which never attempts argument forms itself.
func classifyKey(mtype MessageType, name []byte) Key {
	switch mtype {
	case MessageTypeEXECVE:
		if len(name) > 0 && name[0] == 'a' && string(name) != "argc" {
			if k, ok := parseArgLen(name); ok {
				return k
			}
			if k, ok := parseArgIndex(name); ok {
				return k
			}
			if k, ok := parseArg(name); ok {
				return k
			}
		}
	case MessageTypeSYSCALL:
		if k, ok := parseArg(name); ok {
			return k
		}
	}
	return classifyGeneral(name)
}

// classifyGeneral implements the message-type-agnostic fallback: a
// common-table hit, then a *uid suffix, then a *gid suffix, then a plain
// Name. It never attempts the EXECVE/SYSCALL argument forms.
func classifyGeneral(name []byte) Key {
	if c, ok := lookupCommon(name); ok {
		return KeyCommon(c)
	}
	if bytes.HasSuffix(name, []byte("uid")) {
		return KeyNameUID(name)
	}
	if bytes.HasSuffix(name, []byte("gid")) {
		return KeyNameGID(name)
	}
	return KeyName(name)
}

// parseArg recognizes "aN" (no index suffix).
func parseArg(name []byte) (Key, bool) {
	if len(name) < 2 || name[0] != 'a' {
		return Key{}, false
	}
	digits := name[1:]
	if !allDecDigits(digits) {
		return Key{}, false
	}
	n, ok := parseDecUint32(digits)
	if !ok {
		return Key{}, false
	}
	return KeyArg(n), true
}

// parseArgIndex recognizes "aN[M]".
func parseArgIndex(name []byte) (Key, bool) {
	if len(name) < 4 || name[0] != 'a' || name[len(name)-1] != ']' {
		return Key{}, false
	}
	open := bytes.IndexByte(name, '[')
	if open < 2 {
		return Key{}, false
	}
	nDigits := name[1:open]
	mDigits := name[open+1 : len(name)-1]
	if !allDecDigits(nDigits) || !allDecDigits(mDigits) || len(mDigits) == 0 {
		return Key{}, false
	}
	n, ok := parseDecUint32(nDigits)
	if !ok {
		return Key{}, false
	}
	m, ok := parseDecUint16(mDigits)
	if !ok {
		return Key{}, false
	}
	return KeyArgIndex(n, m), true
}

// parseArgLen recognizes "aN_len".
func parseArgLen(name []byte) (Key, bool) {
	const suffix = "_len"
	if len(name) <= len(suffix)+1 || name[0] != 'a' || !bytes.HasSuffix(name, []byte(suffix)) {
		return Key{}, false
	}
	digits := name[1 : len(name)-len(suffix)]
	if !allDecDigits(digits) {
		return Key{}, false
	}
	n, ok := parseDecUint32(digits)
	if !ok {
		return Key{}, false
	}
	return KeyArgLen(n), true
}

func allDecDigits(b []byte) bool {
	if len(b) == 0 {
		return false
	}
	for _, c := range b {
		if !isDecDigit(c) {
			return false
		}
	}
	return true
}

func parseDecUint32(b []byte) (uint32, bool) {
	var n uint64
	for _, c := range b {
		n = n*10 + uint64(c-'0')
		if n > 0xffffffff {
			return 0, false
		}
	}
	return uint32(n), true
}

func parseDecUint16(b []byte) (uint16, bool) {
	var n uint64
	for _, c := range b {
		n = n*10 + uint64(c-'0')
		if n > 0xffff {
			return 0, false
		}
	}
	return uint16(n), true
}
