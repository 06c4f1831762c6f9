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

// valueFor recognizes the value following key in a record of the given
// message type, per the dispatch described in §4.5. It returns the
// unconsumed remainder of buf on success.
func valueFor(p Parser, mtype MessageType, key Key, buf []byte) (Value, []byte, bool) {
	if key.IsArg() {
		return argValue(mtype, buf)
	}
	if key.IsArgLen() {
		if v, rest, ok := parseDecNumber(buf); ok {
			return v, rest, true
		}
		return unspecifiedValue(mtype, nil, buf)
	}
	if c, ok := key.IsCommon(); ok {
		return commonValue(p, mtype, c, buf)
	}
	if key.IsNameUID() || key.IsNameGID() {
		if v, rest, ok := parseDecNumber(buf); ok {
			return v, rest, true
		}
		return unspecifiedValue(mtype, key.Name(), buf)
	}
	return nameFieldValue(mtype, key.Name(), buf)
}

// commonValue dispatches Common keys to their characteristic recognizer,
// per §4.5's per-field table.
func commonValue(p Parser, mtype MessageType, c Common, buf []byte) (Value, []byte, bool) {
	switch c {
	case CommonArch, CommonCapFi, CommonCapFp, CommonCapFver:
		if v, rest, ok := parseHexNumber(buf); ok {
			return v, rest, true
		}
	case CommonArgc, CommonExit, CommonCapFe, CommonInode, CommonItem, CommonItems,
		CommonPid, CommonPPid, CommonSes, CommonSyscall:
		if v, rest, ok := parseDecNumber(buf); ok {
			return v, rest, true
		}
	case CommonMode:
		if v, rest, ok := parseOctNumber(buf); ok {
			return v, rest, true
		}
	case CommonMsg:
		return msgValue(p, mtype, buf)
	case CommonSuccess, CommonCwd, CommonDev, CommonTty, CommonComm, CommonExe,
		CommonName, CommonNametype, CommonSubj, CommonKey:
		if v, rest, ok := encodedValue(buf); ok {
			return v, rest, true
		}
	}
	return unspecifiedValue(mtype, []byte(c.String()), buf)
}

// argValue recognizes an EXECVE/SYSCALL argument value: SYSCALL's bare
// register dump is a hex Number (salvaged to a string on overflow);
// EXECVE's argv element (bare or index-split) follows the Encoded
// recognizer like any other field.
func argValue(mtype MessageType, buf []byte) (Value, []byte, bool) {
	if mtype == MessageTypeSYSCALL {
		if v, rest, ok := parseSyscallArgHex(buf); ok {
			return v, rest, true
		}
		return unspecifiedValue(mtype, nil, buf)
	}
	if v, rest, ok := encodedValue(buf); ok {
		return v, rest, true
	}
	return unspecifiedValue(mtype, nil, buf)
}

// nameFieldValue dispatches a general "Name(n)" key through the
// generated field-type table, falling back to the unspecified-value
// recognizer (which also carries the AVC "info" and SOCKADDR "SADDR"
// salvage branches) when the table has no entry or its recognizer
// doesn't match.
func nameFieldValue(mtype MessageType, name []byte, buf []byte) (Value, []byte, bool) {
	ft, known := fieldTypes[string(name)]
	if known {
		switch ft {
		case FieldNumericHex:
			if v, rest, ok := parseHexNumber(buf); ok {
				return v, rest, true
			}
		case FieldNumericDec:
			if v, rest, ok := parseDecNumber(buf); ok {
				return v, rest, true
			}
		case FieldNumericOct:
			if v, rest, ok := parseOctNumber(buf); ok {
				return v, rest, true
			}
		case FieldEncoded:
			if v, rest, ok := encodedValue(buf); ok {
				return v, rest, true
			}
		}
	}
	return unspecifiedValue(mtype, name, buf)
}
