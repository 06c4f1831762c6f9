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

import "fmt"

// MessageType is the numeric id of an Audit message, corresponding to the
// "type=..." part of an Audit log line. It uses the same 32bit unsigned
// values as the kernel Audit API.
type MessageType uint32

// Multipart event range, mirroring auparse's is_multipart logic: kernel
// message types in [1300, 2100) are always part of a multi-record event,
// as is the daemon-synthesized LOGIN record.
const multipartRangeStart, multipartRangeEnd = 1300, 2100

// Raw returns the underlying numeric message type id.
func (t MessageType) Raw() uint32 { return uint32(t) }

// String renders the message type's symbolic name if known, or
// "UNKNOWN[n]" otherwise.
func (t MessageType) String() string {
	if name, ok := msgTypeNames[uint32(t)]; ok {
		return name
	}
	return fmt.Sprintf("UNKNOWN[%d]", uint32(t))
}

// IsMultipart reports whether messages of this type are always part of a
// multi-record event sharing one EventID.
func (t MessageType) IsMultipart() bool {
	n := uint32(t)
	return (n >= multipartRangeStart && n < multipartRangeEnd) || t == MessageTypeLOGIN
}

// MarshalJSON implements the external serialization contract of §4.2: a
// MessageType serializes as its display string.
func (t MessageType) MarshalJSON() ([]byte, error) {
	return quoteJSON(t.String()), nil
}

// ParseMessageType recognizes either a known symbolic name or the
// "UNKNOWN[n]" form.
func ParseMessageType(s []byte) (MessageType, bool) {
	if id, ok := msgTypeIDs[string(s)]; ok {
		return MessageType(id), true
	}
	if n, ok := parseUnknownBracket(s); ok {
		return MessageType(n), true
	}
	return 0, false
}

func parseUnknownBracket(s []byte) (uint32, bool) {
	const prefix, suffix = "UNKNOWN[", "]"
	if len(s) <= len(prefix)+len(suffix) {
		return 0, false
	}
	if string(s[:len(prefix)]) != prefix || s[len(s)-1] != ']' {
		return 0, false
	}
	digits := s[len(prefix) : len(s)-1]
	if len(digits) == 0 {
		return 0, false
	}
	var n uint32
	for _, c := range digits {
		if c < '0' || c > '9' {
			return 0, false
		}
		n = n*10 + uint32(c-'0')
	}
	return n, true
}
