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
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// EventID identifies a single Audit event, corresponding to the
// "msg=audit(...)" part of every Audit log line. It is reasonably expected
// to be unique per system.
type EventID struct {
	// Timestamp is a Unix epoch timestamp with millisecond precision.
	Timestamp uint64
	// Sequence is the per-event sequence number.
	Sequence uint32
}

// String renders the event id as "SEC.MSEC:SEQ", with MSEC zero-padded to
// three digits.
func (id EventID) String() string {
	sec := id.Timestamp / 1000
	msec := id.Timestamp % 1000
	var b strings.Builder
	b.WriteString(strconv.FormatUint(sec, 10))
	b.WriteByte('.')
	if msec < 100 {
		b.WriteByte('0')
	}
	if msec < 10 {
		b.WriteByte('0')
	}
	b.WriteString(strconv.FormatUint(msec, 10))
	b.WriteByte(':')
	b.WriteString(strconv.FormatUint(uint64(id.Sequence), 10))
	return b.String()
}

// ParseEventID parses the "SEC.MSEC:SEQ" textual form produced by String.
func ParseEventID(s string) (EventID, error) {
	dot := strings.IndexByte(s, '.')
	if dot < 0 {
		return EventID{}, errors.Errorf("event id %q: missing '.'", s)
	}
	rest := s[dot+1:]
	colon := strings.IndexByte(rest, ':')
	if colon < 0 {
		return EventID{}, errors.Errorf("event id %q: missing ':'", s)
	}
	sec, err := strconv.ParseUint(s[:dot], 10, 64)
	if err != nil {
		return EventID{}, errors.Wrap(err, "event id seconds")
	}
	msec, err := strconv.ParseUint(rest[:colon], 10, 64)
	if err != nil {
		return EventID{}, errors.Wrap(err, "event id milliseconds")
	}
	seq, err := strconv.ParseUint(rest[colon+1:], 10, 32)
	if err != nil {
		return EventID{}, errors.Wrap(err, "event id sequence")
	}
	return EventID{Timestamp: sec*1000 + msec, Sequence: uint32(seq)}, nil
}

// MarshalJSON implements the external serialization contract of §4.2: an
// EventID serializes as its display string.
func (id EventID) MarshalJSON() ([]byte, error) {
	return quoteJSON(id.String()), nil
}
