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

// Message is the fully parsed representation of one Audit log line: its
// header fields plus the Body of key/value pairs that followed.
type Message struct {
	ID   EventID
	Node []byte
	Type MessageType
	Body Body
}

// MarshalJSON implements the external serialization contract of §4.2.
func (m Message) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteString(`{"id":`)
	idb, err := m.ID.MarshalJSON()
	if err != nil {
		return nil, err
	}
	buf.Write(idb)
	buf.WriteString(`,"node":`)
	buf.Write(quoteJSON(string(m.Node)))
	buf.WriteString(`,"type":`)
	typeb, err := m.Type.MarshalJSON()
	if err != nil {
		return nil, err
	}
	buf.Write(typeb)
	buf.WriteString(`,"body":`)
	bodyb, err := m.Body.MarshalJSON()
	if err != nil {
		return nil, err
	}
	buf.Write(bodyb)
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// Parser holds the two configuration switches described in spec §1/§5.
// Both default to true: Parser is pure and safe to share across
// goroutines, since every call to Parse produces a fresh Message with
// its own Body and arena.
type Parser struct {
	// Enriched enables recognition of the kernel's enrichment separator
	// (ASCII GS, 0x1D) alongside plain spaces between key=value pairs.
	Enriched bool

	// SplitMsg enables parsing a msg='...' value's contents into a
	// Value::Map of its own key=value entries, rather than leaving it as
	// an opaque quoted string.
	SplitMsg bool
}

// NewParser returns a Parser with both switches at their documented
// defaults (Enriched: true, SplitMsg: true).
func NewParser() Parser {
	return Parser{Enriched: true, SplitMsg: true}
}

// Parse parses one complete Audit log line (header plus body) according
// to p's configuration. It performs no I/O and never panics: malformed
// input always comes back as an error.
func (p Parser) Parse(line []byte) (Message, error) {
	node, mtype, id, rest, err := parseHeader(line)
	if err != nil {
		return Message{}, err
	}
	var msg Message
	msg.Node = node
	msg.Type = mtype
	msg.ID = id
	if err := parseBody(&msg.Body, mtype, rest, p); err != nil {
		return Message{}, err
	}
	return msg, nil
}

// Parse is a package-level convenience wrapper equivalent to
// NewParser().Parse(line), except that enrichment recognition can be
// disabled via skipEnriched for callers working with raw, non-enriched
// audispd output.
func Parse(line []byte, skipEnriched bool) (Message, error) {
	p := NewParser()
	if skipEnriched {
		p.Enriched = false
	}
	return p.Parse(line)
}
