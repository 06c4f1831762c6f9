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

// parseHeader recognizes the fixed header grammar:
//
//	[node=<name> ]type=<TYPE> msg=audit(<sec>.<msec>:<seq>): <rest>
//
// node is optional: it is present only when the message was relayed by
// audispd with node enrichment turned on.
func parseHeader(line []byte) (node []byte, mtype MessageType, id EventID, rest []byte, err error) {
	buf := line

	if bytes.HasPrefix(buf, []byte("node=")) {
		buf = buf[len("node="):]
		i := bytes.IndexByte(buf, ' ')
		if i < 0 {
			return nil, 0, EventID{}, nil, newParseError(ErrMalformedHeader, line)
		}
		node = buf[:i]
		buf = buf[i+1:]
	}

	if !bytes.HasPrefix(buf, []byte("type=")) {
		return nil, 0, EventID{}, nil, newParseError(ErrMalformedHeader, line)
	}
	buf = buf[len("type="):]
	i := bytes.IndexByte(buf, ' ')
	if i < 0 {
		return nil, 0, EventID{}, nil, newParseError(ErrMalformedHeader, line)
	}
	typeTok := buf[:i]
	buf = buf[i+1:]
	mtype, ok := ParseMessageType(typeTok)
	if !ok {
		return nil, 0, EventID{}, nil, newParseError(ErrMalformedHeader, line)
	}

	const prefix = "msg=audit("
	if !bytes.HasPrefix(buf, []byte(prefix)) {
		return nil, 0, EventID{}, nil, newParseError(ErrMalformedHeader, line)
	}
	buf = buf[len(prefix):]
	close := bytes.IndexByte(buf, ')')
	if close < 0 {
		return nil, 0, EventID{}, nil, newParseError(ErrMalformedHeader, line)
	}
	idTok := buf[:close]
	buf = buf[close+1:]

	id, err = ParseEventID(string(idTok))
	if err != nil {
		return nil, 0, EventID{}, nil, newParseError(ErrMalformedHeader, line)
	}

	if len(buf) == 0 || buf[0] != ':' {
		return nil, 0, EventID{}, nil, newParseError(ErrMalformedHeader, line)
	}
	buf = buf[1:]
	for len(buf) > 0 && buf[0] == ' ' {
		buf = buf[1:]
	}
	rest = buf

	return node, mtype, id, rest, nil
}
