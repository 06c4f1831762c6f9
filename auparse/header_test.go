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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseHeaderWithNode(t *testing.T) {
	node, mtype, id, rest, err := parseHeader([]byte("node=host1 type=EOE msg=audit(1615225617.302:25836): "))
	require.NoError(t, err)
	assert.Equal(t, "host1", string(node))
	assert.Equal(t, MessageTypeEOE, mtype)
	assert.Equal(t, EventID{Timestamp: 1615225617302, Sequence: 25836}, id)
	assert.Equal(t, "", string(rest))
}

func TestParseHeaderWithoutNode(t *testing.T) {
	node, mtype, _, _, err := parseHeader([]byte("type=SYSCALL msg=audit(1.000:1): pid=1"))
	require.NoError(t, err)
	assert.Nil(t, node)
	assert.Equal(t, MessageTypeSYSCALL, mtype)
}

func TestParseHeaderUnknownType(t *testing.T) {
	_, mtype, _, _, err := parseHeader([]byte("type=UNKNOWN[9999] msg=audit(1.000:1): "))
	require.NoError(t, err)
	assert.Equal(t, MessageType(9999), mtype)
	assert.Equal(t, "UNKNOWN[9999]", mtype.String())
}

func TestParseEmptyBodyMessage(t *testing.T) {
	msg, err := NewParser().Parse([]byte("type=EOE msg=audit(1615225617.302:25836): \n"))
	require.NoError(t, err)
	assert.Equal(t, MessageTypeEOE, msg.Type)
	assert.Equal(t, EventID{Timestamp: 1615225617302, Sequence: 25836}, msg.ID)
	assert.Equal(t, 0, msg.Body.Len())
}

func TestParseHeaderAllowsZeroSpaceAfterColon(t *testing.T) {
	node, mtype, id, rest, err := parseHeader([]byte("type=SYSCALL msg=audit(1.000:1):pid=1"))
	require.NoError(t, err)
	assert.Nil(t, node)
	assert.Equal(t, MessageTypeSYSCALL, mtype)
	assert.Equal(t, EventID{Timestamp: 1000, Sequence: 1}, id)
	assert.Equal(t, "pid=1", string(rest))
}

func TestParseHeaderRejectsMissingMsg(t *testing.T) {
	_, _, _, _, err := parseHeader([]byte("type=SYSCALL "))
	require.Error(t, err)
	assert.True(t, IsParseError(err, ErrMalformedHeader))
}
