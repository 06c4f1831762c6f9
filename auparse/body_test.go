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

func TestBodyPushTransplantsOwnedIntoStr(t *testing.T) {
	var b Body
	b.Push(KeyCommon(CommonComm), Owned([]byte("sudo")))
	require.Equal(t, 1, b.Len())
	entry := b.Entries()[0]
	assert.Equal(t, ValueStr, entry.Value.Kind())
	assert.Equal(t, QuoteNone, entry.Value.Quote())
	assert.Equal(t, "sudo", string(entry.Value.Bytes()))
}

func TestBodyGet(t *testing.T) {
	var b Body
	b.Push(KeyCommon(CommonPid), NumberValue(NewDecimal(1234)))
	v, ok := b.Get("pid")
	require.True(t, ok)
	assert.Equal(t, int64(1234), v.Number().Int64())

	_, ok = b.Get("nope")
	assert.False(t, ok)
}

func TestBodySurvivesInputReuse(t *testing.T) {
	var b Body
	line := []byte("hello")
	b.Push(KeyName([]byte("name")), Str(line, QuoteNone))
	copy(line, "HELLO")
	entry := b.Entries()[0]
	assert.Equal(t, "hello", string(entry.Value.Bytes()))
}

func TestBodyRetain(t *testing.T) {
	var b Body
	b.Push(KeyCommon(CommonPid), NumberValue(NewDecimal(1)))
	b.Push(KeyCommon(CommonPPid), NumberValue(NewDecimal(2)))
	b.Retain(func(e BodyEntry) bool {
		c, _ := e.Key.IsCommon()
		return c != CommonPPid
	})
	require.Equal(t, 1, b.Len())
	assert.Equal(t, CommonPid, mustCommon(t, b.Entries()[0].Key))
}

func mustCommon(t *testing.T, k Key) Common {
	t.Helper()
	c, ok := k.IsCommon()
	require.True(t, ok)
	return c
}
