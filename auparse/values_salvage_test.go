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

// TestParseSubjSalvageDoesNotAbortLine covers spec §8 scenario (h): a
// malformed AppArmor "subj" value must not terminate parsing of the rest
// of the SYSCALL line.
func TestParseSubjSalvageDoesNotAbortLine(t *testing.T) {
	line := []byte(`type=SYSCALL msg=audit(1400000000.000:1): subj=/{,usr/}sbin/dhclient pid=1`)
	msg, err := NewParser().Parse(line)
	require.NoError(t, err)

	subj, ok := msg.Body.Get("subj")
	require.True(t, ok)
	assert.Equal(t, "/{,usr/}sbin/dhclient", string(subj.Bytes()))

	pid, ok := msg.Body.Get("pid")
	require.True(t, ok)
	assert.Equal(t, int64(1), pid.Number().Int64())
}

func TestParseSubjSalvageWithLeadingEqualsAndMode(t *testing.T) {
	line := []byte(`type=SYSCALL msg=audit(1400000000.000:1): subj==/usr/sbin/ntpd (enforce) pid=2`)
	msg, err := NewParser().Parse(line)
	require.NoError(t, err)

	subj, ok := msg.Body.Get("subj")
	require.True(t, ok)
	assert.Equal(t, "=/usr/sbin/ntpd (enforce)", string(subj.Bytes()))
}

func TestAVCInfoSalvageAllowsEmbeddedQuoteUnsafeBytes(t *testing.T) {
	v, rest, ok := matchAVCInfoSalvage([]byte(`"some (info) text" rest`))
	require.True(t, ok)
	assert.Equal(t, "some (info) text", string(v.Bytes()))
	assert.Equal(t, " rest", string(rest))
}

func TestSockaddrUnknownFamilySalvage(t *testing.T) {
	line := []byte(`type=SOCKADDR msg=audit(1400000000.000:1): SADDR=unknown family (12345) pid=1`)
	msg, err := NewParser().Parse(line)
	require.NoError(t, err)
	v, ok := msg.Body.Get("SADDR")
	require.True(t, ok)
	assert.Contains(t, string(v.Bytes()), "unknown family")
}

func TestParseTTYPrefixConsumed(t *testing.T) {
	line := []byte(`type=TTY msg=audit(1400000000.000:1): tty data=6c73`)
	msg, err := NewParser().Parse(line)
	require.NoError(t, err)
	v, ok := msg.Body.Get("data")
	require.True(t, ok)
	assert.Equal(t, "ls", string(v.Bytes()))
}

func TestParseMACPolicyLoadPrefixConsumed(t *testing.T) {
	line := []byte(`type=MAC_POLICY_LOAD msg=audit(1400000000.000:1): policy loaded auid=0 ses=1`)
	msg, err := NewParser().Parse(line)
	require.NoError(t, err)
	v, ok := msg.Body.Get("auid")
	require.True(t, ok)
	assert.Equal(t, int64(0), v.Number().Int64())
}

func TestParseNetlabelPrefixConsumed(t *testing.T) {
	line := []byte(`type=MAC_UNLBL_ALLOW msg=audit(1400000000.000:1): netlabel: auid=0`)
	msg, err := NewParser().Parse(line)
	require.NoError(t, err)

	entries := msg.Body.Entries()
	require.Len(t, entries, 2)
	assert.Equal(t, "netlabel", entries[0].Key.String())
	assert.Equal(t, ValueEmpty, entries[0].Value.Kind())

	auid, ok := msg.Body.Get("auid")
	require.True(t, ok)
	assert.Equal(t, int64(0), auid.Number().Int64())
}
