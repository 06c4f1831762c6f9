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

func TestParseSyscallRecord(t *testing.T) {
	line := []byte(`type=SYSCALL msg=audit(1543862988.307:26): arch=c000003e syscall=59 success=yes exit=0 a0=55f15f9195a0 items=2 ppid=2437 pid=2442 auid=1000 uid=1000 comm="cat" exe="/bin/cat" key=(null)`)

	msg, err := NewParser().Parse(line)
	require.NoError(t, err)
	assert.Equal(t, MessageTypeSYSCALL, msg.Type)
	assert.Equal(t, EventID{Timestamp: 1543862988307, Sequence: 26}, msg.ID)

	arch, ok := msg.Body.Get("arch")
	require.True(t, ok)
	assert.Equal(t, uint64(0xc000003e), arch.Number().U)

	comm, ok := msg.Body.Get("comm")
	require.True(t, ok)
	assert.Equal(t, "cat", string(comm.Bytes()))

	success, ok := msg.Body.Get("success")
	require.True(t, ok)
	assert.Equal(t, "yes", string(success.Bytes()))
}

func TestParseAVCRecordSynthesizesTrailingEntries(t *testing.T) {
	line := []byte(`type=AVC msg=audit(1400000000.000:100): avc:  denied  { read write } for  pid=1234 comm="nginx" path="/etc/passwd" scontext=u:r:httpd_t:s0 tcontext=u:object_r:etc_t:s0 tclass=file`)

	msg, err := NewParser().Parse(line)
	require.NoError(t, err)

	entries := msg.Body.Entries()
	require.True(t, len(entries) >= 1)
	last := entries[len(entries)-1]
	assert.Equal(t, "denied", last.Key.String())
	require.Equal(t, ValueList, last.Value.Kind())
	perms := last.Value.List()
	require.Len(t, perms, 2)
	assert.Equal(t, "read", string(perms[0].Bytes()))
	assert.Equal(t, "write", string(perms[1].Bytes()))

	comm, ok := msg.Body.Get("comm")
	require.True(t, ok)
	assert.Equal(t, "nginx", string(comm.Bytes()))
}

func TestParseExecveArgvQuoted(t *testing.T) {
	line := []byte(`type=EXECVE msg=audit(1400000000.000:101): argc=3 a0="ls" a1="-la" a2="/tmp"`)

	msg, err := NewParser().Parse(line)
	require.NoError(t, err)

	a0, ok := msg.Body.Get("a0")
	require.True(t, ok)
	assert.Equal(t, "ls", string(a0.Bytes()))
}

func TestParseMsgSubMapScenario(t *testing.T) {
	line := []byte(`type=USER_ACCT msg=audit(1400000000.000:102): msg='op=PAM:accounting acct="user" exe="/usr/bin/sudo" hostname=? addr=? terminal=/dev/pts/1 res=success'`)

	msg, err := NewParser().Parse(line)
	require.NoError(t, err)

	v, ok := msg.Body.Get("msg")
	require.True(t, ok)
	require.Equal(t, ValueMap, v.Kind())

	entries := v.Entries()
	got := map[string]string{}
	for _, e := range entries {
		got[string(e.Key)] = string(e.Value.Bytes())
	}
	assert.Equal(t, "PAM:accounting", got["op"])
	assert.Equal(t, "user", got["acct"])
	assert.Equal(t, "/usr/bin/sudo", got["exe"])
	assert.Equal(t, "success", got["res"])
}

func TestParseMsgSubMapDisabled(t *testing.T) {
	line := []byte(`type=USER_ACCT msg=audit(1400000000.000:102): msg='op=PAM:accounting acct="user"'`)

	p := NewParser()
	p.SplitMsg = false
	msg, err := p.Parse(line)
	require.NoError(t, err)

	v, ok := msg.Body.Get("msg")
	require.True(t, ok)
	assert.Equal(t, ValueStr, v.Kind())
	assert.Equal(t, QuoteSingle, v.Quote())
}

func TestParseMalformedHeader(t *testing.T) {
	_, err := NewParser().Parse([]byte(`not a valid header at all`))
	require.Error(t, err)
	assert.True(t, IsParseError(err, ErrMalformedHeader))
}

func TestParseTrailingGarbage(t *testing.T) {
	line := []byte(`type=SYSCALL msg=audit(1400000000.000:1): pid=1 ###not-a-key`)
	_, err := NewParser().Parse(line)
	require.Error(t, err)
	assert.True(t, IsParseError(err, ErrTrailingGarbage))
}

func TestParseEmptyBodyIsMalformed(t *testing.T) {
	line := []byte(`type=SYSCALL msg=audit(1400000000.000:1): ###not-a-key`)
	_, err := NewParser().Parse(line)
	require.Error(t, err)
	assert.True(t, IsParseError(err, ErrMalformedBody))
}

func TestParseEnrichedSeparator(t *testing.T) {
	line := []byte("type=SYSCALL msg=audit(1400000000.000:1): pid=1\x1dppid=2")
	msg, err := NewParser().Parse(line)
	require.NoError(t, err)
	assert.Equal(t, 2, msg.Body.Len())
}

func TestParseDisabledEnrichmentDiscardsGSSuffix(t *testing.T) {
	line := []byte("type=SYSCALL msg=audit(1400000000.000:1): pid=1\x1dppid=2\x1dauid=0")
	msg, err := Parse(line, true)
	require.NoError(t, err)
	assert.Equal(t, 1, msg.Body.Len())
	pid, ok := msg.Body.Get("pid")
	require.True(t, ok)
	assert.Equal(t, int64(1), pid.Number().Int64())
	_, ok = msg.Body.Get("ppid")
	assert.False(t, ok)
}

func TestParseDisabledEnrichmentStillRecognizesValueBoundary(t *testing.T) {
	line := []byte("type=SYSCALL msg=audit(1400000000.000:1): pid=1\x1d")
	msg, err := Parse(line, true)
	require.NoError(t, err)
	assert.Equal(t, 1, msg.Body.Len())
	pid, ok := msg.Body.Get("pid")
	require.True(t, ok)
	assert.Equal(t, int64(1), pid.Number().Int64())
}

func TestParsePackageLevelConvenienceFunction(t *testing.T) {
	line := []byte(`type=SYSCALL msg=audit(1400000000.000:1): pid=1`)
	msg, err := Parse(line, false)
	require.NoError(t, err)
	assert.Equal(t, MessageTypeSYSCALL, msg.Type)
}
