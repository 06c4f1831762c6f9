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
)

func TestClassifyGeneralCommon(t *testing.T) {
	k := classifyGeneral([]byte("pid"))
	c, ok := k.IsCommon()
	assert.True(t, ok)
	assert.Equal(t, CommonPid, c)
}

func TestClassifyGeneralUIDGID(t *testing.T) {
	k := classifyGeneral([]byte("oauid"))
	assert.Equal(t, "oauid", k.String())
	assert.Equal(t, []byte("oauid"), k.Name())

	k = classifyGeneral([]byte("fsgid"))
	assert.Equal(t, "fsgid", k.String())
}

func TestClassifyGeneralNeverTriesArgForms(t *testing.T) {
	// "a1" looks like an EXECVE argument key, but classifyGeneral is the
	// message-type-agnostic fallback and must not treat it as one.
	k := classifyGeneral([]byte("a1"))
	assert.False(t, k.IsArg())
	assert.Equal(t, "a1", k.String())
}

func TestClassifyKeyArgForms(t *testing.T) {
	k := classifyKey(MessageTypeEXECVE, []byte("a0"))
	assert.True(t, k.IsArg())
	assert.Equal(t, "a0", k.String())

	k = classifyKey(MessageTypeEXECVE, []byte("a2[1]"))
	assert.True(t, k.IsArg())
	assert.Equal(t, "a2[1]", k.String())

	k = classifyKey(MessageTypeEXECVE, []byte("a3_len"))
	assert.True(t, k.IsArgLen())
	assert.Equal(t, "a3_len", k.String())
}

func TestClassifyKeyOtherTypesNeverTryArgForms(t *testing.T) {
	k := classifyKey(MessageTypePATH, []byte("a0"))
	assert.False(t, k.IsArg())
	assert.Equal(t, "a0", k.String())
}

func TestKeyNameTranslatedUppercasesOnlyAtRender(t *testing.T) {
	k := KeyNameTranslated([]byte("arch"))
	assert.Equal(t, "ARCH", k.String())
	assert.Equal(t, []byte("arch"), k.Name())
}

func TestSmallNameOverflow(t *testing.T) {
	long := "a-very-long-field-name-indeed"
	k := KeyName([]byte(long))
	assert.Equal(t, long, k.String())
}
