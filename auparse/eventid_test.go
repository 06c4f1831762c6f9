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

func TestEventIDStringPadsMilliseconds(t *testing.T) {
	cases := []struct {
		id   EventID
		want string
	}{
		{EventID{Timestamp: 1234567890000, Sequence: 1}, "1234567890.000:1"},
		{EventID{Timestamp: 1234567890005, Sequence: 1}, "1234567890.005:1"},
		{EventID{Timestamp: 1234567890050, Sequence: 1}, "1234567890.050:1"},
		{EventID{Timestamp: 1234567890500, Sequence: 1}, "1234567890.500:1"},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, c.id.String())
	}
}

func TestEventIDRoundTrip(t *testing.T) {
	orig := EventID{Timestamp: 1544474026478, Sequence: 1292027}
	parsed, err := ParseEventID(orig.String())
	require.NoError(t, err)
	assert.Equal(t, orig, parsed)
}

func TestParseEventIDRejectsMalformed(t *testing.T) {
	_, err := ParseEventID("not-an-id")
	assert.Error(t, err)
	_, err = ParseEventID("123.456")
	assert.Error(t, err)
}
