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

import "encoding/json"

// quoteJSON encodes s as a JSON string. It is used by the sum types'
// MarshalJSON methods (§4.2's external serialization contract), for
// display strings and raw value bytes alike, so that none of them
// hand-rolls escaping.
func quoteJSON(s string) []byte {
	b, err := json.Marshal(s)
	if err != nil {
		// Marshal never fails on a plain string: invalid UTF-8 is
		// replaced, not rejected.
		panic(err)
	}
	return b
}
