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

import "unsafe"

// minChunkUnit is the granularity new arena chunks are sized in, per §4.1:
// a chunk is allocated at 1024 * (1 + ceil(len/1024)) bytes so it always
// has headroom for subsequent small transplants.
const minChunkUnit = 1024

// arena is an append-only byte store backing every Str value owned by a
// Body. Addresses handed out by transplant never move: chunks are never
// grown in place, only appended to while capacity remains or replaced by
// a fresh chunk.
type arena struct {
	chunks [][]byte
}

// within reports whether sub is a sub-slice of buf, comparing the
// underlying array's address range rather than contents. It is used to
// recognize bytes that already live inside one of the arena's own chunks
// (e.g. a Str value being pushed a second time after being sliced from
// one already transplanted), so they can be reused in place instead of
// being copied again.
func within(buf, sub []byte) bool {
	if len(sub) == 0 {
		return len(buf) >= 0
	}
	if cap(buf) == 0 {
		return false
	}
	bufStart := uintptr(unsafe.Pointer(&buf[:1][0]))
	bufEnd := bufStart + uintptr(cap(buf))
	subStart := uintptr(unsafe.Pointer(&sub[:1][0]))
	subEnd := subStart + uintptr(len(sub))
	return subStart >= bufStart && subEnd <= bufEnd
}

// transplant returns a slice holding the same bytes as b that is stable
// for the Body's lifetime: either b itself (already inside one of the
// arena's chunks), the tail of a chunk with enough spare capacity, or the
// head of a freshly allocated chunk.
func (a *arena) transplant(b []byte) []byte {
	if len(b) == 0 {
		return nil
	}
	for _, chunk := range a.chunks {
		if within(chunk, b) {
			return b
		}
	}
	for i, chunk := range a.chunks {
		if cap(chunk)-len(chunk) >= len(b) {
			start := len(chunk)
			a.chunks[i] = append(chunk, b...)
			return a.chunks[i][start : start+len(b)]
		}
	}
	size := minChunkUnit * (1 + (len(b)+minChunkUnit-1)/minChunkUnit)
	chunk := make([]byte, 0, size)
	chunk = append(chunk, b...)
	a.chunks = append(a.chunks, chunk)
	return chunk[:len(b)]
}
