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
	"fmt"

	"github.com/pkg/errors"
)

// ErrorKind classifies a ParseError.
type ErrorKind int

const (
	// ErrMalformedHeader means the "type=... msg=audit(...):" header
	// could not be recognized.
	ErrMalformedHeader ErrorKind = iota
	// ErrMalformedBody means the key/value body could not be recognized
	// at all.
	ErrMalformedBody
	// ErrTrailingGarbage means the body was recognized but did not
	// consume the entire line.
	ErrTrailingGarbage
	// ErrHexDecodeError is reserved for callers that post-process
	// encoded values outside of the core grammar.
	ErrHexDecodeError
)

func (k ErrorKind) String() string {
	switch k {
	case ErrMalformedHeader:
		return "malformed header"
	case ErrMalformedBody:
		return "malformed body"
	case ErrTrailingGarbage:
		return "trailing garbage"
	case ErrHexDecodeError:
		return "hex decode error"
	default:
		return "unknown parse error"
	}
}

// ParseError is returned by Parse when a line cannot be fully recognized.
// Raw carries the offending bytes (the whole line for a header failure, the
// unconsumed remainder for a body failure) so callers can log or inspect
// the original input for diagnostics.
type ParseError struct {
	Kind ErrorKind
	Raw  []byte
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("%s: %s", e.Kind, string(e.Raw))
}

func newParseError(kind ErrorKind, raw []byte) error {
	return errors.WithStack(&ParseError{Kind: kind, Raw: raw})
}

// IsParseError reports whether err is (or wraps) a *ParseError of the given
// kind.
func IsParseError(err error, kind ErrorKind) bool {
	var pe *ParseError
	if !errors.As(err, &pe) {
		return false
	}
	return pe.Kind == kind
}
