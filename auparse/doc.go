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

// Package auparse parses Linux Audit log lines (the text format emitted by
// auditd(8) and audispd plugins) into a typed, structured representation.
//
// A line carries a header (node, message type, event id) followed by a
// loosely structured body of key=value pairs. Parsing is pure: it performs
// no I/O, does no logging, and never panics on malformed input.
package auparse
