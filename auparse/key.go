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
	"sort"
	"strconv"
	"strings"
)

// Common is the closed set of well-known SYSCALL-record key names.
type Common uint8

const (
	CommonArch Common = iota
	CommonArgc
	CommonCapFe
	CommonCapFi
	CommonCapFp
	CommonCapFver
	CommonComm
	CommonCwd
	CommonDev
	CommonExe
	CommonExit
	CommonInode
	CommonItem
	CommonItems
	CommonKey
	CommonMode
	CommonMsg
	CommonName
	CommonNametype
	CommonPid
	CommonPPid
	CommonSes
	CommonSubj
	CommonSuccess
	CommonSyscall
	CommonTty
)

type commonEntry struct {
	name string
	id   Common
}

// commonTable must stay sorted by name: classifyGeneral binary-searches it.
var commonTable = []commonEntry{
	{"arch", CommonArch},
	{"argc", CommonArgc},
	{"cap_fe", CommonCapFe},
	{"cap_fi", CommonCapFi},
	{"cap_fp", CommonCapFp},
	{"cap_fver", CommonCapFver},
	{"comm", CommonComm},
	{"cwd", CommonCwd},
	{"dev", CommonDev},
	{"exe", CommonExe},
	{"exit", CommonExit},
	{"inode", CommonInode},
	{"item", CommonItem},
	{"items", CommonItems},
	{"key", CommonKey},
	{"mode", CommonMode},
	{"msg", CommonMsg},
	{"name", CommonName},
	{"nametype", CommonNametype},
	{"pid", CommonPid},
	{"ppid", CommonPPid},
	{"ses", CommonSes},
	{"subj", CommonSubj},
	{"success", CommonSuccess},
	{"syscall", CommonSyscall},
	{"tty", CommonTty},
}

func (c Common) String() string {
	if int(c) < len(commonTable) {
		return commonTable[c].name
	}
	return "?"
}

func lookupCommon(name []byte) (Common, bool) {
	i := sort.Search(len(commonTable), func(i int) bool {
		return commonTable[i].name >= string(name)
	})
	if i < len(commonTable) && commonTable[i].name == string(name) {
		return commonTable[i].id, true
	}
	return 0, false
}

// keyKind tags the Key sum type.
type keyKind uint8

const (
	keyCommon keyKind = iota
	keyNameUID
	keyNameGID
	keyNameTranslated
	keyName
	keyArg
	keyArgLen
	keyLiteral
)

// smallName is a short-string-optimized byte buffer: names of 14 bytes or
// fewer live inline, avoiding a heap allocation for the overwhelming
// majority of Audit key names.
type smallName struct {
	buf      [14]byte
	length   uint8
	overflow string
}

func newSmallName(b []byte) smallName {
	if len(b) <= len(smallName{}.buf) {
		var n smallName
		copy(n.buf[:], b)
		n.length = uint8(len(b))
		return n
	}
	return smallName{overflow: string(b)}
}

func (n smallName) Bytes() []byte {
	if n.overflow != "" {
		return []byte(n.overflow)
	}
	return n.buf[:n.length]
}

func (n smallName) String() string {
	if n.overflow != "" {
		return n.overflow
	}
	return string(n.buf[:n.length])
}

// Key is the tagged union of key-name shapes described in spec §3.
type Key struct {
	kind    keyKind
	common  Common
	name    smallName
	argN    uint32
	argM    uint16
	hasArgM bool
	literal string
}

// KeyCommon constructs a Key for one of the well-known SYSCALL-record names.
func KeyCommon(c Common) Key { return Key{kind: keyCommon, common: c} }

// KeyNameUID constructs a Key for a uid-suffixed name.
func KeyNameUID(name []byte) Key { return Key{kind: keyNameUID, name: newSmallName(name)} }

// KeyNameGID constructs a Key for a gid-suffixed name.
func KeyNameGID(name []byte) Key { return Key{kind: keyNameGID, name: newSmallName(name)} }

// KeyNameTranslated constructs a Key for a caller-rendered enrichment key;
// it upper-cases only at Display/serialization time.
func KeyNameTranslated(name []byte) Key {
	return Key{kind: keyNameTranslated, name: newSmallName(name)}
}

// KeyName constructs a general fallback Key.
func KeyName(name []byte) Key { return Key{kind: keyName, name: newSmallName(name)} }

// KeyArg constructs the EXECVE/SYSCALL "aN" key (see KeyArgIndex for
// "aN[M]").
func KeyArg(n uint32) Key { return Key{kind: keyArg, argN: n} }

// KeyArgIndex constructs the EXECVE "aN[M]" split-argument key.
func KeyArgIndex(n uint32, m uint16) Key {
	return Key{kind: keyArg, argN: n, argM: m, hasArgM: true}
}

// KeyArgLen constructs the EXECVE "aN_len" key.
func KeyArgLen(n uint32) Key { return Key{kind: keyArgLen, argN: n} }

// KeyLiteral constructs a Key synthesized by a caller (never produced by
// the parser itself).
func KeyLiteral(s string) Key { return Key{kind: keyLiteral, literal: s} }

// IsArg reports whether k is an Arg(n) or Arg(n,m) key.
func (k Key) IsArg() bool { return k.kind == keyArg }

// IsArgLen reports whether k is an ArgLen(n) key.
func (k Key) IsArgLen() bool { return k.kind == keyArgLen }

// IsNameUID reports whether k is a NameUID(n) key.
func (k Key) IsNameUID() bool { return k.kind == keyNameUID }

// IsNameGID reports whether k is a NameGID(n) key.
func (k Key) IsNameGID() bool { return k.kind == keyNameGID }

// IsCommon reports whether k is a Common(c) key, and returns c.
func (k Key) IsCommon() (Common, bool) {
	if k.kind == keyCommon {
		return k.common, true
	}
	return 0, false
}

// Name returns the underlying name bytes for Name/NameUID/NameGID/
// NameTranslated keys.
func (k Key) Name() []byte { return k.name.Bytes() }

// String renders the key the way it would appear in an Audit log line,
// except NameTranslated, which is upper-cased only here (the stored bytes
// retain their original case for round-tripping).
func (k Key) String() string {
	switch k.kind {
	case keyCommon:
		return k.common.String()
	case keyNameUID, keyNameGID, keyName:
		return k.name.String()
	case keyNameTranslated:
		return strings.ToUpper(k.name.String())
	case keyArg:
		if k.hasArgM {
			return "a" + strconv.FormatUint(uint64(k.argN), 10) + "[" + strconv.FormatUint(uint64(k.argM), 10) + "]"
		}
		return "a" + strconv.FormatUint(uint64(k.argN), 10)
	case keyArgLen:
		return "a" + strconv.FormatUint(uint64(k.argN), 10) + "_len"
	case keyLiteral:
		return k.literal
	default:
		return ""
	}
}

// MarshalJSON implements the external serialization contract of §4.2: a
// Key serializes as its display string.
func (k Key) MarshalJSON() ([]byte, error) {
	return quoteJSON(k.String()), nil
}

// ParseKey classifies a standalone key name string the way §4.2 describes:
// common-table hit, then aN/aN[M]/aN_len, then *uid, then *gid, then a
// general name. Unlike classifyKey (keydispatch.go), this is
// message-type-agnostic: it is meant for callers parsing a key name in
// isolation (e.g. rendering enrichment), not for the body grammar, which
// only tries the argument forms in EXECVE/SYSCALL context.
func ParseKey(s []byte) Key {
	if c, ok := lookupCommon(s); ok {
		return KeyCommon(c)
	}
	if k, ok := parseArgLen(s); ok {
		return k
	}
	if k, ok := parseArgIndex(s); ok {
		return k
	}
	if k, ok := parseArg(s); ok {
		return k
	}
	return classifyGeneral(s)
}
