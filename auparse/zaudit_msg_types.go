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

// Code generated from the Linux Audit Project's message-dictionary CSV by
// an external build step (out of scope for this module, per spec §1/§6).
// This file stands in for that generated output: a plain bidirectional
// mapping between symbolic message-type names and their kernel-assigned
// numeric ids. DO NOT EDIT by hand in a real build; here it is hand-written
// to the same shape the generator would produce.

var msgTypeIDs = map[string]uint32{
	"GET":             1000,
	"SET":             1001,
	"LIST_RULES":      1013,
	"ADD_RULE":        1011,
	"DEL_RULE":        1012,
	"TRIM":            1014,
	"MAKE_EQUIV":      1015,
	"TTY_GET":         1016,
	"TTY_SET":         1017,
	"SET_FEATURE":     1018,
	"GET_FEATURE":     1019,
	"LOGIN":           1006,
	"WATCH_INS":       1007,
	"WATCH_REM":       1008,
	"WATCH_LIST":      1009,
	"SIGNAL_INFO":     1010,

	"USER_AUTH":    1100,
	"USER_ACCT":    1101,
	"USER_MGMT":    1102,
	"CRED_ACQ":     1103,
	"CRED_DISP":    1104,
	"USER_START":   1105,
	"USER_END":     1106,
	"USER_AVC":     1107,
	"USER_CHAUTHTOK": 1109,
	"USER_CMD":     1110,
	"USER_TTY":     1124,
	"USER_LOGIN":   1112,
	"USER_LOGOUT":  1113,
	"USER_ERR":     1115,
	"CRED_REFR":    1116,
	"USYS_CONFIG":  1114,

	"DAEMON_START":    1200,
	"DAEMON_END":      1201,
	"DAEMON_ABORT":    1202,
	"DAEMON_CONFIG":   1203,
	"DAEMON_RECONFIG": 1204,
	"DAEMON_ROTATE":   1205,
	"DAEMON_RESUME":   1206,
	"DAEMON_ACCEPT":   1207,
	"DAEMON_CLOSE":    1208,

	"SYSCALL":          1300,
	"PATH":             1302,
	"IPC":              1303,
	"SOCKETCALL":       1304,
	"CONFIG_CHANGE":    1305,
	"SOCKADDR":         1306,
	"CWD":              1307,
	"EXECVE":           1309,
	"IPC_SET_PERM":     1311,
	"MQ_OPEN":          1312,
	"MQ_SENDRECV":      1313,
	"MQ_NOTIFY":        1314,
	"MQ_GETSETATTR":    1315,
	"KERNEL_OTHER":     1316,
	"FD_PAIR":          1317,
	"OBJ_PID":          1318,
	"TTY":              1319,
	"EOE":              1320,
	"BPRM_FCAPS":       1321,
	"CAPSET":           1322,
	"MMAP":             1323,
	"NETFILTER_PKT":    1324,
	"NETFILTER_CFG":    1325,
	"SECCOMP":          1326,
	"PROCTITLE":        1327,
	"FEATURE_CHANGE":   1328,
	"REPLACE":          1329,
	"KERN_MODULE":      1330,
	"FANOTIFY":         1331,
	"TIME_INJOFFSET":   1332,
	"TIME_ADJNTPVAL":   1333,
	"BPF":              1334,
	"EVENT_LISTENER":   1335,
	"URINGOP":          1336,
	"OPENAT2":          1337,

	"AVC":               1400,
	"SELINUX_ERR":       1401,
	"AVC_PATH":          1402,
	"MAC_POLICY_LOAD":   1403,
	"MAC_STATUS":        1404,
	"MAC_CONFIG_CHANGE": 1405,
	"MAC_UNLBL_ALLOW":   1406,
	"MAC_CIPSOV4_ADD":   1407,
	"MAC_CIPSOV4_DEL":   1408,
	"MAC_MAP_ADD":       1409,
	"MAC_MAP_DEL":       1410,
	"MAC_IPSEC_ADDSA":   1411,
	"MAC_IPSEC_DELSA":   1412,
	"MAC_IPSEC_ADDSPD":  1413,
	"MAC_IPSEC_DELSPD":  1414,
	"MAC_IPSEC_EVENT":   1415,
	"MAC_UNLBL_STCADD":  1416,
	"MAC_UNLBL_STCDEL":  1417,
	"MAC_CALIPSO_ADD":   1418,
	"MAC_CALIPSO_DEL":   1419,
}

var msgTypeNames = func() map[uint32]string {
	m := make(map[uint32]string, len(msgTypeIDs))
	for name, id := range msgTypeIDs {
		m[id] = name
	}
	return m
}()

// Frequently referenced message types, exported as typed constants for
// readability at call sites (the dispatch switch in bodygrammar.go, tests).
const (
	MessageTypeLOGIN         MessageType = 1006
	MessageTypeSYSCALL       MessageType = 1300
	MessageTypePATH          MessageType = 1302
	MessageTypeSOCKADDR      MessageType = 1306
	MessageTypeEXECVE        MessageType = 1309
	MessageTypeTTY           MessageType = 1319
	MessageTypeEOE           MessageType = 1320
	MessageTypeAVC           MessageType = 1400
	MessageTypeMACPolicyLoad MessageType = 1403
	MessageTypeUSERACCT      MessageType = 1101
)
