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

package main

import (
	"bufio"
	"encoding/json"
	"io"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/hillu/linux-audit-parser-go/auparse"
)

func newParseCmd() *cobra.Command {
	var input string

	cmd := &cobra.Command{
		Use:   "parse [file]",
		Short: "Parse Audit log lines from a file (or stdin) and emit JSON",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 1 {
				input = args[0]
			}
			return runParse(cmd, input)
		},
	}
	return cmd
}

func runParse(cmd *cobra.Command, input string) error {
	r := io.Reader(os.Stdin)
	if input != "" {
		f, err := os.Open(input)
		if err != nil {
			return err
		}
		defer f.Close()
		r = f
	}

	p := auparse.NewParser()
	p.Enriched = !cfg.GetBool("no-enriched")
	p.SplitMsg = !cfg.GetBool("no-split-msg")

	enc := json.NewEncoder(cmd.OutOrStdout())
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := scanner.Bytes()
		if len(line) == 0 {
			continue
		}
		msg, err := p.Parse(line)
		if err != nil {
			logrus.WithError(err).WithField("line", lineNo).Warn("skipping unparseable line")
			continue
		}
		if err := enc.Encode(msg); err != nil {
			return err
		}
	}
	return scanner.Err()
}
