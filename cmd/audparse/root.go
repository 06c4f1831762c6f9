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
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var cfg = viper.New()

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "audparse",
		Short:         "Parse Linux Audit log lines into structured records",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			level, err := logrus.ParseLevel(cfg.GetString("log-level"))
			if err != nil {
				return err
			}
			logrus.SetLevel(level)
			return nil
		},
	}

	root.PersistentFlags().String("log-level", "info", "logging level (panic, fatal, error, warn, info, debug, trace)")
	root.PersistentFlags().Bool("no-enriched", false, "disable recognition of the enriched (0x1D) field separator")
	root.PersistentFlags().Bool("no-split-msg", false, "do not parse msg='...' contents into key/value entries")

	cfg.SetEnvPrefix("audparse")
	cfg.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	cfg.AutomaticEnv()
	_ = cfg.BindPFlags(root.PersistentFlags())

	root.AddCommand(newParseCmd())
	root.AddCommand(newEnrichCmd())

	return root
}
