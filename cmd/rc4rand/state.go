/*
 * Copyright © 2025 Clyso GmbH
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *     http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package main

import (
	"github.com/spf13/cobra"

	"github.com/clyso/rc4rand/service/generator"
)

func newStateCmd(root *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "state",
		Short: "print engine state",
		Long: `Print the engine state after seeding and --skip discarded bytes.

Small engines print 18 hex digits, other sizes print a yaml document.
Both forms are accepted back by --state:
  rc4rand state --small --key Key --skip 3`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			conf, err := loadConfig(cmd, root)
			if err != nil {
				return err
			}
			return generator.PrintState(appInfo(), conf, cmd.OutOrStdout())
		},
	}
}
