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
	"fmt"
	"slices"
	"strings"

	"github.com/spf13/cobra"

	"github.com/clyso/rc4rand/service/generator"
)

func newGenCmd(root *rootFlags) *cobra.Command {
	var (
		kind       string
		count      int
		min        int64
		max        int64
		printState bool
	)
	cmd := &cobra.Command{
		Use:   "gen",
		Short: "print random values",
		Long: `Print random values, one per line.

Ten bytes for the key "Key":
  rc4rand gen --key Key --count 10

Dice rolls, bounds are inclusive:
  rc4rand gen --key Key --kind range --min 1 --max 6 --count 5

Continue from a saved small state and print the state afterwards:
  rc4rand gen --small --state 00fedcba9876543210 --print-state`,
		Args: cobra.NoArgs,
		PreRunE: func(cmd *cobra.Command, args []string) error {
			if cmd.Flags().Changed("kind") && !slices.Contains(generator.Kinds, kind) {
				return fmt.Errorf("--kind must be one of: %s", strings.Join(generator.Kinds, ", "))
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			conf, err := loadConfig(cmd, root)
			if err != nil {
				return err
			}
			set := cmd.Flags()
			g := conf.Generator
			if set.Changed("kind") {
				g.Kind = kind
			}
			if set.Changed("count") {
				g.Count = count
			}
			if set.Changed("min") {
				g.Min = min
			}
			if set.Changed("max") {
				g.Max = max
			}
			if set.Changed("print-state") {
				g.PrintState = printState
			}
			return generator.Start(cmd.Context(), appInfo(), conf, cmd.OutOrStdout())
		},
	}
	cmd.Flags().StringVar(&kind, "kind", generator.KindByte, "value kind: "+strings.Join(generator.Kinds, ", "))
	cmd.Flags().IntVarP(&count, "count", "c", 16, "number of values")
	cmd.Flags().Int64Var(&min, "min", 0, "lower bound for --kind range, inclusive")
	cmd.Flags().Int64Var(&max, "max", 100, "upper bound for --kind range, inclusive")
	cmd.Flags().BoolVar(&printState, "print-state", false, "print engine state after the values")
	return cmd
}
