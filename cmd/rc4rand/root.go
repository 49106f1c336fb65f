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
	"github.com/rs/xid"
	"github.com/spf13/cobra"

	"github.com/clyso/rc4rand/pkg/config"
	"github.com/clyso/rc4rand/pkg/dom"
	"github.com/clyso/rc4rand/service/generator"
)

type rootFlags struct {
	configPath         string
	configOverridePath string
	verbose            bool
	metricsOut         string

	key     string
	keyInts []int
	size    int
	small   bool
	state   string
	skip    int
}

func newRootCmd() *cobra.Command {
	flags := &rootFlags{}
	rootCmd := &cobra.Command{
		Use:   "rc4rand",
		Short: "Prints reproducible random values from an RC4 keystream",
		Long: `Rc4rand prints reproducible pseudo-random values generated by the RC4
key-scheduling and output algorithms. The same key always yields the same
values. It is NOT suitable for cryptographic use.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	pf := rootCmd.PersistentFlags()
	pf.StringVar(&flags.configPath, "config", "", "path to config file")
	pf.StringVar(&flags.configOverridePath, "config-override", "", "path to config override file")
	pf.BoolVarP(&flags.verbose, "verbose", "v", false, "prints debug log information to stderr")
	pf.StringVar(&flags.metricsOut, "metrics-out", "", "enables metrics and writes them to this file in prometheus text format")
	pf.StringVarP(&flags.key, "key", "k", "", "string key; random when empty")
	pf.IntSliceVar(&flags.keyInts, "key-ints", nil, "integer key, comma separated; overrides --key")
	pf.IntVarP(&flags.size, "size", "n", 256, "permutation size")
	pf.BoolVar(&flags.small, "small", false, "use the 16 element nibble configuration")
	pf.StringVar(&flags.state, "state", "", "initial state: 18 hex digits for --small, or a yaml/json {i, j, s} document")
	pf.IntVar(&flags.skip, "skip", 0, "number of bytes to discard before output")

	rootCmd.AddCommand(newGenCmd(flags))
	rootCmd.AddCommand(newStateCmd(flags))
	return rootCmd
}

// loadConfig merges embedded defaults, config files, CFG_ env vars and
// finally the flags explicitly set on cmd.
func loadConfig(cmd *cobra.Command, flags *rootFlags) (*generator.Config, error) {
	var src []config.Src
	if flags.configPath != "" {
		src = append(src, config.Path(flags.configPath))
	}
	if flags.configOverridePath != "" {
		src = append(src, config.Path(flags.configOverridePath))
	}
	conf, err := generator.GetConfig(src...)
	if err != nil {
		return nil, err
	}

	set := cmd.Flags()
	g := conf.Generator
	if g == nil {
		g = &generator.Generator{}
		conf.Generator = g
	}
	if set.Changed("key") {
		g.Key = flags.key
	}
	if set.Changed("key-ints") {
		g.Key = flags.keyInts
	}
	if set.Changed("size") {
		g.Size = flags.size
	}
	if set.Changed("small") {
		g.Small = flags.small
	}
	if set.Changed("state") {
		g.State = flags.state
	}
	if set.Changed("skip") {
		g.Skip = flags.skip
	}
	if set.Changed("metrics-out") && conf.Metrics != nil {
		conf.Metrics.Enabled = flags.metricsOut != ""
		conf.Metrics.OutFile = flags.metricsOut
	}
	if flags.verbose && conf.Log != nil {
		conf.Log.Level = "debug"
	}
	return conf, nil
}

func appInfo() dom.AppInfo {
	return dom.AppInfo{
		Version: version,
		Commit:  commit,
		App:     "rc4rand",
		AppID:   xid.New().String(),
	}
}
