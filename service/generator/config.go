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

package generator

import (
	"embed"
	"fmt"
	"io/fs"
	"slices"

	"github.com/clyso/rc4rand/pkg/config"
)

//go:embed config.yaml
var configFile embed.FS

func defaultConfig() fs.File {
	defaultFile, err := configFile.Open("config.yaml")
	if err != nil {
		panic(err)
	}
	return defaultFile
}

const (
	KindByte   = "byte"
	KindUint32 = "uint32"
	KindFloat  = "float"
	KindRange  = "range"
	KindBool   = "bool"
)

var Kinds = []string{KindByte, KindUint32, KindFloat, KindRange, KindBool}

type Config struct {
	config.Common `yaml:",inline,omitempty" mapstructure:",squash"`

	Generator *Generator `yaml:"generator,omitempty"`
}

type Generator struct {
	Size       int    `yaml:"size"`
	Small      bool   `yaml:"small"`
	Key        any    `yaml:"key"`
	Kind       string `yaml:"kind"`
	Count      int    `yaml:"count"`
	Min        int64  `yaml:"min"`
	Max        int64  `yaml:"max"`
	Skip       int    `yaml:"skip"`
	State      string `yaml:"state"`
	PrintState bool   `yaml:"printState"`
}

func (c *Config) Validate() error {
	if err := c.Common.Validate(); err != nil {
		return err
	}
	if c.Generator == nil {
		return fmt.Errorf("generator config: empty Generator config")
	}
	g := c.Generator
	if !g.Small && g.Size < 1 {
		return fmt.Errorf("generator config: size must be positive: %d", g.Size)
	}
	if !slices.Contains(Kinds, g.Kind) {
		return fmt.Errorf("generator config: unknown kind %q, expected one of %v", g.Kind, Kinds)
	}
	if g.Count < 0 {
		return fmt.Errorf("generator config: count must not be negative: %d", g.Count)
	}
	if g.Skip < 0 {
		return fmt.Errorf("generator config: skip must not be negative: %d", g.Skip)
	}
	if g.Kind == KindRange && g.Max < g.Min {
		return fmt.Errorf("generator config: max %d is less than min %d", g.Max, g.Min)
	}
	return nil
}

func GetConfig(src ...config.Src) (*Config, error) {
	dc := defaultConfig()
	var conf Config
	cfgSource := []config.Src{config.Reader(dc, "generator_default_cfg")}
	cfgSource = append(cfgSource, src...)
	err := config.Get(&conf, cfgSource...)
	_ = dc.Close()
	if err != nil {
		return nil, err
	}
	return &conf, err
}
