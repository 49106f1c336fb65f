/*
 * Copyright © 2023 Clyso GmbH
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

package config

import (
	"embed"
	"fmt"
	"io"
	"os"
	"strings"

	stdlog "github.com/rs/zerolog/log"
	"github.com/spf13/viper"

	"github.com/clyso/rc4rand/pkg/log"
	"github.com/clyso/rc4rand/pkg/metrics"
)

//go:embed config.yaml
var configFile embed.FS

type Common struct {
	Log     *log.Config     `yaml:"log,omitempty"`
	Metrics *metrics.Config `yaml:"metrics,omitempty"`
}

// Get fills conf from the embedded common config, then merges sources in
// order. Env vars prefixed with CFG_ override known keys last,
// e.g. CFG_LOG_LEVEL=debug.
func Get(conf any, sources ...Src) error {
	data, err := configFile.Open("config.yaml")
	if err != nil {
		return fmt.Errorf("%w: unable to read config.yaml", err)
	}
	defer data.Close()

	v := viper.NewWithOptions(viper.EnvKeyReplacer(strings.NewReplacer(".", "_")))
	v.SetConfigType("yaml")
	err = v.ReadConfig(data)
	if err != nil {
		return err
	}

	stdlog.Debug().Msg("app config: reading default common config")

	for _, source := range sources {
		switch src := source.(type) {
		case pathOpt:
			_, err = os.Stat(string(src))
			if err != nil {
				stdlog.Warn().Msgf("app config: no config file %q", string(src))
				continue
			}
			v.SetConfigFile(string(src))
			err = v.MergeInConfig()
			if err != nil {
				return fmt.Errorf("%w: unable merge config file %q", err, string(src))
			}
			stdlog.Debug().Msgf("app config: override with: %s", string(src))
		case readerOpt:
			err = v.MergeConfig(src.Reader)
			if err != nil {
				return fmt.Errorf("%w: unable merge config reader", err)
			}
			stdlog.Debug().Msgf("app config: override with: %s", src.Name)
		}
	}

	v.AutomaticEnv()
	v.SetEnvPrefix("CFG")

	err = v.Unmarshal(conf)
	if err != nil {
		return fmt.Errorf("%w: unable to unmarshal config", err)
	}

	return nil
}

func (c *Common) Validate() error {
	if c.Log == nil {
		return fmt.Errorf("app config: empty Log config")
	}
	if c.Metrics == nil {
		return fmt.Errorf("app config: empty Metrics config")
	}
	if c.Metrics.OutFile != "" && !c.Metrics.Enabled {
		return fmt.Errorf("app config: Metrics.OutFile set but metrics are disabled")
	}
	return nil
}

type Src interface {
	src()
}

type pathOpt string

func (pathOpt) src() {}

func Path(path string) Src {
	return pathOpt(path)
}

type readerOpt struct {
	io.Reader
	Name string
}

func (readerOpt) src() {}

func Reader(reader io.Reader, name string) Src {
	return readerOpt{reader, name}
}
