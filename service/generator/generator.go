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
	"bufio"
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/rs/zerolog"
	"gopkg.in/yaml.v3"

	"github.com/clyso/rc4rand/pkg/dom"
	"github.com/clyso/rc4rand/pkg/log"
	"github.com/clyso/rc4rand/pkg/metrics"
	"github.com/clyso/rc4rand/pkg/rc4"
)

// Start prints conf.Generator.Count values of the configured kind to out,
// one per line, optionally followed by the final engine state.
func Start(ctx context.Context, app dom.AppInfo, conf *Config, out io.Writer) error {
	if err := conf.Validate(); err != nil {
		return err
	}
	logger := log.GetLogger(conf.Log, app.App, app.AppID)
	logger.Debug().
		Str("version", app.Version).
		Str("commit", app.Commit).
		Msg("app starting...")

	engine, err := NewEngine(conf, logger)
	if err != nil {
		return err
	}

	w := bufio.NewWriter(out)
	err = generate(ctx, engine, conf.Generator, w)
	if err != nil {
		return err
	}
	logger.Debug().
		Str(log.Kind, conf.Generator.Kind).
		Int(log.Count, conf.Generator.Count).
		Msg("values generated")

	if conf.Generator.PrintState {
		err = WriteState(w, engine)
		if err != nil {
			return err
		}
	}
	if err = w.Flush(); err != nil {
		return err
	}
	return exportMetrics(conf.Metrics, logger)
}

// PrintState writes the engine state after seeding, state import and skip.
func PrintState(app dom.AppInfo, conf *Config, out io.Writer) error {
	if err := conf.Validate(); err != nil {
		return err
	}
	logger := log.GetLogger(conf.Log, app.App, app.AppID)
	engine, err := NewEngine(conf, logger)
	if err != nil {
		return err
	}
	if err = WriteState(out, engine); err != nil {
		return err
	}
	return exportMetrics(conf.Metrics, logger)
}

func exportMetrics(conf *metrics.Config, logger zerolog.Logger) error {
	if !conf.Enabled || conf.OutFile == "" {
		return nil
	}
	if err := metrics.WriteFile(conf.OutFile); err != nil {
		return fmt.Errorf("unable to write metrics: %w", err)
	}
	logger.Debug().Str("path", conf.OutFile).Msg("metrics written")
	return nil
}

// NewEngine builds an engine from generator config. An empty string key
// means a random key.
func NewEngine(conf *Config, logger zerolog.Logger) (*rc4.Engine, error) {
	g := conf.Generator
	opts := []rc4.Option{
		rc4.WithLogger(logger),
		rc4.WithMetrics(metrics.NewService(conf.Metrics.Enabled)),
	}
	key := g.Key
	if s, ok := key.(string); ok && s == "" {
		key = nil
	}

	var (
		engine *rc4.Engine
		err    error
	)
	if g.Small {
		engine, err = rc4.NewSmall(key, opts...)
	} else {
		engine, err = rc4.New(key, append(opts, rc4.WithSize(g.Size))...)
	}
	if err != nil {
		return nil, fmt.Errorf("unable to create engine: %w", err)
	}

	if g.State != "" {
		err = ImportState(engine, g.State)
		if err != nil {
			return nil, err
		}
	}
	for range g.Skip {
		engine.NextByte()
	}
	return engine, nil
}

// ImportState accepts hex state text for small engines, or a yaml/json
// document with i, j and s fields for any engine.
func ImportState(engine *rc4.Engine, text string) error {
	text = strings.TrimSpace(text)
	if engine.Size() == rc4.SmallSize && !strings.ContainsAny(text, "{:") {
		return engine.ImportStateText(text)
	}
	var st rc4.State
	if err := yaml.Unmarshal([]byte(text), &st); err != nil {
		return fmt.Errorf("%w: unable to decode state document: %v", rc4.ErrInvalidState, err)
	}
	return engine.ImportState(st)
}

// WriteState writes hex state text for small engines and a yaml document
// otherwise.
func WriteState(w io.Writer, engine *rc4.Engine) error {
	if engine.Size() == rc4.SmallSize {
		text, err := engine.ExportStateText()
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(w, text)
		return err
	}
	enc := yaml.NewEncoder(w)
	if err := enc.Encode(engine.ExportState()); err != nil {
		return err
	}
	return enc.Close()
}

func generate(ctx context.Context, engine *rc4.Engine, g *Generator, w io.Writer) error {
	var bits *rc4.Bits
	if g.Kind == KindBool {
		bits = rc4.NewBits(engine)
	}
	for n := 0; n < g.Count; n++ {
		if err := ctx.Err(); err != nil {
			return err
		}
		var line string
		switch g.Kind {
		case KindByte:
			line = strconv.Itoa(engine.NextByte())
		case KindUint32:
			line = strconv.FormatUint(uint64(engine.NextUint32()), 10)
		case KindFloat:
			line = strconv.FormatFloat(engine.NextFloat(), 'g', -1, 64)
		case KindRange:
			v, err := engine.IntRange(g.Min, g.Max)
			if err != nil {
				return err
			}
			line = strconv.FormatInt(v, 10)
		case KindBool:
			line = strconv.FormatBool(bits.Bool())
		default:
			return fmt.Errorf("generator: unknown kind %q", g.Kind)
		}
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	return nil
}
