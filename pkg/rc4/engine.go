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

// Package rc4 implements a deterministic, seedable pseudo-random generator
// on top of the RC4 key-scheduling and output algorithms.
//
// The generator is meant for reproducible randomness in simulations and
// tests. It is NOT cryptographically secure.
//
// An Engine is not safe for concurrent use. Callers sharing one engine
// between goroutines must serialize access themselves.
package rc4

import (
	"fmt"

	"github.com/rs/zerolog"

	"github.com/clyso/rc4rand/pkg/log"
	"github.com/clyso/rc4rand/pkg/metrics"
)

const (
	DefaultSize = 256
	SmallSize   = 16
)

// Layout defines how output units of the permutation are combined into
// one output byte.
type Layout int

const (
	// LayoutNative returns one output unit per byte.
	LayoutNative Layout = iota
	// LayoutNibble combines two 4-bit units as hi*16+lo. Requires SmallSize.
	LayoutNibble
)

func (l Layout) String() string {
	switch l {
	case LayoutNative:
		return "native"
	case LayoutNibble:
		return "nibble"
	default:
		return fmt.Sprintf("Layout(%d)", int(l))
	}
}

type options struct {
	size    int
	layout  Layout
	rnd     Randomness
	logger  zerolog.Logger
	metrics metrics.Service
}

type Option func(o *options)

func WithSize(size int) Option {
	return func(o *options) {
		o.size = size
	}
}

func WithLayout(layout Layout) Option {
	return func(o *options) {
		o.layout = layout
	}
}

// WithRandomness replaces the source of key material used when New is
// called without a key.
func WithRandomness(rnd Randomness) Option {
	return func(o *options) {
		o.rnd = rnd
	}
}

func WithLogger(logger zerolog.Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

func WithMetrics(svc metrics.Service) Option {
	return func(o *options) {
		o.metrics = svc
	}
}

type Engine struct {
	size   int
	layout Layout
	i, j   int
	s      []int

	logger  zerolog.Logger
	metrics metrics.Service
}

// New creates an engine seeded with key. A nil key draws size random key
// elements from the configured Randomness.
//
// Supported key types are string, []byte, []int, []int64, []uint32,
// []float64 and []any holding numbers. Float elements must be integral.
func New(key any, opts ...Option) (*Engine, error) {
	o := options{
		size:    DefaultSize,
		layout:  LayoutNative,
		rnd:     platformRandomness{},
		logger:  zerolog.Nop(),
		metrics: metrics.NewService(false),
	}
	for _, opt := range opts {
		opt(&o)
	}
	if o.size < 1 {
		return nil, fmt.Errorf("%w: size must be positive, got %d", ErrInvalidConfig, o.size)
	}
	switch o.layout {
	case LayoutNative:
	case LayoutNibble:
		if o.size != SmallSize {
			return nil, fmt.Errorf("%w: %s layout requires size %d, got %d", ErrInvalidConfig, o.layout, SmallSize, o.size)
		}
	default:
		return nil, fmt.Errorf("%w: unknown layout %s", ErrInvalidConfig, o.layout)
	}
	if o.rnd == nil {
		o.rnd = platformRandomness{}
	}
	if o.metrics == nil {
		o.metrics = metrics.NewService(false)
	}

	material, err := keyMaterial(key, o.size, o.rnd)
	if err != nil {
		return nil, err
	}
	e := &Engine{
		size:    o.size,
		layout:  o.layout,
		s:       schedule(material, o.size),
		logger:  o.logger,
		metrics: o.metrics,
	}
	e.logger.Debug().
		Int(log.Size, e.size).
		Stringer(log.Layout, e.layout).
		Bool("random_key", key == nil).
		Msg("rc4: engine seeded")
	return e, nil
}

// NewSmall creates the reduced configuration: a 16 element permutation
// whose bytes are built from two nibble outputs.
func NewSmall(key any, opts ...Option) (*Engine, error) {
	return New(key, append([]Option{WithSize(SmallSize), WithLayout(LayoutNibble)}, opts...)...)
}

func (e *Engine) Size() int {
	return e.size
}

func (e *Engine) Layout() Layout {
	return e.layout
}

// step advances the permutation once and returns one unit in [0, size).
func (e *Engine) step() int {
	e.i = (e.i + 1) % e.size
	e.j = (e.j + e.s[e.i]) % e.size
	e.s[e.i], e.s[e.j] = e.s[e.j], e.s[e.i]
	return e.s[(e.s[e.i]+e.s[e.j])%e.size]
}

func (e *Engine) nextByte() int {
	if e.layout == LayoutNibble {
		hi := e.step()
		lo := e.step()
		return hi*SmallSize + lo
	}
	return e.step()
}

// NextByte returns the next output byte. For the native layout the value
// lies in [0, size).
func (e *Engine) NextByte() int {
	b := e.nextByte()
	e.metrics.Output(e.layout.String(), metrics.KindByte, 1)
	return b
}
