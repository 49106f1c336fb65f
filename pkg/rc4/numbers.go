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

package rc4

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/clyso/rc4rand/pkg/metrics"
)

const twoPow32 = 1 << 32

// nextUint32 consumes four bytes a, b, c, d in that order and joins them
// big-endian.
func (e *Engine) nextUint32() uint32 {
	a := uint32(e.nextByte())
	b := uint32(e.nextByte())
	c := uint32(e.nextByte())
	d := uint32(e.nextByte())
	return ((a*256+b)*256+c)*256 + d
}

func (e *Engine) NextUint32() uint32 {
	v := e.nextUint32()
	e.metrics.Output(e.layout.String(), metrics.KindUint32, 1)
	return v
}

// NextFloat returns a value in [0, 1) with 32 bits of precision.
func (e *Engine) NextFloat() float64 {
	v := float64(e.nextUint32()) / twoPow32
	e.metrics.Output(e.layout.String(), metrics.KindFloat, 1)
	return v
}

// NextRanged accepts either (max) or (min, max) and returns a value in the
// closed interval [min, max]. The single argument form uses min=0, so
// NextRanged(5) may return 5.
//
// Bounds may be any Go integer, an integral float or a base 10 numeric
// string.
func (e *Engine) NextRanged(args ...any) (int64, error) {
	var (
		lo, hi int64
		err    error
	)
	switch len(args) {
	case 1:
		hi, err = parseBound(args[0])
		if err != nil {
			return 0, fmt.Errorf("%w: max", err)
		}
	case 2:
		lo, err = parseBound(args[0])
		if err != nil {
			return 0, fmt.Errorf("%w: min", err)
		}
		hi, err = parseBound(args[1])
		if err != nil {
			return 0, fmt.Errorf("%w: max", err)
		}
	default:
		return 0, fmt.Errorf("%w: expected 1 or 2 arguments, got %d", ErrInvalidArgs, len(args))
	}
	return e.IntRange(lo, hi)
}

// IntRange returns min + NextUint32() mod (max-min+1).
func (e *Engine) IntRange(min, max int64) (int64, error) {
	if max < min {
		return 0, fmt.Errorf("%w: max %d is less than min %d", ErrInvalidArgs, max, min)
	}
	v := uint64(e.nextUint32())
	e.metrics.Output(e.layout.String(), metrics.KindRange, 1)

	// span wraps to 0 only for the full int64 range.
	span := uint64(max) - uint64(min) + 1
	if span == 0 {
		return min + int64(v), nil
	}
	return min + int64(v%span), nil
}

func parseBound(v any) (int64, error) {
	switch n := v.(type) {
	case int:
		return int64(n), nil
	case int8:
		return int64(n), nil
	case int16:
		return int64(n), nil
	case int32:
		return int64(n), nil
	case int64:
		return n, nil
	case uint:
		return uintBound(uint64(n))
	case uint8:
		return int64(n), nil
	case uint16:
		return int64(n), nil
	case uint32:
		return int64(n), nil
	case uint64:
		return uintBound(n)
	case float32:
		return floatBound(float64(n))
	case float64:
		return floatBound(n)
	case string:
		i, err := strconv.ParseInt(strings.TrimSpace(n), 10, 64)
		if err != nil {
			return 0, fmt.Errorf("%w: %q is not an integer", ErrInvalidArgs, n)
		}
		return i, nil
	default:
		return 0, fmt.Errorf("%w: bound of type %T is not an integer", ErrInvalidArgs, v)
	}
}

func uintBound(v uint64) (int64, error) {
	if v > math.MaxInt64 {
		return 0, fmt.Errorf("%w: %d overflows int64", ErrInvalidArgs, v)
	}
	return int64(v), nil
}

func floatBound(v float64) (int64, error) {
	if math.IsNaN(v) || math.IsInf(v, 0) || math.Trunc(v) != v {
		return 0, fmt.Errorf("%w: %v is not an integer", ErrInvalidArgs, v)
	}
	if v < math.MinInt64 || v >= math.MaxInt64 {
		return 0, fmt.Errorf("%w: %v overflows int64", ErrInvalidArgs, v)
	}
	return int64(v), nil
}
