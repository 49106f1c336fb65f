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
	"math/rand/v2"
	"unicode/utf16"
)

// Randomness supplies uniform integers in [0, n). It is consumed only when
// an engine is constructed without a key.
type Randomness interface {
	IntN(n int) int
}

type platformRandomness struct{}

func (platformRandomness) IntN(n int) int {
	return rand.IntN(n)
}

// keyMaterial converts a caller supplied key into scheduling material,
// every element already reduced into [0, size).
func keyMaterial(key any, size int, rnd Randomness) ([]int, error) {
	var res []int
	switch k := key.(type) {
	case nil:
		res = make([]int, size)
		for i := range res {
			res[i] = rnd.IntN(size)
		}
		return res, nil
	case string:
		units := utf16.Encode([]rune(k))
		res = make([]int, len(units))
		for i, u := range units {
			res[i] = int(u) % size
		}
	case []byte:
		res = make([]int, len(k))
		for i, v := range k {
			res[i] = int(v) % size
		}
	case []int:
		res = make([]int, len(k))
		for i, v := range k {
			res[i] = reduceInt(int64(v), size)
		}
	case []int64:
		res = make([]int, len(k))
		for i, v := range k {
			res[i] = reduceInt(v, size)
		}
	case []uint32:
		res = make([]int, len(k))
		for i, v := range k {
			res[i] = int(uint64(v) % uint64(size))
		}
	case []float64:
		res = make([]int, len(k))
		for i, v := range k {
			el, err := reduceFloat(v, size)
			if err != nil {
				return nil, fmt.Errorf("%w: key[%d]", err, i)
			}
			res[i] = el
		}
	case []any:
		res = make([]int, len(k))
		for i, v := range k {
			el, err := keyElement(v, size)
			if err != nil {
				return nil, fmt.Errorf("%w: key[%d]", err, i)
			}
			res[i] = el
		}
	default:
		return nil, fmt.Errorf("%w: unsupported key type %T", ErrInvalidKey, key)
	}
	if len(res) == 0 {
		return nil, fmt.Errorf("%w: key is empty", ErrInvalidKey)
	}
	return res, nil
}

func keyElement(v any, size int) (int, error) {
	switch n := v.(type) {
	case int:
		return reduceInt(int64(n), size), nil
	case int8:
		return reduceInt(int64(n), size), nil
	case int16:
		return reduceInt(int64(n), size), nil
	case int32:
		return reduceInt(int64(n), size), nil
	case int64:
		return reduceInt(n, size), nil
	case uint:
		return int(uint64(n) % uint64(size)), nil
	case uint8:
		return int(uint64(n) % uint64(size)), nil
	case uint16:
		return int(uint64(n) % uint64(size)), nil
	case uint32:
		return int(uint64(n) % uint64(size)), nil
	case uint64:
		return int(n % uint64(size)), nil
	case float32:
		return reduceFloat(float64(n), size)
	case float64:
		return reduceFloat(n, size)
	default:
		return 0, fmt.Errorf("%w: element of type %T is not an integer", ErrInvalidKey, v)
	}
}

func reduceInt(v int64, size int) int {
	m := v % int64(size)
	if m < 0 {
		m += int64(size)
	}
	return int(m)
}

func reduceFloat(v float64, size int) (int, error) {
	if math.IsNaN(v) || math.IsInf(v, 0) || math.Trunc(v) != v {
		return 0, fmt.Errorf("%w: %v is not an integer", ErrInvalidKey, v)
	}
	m := math.Mod(v, float64(size))
	if m < 0 {
		m += float64(size)
	}
	return int(m), nil
}

// schedule runs the key-scheduling pass over the identity permutation.
// key must be non-empty with elements in [0, size).
func schedule(key []int, size int) []int {
	s := make([]int, size)
	for i := range s {
		s[i] = i
	}
	j := 0
	for i := 0; i < size; i++ {
		j = (j + s[i] + key[i%len(key)]) % size
		s[i], s[j] = s[j], s[i]
	}
	return s
}
