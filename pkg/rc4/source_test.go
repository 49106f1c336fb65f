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
	"io"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestEngine_Uint64(t *testing.T) {
	r := require.New(t)
	e, err := New("Key")
	r.NoError(err)
	want := uint64(0xEB9F7781)<<32 | uint64(3073690226)
	r.EqualValues(want, e.Uint64())

	e, err = New("Key")
	r.NoError(err)
	r.EqualValues(int64(want>>1), e.Int63())
}

func TestEngine_Read(t *testing.T) {
	r := require.New(t)
	e, err := New("Key")
	r.NoError(err)

	buf := make([]byte, 9)
	n, err := io.ReadFull(e, buf)
	r.NoError(err)
	r.EqualValues(9, n)
	r.EqualValues([]byte{0xeb, 0x9f, 0x77, 0x81, 0xb7, 0x34, 0xca, 0x72, 0xa7}, buf)

	small, err := NewSmall("Key")
	r.NoError(err)
	buf = make([]byte, 4)
	_, err = small.Read(buf)
	r.NoError(err)
	r.EqualValues([]byte{114, 101, 36, 158}, buf)
}

func TestEngine_Seed(t *testing.T) {
	r := require.New(t)
	e, err := New("Key")
	r.NoError(err)
	nextBytes(e, 20)

	e.Seed(42)
	first := nextBytes(e, 32)
	e.Seed(42)
	r.EqualValues(first, nextBytes(e, 32))

	seeded, err := New([]byte{0, 0, 0, 0, 0, 0, 0, 42})
	r.NoError(err)
	r.EqualValues(first, nextBytes(seeded, 32))

	small, err := NewSmall("Key")
	r.NoError(err)
	small.Seed(-1)
	r.EqualValues(LayoutNibble, small.Layout())
	requirePermutation(r, small.ExportState().S)
}

func TestEngine_MathRandSource(t *testing.T) {
	r := require.New(t)
	e1, err := New("math/rand")
	r.NoError(err)
	e2, err := New("math/rand")
	r.NoError(err)

	r1, r2 := rand.New(e1), rand.New(e2)
	for n := 0; n < 100; n++ {
		r.EqualValues(r1.Intn(1000), r2.Intn(1000))
		r.EqualValues(r1.Uint64(), r2.Uint64())
	}
}

func TestBits_Bool(t *testing.T) {
	r := require.New(t)
	e, err := New("Key")
	r.NoError(err)
	bits := NewBits(e)

	// low byte of the first word is 0x72
	first := make([]bool, 8)
	for n := range first {
		first[n] = bits.Bool()
	}
	r.EqualValues([]bool{false, true, false, false, true, true, true, false}, first)
	r.EqualValues(8, e.ExportState().I)

	word := uint64(0x72)
	for n := 8; n < 64; n++ {
		if bits.Bool() {
			word |= 1 << n
		}
	}
	r.EqualValues(uint64(0xEB9F7781)<<32|uint64(3073690226), word)
	r.EqualValues(8, e.ExportState().I)

	bits.Bool()
	r.EqualValues(16, e.ExportState().I)
}
