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

// Bits hands out engine output one bit at a time, so a run of booleans
// costs eight output bytes per 64 values.
type Bits struct {
	src    *Engine
	word   uint64
	remain int
}

func NewBits(src *Engine) *Bits {
	return &Bits{src: src}
}

// Bool returns the lowest unused bit of the current Uint64 draw.
func (b *Bits) Bool() bool {
	if b.remain == 0 {
		b.word = b.src.Uint64()
		b.remain = 64
	}
	val := b.word & 1
	b.word >>= 1
	b.remain--
	return val == 1
}
