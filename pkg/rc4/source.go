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
	"encoding/binary"
	"io"
	"math/rand"

	"github.com/clyso/rc4rand/pkg/log"
	"github.com/clyso/rc4rand/pkg/metrics"
)

var (
	_ rand.Source64 = &Engine{}
	_ io.Reader     = &Engine{}
)

// Uint64 joins two NextUint32 values, high word first.
func (e *Engine) Uint64() uint64 {
	hi := e.nextUint32()
	lo := e.nextUint32()
	e.metrics.Output(e.layout.String(), metrics.KindUint64, 1)
	return uint64(hi)<<32 | uint64(lo)
}

func (e *Engine) Int63() int64 {
	return int64(e.Uint64() >> 1)
}

// Seed reschedules the permutation from the 8 big-endian bytes of seed and
// resets both cursors. Size and layout are kept.
func (e *Engine) Seed(seed int64) {
	var key [8]byte
	binary.BigEndian.PutUint64(key[:], uint64(seed))
	// a non-empty []byte key cannot fail
	material, _ := keyMaterial(key[:], e.size, nil)
	e.s = schedule(material, e.size)
	e.i, e.j = 0, 0
	e.logger.Debug().Int(log.Size, e.size).Int64("seed", seed).Msg("rc4: engine reseeded")
}

// Read fills p with successive NextByte values. It never fails.
func (e *Engine) Read(p []byte) (int, error) {
	for idx := range p {
		p[idx] = byte(e.nextByte())
	}
	e.metrics.Output(e.layout.String(), metrics.KindByte, len(p))
	return len(p), nil
}
