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
	"slices"

	"github.com/clyso/rc4rand/pkg/log"
)

// State is a detached snapshot of engine cursors and permutation.
type State struct {
	I int   `json:"i" yaml:"i"`
	J int   `json:"j" yaml:"j"`
	S []int `json:"s" yaml:"s,flow"`
}

// Validate checks the snapshot against a permutation of the given size.
// Checks run in order: i, j, length of s, then every entry of s.
func (st State) Validate(size int) error {
	if st.I < 0 || st.I >= size {
		return fmt.Errorf("%w: state.i=%d out of range [0, %d)", ErrInvalidState, st.I, size)
	}
	if st.J < 0 || st.J >= size {
		return fmt.Errorf("%w: state.j=%d out of range [0, %d)", ErrInvalidState, st.J, size)
	}
	if len(st.S) != size {
		return fmt.Errorf("%w: state.s has length %d, want %d", ErrInvalidState, len(st.S), size)
	}
	seen := make([]bool, size)
	for idx, v := range st.S {
		if v < 0 || v >= size {
			return &PermutationError{Index: idx, Value: v, Reason: ReasonOutOfRange}
		}
		if seen[v] {
			return &PermutationError{Index: idx, Value: v, Reason: ReasonDuplicate}
		}
		seen[v] = true
	}
	return nil
}

func (e *Engine) ExportState() State {
	return State{
		I: e.i,
		J: e.j,
		S: slices.Clone(e.s),
	}
}

// ImportState replaces the engine state with a copy of st. On error the
// engine is left untouched.
func (e *Engine) ImportState(st State) error {
	if err := st.Validate(e.size); err != nil {
		e.metrics.StateImport(false)
		e.logger.Warn().Err(err).Int(log.Size, e.size).Msg("rc4: state import rejected")
		return err
	}
	e.i, e.j = st.I, st.J
	copy(e.s, st.S)
	e.metrics.StateImport(true)
	return nil
}
