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
	"errors"
	"fmt"
)

var (
	ErrInvalidKey       = errors.New("InvalidKey")
	ErrInvalidArgs      = errors.New("InvalidArgs")
	ErrInvalidState     = errors.New("InvalidState")
	ErrInvalidStateText = errors.New("InvalidStateText")
	ErrInvalidConfig    = errors.New("InvalidConfig")
)

const (
	ReasonOutOfRange = "out of range"
	ReasonDuplicate  = "duplicate"
)

// PermutationError reports the first entry of state.s that breaks the
// permutation invariant.
type PermutationError struct {
	Index  int
	Value  int
	Reason string
}

func (e *PermutationError) Error() string {
	return fmt.Sprintf("%s: state.s[%d]=%d is %s", ErrInvalidState, e.Index, e.Value, e.Reason)
}

func (e *PermutationError) Unwrap() error {
	return ErrInvalidState
}
