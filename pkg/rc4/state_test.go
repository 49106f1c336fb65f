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
	"testing"

	"github.com/stretchr/testify/require"
)

func identity(n int) []int {
	s := make([]int, n)
	for i := range s {
		s[i] = i
	}
	return s
}

func TestEngine_StateRoundTrip(t *testing.T) {
	r := require.New(t)
	for _, newEngine := range []func() (*Engine, error){
		func() (*Engine, error) { return New("roundtrip") },
		func() (*Engine, error) { return NewSmall("roundtrip") },
	} {
		e, err := newEngine()
		r.NoError(err)
		nextBytes(e, 37)

		st := e.ExportState()
		want := nextBytes(e, 100)

		r.NoError(e.ImportState(st))
		r.EqualValues(want, nextBytes(e, 100))

		// a snapshot moves to a fresh engine as well
		other, err := newEngine()
		r.NoError(err)
		r.NoError(other.ImportState(st))
		r.EqualValues(want, nextBytes(other, 100))
	}
}

func TestEngine_ExportStateIsCopy(t *testing.T) {
	r := require.New(t)
	e, err := New("Key")
	r.NoError(err)

	st := e.ExportState()
	saved := append([]int(nil), st.S...)
	nextBytes(e, 50)
	r.EqualValues(saved, st.S)
	r.EqualValues(0, st.I)
	r.EqualValues(0, st.J)
}

func TestEngine_ImportStateIsCopy(t *testing.T) {
	r := require.New(t)
	e, err := New("Key")
	r.NoError(err)
	st := e.ExportState()

	r.NoError(e.ImportState(st))
	want := e.ExportState()
	for i := range st.S {
		st.S[i] = 0
	}
	r.EqualValues(want, e.ExportState())
	requirePermutation(r, e.ExportState().S)
}

func TestState_Validate(t *testing.T) {
	dup := identity(16)
	dup[1] = 0
	outOfRange := identity(16)
	outOfRange[5] = 16
	negative := identity(16)
	negative[0] = -1

	tests := []struct {
		name       string
		state      State
		wantReason string
		wantErr    bool
	}{
		{name: "valid", state: State{I: 15, J: 3, S: identity(16)}},
		{name: "i out of range", state: State{I: 16, S: identity(16)}, wantErr: true},
		{name: "negative i", state: State{I: -1, S: identity(16)}, wantErr: true},
		{name: "j out of range", state: State{J: 16, S: identity(16)}, wantErr: true},
		{name: "short s", state: State{S: identity(15)}, wantErr: true},
		{name: "nil s", state: State{}, wantErr: true},
		{name: "duplicate", state: State{S: dup}, wantErr: true, wantReason: ReasonDuplicate},
		{name: "out of range value", state: State{S: outOfRange}, wantErr: true, wantReason: ReasonOutOfRange},
		{name: "negative value", state: State{S: negative}, wantErr: true, wantReason: ReasonOutOfRange},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := require.New(t)
			err := tt.state.Validate(16)
			if !tt.wantErr {
				r.NoError(err)
				return
			}
			r.ErrorIs(err, ErrInvalidState)
			var permErr *PermutationError
			if tt.wantReason == "" {
				r.False(errors.As(err, &permErr))
				return
			}
			r.ErrorAs(err, &permErr)
			r.EqualValues(tt.wantReason, permErr.Reason)
		})
	}
}

func TestState_ValidateOrder(t *testing.T) {
	r := require.New(t)
	err := State{I: 99, J: 99, S: []int{0, 0}}.Validate(16)
	r.ErrorContains(err, "state.i")
	err = State{I: 0, J: 99, S: []int{0, 0}}.Validate(16)
	r.ErrorContains(err, "state.j")
	err = State{S: []int{0, 0}}.Validate(16)
	r.ErrorContains(err, "length")
}

func TestEngine_ImportStateRejectsAtomically(t *testing.T) {
	r := require.New(t)
	e, err := New("Key")
	r.NoError(err)
	nextBytes(e, 10)
	before := e.ExportState()

	bad := identity(256)
	bad[0], bad[1] = 0, 0
	err = e.ImportState(State{I: 0, J: 0, S: bad})
	r.ErrorIs(err, ErrInvalidState)
	var permErr *PermutationError
	r.ErrorAs(err, &permErr)
	r.EqualValues(ReasonDuplicate, permErr.Reason)
	r.EqualValues(1, permErr.Index)

	err = e.ImportState(State{I: 300, J: 0, S: identity(256)})
	r.ErrorIs(err, ErrInvalidState)

	r.EqualValues(before, e.ExportState())
}
