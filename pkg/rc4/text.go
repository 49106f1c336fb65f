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
	"regexp"
	"strings"

	"github.com/clyso/rc4rand/pkg/log"
)

const hexDigits = "0123456789abcdef"

// Text form of a SmallSize state: i, j, then s[0..15], one hex digit each.
var stateTextRe = regexp.MustCompile(`^[0-9a-f]{18}$`)

func EncodeStateText(st State) (string, error) {
	if err := st.Validate(SmallSize); err != nil {
		return "", err
	}
	var sb strings.Builder
	sb.Grow(2 + SmallSize)
	sb.WriteByte(hexDigits[st.I])
	sb.WriteByte(hexDigits[st.J])
	for _, v := range st.S {
		sb.WriteByte(hexDigits[v])
	}
	return sb.String(), nil
}

func DecodeStateText(text string) (State, error) {
	if !stateTextRe.MatchString(text) {
		return State{}, fmt.Errorf("%w: %q must be 18 lowercase hex digits", ErrInvalidStateText, text)
	}
	digits := make([]int, len(text))
	for idx := 0; idx < len(text); idx++ {
		digits[idx] = strings.IndexByte(hexDigits, text[idx])
	}
	st := State{I: digits[0], J: digits[1], S: digits[2:]}
	if err := st.Validate(SmallSize); err != nil {
		return State{}, err
	}
	return st, nil
}

func (e *Engine) ExportStateText() (string, error) {
	if e.size != SmallSize {
		return "", fmt.Errorf("%w: text state requires size %d, engine has %d", ErrInvalidConfig, SmallSize, e.size)
	}
	return EncodeStateText(e.ExportState())
}

func (e *Engine) ImportStateText(text string) error {
	if e.size != SmallSize {
		return fmt.Errorf("%w: text state requires size %d, engine has %d", ErrInvalidConfig, SmallSize, e.size)
	}
	st, err := DecodeStateText(text)
	if err != nil {
		e.metrics.StateImport(false)
		e.logger.Warn().Err(err).Int(log.Size, e.size).Msg("rc4: state text import rejected")
		return err
	}
	return e.ImportState(st)
}
