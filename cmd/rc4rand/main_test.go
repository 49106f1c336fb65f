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

package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/clyso/rc4rand/pkg/rc4"
)

func run(args ...string) (string, error) {
	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestGen(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{
			name: "bytes",
			args: []string{"gen", "--key", "Key", "--count", "3"},
			want: "235\n159\n119\n",
		},
		{
			name: "integer key",
			args: []string{"gen", "--key-ints", "1,2,3", "-c", "4"},
			want: "151\n54\n143\n104\n",
		},
		{
			name: "uint32",
			args: []string{"gen", "-k", "Key", "--kind", "uint32", "-c", "1"},
			want: "3953096577\n",
		},
		{
			name: "skip",
			args: []string{"gen", "-k", "Key", "--skip", "5", "-c", "2"},
			want: "52\n202\n",
		},
		{
			name: "small with state",
			args: []string{"gen", "--small", "-k", "Key", "-c", "2", "--print-state"},
			want: "114\n101\n4db1e2c573f806a9d4\n",
		},
		{
			name: "equal range bounds",
			args: []string{"gen", "-k", "Key", "--kind", "range", "--min", "4", "--max", "4", "-c", "2"},
			want: "4\n4\n",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := require.New(t)
			out, err := run(tt.args...)
			r.NoError(err)
			r.EqualValues(tt.want, out)
		})
	}
}

func TestGen_Errors(t *testing.T) {
	r := require.New(t)
	_, err := run("gen", "--kind", "int")
	r.ErrorContains(err, "--kind must be one of")

	_, err = run("gen", "--small", "--state", "zz")
	r.ErrorIs(err, rc4.ErrInvalidStateText)

	_, err = run("gen", "extra")
	r.Error(err)
}

func TestState(t *testing.T) {
	r := require.New(t)
	out, err := run("state", "--small", "--key", "Key", "--skip", "8")
	r.NoError(err)
	r.EqualValues("095f023e8a6bd1c947\n", out)

	out, err = run("gen", "--small", "--key", "unused", "--state", "095f023e8a6bd1c947", "-c", "1")
	r.NoError(err)
	r.EqualValues("231\n", out)
}

func TestConfigFile(t *testing.T) {
	r := require.New(t)
	path := filepath.Join(t.TempDir(), "config.yaml")
	r.NoError(os.WriteFile(path, []byte("generator:\n  key: [1, 2, 3]\n  count: 2\n"), 0o600))

	out, err := run("gen", "--config", path)
	r.NoError(err)
	r.EqualValues("151\n54\n", out)

	// flags win over the config file
	out, err = run("gen", "--config", path, "--key", "Key", "-c", "1")
	r.NoError(err)
	r.EqualValues("235\n", out)
}

func TestGen_MetricsOut(t *testing.T) {
	r := require.New(t)
	path := filepath.Join(t.TempDir(), "rc4.prom")

	out, err := run("gen", "--small", "-k", "Key", "-c", "2", "--metrics-out", path)
	r.NoError(err)
	r.EqualValues("114\n101\n", out)

	data, err := os.ReadFile(path)
	r.NoError(err)
	r.True(strings.Contains(string(data), `rc4_outputs_total{kind="byte",layout="nibble"}`), string(data))
}
