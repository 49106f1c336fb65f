/*
 * Copyright © 2023 Clyso GmbH
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

package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	KindByte   = "byte"
	KindUint32 = "uint32"
	KindUint64 = "uint64"
	KindFloat  = "float"
	KindRange  = "range"
)

var outputsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Name: "rc4_outputs_total",
		Help: "Number of values produced by rc4 engines.",
	},
	[]string{"layout", "kind"},
)

var stateImportsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Name: "rc4_state_imports_total",
		Help: "Number of state imports into rc4 engines by result.",
	},
	[]string{"result"},
)

type Config struct {
	Enabled bool `yaml:"enabled"`
	// OutFile receives the gathered counters in text exposition format
	// once the run is over. Empty means no export.
	OutFile string `yaml:"outFile"`
}

// WriteFile dumps the default registry to path, replacing it atomically.
func WriteFile(path string) error {
	return prometheus.WriteToTextfile(path, prometheus.DefaultGatherer)
}

type Service interface {
	Output(layout, kind string, n int)
	StateImport(ok bool)
}

func NewService(enabled bool) *svc {
	return &svc{enabled: enabled}
}

var _ Service = &svc{}

type svc struct {
	enabled bool
}

func (s svc) Output(layout, kind string, n int) {
	if !s.enabled || n <= 0 {
		return
	}
	outputsTotal.With(prometheus.Labels{
		"layout": layout,
		"kind":   kind}).Add(float64(n))
}

func (s svc) StateImport(ok bool) {
	if !s.enabled {
		return
	}
	result := "rejected"
	if ok {
		result = "ok"
	}
	stateImportsTotal.With(prometheus.Labels{"result": result}).Inc()
}
