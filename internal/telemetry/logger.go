// Copyright (c) 2023 IBM Corp.
// All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// package telemetry is a pair of printf-shaped callbacks derived from
// *log.Logger, used by the parser to optionally trace decode/encode
// attempts. Silent by default.
package telemetry

import "log"

// Callbacks returns (onFail, onSuccess) printf-shaped callbacks, defaulting
// to the standard logger when none are supplied.
func Callbacks(loggers ...*log.Logger) (func(string, ...any), func(string, ...any)) {
	switch len(loggers) {
	case 0:
		def := log.Default()
		return def.Printf, def.Printf
	case 1:
		l0 := loggers[0]
		return l0.Printf, l0.Printf
	default:
		return loggers[0].Printf, loggers[1].Printf
	}
}

// Tracer is a node-decode/encode tracer. A nil Tracer performs no logging -
// this is the parser's default.
type Tracer struct {
	onFail    func(string, ...any)
	onSuccess func(string, ...any)
}

// NewTracer builds a Tracer from one or two *log.Logger instances
func NewTracer(loggers ...*log.Logger) *Tracer {
	onFail, onSuccess := Callbacks(loggers...)
	return &Tracer{onFail: onFail, onSuccess: onSuccess}
}

func (t *Tracer) Fail(format string, args ...any) {
	if t == nil {
		return
	}
	t.onFail(format, args...)
}

func (t *Tracer) Success(format string, args ...any) {
	if t == nil {
		return
	}
	t.onSuccess(format, args...)
}
