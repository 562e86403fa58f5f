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

package value

// Get looks up a string-keyed property on a Map value. Returns ok=false both
// when the value isn't a Map and when the key is absent - callers that need
// to distinguish "not a map" from "missing key" should check AsMap first.
func (v Value) Get(name string) (Value, bool) {
	for _, e := range v.mapVal {
		if s, ok := e.Key.StrVal(); ok && s == name && v.tag == TagMap {
			return e.Value, true
		}
	}
	return Value{}, false
}

// Has reports whether a Map value carries the given string key.
func (v Value) Has(name string) bool {
	_, ok := v.Get(name)
	return ok
}

// Keys returns the ordered string keys of a Map value (symbol/int keys are
// skipped - callers that need those should walk Entries directly).
func (v Value) Keys() []string {
	var out []string
	for _, e := range v.mapVal {
		if s, ok := e.Key.StrVal(); ok {
			out = append(out, s)
		}
	}
	return out
}

// Entries returns the ordered entries of a Map value.
func (v Value) Entries() []Entry {
	return v.mapVal
}

// Len returns the element count of a Seq or the entry count of a Map.
func (v Value) Len() int {
	switch v.tag {
	case TagSeq:
		return len(v.seqVal)
	case TagMap:
		return len(v.mapVal)
	}
	return 0
}

// WithEntry returns a new Map value with the given entry appended or
// overwriting an existing entry with the same key (last write wins, the
// default policy of section 4.6.4 when no merge combiner is supplied).
func (v Value) WithEntry(k Key, val Value) Value {
	entries := make([]Entry, 0, len(v.mapVal)+1)
	replaced := false
	for _, e := range v.mapVal {
		if e.Key.Equals(k) {
			entries = append(entries, Entry{Key: k, Value: val})
			replaced = true
			continue
		}
		entries = append(entries, e)
	}
	if !replaced {
		entries = append(entries, Entry{Key: k, Value: val})
	}
	return Value{tag: TagMap, mapVal: entries}
}
