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

package issue

// Wire is the recommended serialization shape of section 6:
// { kind, path: [segments], message?, children?: [Issue] }
type Wire struct {
	Kind     string   `json:"kind"`
	Path     []string `json:"path,omitempty"`
	Message  string   `json:"message,omitempty"`
	Children []Wire   `json:"children,omitempty"`
}

// ToWire renders the Issue tree into the recommended wire shape, flattening
// any Pointer's path into the nearest non-Pointer descendant's entry.
func ToWire(i *Issue) Wire {
	return toWire(i, nil)
}

func toWire(i *Issue, path []PathSegment) Wire {
	if i.kind == KindPointer {
		return toWire(i.inner, append(path, i.path...))
	}
	w := Wire{Kind: i.kind.String(), Path: pathStrings(path)}
	switch i.kind {
	case KindComposite:
		for _, c := range i.children {
			w.Children = append(w.Children, toWire(c, nil))
		}
	case KindInvalidValue:
		w.Message = i.reason
	case KindForbidden:
		w.Message = i.reason
	}
	return w
}

func pathStrings(path []PathSegment) []string {
	if len(path) == 0 {
		return nil
	}
	out := make([]string, len(path))
	for i, p := range path {
		out[i] = p.String()
	}
	return out
}
