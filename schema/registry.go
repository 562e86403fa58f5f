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

package schema

import (
	"fmt"
	"sync"

	"github.com/fpschema/fpschema/ast"
)

// Registry is a small named-schema lookup table. It is not one of the
// engine's six core components; it exists only so the demo CLI
// (cmd/schemadecode) has something to decode against without inventing a
// second DSL.
type Registry struct {
	mu      sync.RWMutex
	schemas map[string]*ast.Node
}

// NewRegistry builds an empty Registry.
func NewRegistry() *Registry {
	return &Registry{schemas: make(map[string]*ast.Node)}
}

// Register adds or replaces the schema named name.
func (r *Registry) Register(name string, n *ast.Node) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.schemas[name] = n
}

// Lookup returns the schema named name, or an error if it is not registered.
func (r *Registry) Lookup(name string) (*ast.Node, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	n, ok := r.schemas[name]
	if !ok {
		return nil, fmt.Errorf("schema: no registered schema named %q", name)
	}
	return n, nil
}

// Names lists every registered schema name.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	names := make([]string, 0, len(r.schemas))
	for name := range r.schemas {
		names = append(names, name)
	}
	return names
}

// Builtins returns a Registry preloaded with the "user" and "event" demo
// schemas the command-line front-end decodes against.
func Builtins() *Registry {
	r := NewRegistry()
	r.Register("user", userSchema())
	r.Register("event", eventSchema())
	return r
}

func userSchema() *ast.Node {
	return Struct(
		Field("name", String()),
		Field("age", Number()),
		OptionalField("email", String()),
	)
}

func eventSchema() *ast.Node {
	return Struct(
		Field("kind", OneOf(Literal(ast.StringLiteral("click")), Literal(ast.StringLiteral("view")))),
		Field("occurredAt", String()),
		OptionalField("metadata", Record(String(), Any())),
	)
}
