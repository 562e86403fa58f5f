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

package parser

import (
	"github.com/fpschema/fpschema/ast"
	"github.com/fpschema/fpschema/check"
	"github.com/fpschema/fpschema/issue"
	"github.com/fpschema/fpschema/option"
	"github.com/fpschema/fpschema/parseopts"
	"github.com/fpschema/fpschema/value"
)

// runChecks evaluates n's check list against a successful decode (section 4.5); an absent result skips checks entirely - there is nothing
// to validate.
func runChecks(n *ast.Node, out option.Option[value.Value], opts parseopts.Options) (option.Option[value.Value], *issue.Issue) {
	v, ok := option.Unwrap(out)
	if !ok {
		return out, nil
	}
	checks := n.Extensions().Checks
	if len(checks) == 0 {
		return out, nil
	}
	if iss, failed := option.Unwrap(check.Run(checks, v, n, opts.Errors)); failed {
		return option.None[value.Value](), iss
	}
	return out, nil
}
