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

// Command schemadecode is a small demo front-end exercising
// schema.DecodeUnknown/Format end-to-end against the
// built-in "user"/"event" schemas: a urfave/cli/v2 App wrapping one
// *C.Command per verb.
package main

import (
	"encoding/json"
	"fmt"
	"log"
	"os"

	"github.com/fpschema/fpschema/either"
	"github.com/fpschema/fpschema/errors"
	"github.com/fpschema/fpschema/issue"
	"github.com/fpschema/fpschema/jsonvalue"
	"github.com/fpschema/fpschema/option"
	"github.com/fpschema/fpschema/parseopts"
	"github.com/fpschema/fpschema/schema"
	C "github.com/urfave/cli/v2"
)

const (
	keySchema = "schema"
	keyFile   = "file"
	keyExact  = "exact"
	keyAll    = "all-errors"
)

func flags() []C.Flag {
	return []C.Flag{
		&C.StringFlag{Name: keySchema, Value: "user", Usage: "name of the built-in schema to decode against"},
		&C.StringFlag{Name: keyFile, Required: true, Usage: "path to a JSON document"},
		&C.BoolFlag{Name: keyExact, Usage: "treat a missing optional property as an error"},
		&C.BoolFlag{Name: keyAll, Usage: "aggregate every failing check instead of stopping at the first"},
	}
}

func decodeOptions(ctx *C.Context) parseopts.Options {
	opts := parseopts.Default().WithExact(ctx.Bool(keyExact))
	if ctx.Bool(keyAll) {
		opts = opts.WithErrors(parseopts.ErrorsAll)
	}
	return opts
}

func DecodeCommand() *C.Command {
	return &C.Command{
		Name:  "decode",
		Usage: "decode a JSON document against a built-in schema",
		Flags: flags(),
		Action: func(ctx *C.Context) error {
			registry := schema.Builtins()
			s, err := registry.Lookup(ctx.String(keySchema))
			if err != nil {
				return err
			}
			data, err := os.ReadFile(ctx.String(keyFile))
			if err != nil {
				return err
			}
			parsed := jsonvalue.Unmarshal(data)
			if either.IsLeft(parsed) {
				_, parseErr := either.Unwrap(parsed)
				return parseErr
			}
			in, _ := either.Unwrap(parsed)

			out, iss := schema.DecodeUnknown(s, in, decodeOptions(ctx))
			if iss != nil {
				// iss satisfies error, so it travels through cli's plain
				// error return like any other failure; main recovers the
				// structured form with errors.As to render it specially.
				return iss
			}
			typed, ok := option.Unwrap(out)
			if !ok {
				fmt.Println("<absent>")
				return nil
			}
			encoded, err := json.MarshalIndent(jsonvalue.ToJSON(typed), "", "  ")
			if err != nil {
				return err
			}
			fmt.Println(string(encoded))
			return nil
		},
	}
}

func FormatCommand() *C.Command {
	return &C.Command{
		Name:  "format",
		Usage: "print a human-readable type expression for a built-in schema",
		Flags: []C.Flag{
			&C.StringFlag{Name: keySchema, Value: "user", Usage: "name of the built-in schema to render"},
		},
		Action: func(ctx *C.Context) error {
			registry := schema.Builtins()
			s, err := registry.Lookup(ctx.String(keySchema))
			if err != nil {
				return err
			}
			fmt.Println(schema.Format(s))
			return nil
		},
	}
}

func Commands() []*C.Command {
	return []*C.Command{
		DecodeCommand(),
		FormatCommand(),
	}
}

func main() {
	app := &C.App{
		Name:     "schemadecode",
		Usage:    "decode and format JSON documents through the bidirectional schema engine",
		Commands: Commands(),
	}
	if err := app.Run(os.Args); err != nil {
		if iss, ok := option.Unwrap(errors.As[*issue.Issue]()(err)); ok {
			fmt.Println(issue.Render(iss))
			os.Exit(1)
		}
		log.Fatal(err)
	}
}
