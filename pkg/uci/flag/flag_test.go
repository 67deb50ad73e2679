// Copyright © 2022 Rak Laptudirm <raklaptudirm@gmail.com>
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package flag_test

import (
	"reflect"
	"testing"

	"laptudirm.com/x/corvid/pkg/uci/flag"
)

func TestParseSingleAndButton(t *testing.T) {
	schema := flag.NewSchema()
	schema.Single("name")
	schema.Button("ponder")

	values, err := schema.Parse([]string{"name", "corvid", "ponder"})
	if err != nil {
		t.Fatal(err)
	}

	if v := values["name"]; !v.Set || v.Value != "corvid" {
		t.Errorf("name: got %+v", v)
	}
	if v := values["ponder"]; !v.Set {
		t.Error("ponder: expected set")
	}
}

func TestParseArray(t *testing.T) {
	schema := flag.NewSchema()
	schema.Array("moves", 2)

	values, err := schema.Parse([]string{"moves", "e2e4", "e7e5"})
	if err != nil {
		t.Fatal(err)
	}

	want := []string{"e2e4", "e7e5"}
	if got := values["moves"].Value; !reflect.DeepEqual(got, want) {
		t.Errorf("moves: got %v, want %v", got, want)
	}
}

func TestParseArrayMissingArguments(t *testing.T) {
	schema := flag.NewSchema()
	schema.Array("moves", 2)

	if _, err := schema.Parse([]string{"moves", "e2e4"}); err == nil {
		t.Error("expected error for an array flag short of arguments")
	}
}

func TestParseVariadicConsumesRest(t *testing.T) {
	schema := flag.NewSchema()
	schema.Variadic("rest")

	values, err := schema.Parse([]string{"rest", "a", "b", "c"})
	if err != nil {
		t.Fatal(err)
	}

	want := []string{"a", "b", "c"}
	if got := values["rest"].Value; !reflect.DeepEqual(got, want) {
		t.Errorf("rest: got %v, want %v", got, want)
	}
}

func TestParseUnknownFlag(t *testing.T) {
	schema := flag.NewSchema()
	schema.Single("name")

	if _, err := schema.Parse([]string{"nope"}); err == nil {
		t.Error("expected error for an unknown flag")
	}
}

func TestParseDuplicateFlag(t *testing.T) {
	schema := flag.NewSchema()
	schema.Button("ponder")

	if _, err := schema.Parse([]string{"ponder", "ponder"}); err == nil {
		t.Error("expected error for a flag set twice")
	}
}

func TestParseNilSchemaRejectsArgs(t *testing.T) {
	var schema flag.Schema

	if _, err := schema.Parse(nil); err != nil {
		t.Errorf("nil schema with no args: %v", err)
	}
	if _, err := schema.Parse([]string{"extra"}); err == nil {
		t.Error("expected error for args against a nil flag schema")
	}
}
