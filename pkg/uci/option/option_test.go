// Copyright © 2023 Rak Laptudirm <rak@laptudirm.com>
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

package option_test

import (
	"testing"

	"laptudirm.com/x/corvid/pkg/uci/option"
)

func TestSpinStoreBounds(t *testing.T) {
	var got int
	spin := &option.Spin{
		Default: 16,
		Min:     1,
		Max:     1024,
		Storage: func(v int) error { got = v; return nil },
	}

	if err := spin.Store([]string{"64"}); err != nil {
		t.Fatalf("store in bounds: %v", err)
	}
	if got != 64 {
		t.Errorf("got %d, want 64", got)
	}

	if err := spin.Store([]string{"2048"}); err == nil {
		t.Error("expected error for out-of-bounds spin value")
	}
	if err := spin.Store([]string{"0"}); err == nil {
		t.Error("expected error for below-minimum spin value")
	}
	if err := spin.Store([]string{"not-a-number"}); err == nil {
		t.Error("expected error for non-integer spin value")
	}
}

func TestSpinInitializeUsesDefault(t *testing.T) {
	var got int
	spin := &option.Spin{
		Default: 16,
		Min:     1,
		Max:     1024,
		Storage: func(v int) error { got = v; return nil },
	}

	if err := spin.Initialize(); err != nil {
		t.Fatal(err)
	}
	if got != 16 {
		t.Errorf("got %d, want default 16", got)
	}
}

func TestCheckStoreAndDefault(t *testing.T) {
	var got bool
	check := &option.Check{
		Default: true,
		Storage: func(v bool) error { got = v; return nil },
	}

	if err := check.Store([]string{"false"}); err != nil {
		t.Fatal(err)
	}
	if got {
		t.Error("store(false) left got true")
	}

	if err := check.Initialize(); err != nil {
		t.Fatal(err)
	}
	if !got {
		t.Error("initialize did not apply the default")
	}

	if err := check.Store([]string{"notabool"}); err == nil {
		t.Error("expected error for non-boolean check value")
	}
}

func TestButtonStoreRejectsArguments(t *testing.T) {
	pinged := false
	button := &option.Button{
		Ping: func() error { pinged = true; return nil },
	}

	if err := button.Store(nil); err != nil {
		t.Fatal(err)
	}
	if !pinged {
		t.Error("store did not ping the button's handler")
	}

	if err := button.Store([]string{"unexpected"}); err == nil {
		t.Error("expected error for a button given arguments")
	}
}

func TestSchemaSetOptionUnknownName(t *testing.T) {
	schema := option.NewSchema()
	if err := schema.SetOption("DoesNotExist", []string{"1"}); err == nil {
		t.Error("expected error for an unregistered option name")
	}
}

func TestSchemaSetDefaultsAndSetOption(t *testing.T) {
	schema := option.NewSchema()

	var hash int
	schema.AddOption("Hash", &option.Spin{
		Default: 16, Min: 1, Max: 1024,
		Storage: func(v int) error { hash = v; return nil },
	})

	if err := schema.SetDefaults(); err != nil {
		t.Fatal(err)
	}
	if hash != 16 {
		t.Fatalf("after SetDefaults: hash = %d, want 16", hash)
	}

	if err := schema.SetOption("Hash", []string{"128"}); err != nil {
		t.Fatal(err)
	}
	if hash != 128 {
		t.Errorf("after SetOption: hash = %d, want 128", hash)
	}
}
