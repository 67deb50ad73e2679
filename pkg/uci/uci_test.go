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

package uci_test

import (
	"bytes"
	"strings"
	"testing"

	"laptudirm.com/x/corvid/pkg/uci"
	"laptudirm.com/x/corvid/pkg/uci/cmd"
)

func TestRunWithDispatchesRegisteredCommand(t *testing.T) {
	client := uci.NewClient()

	ran := false
	client.AddCommand(cmd.Command{
		Name: "ping",
		Run: func(cmd.Interaction) error {
			ran = true
			return nil
		},
	})

	if err := client.Run("ping"); err != nil {
		t.Fatal(err)
	}
	if !ran {
		t.Error("expected command to run")
	}
}

func TestRunWithUnknownCommand(t *testing.T) {
	client := uci.NewClient()
	if err := client.Run("nosuchcommand"); err == nil {
		t.Error("expected error for an unregistered command")
	}
}

func TestStartStopsOnQuit(t *testing.T) {
	client := uci.NewClient()
	client.SetStreams(strings.NewReader("isready\nquit\n"), &bytes.Buffer{})

	if err := client.Start(); err != nil {
		t.Fatalf("Start: %v", err)
	}
}

func TestStartSkipsBlankLines(t *testing.T) {
	client := uci.NewClient()
	client.SetStreams(strings.NewReader("\n   \nquit\n"), &bytes.Buffer{})

	if err := client.Start(); err != nil {
		t.Fatalf("Start: %v", err)
	}
}
