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

package cmd_test

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"laptudirm.com/x/corvid/pkg/uci/cmd"
	"laptudirm.com/x/corvid/pkg/uci/flag"
)

func TestSchemaAddAndGet(t *testing.T) {
	schema := cmd.NewSchema(&bytes.Buffer{})

	ran := false
	schema.Add(cmd.Command{
		Name: "isready",
		Run: func(cmd.Interaction) error {
			ran = true
			return nil
		},
	})

	c, found := schema.Get("isready")
	if !found {
		t.Fatal("expected isready command to be found")
	}

	if err := c.RunWith(nil, false, schema); err != nil {
		t.Fatal(err)
	}
	if !ran {
		t.Error("command's Run was never called")
	}
}

func TestSchemaGetMissing(t *testing.T) {
	schema := cmd.NewSchema(&bytes.Buffer{})
	if _, found := schema.Get("nonexistent"); found {
		t.Error("expected not found for an unregistered command")
	}
}

func TestRunWithParsesFlags(t *testing.T) {
	schema := cmd.NewSchema(&bytes.Buffer{})

	flags := flag.NewSchema()
	flags.Single("name")

	var gotName string
	c := cmd.Command{
		Name:  "setoption",
		Flags: flags,
		Run: func(i cmd.Interaction) error {
			gotName, _ = i.Values["name"].Value.(string)
			return nil
		},
	}
	schema.Add(c)

	if err := c.RunWith([]string{"name", "Hash"}, false, schema); err != nil {
		t.Fatal(err)
	}
	if gotName != "Hash" {
		t.Errorf("got %q, want %q", gotName, "Hash")
	}
}

func TestRunWithParallelReturnsImmediately(t *testing.T) {
	schema := cmd.NewSchema(&bytes.Buffer{})

	started := make(chan struct{})
	c := cmd.Command{
		Name:     "go",
		Parallel: true,
		Run: func(cmd.Interaction) error {
			close(started)
			return nil
		},
	}
	schema.Add(c)

	if err := c.RunWith(nil, true, schema); err != nil {
		t.Fatal(err)
	}

	select {
	case <-started:
	case <-time.After(time.Second):
		t.Fatal("parallel command never ran")
	}
}

func TestInteractionReply(t *testing.T) {
	var buf bytes.Buffer
	schema := cmd.NewSchema(&buf)

	c := cmd.Command{
		Name: "d",
		Run: func(i cmd.Interaction) error {
			_, err := i.Reply("board diagram")
			return err
		},
	}
	schema.Add(c)

	if err := c.RunWith(nil, false, schema); err != nil {
		t.Fatal(err)
	}
	if got := strings.TrimSpace(buf.String()); got != "board diagram" {
		t.Errorf("got %q", got)
	}
}
