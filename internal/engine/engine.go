// Copyright © 2022 Rak Laptudirm <rak@laptudirm.com>
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

// Package engine wires up the UCI commands and options exposed by the
// engine binary around a single shared search context.
package engine

import (
	"laptudirm.com/x/corvid/internal/engine/cmd"
	"laptudirm.com/x/corvid/internal/engine/context"
	"laptudirm.com/x/corvid/internal/engine/options"
	"laptudirm.com/x/corvid/pkg/board"
	"laptudirm.com/x/corvid/pkg/search"
	"laptudirm.com/x/corvid/pkg/uci"
	"laptudirm.com/x/corvid/pkg/uci/option"
)

// NewClient assembles a uci.Client wired with the engine's commands and
// options, ready to be run against a UCI input stream.
func NewClient() uci.Client {
	client := uci.NewClient()

	startBoard, err := board.NewFromFields(board.StartFEN)
	if err != nil {
		// the hardcoded starting position's FEN is always valid
		panic(err)
	}

	searchContext := search.NewContext(startBoard)
	engine := &context.Engine{
		Client:       client,
		Search:       &searchContext,
		OptionSchema: option.NewSchema(),
	}

	engine.OptionSchema.AddOption("Hash", options.NewHash(engine))
	engine.OptionSchema.AddOption("Threads", options.NewThreads(engine))
	engine.OptionSchema.AddOption("Ponder", options.NewPonder(engine))
	if err := engine.OptionSchema.SetDefaults(); err != nil {
		// the hardcoded option defaults are always valid
		panic(err)
	}

	client.AddCommand(cmd.NewD(engine))
	client.AddCommand(cmd.NewUci(engine))
	client.AddCommand(cmd.NewUciNewGame(engine))
	client.AddCommand(cmd.NewGo(engine))
	client.AddCommand(cmd.NewPosition(engine))
	client.AddCommand(cmd.NewSetOption(engine))
	client.AddCommand(cmd.NewStop(engine))
	client.AddCommand(cmd.NewPonderHit(engine))

	return client
}
