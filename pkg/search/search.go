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

// Package search implements the engine's move search: iterative
// deepening fail-soft alpha-beta negamax with a transposition table,
// quiescence search, and MVV-LVA move ordering.
package search

import (
	"errors"
	"time"

	"laptudirm.com/x/corvid/internal/util"
	"laptudirm.com/x/corvid/pkg/board"
	"laptudirm.com/x/corvid/pkg/eval"
	"laptudirm.com/x/corvid/pkg/move"
	searchtime "laptudirm.com/x/corvid/pkg/search/time"
	"laptudirm.com/x/corvid/pkg/tt"
)

// MaxDepth is the maximum depth a search will be allowed to reach.
const MaxDepth = 256

// NewContext creates a new search Context around the given board. The
// board pointer may be mutated between searches (the engine updates it
// in place as moves and positions come in over UCI), but a fresh
// Context should be made for a new game so the transposition table
// doesn't carry over stale entries from an unrelated position.
func NewContext(b *board.Board) Context {
	return Context{
		Board:   b,
		tt:      tt.NewTable(16),
		stopped: true,
	}
}

// Context stores the state of a single search: the position being
// searched, its transposition table, its time manager, and the running
// statistics and principal variation reported back to the caller.
type Context struct {
	Board   *board.Board
	tt      *tt.Table
	time    searchtime.Manager
	stopped bool

	limits Limits
	stats  Stats

	pv      move.Variation
	pvScore eval.Eval
}

// Search starts a new search on search.Board with the given limits. It
// blocks until the search is stopped, either by a limit being reached
// or by a concurrent call to Stop, and returns the best line found.
func (search *Context) Search(limits Limits) (move.Variation, eval.Eval, error) {
	search.start(limits)
	defer search.Stop()

	if search.Board.IsInCheck(search.Board.SideToMove.Other()) {
		// the side not to move is in check, meaning their king could
		// be captured: the position was reached illegally
		return move.Variation{}, eval.Inf, errors.New("search: position is illegal")
	}

	search.iterativeDeepening()
	return search.pv, search.pvScore, nil
}

// InProgress reports whether a search is currently running on search.
func (search *Context) InProgress() bool {
	return !search.stopped
}

// Stop stops any ongoing search on search. The running search function
// notices on its next node and returns soon after.
func (search *Context) Stop() {
	search.stopped = true
}

// start resets a Context's state in preparation for a new search.
func (search *Context) start(limits Limits) {
	limits.Depth = util.Min(limits.Depth, MaxDepth)
	search.UpdateLimits(limits)

	search.stats = Stats{SearchStart: time.Now()}
	search.pv.Clear()

	search.tt.NextEpoch()
	search.stopped = false
}

// score returns the static evaluation of search.Board, relative to the
// side to move. Changes to the evaluation function belong here.
func (search *Context) score() eval.Eval {
	return eval.PeSTO(search.Board)
}

// draw returns a lightly randomized draw score so that the search
// doesn't get stuck always preferring (or avoiding) repetition in
// positions that are otherwise equal.
func (search *Context) draw() eval.Eval {
	return eval.RandDraw(search.stats.Nodes)
}

// String returns a human-readable diagram of the position currently
// loaded into the search context.
func (search *Context) String() string {
	return search.Board.String()
}

// ResizeTT resizes the search's transposition table to the given size
// in megabytes.
func (search *Context) ResizeTT(mbs int) {
	search.tt.Resize(mbs)
}
