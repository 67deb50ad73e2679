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

package search

import (
	"laptudirm.com/x/corvid/internal/util"
	"laptudirm.com/x/corvid/pkg/eval"
	"laptudirm.com/x/corvid/pkg/move"
	"laptudirm.com/x/corvid/pkg/tt"
)

// negamax is a simplified version of the minmax searching algorithm,
// which uses a single function for both the maximizing and minimizing
// players. This works because chess is a zero-sum game: one player's
// advantage is the other's disadvantage.
// https://www.chessprogramming.org/Negamax
//
// It implements alpha-beta pruning: a single refutation is enough to
// mark a position as worse than one already found, so the rest of a
// node's siblings don't need to be searched once that's established.
// The search is fail-soft: the returned score is the best score found,
// which may lie outside [alpha, beta]; it is not clamped to the window.
// https://www.chessprogramming.org/Alpha-Beta
func (search *Context) negamax(plys, depth int, alpha, beta eval.Eval, pv *move.Variation) eval.Eval {
	search.stats.Nodes++
	if plys > search.stats.SelDepth {
		search.stats.SelDepth = plys
	}

	switch {
	case search.shouldStop():
		// some search limit has been breached; the return value
		// doesn't matter since this iteration's result is discarded
		// in favor of the previous, complete one
		return 0

	case search.Board.IsDraw():
		return search.draw()

	case depth <= 0, plys >= MaxDepth:
		// depth 0 reached, drop to quiescence search to prevent
		// the horizon effect from making the evaluation bad
		return search.quiescence(plys, alpha, beta)
	}

	moves := search.Board.GenerateMoves()
	if len(moves) == 0 {
		if search.Board.IsInCheck(search.Board.SideToMove) {
			return eval.MatedIn(plys) // checkmate
		}

		return eval.Draw // stalemate
	}

	// original alpha, to tell whether the final score is an upper
	// bound on the position's exact value
	originalAlpha := alpha

	bestMove := move.Null
	bestEval := -eval.Inf

	if entry, hit := search.tt.Probe(search.Board.Hash); hit {
		// use the stored move for ordering regardless of depth
		bestMove = entry.Move

		if int(entry.Depth) >= depth {
			search.stats.TTHits++
			value := entry.Value.Eval(plys)

			switch entry.Type {
			case tt.ExactEntry:
				return value
			case tt.LowerBound:
				alpha = util.Max(alpha, value)
			case tt.UpperBound:
				beta = util.Min(beta, value)
			}

			if alpha >= beta {
				return value // fail high
			}
		}
	}

	list := move.ScoreMoves(moves, eval.OfMove(search.Board, bestMove))
	for i := 0; i < list.Length; i++ {
		var childPV move.Variation

		m := list.PickMove(i)

		search.Board.MakeMove(m)
		score := -search.negamax(plys+1, depth-1, -beta, -alpha, &childPV)
		search.Board.UnmakeMove()

		if score > bestEval {
			bestMove = m
			bestEval = score

			if score > alpha {
				alpha = score
				pv.Update(m, childPV)

				if alpha >= beta {
					break // fail high, beta cutoff
				}
			}
		}
	}

	// a stopped search's score may be of poor quality (the subtree
	// wasn't fully explored), so it shouldn't pollute future searches
	if !search.stopped {
		var entryType tt.EntryType
		switch {
		case bestEval <= originalAlpha:
			entryType = tt.UpperBound
		case bestEval >= beta:
			entryType = tt.LowerBound
		default:
			entryType = tt.ExactEntry
		}

		search.tt.Store(tt.Entry{
			Hash:  search.Board.Hash,
			Value: tt.EvalFrom(bestEval, plys),
			Move:  bestMove,
			Depth: uint8(depth),
			Type:  entryType,
		})
	}

	return bestEval
}
