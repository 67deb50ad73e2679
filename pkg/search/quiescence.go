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
)

// quiescence is a limited search which only considers 'noisy' moves —
// captures and promotions, plus every evasion while in check — so that
// the static evaluation used at the leaves of the main search is only
// ever taken in a "quiet" position. Without it, negamax would stop
// searching in the middle of a tactical sequence and badly misjudge the
// position: the horizon effect.
// https://www.chessprogramming.org/Quiescence_Search
func (search *Context) quiescence(plys int, alpha, beta eval.Eval) eval.Eval {
	search.stats.Nodes++
	if plys > search.stats.SelDepth {
		search.stats.SelDepth = plys
	}

	if search.shouldStop() {
		return 0
	}

	if search.Board.IsDraw() {
		return search.draw()
	}

	inCheck := search.Board.IsInCheck(search.Board.SideToMove)
	standPat := search.score()

	if plys >= MaxDepth {
		return standPat
	}

	// a side in check cannot stand pat: it must deal with the check,
	// so every evasion has to be searched regardless of the stand-pat
	// score
	best := standPat
	if inCheck {
		best = -eval.Inf
	} else {
		if standPat >= beta {
			return standPat
		}
		alpha = util.Max(alpha, standPat)
	}

	moves := search.Board.GenerateCaptures()
	if inCheck {
		// captures alone can miss the fact that every evasion has
		// been exhausted, so generate the full legal move list
		// instead to find checkmate
		moves = search.Board.GenerateMoves()
		if len(moves) == 0 {
			return eval.MatedIn(plys)
		}
	}

	list := move.ScoreMoves(moves, eval.OfMove(search.Board, move.Null))
	for i := 0; i < list.Length; i++ {
		m := list.PickMove(i)
		if !inCheck && m.IsQuiet() {
			continue
		}

		search.Board.MakeMove(m)
		score := -search.quiescence(plys+1, -beta, -alpha)
		search.Board.UnmakeMove()

		if score > best {
			best = score

			if score > alpha {
				alpha = score
				if alpha >= beta {
					break // fail high, beta cutoff
				}
			}
		}
	}

	return best
}
