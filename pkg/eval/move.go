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

package eval

import (
	"math"

	"laptudirm.com/x/corvid/pkg/board"
	"laptudirm.com/x/corvid/pkg/move"
	"laptudirm.com/x/corvid/pkg/piece"
)

// MoveFunc scores a move for ordering purposes.
type MoveFunc func(move.Move) MoveScore

// MoveScore represents the move-ordering score of a single move.
type MoveScore uint16

// constants representing move evaluations
const (
	PVMove       MoveScore = math.MaxUint16
	MvvLvaOffset MoveScore = 100
	DefaultMove  MoveScore = 0
)

// MvvLva is the most-valuable-victim/least-valuable-attacker table used
// to order captures: score = MvvLvaOffset + MvvLva[victim][attacker].
// A non-capturing promotion (or an en passant capture, whose target
// square is empty) reads the all-zero NoType victim row, so it scores
// MvvLvaOffset, below every ordinary capture.
var MvvLva = [piece.TypeN][piece.TypeN]MoveScore{
	// Attackers:  -   P   N   B   R   Q   K
	piece.Pawn:   {16, 15, 14, 13, 12, 11, 10},
	piece.Knight: {26, 25, 24, 23, 22, 21, 20},
	piece.Bishop: {36, 35, 34, 33, 32, 31, 30},
	piece.Rook:   {46, 45, 44, 43, 42, 41, 40},
	piece.Queen:  {56, 55, 54, 53, 52, 51, 50},
}

// OfMove returns a MoveFunc that scores moves of the given position,
// treating pv as the move to search first.
func OfMove(b *board.Board, pv move.Move) MoveFunc {
	return func(m move.Move) MoveScore {
		switch {
		case m == pv:
			// the pv move from the previous iteration is most likely
			// to be the best move in the position
			return PVMove

		case m.IsCapture(), m.IsPromotion():
			victim := b.Position[m.Target()].Type()
			attacker := m.FromPiece().Type()

			// a less valuable piece capturing a more valuable piece
			// is very likely to be a good move
			return MvvLvaOffset + MvvLva[victim][attacker]

		default:
			return DefaultMove
		}
	}
}
