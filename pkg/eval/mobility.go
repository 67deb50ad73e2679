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
	"laptudirm.com/x/corvid/pkg/attacks"
	"laptudirm.com/x/corvid/pkg/bitboard"
	"laptudirm.com/x/corvid/pkg/board"
	"laptudirm.com/x/corvid/pkg/piece"
)

// mobility bonus tables, indexed by the popcount of a piece's attack set
// intersected with squares not occupied by its own pieces.
var knightMobility = [9]phased{
	{-89, -19}, {55, 79}, {87, 122}, {101, 155}, {117, 168},
	{119, 184}, {134, 188}, {149, 192}, {165, 185},
}

var bishopMobility = [14]phased{
	{58, -94}, {34, 29}, {84, 101}, {99, 137}, {117, 152}, {129, 163}, {138, 177},
	{145, 184}, {149, 193}, {153, 194}, {156, 198}, {169, 189}, {173, 193}, {175, 181},
}

var rookMobility = [15]phased{
	{79, 78}, {105, 194}, {135, 255}, {147, 274}, {157, 285}, {163, 294}, {168, 301},
	{174, 308}, {182, 309}, {193, 313}, {203, 318}, {211, 324}, {218, 330}, {222, 330}, {215, 330},
}

var queenMobility = [28]phased{
	{0, 0}, {0, 0}, {-46, -17}, {326, 123}, {292, 404}, {328, 450}, {338, 473}, {346, 491},
	{354, 512}, {359, 546}, {366, 552}, {373, 560}, {378, 571}, {385, 572}, {387, 578},
	{389, 588}, {390, 592}, {388, 605}, {388, 612}, {388, 615}, {397, 618}, {408, 603},
	{427, 601}, {447, 584}, {450, 592}, {609, 511}, {510, 550}, {425, 578},
}

// attackedKingSquares penalizes a side for every square of the enemy
// king's ring that it attacks.
var attackedKingSquares = [9]phased{
	{62, -25}, {55, -19}, {26, -6}, {-26, -9}, {-115, 22},
	{-229, 79}, {-346, 135}, {-512, 193}, {-277, -81},
}

// phased is a pair of middlegame/endgame term values that can be added
// straight into the running mg/eg accumulators.
type phased struct{ mg, eg Eval }

// mobility computes, for each color, the mobility bonus of its knights,
// bishops, rooks and queens, together with the penalty incurred for
// squares it attacks around the enemy king's ring (§4.10).
func mobility(b *board.Board) (mg, eg [piece.ColorN]Eval) {
	occ := b.Occupied()

	for _, c := range [...]piece.Color{piece.White, piece.Black} {
		own := b.ColorBBs[c]
		var attacked bitboard.Board

		knights := b.Knights(c)
		for knights != bitboard.Empty {
			s := knights.Pop()
			moves := attacks.Knight[s] &^ own
			attacked |= moves
			mg[c] += knightMobility[moves.Count()].mg
			eg[c] += knightMobility[moves.Count()].eg
		}

		bishops := b.Bishops(c)
		for bishops != bitboard.Empty {
			s := bishops.Pop()
			moves := attacks.Bishop(s, occ) &^ own
			attacked |= moves
			mg[c] += bishopMobility[moves.Count()].mg
			eg[c] += bishopMobility[moves.Count()].eg
		}

		rooks := b.Rooks(c)
		for rooks != bitboard.Empty {
			s := rooks.Pop()
			moves := attacks.Rook(s, occ) &^ own
			attacked |= moves
			mg[c] += rookMobility[moves.Count()].mg
			eg[c] += rookMobility[moves.Count()].eg
		}

		queens := b.Queens(c)
		for queens != bitboard.Empty {
			s := queens.Pop()
			moves := (attacks.Bishop(s, occ) | attacks.Rook(s, occ)) &^ own
			attacked |= moves
			mg[c] += queenMobility[moves.Count()].mg
			eg[c] += queenMobility[moves.Count()].eg
		}

		enemyKing := b.King(c.Other()).FirstOne()
		ring := attacks.King[enemyKing]
		attackedRing := (attacked & ring).Count()
		mg[c] -= attackedKingSquares[attackedRing].mg
		eg[c] -= attackedKingSquares[attackedRing].eg
	}

	return mg, eg
}
