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
	"laptudirm.com/x/corvid/pkg/bitboard"
	"laptudirm.com/x/corvid/pkg/board"
	"laptudirm.com/x/corvid/pkg/piece"
	"laptudirm.com/x/corvid/pkg/square"
)

// bonus for a passed pawn, indexed by rank from the pawn's own side, one
// row per rank (rank 1/8 are unreachable by a pawn and stay zero). The
// literal values are published a8-first like the PSQTs in pesto.go.
var mgPassedPawn = [square.N]Eval{
	0, 0, 0, 0, 0, 0, 0, 0,
	43, 59, 42, 59, 46, 39, -1, -20,
	18, 41, 27, 15, 4, 3, -48, -67,
	13, 4, 24, 21, 2, 11, -39, -29,
	-11, -18, -31, -18, -27, -14, -31, -25,
	-16, -33, -35, -31, -29, -14, -33, -7,
	-28, -19, -31, -29, -14, -12, 1, -20,
	0, 0, 0, 0, 0, 0, 0, 0,
}

var egPassedPawn = [square.N]Eval{
	0, 0, 0, 0, 0, 0, 0, 0,
	170, 163, 162, 125, 125, 136, 164, 175,
	186, 182, 157, 86, 118, 142, 151, 183,
	90, 85, 65, 56, 54, 66, 88, 97,
	48, 35, 34, 24, 28, 32, 50, 49,
	-5, 6, 11, -1, 2, 2, 25, 3,
	-5, -4, 7, 1, -18, -5, -3, 4,
	0, 0, 0, 0, 0, 0, 0, 0,
}

// mgBishopPairBonus and egBishopPairBonus reward having both bishops,
// which together cover both square colors.
const (
	mgBishopPairBonus Eval = 31
	egBishopPairBonus Eval = 89
)

// passedPawnMask[c][s] is the set of squares that, if occupied by an
// enemy pawn, would stop the pawn on s (of color c) from being passed:
// its own file and both neighbouring files, from s onward in its
// direction of travel.
var passedPawnMask [piece.ColorN][square.N]bitboard.Board

func init() {
	for s := square.A1; s <= square.H8; s++ {
		file := bitboard.Files[s.File()]
		if f := s.File(); f > square.FileA {
			file |= bitboard.Files[f-1]
		}
		if f := s.File(); f < square.FileH {
			file |= bitboard.Files[f+1]
		}

		var whiteAhead, blackAhead bitboard.Board
		for r := s.Rank() + 1; r <= square.Rank8; r++ {
			whiteAhead |= bitboard.Ranks[r]
		}
		for r := s.Rank() - 1; r >= square.Rank1; r-- {
			blackAhead |= bitboard.Ranks[r]
		}

		passedPawnMask[piece.White][s] = file & whiteAhead
		passedPawnMask[piece.Black][s] = file & blackAhead
	}
}

// passedPawns awards mgPassedPawn/egPassedPawn to every pawn with no
// enemy pawn standing in the way of its promotion on its own or an
// adjacent file (§4.10).
func passedPawns(b *board.Board) (mg, eg [piece.ColorN]Eval) {
	for _, c := range [...]piece.Color{piece.White, piece.Black} {
		enemyPawns := b.Pawns(c.Other())

		pawns := b.Pawns(c)
		for pawns != bitboard.Empty {
			s := pawns.Pop()
			if passedPawnMask[c][s]&enemyPawns != bitboard.Empty {
				continue
			}

			row := s.Rank()
			if c == piece.White {
				row = square.Rank8 - s.Rank()
			}

			idx := int(row)*8 + int(s.File())
			mg[c] += mgPassedPawn[idx]
			eg[c] += egPassedPawn[idx]
		}
	}

	return mg, eg
}

// bishopPair returns bonus for c if it holds both bishops, 0 otherwise.
func bishopPair(b *board.Board, c piece.Color, bonus Eval) Eval {
	if b.Bishops(c).Count() >= 2 {
		return bonus
	}
	return 0
}
