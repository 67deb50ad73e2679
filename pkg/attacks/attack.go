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

// Package attacks implements precomputed and on-the-fly attack-bitboard
// generation for every chess piece type, used by move generation, check
// detection, and static exchange evaluation.
package attacks

import (
	"laptudirm.com/x/corvid/pkg/bitboard"
	"laptudirm.com/x/corvid/pkg/piece"
	"laptudirm.com/x/corvid/pkg/square"
)

// lookup tables for precalculated attack boards of non-sliding pieces
var (
	King   [square.N]bitboard.Board
	Knight [square.N]bitboard.Board

	// Pawn[c][s] is the set of squares a c-colored pawn on s attacks
	// (diagonal captures only, not pushes).
	Pawn [piece.ColorN][square.N]bitboard.Board
)

// Between[a][b] is the set of squares strictly between a and b along a
// shared rank, file, or diagonal, empty if they do not share a line.
var Between [square.N][square.N]bitboard.Board

// Line[a][b] is the full line (rank, file, or diagonal) running through
// both a and b, empty if they do not share one.
var Line [square.N][square.N]bitboard.Board

func init() {
	for s := square.A1; s <= square.H8; s++ {
		King[s] = raysFrom(s, kingDeltas)
		Knight[s] = raysFrom(s, knightDeltas)
		Pawn[piece.White][s] = raysFrom(s, []delta{{1, 1}, {-1, 1}})
		Pawn[piece.Black][s] = raysFrom(s, []delta{{1, -1}, {-1, -1}})
	}

	for s1 := square.A1; s1 <= square.H8; s1++ {
		for s2 := square.A1; s2 <= square.H8; s2++ {
			switch {
			case s1.Rank() == s2.Rank():
				Line[s1][s2] = bitboard.Ranks[s1.Rank()]
			case s1.File() == s2.File():
				Line[s1][s2] = bitboard.Files[s1.File()]
			case s1.Diagonal() == s2.Diagonal():
				Line[s1][s2] = bitboard.Diagonals[s1.Diagonal()]
			case s1.AntiDiagonal() == s2.AntiDiagonal():
				Line[s1][s2] = bitboard.AntiDiagonals[s1.AntiDiagonal()]
			default:
				continue
			}

			Between[s1][s2] = squaresBetween(s1, s2)
		}
	}
}

type delta struct {
	file, rank int
}

var kingDeltas = []delta{
	{1, 0}, {1, 1}, {0, 1}, {-1, 1},
	{-1, 0}, {-1, -1}, {0, -1}, {1, -1},
}

var knightDeltas = []delta{
	{2, 1}, {1, 2}, {-1, 2}, {-2, 1},
	{-2, -1}, {-1, -2}, {1, -2}, {2, -1},
}

// raysFrom sets every square reachable from s by a single application of
// one of the given deltas, discarding deltas that leave the board.
func raysFrom(s square.Square, deltas []delta) bitboard.Board {
	var b bitboard.Board

	f, r := int(s.File()), int(s.Rank())
	for _, d := range deltas {
		nf, nr := f+d.file, r+d.rank
		if nf < 0 || nf > int(square.FileH) || nr < 0 || nr > int(square.Rank8) {
			continue
		}

		b.Set(square.New(square.File(nf), square.Rank(nr)))
	}

	return b
}

// squaresBetween walks from s1 towards s2 one step at a time along
// whichever of the eight ray directions connects them, collecting every
// square strictly in between. Between[s1][s2] is Empty if s1 == s2.
func squaresBetween(s1, s2 square.Square) bitboard.Board {
	if s1 == s2 {
		return bitboard.Empty
	}

	df := sign(int(s2.File()) - int(s1.File()))
	dr := sign(int(s2.Rank()) - int(s1.Rank()))

	var b bitboard.Board
	f, r := int(s1.File())+df, int(s1.Rank())+dr
	for {
		cur := square.New(square.File(f), square.Rank(r))
		if cur == s2 {
			break
		}

		b.Set(cur)
		f += df
		r += dr
	}

	return b
}

func sign(x int) int {
	switch {
	case x > 0:
		return 1
	case x < 0:
		return -1
	default:
		return 0
	}
}
