// Copyright © 2023 Rak Laptudirm <raklaptudirm@gmail.com>
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

package attacks

import (
	"laptudirm.com/x/corvid/pkg/bitboard"
	"laptudirm.com/x/corvid/pkg/square"
)

// Bishop returns the attack set of a bishop on s given board occupancy
// occ, computed with hyperbola quintessence along both diagonals.
func Bishop(s square.Square, occ bitboard.Board) bitboard.Board {
	diag := bitboard.Hyperbola(s, occ, bitboard.Diagonals[s.Diagonal()])
	anti := bitboard.Hyperbola(s, occ, bitboard.AntiDiagonals[s.AntiDiagonal()])
	return diag | anti
}

// Rook returns the attack set of a rook on s given board occupancy occ,
// computed with hyperbola quintessence along the rank and file.
func Rook(s square.Square, occ bitboard.Board) bitboard.Board {
	file := bitboard.Hyperbola(s, occ, bitboard.Files[s.File()])
	rank := bitboard.Hyperbola(s, occ, bitboard.Ranks[s.Rank()])
	return file | rank
}

// Queen returns the attack set of a queen on s, the union of Bishop and
// Rook attacks from that square.
func Queen(s square.Square, occ bitboard.Board) bitboard.Board {
	return Bishop(s, occ) | Rook(s, occ)
}
