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

// Package mailbox implements an 8x8 mailbox chessboard representation,
// used alongside bitboards for fast piece-at-square lookup.
// https://www.chessprogramming.org/8x8_Board
package mailbox

import (
	"fmt"

	"laptudirm.com/x/corvid/pkg/piece"
	"laptudirm.com/x/corvid/pkg/square"
)

// Board represents an 8x8 chessboard of pieces, indexed by square.Square.
type Board [64]piece.Piece

// String converts a Board into a human readable ASCII diagram, rank 8
// first to match how a board is viewed from White's side.
func (b Board) String() string {
	s := "+---+---+---+---+---+---+---+---+\n"

	for r := square.Rank8; r >= square.Rank1; r-- {
		s += "| "

		for f := square.FileA; f <= square.FileH; f++ {
			s += b[square.New(f, r)].String() + " | "
		}

		s += fmt.Sprintln(int(r) + 1)
		s += "+---+---+---+---+---+---+---+---+\n"
	}

	s += "  a   b   c   d   e   f   g   h\n"
	return s
}

// FEN generates the piece-placement field of a FEN string describing
// the board.
func (b *Board) FEN() string {
	var fen string

	for r := square.Rank8; r >= square.Rank1; r-- {
		empty := 0

		for f := square.FileA; f <= square.FileH; f++ {
			p := b[square.New(f, r)]

			if p == piece.NoPiece {
				empty++
				continue
			}

			if empty > 0 {
				fen += fmt.Sprint(empty)
				empty = 0
			}

			fen += p.String()
		}

		if empty > 0 {
			fen += fmt.Sprint(empty)
		}

		if r != square.Rank1 {
			fen += "/"
		}
	}

	return fen
}
