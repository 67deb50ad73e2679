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

// Package bitboard implements a 64-bit bitboard and the operations on it
// needed to represent and manipulate a chess position.
package bitboard

import (
	"math/bits"

	"laptudirm.com/x/corvid/pkg/piece"
	"laptudirm.com/x/corvid/pkg/square"
)

// Board is a 64-bit bitboard, one bit per square. Bit i (1<<i) represents
// square.Square(i), so A1 is the LSB and H8 is the MSB.
type Board uint64

// String returns a human readable 8x8 representation of the board, rank
// 8 first, so it prints the same way the position is seen over a board.
func (b Board) String() string {
	var str string
	for r := square.Rank8; r >= square.Rank1; r-- {
		for f := square.FileA; f <= square.FileH; f++ {
			if b.IsSet(square.New(f, r)) {
				str += "1"
			} else {
				str += "0"
			}

			if f == square.FileH {
				str += "\n"
			} else {
				str += " "
			}
		}
	}

	return str
}

// Up shifts the board one rank towards c's forward direction.
func (b Board) Up(c piece.Color) Board {
	if c == piece.White {
		return b.North()
	}
	return b.South()
}

// Down shifts the board one rank away from c's forward direction.
func (b Board) Down(c piece.Color) Board {
	if c == piece.White {
		return b.South()
	}
	return b.North()
}

// North shifts the board towards rank 8.
func (b Board) North() Board {
	return b << 8
}

// South shifts the board towards rank 1.
func (b Board) South() Board {
	return b >> 8
}

// East shifts the board towards file H, clipping wraparound on file A.
func (b Board) East() Board {
	return (b &^ FileH) << 1
}

// West shifts the board towards file A, clipping wraparound on file H.
func (b Board) West() Board {
	return (b &^ FileA) >> 1
}

// Pop returns the least significant set square and clears it.
func (b *Board) Pop() square.Square {
	sq := b.FirstOne()
	*b &= *b - 1
	return sq
}

// Count returns the number of set squares in the board.
func (b Board) Count() int {
	return bits.OnesCount64(uint64(b))
}

// FirstOne returns the least significant set square.
func (b Board) FirstOne() square.Square {
	return square.Square(bits.TrailingZeros64(uint64(b)))
}

// IsSet reports whether the given square is set.
func (b Board) IsSet(s square.Square) bool {
	return b&Squares[s] != 0
}

// Set sets the given square. A no-op if s is square.None.
func (b *Board) Set(s square.Square) {
	if s == square.None {
		return
	}

	*b |= Squares[s]
}

// Unset clears the given square. A no-op if s is square.None.
func (b *Board) Unset(s square.Square) {
	if s == square.None {
		return
	}

	*b &^= Squares[s]
}

// reverse reverses the bit order of a board, used by the hyperbola
// quintessence sliding-attack computation in pkg/attacks.
func reverse(b Board) Board {
	return Board(bits.Reverse64(uint64(b)))
}

// Reverse exposes reverse to other packages in this module.
func Reverse(b Board) Board {
	return reverse(b)
}

// Hyperbola computes the attack set of a slider on the given line mask
// from square s, given the board's full occupancy.
// https://www.chessprogramming.org/Hyperbola_Quintessence
func Hyperbola(s square.Square, occ, mask Board) Board {
	r := Squares[s]
	o := occ & mask
	return ((o - 2*r) ^ reverse(reverse(o)-2*reverse(r))) & mask
}
