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

// Package square implements the Square type, representing a single
// square on a chessboard, along with File and Rank helpers.
package square

import (
	"errors"
	"fmt"
)

// Square represents a single square on the chessboard, numbered in the
// little-endian rank-file manner: A1 is 0, B1 is 1, ..., H1 is 7, A2 is
// 8, and so on up to H8 at 63. This means North is +8 and East is +1.
type Square int8

// N is the number of squares on a chessboard.
const N = 64

// file-a square constants, used to iterate over the board.
const (
	A1 Square = iota
	B1
	C1
	D1
	E1
	F1
	G1
	H1
	A2
	B2
	C2
	D2
	E2
	F2
	G2
	H2
	A3
	B3
	C3
	D3
	E3
	F3
	G3
	H3
	A4
	B4
	C4
	D4
	E4
	F4
	G4
	H4
	A5
	B5
	C5
	D5
	E5
	F5
	G5
	H5
	A6
	B6
	C6
	D6
	E6
	F6
	G6
	H6
	A7
	B7
	C7
	D7
	E7
	F7
	G7
	H7
	A8
	B8
	C8
	D8
	E8
	F8
	G8
	H8

	None Square = -1
)

// directions, expressed as the delta to add to a Square
const (
	North     = 8
	South     = -8
	East      = 1
	West      = -1
	NorthEast = North + East
	NorthWest = North + West
	SouthEast = South + East
	SouthWest = South + West
)

// New creates a new Square from the given File and Rank.
func New(f File, r Rank) Square {
	return Square(int(r)*8 + int(f))
}

// File returns the File of the given Square.
func (s Square) File() File {
	return File(s % 8)
}

// Rank returns the Rank of the given Square.
func (s Square) Rank() Rank {
	return Rank(s / 8)
}

// Diagonal returns the index of the a1-h8 diagonal the Square lies on.
func (s Square) Diagonal() int {
	return int(s.Rank()) - int(s.File()) + 7
}

// AntiDiagonal returns the index of the a8-h1 diagonal the Square lies on.
func (s Square) AntiDiagonal() int {
	return int(s.Rank()) + int(s.File())
}

// String converts the given Square into its string representation,
// e.g. Square A1 becomes "a1".
func (s Square) String() string {
	if s == None {
		return "-"
	}

	return fmt.Sprintf("%s%s", s.File(), s.Rank())
}

// NewFromString parses a Square from its string representation.
func NewFromString(from string) (Square, error) {
	if from == "-" {
		return None, nil
	}

	if len(from) != 2 {
		return None, errors.New("square: invalid length string")
	}

	f, err := NewFileFromString(string(from[0]))
	if err != nil {
		return None, fmt.Errorf("square: %w", err)
	}

	r, err := NewRankFromString(string(from[1]))
	if err != nil {
		return None, fmt.Errorf("square: %w", err)
	}

	return New(f, r), nil
}
