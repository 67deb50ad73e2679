// Copyright © 2023 Rak Laptudirm <rak@laptudirm.com>
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

// Package tuner implements texel-style gradient descent tuning of the
// engine's tapered PSQT/material evaluation terms against a dataset of
// labelled positions.
package tuner

import (
	"laptudirm.com/x/corvid/pkg/board"
	"laptudirm.com/x/corvid/pkg/piece"
	"laptudirm.com/x/corvid/pkg/square"
)

// Coefficient is a single non-zero contribution a position makes to one
// tuned PSQT/material term: the piece-square table cell is identified by
// Piece and Square, and Sign is +1 if that piece is White's (it adds to
// the White side of the evaluation) or -1 if it is Black's.
type Coefficient struct {
	Piece  piece.Piece
	Square square.Square
	Sign   float64
}

// coefficients walks a board's occupied squares and returns the
// coefficient of every PSQT/material term the position touches.
func coefficients(b *board.Board) []Coefficient {
	coeffs := make([]Coefficient, 0, 32)
	for s := square.A1; s < square.N; s++ {
		p := b.Position[s]
		if p == piece.NoPiece {
			continue
		}

		sign := 1.0
		if p.Color() == piece.Black {
			sign = -1.0
		}

		coeffs = append(coeffs, Coefficient{Piece: p, Square: s, Sign: sign})
	}

	return coeffs
}
