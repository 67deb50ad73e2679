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

// Package zobrist implements Zobrist hashing of chess positions: a set
// of precomputed random numbers combined by XOR to produce a single Key
// that changes incrementally as moves are made and unmade.
package zobrist

import (
	"laptudirm.com/x/corvid/internal/util"
	"laptudirm.com/x/corvid/pkg/castling"
	"laptudirm.com/x/corvid/pkg/piece"
	"laptudirm.com/x/corvid/pkg/square"
)

// Key is a Zobrist hash of a chess position.
type Key uint64

// precomputed random numbers, one per (piece, square)/en-passant-file/
// castling-rights combination, plus one for side to move.
var (
	PieceSquare [piece.N][square.N]Key
	EnPassant   [8]Key // indexed by square.File
	Castling    [castling.N]Key
	SideToMove  Key
)

func init() {
	var rng util.PRNG
	rng.Seed(1070372) // seed used by Stockfish

	for p := piece.Piece(0); p < piece.N; p++ {
		for s := square.A1; s <= square.H8; s++ {
			PieceSquare[p][s] = Key(rng.Uint64())
		}
	}

	for f := square.FileA; f <= square.FileH; f++ {
		EnPassant[f] = Key(rng.Uint64())
	}

	for r := castling.None; r <= castling.All; r++ {
		Castling[r] = Key(rng.Uint64())
	}

	SideToMove = Key(rng.Uint64())
}
