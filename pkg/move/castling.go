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

package move

import (
	"laptudirm.com/x/corvid/pkg/piece"
	"laptudirm.com/x/corvid/pkg/square"
)

// RookMove describes how a rook moves when a king castles to a given
// target square.
type RookMove struct {
	From, To square.Square
	Piece    piece.Piece
}

// CastlingRook is indexed by the king's target square during castling
// and gives the corresponding rook move. Squares that are not a king's
// castling target hold the zero RookMove.
var CastlingRook = [square.N]RookMove{
	square.G1: {From: square.H1, To: square.F1, Piece: piece.WhiteRook},
	square.C1: {From: square.A1, To: square.D1, Piece: piece.WhiteRook},
	square.G8: {From: square.H8, To: square.F8, Piece: piece.BlackRook},
	square.C8: {From: square.A8, To: square.D8, Piece: piece.BlackRook},
}
