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

// Package move declares the Move type and related utilities used to
// represent chess moves compactly and order them for search.
package move

import (
	"laptudirm.com/x/corvid/pkg/piece"
	"laptudirm.com/x/corvid/pkg/square"
)

// Move represents a chess move: source and target squares, the moving
// piece, the piece it becomes (promotion), and whether it is a capture.
//
// Format: MSB -> LSB
// [20 isCapture bool 20] \
// [19 toPiece piece.Piece 16][15 fromPiece piece.Piece 12] \
// [11 target square.Square 6][05 source square.Square  00]
type Move uint32

// MaxN is the maximum number of plys tracked in a single search or game.
const MaxN = 1024

// Null represents a "do nothing" move, printed as "0000" in UCI. It is
// used as a sentinel for "no move" in the transposition table and PV.
const Null Move = 0

const (
	sourceWidth = 6
	targetWidth = 6
	fPieceWidth = 4
	tPieceWidth = 4
	tacticWidth = 1

	sourceOffset = 0
	targetOffset = sourceOffset + sourceWidth
	fPieceOffset = targetOffset + targetWidth
	tPieceOffset = fPieceOffset + fPieceWidth
	tacticOffset = tPieceOffset + tPieceWidth

	sourceMask = (1 << sourceWidth) - 1
	targetMask = (1 << targetWidth) - 1
	fPieceMask = (1 << fPieceWidth) - 1
	tPieceMask = (1 << tPieceWidth) - 1
	tacticMask = (1 << tacticWidth) - 1
)

// New creates a Move. toPiece defaults to fromPiece; SetPromotion
// overrides it for promoting pawn moves.
func New(source, target square.Square, fromPiece piece.Piece, isCapture bool) Move {
	m := Move(source) << sourceOffset
	m |= Move(target) << targetOffset
	m |= Move(fromPiece) << fPieceOffset
	m |= Move(fromPiece) << tPieceOffset
	if isCapture {
		m |= tacticMask << tacticOffset
	}
	return m
}

// String converts a move to long algebraic notation, e.g. "e2e4",
// "e1g1" (castling), "d7d8q" (promotion), "0000" (null move).
func (m Move) String() string {
	if m == Null {
		return "0000"
	}

	s := m.Source().String() + m.Target().String()
	if m.IsPromotion() {
		s += m.ToPiece().Type().String()
	}

	return s
}

// SetPromotion sets the move's promoted-to piece.
func (m Move) SetPromotion(p piece.Piece) Move {
	m &^= tPieceMask << tPieceOffset
	m |= Move(p) << tPieceOffset
	return m
}

// Source returns the move's source square.
func (m Move) Source() square.Square {
	return square.Square((m >> sourceOffset) & sourceMask)
}

// Target returns the move's target square.
func (m Move) Target() square.Square {
	return square.Square((m >> targetOffset) & targetMask)
}

// FromPiece returns the piece being moved.
func (m Move) FromPiece() piece.Piece {
	return piece.Piece((m >> fPieceOffset) & fPieceMask)
}

// ToPiece returns the piece on the target square after the move. Equal
// to FromPiece except for promotions.
func (m Move) ToPiece() piece.Piece {
	return piece.Piece((m >> tPieceOffset) & tPieceMask)
}

// IsCapture reports whether the move captures a piece. En passant
// captures also report true here; callers needing the captured square
// should also check IsEnPassant.
func (m Move) IsCapture() bool {
	return (m>>tacticOffset)&tacticMask != 0
}

// IsPromotion reports whether the move promotes a pawn.
func (m Move) IsPromotion() bool {
	return m.FromPiece() != m.ToPiece()
}

// IsEnPassant reports whether the move is an en passant capture, given
// the en passant target square active before the move was made.
func (m Move) IsEnPassant(ep square.Square) bool {
	return m.Target() == ep && m.FromPiece().Type() == piece.Pawn && ep != square.None
}

// IsCastle reports whether the move is a castling move.
func (m Move) IsCastle() bool {
	if m.FromPiece().Type() != piece.King {
		return false
	}

	df := m.Source().File() - m.Target().File()
	return df > 1 || df < -1
}

// IsQuiet reports whether the move is neither a capture nor a promotion.
func (m Move) IsQuiet() bool {
	return !m.IsCapture() && !m.IsPromotion()
}

// IsReversible reports whether the move can be "undone" for the
// purposes of the fifty-move/threefold draw clock: not a capture and
// not a pawn move.
func (m Move) IsReversible() bool {
	return !m.IsCapture() && m.FromPiece().Type() != piece.Pawn
}
