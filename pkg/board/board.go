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

// Package board implements a complete chess position: a dual bitboard/
// mailbox representation, FEN parsing and serialization, legal move
// generation, and make/unmake with incremental Zobrist hashing.
package board

import (
	"fmt"

	"laptudirm.com/x/corvid/pkg/attacks"
	"laptudirm.com/x/corvid/pkg/bitboard"
	"laptudirm.com/x/corvid/pkg/castling"
	"laptudirm.com/x/corvid/pkg/mailbox"
	"laptudirm.com/x/corvid/pkg/move"
	"laptudirm.com/x/corvid/pkg/piece"
	"laptudirm.com/x/corvid/pkg/square"
	"laptudirm.com/x/corvid/pkg/zobrist"
)

// Board represents the state of a chess position.
type Board struct {
	// position data
	Hash     zobrist.Key
	Position mailbox.Board // 8x8 board for fast piece-at-square lookup
	PieceBBs [piece.TypeN]bitboard.Board
	ColorBBs [piece.ColorN]bitboard.Board

	Kings [piece.ColorN]square.Square

	SideToMove      piece.Color
	EnPassantTarget square.Square
	CastlingRights  castling.Rights

	// move counters
	Plys      int
	FullMoves int
	DrawClock int

	// game history, used by UnmakeMove and repetition detection
	History [move.MaxN]Undo

	// move-generation scratch state, recomputed by initMoveGen before
	// every GenerateMoves/GenerateCaptures call
	us, them           piece.Color
	friends, enemies   bitboard.Board
	occupied           bitboard.Board
	target, kingTarget bitboard.Board
	checkN             int
	checkMask          bitboard.Board
	pinnedD, pinnedHV  bitboard.Board
	seenByEnemy        bitboard.Board
}

// Undo carries the information needed to reverse a single MakeMove call.
type Undo struct {
	Move            move.Move
	CastlingRights  castling.Rights
	CapturedPiece   piece.Piece
	EnPassantTarget square.Square
	DrawClock       int
	Hash            zobrist.Key // hash before the move was made
}

// String converts a Board into a human readable diagram, FEN, and hash.
func (b *Board) String() string {
	return fmt.Sprintf("%s\nFen: %s\nKey: %X\n", b.Position, b.FEN(), b.Hash)
}

// Occupied returns the set of all occupied squares.
func (b *Board) Occupied() bitboard.Board {
	return b.ColorBBs[piece.White] | b.ColorBBs[piece.Black]
}

// ClearSquare removes whatever piece sits on s, updating every
// representation of the position, including the Zobrist hash.
func (b *Board) ClearSquare(s square.Square) {
	p := b.Position[s]
	if p == piece.NoPiece {
		return
	}

	b.ColorBBs[p.Color()].Unset(s)
	b.PieceBBs[p.Type()].Unset(s)
	b.Position[s] = piece.NoPiece
	b.Hash ^= zobrist.PieceSquare[p][s]
}

// FillSquare places p on s, updating every representation of the
// position, including the Zobrist hash.
func (b *Board) FillSquare(s square.Square, p piece.Piece) {
	c := p.Color()

	b.ColorBBs[c].Set(s)
	b.PieceBBs[p.Type()].Set(s)
	b.Position[s] = p
	b.Hash ^= zobrist.PieceSquare[p][s]

	if p.Type() == piece.King {
		b.Kings[c] = s
	}
}

// Pawns returns c's pawn bitboard.
func (b *Board) Pawns(c piece.Color) bitboard.Board { return b.PieceBBs[piece.Pawn] & b.ColorBBs[c] }

// Knights returns c's knight bitboard.
func (b *Board) Knights(c piece.Color) bitboard.Board {
	return b.PieceBBs[piece.Knight] & b.ColorBBs[c]
}

// Bishops returns c's bishop bitboard.
func (b *Board) Bishops(c piece.Color) bitboard.Board {
	return b.PieceBBs[piece.Bishop] & b.ColorBBs[c]
}

// Rooks returns c's rook bitboard.
func (b *Board) Rooks(c piece.Color) bitboard.Board { return b.PieceBBs[piece.Rook] & b.ColorBBs[c] }

// Queens returns c's queen bitboard.
func (b *Board) Queens(c piece.Color) bitboard.Board {
	return b.PieceBBs[piece.Queen] & b.ColorBBs[c]
}

// King returns c's king bitboard (always exactly one bit).
func (b *Board) King(c piece.Color) bitboard.Board { return b.PieceBBs[piece.King] & b.ColorBBs[c] }

// IsInCheck reports whether c's king is currently attacked.
func (b *Board) IsInCheck(c piece.Color) bool {
	return b.IsAttacked(b.Kings[c], c.Other())
}

// IsAttacked reports whether s is attacked by any piece of color them.
func (b *Board) IsAttacked(s square.Square, them piece.Color) bool {
	occ := b.Occupied()

	if attacks.Pawn[them.Other()][s]&b.Pawns(them) != bitboard.Empty {
		return true
	}

	if attacks.Knight[s]&b.Knights(them) != bitboard.Empty {
		return true
	}

	if attacks.King[s]&b.King(them) != bitboard.Empty {
		return true
	}

	queens := b.Queens(them)

	if attacks.Bishop(s, occ)&(b.Bishops(them)|queens) != bitboard.Empty {
		return true
	}

	return attacks.Rook(s, occ)&(b.Rooks(them)|queens) != bitboard.Empty
}
