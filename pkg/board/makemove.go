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

package board

import (
	"strings"

	"laptudirm.com/x/corvid/internal/util"
	"laptudirm.com/x/corvid/pkg/attacks"
	"laptudirm.com/x/corvid/pkg/castling"
	"laptudirm.com/x/corvid/pkg/move"
	"laptudirm.com/x/corvid/pkg/piece"
	"laptudirm.com/x/corvid/pkg/square"
	"laptudirm.com/x/corvid/pkg/zobrist"
)

// MakeMove plays the given pseudo-legal move on the board. Callers must
// check IsInCheck(SideToMove.Other()), i.e. the side that just moved,
// afterwards to confirm the move was actually legal; UnmakeMove reverses
// it regardless.
func (b *Board) MakeMove(m move.Move) {
	b.History[b.Plys] = Undo{
		Move:            m,
		CastlingRights:  b.CastlingRights,
		CapturedPiece:   piece.NoPiece,
		EnPassantTarget: b.EnPassantTarget,
		DrawClock:       b.DrawClock,
		Hash:            b.Hash,
	}

	b.DrawClock++

	if m == move.Null {
		b.makeNullMove()
		return
	}

	sourceSq := m.Source()
	targetSq := m.Target()
	captureSq := targetSq
	fromPiece := m.FromPiece()
	pieceType := fromPiece.Type()
	toPiece := m.ToPiece()

	isDoublePush := pieceType == piece.Pawn && util.Abs(int(targetSq)-int(sourceSq)) == 16
	isCastling := pieceType == piece.King && util.Abs(int(targetSq)-int(sourceSq)) == 2
	isEnPassant := pieceType == piece.Pawn && targetSq == b.EnPassantTarget
	isCapture := m.IsCapture()

	if pieceType == piece.Pawn {
		b.DrawClock = 0
	}

	if b.EnPassantTarget != square.None {
		b.Hash ^= zobrist.EnPassant[b.EnPassantTarget.File()]
	}
	b.EnPassantTarget = square.None

	switch {
	case isDoublePush:
		target := sourceSq
		if b.SideToMove == piece.White {
			target += square.North
		} else {
			target += square.South
		}

		if b.Pawns(b.SideToMove.Other())&attacks.Pawn[b.SideToMove][target] != 0 {
			b.EnPassantTarget = target
			b.Hash ^= zobrist.EnPassant[b.EnPassantTarget.File()]
		}

	case isCastling:
		rookInfo := move.CastlingRook[targetSq]
		b.ClearSquare(rookInfo.From)
		b.FillSquare(rookInfo.To, rookInfo.Piece)

	case isEnPassant:
		if b.SideToMove == piece.White {
			captureSq += square.South
		} else {
			captureSq += square.North
		}
		fallthrough

	case isCapture:
		b.History[b.Plys].CapturedPiece = b.Position[captureSq]
		b.DrawClock = 0
		b.ClearSquare(captureSq)
	}

	b.ClearSquare(sourceSq)
	b.FillSquare(targetSq, toPiece)

	b.Hash ^= zobrist.Castling[b.CastlingRights]
	b.CastlingRights &^= castling.RightUpdates[sourceSq]
	b.CastlingRights &^= castling.RightUpdates[targetSq]
	b.Hash ^= zobrist.Castling[b.CastlingRights]

	b.Plys++

	if b.SideToMove = b.SideToMove.Other(); b.SideToMove == piece.White {
		b.FullMoves++
	}
	b.Hash ^= zobrist.SideToMove
}

func (b *Board) makeNullMove() {
	if b.EnPassantTarget != square.None {
		b.Hash ^= zobrist.EnPassant[b.EnPassantTarget.File()]
	}
	b.EnPassantTarget = square.None

	b.Plys++

	if b.SideToMove = b.SideToMove.Other(); b.SideToMove == piece.White {
		b.FullMoves++
	}
	b.Hash ^= zobrist.SideToMove
}

// UnmakeMove unmakes the last move played on the board.
func (b *Board) UnmakeMove() {
	if b.SideToMove = b.SideToMove.Other(); b.SideToMove == piece.Black {
		b.FullMoves--
	}

	b.Plys--

	undo := b.History[b.Plys]
	b.EnPassantTarget = undo.EnPassantTarget
	b.DrawClock = undo.DrawClock
	b.CastlingRights = undo.CastlingRights

	m := undo.Move

	if m == move.Null {
		b.Hash = undo.Hash
		return
	}

	sourceSq := m.Source()
	targetSq := m.Target()
	captureSq := targetSq
	fromPiece := m.FromPiece()
	pieceType := fromPiece.Type()
	capturedPiece := undo.CapturedPiece

	isCastling := pieceType == piece.King && util.Abs(int(targetSq)-int(sourceSq)) == 2
	isEnPassant := pieceType == piece.Pawn && targetSq == b.EnPassantTarget
	isCapture := m.IsCapture()

	b.ClearSquare(targetSq)
	b.FillSquare(sourceSq, fromPiece)

	switch {
	case isCastling:
		rookInfo := move.CastlingRook[targetSq]
		b.ClearSquare(rookInfo.To)
		b.FillSquare(rookInfo.From, rookInfo.Piece)

	case isEnPassant:
		if b.SideToMove == piece.White {
			captureSq += square.South
		} else {
			captureSq += square.North
		}
		fallthrough

	case isCapture:
		b.FillSquare(captureSq, capturedPiece)
	}

	b.Hash = undo.Hash
}

// NewMove builds a move.Move for a pseudo-legal from-to transition on
// this board, filling in the moving piece and capture flag. Callers
// promoting a pawn must additionally call Move.SetPromotion.
func (b *Board) NewMove(from, to square.Square) move.Move {
	p := b.Position[from]
	isCapture := b.Position[to] != piece.NoPiece ||
		(p.Type() == piece.Pawn && to == b.EnPassantTarget)
	return move.New(from, to, p, isCapture)
}

// NewMoveFromString parses a move in long algebraic notation (e.g.
// "e2e4", "e7e8q") relative to the current position.
func (b *Board) NewMoveFromString(s string) (move.Move, error) {
	from, err := square.NewFromString(s[:2])
	if err != nil {
		return move.Null, err
	}

	to, err := square.NewFromString(s[2:4])
	if err != nil {
		return move.Null, err
	}

	m := b.NewMove(from, to)
	if len(s) == 5 {
		pieceID := s[4:]
		if b.SideToMove == piece.White {
			pieceID = strings.ToUpper(pieceID)
		}

		m = m.SetPromotion(piece.NewFromString(pieceID))
	}

	return m, nil
}
