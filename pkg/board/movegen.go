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

package board

import (
	"laptudirm.com/x/corvid/pkg/attacks"
	"laptudirm.com/x/corvid/pkg/bitboard"
	"laptudirm.com/x/corvid/pkg/castling"
	"laptudirm.com/x/corvid/pkg/move"
	"laptudirm.com/x/corvid/pkg/piece"
	"laptudirm.com/x/corvid/pkg/square"
)

// GenerateMoves generates every legal move in the current position.
// Moves of a pinned piece are already restricted to its pin ray, and
// king moves already exclude squares attacked by the enemy, so every
// returned move is fully legal — no IsInCheck filtering is needed by
// the caller, except after en passant, which is checked internally.
func (b *Board) GenerateMoves() []move.Move {
	b.initMoveGen(false)

	moveList := make([]move.Move, 0, 48)

	b.appendKingMoves(&moveList)

	if b.checkN >= 2 {
		// double check: only the king can move
		return moveList
	}

	b.appendKnightMoves(&moveList)
	b.appendBishopMoves(&moveList)
	b.appendRookMoves(&moveList)
	b.appendQueenMoves(&moveList)
	b.appendPawnMoves(&moveList)

	return moveList
}

// GenerateCaptures generates every legal capturing (and promoting) move
// in the current position, for use in quiescence search.
func (b *Board) GenerateCaptures() []move.Move {
	b.initMoveGen(true)

	moveList := make([]move.Move, 0, 16)

	b.appendKingMoves(&moveList)

	if b.checkN >= 2 {
		return moveList
	}

	b.appendKnightMoves(&moveList)
	b.appendBishopMoves(&moveList)
	b.appendRookMoves(&moveList)
	b.appendQueenMoves(&moveList)
	b.appendPawnMoves(&moveList)

	return moveList
}

// initMoveGen recomputes the move-generation scratch state: occupancy,
// check-mask, pin-masks, and squares seen by the enemy. tacticalOnly
// restricts target squares to captures (and promotions).
func (b *Board) initMoveGen(tacticalOnly bool) {
	b.Kings[piece.White] = b.King(piece.White).FirstOne()
	b.Kings[piece.Black] = b.King(piece.Black).FirstOne()

	b.us = b.SideToMove
	b.them = b.us.Other()

	b.friends = b.ColorBBs[b.us]
	b.enemies = b.ColorBBs[b.them]
	b.occupied = b.friends | b.enemies

	b.calculateCheckmask()
	b.calculatePinmask()

	b.seenByEnemy = b.seenSquares(b.them)

	if tacticalOnly {
		b.target = b.enemies & b.checkMask
		b.kingTarget = b.enemies &^ b.seenByEnemy
	} else {
		b.target = ^b.friends & b.checkMask
		b.kingTarget = ^b.friends &^ b.seenByEnemy
	}
}

// calculateCheckmask computes the number of checkers on the side to
// move's king and the check-mask: the set of squares a friendly piece
// can move to in order to block every check. It is Universe when the
// king isn't in check. In double check the mask is not used, since only
// the king can move; when two orthogonal sliders give check, checkN is
// left at 1 with an Empty mask, which likewise allows only king moves.
func (b *Board) calculateCheckmask() {
	b.checkN = 0
	b.checkMask = bitboard.Empty

	kingSq := b.Kings[b.us]

	pawns := b.Pawns(b.them) & attacks.Pawn[b.us][kingSq]
	knights := b.Knights(b.them) & attacks.Knight[kingSq]
	bishops := (b.Bishops(b.them) | b.Queens(b.them)) & attacks.Bishop(kingSq, b.occupied)
	rooks := (b.Rooks(b.them) | b.Queens(b.them)) & attacks.Rook(kingSq, b.occupied)

	switch {
	case pawns != bitboard.Empty:
		b.checkMask |= pawns
		b.checkN++

	case knights != bitboard.Empty:
		b.checkMask |= knights
		b.checkN++
	}

	if bishops != bitboard.Empty {
		bishopSq := bishops.FirstOne()
		b.checkMask |= attacks.Between[kingSq][bishopSq] | bitboard.Squares[bishopSq]
		b.checkN++
	}

	if b.checkN < 2 && rooks != bitboard.Empty {
		if b.checkN == 0 && rooks.Count() > 1 {
			b.checkN++
		} else {
			rookSq := rooks.FirstOne()
			b.checkMask |= attacks.Between[kingSq][rookSq] | bitboard.Squares[rookSq]
			b.checkN++
		}
	}

	if b.checkN == 0 {
		b.checkMask = bitboard.Universe
	}
}

// calculatePinmask computes the diagonal and orthogonal pin-masks: for
// every friendly piece pinned to its king, the ray it may still move
// along without exposing the king to check.
func (b *Board) calculatePinmask() {
	kingSq := b.Kings[b.us]

	b.pinnedD = bitboard.Empty
	b.pinnedHV = bitboard.Empty

	for rooks := (b.Rooks(b.them) | b.Queens(b.them)) & attacks.Rook(kingSq, b.enemies); rooks != bitboard.Empty; {
		rook := rooks.Pop()
		ray := attacks.Between[kingSq][rook] | bitboard.Squares[rook]

		if (ray & b.friends).Count() == 1 {
			b.pinnedHV |= ray
		}
	}

	for bishops := (b.Bishops(b.them) | b.Queens(b.them)) & attacks.Bishop(kingSq, b.enemies); bishops != bitboard.Empty; {
		bishop := bishops.Pop()
		ray := attacks.Between[kingSq][bishop] | bitboard.Squares[bishop]

		if (ray & b.friends).Count() == 1 {
			b.pinnedD |= ray
		}
	}
}

// seenSquares returns every square attacked by a piece of color by. The
// enemy king is not treated as a sliding-ray blocker, since it must move
// off the ray rather than being able to hide behind itself.
func (b *Board) seenSquares(by piece.Color) bitboard.Board {
	pawns := b.Pawns(by)
	knights := b.Knights(by)
	bishops := b.Bishops(by)
	rooks := b.Rooks(by)
	queens := b.Queens(by)
	kingSq := b.Kings[by]

	blockers := b.occupied &^ b.King(by.Other())

	seen := attacks.PawnsLeft(pawns, by) | attacks.PawnsRight(pawns, by)

	for knights != bitboard.Empty {
		seen |= attacks.Knight[knights.Pop()]
	}

	for bishops != bitboard.Empty {
		seen |= attacks.Bishop(bishops.Pop(), blockers)
	}

	for rooks != bitboard.Empty {
		seen |= attacks.Rook(rooks.Pop(), blockers)
	}

	for queens != bitboard.Empty {
		seen |= attacks.Queen(queens.Pop(), blockers)
	}

	seen |= attacks.King[kingSq]

	return seen
}

func (b *Board) appendKingMoves(moveList *[]move.Move) {
	king := piece.New(piece.King, b.us)
	kingSq := b.Kings[b.us]

	kingMoves := attacks.King[kingSq] & b.kingTarget
	b.serializeMoves(moveList, king, kingSq, kingMoves)

	if b.checkN == 0 {
		b.appendCastlingMoves(moveList)
	}
}

func (b *Board) appendKnightMoves(moveList *[]move.Move) {
	knight := piece.New(piece.Knight, b.us)
	for knights := b.Knights(b.us) &^ (b.pinnedD | b.pinnedHV); knights != bitboard.Empty; {
		from := knights.Pop()
		b.serializeMoves(moveList, knight, from, attacks.Knight[from]&b.target)
	}
}

func (b *Board) appendBishopMoves(moveList *[]move.Move) {
	b.appendDiagonalMoves(moveList, piece.New(piece.Bishop, b.us), b.Bishops(b.us))
}

func (b *Board) appendRookMoves(moveList *[]move.Move) {
	b.appendOrthogonalMoves(moveList, piece.New(piece.Rook, b.us), b.Rooks(b.us))
}

func (b *Board) appendQueenMoves(moveList *[]move.Move) {
	queen := piece.New(piece.Queen, b.us)
	queens := b.Queens(b.us)

	b.appendDiagonalMoves(moveList, queen, queens)
	b.appendOrthogonalMoves(moveList, queen, queens)
}

func (b *Board) appendDiagonalMoves(moveList *[]move.Move, p piece.Piece, sliders bitboard.Board) {
	sliders &^= b.pinnedHV

	for pinned := sliders & b.pinnedD; pinned != bitboard.Empty; {
		from := pinned.Pop()
		b.serializeMoves(moveList, p, from, attacks.Bishop(from, b.occupied)&b.target&b.pinnedD)
	}

	for unpinned := sliders &^ b.pinnedD; unpinned != bitboard.Empty; {
		from := unpinned.Pop()
		b.serializeMoves(moveList, p, from, attacks.Bishop(from, b.occupied)&b.target)
	}
}

func (b *Board) appendOrthogonalMoves(moveList *[]move.Move, p piece.Piece, sliders bitboard.Board) {
	sliders &^= b.pinnedD

	for pinned := sliders & b.pinnedHV; pinned != bitboard.Empty; {
		from := pinned.Pop()
		b.serializeMoves(moveList, p, from, attacks.Rook(from, b.occupied)&b.target&b.pinnedHV)
	}

	for unpinned := sliders &^ b.pinnedHV; unpinned != bitboard.Empty; {
		from := unpinned.Pop()
		b.serializeMoves(moveList, p, from, attacks.Rook(from, b.occupied)&b.target)
	}
}

func (b *Board) appendPawnMoves(moveList *[]move.Move) {
	var down square.Square
	var promotionRank, epRank, doublePushRank bitboard.Board
	var p piece.Piece

	const left, right = square.West, square.East

	switch b.us {
	case piece.White:
		down = square.South
		promotionRank = bitboard.Rank8
		epRank = bitboard.Rank5
		doublePushRank = bitboard.Rank3
		p = piece.WhitePawn
	default:
		down = square.North
		promotionRank = bitboard.Rank1
		epRank = bitboard.Rank4
		doublePushRank = bitboard.Rank6
		p = piece.BlackPawn
	}

	pushTarget := b.checkMask &^ b.occupied
	captureTarget := b.enemies & b.checkMask

	pawns := b.Pawns(b.us)
	pawnsThatAttack := pawns &^ b.pinnedHV

	unpinnedAttackers := pawnsThatAttack &^ b.pinnedD
	pinnedAttackers := pawnsThatAttack & b.pinnedD

	attacksL := attacks.PawnsLeft(unpinnedAttackers, b.us) & captureTarget
	attacksL |= attacks.PawnsLeft(pinnedAttackers, b.us) & captureTarget & b.pinnedD

	attacksR := attacks.PawnsRight(unpinnedAttackers, b.us) & captureTarget
	attacksR |= attacks.PawnsRight(pinnedAttackers, b.us) & captureTarget & b.pinnedD

	for simple := attacksL &^ promotionRank; simple != bitboard.Empty; {
		to := simple.Pop()
		*moveList = append(*moveList, move.New(to+down+right, to, p, true))
	}

	for simple := attacksR &^ promotionRank; simple != bitboard.Empty; {
		to := simple.Pop()
		*moveList = append(*moveList, move.New(to+down+left, to, p, true))
	}

	for promo := attacksL & promotionRank; promo != bitboard.Empty; {
		to := promo.Pop()
		appendPromotions(moveList, move.New(to+down+right, to, p, true), b.us)
	}

	for promo := attacksR & promotionRank; promo != bitboard.Empty; {
		to := promo.Pop()
		appendPromotions(moveList, move.New(to+down+left, to, p, true), b.us)
	}

	pawnsThatPush := pawns &^ b.pinnedD

	unpinnedPushers := pawnsThatPush &^ b.pinnedHV
	pinnedPushers := pawnsThatPush & b.pinnedHV

	pushSingle := attacks.PawnPush(unpinnedPushers, b.us)
	pushSingle |= attacks.PawnPush(pinnedPushers, b.us) & b.pinnedHV
	pushSingle &^= b.occupied

	pushDouble := attacks.PawnPush(pushSingle&doublePushRank, b.us) & pushTarget

	pushSingle &= pushTarget

	for simple := pushSingle &^ promotionRank; simple != bitboard.Empty; {
		to := simple.Pop()
		*moveList = append(*moveList, move.New(to+down, to, p, false))
	}

	for double := pushDouble; double != bitboard.Empty; {
		to := double.Pop()
		*moveList = append(*moveList, move.New(to+down+down, to, p, false))
	}

	for promo := pushSingle & promotionRank; promo != bitboard.Empty; {
		to := promo.Pop()
		appendPromotions(moveList, move.New(to+down, to, p, false), b.us)
	}

	if b.EnPassantTarget == square.None {
		return
	}

	epPawn := b.EnPassantTarget + down
	them := b.them

	epMask := bitboard.Squares[b.EnPassantTarget] | bitboard.Squares[epPawn]
	if b.checkMask&epMask == 0 {
		return
	}

	kingSq := b.Kings[b.us]
	kingOnEPRank := bitboard.Squares[kingSq]&epRank != bitboard.Empty
	enemyRooksQueens := (b.Rooks(them) | b.Queens(them)) & epRank
	isPossiblePin := kingOnEPRank && enemyRooksQueens != bitboard.Empty

	for fromBB := attacks.Pawn[them][b.EnPassantTarget] & pawnsThatAttack; fromBB != bitboard.Empty; {
		from := fromBB.Pop()

		if b.pinnedD.IsSet(from) && !b.pinnedD.IsSet(b.EnPassantTarget) {
			continue
		}

		blockersMask := bitboard.Squares[from] | bitboard.Squares[epPawn]
		if isPossiblePin && attacks.Rook(kingSq, b.occupied&^blockersMask)&enemyRooksQueens != 0 {
			continue
		}

		*moveList = append(*moveList, move.New(from, b.EnPassantTarget, p, true))
	}
}

func (b *Board) appendCastlingMoves(moveList *[]move.Move) {
	occOrSeen := b.occupied | b.seenByEnemy

	switch b.us {
	case piece.White:
		if b.CastlingRights&castling.WhiteKingside != 0 && occOrSeen&bitboard.Board(0x60) == 0 {
			*moveList = append(*moveList, move.New(square.E1, square.G1, piece.WhiteKing, false))
		}

		if b.CastlingRights&castling.WhiteQueenside != 0 &&
			b.occupied&bitboard.Board(0xe) == 0 &&
			b.seenByEnemy&bitboard.Board(0xc) == 0 {
			*moveList = append(*moveList, move.New(square.E1, square.C1, piece.WhiteKing, false))
		}
	case piece.Black:
		if b.CastlingRights&castling.BlackKingside != 0 && occOrSeen&bitboard.Board(0x6000000000000000) == 0 {
			*moveList = append(*moveList, move.New(square.E8, square.G8, piece.BlackKing, false))
		}

		if b.CastlingRights&castling.BlackQueenside != 0 &&
			b.occupied&bitboard.Board(0xe00000000000000) == 0 &&
			b.seenByEnemy&bitboard.Board(0xc00000000000000) == 0 {
			*moveList = append(*moveList, move.New(square.E8, square.C8, piece.BlackKing, false))
		}
	}
}

func (b *Board) serializeMoves(moveList *[]move.Move, p piece.Piece, from square.Square, moves bitboard.Board) {
	for toBB := moves; toBB != bitboard.Empty; {
		to := toBB.Pop()
		*moveList = append(*moveList, move.New(from, to, p, b.enemies.IsSet(to)))
	}
}

func appendPromotions(moveList *[]move.Move, m move.Move, c piece.Color) {
	*moveList = append(*moveList,
		m.SetPromotion(piece.New(piece.Queen, c)),
		m.SetPromotion(piece.New(piece.Rook, c)),
		m.SetPromotion(piece.New(piece.Bishop, c)),
		m.SetPromotion(piece.New(piece.Knight, c)),
	)
}
