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

package eval

import (
	"laptudirm.com/x/corvid/internal/util"
	"laptudirm.com/x/corvid/pkg/attacks"
	"laptudirm.com/x/corvid/pkg/bitboard"
	"laptudirm.com/x/corvid/pkg/board"
	"laptudirm.com/x/corvid/pkg/move"
	"laptudirm.com/x/corvid/pkg/piece"
	"laptudirm.com/x/corvid/pkg/square"
)

var seeValue = [piece.TypeN]Eval{
	piece.Pawn:   100,
	piece.Knight: 400,
	piece.Bishop: 400,
	piece.Rook:   600,
	piece.Queen:  1000,
	piece.King:   30000,
}

// SEE performs a static exchange evaluation on the given board starting
// with the given move. It returns true if the capture sequence gains at
// least the provided threshold, and false otherwise.
func SEE(b *board.Board, m move.Move, threshold Eval) bool {
	source, target := m.Source(), m.Target()

	attacker := m.ToPiece().Type()
	victim := util.Ternary(m.IsEnPassant(b.EnPassantTarget), piece.Pawn, b.Position[target].Type())

	balance := seeValue[victim] // win the victim
	if balance < threshold {
		// even winning the captured piece for free isn't enough
		return false
	}

	balance -= seeValue[attacker] // lose the attacker
	if balance >= threshold {
		// losing the capturing piece for nothing still beats threshold
		return true
	}

	occupied := b.Occupied()

	occupied.Unset(source)
	sideToMove := b.SideToMove.Other()

	attackers := attackersTo(b, target, occupied) & occupied

	diagonal := b.PieceBBs[piece.Bishop] | b.PieceBBs[piece.Queen]
	straight := b.PieceBBs[piece.Rook] | b.PieceBBs[piece.Queen]

	for {
		friends := attackers & b.ColorBBs[sideToMove]
		if friends == bitboard.Empty {
			break
		}

		for attacker = piece.Pawn; attacker < piece.King; attacker++ {
			if friends&b.PieceBBs[attacker] != bitboard.Empty {
				break
			}
		}

		if attacker == piece.King && (attackers&^friends) != bitboard.Empty {
			// capturing with the king is illegal while the opponent
			// still has an attacker on the square
			break
		}

		source = (friends & b.PieceBBs[attacker]).FirstOne()

		occupied.Unset(source)
		sideToMove = sideToMove.Other()

		balance = -balance - seeValue[attacker]
		if balance >= threshold {
			break
		}

		// reveal x-ray attackers behind the piece that just captured
		switch attacker {
		case piece.Pawn, piece.Bishop:
			attackers |= attacks.Bishop(target, occupied) & diagonal
		case piece.Rook:
			attackers |= attacks.Rook(target, occupied) & straight
		case piece.Queen:
			switch {
			case source.File() == target.File(), source.Rank() == target.Rank():
				attackers |= attacks.Rook(target, occupied) & straight
			default:
				attackers |= attacks.Bishop(target, occupied) & diagonal
			}
		}

		attackers &= occupied
	}

	// sideToMove is whoever failed to recapture; the exchange is
	// winning or equal for us only if the opponent ran out first.
	return sideToMove != b.SideToMove
}

func attackersTo(b *board.Board, s square.Square, blockers bitboard.Board) bitboard.Board {
	diagonal := b.PieceBBs[piece.Bishop] | b.PieceBBs[piece.Queen]
	straight := b.PieceBBs[piece.Rook] | b.PieceBBs[piece.Queen]

	return attacks.King[s]&b.PieceBBs[piece.King] |
		attacks.Knight[s]&b.PieceBBs[piece.Knight] |
		attacks.Pawn[piece.White][s]&b.Pawns(piece.Black) |
		attacks.Pawn[piece.Black][s]&b.Pawns(piece.White) |
		attacks.Bishop(s, blockers)&diagonal |
		attacks.Rook(s, blockers)&straight
}
