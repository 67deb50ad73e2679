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
	"fmt"
	"strconv"
	"strings"

	"laptudirm.com/x/corvid/pkg/castling"
	"laptudirm.com/x/corvid/pkg/piece"
	"laptudirm.com/x/corvid/pkg/square"
	"laptudirm.com/x/corvid/pkg/zobrist"
)

// StartFEN is the FEN of the standard chess starting position, split
// into its six whitespace-separated fields.
var StartFEN = strings.Fields("rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1")

// New creates a Board from a complete FEN string.
// https://www.chessprogramming.org/Forsyth-Edwards_Notation
func New(fen string) (*Board, error) {
	fields := strings.Fields(fen)
	if len(fields) != 6 {
		return nil, fmt.Errorf("board: fen %q: expected 6 fields, got %d", fen, len(fields))
	}

	return NewFromFields(fields)
}

// NewFromFields creates a Board from the six whitespace-separated
// fields of a FEN string.
func NewFromFields(fen []string) (*Board, error) {
	var b Board

	b.SideToMove = piece.NewColor(fen[1])
	if b.SideToMove == piece.Black {
		b.Hash ^= zobrist.SideToMove
	}

	ranks := strings.Split(fen[0], "/")
	if len(ranks) != 8 {
		return nil, fmt.Errorf("board: fen: expected 8 ranks, got %d", len(ranks))
	}

	for i, rankData := range ranks {
		r := square.Rank8 - square.Rank(i)
		f := square.FileA

		for _, id := range rankData {
			if f > square.FileH {
				return nil, fmt.Errorf("board: fen: rank %q overflows the board", rankData)
			}

			if id >= '1' && id <= '8' {
				f += square.File(id - '0')
				continue
			}

			p := piece.NewFromString(string(id))
			b.FillSquare(square.New(f, r), p)
			f++
		}
	}

	b.CastlingRights = castling.NewRights(fen[2])
	b.Hash ^= zobrist.Castling[b.CastlingRights]

	var err error
	b.EnPassantTarget, err = square.NewFromString(fen[3])
	if err != nil {
		return nil, fmt.Errorf("board: fen: %w", err)
	}

	if b.EnPassantTarget != square.None {
		b.Hash ^= zobrist.EnPassant[b.EnPassantTarget.File()]
	}

	b.DrawClock, _ = strconv.Atoi(fen[4])
	b.FullMoves, _ = strconv.Atoi(fen[5])
	if b.FullMoves == 0 {
		b.FullMoves = 1
	}

	return &b, nil
}

// FEN returns the complete FEN string of the current position.
func (b *Board) FEN() string {
	return fmt.Sprintf("%s %s %s %s %d %d",
		b.Position.FEN(),
		b.SideToMove,
		b.CastlingRights,
		b.EnPassantTarget,
		b.DrawClock,
		b.FullMoves,
	)
}
