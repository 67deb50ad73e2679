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

// Package castling implements the castling-rights bitfield used by the
// board to track which castling moves remain legal for each side.
package castling

import (
	"laptudirm.com/x/corvid/pkg/piece"
	"laptudirm.com/x/corvid/pkg/square"
)

// Rights is a bitfield of the four possible castling rights.
type Rights byte

// NewRights parses a Rights from its FEN castling-availability field.
func NewRights(r string) Rights {
	var rights Rights

	if r == "-" {
		return None
	}

	if r != "" && r[0] == 'K' {
		r = r[1:]
		rights |= WhiteKingside
	}

	if r != "" && r[0] == 'Q' {
		r = r[1:]
		rights |= WhiteQueenside
	}

	if r != "" && r[0] == 'k' {
		r = r[1:]
		rights |= BlackKingside
	}

	if r != "" && r[0] == 'q' {
		rights |= BlackQueenside
	}

	return rights
}

const (
	WhiteKingside  Rights = 1 << 0
	WhiteQueenside Rights = 1 << 1
	BlackKingside  Rights = 1 << 2
	BlackQueenside Rights = 1 << 3

	None Rights = 0

	White Rights = WhiteKingside | WhiteQueenside
	Black Rights = BlackKingside | BlackQueenside

	Kingside  Rights = WhiteKingside | BlackKingside
	Queenside Rights = WhiteQueenside | BlackQueenside

	All Rights = White | Black

	// N is the number of distinct castling-rights bitfield values.
	N = 16
)

// Side returns the kingside/queenside rights belonging to c.
func Side(c piece.Color, kingside bool) Rights {
	switch {
	case c == piece.White && kingside:
		return WhiteKingside
	case c == piece.White && !kingside:
		return WhiteQueenside
	case c == piece.Black && kingside:
		return BlackKingside
	default:
		return BlackQueenside
	}
}

// Of returns the rights reserved for the given color.
func Of(c piece.Color) Rights {
	if c == piece.White {
		return White
	}
	return Black
}

// RightUpdates is indexed by the square a move's source or target lies
// on, and gives the castling rights that moving a piece to or from that
// square revokes: e1/e8 revoke both rights for their side (the king
// moved), a1/a8/h1/h8 revoke the matching rook's side.
var RightUpdates = [square.N]Rights{
	square.E1: White,
	square.A1: WhiteQueenside,
	square.H1: WhiteKingside,

	square.E8: Black,
	square.A8: BlackQueenside,
	square.H8: BlackKingside,
}

func (c Rights) String() string {
	var str string

	if c&WhiteKingside != 0 {
		str += "K"
	}

	if c&WhiteQueenside != 0 {
		str += "Q"
	}

	if c&BlackKingside != 0 {
		str += "k"
	}

	if c&BlackQueenside != 0 {
		str += "q"
	}

	if str == "" {
		str = "-"
	}

	return str
}
