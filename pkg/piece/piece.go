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

// Package piece implements representations of chess pieces, piece
// types, and colors, along with related utility functions.
//
// The King, Queen, Rook, Knight, Bishop, and Pawn are represented by the
// K, Q, R, N, B, and P strings respectively, with uppercase for white
// and lowercase for black, per FEN convention.
package piece

// Piece represents a colored chess piece.
// Format: MSB [color 1 bit][type 3 bits] LSB
type Piece uint8

// constants representing field offsets in Piece
const (
	colorOffset = 3
	typeMask    = (1 << colorOffset) - 1
)

// New creates a new Piece with the given type and color.
func New(t Type, c Color) Piece {
	return Piece(c)<<colorOffset | Piece(t)
}

// NewFromString creates an instance of Piece from the given piece id.
func NewFromString(id string) Piece {
	switch id {
	case "K":
		return WhiteKing
	case "Q":
		return WhiteQueen
	case "R":
		return WhiteRook
	case "N":
		return WhiteKnight
	case "B":
		return WhiteBishop
	case "P":
		return WhitePawn
	case "k":
		return BlackKing
	case "q":
		return BlackQueen
	case "r":
		return BlackRook
	case "n":
		return BlackKnight
	case "b":
		return BlackBishop
	case "p":
		return BlackPawn
	default:
		panic("piece: invalid piece id " + id)
	}
}

// constants representing colored chess pieces
const (
	NoPiece Piece = 0

	WhitePawn   Piece = Piece(White)<<colorOffset | Piece(Pawn)
	WhiteKnight Piece = Piece(White)<<colorOffset | Piece(Knight)
	WhiteBishop Piece = Piece(White)<<colorOffset | Piece(Bishop)
	WhiteRook   Piece = Piece(White)<<colorOffset | Piece(Rook)
	WhiteQueen  Piece = Piece(White)<<colorOffset | Piece(Queen)
	WhiteKing   Piece = Piece(White)<<colorOffset | Piece(King)

	BlackPawn   Piece = Piece(Black)<<colorOffset | Piece(Pawn)
	BlackKnight Piece = Piece(Black)<<colorOffset | Piece(Knight)
	BlackBishop Piece = Piece(Black)<<colorOffset | Piece(Bishop)
	BlackRook   Piece = Piece(Black)<<colorOffset | Piece(Rook)
	BlackQueen  Piece = Piece(Black)<<colorOffset | Piece(Queen)
	BlackKing   Piece = Piece(Black)<<colorOffset | Piece(King)
)

// N is the number of piece-color combinations, including NoPiece. The
// bits reserved for Type leave room for 16 rather than the true 13
// (12 pieces + NoPiece), which simplifies array indexing elsewhere.
const N = 16

// String converts a Piece into its string representation.
func (p Piece) String() string {
	const pieceToStr = " PNBRQK  pnbrqk"
	return string(pieceToStr[p])
}

// Type returns the piece type of the given Piece.
func (p Piece) Type() Type {
	return Type(p & typeMask)
}

// Color returns the piece color of the given Piece.
func (p Piece) Color() Color {
	return Color(p >> colorOffset)
}

// Is reports whether the type of the given Piece matches target.
func (p Piece) Is(target Type) bool {
	return p.Type() == target
}

// IsColor reports whether the color of the given Piece matches target.
func (p Piece) IsColor(target Color) bool {
	return p.Color() == target
}

// Type represents the type/kind of a chess piece.
type Type uint8

// constants representing chess piece types
const (
	NoType Type = iota
	Pawn
	Knight
	Bishop
	Rook
	Queen
	King
)

// TypeN is the number of chess piece types, including NoType.
const TypeN = 7

// String converts a Type into its string representation.
func (t Type) String() string {
	const typeToStr = " pnbrqk"
	return string(typeToStr[t])
}

// Value is the classical material value of a piece type, in centipawns.
// The engine does not read it: MVV-LVA ordering and static exchange
// evaluation use their own tables in pkg/eval, and the phased evaluation
// uses its own tuned material tables.
var Value = [TypeN]int{
	NoType: 0,
	Pawn:   100,
	Knight: 320,
	Bishop: 330,
	Rook:   500,
	Queen:  900,
	King:   0,
}

// Color represents the color of a Piece.
type Color int8

// constants representing piece colors
const (
	White Color = iota
	Black
)

// ColorN is the number of colors there are.
const ColorN = 2

// NewColor creates a Color from its string id ("w" or "b").
func NewColor(id string) Color {
	switch id {
	case "w":
		return White
	case "b":
		return Black
	default:
		panic("piece: invalid color id " + id)
	}
}

// Other returns the color opposite to the given one.
func (c Color) Other() Color {
	return 1 ^ c
}

// String converts a Color to its string representation.
func (c Color) String() string {
	const colorToStr = "wb"
	return string(colorToStr[c])
}
