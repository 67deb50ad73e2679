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

package bitboard_test

import (
	"testing"

	"laptudirm.com/x/corvid/pkg/bitboard"
	"laptudirm.com/x/corvid/pkg/piece"
	"laptudirm.com/x/corvid/pkg/square"
)

func TestSetUnsetIsSet(t *testing.T) {
	var b bitboard.Board
	b.Set(square.D4)

	if !b.IsSet(square.D4) {
		t.Fatal("expected d4 to be set")
	}
	if b.IsSet(square.D5) {
		t.Fatal("expected d5 to be unset")
	}

	b.Unset(square.D4)
	if b.IsSet(square.D4) {
		t.Error("expected d4 to be unset after Unset")
	}
}

func TestSetUnsetNoneIsNoop(t *testing.T) {
	var b bitboard.Board
	b.Set(square.None)
	if b != bitboard.Empty {
		t.Error("Set(None) should be a no-op")
	}

	b.Set(square.A1)
	b.Unset(square.None)
	if !b.IsSet(square.A1) {
		t.Error("Unset(None) should be a no-op")
	}
}

func TestPopClearsAndReturnsLowestSquare(t *testing.T) {
	var b bitboard.Board
	b.Set(square.D4)
	b.Set(square.A1)

	if got := b.Pop(); got != square.A1 {
		t.Errorf("pop: got %v, want a1", got)
	}
	if b.IsSet(square.A1) {
		t.Error("pop should have cleared a1")
	}
	if !b.IsSet(square.D4) {
		t.Error("pop should not have touched d4")
	}
}

func TestCountAndFirstOne(t *testing.T) {
	var b bitboard.Board
	if b.Count() != 0 {
		t.Errorf("empty board count = %d, want 0", b.Count())
	}

	b.Set(square.C3)
	b.Set(square.F6)
	if b.Count() != 2 {
		t.Errorf("count = %d, want 2", b.Count())
	}
	if b.FirstOne() != square.C3 {
		t.Errorf("first one = %v, want c3", b.FirstOne())
	}
}

func TestDirectionalShifts(t *testing.T) {
	var b bitboard.Board
	b.Set(square.D4)

	if got := b.North(); !got.IsSet(square.D5) {
		t.Error("north should move d4 to d5")
	}
	if got := b.South(); !got.IsSet(square.D3) {
		t.Error("south should move d4 to d3")
	}
	if got := b.East(); !got.IsSet(square.E4) {
		t.Error("east should move d4 to e4")
	}
	if got := b.West(); !got.IsSet(square.C4) {
		t.Error("west should move d4 to c4")
	}
}

func TestEastWestClipWraparound(t *testing.T) {
	var h bitboard.Board
	h.Set(square.H4)
	if got := h.East(); got != bitboard.Empty {
		t.Error("east from file h should not wrap to file a")
	}

	var a bitboard.Board
	a.Set(square.A4)
	if got := a.West(); got != bitboard.Empty {
		t.Error("west from file a should not wrap to file h")
	}
}

func TestUpDownRespectsColor(t *testing.T) {
	var b bitboard.Board
	b.Set(square.D4)

	if got := b.Up(piece.White); !got.IsSet(square.D5) {
		t.Error("white's up should be north")
	}
	if got := b.Up(piece.Black); !got.IsSet(square.D3) {
		t.Error("black's up should be south")
	}
	if got := b.Down(piece.White); !got.IsSet(square.D3) {
		t.Error("white's down should be south")
	}
	if got := b.Down(piece.Black); !got.IsSet(square.D5) {
		t.Error("black's down should be north")
	}
}

func TestReverseIsInvolution(t *testing.T) {
	var b bitboard.Board
	b.Set(square.A1)
	b.Set(square.D4)
	b.Set(square.H8)

	if got := bitboard.Reverse(bitboard.Reverse(b)); got != b {
		t.Errorf("double reverse: got %s, want %s", got, b)
	}

	// reversing should swap a1 and h8, the two ends of the board.
	reversed := bitboard.Reverse(b)
	if !reversed.IsSet(square.H8) || !reversed.IsSet(square.A1) {
		t.Error("reverse should keep a1 and h8 set (they swap with each other)")
	}
	if !reversed.IsSet(square.E5) {
		t.Error("reverse should map d4 to e5 (point symmetry about the board center)")
	}
}

func TestHyperbolaRookFile(t *testing.T) {
	var occ bitboard.Board
	occ.Set(square.D4)
	occ.Set(square.D7) // blocker to the north

	got := bitboard.Hyperbola(square.D4, occ, bitboard.Files[square.FileD])

	if !got.IsSet(square.D5) || !got.IsSet(square.D6) || !got.IsSet(square.D7) {
		t.Error("expected attacks up to and including the blocker on d7")
	}
	if got.IsSet(square.D8) {
		t.Error("attacks should not extend past the blocker")
	}
	if !got.IsSet(square.D1) || !got.IsSet(square.D3) {
		t.Error("expected the full unobstructed southward file")
	}
}

func TestHyperbolaEmptyOccupancyCoversWholeLine(t *testing.T) {
	occ := bitboard.Squares[square.D4]
	got := bitboard.Hyperbola(square.D4, occ, bitboard.Ranks[square.Rank4])

	want := bitboard.Ranks[square.Rank4] &^ bitboard.Squares[square.D4]
	if got != want {
		t.Errorf("hyperbola with no blockers: got %s, want %s", got, want)
	}
}
