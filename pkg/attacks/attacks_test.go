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

package attacks_test

import (
	"testing"

	"laptudirm.com/x/corvid/pkg/attacks"
	"laptudirm.com/x/corvid/pkg/bitboard"
	"laptudirm.com/x/corvid/pkg/piece"
	"laptudirm.com/x/corvid/pkg/square"
)

func TestKnightAttacksFromCorner(t *testing.T) {
	// a knight on a1 can only reach b3 and c2.
	got := attacks.Knight[square.A1]

	var want bitboard.Board
	want.Set(square.B3)
	want.Set(square.C2)

	if got != want {
		t.Errorf("knight attacks from a1: got %s, want %s", got, want)
	}
	if n := got.Count(); n != 2 {
		t.Errorf("knight attacks from a1: count = %d, want 2", n)
	}
}

func TestKingAttacksFromCenter(t *testing.T) {
	got := attacks.King[square.E4]
	if n := got.Count(); n != 8 {
		t.Errorf("king attacks from e4: count = %d, want 8", n)
	}
}

func TestPawnAttacksAreDiagonalOnly(t *testing.T) {
	got := attacks.Pawn[piece.White][square.E4]

	var want bitboard.Board
	want.Set(square.D5)
	want.Set(square.F5)

	if got != want {
		t.Errorf("white pawn attacks from e4: got %s, want %s", got, want)
	}
}

func TestRookAttacksStopAtBlockers(t *testing.T) {
	var occ bitboard.Board
	occ.Set(square.E6) // blocker two squares above the rook

	got := attacks.Rook(square.E4, occ)

	if !got.IsSet(square.E5) || !got.IsSet(square.E6) {
		t.Error("rook should attack up to and including the blocker")
	}
	if got.IsSet(square.E7) {
		t.Error("rook should not see past the blocker")
	}
	// unblocked directions still see the whole rank/file
	if !got.IsSet(square.A4) || !got.IsSet(square.H4) {
		t.Error("rook should still attack the full unobstructed rank")
	}
}

func TestBishopAttacksStopAtBlockers(t *testing.T) {
	var occ bitboard.Board
	occ.Set(square.G6) // blocker on the a1-h8-adjacent diagonal from e4

	got := attacks.Bishop(square.E4, occ)

	if !got.IsSet(square.F5) || !got.IsSet(square.G6) {
		t.Error("bishop should attack up to and including the blocker")
	}
	if got.IsSet(square.H7) {
		t.Error("bishop should not see past the blocker")
	}
}

func TestQueenIsUnionOfRookAndBishop(t *testing.T) {
	occ := bitboard.Empty
	got := attacks.Queen(square.D4, occ)
	want := attacks.Rook(square.D4, occ) | attacks.Bishop(square.D4, occ)

	if got != want {
		t.Errorf("queen attacks: got %s, want %s", got, want)
	}
}

func TestBetweenAndLine(t *testing.T) {
	between := attacks.Between[square.A1][square.D1]
	if n := between.Count(); n != 2 {
		t.Errorf("between a1 and d1: count = %d, want 2 (b1, c1)", n)
	}
	if !between.IsSet(square.B1) || !between.IsSet(square.C1) {
		t.Error("between a1 and d1 should contain b1 and c1")
	}

	if got := attacks.Between[square.A1][square.A1]; got != bitboard.Empty {
		t.Error("between a square and itself should be empty")
	}

	if got := attacks.Between[square.A1][square.B3]; got != bitboard.Empty {
		t.Error("between two squares sharing no line should be empty")
	}

	line := attacks.Line[square.A1][square.H8]
	if !line.IsSet(square.D4) || !line.IsSet(square.A1) || !line.IsSet(square.H8) {
		t.Error("line between a1 and h8 should cover the whole a1-h8 diagonal")
	}
}
