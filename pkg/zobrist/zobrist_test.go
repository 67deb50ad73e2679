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

package zobrist_test

import (
	"testing"

	"laptudirm.com/x/corvid/pkg/castling"
	"laptudirm.com/x/corvid/pkg/piece"
	"laptudirm.com/x/corvid/pkg/square"
	"laptudirm.com/x/corvid/pkg/zobrist"
)

// TestKeyTableIsPopulated checks that the fixed-seed PRNG filled every
// piece/square slot, the en-passant file table, the castling-rights
// table, and the side-to-move key with non-zero values, catching a
// table left uninitialized by an off-by-one loop bound.
func TestKeyTableIsPopulated(t *testing.T) {
	for p := piece.Piece(0); p < piece.N; p++ {
		for s := square.A1; s <= square.H8; s++ {
			if zobrist.PieceSquare[p][s] == 0 {
				t.Errorf("PieceSquare[%v][%v] is zero", p, s)
			}
		}
	}

	for f := square.FileA; f <= square.FileH; f++ {
		if zobrist.EnPassant[f] == 0 {
			t.Errorf("EnPassant[%v] is zero", f)
		}
	}

	for r := castling.None; r <= castling.All; r++ {
		if zobrist.Castling[r] == 0 {
			t.Errorf("Castling[%v] is zero", r)
		}
	}

	if zobrist.SideToMove == 0 {
		t.Error("SideToMove is zero")
	}
}

// TestKeyTableHasNoObviousCollisions checks that the (piece, square)
// keys are pairwise distinct: a repeated value would mean two different
// positions could hash identically far too often.
func TestKeyTableHasNoObviousCollisions(t *testing.T) {
	seen := make(map[zobrist.Key]bool)

	for p := piece.Piece(0); p < piece.N; p++ {
		for s := square.A1; s <= square.H8; s++ {
			key := zobrist.PieceSquare[p][s]
			if seen[key] {
				t.Fatalf("duplicate zobrist key %X for piece %v square %v", key, p, s)
			}
			seen[key] = true
		}
	}
}

// TestSideToMoveTogglesHash checks that XOR-ing SideToMove twice
// restores the original hash, the invariant make/unmake relies on.
func TestSideToMoveTogglesHash(t *testing.T) {
	const start = zobrist.Key(0x1122334455667788)

	toggled := start ^ zobrist.SideToMove
	if toggled == start {
		t.Fatal("toggling side to move left the hash unchanged")
	}

	restored := toggled ^ zobrist.SideToMove
	if restored != start {
		t.Errorf("double toggle: got %X, want %X", restored, start)
	}
}
