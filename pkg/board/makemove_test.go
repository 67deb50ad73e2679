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

package board_test

import (
	"testing"

	"laptudirm.com/x/corvid/pkg/board"
)

// TestMakeUnmakeRoundTrip plays every legal move from a handful of
// positions and checks that UnmakeMove restores the exact FEN and hash
// MakeMove started from.
func TestMakeUnmakeRoundTrip(t *testing.T) {
	positions := []string{
		"rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1",
		"r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1",
		"rnbqkbnr/ppp2ppp/8/2Ppp3/8/8/PP1PPPPP/RNBQKBNR w KQkq d6 0 3",
	}

	for _, fen := range positions {
		b, err := board.New(fen)
		if err != nil {
			t.Fatal(err)
		}

		before := b.FEN()
		beforeHash := b.Hash

		for _, m := range b.GenerateMoves() {
			b.MakeMove(m)
			b.UnmakeMove()

			if got := b.FEN(); got != before {
				t.Fatalf("move %s: fen changed after unmake\nbefore %s\nafter  %s", m, before, got)
			}
			if b.Hash != beforeHash {
				t.Fatalf("move %s: hash changed after unmake", m)
			}
		}
	}
}

// TestIncrementalHashMatchesRecompute plays a line of moves and checks
// that the incrementally-maintained Zobrist hash always matches the
// hash of a board freshly parsed from the resulting FEN, catching any
// XOR update that drifts from a from-scratch hash.
func TestIncrementalHashMatchesRecompute(t *testing.T) {
	b, err := board.New("rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1")
	if err != nil {
		t.Fatal(err)
	}

	line := []struct{ from, to string }{
		{"e2", "e4"}, {"e7", "e5"}, {"g1", "f3"}, {"b8", "c6"},
		{"f1", "b5"}, {"a7", "a6"}, {"b5", "a4"}, {"g8", "f6"},
	}

	for _, step := range line {
		m, err := b.NewMoveFromString(step.from + step.to)
		if err != nil {
			t.Fatal(err)
		}
		b.MakeMove(m)

		fresh, err := board.New(b.FEN())
		if err != nil {
			t.Fatal(err)
		}

		if b.Hash != fresh.Hash {
			t.Fatalf("after %s%s: incremental hash %X != recomputed hash %X", step.from, step.to, b.Hash, fresh.Hash)
		}
	}
}
