// Copyright © 2022 Rak Laptudirm <rak@laptudirm.com>
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

package search_test

import (
	"testing"

	"laptudirm.com/x/corvid/pkg/board"
	"laptudirm.com/x/corvid/pkg/eval"
	"laptudirm.com/x/corvid/pkg/search"
)

func newSearchBoard(t *testing.T, fen string) *board.Board {
	t.Helper()
	b, err := board.New(fen)
	if err != nil {
		t.Fatal(err)
	}
	return b
}

// TestMateInOne checks that a fixed-depth search finds a one-move mate
// and reports a mate score for it.
func TestMateInOne(t *testing.T) {
	// white to move, Qh5xf7 is checkmate (the queen is guarded by Bc4)
	b := newSearchBoard(t, "r1bqkb1r/pppp1ppp/2n2n2/4p2Q/2B1P3/8/PPPP1PPP/RNB1K1NR w KQkq - 4 4")

	ctx := search.NewContext(b)
	pv, score, err := ctx.Search(search.Limits{Depth: 3, Nodes: 1 << 30, Infinite: true})
	if err != nil {
		t.Fatal(err)
	}

	if pv.Len() == 0 {
		t.Fatal("search: empty principal variation for a mate-in-1 position")
	}

	best := pv.Move(0)

	if score < eval.WinInMaxPly {
		t.Errorf("search: score = %v, want a mate score (> %v)", score, eval.WinInMaxPly)
	}

	wantMove, err := b.NewMoveFromString("h5f7")
	if err != nil {
		t.Fatal(err)
	}
	if best != wantMove {
		t.Errorf("search: best move = %s, want %s", best, wantMove)
	}
}

// TestSearchReturnsLegalMove checks that the move returned by Search is
// actually present in the position's legal move list, for a handful of
// quiet and tactical positions.
func TestSearchReturnsLegalMove(t *testing.T) {
	positions := []string{
		"rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1",
		"r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1",
	}

	for _, fen := range positions {
		b := newSearchBoard(t, fen)
		ctx := search.NewContext(b)

		pv, _, err := ctx.Search(search.Limits{Depth: 4, Nodes: 1 << 30, Infinite: true})
		if err != nil {
			t.Fatal(err)
		}
		if pv.Len() == 0 {
			t.Fatalf("fen %q: empty principal variation", fen)
		}

		best := pv.Move(0)
		found := false
		for _, m := range b.GenerateMoves() {
			if m == best {
				found = true
				break
			}
		}
		if !found {
			t.Errorf("fen %q: search returned illegal move %s", fen, best)
		}
	}
}

// TestSearchRejectsIllegalPosition checks that Search refuses to search
// a position where the side not to move is in check (an illegal
// position that could only be reached by leaving a king in check).
func TestSearchRejectsIllegalPosition(t *testing.T) {
	// black king on e8 is in check from the white queen on e2 along the
	// open e-file, but it is white's turn: black should have addressed
	// the check on its own last move, so this position is unreachable.
	b := newSearchBoard(t, "4k3/8/8/8/8/8/4Q3/4K3 w - - 0 1")

	ctx := search.NewContext(b)
	if _, _, err := ctx.Search(search.Limits{Depth: 1, Nodes: 1 << 30, Infinite: true}); err == nil {
		t.Error("search: expected error for an illegal position, got nil")
	}
}

// TestResizeTTPreservesSearchability checks that resizing the
// transposition table mid-life doesn't break a subsequent search.
func TestResizeTTPreservesSearchability(t *testing.T) {
	b := newSearchBoard(t, "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1")
	ctx := search.NewContext(b)
	ctx.ResizeTT(1)

	pv, _, err := ctx.Search(search.Limits{Depth: 3, Nodes: 1 << 30, Infinite: true})
	if err != nil {
		t.Fatal(err)
	}
	if pv.Len() == 0 {
		t.Error("search: empty principal variation after resizing tt")
	}
}
