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

// TestPerftStartPos checks legal move generation and make/unmake
// against the well-known perft node counts for the starting position.
// https://www.chessprogramming.org/Perft_Results
func TestPerftStartPos(t *testing.T) {
	tests := []struct {
		depth int
		nodes int
	}{
		{1, 20},
		{2, 400},
		{3, 8902},
		{4, 197281},
	}

	for _, test := range tests {
		b, err := board.New("rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1")
		if err != nil {
			t.Fatal(err)
		}

		if got := b.Perft(test.depth); got != test.nodes {
			t.Errorf("perft(%d): got %d, want %d", test.depth, got, test.nodes)
		}
	}
}

// TestPerftStartPosDeep checks the depth-5 node count, which exercises
// en passant captures and checks enough to catch subtle movegen bugs
// that shallower depths miss. Skipped in -short mode since it
// visits nearly 5 million nodes.
func TestPerftStartPosDeep(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping deep perft in short mode")
	}

	b, err := board.New("rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1")
	if err != nil {
		t.Fatal(err)
	}

	const want = 4865609
	if got := b.Perft(5); got != want {
		t.Errorf("perft(5): got %d, want %d", got, want)
	}
}

// TestPerftKiwipete runs perft on the "Kiwipete" position, a standard
// movegen torture test covering castling, en passant, and promotions in
// a single tactically dense position.
func TestPerftKiwipete(t *testing.T) {
	b, err := board.New("r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1")
	if err != nil {
		t.Fatal(err)
	}

	if testing.Short() {
		if got, want := b.Perft(2), 2039; got != want {
			t.Errorf("perft(2): got %d, want %d", got, want)
		}
		return
	}

	const want = 4085603
	if got := b.Perft(4); got != want {
		t.Errorf("perft(4): got %d, want %d", got, want)
	}
}
