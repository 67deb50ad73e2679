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

package move_test

import (
	"testing"

	"laptudirm.com/x/corvid/pkg/move"
	"laptudirm.com/x/corvid/pkg/piece"
	"laptudirm.com/x/corvid/pkg/square"
)

func TestPickMovePicksDescendingOrder(t *testing.T) {
	moves := []move.Move{
		move.New(square.A2, square.A3, piece.WhitePawn, false),
		move.New(square.B2, square.B3, piece.WhitePawn, false),
		move.New(square.C2, square.C3, piece.WhitePawn, false),
		move.New(square.D2, square.D3, piece.WhitePawn, false),
	}
	scores := map[move.Move]int{
		moves[0]: 10,
		moves[1]: 40,
		moves[2]: 20,
		moves[3]: 30,
	}

	ordered := move.ScoreMoves(moves, func(m move.Move) int { return scores[m] })

	var picked []move.Move
	for i := 0; i < ordered.Length; i++ {
		picked = append(picked, ordered.PickMove(i))
	}

	want := []move.Move{moves[1], moves[3], moves[2], moves[0]}
	for i, m := range picked {
		if m != want[i] {
			t.Errorf("pick %d: got %s, want %s", i, m, want[i])
		}
	}
}

func TestOrderedMovePacksEvalAndMove(t *testing.T) {
	m := move.New(square.E2, square.E4, piece.WhitePawn, false)
	ordered := move.NewOrdered(m, int32(-12345))

	if got := ordered.Move(); got != m {
		t.Errorf("move: got %s, want %s", got, m)
	}
	if got := ordered.Eval(); got != -12345 {
		t.Errorf("eval: got %d, want -12345", got)
	}
}
