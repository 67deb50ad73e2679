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

package move_test

import (
	"testing"

	"laptudirm.com/x/corvid/pkg/move"
	"laptudirm.com/x/corvid/pkg/piece"
	"laptudirm.com/x/corvid/pkg/square"
)

func TestVariationUpdate(t *testing.T) {
	e2e4 := move.New(square.E2, square.E4, piece.WhitePawn, false)
	e7e5 := move.New(square.E7, square.E5, piece.BlackPawn, false)
	g1f3 := move.New(square.G1, square.F3, piece.WhiteKnight, false)

	var innermost move.Variation
	innermost.Update(e7e5, move.Variation{})

	var middle move.Variation
	middle.Update(g1f3, innermost)

	var pv move.Variation
	pv.Update(e2e4, middle)

	if pv.Len() != 3 {
		t.Fatalf("len: got %d, want 3", pv.Len())
	}
	if pv.Move(0) != e2e4 || pv.Move(1) != g1f3 || pv.Move(2) != e7e5 {
		t.Errorf("variation: got %v", pv)
	}
}

func TestVariationMoveOutOfRangeIsNull(t *testing.T) {
	var pv move.Variation
	if m := pv.Move(0); m != move.Null {
		t.Errorf("empty variation: got %s, want null move", m)
	}
}

func TestVariationClear(t *testing.T) {
	m := move.New(square.D2, square.D4, piece.WhitePawn, false)

	var pv move.Variation
	pv.Update(m, move.Variation{})
	if pv.Len() != 1 {
		t.Fatalf("len before clear: got %d, want 1", pv.Len())
	}

	pv.Clear()
	if pv.Len() != 0 {
		t.Errorf("len after clear: got %d, want 0", pv.Len())
	}
}
