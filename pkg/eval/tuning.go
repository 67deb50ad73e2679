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

package eval

import (
	"laptudirm.com/x/corvid/internal/util"
	"laptudirm.com/x/corvid/pkg/board"
	"laptudirm.com/x/corvid/pkg/piece"
	"laptudirm.com/x/corvid/pkg/square"
)

// MaxPhase is the game-phase weight of the starting position, used to
// taper between middlegame and endgame PSQT values.
const MaxPhase = 24

// PSQT exposes the tapered material-and-piece-square tables for offline
// tuning (pkg/tuner). The search hot path never calls it; it exists so
// an external gradient-descent tool can read and nudge the live tables
// in place.
func PSQT() (mg, eg *[piece.N][square.N]Eval) {
	return &mgTable, &egTable
}

// Phase returns a position's game-phase weight, saturated at MaxPhase,
// used to interpolate between the mg and eg tables tuned via PSQT.
func Phase(b *board.Board) int {
	phase := 0
	for s := square.A1; s < square.N; s++ {
		phase += phaseInc[b.Position[s].Type()]
	}
	return util.Min(phase, MaxPhase)
}
