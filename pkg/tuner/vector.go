// Copyright © 2023 Rak Laptudirm <rak@laptudirm.com>
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

package tuner

import (
	"math"

	"laptudirm.com/x/corvid/pkg/eval"
	"laptudirm.com/x/corvid/pkg/piece"
	"laptudirm.com/x/corvid/pkg/square"
)

// phase indices into a Vector/Entry score pair.
const (
	MG = 0
	EG = 1
)

// Vector holds one tunable [mg, eg] delta per piece-square table cell,
// mirroring the shape of eval.PSQT.
type Vector [piece.N][square.N][2]float64

// Apply rounds and writes the accumulated deltas into the engine's live
// PSQT/material tables, so a subsequent PeSTO call uses the tuned
// values.
func (v *Vector) Apply() {
	mg, eg := eval.PSQT()
	for p := piece.Piece(0); p < piece.N; p++ {
		for s := square.A1; s < square.N; s++ {
			mg[p][s] += eval.Eval(math.Round(v[p][s][MG]))
			eg[p][s] += eval.Eval(math.Round(v[p][s][EG]))
		}
	}
}
