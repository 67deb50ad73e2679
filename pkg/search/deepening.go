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

package search

import (
	"fmt"

	"laptudirm.com/x/corvid/pkg/eval"
	"laptudirm.com/x/corvid/pkg/move"
)

// iterativeDeepening is the main search loop. It calls negamax once per
// depth, from 1 up to the depth limit, stopping early if a time or node
// limit is hit. Every complete iteration populates the transposition
// table with scores and best moves that speed up the following one, so
// this ends up faster overall than searching the final depth directly.
// https://www.chessprogramming.org/Iterative_Deepening
func (search *Context) iterativeDeepening() {
	for search.stats.Depth = 1; search.stats.Depth <= search.limits.Depth; search.stats.Depth++ {
		// the new pv is collected into a scratch variable so that an
		// incomplete iteration's partial line never overwrites the
		// last complete iteration's pv
		var childPV move.Variation
		score := search.negamax(0, search.stats.Depth, -eval.Inf, eval.Inf, &childPV)

		if search.stopped {
			break
		}

		search.pv = childPV
		search.pvScore = score

		fmt.Println(search.GenerateReport())
	}
}
