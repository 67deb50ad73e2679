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
	"laptudirm.com/x/corvid/pkg/piece"
	searchtime "laptudirm.com/x/corvid/pkg/search/time"
)

// Limits contains the various limits which decide how long a search can
// run for. It should be passed to Search when starting a new search.
type Limits struct {
	// search tree limits
	Nodes int
	Depth int

	// search time limits
	Infinite        bool
	MoveTime        int
	Time, Increment [piece.ColorN]int
	MovesToGo       int
}

// UpdateLimits updates the search limits while a search is in progress
// and (re)builds the time manager used to track them: a fixed movetime
// search uses a MoveManager, everything else a NormalManager built from
// wtime/btime/winc/binc/movestogo. Infinite searches need no deadline.
func (search *Context) UpdateLimits(limits Limits) {
	search.limits = limits

	switch {
	case limits.Infinite:
		return

	case limits.MoveTime != 0:
		search.time = &searchtime.MoveManager{Duration: limits.MoveTime}

	default:
		search.time = &searchtime.NormalManager{
			Us:        search.Board.SideToMove,
			Time:      limits.Time,
			Increment: limits.Increment,
			MovesToGo: limits.MovesToGo,
		}
	}

	search.time.GetDeadline() // get search deadline
}

// shouldStop checks the various limits provided for the search and
// reports if the search should be stopped at that moment. The depth
// limit is enforced by the iterative deepening loop itself, so it
// isn't tested here.
func (search *Context) shouldStop() bool {
	switch {
	case search.stopped:
		return true

	case search.stats.Nodes&2047 != 0, search.limits.Infinite:
		// only check once every 2048 nodes to prevent spending too
		// much time here; if search is infinite, never stop
		return false

	case search.stats.Nodes > search.limits.Nodes, search.time.Expired():
		search.Stop()
		return true

	default:
		return false
	}
}
