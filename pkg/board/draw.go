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

package board

// IsDraw reports whether the current position is a draw by the
// fifty-move rule or threefold repetition.
func (b *Board) IsDraw() bool {
	return b.DrawClock >= 100 || b.isRepetition()
}

// isRepetition scans the history stack backward from the current
// position, counting matching hashes until an irreversible move (a
// capture or pawn move) is hit, since no earlier position could ever
// repeat past one of those. Two earlier matches mean the current
// position is occurring for the third time, which is a threefold
// repetition.
func (b *Board) isRepetition() bool {
	matches := 0
	for i := b.Plys - 1; i >= 0; i-- {
		undo := b.History[i]
		if undo.Hash == b.Hash {
			matches++
			if matches >= 2 {
				return true
			}
		}

		if !undo.Move.IsReversible() {
			break
		}
	}

	return false
}
