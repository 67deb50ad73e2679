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

package move

// eval is the set of integer types a move ordering score may use.
// uint64 is excluded to avoid overflowing the packed representation.
type eval interface {
	~int | ~int8 | ~int16 | ~int32 |
		~uint | ~uint8 | ~uint16 | ~uint32
}

// ScoreMoves scores each move in moveList with scorer and returns an
// OrderedMoveList ready for incremental selection-sort picking.
func ScoreMoves[T eval](moveList []Move, scorer func(Move) T) OrderedMoveList[T] {
	ordered := make([]OrderedMove[T], len(moveList))

	for i, m := range moveList {
		ordered[i] = NewOrdered(m, scorer(m))
	}

	return OrderedMoveList[T]{
		moves:  ordered,
		Length: len(moveList),
	}
}

// OrderedMoveList is a ranked move list. Moves are not fully sorted up
// front since most of them are never searched: PickMove finds and swaps
// forward only the best remaining move, selection-sort style.
type OrderedMoveList[T eval] struct {
	moves  []OrderedMove[T]
	Length int
}

// PickMove finds the highest-scoring move at or after index, swaps it
// into index, and returns it.
func (list *OrderedMoveList[T]) PickMove(index int) Move {
	bestIndex := index
	bestScore := list.moves[index].Eval()

	for i := index + 1; i < list.Length; i++ {
		if e := list.moves[i].Eval(); e > bestScore {
			bestIndex = i
			bestScore = e
		}
	}

	list.swap(index, bestIndex)
	return list.moves[index].Move()
}

func (list *OrderedMoveList[T]) swap(i, j int) {
	list.moves[i], list.moves[j] = list.moves[j], list.moves[i]
}

// NewOrdered packs a move and its evaluation into a single OrderedMove.
func NewOrdered[T eval](m Move, e T) OrderedMove[T] {
	// [ evaluation 32 bits ][ move 32 bits ]
	return OrderedMove[T](uint64(e)<<32 | uint64(m))
}

// OrderedMove is a move packed together with its ordering score.
type OrderedMove[T eval] uint64

// Eval returns the move's ordering score.
func (m OrderedMove[T]) Eval() T {
	return T(m >> 32)
}

// Move returns the packed move.
func (m OrderedMove[T]) Move() Move {
	return Move(m & 0xFFFFFFFF)
}
