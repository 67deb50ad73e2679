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

// Package tt implements a transposition table which caches results from
// previous searches of a position so that transpositions found later in
// the tree are resolved instantly. It stores the score, bound type,
// search depth, and best move of a position.
package tt

import (
	"math/bits"
	"unsafe"

	"laptudirm.com/x/corvid/pkg/eval"
	"laptudirm.com/x/corvid/pkg/move"
	"laptudirm.com/x/corvid/pkg/zobrist"
)

// EntrySize stores the size in bytes of a tt entry.
var EntrySize = int(unsafe.Sizeof(Entry{}))

// NewTable creates a new transposition table with a size equal to or
// less than the given number of megabytes.
func NewTable(mbs int) *Table {
	size := (mbs * 1024 * 1024) / EntrySize

	return &Table{
		table: make([]Entry, size),
		size:  size,
	}
}

// Table represents a transposition table.
type Table struct {
	table []Entry
	size  int
	epoch uint8
}

// Clear resets every entry in the table.
func (tt *Table) Clear() {
	clear(tt.table)
}

// NextEpoch increases the epoch number of the table, used once per
// search so that entries from earlier searches are replaced by any new
// store at their index, whatever its depth.
func (tt *Table) NextEpoch() {
	tt.epoch++
}

// Resize resizes the given transposition table to the new size. The
// entries are copied from the old table to the new one. If the new
// table is smaller, some entries are discarded.
func (tt *Table) Resize(mbs int) {
	size := (mbs * 1024 * 1024) / EntrySize

	newTable := make([]Entry, size)
	copy(newTable, tt.table)

	*tt = Table{
		table: newTable,
		size:  size,
	}
}

// Store puts the given data into the transposition table. The existing
// entry at that index is replaced if it was stored in an earlier epoch,
// or if the new data was searched to at least the same depth.
func (tt *Table) Store(entry Entry) {
	target := tt.fetch(entry.Hash)
	entry.epoch = tt.epoch

	if target.epoch != entry.epoch || entry.Depth >= target.Depth {
		*target = entry
	}
}

// Probe fetches the data associated with the given zobrist key from the
// transposition table. It returns the fetched data and whether it is
// usable, guarding against hash collisions and empty entries.
func (tt *Table) Probe(hash zobrist.Key) (Entry, bool) {
	entry := *tt.fetch(hash)
	return entry, entry.Type != NoEntry && entry.Hash == hash
}

// fetch returns a pointer pointing to the tt entry of the given hash.
func (tt *Table) fetch(hash zobrist.Key) *Entry {
	return &tt.table[tt.indexOf(hash)]
}

// Hashfull estimates the fraction of the table currently in use,
// sampled from the table's first 1000 entries (or fewer, if smaller).
func (tt *Table) Hashfull() float64 {
	sample := tt.size
	if sample > 1000 {
		sample = 1000
	}

	if sample == 0 {
		return 0
	}

	used := 0
	for i := 0; i < sample; i++ {
		if tt.table[i].Type != NoEntry {
			used++
		}
	}

	return float64(used) / float64(sample)
}

// indexOf is the hash function used by the transposition table.
func (tt *Table) indexOf(hash zobrist.Key) uint {
	// fast indexing function from Daniel Lemire's blog post
	// https://lemire.me/blog/2016/06/27/a-fast-alternative-to-the-modulo-reduction/
	index, _ := bits.Mul(uint(hash), uint(tt.size))
	return index
}

// Entry represents a transposition table entry.
type Entry struct {
	// complete hash of the position, to guard against tt key collisions
	Hash zobrist.Key

	// best move in the position, used as the pv move in iterative
	// deepening's move ordering
	Move move.Move

	Value Eval
	Type  EntryType

	Depth uint8 // depth the position was searched to
	epoch uint8 // epoch/age of the entry from creation
}

// EntryType represents the bound type of a transposition table entry's
// value: whether it exists, and if so whether it is an upper bound,
// lower bound, or exact score.
type EntryType uint8

const (
	NoEntry EntryType = iota

	ExactEntry
	LowerBound
	UpperBound
)

// EvalFrom converts a mate score from "n plys till mate from root" to
// "n plys till mate from the current position" so it can be reused from
// other positions at different depths in the tree.
func EvalFrom(score eval.Eval, plys int) Eval {
	switch {
	case score > eval.WinInMaxPly:
		score += eval.Eval(plys)
	case score < eval.LoseInMaxPly:
		score -= eval.Eval(plys)
	}

	return Eval(score)
}

// Eval represents the evaluation stored in a transposition table entry.
// For mate scores it stores "n plys till mate from the current
// position" rather than the "n plys till mate from root" used in
// search, so that the value doesn't depend on its depth in the tree.
type Eval eval.Eval

// Eval converts a transposition table entry's score from "n plys till
// mate from the current position" back to "n plys till mate from root",
// the format used during search.
func (e Eval) Eval(plys int) eval.Eval {
	score := eval.Eval(e)

	switch {
	case score > eval.WinInMaxPly:
		score -= eval.Eval(plys)
	case score < eval.LoseInMaxPly:
		score += eval.Eval(plys)
	}

	return score
}
