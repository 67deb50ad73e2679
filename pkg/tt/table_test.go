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

package tt_test

import (
	"testing"

	"laptudirm.com/x/corvid/pkg/tt"
	"laptudirm.com/x/corvid/pkg/zobrist"
)

func TestStoreAndProbe(t *testing.T) {
	table := tt.NewTable(1)

	entry := tt.Entry{
		Hash:  0xdead_beef,
		Value: 123,
		Type:  tt.ExactEntry,
		Depth: 4,
	}
	table.Store(entry)

	got, ok := table.Probe(entry.Hash)
	if !ok {
		t.Fatal("probe: expected hit after store")
	}
	if got.Value != entry.Value || got.Type != entry.Type || got.Depth != entry.Depth {
		t.Errorf("probe: got %+v, want contents matching %+v", got, entry)
	}
}

func TestProbeMissOnEmptyTable(t *testing.T) {
	table := tt.NewTable(1)

	if _, ok := table.Probe(0x1234); ok {
		t.Error("probe: expected miss on an empty table")
	}
}

func TestProbeNeverReturnsWrongHash(t *testing.T) {
	// many distinct hashes packed into a small table guarantee index
	// collisions; probe must reject a collided slot whose stored Hash
	// doesn't match the query instead of returning stale data.
	table := tt.NewTable(1)

	for i := 0; i < 10_000; i++ {
		table.Store(tt.Entry{Hash: zobrist.Key(i), Value: 1, Type: tt.ExactEntry, Depth: 1})
	}

	for i := 0; i < 10_000; i++ {
		if got, ok := table.Probe(zobrist.Key(i)); ok && got.Hash != zobrist.Key(i) {
			t.Fatalf("probe(%d): returned entry for hash %d", i, got.Hash)
		}
	}
}

func TestStoreKeepsDeeperEntryOnCollision(t *testing.T) {
	table := tt.NewTable(1)

	shallow := tt.Entry{Hash: 0x1111, Value: 10, Type: tt.ExactEntry, Depth: 2}
	deep := tt.Entry{Hash: 0x2222, Value: 20, Type: tt.ExactEntry, Depth: 10}

	table.Store(deep)
	table.Store(shallow)

	got, ok := table.Probe(0x2222)
	if !ok || got.Value != deep.Value {
		t.Errorf("store: shallower same-epoch entry overwrote a deeper one, got %+v", got)
	}
}

func TestStoreOverwritesShallowerEntry(t *testing.T) {
	table := tt.NewTable(1)

	shallow := tt.Entry{Hash: 0x1111, Value: 10, Type: tt.ExactEntry, Depth: 2}
	deep := tt.Entry{Hash: 0x2222, Value: 20, Type: tt.ExactEntry, Depth: 10}

	table.Store(shallow)
	table.Store(deep)

	got, ok := table.Probe(0x2222)
	if !ok || got.Value != deep.Value || got.Depth != deep.Depth {
		t.Errorf("store: deeper entry failed to replace shallower one, got %+v", got)
	}
}

func TestNextEpochLetsNewSearchOverwriteSameDepth(t *testing.T) {
	table := tt.NewTable(1)

	old := tt.Entry{Hash: 0x1111, Value: 10, Type: tt.ExactEntry, Depth: 10}
	table.Store(old)

	table.NextEpoch()

	fresh := tt.Entry{Hash: 0x2222, Value: 99, Type: tt.ExactEntry, Depth: 10}
	table.Store(fresh)

	got, ok := table.Probe(0x2222)
	if !ok || got.Value != fresh.Value {
		t.Errorf("store: same-depth entry from a newer epoch failed to replace an older one, got %+v", got)
	}
}

func TestClearEmptiesTable(t *testing.T) {
	table := tt.NewTable(1)
	table.Store(tt.Entry{Hash: 0x1111, Value: 1, Type: tt.ExactEntry, Depth: 1})

	table.Clear()

	if _, ok := table.Probe(0x1111); ok {
		t.Error("clear: expected probe to miss after clearing the table")
	}
	if hashfull := table.Hashfull(); hashfull != 0 {
		t.Errorf("clear: hashfull = %v, want 0", hashfull)
	}
}

func TestHashfullReportsUsage(t *testing.T) {
	// a table with many entries so Hashfull's 1000-entry sample is
	// representative of a small, known fraction filled.
	table := tt.NewTable(4)

	if hashfull := table.Hashfull(); hashfull != 0 {
		t.Fatalf("hashfull on empty table = %v, want 0", hashfull)
	}

	for i := 0; i < 100; i++ {
		table.Store(tt.Entry{Hash: zobrist.Key(i), Value: 1, Type: tt.ExactEntry, Depth: 1})
	}

	if hashfull := table.Hashfull(); hashfull <= 0 {
		t.Errorf("hashfull after stores = %v, want > 0", hashfull)
	}
}

func TestResizePreservesEntries(t *testing.T) {
	table := tt.NewTable(4)
	table.Store(tt.Entry{Hash: 0x1111, Value: 42, Type: tt.ExactEntry, Depth: 5})

	table.Resize(8)

	got, ok := table.Probe(0x1111)
	if !ok || got.Value != 42 {
		t.Errorf("resize: entry lost across resize, got %+v, ok=%v", got, ok)
	}
}

func TestEvalFromAndBackRoundTrip(t *testing.T) {
	// non-mate scores must round-trip unchanged regardless of ply.
	const plain = 250
	if got := tt.EvalFrom(plain, 7).Eval(3); got != plain {
		t.Errorf("plain score round trip: got %d, want %d", got, plain)
	}
}
