// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package ring

import "testing"

type wrapToken uintptr

// TestRingWraparound covers spec.md boundary scenario 6: counters driven
// near the uint64 wraparound boundary still preserve FIFO order and the
// full/empty decision. The ring's invariants are defined purely in terms
// of (tail-head) mod 2^64, so forcing the counters close to the
// wraparound point white-box is equivalent to having actually performed
// ~2^64-epsilon prior operations.
func TestRingWraparound(t *testing.T) {
	const size = 8
	r := &Ring[wrapToken]{}
	Init(r, size)
	buf := NewBuffer[wrapToken](size)

	const nearMax = ^uint64(0) - 3
	r.head.StoreRelaxed(nearMax)
	r.tail.StoreRelaxed(nearMax)
	// NewBuffer seeded each slot's seq assuming head/tail start at 0; reseed
	// to match the forced near-wraparound start so Enqueue's seq==producer
	// fullness check still lines up with the counters above.
	for i := range buf.slots {
		buf.slots[(nearMax+uint64(i))&(size-1)].seq.StoreRelaxed(nearMax + uint64(i))
	}

	for round := 0; round < 4*size; round++ {
		tok := wrapToken(round + 1)
		if !Enqueue(r, buf, tok) {
			t.Fatalf("round %d: Enqueue failed near wraparound", round)
		}
		got, ok := DequeueSPSC(r, buf)
		if !ok {
			t.Fatalf("round %d: DequeueSPSC failed near wraparound", round)
		}
		if got != tok {
			t.Fatalf("round %d: got %v, want %v", round, got, tok)
		}
	}
}
