// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package ring

// Enqueue adds entry to the ring (single producer only; any number of
// concurrent consumers, per the SPSC or SPMC dequeue operations used
// opposite it). Returns true if entry was stored, false if the ring was
// full at the linearization point. Never blocks.
//
// The producer side is identical for SPSC and SPMC rings — only the
// dequeue side differs — so this one function backs both [SPSC.Enqueue]
// and [SPMC.Enqueue].
func Enqueue[T Entry](r *Ring[T], buf Buffer[T], entry T) bool {
	ok, _ := enqueue(r, buf, entry, false)
	return ok
}

// EnqueueWithSize is [Enqueue] plus a length snapshot.
//
// The returned size is the queue depth (producer - consumer) & mask
// observed just before the insertion attempt — the pre-insertion
// snapshot, not the post-insertion one. This lets a producer expose
// queue depth without forcing any consumer to touch the producer's cache
// line. When ok is false it is only the depth observed at the rejection:
// size-1 for a full ring, or less when the per-slot sequence check
// rejected the write.
func EnqueueWithSize[T Entry](r *Ring[T], buf Buffer[T], entry T) (ok bool, size int) {
	return enqueue(r, buf, entry, true)
}

func enqueue[T Entry](r *Ring[T], buf Buffer[T], entry T, wantSize bool) (ok bool, size int) {
	consumer := r.head.LoadRelaxed()
	producer := r.tail.LoadRelaxed() // sole writer is this producer; relaxed is sufficient

	if wantSize {
		size = int((producer - consumer) & r.mask)
	}

	if producer-consumer == r.size-1 {
		// One slot is always left empty to disambiguate full from empty
		// (see the package documentation's Capacity section); this is the externally visible full
		// condition regardless of what the per-slot seq below would permit.
		return false, size
	}

	s := &buf.slots[producer&r.mask]
	seq := s.seq.LoadAcquire() // pairs with the previous occupant's release on extraction
	if seq != producer {
		// Under SPMC, a consumer can have already claimed this slot's prior
		// generation (advancing head) without yet finishing its read of
		// entry and releasing seq. The reserved-slot check above can't see
		// that in-flight window, so fall back to full here rather than race
		// the read; this never under-reports room, only occasionally
		// over-reports full a beat early under contention.
		return false, size
	}

	s.entry = entry                   // plain write: GC-visible, ordered by the release below
	s.seq.StoreRelease(producer + 1)  // publish: entry is now valid for this generation
	r.tail.StoreRelease(producer + 1) // advance the monotonic write position
	return true, size
}
