// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package ring

import "code.hybscloud.com/atomix"

// Ring is the control block shared by the SPSC and SPMC operations. It
// holds no slot data itself — the backing array is supplied separately
// as a [Buffer], so a Ring can be embedded in a larger allocation or
// used with different buffers of the same element type over its lifetime
// (though not concurrently: see [Init]).
//
// head and tail occupy distinct cache lines (flanked by [pad] fields) so
// that the single producer's writes to tail never invalidate a consumer's
// cache line holding head, and vice versa.
type Ring[T Entry] struct {
	_    pad
	head atomix.Uint64 // c_head: monotonically increasing count of entries removed
	_    pad
	tail atomix.Uint64 // p_tail: monotonically increasing count of entries inserted
	_    pad
	size uint64
	mask uint64
}

// slot holds one entry plus the per-slot sequence number that governs
// when the producer may reuse it. entry is a plain typed field, not a
// word reinterpreted through uintptr, so the garbage collector tracks any
// pointer T holds for as long as it sits in the slot.
type slot[T Entry] struct {
	seq   atomix.Uint64
	entry T
	_     padShort
}

// Buffer is the externally-owned slot array handle. It is a small value
// type — a slice header — and is always passed by value: the ring never
// allocates, resizes, or frees the backing array.
type Buffer[T Entry] struct {
	slots []slot[T]
}

// NewBuffer allocates a slot array of exactly size entries. Each slot's
// sequence number starts at its own index, matching a freshly [Init]-ed
// ring's zeroed head/tail: the producer's first write to slot i checks
// seq == tail (i.e. == i) before proceeding. size must be a power of two;
// see [Init].
func NewBuffer[T Entry](size int) Buffer[T] {
	buf := Buffer[T]{slots: make([]slot[T], size)}
	for i := range buf.slots {
		buf.slots[i].seq.StoreRelaxed(uint64(i))
	}
	return buf
}

// Init prepares ring for use with a backing buffer of size entries.
//
// Preconditions: size is a power of two, size >= 2, buf was constructed
// with [NewBuffer] using the same size, and no goroutine is currently
// observing ring. Init performs no validation of its own — violating
// either precondition is a caller bug with undefined behavior, exactly as
// the original ck_ring_init never validated size either. Use [NewSPSC] or
// [NewSPMC] for a constructor that rounds size up and validates it.
//
// Init writes size, mask = size-1, and zeroes both counters. No fences
// are required here: the caller must publish the ring to other goroutines
// using a release operation of its own (e.g. a channel send, a mutex
// unlock, or simply starting the other goroutines after Init returns).
func Init[T Entry](r *Ring[T], size int) {
	r.size = uint64(size)
	r.mask = uint64(size) - 1
	r.tail.StoreRelaxed(0)
	r.head.StoreRelaxed(0)
}

// Capacity returns the ring's configured size. Unsynchronized: size is
// fixed at [Init] and never changes afterward.
func Capacity[T Entry](r *Ring[T]) int {
	return int(r.size)
}

// Size returns a best-effort snapshot of the number of entries currently
// held. The two loads are independently relaxed-atomic; the result is not
// atomic across both and may briefly read one less than the true length
// while a dequeue is in progress. Safe to call from any goroutine.
func Size[T Entry](r *Ring[T]) int {
	tail := r.tail.LoadRelaxed()
	head := r.head.LoadRelaxed()
	return int((tail - head) & r.mask)
}

// roundToPow2 rounds n up to the next power of two, matching the
// teacher's own capacity-rounding helper.
func roundToPow2(n int) int {
	if n < 2 {
		return 2
	}
	n--
	n |= n >> 1
	n |= n >> 2
	n |= n >> 4
	n |= n >> 8
	n |= n >> 16
	n |= n >> 32
	return n + 1
}
