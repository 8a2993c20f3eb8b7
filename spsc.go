// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package ring

// DequeueSPSC removes and returns an entry (single consumer only;
// concurrent with at most one producer calling [Enqueue]). Returns false
// if the ring was empty at the observation point. Never blocks.
//
// Unlike [DequeueSPMC], this never contends for a slot — at most one
// consumer exists — so it advances head with a plain store instead of a
// CAS, and reads entry directly once tail confirms the slot was
// published.
func DequeueSPSC[T Entry](r *Ring[T], buf Buffer[T]) (T, bool) {
	consumer := r.head.LoadRelaxed() // sole writer is this consumer; relaxed is sufficient
	producer := r.tail.LoadAcquire() // acquire fence: synchronizes with the producer's entry+seq publish

	if consumer == producer {
		var zero T
		return zero, false
	}

	s := &buf.slots[consumer&r.mask]
	entry := s.entry                      // plain read: safe, ordered by the Acquire above
	s.seq.StoreRelease(consumer + r.size) // free the slot for the generation r.size enqueues from now
	r.head.StoreRelease(consumer + 1)
	return entry, true
}

// SPSC is a single-producer single-consumer bounded ring, bundling a
// [Ring] and its owned [Buffer] behind the teacher library's familiar
// Enqueue/Dequeue/Cap method set.
//
// Based on Lamport's ring buffer, generalized with a per-slot sequence
// number (see [Buffer]) so the same slot layout and [Enqueue] serve both
// this type and [SPMC]. With only one consumer, Dequeue never contends
// for a slot, so it skips the CAS [DequeueSPMC] needs.
type SPSC[T Entry] struct {
	ring Ring[T]
	buf  Buffer[T]
}

// NewSPSC creates a new SPSC ring. Capacity rounds up to the next power
// of two; minimum 2. Panics if capacity < 2.
func NewSPSC[T Entry](capacity int) *SPSC[T] {
	if capacity < 2 {
		panic("ring: capacity must be >= 2")
	}
	n := roundToPow2(capacity)
	q := &SPSC[T]{buf: NewBuffer[T](n)}
	Init(&q.ring, n)
	return q
}

// Enqueue adds an element to the ring (producer only).
// Returns ErrWouldBlock if the ring is full.
func (q *SPSC[T]) Enqueue(entry T) error {
	if !Enqueue(&q.ring, q.buf, entry) {
		return ErrWouldBlock
	}
	return nil
}

// EnqueueWithSize is [SPSC.Enqueue] plus the pre-insertion length
// snapshot; see [EnqueueWithSize].
func (q *SPSC[T]) EnqueueWithSize(entry T) (int, error) {
	ok, size := EnqueueWithSize(&q.ring, q.buf, entry)
	if !ok {
		return size, ErrWouldBlock
	}
	return size, nil
}

// Dequeue removes and returns an element (consumer only).
// Returns (zero-value, ErrWouldBlock) if the ring is empty.
func (q *SPSC[T]) Dequeue() (T, error) {
	entry, ok := DequeueSPSC(&q.ring, q.buf)
	if !ok {
		return entry, ErrWouldBlock
	}
	return entry, nil
}

// Cap returns the ring capacity.
func (q *SPSC[T]) Cap() int {
	return Capacity(&q.ring)
}

// Size returns a best-effort snapshot of the ring's current length.
func (q *SPSC[T]) Size() int {
	return Size(&q.ring)
}
