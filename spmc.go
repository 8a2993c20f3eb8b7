// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package ring

import "code.hybscloud.com/spin"

// DequeueSPMC removes and returns an entry. Any number of consumer
// goroutines may call this concurrently with at most one producer calling
// [Enqueue]. Returns true with the entry if the caller successfully
// claimed a slot, false only when the ring is observed empty. Never
// blocks, but retries on contention against other consumers.
//
// Each slot carries its own sequence number (see [Buffer]): a consumer
// checks it to confirm the slot is occupied by the generation it expects,
// then CASes head to claim the slot, and only reads entry after winning
// that CAS. No consumer ever reads entry concurrently with the producer
// writing it — the claim is settled entirely through head and seq, both
// plain integers — so this holds even when T is pointer-like.
func DequeueSPMC[T Entry](r *Ring[T], buf Buffer[T]) (T, bool) {
	sw := spin.Wait{}
	for {
		consumer := r.head.LoadAcquire()
		producer := r.tail.LoadAcquire() // pairs with the producer's release store of tail
		if consumer == producer {
			var zero T
			return zero, false
		}

		s := &buf.slots[consumer&r.mask]
		seq := s.seq.LoadAcquire()
		if seq != consumer+1 {
			// Not yet published for this generation: another consumer is
			// mid-claim, or tail hasn't caught up to this view yet.
			sw.Once()
			continue
		}

		if r.head.CompareAndSwapAcqRel(consumer, consumer+1) {
			entry := s.entry                      // plain read: safe, we alone won this generation's claim
			s.seq.StoreRelease(consumer + r.size) // free the slot for reuse
			return entry, true
		}
		sw.Once()
	}
}

// TryDequeueSPMC is [DequeueSPMC] restricted to a single claim attempt:
// on contention or an unpublished slot it returns false immediately
// instead of retrying, making "contended" indistinguishable from "empty"
// to the caller by design. Any number of consumer goroutines may call
// this concurrently with at most one producer calling [Enqueue]. Callers
// that want their own backoff policy should use this instead of
// [DequeueSPMC].
func TryDequeueSPMC[T Entry](r *Ring[T], buf Buffer[T]) (T, bool) {
	consumer := r.head.LoadAcquire()
	producer := r.tail.LoadAcquire()

	var zero T
	if consumer == producer {
		return zero, false
	}

	s := &buf.slots[consumer&r.mask]
	if s.seq.LoadAcquire() != consumer+1 {
		return zero, false
	}

	if !r.head.CompareAndSwapAcqRel(consumer, consumer+1) {
		return zero, false
	}
	entry := s.entry
	s.seq.StoreRelease(consumer + r.size)
	return entry, true
}

// SPMC is a single-producer multi-consumer bounded ring, bundling a
// [Ring] and its owned [Buffer] behind the teacher library's familiar
// Enqueue/Dequeue/Cap method set. Enqueue is wait-free; Dequeue is
// lock-free but not wait-free, since a losing consumer retries.
type SPMC[T Entry] struct {
	ring Ring[T]
	buf  Buffer[T]
}

// NewSPMC creates a new SPMC ring. Capacity rounds up to the next power
// of two; minimum 2. Panics if capacity < 2.
func NewSPMC[T Entry](capacity int) *SPMC[T] {
	if capacity < 2 {
		panic("ring: capacity must be >= 2")
	}
	n := roundToPow2(capacity)
	q := &SPMC[T]{buf: NewBuffer[T](n)}
	Init(&q.ring, n)
	return q
}

// Enqueue adds an element to the ring (single producer only).
// Returns ErrWouldBlock if the ring is full.
func (q *SPMC[T]) Enqueue(entry T) error {
	if !Enqueue(&q.ring, q.buf, entry) {
		return ErrWouldBlock
	}
	return nil
}

// EnqueueWithSize is [SPMC.Enqueue] plus the pre-insertion length
// snapshot; see [EnqueueWithSize].
func (q *SPMC[T]) EnqueueWithSize(entry T) (int, error) {
	ok, size := EnqueueWithSize(&q.ring, q.buf, entry)
	if !ok {
		return size, ErrWouldBlock
	}
	return size, nil
}

// Dequeue removes and returns an element (multiple consumers safe),
// retrying on contention. Returns (zero-value, ErrWouldBlock) only when
// the ring is observed empty.
func (q *SPMC[T]) Dequeue() (T, error) {
	entry, ok := DequeueSPMC(&q.ring, q.buf)
	if !ok {
		return entry, ErrWouldBlock
	}
	return entry, nil
}

// TryDequeue removes and returns an element with a single CAS attempt.
// Returns (zero-value, ErrWouldBlock) on contention or on an empty ring —
// the two are indistinguishable to the caller by design; see
// [TryDequeueSPMC].
func (q *SPMC[T]) TryDequeue() (T, error) {
	entry, ok := TryDequeueSPMC(&q.ring, q.buf)
	if !ok {
		return entry, ErrWouldBlock
	}
	return entry, nil
}

// Cap returns the ring capacity.
func (q *SPMC[T]) Cap() int {
	return Capacity(&q.ring)
}

// Size returns a best-effort snapshot of the ring's current length.
func (q *SPMC[T]) Size() int {
	return Size(&q.ring)
}
